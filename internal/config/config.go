package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Magzlar/tik-tok-ad-project/internal/domain"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	TikTok     TikTok     `mapstructure:",squash"`
	Budget     Budget     `mapstructure:",squash"`
	Retry      Retry      `mapstructure:",squash"`
	BudgetSync BudgetSync `mapstructure:",squash"`
	Admin      Admin      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type TikTok struct {
	BaseURL      string `mapstructure:"tiktok_base_url"`
	AppID        string `mapstructure:"tiktok_app_id"`
	Secret       string `mapstructure:"tiktok_secret"`
	AuthCode     string `mapstructure:"tiktok_auth_code"`
	AdvertiserID string `mapstructure:"tiktok_advertiser_id"`
	// Tempo de vida assumido do access token; a API não informa a expiração
	TokenLifetime time.Duration `mapstructure:"tiktok_token_lifetime"`
	// Filtro de tipo de compra do relatório. AUCTION ainda precisa ser confirmado com o time de mídia
	BuyingType     string        `mapstructure:"tiktok_buying_type"`
	RequestTimeout time.Duration `mapstructure:"tiktok_request_timeout"`
}

type Budget struct {
	TargetROAS     float64 `mapstructure:"budget_target_roas"`
	MaxAdjustment  float64 `mapstructure:"budget_max_adjustment"`
	MinBudget      float64 `mapstructure:"budget_min_budget"`
	LookbackDays   int     `mapstructure:"budget_lookback_days"`
	MinSpend       float64 `mapstructure:"budget_min_spend"`
	MinPaymentRate float64 `mapstructure:"budget_min_payment_rate"`
	DryRun         bool    `mapstructure:"budget_dry_run"`
}

type Retry struct {
	MaxRetries int           `mapstructure:"retry_max_retries"`
	Delay      time.Duration `mapstructure:"retry_delay"`
}

type BudgetSync struct {
	CronSchedule string `mapstructure:"budget_sync_cron"`
	Enabled      bool   `mapstructure:"budget_sync_enabled"`
}

type Admin struct {
	JWTSecret      string        `mapstructure:"admin_jwt_secret"`
	TokenTTL       time.Duration `mapstructure:"admin_token_ttl"`
	AllowedOrigins []string      `mapstructure:"admin_allowed_origins"`
}

// PolicyConstants converte a seção de orçamento nas constantes da política
func (b Budget) PolicyConstants() domain.PolicyConstants {
	return domain.PolicyConstants{
		TargetROAS:     b.TargetROAS,
		MaxAdjustment:  b.MaxAdjustment,
		MinBudget:      b.MinBudget,
		LookbackDays:   b.LookbackDays,
		MinSpend:       b.MinSpend,
		MinPaymentRate: b.MinPaymentRate,
	}
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("TIKTOK_BASE_URL", "https://business-api.tiktok.com/open_api/v1.3")
	viper.SetDefault("TIKTOK_APP_ID", "")
	viper.SetDefault("TIKTOK_SECRET", "")
	viper.SetDefault("TIKTOK_AUTH_CODE", "")
	viper.SetDefault("TIKTOK_ADVERTISER_ID", "")
	viper.SetDefault("TIKTOK_TOKEN_LIFETIME", "1h")
	viper.SetDefault("TIKTOK_BUYING_TYPE", "AUCTION")
	viper.SetDefault("TIKTOK_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("BUDGET_TARGET_ROAS", 1.5)     // GBP de receita por GBP investido
	viper.SetDefault("BUDGET_MAX_ADJUSTMENT", 0.75) // variação máxima de 75% por execução
	viper.SetDefault("BUDGET_MIN_BUDGET", 50)       // GBP
	viper.SetDefault("BUDGET_LOOKBACK_DAYS", 30)    // janela do relatório
	viper.SetDefault("BUDGET_MIN_SPEND", 0)         // gasto mínimo (estritamente maior)
	viper.SetDefault("BUDGET_MIN_PAYMENT_RATE", 0)  // receita mínima (estritamente maior)
	viper.SetDefault("BUDGET_DRY_RUN", false)

	viper.SetDefault("RETRY_MAX_RETRIES", 2)
	viper.SetDefault("RETRY_DELAY", "5m")

	viper.SetDefault("BUDGET_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h (UTC)
	viper.SetDefault("BUDGET_SYNC_ENABLED", false)

	viper.SetDefault("ADMIN_JWT_SECRET", "")
	viper.SetDefault("ADMIN_TOKEN_TTL", "24h")
	viper.SetDefault("ADMIN_ALLOWED_ORIGINS", "") // lista separada por vírgula

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("config: using environment loaded by godotenv (viper could not read .env): ", err)
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.TikTok.BaseURL = strings.TrimRight(config.TikTok.BaseURL, "/")

	return config, nil
}

// Validate verifica as credenciais e os parâmetros da política antes de qualquer chamada remota
func (c *Config) Validate() error {
	var problems []string

	if c.TikTok.AppID == "" {
		problems = append(problems, "TIKTOK_APP_ID is required")
	}
	if c.TikTok.Secret == "" {
		problems = append(problems, "TIKTOK_SECRET is required")
	}
	if c.TikTok.AuthCode == "" {
		problems = append(problems, "TIKTOK_AUTH_CODE is required")
	}
	if c.TikTok.AdvertiserID == "" {
		problems = append(problems, "TIKTOK_ADVERTISER_ID is required")
	}
	if c.TikTok.TokenLifetime <= 0 {
		problems = append(problems, "TIKTOK_TOKEN_LIFETIME must be positive")
	}
	if c.TikTok.BuyingType == "" {
		problems = append(problems, "TIKTOK_BUYING_TYPE is required")
	}

	if c.Budget.TargetROAS <= 0 {
		problems = append(problems, "BUDGET_TARGET_ROAS must be greater than zero")
	}
	if c.Budget.MaxAdjustment < 0 {
		problems = append(problems, "BUDGET_MAX_ADJUSTMENT must not be negative")
	}
	if c.Budget.MinBudget < 0 {
		problems = append(problems, "BUDGET_MIN_BUDGET must not be negative")
	}
	if c.Budget.LookbackDays < 1 {
		problems = append(problems, "BUDGET_LOOKBACK_DAYS must be at least 1")
	}
	// spend > MinSpend com MinSpend >= 0 garante spend > 0 antes do cálculo do ROAS
	if c.Budget.MinSpend < 0 {
		problems = append(problems, "BUDGET_MIN_SPEND must not be negative")
	}
	if c.Budget.MinPaymentRate < 0 {
		problems = append(problems, "BUDGET_MIN_PAYMENT_RATE must not be negative")
	}

	if c.Retry.MaxRetries < 0 {
		problems = append(problems, "RETRY_MAX_RETRIES must not be negative")
	}
	if c.Retry.Delay < 0 {
		problems = append(problems, "RETRY_DELAY must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not get working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("config: .env loaded from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found, using process environment only")
}
