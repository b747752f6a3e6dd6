package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API administrativa
const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_001" // Token ausente ou inválido
	ErrInsufficientPrivilege = "AUTH_002" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest = "VAL_001"

	// Erros de execução
	ErrRunInProgress = "RUN_001" // Já existe uma execução em andamento

	// Erros do servidor
	ErrInternalServer = "SRV_001"
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrRunInProgress:         http.StatusConflict,
	ErrInternalServer:        http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
