package retry

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Sleeper abstrai a pausa entre tentativas para que testes não esperem de verdade
type Sleeper interface {
	Sleep(d time.Duration)
}

type SleeperFunc func(d time.Duration)

func (f SleeperFunc) Sleep(d time.Duration) {
	f(d)
}

// DefaultSleeper bloqueia a goroutine chamadora, sem cancelamento
var DefaultSleeper Sleeper = SleeperFunc(time.Sleep)

// Policy define quantas vezes e em quais erros uma operação é repetida.
// MaxRetries = 0 significa uma única tentativa.
type Policy struct {
	MaxRetries int
	Delay      time.Duration
	RetryOn    []error
	Sleeper    Sleeper
}

// Retryable indica se err pertence a um dos tipos de falha configurados
func (p Policy) Retryable(err error) bool {
	for _, kind := range p.RetryOn {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// Execute invoca op e repete nas falhas retentáveis, esperando Delay entre as
// tentativas. Esgotadas as tentativas, o último erro é devolvido sem alteração.
func Execute[T any](p Policy, op func() (T, error)) (T, error) {
	sleeper := p.Sleeper
	if sleeper == nil {
		sleeper = DefaultSleeper
	}

	attempt := 0
	for {
		result, err := op()
		if err == nil {
			return result, nil
		}

		if !p.Retryable(err) || attempt >= p.MaxRetries {
			return result, err
		}

		attempt++
		logrus.WithFields(logrus.Fields{
			"attempt":     attempt,
			"max_retries": p.MaxRetries,
			"delay":       p.Delay.String(),
			"error":       err.Error(),
		}).Warnf("retry: operation failed, retrying in %s", p.Delay)

		sleeper.Sleep(p.Delay)
	}
}

// Do é Execute para operações sem valor de retorno
func Do(p Policy, op func() error) error {
	_, err := Execute(p, func() (struct{}, error) {
		return struct{}{}, op()
	})
	return err
}
