package domain

import (
	"errors"
	"fmt"
)

// Tipos de falha usados para classificar erros vindos da plataforma de anúncios
var (
	ErrPlatform       = errors.New("ad platform error")
	ErrAuthentication = errors.New("authentication error")
)

// PlatformError representa qualquer chamada à plataforma que falhou: erro de
// transporte, status HTTP diferente de 2xx ou código de aplicação diferente de 0
type PlatformError struct {
	Op         string // operação remota (ex: "campaign/get")
	Message    string // mensagem retornada pela plataforma ou pelo transporte
	Code       *int   // código de aplicação, quando presente
	HTTPStatus int    // status HTTP, quando houve resposta
	Err        error  // erro de transporte subjacente
}

func (e *PlatformError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Message)
	if e.Code != nil {
		msg = fmt.Sprintf("%s (code: %d)", msg, *e.Code)
	}
	if e.HTTPStatus != 0 {
		msg = fmt.Sprintf("%s (status: %d)", msg, e.HTTPStatus)
	}
	return msg
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

func (e *PlatformError) Is(target error) bool {
	return target == ErrPlatform
}

// AuthenticationError é retornado quando o endpoint de token responde com
// sucesso mas sem access_token
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return "authentication failed: " + e.Message
}

func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthentication
}
