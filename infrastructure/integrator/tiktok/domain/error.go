package tiktokdomain

// Códigos de erro da API que indicam access token inválido, expirado ou revogado
var tokenErrorCodes = map[int]struct{}{
	40100: {},
	40102: {},
	40104: {},
	40105: {},
}

// IsTokenError verifica se o código de aplicação indica problema com o token
func IsTokenError(code int) bool {
	_, ok := tokenErrorCodes[code]
	return ok
}
