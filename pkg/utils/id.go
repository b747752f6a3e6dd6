package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRunID gera o identificador curto exibido nos relatórios de execução
func GenerateRunID() (string, error) {
	return gonanoid.Generate(characters, 8)
}
