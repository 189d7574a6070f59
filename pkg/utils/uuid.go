package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateEventID gera o identificador de deduplicação enviado às plataformas de anúncio
func GenerateEventID() (string, error) {
	return gonanoid.Generate(characters, 21)
}

// NewID gera o identificador das linhas persistidas
func NewID() string {
	return uuid.NewString()
}

// IsUUID indica se o valor é um UUID válido
func IsUUID(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}
