package utils

import (
	"regexp"
	"strings"
)

var (
	nonDigits = regexp.MustCompile(`\D`)
	sha256Hex = regexp.MustCompile(`^[a-f0-9]{64}$`)
)

// NormalizeEmail aplica trim e minúsculas. Retorna nil para valores vazios.
func NormalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(*email))
	if normalized == "" {
		return nil
	}
	return &normalized
}

// OnlyDigits mantém apenas os dígitos. Retorna nil quando não sobra nenhum.
func OnlyDigits(value *string) *string {
	if value == nil {
		return nil
	}
	digits := nonDigits.ReplaceAllString(*value, "")
	if digits == "" {
		return nil
	}
	return &digits
}

// SplitName separa o nome em primeiro nome e o restante
func SplitName(name *string) (full, first, last *string) {
	if name == nil {
		return nil, nil, nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return nil, nil, nil
	}

	parts := strings.Fields(trimmed)
	firstName := parts[0]
	if len(parts) > 1 {
		lastName := strings.Join(parts[1:], " ")
		last = &lastName
	}
	return &trimmed, &firstName, last
}

// IsSHA256Hex indica se o valor parece um hash SHA-256 em hexadecimal minúsculo
func IsSHA256Hex(value string) bool {
	return sha256Hex.MatchString(value)
}

// NonEmpty retorna nil para strings vazias
func NonEmpty(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	return value
}

func StringPtr(s string) *string {
	return &s
}

func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
