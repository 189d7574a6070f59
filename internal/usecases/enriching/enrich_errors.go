package enriching

import (
	"errors"
	"fmt"
)

var (
	ErrFingerprintIDRequired = errors.New("fingerprint_db_id é obrigatório")
	ErrProfileIDRequired     = errors.New("profile_id é obrigatório")
	ErrFingerprintNotFound   = errors.New("fingerprint não encontrado")
	ErrProfileNotFound       = errors.New("perfil não encontrado")
	ErrSignalsUnavailable    = errors.New("não foi possível calcular os sinais de engajamento")
	ErrDatabaseOperation     = errors.New("erro ao realizar operação no banco de dados")
)

// EnrichmentError é um erro com o código de API associado
type EnrichmentError struct {
	Err     error
	Code    string
	Details string
}

func (e *EnrichmentError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *EnrichmentError) Unwrap() error {
	return e.Err
}

func NewEnrichmentError(err error, code string, details string) *EnrichmentError {
	return &EnrichmentError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
