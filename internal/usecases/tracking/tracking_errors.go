package tracking

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrVisitorIDRequired     = errors.New("visitor_id e session_id são obrigatórios")
	ErrFingerprintIDRequired = errors.New("fingerprint_db_id é obrigatório")
	ErrSessionIDRequired     = errors.New("session_db_id é obrigatório")
	ErrPagePathRequired      = errors.New("page_path é obrigatório")
	ErrInvalidPageTime       = errors.New("time_on_page_seconds inválido")
	ErrUnknownInteraction    = errors.New("tipo de interação desconhecido")

	// Erros de recurso
	ErrFingerprintNotFound = errors.New("fingerprint não encontrado")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// TrackingError é um erro com o código de API associado
type TrackingError struct {
	Err     error
	Code    string
	Details string
}

func (e *TrackingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TrackingError) Unwrap() error {
	return e.Err
}

func NewTrackingError(err error, code string, details string) *TrackingError {
	return &TrackingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
