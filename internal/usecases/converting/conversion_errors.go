package converting

import (
	"errors"
	"fmt"
)

var (
	ErrFingerprintIDRequired = errors.New("fingerprint_db_id é obrigatório")
	ErrEventNameRequired     = errors.New("event_name é obrigatório")
	ErrPlaintextIdentifier   = errors.New("identificadores devem ser enviados em hash SHA-256")
	ErrFingerprintNotFound   = errors.New("fingerprint não encontrado")
	ErrEventIDGeneration     = errors.New("erro ao gerar event_id da conversão")
	ErrDatabaseOperation     = errors.New("erro ao realizar operação no banco de dados")
)

type ConversionError struct {
	Err     error
	Code    string
	Details string
}

func (e *ConversionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func NewConversionError(err error, code string, details string) *ConversionError {
	return &ConversionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
