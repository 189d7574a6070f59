package recovering

import (
	"errors"
	"fmt"
)

var (
	ErrFingerprintIDRequired = errors.New("fingerprint_db_id é obrigatório")
	ErrDatabaseOperation     = errors.New("erro ao realizar operação no banco de dados")
)

type RecoveryError struct {
	Err     error
	Code    string
	Details string
}

func (e *RecoveryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RecoveryError) Unwrap() error {
	return e.Err
}

func NewRecoveryError(err error, code string, details string) *RecoveryError {
	return &RecoveryError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
