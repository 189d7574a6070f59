package identifying

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrFingerprintIDRequired = errors.New("fingerprint_db_id é obrigatório")
	ErrContactRequired       = errors.New("email ou telefone é obrigatório")
	ErrInvalidNationalID     = errors.New("CPF inválido")

	// Erros de recurso
	ErrFingerprintNotFound = errors.New("fingerprint não encontrado")

	// Erros de resolução
	ErrResolutionFailed  = errors.New("falha ao resolver perfil")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrHashNationalID    = errors.New("erro ao gerar hash do CPF")
)

// IdentifyError é um erro com o código de API associado
type IdentifyError struct {
	Err       error
	Code      string
	ProfileID string
	Details   string
}

func (e *IdentifyError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *IdentifyError) Unwrap() error {
	return e.Err
}

func NewIdentifyError(err error, code string, details string) *IdentifyError {
	return &IdentifyError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
