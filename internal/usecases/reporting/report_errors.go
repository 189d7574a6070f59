package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStatusFilter = errors.New("filtro de status inválido")
	ErrInvalidPagination   = errors.New("paginação inválida")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
)

type ReportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
