package usecase

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

const (
	CodeStageNotFound = "STAGE_NOT_FOUND"
	CodeLeadNotFound  = "LEAD_NOT_FOUND"
	CodeBackendError  = "BACKEND_ERROR"
)

func ErrStageNotFound(slug string) *DomainError {
	return &DomainError{
		Code:    CodeStageNotFound,
		Message: fmt.Sprintf("stage not found: %q", slug),
	}
}

func ErrLeadNotFound(id string) *DomainError {
	return &DomainError{
		Code:    CodeLeadNotFound,
		Message: fmt.Sprintf("lead not found: %q", id),
	}
}

// NewBackendError embrulha uma falha de consulta preservando a mensagem
// original do banco.
func NewBackendError(err error) *TechnicalError {
	return &TechnicalError{
		Code:    CodeBackendError,
		Message: err.Error(),
	}
}
