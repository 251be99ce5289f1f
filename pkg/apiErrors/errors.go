package apiErrors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ConfigError indica que o cliente foi construído com parâmetros inválidos
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// APIError representa qualquer resposta não-2xx do Rule.io ou uma falha de transporte.
// StatusCode é nil para falhas de transporte (DNS, conexão recusada, timeout).
type APIError struct {
	StatusCode *int           `json:"status_code"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details"`
}

func (e *APIError) Error() string {
	return e.Message
}

// HasStatus informa se o erro veio de uma resposta HTTP com o status indicado
func (e *APIError) HasStatus(status int) bool {
	return e.StatusCode != nil && *e.StatusCode == status
}

// ValidationError representa uma requisição ou envelope malformado
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError indica rota inexistente ou entidade remota não encontrada
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// UnsupportedMethodError é retornado antes de qualquer chamada de rede
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("Unsupported HTTP method: %s", e.Method)
}

func NewConfigError(message string) *ConfigError {
	return &ConfigError{Message: message}
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// NewAPIError cria um APIError a partir de uma resposta HTTP
func NewAPIError(status int, message string, details map[string]any) *APIError {
	if details == nil {
		details = map[string]any{}
	}

	return &APIError{
		StatusCode: &status,
		Message:    message,
		Details:    details,
	}
}

// NewTransportError cria um APIError sem status para falhas antes de uma resposta existir
func NewTransportError(cause error) *APIError {
	return &APIError{
		StatusCode: nil,
		Message:    fmt.Sprintf("Request error: %v", cause),
		Details:    map[string]any{},
	}
}

// StatusOf mapeia qualquer erro da taxonomia para um status HTTP
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode != nil {
			return *apiErr.StatusCode
		}
		return http.StatusInternalServerError
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound
	}

	var methodErr *UnsupportedMethodError
	if errors.As(err, &methodErr) {
		return http.StatusMethodNotAllowed
	}

	return http.StatusInternalServerError
}

// IsNotFound cobre tanto NotFoundError quanto um APIError 404 vindo do Rule.io
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return true
	}

	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.HasStatus(http.StatusNotFound)
}
