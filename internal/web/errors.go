package web

import "fmt"

// ConfigError signals a required setting that is absent. It names the key,
// never the value, and always maps to a 500.
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("Configuração inválida: %s não definida.", e.Key)
}

// ValidationError signals a malformed or incomplete request body and maps
// to a 400. The message names the missing or invalid field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Invalid builds a ValidationError from a format string.
func Invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError carries a non-success Vendus response: the upstream HTTP
// status plus the parsed (or raw) body, so callers can diagnose without
// this service retrying anything.
type UpstreamError struct {
	Status int
	Body   any
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("vendus respondeu %d", e.Status)
}
