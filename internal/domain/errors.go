package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrUnknownRole   = errors.New("rol desconocido")
	ErrUnknownTab    = errors.New("pestaña desconocida")
	ErrUnknownStatus = errors.New("estado no permitido para este documento")
	ErrUnknownReport = errors.New("reporte desconocido")
	ErrNoSession     = errors.New("no hay sesión activa")
	ErrForbidden     = errors.New("acceso denegado")
	ErrUnknownPath   = errors.New("Unknown path")
)

// FieldError indica un campo obligatorio vacío o mal formado en un formulario.
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier FieldError.
type FieldError struct {
	Field  string
	Reason string
}

// RequiredField construye el error de campo obligatorio vacío.
func RequiredField(field string) *FieldError {
	return &FieldError{Field: field, Reason: "es obligatorio"}
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Reason
}

func (e *FieldError) Unwrap() error { return ErrInvalidInput }
