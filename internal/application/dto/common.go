package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NoticeResponse aviso transitorio que sustituye a la persistencia: las acciones del panel
// solo informan al usuario, no modifican ningún almacén.
type NoticeResponse struct {
	Kind    string `json:"kind"` // success | error
	Message string `json:"message"`
}

// ListResponse lista genérica de registros del catálogo.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewList construye la lista con su total.
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}
