package ports

import (
	"context"
	"encoding/json"
)

// DataPort puerto de salida hacia el backend HTTP externo (<base-url>?path=<recurso>).
// Devuelve el JSON crudo de la respuesta; fallos de red o respuestas que no son JSON
// se propagan al llamador sin reintentos ni traducción.
type DataPort interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
	Put(ctx context.Context, path string, body any) (json.RawMessage, error)
}
