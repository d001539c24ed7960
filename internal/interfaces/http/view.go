package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/skladpro/internal/application/dto"
)

//go:embed templates/*.html
var templatesFS embed.FS

// View motor de plantillas de las páginas del panel.
type View struct {
	tmpl *template.Template
}

// NewView carga las plantillas embebidas.
func NewView() (*View, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"statusClass": statusClass,
		"documents":   documents,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("view: plantillas: %w", err)
	}
	return &View{tmpl: t}, nil
}

// Render ejecuta la plantilla en un buffer: si falla no se envía una página a medias.
func (v *View) Render(c *fiber.Ctx, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := v.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("view: %s: %w", name, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// statusClass clase CSS del badge de estado.
func statusClass(status string) string {
	switch status {
	case "Доставлен", "Принято", "Завершена":
		return "badge badge-done"
	case "Отменён", "Отклонено":
		return "badge badge-bad"
	}
	return "badge"
}

// documentTable tabla de pedidos, recepciones o envíos.
type documentTable struct {
	Kind         string
	Counterparty string
	Items        []dto.DocumentResponse
	CanEdit      bool
}

func documents(kind, counterparty string, items []dto.DocumentResponse, perms dto.PermissionsView) documentTable {
	return documentTable{Kind: kind, Counterparty: counterparty, Items: items, CanEdit: perms.CanEdit}
}
