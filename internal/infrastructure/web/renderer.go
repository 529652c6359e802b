// Package web implementa la vista HTML del directorio con plantillas embebidas.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/jhoicas/directorio-negocios/internal/application/dto"
	"github.com/jhoicas/directorio-negocios/internal/application/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

var _ ports.ListingsRenderer = (*HTMLRenderer)(nil)

// HTMLRenderer adaptador de ports.ListingsRenderer sobre html/template.
// Las plantillas se parsean una vez; Execute es seguro para uso concurrente.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer parsea las plantillas embebidas.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("directory").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: parsear plantillas: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

// RenderPage escribe la página completa.
func (r *HTMLRenderer) RenderPage(w io.Writer, page *dto.PageView) error {
	if err := r.tmpl.ExecuteTemplate(w, "page", page); err != nil {
		return fmt.Errorf("web: render página: %w", err)
	}
	return nil
}

// RenderListings escribe solo el contenido de #listings.
func (r *HTMLRenderer) RenderListings(w io.Writer, view *dto.ListingsView) error {
	if err := r.tmpl.ExecuteTemplate(w, "listings", view); err != nil {
		return fmt.Errorf("web: render listados: %w", err)
	}
	return nil
}
