package ports

import (
	"context"
	"io"

	"github.com/jhoicas/directorio-negocios/internal/application/dto"
)

// ListingsRenderer frontera de presentación. La lógica de filtrado no conoce
// el formato de salida; cualquier adaptador (HTML, mock) implementa este contrato.
type ListingsRenderer interface {
	// RenderPage escribe la página completa con controles y listados.
	RenderPage(w io.Writer, page *dto.PageView) error
	// RenderListings escribe solo el contenido del contenedor listings.
	RenderListings(w io.Writer, view *dto.ListingsView) error
}

// DirectoryPDFGenerator genera la versión imprimible del listado filtrado.
type DirectoryPDFGenerator interface {
	GenerateDirectoryPDF(ctx context.Context, title string, view *dto.ListingsView) ([]byte, error)
}
