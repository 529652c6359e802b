package directory

import (
	"context"
	"fmt"

	"github.com/jhoicas/directorio-negocios/internal/application/dto"
	"github.com/jhoicas/directorio-negocios/internal/application/ports"
	"github.com/jhoicas/directorio-negocios/internal/domain"
	domdir "github.com/jhoicas/directorio-negocios/internal/domain/directory"
)

// ExportUseCase genera el PDF del listado filtrado.
type ExportUseCase struct {
	listings *ListingsUseCase
	pdf      ports.DirectoryPDFGenerator
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(listings *ListingsUseCase, pdf ports.DirectoryPDFGenerator) *ExportUseCase {
	return &ExportUseCase{listings: listings, pdf: pdf}
}

// ExportPDF aplica los criterios y delega el documento al generador.
// Sin dataset disponible devuelve domain.ErrDatasetNotReady o el *domain.LoadError.
func (uc *ExportUseCase) ExportPDF(ctx context.Context, in dto.CriteriaDTO) ([]byte, error) {
	view := uc.listings.Build(Criteria(in))
	switch view.State {
	case string(domdir.StateLoading):
		return nil, domain.ErrDatasetNotReady
	case string(domdir.StateFailed):
		_, err := uc.listings.state.Snapshot()
		return nil, err
	}
	doc, err := uc.pdf.GenerateDirectoryPDF(ctx, pageTitle, view)
	if err != nil {
		return nil, fmt.Errorf("export: generar pdf: %w", err)
	}
	return doc, nil
}
