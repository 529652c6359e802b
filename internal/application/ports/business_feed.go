package ports

import (
	"context"

	"github.com/jhoicas/directorio-negocios/internal/application/dto"
)

// BusinessFeed puerto de entrada del directorio: entrega los registros crudos
// de la fuente (archivo, HTTP, PostgreSQL). Un error aquí es terminal para la carga.
type BusinessFeed interface {
	FetchBusinesses(ctx context.Context) ([]dto.BusinessRecord, error)
}
