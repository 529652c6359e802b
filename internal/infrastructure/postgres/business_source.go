package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/directorio-negocios/internal/application/dto"
	"github.com/jhoicas/directorio-negocios/internal/application/ports"
	"github.com/jhoicas/directorio-negocios/internal/domain"
)

// Querier es lo mínimo que necesita la fuente: *pgxpool.Pool, *pgx.Conn o pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var _ ports.BusinessFeed = (*BusinessSource)(nil)

// BusinessSource lee el directorio desde la tabla businesses (FEED_KIND=postgres).
// Los registros salen crudos; la validación la hace el loader igual que con las demás fuentes.
type BusinessSource struct {
	q Querier
}

// NewBusinessSource construye la fuente. Pasar pool o tx (Querier).
func NewBusinessSource(q Querier) *BusinessSource {
	return &BusinessSource{q: q}
}

const selectBusinesses = `
	SELECT name, sector, status, "desc", image, social, email, mobile
	FROM businesses
	ORDER BY position, id`

// FetchBusinesses devuelve todas las filas en el orden del directorio.
// Errores de consulta o de escaneo → *domain.LoadError.
func (s *BusinessSource) FetchBusinesses(ctx context.Context) ([]dto.BusinessRecord, error) {
	rows, err := s.q.Query(ctx, selectBusinesses)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, domain.NewLoadError("fetch", fmt.Errorf("tabla businesses inexistente: %w", err))
		}
		return nil, domain.NewLoadError("fetch", fmt.Errorf("query businesses: %w", err))
	}
	defer rows.Close()

	var records []dto.BusinessRecord
	for rows.Next() {
		var rec dto.BusinessRecord
		if err := rows.Scan(
			&rec.Name, &rec.Sector, &rec.Status, &rec.Desc,
			&rec.Image, &rec.Social, &rec.Email, &rec.Mobile,
		); err != nil {
			return nil, domain.NewLoadError("decode", fmt.Errorf("scan business: %w", err))
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewLoadError("fetch", fmt.Errorf("iterar businesses: %w", err))
	}
	return records, nil
}
