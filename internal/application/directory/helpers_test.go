package directory_test

import (
	"context"

	"github.com/jhoicas/directorio-negocios/internal/application/dto"
)

func str(s string) *string { return &s }

// fakeFeed fuente en memoria; si block no es nil espera a que se cierre o a
// que el contexto se cancele.
type fakeFeed struct {
	records []dto.BusinessRecord
	err     error
	block   chan struct{}
	calls   int
}

func (f *fakeFeed) FetchBusinesses(ctx context.Context) ([]dto.BusinessRecord, error) {
	f.calls++
	if f.block != nil {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-f.block:
		}
	}
	return f.records, f.err
}

func acmeRecord() dto.BusinessRecord {
	return dto.BusinessRecord{
		Name:   str("Acme Tables"),
		Sector: str("Furniture"),
		Status: str("company"),
		Image:  str("x/y/acme.jpg"),
	}
}
