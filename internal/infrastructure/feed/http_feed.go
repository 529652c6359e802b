package feed

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/directorio-negocios/internal/application/dto"
	"github.com/jhoicas/directorio-negocios/internal/application/ports"
	"github.com/jhoicas/directorio-negocios/internal/domain"
)

// Verificar en tiempo de compilación que HTTPFeed implementa BusinessFeed.
var _ ports.BusinessFeed = (*HTTPFeed)(nil)

// HTTPFeed obtiene businesses.json con un GET a una URL fija.
// Sin autenticación, sin paginación, sin caché.
type HTTPFeed struct {
	url    string
	client *http.Client
}

// NewHTTPFeed construye la fuente. Con client nil se usa un cliente sin
// timeout propio: el límite, si existe, lo pone el contexto del loader.
func NewHTTPFeed(url string, client *http.Client) *HTTPFeed {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPFeed{url: url, client: client}
}

// FetchBusinesses descarga y decodifica el listado. Status distinto de 2xx,
// error de red o JSON malformado → *domain.LoadError.
func (f *HTTPFeed) FetchBusinesses(ctx context.Context) ([]dto.BusinessRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, domain.NewLoadError("fetch", fmt.Errorf("construir petición: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, domain.NewLoadError("fetch", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewLoadError("status", &domain.StatusError{StatusCode: resp.StatusCode})
	}
	return DecodeRecords(charsetReader(resp.Body, resp.Header.Get("Content-Type")))
}
