package feed

import (
	"context"
	"os"

	"github.com/jhoicas/directorio-negocios/internal/application/dto"
	"github.com/jhoicas/directorio-negocios/internal/application/ports"
	"github.com/jhoicas/directorio-negocios/internal/domain"
)

var _ ports.BusinessFeed = (*FileFeed)(nil)

// FileFeed lee el listado desde un archivo JSON local (UTF-8).
type FileFeed struct {
	path string
}

// NewFileFeed construye la fuente.
func NewFileFeed(path string) *FileFeed {
	return &FileFeed{path: path}
}

// Path ruta del archivo leído.
func (f *FileFeed) Path() string { return f.path }

// FetchBusinesses abre y decodifica el archivo.
func (f *FileFeed) FetchBusinesses(ctx context.Context) ([]dto.BusinessRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewLoadError("fetch", err)
	}
	file, err := os.Open(f.path)
	if err != nil {
		return nil, domain.NewLoadError("fetch", err)
	}
	defer file.Close()
	return DecodeRecords(file)
}
