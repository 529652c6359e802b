// Package directory contiene los casos de uso del directorio de negocios:
// carga única del dataset y construcción de las vistas filtradas.
package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/directorio-negocios/internal/application/dto"
	"github.com/jhoicas/directorio-negocios/internal/application/ports"
	"github.com/jhoicas/directorio-negocios/internal/domain"
	domdir "github.com/jhoicas/directorio-negocios/internal/domain/directory"
	"github.com/jhoicas/directorio-negocios/internal/domain/entity"
	"github.com/jhoicas/directorio-negocios/pkg/logger"
)

// LoaderConfig parámetros de la carga.
type LoaderConfig struct {
	ImageBase string        // prefijo de las rutas de imagen normalizadas
	Timeout   time.Duration // 0 = sin límite
}

// LoadUseCase obtiene los negocios de la fuente, los valida y normaliza.
type LoadUseCase struct {
	feed ports.BusinessFeed
	cfg  LoaderConfig
	log  *logger.Logger
	now  func() time.Time
}

// NewLoadUseCase construye el caso de uso. Con ImageBase vacío se usa assets/images.
func NewLoadUseCase(feed ports.BusinessFeed, cfg LoaderConfig, log *logger.Logger) *LoadUseCase {
	if cfg.ImageBase == "" {
		cfg.ImageBase = domdir.DefaultImageBase
	}
	if log == nil {
		log = logger.Nop()
	}
	return &LoadUseCase{feed: feed, cfg: cfg, log: log.Component("loader"), now: time.Now}
}

// Load ejecuta la carga completa. Cualquier fallo de la fuente se devuelve
// como *domain.LoadError. Los registros inválidos se descartan con warning
// sin abortar la carga.
func (uc *LoadUseCase) Load(ctx context.Context) (*entity.Dataset, error) {
	if uc.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.Timeout)
		defer cancel()
	}

	records, err := uc.feed.FetchBusinesses(ctx)
	if err != nil {
		var loadErr *domain.LoadError
		if errors.As(err, &loadErr) {
			return nil, err
		}
		return nil, domain.NewLoadError("fetch", err)
	}

	businesses := make([]entity.Business, 0, len(records))
	for i, rec := range records {
		b, err := uc.toBusiness(rec)
		if err != nil {
			uc.log.Warn().Err(err).Int("index", i).Msg("registro descartado")
			continue
		}
		businesses = append(businesses, b)
	}

	return entity.NewDataset(uuid.NewString(), uc.now(), businesses), nil
}

// Start dispara la carga en segundo plano y publica el resultado en state.
// Se llama una sola vez al arrancar; no hay reintentos.
func (uc *LoadUseCase) Start(ctx context.Context, state *DirectoryState) {
	go func() {
		ds, err := uc.Load(ctx)
		state.Publish(ds, err)
		if err != nil {
			uc.log.Error().Err(err).Msg("error cargando el directorio de negocios")
			return
		}
		uc.log.Info().
			Str("snapshot_id", ds.ID).
			Int("businesses", ds.Len()).
			Msg("directorio cargado")
	}()
}

// toBusiness valida requeridos y normaliza opcionales de un registro.
func (uc *LoadUseCase) toBusiness(rec dto.BusinessRecord) (entity.Business, error) {
	if rec.DecodeErr != nil {
		return entity.Business{}, fmt.Errorf("%w: %v", domain.ErrInvalidRecord, rec.DecodeErr)
	}
	name := trimmed(rec.Name)
	if name == nil {
		return entity.Business{}, fmt.Errorf("%w: falta name", domain.ErrInvalidRecord)
	}
	sector := trimmed(rec.Sector)
	if sector == nil {
		return entity.Business{}, fmt.Errorf("%w: falta sector (%s)", domain.ErrInvalidRecord, *name)
	}
	var status entity.BusinessStatus
	if s := trimmed(rec.Status); s != nil {
		status = entity.BusinessStatus(*s)
	}
	if !status.Valid() {
		return entity.Business{}, fmt.Errorf("%w: status desconocido %q (%s)", domain.ErrInvalidRecord, status, *name)
	}

	b := entity.Business{
		Name:   *name,
		Sector: *sector,
		Status: status,
		Desc:   trimmed(rec.Desc),
		Social: trimmed(rec.Social),
		Email:  trimmed(rec.Email),
		Mobile: trimmed(rec.Mobile),
	}
	if img := trimmed(rec.Image); img != nil {
		if p, ok := domdir.NormalizeImagePath(uc.cfg.ImageBase, *img); ok {
			b.Image = &p
		} else {
			uc.log.Debug().Str("business", b.Name).Str("image", *img).Msg("imagen sin nombre de archivo, se omite")
		}
	}
	return b, nil
}

// trimmed devuelve nil para nil o cadenas en blanco.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
