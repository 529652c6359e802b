package feed

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/directorio-negocios/internal/application/ports"
	"github.com/jhoicas/directorio-negocios/internal/infrastructure/postgres"
	"github.com/jhoicas/directorio-negocios/pkg/config"
)

// FromConfig construye la fuente indicada por FEED_KIND. El cierre devuelto
// libera los recursos de la fuente (pool de postgres); nunca es nil.
func FromConfig(ctx context.Context, cfg config.FeedConfig, db config.DBConfig) (ports.BusinessFeed, func(), error) {
	switch cfg.Kind {
	case config.FeedKindFile:
		return NewFileFeed(cfg.FilePath), func() {}, nil
	case config.FeedKindHTTP:
		return NewHTTPFeed(cfg.URL, &http.Client{}), func() {}, nil
	case config.FeedKindPostgres:
		pool, err := postgres.NewPool(ctx, db)
		if err != nil {
			return nil, func() {}, fmt.Errorf("feed: conexión a PostgreSQL: %w", err)
		}
		return postgres.NewBusinessSource(pool), pool.Close, nil
	default:
		return nil, func() {}, fmt.Errorf("feed: tipo desconocido %q", cfg.Kind)
	}
}
