package directory

import (
	"context"
	"sync"

	"github.com/jhoicas/directorio-negocios/internal/domain"
	"github.com/jhoicas/directorio-negocios/internal/domain/entity"
)

// Estados del dataset expuestos en /health.
const (
	DatasetLoading = "loading"
	DatasetReady   = "ready"
	DatasetFailed  = "failed"
)

// DirectoryState dueño explícito del dataset del proceso. Nace vacío, se
// escribe una única vez (éxito o fallo) y a partir de ahí solo se lee.
// Se pasa por referencia a quien lo necesite; no hay variables globales.
type DirectoryState struct {
	once    sync.Once
	ready   chan struct{}
	mu      sync.RWMutex
	dataset *entity.Dataset
	loadErr error
}

// NewDirectoryState crea el estado vacío (fase Loading).
func NewDirectoryState() *DirectoryState {
	return &DirectoryState{ready: make(chan struct{})}
}

// Publish registra el resultado de la carga. Solo la primera llamada tiene
// efecto; devuelve false si el estado ya estaba publicado.
func (s *DirectoryState) Publish(ds *entity.Dataset, err error) bool {
	published := false
	s.once.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if err == nil {
			s.dataset = ds
		}
		s.loadErr = err
		published = true
		close(s.ready)
	})
	return published
}

// Ready se cierra cuando la carga terminó (con éxito o no).
func (s *DirectoryState) Ready() <-chan struct{} { return s.ready }

// Snapshot devuelve el dataset actual (nil mientras carga o si falló) y el
// error de carga, si lo hubo.
func (s *DirectoryState) Snapshot() (*entity.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset, s.loadErr
}

// Status resume la fase del dataset: loading, ready o failed.
func (s *DirectoryState) Status() string {
	ds, err := s.Snapshot()
	switch {
	case err != nil:
		return DatasetFailed
	case ds != nil:
		return DatasetReady
	default:
		return DatasetLoading
	}
}

// Wait bloquea hasta que la carga termine o el contexto se cancele.
func (s *DirectoryState) Wait(ctx context.Context) (*entity.Dataset, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.ready:
	}
	ds, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	if ds == nil {
		return nil, domain.ErrDatasetNotReady
	}
	return ds, nil
}
