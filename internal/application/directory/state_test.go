package directory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-negocios/internal/application/directory"
	"github.com/jhoicas/directorio-negocios/internal/domain"
	"github.com/jhoicas/directorio-negocios/internal/domain/entity"
)

func TestDirectoryState_PrimeraPublicacionGana(t *testing.T) {
	state := directory.NewDirectoryState()
	first := entity.NewDataset("a", time.Now(), []entity.Business{{Name: "Acme", Sector: "F", Status: entity.StatusCompany}})

	assert.True(t, state.Publish(first, nil))
	assert.False(t, state.Publish(nil, errors.New("tarde")), "el dataset no se recarga")

	ds, err := state.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "a", ds.ID)
}

func TestDirectoryState_Wait_ContextoCancelado(t *testing.T) {
	state := directory.NewDirectoryState()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := state.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, directory.DatasetLoading, state.Status())
}

func TestDirectoryState_Wait_Fallo(t *testing.T) {
	state := directory.NewDirectoryState()
	state.Publish(nil, domain.NewLoadError("decode", errors.New("json")))

	_, err := state.Wait(context.Background())
	assert.ErrorIs(t, err, domain.ErrLoad)
}
