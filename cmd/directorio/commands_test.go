package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-negocios/internal/application/dto"
)

const sampleJSON = `[
  {"name": "Acme Tables", "sector": "Furniture", "status": "company", "image": "img/acme.jpg"},
  {"name": "Bella Sofás", "sector": "Decor", "status": "individual person", "email": "bella@example.com"},
  {"sector": "Decor", "status": "company"}
]`

func setupFeed(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "businesses.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o600))
	t.Setenv("FEED_KIND", "file")
	t.Setenv("FEED_FILE", path)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListar_Tabla(t *testing.T) {
	setupFeed(t)

	out, err := run(t, "listar", "--buscar", "ACME")
	require.NoError(t, err)
	assert.Contains(t, out, "Acme Tables")
	assert.Contains(t, out, "Company")
	assert.NotContains(t, out, "Bella")
	assert.Contains(t, out, "1 de 2 negocios")
}

func TestListar_SinCoincidencias(t *testing.T) {
	setupFeed(t)

	out, err := run(t, "listar", "--sector", "Food")
	require.NoError(t, err)
	assert.Contains(t, out, "No businesses match your search criteria.")
}

func TestListar_JSON(t *testing.T) {
	setupFeed(t)

	out, err := run(t, "listar", "--estado", "Office Furniture", "--json")
	require.NoError(t, err)

	var res dto.BusinessListResponse
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Bella Sofás", res.Items[0].Name)
}

func TestSectores(t *testing.T) {
	setupFeed(t)

	out, err := run(t, "sectores")
	require.NoError(t, err)
	assert.Equal(t, "Decor\nFurniture\n", out)
}

func TestListar_FuenteInexistente(t *testing.T) {
	t.Setenv("FEED_KIND", "file")
	t.Setenv("FEED_FILE", filepath.Join(t.TempDir(), "no-existe.json"))

	_, err := run(t, "listar")
	assert.Error(t, err)
}
