package directory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/directorio-negocios/internal/domain/directory"
	"github.com/jhoicas/directorio-negocios/internal/domain/entity"
)

func TestBuildListings_DatasetVacio_SiempreLoading(t *testing.T) {
	m := newMatcher()
	criterios := []directory.FilterCriteria{
		{},
		{Text: "acme"},
		{Sector: "Furniture", StatusCategory: directory.DefaultCompanyLabel},
		{StatusCategory: "desconocida"},
	}
	for _, ds := range []*entity.Dataset{nil, entity.NewDataset("x", time.Now(), nil)} {
		for _, c := range criterios {
			got := directory.BuildListings(ds, m, c)
			assert.Equal(t, directory.StateLoading, got.State)
			assert.Empty(t, got.Businesses)
		}
	}
}

func TestBuildListings_SinCoincidencias_EmptyResult(t *testing.T) {
	ds := entity.NewDataset("x", time.Now(), sampleBusinesses())
	got := directory.BuildListings(ds, newMatcher(), directory.FilterCriteria{Text: "zzz"})
	assert.Equal(t, directory.StateEmpty, got.State)
	assert.Equal(t, 4, got.Total)
	assert.Empty(t, got.Businesses)
}

func TestBuildListings_ConCoincidencias_Populated(t *testing.T) {
	ds := entity.NewDataset("x", time.Now(), sampleBusinesses())
	got := directory.BuildListings(ds, newMatcher(), directory.FilterCriteria{Sector: "Food"})
	assert.Equal(t, directory.StatePopulated, got.State)
	assert.Equal(t, []string{"Café Central"}, names(got.Businesses))
}

// Escenario: Acme con "Office Furniture" (personas naturales) → 0 tarjetas.
func TestBuildListings_EscenarioOfficeFurniture(t *testing.T) {
	ds := entity.NewDataset("x", time.Now(), []entity.Business{
		{Name: "Acme Tables", Sector: "Furniture", Status: entity.StatusCompany, Image: str("assets/images/acme.jpg")},
	})
	got := directory.BuildListings(ds, newMatcher(), directory.FilterCriteria{StatusCategory: "Office Furniture"})
	assert.Equal(t, directory.StateEmpty, got.State)
}
