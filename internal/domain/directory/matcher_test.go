package directory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-negocios/internal/domain/directory"
	"github.com/jhoicas/directorio-negocios/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func str(s string) *string { return &s }

func sampleBusinesses() []entity.Business {
	return []entity.Business{
		{Name: "Acme Tables", Sector: "Furniture", Status: entity.StatusCompany, Image: str("assets/images/acme.jpg")},
		{Name: "Bella Sofás", Sector: "Furniture", Status: entity.StatusIndividual},
		{Name: "Café Central", Sector: "Food", Status: entity.StatusCompany, Email: str("hola@cafe.co")},
		{Name: "ACME Desks", Sector: "Office", Status: entity.StatusIndividual, Mobile: str("+57 (300) 123-4567")},
	}
}

func names(list []entity.Business) []string {
	out := make([]string, 0, len(list))
	for _, b := range list {
		out = append(out, b.Name)
	}
	return out
}

func newMatcher() *directory.Matcher {
	return directory.NewMatcher(directory.DefaultStatusCategories())
}

// ──────────────────────────────────────────────────────────────────────────────
// Predicado
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_CriteriosVacios_EsIdentidad(t *testing.T) {
	all := sampleBusinesses()
	got := newMatcher().Filter(all, directory.FilterCriteria{})
	assert.Equal(t, all, got, "criterios vacíos deben devolver todo en el orden original")
}

func TestFilter_TextoSinDistinguirMayusculas(t *testing.T) {
	got := newMatcher().Filter(sampleBusinesses(), directory.FilterCriteria{Text: "acme"})
	assert.Equal(t, []string{"Acme Tables", "ACME Desks"}, names(got))
}

func TestFilter_TextoConAcentos(t *testing.T) {
	got := newMatcher().Filter(sampleBusinesses(), directory.FilterCriteria{Text: "CAFÉ"})
	assert.Equal(t, []string{"Café Central"}, names(got))
}

// El plegado es Unicode completo (cases.Fold), no un simple paso a minúsculas:
// "ß" equivale a "ss" y las formas NFD coinciden con las NFC.
func TestMatch_PlegadoUnicodeCompleto(t *testing.T) {
	m := newMatcher()
	strasse := entity.Business{Name: "Bäckerei Straße", Sector: "Food", Status: entity.StatusCompany}

	assert.True(t, m.Match(strasse, directory.FilterCriteria{Text: "strasse"}), "ß se pliega a ss")
	assert.True(t, m.Match(strasse, directory.FilterCriteria{Text: "STRASSE"}))
	assert.True(t, m.Match(strasse, directory.FilterCriteria{Text: "ss"}))
	assert.True(t, m.Match(strasse, directory.FilterCriteria{Text: "ba\u0308ckerei"}), "NFD equivale a NFC")
	assert.False(t, m.Match(strasse, directory.FilterCriteria{Text: "strase"}))
}

func TestMatch_AutoCoincidenciaPorNombre(t *testing.T) {
	m := newMatcher()
	for _, b := range sampleBusinesses() {
		assert.True(t, m.Match(b, directory.FilterCriteria{Text: b.Name}), b.Name)
	}
}

func TestFilter_SectorExactoSensibleAMayusculas(t *testing.T) {
	m := newMatcher()
	got := m.Filter(sampleBusinesses(), directory.FilterCriteria{Sector: "Furniture"})
	assert.Equal(t, []string{"Acme Tables", "Bella Sofás"}, names(got))

	got = m.Filter(sampleBusinesses(), directory.FilterCriteria{Sector: "furniture"})
	assert.Empty(t, got, "el sector se compara de forma exacta")
}

func TestFilter_CategoriaDeEstado(t *testing.T) {
	m := newMatcher()
	companies := m.Filter(sampleBusinesses(), directory.FilterCriteria{StatusCategory: directory.DefaultCompanyLabel})
	assert.Equal(t, []string{"Acme Tables", "Café Central"}, names(companies))

	individuals := m.Filter(sampleBusinesses(), directory.FilterCriteria{StatusCategory: directory.DefaultIndividualLabel})
	assert.Equal(t, []string{"Bella Sofás", "ACME Desks"}, names(individuals))
}

func TestFilter_CategoriaDesconocida_NoCoincideNada(t *testing.T) {
	got := newMatcher().Filter(sampleBusinesses(), directory.FilterCriteria{StatusCategory: "company"})
	assert.Empty(t, got, "solo las etiquetas de la tabla son válidas")
}

func TestFilter_CriteriosCombinadosEnAND(t *testing.T) {
	got := newMatcher().Filter(sampleBusinesses(), directory.FilterCriteria{
		Text:           "acme",
		Sector:         "Office",
		StatusCategory: directory.DefaultIndividualLabel,
	})
	assert.Equal(t, []string{"ACME Desks"}, names(got))
}

func TestFilter_EsDeterministaYNoMutaLaEntrada(t *testing.T) {
	m := newMatcher()
	all := sampleBusinesses()
	before := sampleBusinesses()
	c := directory.FilterCriteria{Text: "a", StatusCategory: directory.DefaultCompanyLabel}

	first := m.Filter(all, c)
	second := m.Filter(all, c)

	assert.Equal(t, first, second)
	assert.Equal(t, before, all, "Filter no debe modificar el slice de entrada")
}

func TestStatusCategories_Configurable(t *testing.T) {
	table := directory.NewStatusCategories(
		directory.StatusCategory{Label: "Empresas", Status: entity.StatusCompany},
		directory.StatusCategory{Label: "Personas", Status: entity.StatusIndividual},
		directory.StatusCategory{Label: "Empresas", Status: entity.StatusIndividual},
		directory.StatusCategory{Label: "", Status: entity.StatusCompany},
	)
	require.Len(t, table.Items(), 2, "duplicados y vacíos se descartan")

	status, ok := table.Resolve("Personas")
	require.True(t, ok)
	assert.Equal(t, entity.StatusIndividual, status)

	_, ok = table.Resolve(directory.DefaultCompanyLabel)
	assert.False(t, ok)

	got := directory.NewMatcher(table).Filter(sampleBusinesses(), directory.FilterCriteria{StatusCategory: "Empresas"})
	assert.Equal(t, []string{"Acme Tables", "Café Central"}, names(got))
}
