package directory

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/directorio-negocios/internal/domain/entity"
)

// Matcher evalúa el predicado de filtrado del directorio. Es puro: el resultado
// depende solo del negocio, los criterios y la tabla de categorías.
type Matcher struct {
	categories StatusCategories
}

// NewMatcher construye el matcher con la tabla de categorías de estado.
func NewMatcher(categories StatusCategories) *Matcher {
	return &Matcher{categories: categories}
}

// Categories devuelve la tabla usada por el matcher.
func (m *Matcher) Categories() StatusCategories { return m.categories }

// Match aplica los tres criterios en AND.
func (m *Matcher) Match(b entity.Business, c FilterCriteria) bool {
	return m.match(b, c, fold(c.Text))
}

// Filter devuelve los negocios que cumplen los criterios en su orden relativo
// original. No modifica la entrada.
func (m *Matcher) Filter(businesses []entity.Business, c FilterCriteria) []entity.Business {
	needle := fold(c.Text)
	out := make([]entity.Business, 0, len(businesses))
	for _, b := range businesses {
		if m.match(b, c, needle) {
			out = append(out, b)
		}
	}
	return out
}

func (m *Matcher) match(b entity.Business, c FilterCriteria, needle string) bool {
	if needle != "" && !strings.Contains(fold(b.Name), needle) {
		return false
	}
	if c.Sector != "" && b.Sector != c.Sector {
		return false
	}
	if c.StatusCategory == "" {
		return true
	}
	status, ok := m.categories.Resolve(c.StatusCategory)
	if !ok {
		// etiqueta desconocida: no coincide nada
		return false
	}
	return b.Status == status
}

// fold normaliza a NFC y pliega mayúsculas para comparar sin distinguir caja.
// cases.Caser no es seguro para uso concurrente; se crea uno por llamada.
func fold(s string) string {
	if s == "" {
		return ""
	}
	return cases.Fold().String(norm.NFC.String(s))
}
