package directory

import "github.com/jhoicas/directorio-negocios/internal/domain/entity"

// Etiquetas por defecto del selector statusFilter.
// OJO: los nombres no describen el tipo de titular ("Home Furniture" filtra
// empresas, "Office Furniture" personas naturales). Se mantienen tal cual
// hasta que negocio confirme la terminología; se pueden cambiar por config.
const (
	DefaultCompanyLabel    = "Home Furniture"
	DefaultIndividualLabel = "Office Furniture"
)

// StatusCategory etiqueta visible del selector y el estado al que apunta.
type StatusCategory struct {
	Label  string
	Status entity.BusinessStatus
}

// StatusCategories tabla etiqueta → estado. Conserva el orden de declaración
// para poblar el selector.
type StatusCategories struct {
	items []StatusCategory
}

// NewStatusCategories construye la tabla. Etiquetas vacías o repetidas se ignoran.
func NewStatusCategories(items ...StatusCategory) StatusCategories {
	seen := make(map[string]struct{}, len(items))
	out := make([]StatusCategory, 0, len(items))
	for _, it := range items {
		if it.Label == "" {
			continue
		}
		if _, ok := seen[it.Label]; ok {
			continue
		}
		seen[it.Label] = struct{}{}
		out = append(out, it)
	}
	return StatusCategories{items: out}
}

// DefaultStatusCategories tabla con las etiquetas históricas del directorio.
func DefaultStatusCategories() StatusCategories {
	return NewStatusCategories(
		StatusCategory{Label: DefaultCompanyLabel, Status: entity.StatusCompany},
		StatusCategory{Label: DefaultIndividualLabel, Status: entity.StatusIndividual},
	)
}

// Resolve devuelve el estado asociado a la etiqueta. ok=false si no existe.
func (t StatusCategories) Resolve(label string) (entity.BusinessStatus, bool) {
	for _, it := range t.items {
		if it.Label == label {
			return it.Status, true
		}
	}
	return "", false
}

// Items devuelve una copia de la tabla en orden.
func (t StatusCategories) Items() []StatusCategory {
	out := make([]StatusCategory, len(t.items))
	copy(out, t.items)
	return out
}
