package directory

import "github.com/jhoicas/directorio-negocios/internal/domain/entity"

// ListingsState estados mutuamente excluyentes del área de listados.
type ListingsState string

const (
	StateLoading   ListingsState = "loading"   // dataset vacío
	StateEmpty     ListingsState = "empty"     // dataset con datos, filtro sin coincidencias
	StatePopulated ListingsState = "populated" // al menos una coincidencia
	StateFailed    ListingsState = "failed"    // carga fallida (terminal)
)

// Listings resultado de aplicar los criterios sobre el dataset.
type Listings struct {
	State      ListingsState
	Businesses []entity.Business
	Total      int // tamaño del dataset
}

// BuildListings calcula el estado del área de listados. Con dataset vacío el
// resultado es siempre Loading, sin importar los criterios.
func BuildListings(ds *entity.Dataset, m *Matcher, c FilterCriteria) Listings {
	if ds.IsEmpty() {
		return Listings{State: StateLoading}
	}
	matched := m.Filter(ds.All(), c)
	if len(matched) == 0 {
		return Listings{State: StateEmpty, Total: ds.Len()}
	}
	return Listings{State: StatePopulated, Businesses: matched, Total: ds.Len()}
}
