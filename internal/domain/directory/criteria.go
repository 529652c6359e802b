package directory

// FilterCriteria criterios transitorios de una petición de listado.
// Se recalculan en cada evento y nunca se persisten.
type FilterCriteria struct {
	Text           string // búsqueda libre sobre el nombre
	Sector         string // igualdad exacta; vacío = todos
	StatusCategory string // etiqueta de StatusCategories; vacío = todos
}

// IsZero informa si los tres criterios están vacíos (filtro identidad).
func (c FilterCriteria) IsZero() bool {
	return c.Text == "" && c.Sector == "" && c.StatusCategory == ""
}
