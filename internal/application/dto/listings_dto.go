package dto

// ListingsView contenido completo del contenedor listings. Cada render lo
// reemplaza entero.
type ListingsView struct {
	State   string // loading, empty, populated, failed
	Message string // texto para loading/empty/failed
	Cards   []CardView
	Count   int
	Total   int
}

// Placeholder informa si se muestra un mensaje en lugar de tarjetas.
func (v *ListingsView) Placeholder() bool {
	return v.State != "populated"
}

// CardView datos de presentación de una tarjeta. Los campos vacíos indican
// que el bloque correspondiente se omite.
type CardView struct {
	Name        string
	Sector      string
	Desc        string
	Image       string
	Badge       BadgeView
	Social      string
	Email       string
	Mobile      string // texto visible, formato original
	PhoneDigits string // destino tel:
}

// BadgeView insignia de estado (siempre visible).
type BadgeView struct {
	Label   string // Company / Individual
	Variant string // company / individual
}

// PageView datos de la página completa del directorio.
type PageView struct {
	Title         string
	Criteria      CriteriaDTO
	Sectors       []string
	StatusOptions []string
	Listings      *ListingsView
	FailedMessage string // se muestra si el navegador no logra pedir el fragmento
}
