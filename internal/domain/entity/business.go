package entity

import (
	"sort"
	"time"
)

// BusinessStatus tipo de titular del negocio en el directorio.
type BusinessStatus string

const (
	StatusCompany    BusinessStatus = "company"
	StatusIndividual BusinessStatus = "individual person"
)

// Valid informa si el estado es uno de los dos valores admitidos.
func (s BusinessStatus) Valid() bool {
	return s == StatusCompany || s == StatusIndividual
}

// Business representa una ficha del directorio. Inmutable una vez cargada.
// Los campos opcionales son nil cuando la fuente no los trae (o los trae vacíos).
type Business struct {
	Name   string
	Sector string
	Status BusinessStatus
	Desc   *string
	Image  *string // ruta canónica ya normalizada (assets/images/<archivo>)
	Social *string // URL del perfil social
	Email  *string
	Mobile *string // formato original; para tel: se usan solo dígitos
}

// Dataset es la instantánea del directorio cargada una sola vez por proceso.
// Nunca se muta: los filtros derivan vistas nuevas.
type Dataset struct {
	ID         string
	LoadedAt   time.Time
	businesses []Business
}

// NewDataset construye la instantánea copiando la secuencia recibida.
func NewDataset(id string, loadedAt time.Time, businesses []Business) *Dataset {
	items := make([]Business, len(businesses))
	copy(items, businesses)
	return &Dataset{ID: id, LoadedAt: loadedAt, businesses: items}
}

// Len número de negocios. Un Dataset nil se considera vacío.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.businesses)
}

// IsEmpty informa si no hay negocios cargados.
func (d *Dataset) IsEmpty() bool { return d.Len() == 0 }

// All devuelve una copia de los negocios en el orden original.
func (d *Dataset) All() []Business {
	if d == nil {
		return nil
	}
	out := make([]Business, len(d.businesses))
	copy(out, d.businesses)
	return out
}

// Sectors devuelve los sectores distintos, ordenados alfabéticamente.
func (d *Dataset) Sectors() []string {
	if d == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(d.businesses))
	sectors := make([]string, 0, len(d.businesses))
	for _, b := range d.businesses {
		if _, ok := seen[b.Sector]; ok {
			continue
		}
		seen[b.Sector] = struct{}{}
		sectors = append(sectors, b.Sector)
	}
	sort.Strings(sectors)
	return sectors
}
