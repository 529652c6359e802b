package dto

import (
	"encoding/json"
	"fmt"
)

// BusinessRecord forma cruda de un negocio tal como llega de la fuente.
// Todos los campos son nulos: la validación de requeridos ocurre en el loader.
type BusinessRecord struct {
	Name   *string `json:"name"`
	Sector *string `json:"sector"`
	Status *string `json:"status"`
	Desc   *string `json:"desc"`
	Image  *string `json:"image"`
	Social *string `json:"social"`
	Email  *string `json:"email"`
	Mobile *string `json:"mobile"`

	// DecodeErr se llena cuando el elemento no pudo decodificarse; el loader lo descarta.
	DecodeErr error `json:"-"`
}

// UnmarshalJSON decodifica de forma tolerante: un campo con tipo distinto de
// string se trata como ausente en lugar de invalidar todo el arreglo.
func (r *BusinessRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("registro no es un objeto JSON: %w", err)
	}
	r.Name = stringField(raw, "name")
	r.Sector = stringField(raw, "sector")
	r.Status = stringField(raw, "status")
	r.Desc = stringField(raw, "desc")
	r.Image = stringField(raw, "image")
	r.Social = stringField(raw, "social")
	r.Email = stringField(raw, "email")
	r.Mobile = stringField(raw, "mobile")
	return nil
}

func stringField(raw map[string]json.RawMessage, key string) *string {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	var s *string
	if err := json.Unmarshal(v, &s); err != nil {
		return nil
	}
	return s
}

// BusinessResponse salida JSON de un negocio del directorio.
type BusinessResponse struct {
	Name   string  `json:"name"`
	Sector string  `json:"sector"`
	Status string  `json:"status"`
	Desc   *string `json:"desc,omitempty"`
	Image  *string `json:"image,omitempty"`
	Social *string `json:"social,omitempty"`
	Email  *string `json:"email,omitempty"`
	Mobile *string `json:"mobile,omitempty"`
}

// BusinessListResponse listado filtrado.
type BusinessListResponse struct {
	State    string             `json:"state"`
	Items    []BusinessResponse `json:"items"`
	Count    int                `json:"count"`
	Total    int                `json:"total"`
	Criteria CriteriaDTO        `json:"criteria"`
}

// CriteriaDTO criterios de filtrado recibidos por query.
type CriteriaDTO struct {
	Search string `json:"search" query:"search"`
	Sector string `json:"sector" query:"sector"`
	Status string `json:"status" query:"status"`
}

// StatusCategoryDTO opción del selector statusFilter.
type StatusCategoryDTO struct {
	Label  string `json:"label"`
	Status string `json:"status"`
}
