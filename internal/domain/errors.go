package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrLoad            = errors.New("no se pudo cargar el directorio de negocios")
	ErrInvalidRecord   = errors.New("registro de negocio inválido")
	ErrDatasetNotReady = errors.New("el directorio aún no está cargado")
	ErrInvalidInput    = errors.New("entrada inválida")
)

// LoadError describe un fallo terminal de la carga del directorio:
// transporte caído, respuesta no exitosa o payload malformado.
// No se reintenta; el proceso queda sin dataset hasta reiniciarse.
type LoadError struct {
	Op    string // fetch, status, decode
	Cause error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", ErrLoad.Error(), e.Op, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", ErrLoad.Error(), e.Op)
}

// Unwrap expone la causa para errors.Is / errors.As.
func (e *LoadError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrLoad}
	}
	return []error{ErrLoad, e.Cause}
}

// NewLoadError construye un LoadError para la operación indicada.
func NewLoadError(op string, cause error) *LoadError {
	return &LoadError{Op: op, Cause: cause}
}

// StatusError es la respuesta no exitosa de una fuente remota.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("respuesta no exitosa: HTTP %d", e.StatusCode)
}
