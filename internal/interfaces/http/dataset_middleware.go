package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-negocios/internal/application/directory"
	"github.com/jhoicas/directorio-negocios/internal/application/dto"
	"github.com/jhoicas/directorio-negocios/internal/domain"
)

// datasetChecker es el contrato mínimo que necesita el middleware.
// Lo implementa *directory.DirectoryState.
type datasetChecker interface {
	Status() string
}

// RequireDataset devuelve un middleware Fiber que corta la petición mientras
// el directorio no esté disponible.
//
// Comportamiento:
//   - 503 DATASET_LOADING → la carga sigue en curso.
//   - 503 LOAD_FAILED     → la carga falló; no se reintenta hasta reiniciar.
func RequireDataset(checker datasetChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch checker.Status() {
		case directory.DatasetLoading:
			return datasetLoading(c)
		case directory.DatasetFailed:
			return loadFailed(c)
		}
		return c.Next()
	}
}

// writeDatasetError traduce los errores de disponibilidad del directorio a HTTP.
func writeDatasetError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrDatasetNotReady):
		return datasetLoading(c)
	case errors.Is(err, domain.ErrLoad):
		return loadFailed(c)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func datasetLoading(c *fiber.Ctx) error {
	c.Set(fiber.HeaderRetryAfter, "5")
	return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
		Code:    "DATASET_LOADING",
		Message: "el directorio aún se está cargando, intente más tarde",
	})
}

func loadFailed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
		Code:    "LOAD_FAILED",
		Message: "no se pudo cargar el directorio de negocios",
	})
}
