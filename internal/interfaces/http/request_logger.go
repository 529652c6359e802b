package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-negocios/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, status y latencia.
// Los 5xx salen en nivel error; el resto en debug para no inundar los logs.
func RequestLogger(log *logger.Logger) fiber.Handler {
	httpLog := log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := httpLog.Debug()
		if status >= fiber.StatusInternalServerError {
			ev = httpLog.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}
