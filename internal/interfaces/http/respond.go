package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mini-erp-api/internal/application/dto"
	"github.com/rs/zerolog/log"
)

// internalError responde un 500 genérico. El error real se registra en el log;
// su mensaje nunca viaja al cliente.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
}
