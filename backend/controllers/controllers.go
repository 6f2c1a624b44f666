package controllers

import (
	"errors"

	"lms/backend/services"
	"lms/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFound(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		return utils.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrNotEnrolled), errors.Is(err, services.ErrNotCompleted):
		return utils.BadRequest(c, err.Error())
	default:
		return utils.InternalServerError(c, err.Error())
	}
}
