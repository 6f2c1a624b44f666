package controllers

import (
	"lms/backend/services"
	"lms/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	Dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: dashboard}
}

// Stats godoc
// @Summary Dashboard statistics for a user
// @Description Aggregate counts: courses, enrollments, attendance, certificates
// @Tags dashboard
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {object} services.DashboardStats
// @Failure 400 {object} utils.ErrorResponse
// @Router /dashboard/stats [get]
func (dc *DashboardController) Stats(c *fiber.Ctx) error {
	userID := c.QueryInt("user_id")
	if userID <= 0 {
		return utils.BadRequest(c, "user_id query parameter is required")
	}

	stats, err := dc.Dashboard.Stats(uint(userID))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(stats)
}
