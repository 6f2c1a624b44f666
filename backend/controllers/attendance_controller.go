package controllers

import (
	"lms/backend/config"
	"lms/backend/services"
	"lms/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AttendanceController struct {
	Attendance *services.AttendanceService
	Cfg        *config.Config
}

func NewAttendanceController(attendance *services.AttendanceService, cfg *config.Config) *AttendanceController {
	return &AttendanceController{Attendance: attendance, Cfg: cfg}
}

// Mark godoc
// @Summary Mark attendance
// @Description Deduplicates on the exact (user, course, lesson) triple
// @Tags attendance
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /attendance [post]
func (atc *AttendanceController) Mark(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, atc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	type MarkInput struct {
		CourseID *uint `json:"course_id"`
		LessonID *uint `json:"lesson_id"`
	}
	var input MarkInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	record, err := atc.Attendance.Mark(userID, input.CourseID, input.LessonID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, record)
}

// Streak godoc
// @Summary Get attendance streak
// @Description Consecutive attended days anchored at today or yesterday
// @Tags attendance
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /attendance/{userId}/streak [get]
func (atc *AttendanceController) Streak(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}

	streak, err := atc.Attendance.Streak(uint(userID))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"streak": streak})
}

// ListUserAttendance godoc
// @Summary List a user's attendance records
// @Tags attendance
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} utils.SuccessResponse
// @Router /attendance/{userId} [get]
func (atc *AttendanceController) ListUserAttendance(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}

	records, err := atc.Attendance.ListUserAttendance(uint(userID))
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, records)
}
