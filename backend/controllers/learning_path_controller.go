package controllers

import (
	"fmt"

	"lms/backend/services"
	"lms/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type LearningPathController struct{}

func NewLearningPathController() *LearningPathController {
	return &LearningPathController{}
}

type PathRequest struct {
	CourseName  string `json:"course_name"`
	Days        int    `json:"days"`
	HoursPerDay int    `json:"hours_per_day"`
}

func (pr *PathRequest) validate() error {
	if pr.CourseName == "" {
		return fmt.Errorf("course_name is required")
	}
	if pr.Days <= 0 || pr.HoursPerDay <= 0 {
		return fmt.Errorf("days and hours_per_day must be positive")
	}
	return nil
}

// Generate godoc
// @Summary Generate a day-by-day learning path
// @Description Deterministic schedule for a topic and time budget
// @Tags learning-path
// @Accept json
// @Produce json
// @Success 200 {object} services.LearningPath
// @Failure 400 {object} utils.ErrorResponse
// @Router /learning-path/generate [post]
func (lpc *LearningPathController) Generate(c *fiber.Ctx) error {
	var req PathRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := req.validate(); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	return c.JSON(services.GenerateLearningPath(req.CourseName, req.Days, req.HoursPerDay))
}

// Download godoc
// @Summary Download the learning path as a PDF
// @Tags learning-path
// @Accept json
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Router /learning-path/download [post]
func (lpc *LearningPathController) Download(c *fiber.Ctx) error {
	var req PathRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := req.validate(); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	path := services.GenerateLearningPath(req.CourseName, req.Days, req.HoursPerDay)

	rows := make([]utils.PathRow, 0, len(path.Schedule))
	for _, entry := range path.Schedule {
		rows = append(rows, utils.PathRow{
			Day:      entry.Day,
			Phase:    entry.Phase,
			Topic:    entry.Topic,
			Activity: entry.Activity,
		})
	}

	pdfBytes, err := utils.GenerateLearningPathPDF(path.CourseName, path.TotalDays,
		path.HoursPerDay, path.TotalHours, rows)
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%s_path.pdf`, path.CourseName))
	return c.Send(pdfBytes)
}
