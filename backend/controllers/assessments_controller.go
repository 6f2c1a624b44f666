package controllers

import (
	"lms/backend/config"
	"lms/backend/models"
	"lms/backend/services"
	"lms/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AssessmentsController struct {
	Assessments *services.AssessmentService
	Cfg         *config.Config
}

func NewAssessmentsController(assessments *services.AssessmentService, cfg *config.Config) *AssessmentsController {
	return &AssessmentsController{Assessments: assessments, Cfg: cfg}
}

// CreateQuestion godoc
// @Summary Create a quiz question for a course
// @Tags assessments
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 201 {object} utils.SuccessResponse
// @Router /assessments/{courseId} [post]
func (asc *AssessmentsController) CreateQuestion(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}

	var question models.Assessment
	if err := c.BodyParser(&question); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if err := asc.Assessments.CreateQuestion(uint(courseID), &question); err != nil {
		return respondServiceError(c, err)
	}
	return utils.Created(c, question)
}

// ListQuestions godoc
// @Summary List course quiz questions
// @Tags assessments
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} utils.SuccessResponse
// @Router /assessments/{courseId} [get]
func (asc *AssessmentsController) ListQuestions(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}

	questions, err := asc.Assessments.ListQuestions(uint(courseID))
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, questions)
}

// GenerateQuiz godoc
// @Summary Generate a quiz for a topic
// @Description Samples up to 5 questions from the topic bank; unknown topics get placeholders
// @Tags assessments
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /assessments/generate [post]
func (asc *AssessmentsController) GenerateQuiz(c *fiber.Ctx) error {
	type QuizRequest struct {
		Topic string `json:"topic"`
	}
	var req QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if req.Topic == "" {
		return utils.BadRequest(c, "Topic is required")
	}

	return utils.Success(c, fiber.StatusOK, services.GenerateQuiz(req.Topic))
}

// SubmitResult godoc
// @Summary Submit an assessment result
// @Tags assessments
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 201 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /assessments/{courseId}/submit [post]
func (asc *AssessmentsController) SubmitResult(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, asc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := c.ParamsInt("courseId")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}

	type SubmitInput struct {
		Score int `json:"score"`
	}
	var input SubmitInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	result, err := asc.Assessments.SubmitResult(uint(courseID), userID, input.Score)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.Created(c, result)
}
