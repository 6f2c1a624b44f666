package controllers

import (
	"fmt"

	"lms/backend/config"
	"lms/backend/services"
	"lms/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CertificatesController struct {
	Certificates *services.CertificateService
	Cfg          *config.Config
}

func NewCertificatesController(certificates *services.CertificateService, cfg *config.Config) *CertificatesController {
	return &CertificatesController{Certificates: certificates, Cfg: cfg}
}

// Issue godoc
// @Summary Issue a certificate for a completed course
// @Description Idempotent per (user, course); requires a completed enrollment
// @Tags certificates
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /certificates/{courseId}/issue [post]
func (crc *CertificatesController) Issue(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, crc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := c.ParamsInt("courseId")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}

	cert, err := crc.Certificates.Issue(userID, uint(courseID))
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, cert)
}

// GetUserCertificates godoc
// @Summary List certificates of a user
// @Tags certificates
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} utils.SuccessResponse
// @Router /certificates/user/{userId} [get]
func (crc *CertificatesController) GetUserCertificates(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}

	certs, err := crc.Certificates.GetUserCertificates(uint(userID))
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, certs)
}

// Get godoc
// @Summary Get a certificate for a user and course
// @Tags certificates
// @Produce json
// @Param courseId path int true "Course ID"
// @Param userId path int true "User ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /certificates/{courseId}/{userId} [get]
func (crc *CertificatesController) Get(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}

	cert, err := crc.Certificates.Get(uint(courseID), uint(userID))
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, cert)
}

// Download godoc
// @Summary Download the certificate PDF by verification code
// @Tags certificates
// @Produce application/pdf
// @Param code path string true "Certificate code"
// @Success 200 {file} binary
// @Failure 404 {object} utils.ErrorResponse
// @Router /certificates/download/{code} [get]
func (crc *CertificatesController) Download(c *fiber.Ctx) error {
	code := c.Params("code")

	pdfBytes, err := crc.Certificates.Download(code)
	if err != nil {
		return respondServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=Certificate-%s.pdf`, code))
	return c.Send(pdfBytes)
}
