package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"lms/backend/models"
	"lms/backend/stores"
	"lms/backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const certCodeAttempts = 3

type CertificateService struct {
	Certificates stores.CertificateStore
	Enrollments  stores.EnrollmentStore
	Users        stores.UserStore
	Courses      stores.CourseStore
	Logger       *log.Logger
}

func NewCertificateService(certificates stores.CertificateStore, enrollments stores.EnrollmentStore,
	users stores.UserStore, courses stores.CourseStore, logger *log.Logger) *CertificateService {
	return &CertificateService{
		Certificates: certificates,
		Enrollments:  enrollments,
		Users:        users,
		Courses:      courses,
		Logger:       logger,
	}
}

// Issue creates the certificate for a completed enrollment. It is idempotent
// per (user, course): an existing certificate is returned unchanged. The PDF
// render is a side effect; failures are logged and never fail the issuance.
func (s *CertificateService) Issue(userID, courseID uint) (*models.Certificate, error) {
	if existing, err := s.Certificates.GetByUserAndCourse(userID, courseID); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment, err := s.Enrollments.Get(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEnrolled
		}
		return nil, err
	}
	if !enrollment.IsCompleted {
		return nil, ErrNotCompleted
	}

	cert, err := s.createWithUniqueCode(userID, courseID)
	if err != nil {
		return nil, err
	}

	if _, err := s.renderPDF(cert); err != nil {
		s.Logger.Printf("certificate PDF generation failed for %s: %v", cert.CertificateCode, err)
	}

	return cert, nil
}

// createWithUniqueCode retries on code collisions. A duplicate on the
// (user, course) index means a concurrent issue won; return its row.
func (s *CertificateService) createWithUniqueCode(userID, courseID uint) (*models.Certificate, error) {
	var lastErr error
	for attempt := 0; attempt < certCodeAttempts; attempt++ {
		cert := &models.Certificate{
			UserID:          userID,
			CourseID:        courseID,
			CertificateCode: newCertificateCode(),
			IssuedDate:      time.Now().UTC(),
		}
		err := s.Certificates.Create(cert)
		if err == nil {
			return cert, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		if existing, getErr := s.Certificates.GetByUserAndCourse(userID, courseID); getErr == nil {
			return existing, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func newCertificateCode() string {
	code := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("LMS-%s", strings.ToUpper(code))
}

func (s *CertificateService) GetUserCertificates(userID uint) ([]models.Certificate, error) {
	return s.Certificates.ListByUser(userID)
}

func (s *CertificateService) Get(courseID, userID uint) (*models.Certificate, error) {
	cert, err := s.Certificates.GetByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cert, nil
}

// Download renders the certificate document for the given verification code.
func (s *CertificateService) Download(code string) ([]byte, error) {
	cert, err := s.Certificates.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.renderPDF(cert)
}

func (s *CertificateService) renderPDF(cert *models.Certificate) ([]byte, error) {
	user, err := s.Users.GetByID(cert.UserID)
	if err != nil {
		return nil, err
	}
	course, err := s.Courses.GetByID(cert.CourseID)
	if err != nil {
		return nil, err
	}
	return utils.GenerateCertificatePDF(user.Fullname, course.Title,
		cert.IssuedDate.Format("2006-01-02"), cert.CertificateCode)
}
