package services

import (
	"errors"
	"log"
	"time"

	"lms/backend/models"
	"lms/backend/stores"

	"gorm.io/gorm"
)

type CourseService struct {
	Courses      stores.CourseStore
	Enrollments  stores.EnrollmentStore
	Attendance   stores.AttendanceStore
	Certificates *CertificateService
	Logger       *log.Logger
}

func NewCourseService(courses stores.CourseStore, enrollments stores.EnrollmentStore,
	attendance stores.AttendanceStore, certificates *CertificateService, logger *log.Logger) *CourseService {
	return &CourseService{
		Courses:      courses,
		Enrollments:  enrollments,
		Attendance:   attendance,
		Certificates: certificates,
		Logger:       logger,
	}
}

func (s *CourseService) CreateCourse(course *models.Course) error {
	return s.Courses.Create(course)
}

func (s *CourseService) ListCourses() ([]models.Course, error) {
	return s.Courses.List()
}

func (s *CourseService) GetCourse(courseID uint) (*models.Course, error) {
	course, err := s.Courses.GetByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return course, nil
}

func (s *CourseService) AddLesson(courseID uint, lesson *models.Lesson) error {
	if _, err := s.GetCourse(courseID); err != nil {
		return err
	}
	lesson.CourseID = courseID
	return s.Courses.AddLesson(lesson)
}

func (s *CourseService) ListLessons(courseID uint) ([]models.Lesson, error) {
	if _, err := s.GetCourse(courseID); err != nil {
		return nil, err
	}
	return s.Courses.ListLessons(courseID)
}

// Enroll is idempotent: re-enrolling returns the existing record unchanged.
// A duplicate-insert race on the (user, course) unique index resolves by
// re-fetching the winner's row.
func (s *CourseService) Enroll(userID, courseID uint) (*models.Enrollment, error) {
	if _, err := s.GetCourse(courseID); err != nil {
		return nil, err
	}

	if existing, err := s.Enrollments.Get(userID, courseID); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := &models.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now().UTC(),
	}
	if err := s.Enrollments.Create(enrollment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.Enrollments.Get(userID, courseID)
		}
		return nil, err
	}
	return enrollment, nil
}

func (s *CourseService) EnrollmentStatus(userID, courseID uint) (*models.Enrollment, error) {
	enrollment, err := s.Enrollments.Get(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return enrollment, nil
}

func (s *CourseService) ListUserEnrollments(userID uint) ([]models.Enrollment, error) {
	return s.Enrollments.ListByUser(userID)
}

// Complete transitions Enrolled -> Completed. The transition is irreversible
// and idempotent; it records a "Completed" attendance event and then issues
// the certificate.
func (s *CourseService) Complete(userID, courseID uint) (*models.Certificate, error) {
	enrollment, err := s.Enrollments.Get(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEnrolled
		}
		return nil, err
	}

	if !enrollment.IsCompleted {
		enrollment.IsCompleted = true
		if err := s.Enrollments.Update(enrollment); err != nil {
			return nil, err
		}

		attendance := &models.Attendance{
			UserID:   userID,
			CourseID: &courseID,
			Status:   "Completed",
			Date:     time.Now().UTC(),
		}
		if err := s.Attendance.Create(attendance); err != nil {
			s.Logger.Printf("completion attendance record failed for user %d course %d: %v", userID, courseID, err)
		}
	}

	return s.Certificates.Issue(userID, courseID)
}
