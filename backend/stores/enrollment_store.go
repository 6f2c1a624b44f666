package stores

import (
	"lms/backend/models"

	"gorm.io/gorm"
)

// EnrollmentStore tracks which user takes which course.
type EnrollmentStore interface {
	Create(enrollment *models.Enrollment) error
	Get(userID, courseID uint) (*models.Enrollment, error)
	ListByUser(userID uint) ([]models.Enrollment, error)
	Update(enrollment *models.Enrollment) error
	CountByUser(userID uint) (int64, error)
	CountCompletedByUser(userID uint) (int64, error)
}

type GormEnrollmentStore struct {
	DB *gorm.DB
}

func NewEnrollmentStore(db *gorm.DB) *GormEnrollmentStore {
	return &GormEnrollmentStore{DB: db}
}

func (s *GormEnrollmentStore) Create(enrollment *models.Enrollment) error {
	return s.DB.Create(enrollment).Error
}

func (s *GormEnrollmentStore) Get(userID, courseID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (s *GormEnrollmentStore) ListByUser(userID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := s.DB.Where("user_id = ?", userID).Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (s *GormEnrollmentStore) Update(enrollment *models.Enrollment) error {
	return s.DB.Save(enrollment).Error
}

func (s *GormEnrollmentStore) CountByUser(userID uint) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Enrollment{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (s *GormEnrollmentStore) CountCompletedByUser(userID uint) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Enrollment{}).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Count(&count).Error
	return count, err
}
