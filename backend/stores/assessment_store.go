package stores

import (
	"lms/backend/models"

	"gorm.io/gorm"
)

// AssessmentStore owns quiz questions and submitted results.
type AssessmentStore interface {
	CreateQuestion(question *models.Assessment) error
	ListByCourse(courseID uint) ([]models.Assessment, error)
	CreateResult(result *models.AssessmentResult) error
}

type GormAssessmentStore struct {
	DB *gorm.DB
}

func NewAssessmentStore(db *gorm.DB) *GormAssessmentStore {
	return &GormAssessmentStore{DB: db}
}

func (s *GormAssessmentStore) CreateQuestion(question *models.Assessment) error {
	return s.DB.Create(question).Error
}

func (s *GormAssessmentStore) ListByCourse(courseID uint) ([]models.Assessment, error) {
	var questions []models.Assessment
	if err := s.DB.Where("course_id = ?", courseID).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *GormAssessmentStore) CreateResult(result *models.AssessmentResult) error {
	return s.DB.Create(result).Error
}
