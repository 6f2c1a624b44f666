package services

import (
	"time"

	"lms/backend/models"
	"lms/backend/stores"
)

type AssessmentService struct {
	Assessments stores.AssessmentStore
}

func NewAssessmentService(assessments stores.AssessmentStore) *AssessmentService {
	return &AssessmentService{Assessments: assessments}
}

func (s *AssessmentService) CreateQuestion(courseID uint, question *models.Assessment) error {
	question.CourseID = courseID
	return s.Assessments.CreateQuestion(question)
}

func (s *AssessmentService) ListQuestions(courseID uint) ([]models.Assessment, error) {
	return s.Assessments.ListByCourse(courseID)
}

// SubmitResult appends a result with the caller-supplied score. The score is
// not validated against stored answers.
func (s *AssessmentService) SubmitResult(courseID, userID uint, score int) (*models.AssessmentResult, error) {
	result := &models.AssessmentResult{
		CourseID:    courseID,
		UserID:      userID,
		Score:       score,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.Assessments.CreateResult(result); err != nil {
		return nil, err
	}
	return result, nil
}
