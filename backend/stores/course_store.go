package stores

import (
	"lms/backend/models"

	"gorm.io/gorm"
)

// CourseStore owns the course catalog and its lessons.
type CourseStore interface {
	Create(course *models.Course) error
	List() ([]models.Course, error)
	GetByID(id uint) (*models.Course, error)
	Count() (int64, error)
	AddLesson(lesson *models.Lesson) error
	ListLessons(courseID uint) ([]models.Lesson, error)
}

type GormCourseStore struct {
	DB *gorm.DB
}

func NewCourseStore(db *gorm.DB) *GormCourseStore {
	return &GormCourseStore{DB: db}
}

func (s *GormCourseStore) Create(course *models.Course) error {
	return s.DB.Create(course).Error
}

func (s *GormCourseStore) List() ([]models.Course, error) {
	var courses []models.Course
	if err := s.DB.Preload("Lessons").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *GormCourseStore) GetByID(id uint) (*models.Course, error) {
	var course models.Course
	if err := s.DB.Preload("Lessons").First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *GormCourseStore) Count() (int64, error) {
	var count int64
	if err := s.DB.Model(&models.Course{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormCourseStore) AddLesson(lesson *models.Lesson) error {
	return s.DB.Create(lesson).Error
}

func (s *GormCourseStore) ListLessons(courseID uint) ([]models.Lesson, error) {
	var lessons []models.Lesson
	if err := s.DB.Where("course_id = ?", courseID).Order("id").Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}
