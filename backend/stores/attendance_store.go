package stores

import (
	"lms/backend/models"

	"gorm.io/gorm"
)

// AttendanceStore is an append-only ledger of attendance events.
type AttendanceStore interface {
	Create(attendance *models.Attendance) error
	Find(userID uint, courseID, lessonID *uint) (*models.Attendance, error)
	ListByUser(userID uint) ([]models.Attendance, error)
	CountByUser(userID uint) (int64, error)
	CountPresentByUser(userID uint) (int64, error)
}

type GormAttendanceStore struct {
	DB *gorm.DB
}

func NewAttendanceStore(db *gorm.DB) *GormAttendanceStore {
	return &GormAttendanceStore{DB: db}
}

func (s *GormAttendanceStore) Create(attendance *models.Attendance) error {
	return s.DB.Create(attendance).Error
}

// Find matches on the exact (user, course, lesson) triple, treating nil
// course/lesson ids as NULL.
func (s *GormAttendanceStore) Find(userID uint, courseID, lessonID *uint) (*models.Attendance, error) {
	query := s.DB.Where("user_id = ?", userID)
	if courseID != nil {
		query = query.Where("course_id = ?", *courseID)
	} else {
		query = query.Where("course_id IS NULL")
	}
	if lessonID != nil {
		query = query.Where("lesson_id = ?", *lessonID)
	} else {
		query = query.Where("lesson_id IS NULL")
	}

	var attendance models.Attendance
	if err := query.First(&attendance).Error; err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (s *GormAttendanceStore) ListByUser(userID uint) ([]models.Attendance, error) {
	var records []models.Attendance
	err := s.DB.Where("user_id = ?", userID).Order("date DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormAttendanceStore) CountByUser(userID uint) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Attendance{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (s *GormAttendanceStore) CountPresentByUser(userID uint) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Attendance{}).
		Where("user_id = ? AND status = ?", userID, "present").
		Count(&count).Error
	return count, err
}
