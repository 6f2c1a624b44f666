package services

import (
	"errors"
	"sort"
	"time"

	"lms/backend/models"
	"lms/backend/stores"

	"gorm.io/gorm"
)

type AttendanceService struct {
	Attendance stores.AttendanceStore
	Now        func() time.Time
}

func NewAttendanceService(attendance stores.AttendanceStore) *AttendanceService {
	return &AttendanceService{Attendance: attendance, Now: time.Now}
}

// Mark records an attendance event, deduplicating on the exact
// (user, course, lesson) triple: a repeat mark returns the existing record.
func (s *AttendanceService) Mark(userID uint, courseID, lessonID *uint) (*models.Attendance, error) {
	if existing, err := s.Attendance.Find(userID, courseID, lessonID); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	attendance := &models.Attendance{
		UserID:   userID,
		CourseID: courseID,
		LessonID: lessonID,
		Status:   "present",
		Date:     s.Now().UTC(),
	}
	if err := s.Attendance.Create(attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

func (s *AttendanceService) ListUserAttendance(userID uint) ([]models.Attendance, error) {
	return s.Attendance.ListByUser(userID)
}

// Streak counts consecutive attended calendar days. The streak is 0 unless
// the most recent attended day is today or yesterday; a day without today
// attendance anchors the count at yesterday instead.
func (s *AttendanceService) Streak(userID uint) (int, error) {
	records, err := s.Attendance.ListByUser(userID)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	seen := make(map[time.Time]bool)
	var dates []time.Time
	for _, record := range records {
		day := truncateToDay(record.Date)
		if !seen[day] {
			seen[day] = true
			dates = append(dates, day)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	today := truncateToDay(s.Now().UTC())
	yesterday := today.AddDate(0, 0, -1)
	if !dates[0].Equal(today) && !dates[0].Equal(yesterday) {
		return 0, nil
	}

	current := today
	if dates[0].Equal(yesterday) {
		current = yesterday
	}

	streak := 0
	for _, day := range dates {
		if !day.Equal(current) {
			break
		}
		streak++
		current = current.AddDate(0, 0, -1)
	}
	return streak, nil
}

// Percentage is present-count over total-count, truncated to an integer.
func (s *AttendanceService) Percentage(userID uint) (int, error) {
	total, err := s.Attendance.CountByUser(userID)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	present, err := s.Attendance.CountPresentByUser(userID)
	if err != nil {
		return 0, err
	}
	return int(present * 100 / total), nil
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
