package models

import (
	"time"

	"gorm.io/gorm"
)

type Enrollment struct {
	gorm.Model
	UserID      uint      `gorm:"uniqueIndex:idx_enroll_user_course" json:"user_id"`
	CourseID    uint      `gorm:"uniqueIndex:idx_enroll_user_course" json:"course_id"`
	EnrolledAt  time.Time `json:"enrolled_at"`
	IsCompleted bool      `gorm:"default:false" json:"is_completed"`
}

type Attendance struct {
	gorm.Model
	UserID   uint      `gorm:"index" json:"user_id"`
	CourseID *uint     `json:"course_id"`
	LessonID *uint     `json:"lesson_id"`
	Status   string    `gorm:"default:present" json:"status"` // present, Completed
	Date     time.Time `json:"date"`
}
