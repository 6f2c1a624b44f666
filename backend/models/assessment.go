package models

import (
	"time"

	"gorm.io/gorm"
)

type Assessment struct {
	gorm.Model
	CourseID      uint   `gorm:"index" json:"course_id"`
	Question      string `gorm:"not null" json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option"` // a, b, c, d
}

type AssessmentResult struct {
	gorm.Model
	CourseID    uint      `gorm:"index" json:"course_id"`
	UserID      uint      `gorm:"index" json:"user_id"`
	Score       int       `json:"score"`
	SubmittedAt time.Time `json:"submitted_at"`
}
