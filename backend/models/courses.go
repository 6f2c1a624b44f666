package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title         string   `gorm:"not null" json:"title"`
	Description   string   `json:"description"`
	Level         string   `gorm:"default:Beginner" json:"level"` // Beginner, Intermediate, Advanced
	Thumbnail     string   `json:"thumbnail"`
	ResourceURL   string   `json:"resource_url"`
	TotalDuration int      `gorm:"default:0" json:"total_duration"` // minutes
	Lessons       []Lesson `json:"lessons,omitempty"`
}

type Lesson struct {
	gorm.Model
	CourseID uint   `gorm:"index" json:"course_id"`
	Title    string `gorm:"not null" json:"title"`
	Content  string `json:"content"`
	VideoURL string `json:"video_url"`
	Duration int    `gorm:"default:15" json:"duration"` // minutes
}
