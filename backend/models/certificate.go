package models

import (
	"time"

	"gorm.io/gorm"
)

type Certificate struct {
	gorm.Model
	UserID          uint      `gorm:"uniqueIndex:idx_cert_user_course" json:"user_id"`
	CourseID        uint      `gorm:"uniqueIndex:idx_cert_user_course" json:"course_id"`
	CertificateCode string    `gorm:"uniqueIndex;not null" json:"certificate_code"`
	IssuedDate      time.Time `json:"issued_date"`
}
