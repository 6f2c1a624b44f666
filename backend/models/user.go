package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	Fullname     string  `json:"fullname"`
	Profile      Profile `json:"profile,omitempty"`
}

type Profile struct {
	gorm.Model
	UserID   uint   `gorm:"uniqueIndex" json:"user_id"`
	Bio      string `json:"bio"`
	Title    string `json:"title"`
	Avatar   string `json:"avatar"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}
