package services

import "errors"

// Error taxonomy shared by all services. Controllers translate these into
// HTTP statuses; everything else surfaces as an internal error.
var (
	ErrNotFound           = errors.New("record not found")
	ErrConflict           = errors.New("record already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotEnrolled        = errors.New("user not enrolled in this course")
	ErrNotCompleted       = errors.New("course not completed")
)
