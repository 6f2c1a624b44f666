package services

import (
	"lms/backend/stores"
)

type DashboardService struct {
	Courses      stores.CourseStore
	Enrollments  stores.EnrollmentStore
	Certificates stores.CertificateStore
	Attendance   *AttendanceService
}

func NewDashboardService(courses stores.CourseStore, enrollments stores.EnrollmentStore,
	certificates stores.CertificateStore, attendance *AttendanceService) *DashboardService {
	return &DashboardService{
		Courses:      courses,
		Enrollments:  enrollments,
		Certificates: certificates,
		Attendance:   attendance,
	}
}

type DashboardStats struct {
	TotalCourses         int64 `json:"total_courses"`
	EnrolledCourses      int64 `json:"enrolled_courses"`
	CompletedCourses     int64 `json:"completed_courses"`
	AttendancePercentage int   `json:"attendance_percentage"`
	CertificatesEarned   int64 `json:"certificates_earned"`
}

// Stats aggregates per-user counters for the dashboard.
func (s *DashboardService) Stats(userID uint) (*DashboardStats, error) {
	totalCourses, err := s.Courses.Count()
	if err != nil {
		return nil, err
	}
	enrolled, err := s.Enrollments.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	completed, err := s.Enrollments.CountCompletedByUser(userID)
	if err != nil {
		return nil, err
	}
	percentage, err := s.Attendance.Percentage(userID)
	if err != nil {
		return nil, err
	}
	certificates, err := s.Certificates.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalCourses:         totalCourses,
		EnrolledCourses:      enrolled,
		CompletedCourses:     completed,
		AttendancePercentage: percentage,
		CertificatesEarned:   certificates,
	}, nil
}
