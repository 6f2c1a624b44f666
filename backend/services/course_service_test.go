package services

import (
	"testing"

	"lms/backend/models"
	"lms/backend/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestCourseService(t *testing.T) (*CourseService, *gorm.DB) {
	db := setupTestDB(t)
	logger := testLogger()

	userStore := stores.NewUserStore(db)
	courseStore := stores.NewCourseStore(db)
	enrollmentStore := stores.NewEnrollmentStore(db)
	attendanceStore := stores.NewAttendanceStore(db)
	certificateStore := stores.NewCertificateStore(db)

	certService := NewCertificateService(certificateStore, enrollmentStore, userStore, courseStore, logger)
	return NewCourseService(courseStore, enrollmentStore, attendanceStore, certService, logger), db
}

func seedUserAndCourse(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()
	user := models.User{Email: "student@example.com", PasswordHash: "x", Fullname: "Student"}
	require.NoError(t, db.Create(&user).Error)
	course := models.Course{Title: "Go Basics", Description: "Intro", Level: "Beginner"}
	require.NoError(t, db.Create(&course).Error)
	return user.ID, course.ID
}

func TestEnrollIsIdempotent(t *testing.T) {
	svc, db := newTestCourseService(t)
	userID, courseID := seedUserAndCourse(t, db)

	first, err := svc.Enroll(userID, courseID)
	require.NoError(t, err)
	assert.False(t, first.IsCompleted)

	second, err := svc.Enroll(userID, courseID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&models.Enrollment{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestEnrollUnknownCourse(t *testing.T) {
	svc, db := newTestCourseService(t)
	userID, _ := seedUserAndCourse(t, db)

	_, err := svc.Enroll(userID, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteBeforeEnroll(t *testing.T) {
	svc, db := newTestCourseService(t)
	userID, courseID := seedUserAndCourse(t, db)

	_, err := svc.Complete(userID, courseID)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestCompleteTransitionsAndIssuesCertificate(t *testing.T) {
	svc, db := newTestCourseService(t)
	userID, courseID := seedUserAndCourse(t, db)

	_, err := svc.Enroll(userID, courseID)
	require.NoError(t, err)

	cert, err := svc.Complete(userID, courseID)
	require.NoError(t, err)
	assert.Contains(t, cert.CertificateCode, "LMS-")

	enrollment, err := svc.EnrollmentStatus(userID, courseID)
	require.NoError(t, err)
	assert.True(t, enrollment.IsCompleted)

	// Completion records a "Completed" attendance event
	var attendance models.Attendance
	require.NoError(t, db.Where("user_id = ? AND status = ?", userID, "Completed").First(&attendance).Error)
}

func TestCompleteIsIdempotent(t *testing.T) {
	svc, db := newTestCourseService(t)
	userID, courseID := seedUserAndCourse(t, db)

	_, err := svc.Enroll(userID, courseID)
	require.NoError(t, err)

	first, err := svc.Complete(userID, courseID)
	require.NoError(t, err)

	second, err := svc.Complete(userID, courseID)
	require.NoError(t, err)
	assert.Equal(t, first.CertificateCode, second.CertificateCode)

	var attendanceCount, certCount int64
	db.Model(&models.Attendance{}).Where("status = ?", "Completed").Count(&attendanceCount)
	db.Model(&models.Certificate{}).Count(&certCount)
	assert.EqualValues(t, 1, attendanceCount)
	assert.EqualValues(t, 1, certCount)
}

func TestAddLessonToUnknownCourse(t *testing.T) {
	svc, _ := newTestCourseService(t)

	lesson := models.Lesson{Title: "Orphan"}
	err := svc.AddLesson(42, &lesson)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListLessonsInOrder(t *testing.T) {
	svc, db := newTestCourseService(t)
	_, courseID := seedUserAndCourse(t, db)

	require.NoError(t, svc.AddLesson(courseID, &models.Lesson{Title: "First"}))
	require.NoError(t, svc.AddLesson(courseID, &models.Lesson{Title: "Second"}))

	lessons, err := svc.ListLessons(courseID)
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, "First", lessons[0].Title)
	assert.Equal(t, "Second", lessons[1].Title)
}
