package routes

import (
	"log"

	"lms/backend/config"
	"lms/backend/controllers"
	"lms/backend/middleware"
	"lms/backend/services"
	"lms/backend/stores"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, logger *log.Logger) {
	// Stores
	userStore := stores.NewUserStore(db)
	courseStore := stores.NewCourseStore(db)
	enrollmentStore := stores.NewEnrollmentStore(db)
	attendanceStore := stores.NewAttendanceStore(db)
	assessmentStore := stores.NewAssessmentStore(db)
	certificateStore := stores.NewCertificateStore(db)

	// Services
	userService := services.NewUserService(userStore, logger)
	certificateService := services.NewCertificateService(certificateStore, enrollmentStore, userStore, courseStore, logger)
	courseService := services.NewCourseService(courseStore, enrollmentStore, attendanceStore, certificateService, logger)
	attendanceService := services.NewAttendanceService(attendanceStore)
	assessmentService := services.NewAssessmentService(assessmentStore)
	dashboardService := services.NewDashboardService(courseStore, enrollmentStore, certificateStore, attendanceService)

	authMiddleware := middleware.AuthMiddleware(cfg)

	// Auth routes
	authController := controllers.NewAuthController(userService, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Get("/api/auth/users", authMiddleware, authController.ListUsers)
	app.Put("/api/auth/profile/:userId", authMiddleware, authController.UpdateProfile)

	// Courses routes
	coursesController := controllers.NewCoursesController(courseService, cfg)
	courses := app.Group("/api/courses", authMiddleware)
	courses.Post("/", coursesController.CreateCourse)
	courses.Get("/", coursesController.ListCourses)
	courses.Get("/enrollments", coursesController.ListUserEnrollments)
	courses.Get("/:id", coursesController.GetCourse)
	courses.Post("/:id/lessons", coursesController.AddLesson)
	courses.Get("/:id/lessons", coursesController.ListLessons)
	courses.Post("/:id/enroll", coursesController.Enroll)
	courses.Get("/:id/status/:userId", coursesController.EnrollmentStatus)
	courses.Post("/:id/complete", coursesController.Complete)

	// Attendance routes
	attendanceController := controllers.NewAttendanceController(attendanceService, cfg)
	attendance := app.Group("/api/attendance", authMiddleware)
	attendance.Post("/", attendanceController.Mark)
	attendance.Get("/:userId/streak", attendanceController.Streak)
	attendance.Get("/:userId", attendanceController.ListUserAttendance)

	// Assessments routes
	assessmentsController := controllers.NewAssessmentsController(assessmentService, cfg)
	app.Post("/api/assessments/generate", assessmentsController.GenerateQuiz)
	assessments := app.Group("/api/assessments", authMiddleware)
	assessments.Post("/:courseId", assessmentsController.CreateQuestion)
	assessments.Get("/:courseId", assessmentsController.ListQuestions)
	assessments.Post("/:courseId/submit", assessmentsController.SubmitResult)

	// Certificates routes
	certificatesController := controllers.NewCertificatesController(certificateService, cfg)
	app.Get("/api/certificates/download/:code", certificatesController.Download)
	certificates := app.Group("/api/certificates", authMiddleware)
	certificates.Post("/:courseId/issue", certificatesController.Issue)
	certificates.Get("/user/:userId", certificatesController.GetUserCertificates)
	certificates.Get("/:courseId/:userId", certificatesController.Get)

	// Learning path routes
	learningPathController := controllers.NewLearningPathController()
	app.Post("/api/learning-path/generate", learningPathController.Generate)
	app.Post("/api/learning-path/download", learningPathController.Download)

	// Dashboard routes
	dashboardController := controllers.NewDashboardController(dashboardService)
	app.Get("/api/dashboard/stats", authMiddleware, dashboardController.Stats)
}
