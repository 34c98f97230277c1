package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeerp/internal/app/controllers"
	"github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/app/models/dto"
	"github.com/yigit/collegeerp/internal/middleware"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth       *controllers.AuthController
	Student    *controllers.StudentController
	Fee        *controllers.FeeController
	Attendance *controllers.AttendanceController
	Exam       *controllers.ExamController
	Assignment *controllers.AssignmentController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, access *middleware.AccessMiddleware) {
	api := router.Group("/api")

	api.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Success:   true,
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})

	staff := access.RequireRoles(models.StaffRoles...)
	faculty := access.RequireRoles(models.RoleFaculty)

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/signup", c.Auth.Signup)
		auth.POST("/login", c.Auth.Login)
	}

	students := api.Group("/students")
	{
		students.GET("", c.Student.ListStudents)
		students.GET("/stats/overview", c.Student.StatsOverview)
		students.GET("/search/:query", c.Student.SearchStudents)
		students.GET("/export", c.Student.ExportStudents)
		students.GET("/:id", c.Student.GetStudent)

		// Directory changes are limited to faculty and admins
		students.POST("", staff, c.Student.CreateStudent)
		students.POST("/bulk/import", staff, c.Student.BulkImport)
		students.PUT("/:id", staff, c.Student.UpdateStudent)
		students.DELETE("/:id", staff, c.Student.DeleteStudent)
		students.PATCH("/:id/status", staff, c.Student.UpdateStatus)
	}

	attendance := api.Group("/attendance")
	{
		attendance.POST("", faculty, c.Attendance.MarkAttendance)
		attendance.GET("/student/:studentId", c.Attendance.ListForStudent)
		attendance.GET("/report/:studentId/:subject", c.Attendance.Report)
	}

	fees := api.Group("/fees")
	{
		fees.GET("/student/:studentId", c.Fee.ListForStudent)
		fees.PUT("/:feeId/pay", c.Fee.MarkPaid)
		fees.GET("/:feeId/invoice", c.Fee.Invoice)
		fees.POST("/create-for-all-castes/:studentId", c.Fee.CreateForAllCastes)
	}

	exams := api.Group("/exams")
	{
		exams.POST("", c.Exam.CreateExam)
		exams.GET("", c.Exam.ListExams)
		exams.POST("/result", c.Exam.RecordResult)
		exams.GET("/result/:studentId", c.Exam.ResultsForStudent)
	}

	assignments := api.Group("/assignments")
	{
		assignments.POST("", faculty, c.Assignment.CreateAssignment)
		assignments.GET("", c.Assignment.ListAssignments)
		assignments.POST("/:id/submit", c.Assignment.Submit)
		assignments.GET("/:id/submissions", faculty, c.Assignment.Submissions)
	}
}
