package controllers

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/app/models/dto"
	"github.com/yigit/collegeerp/internal/app/services"
	"github.com/yigit/collegeerp/internal/middleware"
	"github.com/yigit/collegeerp/internal/pkg/apperrors"
	"github.com/yigit/collegeerp/internal/pkg/helpers"
)

// XLSXContentType is the media type of exported workbooks
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// StudentController handles the student directory endpoints
type StudentController struct {
	studentService services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// parseStudentFilter reads the directory filters from the query string
func parseStudentFilter(ctx *gin.Context) (models.StudentFilter, error) {
	filter := models.StudentFilter{
		Search:     ctx.Query("search"),
		Department: ctx.Query("department"),
		Status:     models.StudentStatus(ctx.Query("status")),
		Category:   ctx.Query("category"),
	}
	if raw := ctx.Query("semester"); raw != "" {
		semester, err := strconv.Atoi(raw)
		if err != nil {
			return filter, apperrors.NewValidationError("semester must be a number")
		}
		filter.Semester = semester
	}
	return filter, nil
}

// CreateStudent adds a student to the directory
// @Summary Create a student
// @Description Adds a student record. The enrollment number is generated when omitted.
// @Tags students
// @Accept json
// @Produce json
// @Security AuthToken
// @Param request body models.Student true "Student record"
// @Success 201 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "No token provided"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 409 {object} dto.ErrorResponse "Roll number, email, enrollment number or user id already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var input models.Student
	if !middleware.BindJSON(ctx, &input) {
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), &input)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("studentId", student.ID).Str("enrollmentNumber", student.EnrollmentNumber).Msg("Student created")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(student))
}

// ListStudents returns one page of the filtered directory
// @Summary List students
// @Description Filtered, newest-first page of the directory
// @Tags students
// @Produce json
// @Param search query string false "Substring of name, roll number, email or enrollment number"
// @Param department query string false "Department"
// @Param semester query int false "Semester"
// @Param status query string false "Status" Enums(Active, Inactive, Graduated, Suspended)
// @Param category query string false "Category"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Failure 400 {object} dto.ErrorResponse "semester must be a number"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	filter, err := parseStudentFilter(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	page, limit := helpers.ParsePaginationParams(ctx)

	result, err := c.studentService.ListStudents(ctx.Request.Context(), filter, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}

// GetStudent returns one student
// @Summary Get a student
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "invalid student id"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// UpdateStudent merges the request body onto the stored record
// @Summary Update a student
// @Description Merges the body onto the stored record. id and createdAt are immutable.
// @Tags students
// @Accept json
// @Produce json
// @Security AuthToken
// @Param id path string true "Student ID"
// @Param request body object true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Unique field already exists"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	patch, err := ctx.GetRawData()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid request format: %s", err.Error()))
		return
	}
	if len(bytes.TrimSpace(patch)) == 0 {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Request body is required"))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), ctx.Param("id"), patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// DeleteStudent removes a student
// @Summary Delete a student
// @Description Dependent fees, attendance, results and submissions are kept
// @Tags students
// @Produce json
// @Security AuthToken
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("studentId", id).Msg("Student deleted")
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student deleted successfully"))
}

// StatsOverview returns the directory aggregates
// @Summary Directory statistics
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StudentStatsResponse}
// @Router /students/stats/overview [get]
func (c *StudentController) StatsOverview(ctx *gin.Context) {
	stats, err := c.studentService.StatsOverview(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}

// SearchStudents looks up students by roll number, email or enrollment number
// @Summary Quick search
// @Description Up to 10 students matching roll number, email or enrollment number
// @Tags students
// @Produce json
// @Param query path string true "Search term"
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Router /students/search/{query} [get]
func (c *StudentController) SearchStudents(ctx *gin.Context) {
	students, err := c.studentService.SearchStudents(ctx.Request.Context(), ctx.Param("query"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// BulkImport accepts either {"students": [...]} or a multipart .xlsx upload in field "file"
// @Summary Bulk import students
// @Description Each item is created independently; the outcome list keeps input order
// @Tags students
// @Accept json,mpfd
// @Produce json
// @Security AuthToken
// @Param request body dto.BulkImportRequest false "Students as JSON"
// @Param file formData file false "Workbook whose first sheet has a header row of field names"
// @Success 200 {object} dto.APIResponse{data=dto.BulkImportResponse}
// @Failure 400 {object} dto.ErrorResponse "students must be an array"
// @Router /students/bulk/import [post]
func (c *StudentController) BulkImport(ctx *gin.Context) {
	var (
		result *dto.BulkImportResponse
		err    error
	)

	if strings.HasPrefix(ctx.ContentType(), "multipart/form-data") {
		file, _, formErr := ctx.Request.FormFile("file")
		if formErr != nil {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("file is required"))
			return
		}
		defer file.Close()
		result, err = c.studentService.ImportSpreadsheet(ctx.Request.Context(), file)
	} else {
		var req dto.BulkImportRequest
		if !middleware.BindJSON(ctx, &req) {
			return
		}
		result, err = c.studentService.BulkImport(ctx.Request.Context(), req.Students)
	}

	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}

// UpdateStatus changes the status of a student
// @Summary Change student status
// @Tags students
// @Accept json
// @Produce json
// @Security AuthToken
// @Param id path string true "Student ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "status must be one of: Active, Inactive, Graduated, Suspended"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/status [patch]
func (c *StudentController) UpdateStatus(ctx *gin.Context) {
	var req dto.UpdateStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// ExportStudents downloads the filtered directory as an .xlsx workbook
// @Summary Export students
// @Description Filtered directory as an xlsx workbook, without pagination
// @Tags students
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param department query string false "Department"
// @Param semester query int false "Semester"
// @Param status query string false "Status"
// @Success 200 {file} file
// @Router /students/export [get]
func (c *StudentController) ExportStudents(ctx *gin.Context) {
	filter, err := parseStudentFilter(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var buf bytes.Buffer
	if err := c.studentService.ExportStudents(ctx.Request.Context(), filter, &buf); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename=students.xlsx")
	ctx.Data(http.StatusOK, XLSXContentType, buf.Bytes())
}
