package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeerp/internal/app/models/dto"
	"github.com/yigit/collegeerp/internal/app/services"
	"github.com/yigit/collegeerp/internal/middleware"
	"github.com/yigit/collegeerp/internal/pkg/apperrors"
)

// FeeController handles fee endpoints
type FeeController struct {
	feeService services.FeeService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService services.FeeService) *FeeController {
	return &FeeController{feeService: feeService}
}

// ListForStudent returns the fees of a student, optionally one caste tier
// @Summary Fees of a student
// @Tags fees
// @Produce json
// @Param studentId path string true "Student ID"
// @Param caste query string false "Caste tier" Enums(Open, OBC, EWS, ST, SC, NT)
// @Success 200 {object} dto.APIResponse{data=[]models.Fee}
// @Router /fees/student/{studentId} [get]
func (c *FeeController) ListForStudent(ctx *gin.Context) {
	fees, err := c.feeService.ListForStudent(ctx.Request.Context(), ctx.Param("studentId"), ctx.Query("caste"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fees))
}

// MarkPaid sets a fee to paid
// @Summary Mark a fee paid
// @Tags fees
// @Produce json
// @Param feeId path string true "Fee ID"
// @Success 200 {object} dto.APIResponse{data=models.Fee}
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Router /fees/{feeId}/pay [put]
func (c *FeeController) MarkPaid(ctx *gin.Context) {
	fee, err := c.feeService.MarkPaid(ctx.Request.Context(), ctx.Param("feeId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fee))
}

// Invoice returns the invoice link of a fee
// @Summary Fee invoice
// @Tags fees
// @Produce json
// @Param feeId path string true "Fee ID"
// @Success 200 {object} dto.APIResponse{data=dto.InvoiceResponse}
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Router /fees/{feeId}/invoice [get]
func (c *FeeController) Invoice(ctx *gin.Context) {
	invoice, err := c.feeService.Invoice(ctx.Request.Context(), ctx.Param("feeId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(invoice))
}

// CreateForAllCastes creates the six caste tier fees of a student
// @Summary Create the caste tier fees
// @Description One unpaid fee per tier in the order Open, OBC, EWS, ST, SC, NT
// @Tags fees
// @Accept json
// @Produce json
// @Param studentId path string true "Student ID"
// @Param request body dto.CreateFeesForAllCastesRequest true "Semester and amounts per tier"
// @Success 201 {object} dto.APIResponse{data=[]models.Fee}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /fees/create-for-all-castes/{studentId} [post]
func (c *FeeController) CreateForAllCastes(ctx *gin.Context) {
	var req dto.CreateFeesForAllCastesRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	fees, err := c.feeService.CreateForAllCastes(ctx.Request.Context(), ctx.Param("studentId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(fees))
}

// AttendanceController handles attendance endpoints
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// MarkAttendance records one attendance mark
// @Summary Mark attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Security AuthToken
// @Param request body dto.MarkAttendanceRequest true "Attendance mark"
// @Success 201 {object} dto.APIResponse{data=models.Attendance}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /attendance [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	record, err := c.attendanceService.MarkAttendance(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(record))
}

// ListForStudent returns every attendance mark of a student
// @Summary Attendance of a student
// @Tags attendance
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Attendance}
// @Router /attendance/student/{studentId} [get]
func (c *AttendanceController) ListForStudent(ctx *gin.Context) {
	records, err := c.attendanceService.ListForStudent(ctx.Request.Context(), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(records))
}

// Report returns the marks of a student in one subject
// @Summary Subject attendance report
// @Tags attendance
// @Produce json
// @Param studentId path string true "Student ID"
// @Param subject path string true "Subject"
// @Success 200 {object} dto.APIResponse{data=[]models.Attendance}
// @Router /attendance/report/{studentId}/{subject} [get]
func (c *AttendanceController) Report(ctx *gin.Context) {
	records, err := c.attendanceService.Report(ctx.Request.Context(), ctx.Param("studentId"), ctx.Param("subject"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(records))
}

// ExamController handles exam and result endpoints
type ExamController struct {
	examService services.ExamService
}

// NewExamController creates a new ExamController
func NewExamController(examService services.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// CreateExam schedules an exam
// @Summary Schedule an exam
// @Tags exams
// @Accept json
// @Produce json
// @Param request body dto.CreateExamRequest true "Exam"
// @Success 201 {object} dto.APIResponse{data=models.Exam}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	exam, err := c.examService.CreateExam(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(exam))
}

// ListExams returns every exam
// @Summary List exams
// @Tags exams
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Exam}
// @Router /exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	exams, err := c.examService.ListExams(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(exams))
}

// RecordResult enters the marks of a student in an exam
// @Summary Record a result
// @Tags exams
// @Accept json
// @Produce json
// @Param request body dto.RecordResultRequest true "Result"
// @Success 201 {object} dto.APIResponse{data=models.Result}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /exams/result [post]
func (c *ExamController) RecordResult(ctx *gin.Context) {
	var req dto.RecordResultRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.examService.RecordResult(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(result))
}

// ResultsForStudent returns the results of a student
// @Summary Results of a student
// @Tags exams
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Result}
// @Router /exams/result/{studentId} [get]
func (c *ExamController) ResultsForStudent(ctx *gin.Context) {
	results, err := c.examService.ResultsForStudent(ctx.Request.Context(), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(results))
}

// AssignmentController handles assignment endpoints
type AssignmentController struct {
	assignmentService services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService services.AssignmentService) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService}
}

// CreateAssignment publishes an assignment owned by the caller
// @Summary Publish an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security AuthToken
// @Param request body dto.CreateAssignmentRequest true "Assignment"
// @Success 201 {object} dto.APIResponse{data=models.Assignment}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Router /assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	faculty, ok := middleware.CurrentIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewUnauthenticatedError("No token provided"))
		return
	}

	var req dto.CreateAssignmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	assignment, err := c.assignmentService.Create(ctx.Request.Context(), faculty, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(assignment))
}

// ListAssignments returns every assignment
// @Summary List assignments
// @Tags assignments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Assignment}
// @Router /assignments [get]
func (c *AssignmentController) ListAssignments(ctx *gin.Context) {
	assignments, err := c.assignmentService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(assignments))
}

// Submit hands in a file for a student
// @Summary Submit an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Param request body dto.SubmitAssignmentRequest true "Submission"
// @Success 201 {object} dto.APIResponse "Assignment submitted"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 409 {object} dto.ErrorResponse "Already submitted"
// @Router /assignments/{id}/submit [post]
func (c *AssignmentController) Submit(ctx *gin.Context) {
	var req dto.SubmitAssignmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.assignmentService.Submit(ctx.Request.Context(), ctx.Param("id"), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Assignment submitted"))
}

// Submissions lists the submissions of an assignment
// @Summary Submissions of an assignment
// @Tags assignments
// @Produce json
// @Security AuthToken
// @Param id path string true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Submission}
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /assignments/{id}/submissions [get]
func (c *AssignmentController) Submissions(ctx *gin.Context) {
	submissions, err := c.assignmentService.Submissions(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(submissions))
}
