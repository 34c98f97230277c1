package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/app/models/dto"
	"github.com/yigit/collegeerp/internal/app/repositories"
	"github.com/yigit/collegeerp/internal/pkg/apperrors"
	"github.com/yigit/collegeerp/internal/pkg/helpers"
	"github.com/yigit/collegeerp/internal/pkg/spreadsheet"
	"github.com/yigit/collegeerp/internal/pkg/validation"
)

const (
	// DefaultEnrollmentAttempts bounds the recompute-and-retry loop of CreateStudent
	DefaultEnrollmentAttempts = 5
	// SearchResultLimit caps SearchStudents
	SearchResultLimit = 10
)

// StudentService defines the student directory operations
type StudentService interface {
	CreateStudent(ctx context.Context, input *models.Student) (*models.Student, error)
	ListStudents(ctx context.Context, filter models.StudentFilter, page, limit int) (*dto.StudentListResponse, error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	UpdateStudent(ctx context.Context, id string, patch json.RawMessage) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
	StatsOverview(ctx context.Context) (*dto.StudentStatsResponse, error)
	SearchStudents(ctx context.Context, term string) ([]*models.Student, error)
	BulkImport(ctx context.Context, items []json.RawMessage) (*dto.BulkImportResponse, error)
	ImportSpreadsheet(ctx context.Context, r io.Reader) (*dto.BulkImportResponse, error)
	UpdateStatus(ctx context.Context, id string, status models.StudentStatus) (*models.Student, error)
	ExportStudents(ctx context.Context, filter models.StudentFilter, w io.Writer) error
}

// StudentServiceConfig tunes the directory engine
type StudentServiceConfig struct {
	EnrollmentAttempts int
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	studentRepo repositories.IStudentRepository
	attempts    int
	logger      zerolog.Logger
	now         func() time.Time
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.IStudentRepository, cfg StudentServiceConfig, logger zerolog.Logger) StudentService {
	attempts := cfg.EnrollmentAttempts
	if attempts < 1 {
		attempts = DefaultEnrollmentAttempts
	}
	return &studentServiceImpl{
		studentRepo: studentRepo,
		attempts:    attempts,
		logger:      logger,
		now:         time.Now,
	}
}

// FormatEnrollmentNumber renders EN<year><seq> with seq zero padded to 4 digits
func FormatEnrollmentNumber(year string, seq int64) string {
	return fmt.Sprintf("EN%s%04d", year, seq)
}

// translateStudentStoreError maps store errors to user-facing errors
func translateStudentStoreError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return apperrors.ErrStudentNotFound
	case errors.Is(err, repositories.ErrRollNumberTaken):
		return fieldConflict("rollNumber", "Roll number already exists")
	case errors.Is(err, repositories.ErrEmailTaken):
		return fieldConflict("email", "Email already exists")
	case errors.Is(err, repositories.ErrEnrollmentNumberTaken):
		return fieldConflict("enrollmentNumber", "Enrollment number already exists")
	case errors.Is(err, repositories.ErrUserIDTaken):
		return fieldConflict("userId", "User ID is already linked to another student")
	}
	return err
}

func fieldConflict(field, message string) error {
	return apperrors.NewCustomError(apperrors.ErrConflict, message).
		WithDetails(map[string]interface{}{"field": field})
}

// nextEnrollmentNumber derives the number for the given attempt. The first attempt
// uses the count of records in the academic year plus one. Retries count the numbers
// already issued under the year prefix and add the attempt.
func (s *studentServiceImpl) nextEnrollmentNumber(ctx context.Context, year string, attempt int) (string, error) {
	filter := models.StudentFilter{AcademicYear: year}
	offset := int64(1)
	if attempt > 0 {
		filter = models.StudentFilter{EnrollmentPrefix: "EN" + year}
		offset = int64(attempt)
	}

	count, err := s.studentRepo.Count(ctx, filter)
	if err != nil {
		return "", fmt.Errorf("counting students for enrollment number: %w", err)
	}
	return FormatEnrollmentNumber(year, count+offset), nil
}

// CreateStudent validates and inserts a student, generating the enrollment number
// when the caller leaves it empty
func (s *studentServiceImpl) CreateStudent(ctx context.Context, input *models.Student) (*models.Student, error) {
	if input == nil {
		return nil, apperrors.NewValidationError("Student data is required")
	}

	now := s.now()
	student := *input
	student.ID = uuid.NewString()
	student.CreatedAt = now
	student.UpdatedAt = now
	student.ApplyDefaults(now)

	if err := validation.Struct(&student); err != nil {
		return nil, err
	}

	generated := student.EnrollmentNumber == ""
	year := helpers.AcademicYear(now)

	for attempt := 0; ; attempt++ {
		if generated {
			number, err := s.nextEnrollmentNumber(ctx, year, attempt)
			if err != nil {
				return nil, err
			}
			student.EnrollmentNumber = number
		}

		err := s.studentRepo.Create(ctx, &student)
		if err == nil {
			return &student, nil
		}

		if generated && errors.Is(err, repositories.ErrEnrollmentNumberTaken) && attempt+1 < s.attempts {
			s.logger.Debug().
				Str("enrollmentNumber", student.EnrollmentNumber).
				Int("attempt", attempt+1).
				Msg("Enrollment number taken, recomputing")
			continue
		}
		if !isStoreConflict(err) {
			return nil, fmt.Errorf("creating student: %w", err)
		}
		return nil, translateStudentStoreError(err)
	}
}

func isStoreConflict(err error) bool {
	return apperrors.Is(err, repositories.ErrRollNumberTaken,
		repositories.ErrEmailTaken, repositories.ErrEnrollmentNumberTaken, repositories.ErrUserIDTaken)
}

// ListStudents returns one page of the filtered directory, newest first
func (s *studentServiceImpl) ListStudents(ctx context.Context, filter models.StudentFilter, page, limit int) (*dto.StudentListResponse, error) {
	page, limit = helpers.NormalizePage(page, limit)
	offset, size := helpers.CalculateOffsetLimit(page, limit)

	total, err := s.studentRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("counting students: %w", err)
	}

	students, err := s.studentRepo.List(ctx, filter, offset, size)
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}

	return &dto.StudentListResponse{
		Students:   students,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// GetStudent retrieves a student by ID
func (s *studentServiceImpl) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	if err := validation.ID("student id", id); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("getting student: %w", err)
	}
	return student, nil
}

// UpdateStudent merges a JSON patch onto the stored record. id, createdAt and an
// emptied enrollment number keep their stored values.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id string, patch json.RawMessage) (*models.Student, error) {
	existing, err := s.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if err := json.Unmarshal(patch, &merged); err != nil {
		return nil, apperrors.NewValidationError("Invalid student data: %s", err.Error())
	}
	merged.ID = existing.ID
	merged.CreatedAt = existing.CreatedAt
	if merged.EnrollmentNumber == "" {
		merged.EnrollmentNumber = existing.EnrollmentNumber
	}
	merged.UpdatedAt = s.now()

	if err := validation.Struct(&merged); err != nil {
		return nil, err
	}
	if err := s.studentRepo.Update(ctx, &merged); err != nil {
		if errors.Is(err, repositories.ErrNotFound) || isStoreConflict(err) {
			return nil, translateStudentStoreError(err)
		}
		return nil, fmt.Errorf("updating student: %w", err)
	}
	return &merged, nil
}

// DeleteStudent hard deletes a student. Fees, attendance, results and submissions
// referencing it are left in place.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id string) error {
	if err := validation.ID("student id", id); err != nil {
		return err
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("deleting student: %w", err)
	}
	return nil
}

// StatsOverview counts the directory by status, department and semester
func (s *studentServiceImpl) StatsOverview(ctx context.Context) (*dto.StudentStatsResponse, error) {
	count := func(status models.StudentStatus) (int64, error) {
		return s.studentRepo.Count(ctx, models.StudentFilter{Status: status})
	}

	stats := &dto.StudentStatsResponse{}
	targets := []struct {
		status models.StudentStatus
		dst    *int64
	}{
		{"", &stats.TotalStudents},
		{models.StatusActive, &stats.ActiveStudents},
		{models.StatusGraduated, &stats.GraduatedStudents},
		{models.StatusInactive, &stats.InactiveStudents},
		{models.StatusSuspended, &stats.SuspendedStudents},
	}
	for _, t := range targets {
		n, err := count(t.status)
		if err != nil {
			return nil, fmt.Errorf("counting students: %w", err)
		}
		*t.dst = n
	}

	var err error
	if stats.DepartmentStats, err = s.studentRepo.CountByDepartment(ctx); err != nil {
		return nil, fmt.Errorf("grouping by department: %w", err)
	}
	if stats.SemesterStats, err = s.studentRepo.CountBySemester(ctx); err != nil {
		return nil, fmt.Errorf("grouping by semester: %w", err)
	}
	return stats, nil
}

// SearchStudents matches term against roll number, email and enrollment number
func (s *studentServiceImpl) SearchStudents(ctx context.Context, term string) ([]*models.Student, error) {
	students, err := s.studentRepo.Search(ctx, term, SearchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("searching students: %w", err)
	}
	return students, nil
}

// BulkImport creates every item independently and reports one outcome per item
// in input order
func (s *studentServiceImpl) BulkImport(ctx context.Context, items []json.RawMessage) (*dto.BulkImportResponse, error) {
	if items == nil {
		return nil, apperrors.NewValidationError("students must be an array")
	}

	response := &dto.BulkImportResponse{Results: make([]dto.BulkImportResult, 0, len(items))}
	for i, item := range items {
		outcome := dto.BulkImportResult{Index: i}

		var input models.Student
		if err := json.Unmarshal(item, &input); err != nil {
			outcome.Error = "Invalid student data: " + err.Error()
			outcome.Data = item
			response.Results = append(response.Results, outcome)
			continue
		}

		created, err := s.CreateStudent(ctx, &input)
		if err != nil {
			if !apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrConflict) {
				s.logger.Error().Err(err).Int("index", i).Msg("Bulk import item failed")
			}
			outcome.Error = apperrors.Message(err, "Server error")
			outcome.Data = item
		} else {
			outcome.Success = true
			outcome.Student = created
		}
		response.Results = append(response.Results, outcome)
	}

	s.logger.Info().Int("items", len(items)).Msg("Bulk import processed")
	return response, nil
}

// ImportSpreadsheet reads students from the first sheet of an .xlsx workbook whose
// header row names the JSON fields, then imports them like BulkImport
func (s *studentServiceImpl) ImportSpreadsheet(ctx context.Context, r io.Reader) (*dto.BulkImportResponse, error) {
	table, err := spreadsheet.Read(r)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid spreadsheet: %s", err.Error())
	}

	items := make([]json.RawMessage, 0, len(table.Rows))
	for _, row := range table.Rows {
		item, err := studentRowJSON(table.Headers, row)
		if err != nil {
			return nil, fmt.Errorf("encoding spreadsheet row: %w", err)
		}
		items = append(items, item)
	}
	return s.BulkImport(ctx, items)
}

// UpdateStatus changes only the status of a student
func (s *studentServiceImpl) UpdateStatus(ctx context.Context, id string, status models.StudentStatus) (*models.Student, error) {
	if err := validation.ID("student id", id); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status must be one of: Active, Inactive, Graduated, Suspended")
	}

	student, err := s.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	student.Status = status
	student.UpdatedAt = s.now()

	if err := s.studentRepo.Update(ctx, student); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("updating student status: %w", err)
	}
	return student, nil
}

// ExportStudents writes the filtered directory as an .xlsx workbook
func (s *studentServiceImpl) ExportStudents(ctx context.Context, filter models.StudentFilter, w io.Writer) error {
	students, err := s.studentRepo.List(ctx, filter, 0, 0)
	if err != nil {
		return fmt.Errorf("listing students for export: %w", err)
	}

	rows := make([][]interface{}, 0, len(students))
	for _, st := range students {
		rows = append(rows, studentRow(st))
	}
	return spreadsheet.Write(w, "Students", studentSheetColumns, rows)
}

// studentSheetColumns are the export columns. The names are JSON field names so an
// exported workbook can be imported again.
var studentSheetColumns = []string{
	"enrollmentNumber", "rollNumber", "name", "email", "phone", "dateOfBirth", "gender",
	"department", "course", "semester", "academicYear", "category", "caste", "status",
	"profileComplete", "userId",
}

func studentRow(st *models.Student) []interface{} {
	dob := ""
	if !st.DateOfBirth.IsZero() {
		dob = st.DateOfBirth.Format("2006-01-02")
	}
	return []interface{}{
		st.EnrollmentNumber, st.RollNumber, st.Name, st.Email, st.Phone, dob, st.Gender,
		st.Department, st.Course, st.Semester, st.AcademicYear, st.Category, st.Caste, string(st.Status),
		st.ProfileComplete, st.UserID,
	}
}

// studentRowJSON turns one sheet row into a JSON object. Numeric and boolean fields
// are converted when they parse; otherwise the raw text is kept so the item fails
// validation on its own.
func studentRowJSON(headers, cells []string) (json.RawMessage, error) {
	obj := make(map[string]interface{}, len(headers))
	for i, header := range headers {
		if header == "" || i >= len(cells) || cells[i] == "" {
			continue
		}
		value := cells[i]
		switch header {
		case "semester":
			if n, err := strconv.Atoi(value); err == nil {
				obj[header] = n
				continue
			}
		case "twelfthPercentage", "tenthPercentage":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				obj[header] = f
				continue
			}
		case "profileComplete":
			if b, err := strconv.ParseBool(value); err == nil {
				obj[header] = b
				continue
			}
		}
		obj[header] = value
	}
	return json.Marshal(obj)
}
