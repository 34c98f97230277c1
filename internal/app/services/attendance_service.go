package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/app/models/dto"
	"github.com/yigit/collegeerp/internal/app/repositories"
	"github.com/yigit/collegeerp/internal/pkg/apperrors"
	"github.com/yigit/collegeerp/internal/pkg/validation"
)

// AttendanceService defines the attendance operations
type AttendanceService interface {
	MarkAttendance(ctx context.Context, req *dto.MarkAttendanceRequest) (*models.Attendance, error)
	ListForStudent(ctx context.Context, studentID string) ([]*models.Attendance, error)
	Report(ctx context.Context, studentID, subject string) ([]*models.Attendance, error)
}

// attendanceServiceImpl implements AttendanceService
type attendanceServiceImpl struct {
	attendanceRepo repositories.IAttendanceRepository
	studentRepo    repositories.IStudentRepository
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(attendanceRepo repositories.IAttendanceRepository, studentRepo repositories.IStudentRepository) AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
	}
}

// MarkAttendance resolves the roll number before anything is written. Marking the
// same student, subject and date twice creates two records.
func (s *attendanceServiceImpl) MarkAttendance(ctx context.Context, req *dto.MarkAttendanceRequest) (*models.Attendance, error) {
	if req == nil || req.Student == "" {
		return nil, apperrors.NewValidationError("student is required")
	}

	student, err := s.studentRepo.GetByRollNumber(ctx, req.Student)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("resolving roll number: %w", err)
	}

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	attendance := &models.Attendance{
		ID:        uuid.NewString(),
		StudentID: student.ID,
		Subject:   req.Subject,
		Date:      req.Date,
		Status:    req.Status,
		Marks:     req.Marks,
	}
	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		return nil, fmt.Errorf("creating attendance: %w", err)
	}
	return attendance, nil
}

// ListForStudent returns every attendance mark of a student
func (s *attendanceServiceImpl) ListForStudent(ctx context.Context, studentID string) ([]*models.Attendance, error) {
	if err := validation.ID("student id", studentID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing attendance: %w", err)
	}
	return records, nil
}

// Report returns the marks of a student in one subject, oldest first
func (s *attendanceServiceImpl) Report(ctx context.Context, studentID, subject string) ([]*models.Attendance, error) {
	if err := validation.ID("student id", studentID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByStudentAndSubject(ctx, studentID, subject)
	if err != nil {
		return nil, fmt.Errorf("listing attendance report: %w", err)
	}
	return records, nil
}
