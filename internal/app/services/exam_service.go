package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/app/models/dto"
	"github.com/yigit/collegeerp/internal/app/repositories"
	"github.com/yigit/collegeerp/internal/pkg/validation"
)

// ExamService defines the exam and result operations
type ExamService interface {
	CreateExam(ctx context.Context, req *dto.CreateExamRequest) (*models.Exam, error)
	ListExams(ctx context.Context) ([]*models.Exam, error)
	RecordResult(ctx context.Context, req *dto.RecordResultRequest) (*models.Result, error)
	ResultsForStudent(ctx context.Context, studentID string) ([]*models.Result, error)
}

// examServiceImpl implements ExamService
type examServiceImpl struct {
	examRepo   repositories.IExamRepository
	resultRepo repositories.IResultRepository
}

// NewExamService creates a new ExamService
func NewExamService(examRepo repositories.IExamRepository, resultRepo repositories.IResultRepository) ExamService {
	return &examServiceImpl{
		examRepo:   examRepo,
		resultRepo: resultRepo,
	}
}

// CreateExam schedules an exam
func (s *examServiceImpl) CreateExam(ctx context.Context, req *dto.CreateExamRequest) (*models.Exam, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	exam := &models.Exam{
		ID:      uuid.NewString(),
		Course:  req.Course,
		Subject: req.Subject,
		Date:    req.Date,
		Type:    req.Type,
	}
	if err := s.examRepo.Create(ctx, exam); err != nil {
		return nil, fmt.Errorf("creating exam: %w", err)
	}
	return exam, nil
}

// ListExams returns every exam in date order
func (s *examServiceImpl) ListExams(ctx context.Context) ([]*models.Exam, error) {
	exams, err := s.examRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing exams: %w", err)
	}
	return exams, nil
}

// RecordResult enters marks. Repeated results for the same student and exam are kept.
func (s *examServiceImpl) RecordResult(ctx context.Context, req *dto.RecordResultRequest) (*models.Result, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	result := &models.Result{
		ID:        uuid.NewString(),
		StudentID: req.Student,
		ExamID:    req.Exam,
		Marks:     *req.Marks,
		Grade:     req.Grade,
	}
	if err := s.resultRepo.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("recording result: %w", err)
	}
	return result, nil
}

// ResultsForStudent returns the results of a student with the exam joined
func (s *examServiceImpl) ResultsForStudent(ctx context.Context, studentID string) ([]*models.Result, error) {
	if err := validation.ID("student id", studentID); err != nil {
		return nil, err
	}

	results, err := s.resultRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing results: %w", err)
	}
	return results, nil
}
