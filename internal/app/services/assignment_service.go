package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/app/models/dto"
	"github.com/yigit/collegeerp/internal/app/repositories"
	"github.com/yigit/collegeerp/internal/pkg/apperrors"
	"github.com/yigit/collegeerp/internal/pkg/validation"
)

// AssignmentService defines the assignment operations
type AssignmentService interface {
	Create(ctx context.Context, faculty *models.Identity, req *dto.CreateAssignmentRequest) (*models.Assignment, error)
	List(ctx context.Context) ([]*models.Assignment, error)
	Submit(ctx context.Context, assignmentID string, req *dto.SubmitAssignmentRequest) error
	Submissions(ctx context.Context, assignmentID string) ([]models.Submission, error)
}

// assignmentServiceImpl implements AssignmentService
type assignmentServiceImpl struct {
	assignmentRepo repositories.IAssignmentRepository
	logger         zerolog.Logger
	now            func() time.Time
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(assignmentRepo repositories.IAssignmentRepository, logger zerolog.Logger) AssignmentService {
	return &assignmentServiceImpl{
		assignmentRepo: assignmentRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// Create publishes an assignment owned by the authorized faculty identity
func (s *assignmentServiceImpl) Create(ctx context.Context, faculty *models.Identity, req *dto.CreateAssignmentRequest) (*models.Assignment, error) {
	if faculty == nil {
		return nil, apperrors.NewUnauthenticatedError("No token provided")
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	assignment := &models.Assignment{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		DueDate:     req.DueDate,
		FacultyID:   faculty.ID,
		Submissions: []models.Submission{},
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("creating assignment: %w", err)
	}
	assignment.Faculty = &models.IdentitySummary{ID: faculty.ID, Name: faculty.Name, UserID: faculty.UserID}
	return assignment, nil
}

// List returns every assignment with its faculty joined
func (s *assignmentServiceImpl) List(ctx context.Context) ([]*models.Assignment, error) {
	assignments, err := s.assignmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	return assignments, nil
}

func (s *assignmentServiceImpl) get(ctx context.Context, assignmentID string) (*models.Assignment, error) {
	if err := validation.ID("assignment id", assignmentID); err != nil {
		return nil, err
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("getting assignment: %w", err)
	}
	return assignment, nil
}

// Submit appends a submission. A student submits at most once per assignment; the
// store key also rejects a concurrent duplicate that passed the check.
func (s *assignmentServiceImpl) Submit(ctx context.Context, assignmentID string, req *dto.SubmitAssignmentRequest) error {
	assignment, err := s.get(ctx, assignmentID)
	if err != nil {
		return err
	}
	if err := validation.Struct(req); err != nil {
		return err
	}
	if assignment.HasSubmissionFrom(req.StudentID) {
		return apperrors.ErrSubmissionExists
	}

	err = s.assignmentRepo.AddSubmission(ctx, assignmentID, models.Submission{
		StudentID:   req.StudentID,
		FileURL:     req.FileURL,
		SubmittedAt: s.now(),
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrDuplicateSubmission):
		s.logger.Warn().Str("assignmentId", assignmentID).Str("studentId", req.StudentID).
			Msg("Concurrent duplicate submission rejected by store")
		return apperrors.ErrSubmissionExists
	case errors.Is(err, repositories.ErrNotFound):
		return apperrors.ErrAssignmentNotFound
	default:
		return fmt.Errorf("adding submission: %w", err)
	}
}

// Submissions returns the submissions of an assignment with the student joined
func (s *assignmentServiceImpl) Submissions(ctx context.Context, assignmentID string) ([]models.Submission, error) {
	assignment, err := s.get(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment.Submissions == nil {
		return []models.Submission{}, nil
	}
	return assignment.Submissions, nil
}
