package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/app/models/dto"
	"github.com/yigit/collegeerp/internal/app/repositories"
	"github.com/yigit/collegeerp/internal/pkg/apperrors"
)

// AuthService defines the identity registry operations
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*models.Identity, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	identityRepo repositories.IIdentityRepository
	studentRepo  repositories.IStudentRepository
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	identityRepo repositories.IIdentityRepository,
	studentRepo repositories.IStudentRepository,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		identityRepo: identityRepo,
		studentRepo:  studentRepo,
		logger:       logger,
	}
}

// Signup registers a student or faculty identity
func (s *authServiceImpl) Signup(ctx context.Context, req *dto.SignupRequest) (*models.Identity, error) {
	if req == nil || strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.UserID) == "" || req.Role == "" {
		return nil, apperrors.NewValidationError("Name, ID, and role are required")
	}
	if !req.Role.IsSignupRole() {
		return nil, apperrors.NewValidationError("Role must be student or faculty")
	}

	identity := &models.Identity{
		ID:     uuid.NewString(),
		Name:   req.Name,
		UserID: req.UserID,
		Role:   req.Role,
	}
	if err := s.identityRepo.Create(ctx, identity); err != nil {
		if errors.Is(err, repositories.ErrUserIDTaken) {
			return nil, apperrors.ErrUserIDExists
		}
		return nil, fmt.Errorf("creating identity: %w", err)
	}

	s.logger.Info().Str("userId", identity.UserID).Str("role", string(identity.Role)).Msg("Identity registered")
	return identity, nil
}

// Login matches name and user id against the registry. profileComplete is the
// flag of the linked student record for students and always true otherwise.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req == nil || req.Name == "" || req.UserID == "" {
		return nil, apperrors.NewValidationError("Name and ID are required")
	}

	identity, err := s.identityRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("finding identity: %w", err)
	}
	if identity.Name != req.Name {
		return nil, apperrors.ErrInvalidCredentials
	}

	profileComplete := true
	if identity.Role == models.RoleStudent {
		student, err := s.studentRepo.GetByUserID(ctx, identity.UserID)
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			profileComplete = false
		case err != nil:
			return nil, fmt.Errorf("finding student profile: %w", err)
		default:
			profileComplete = student.ProfileComplete
		}
	}

	return &dto.LoginResponse{
		Message:         "Login successful",
		Role:            identity.Role,
		UserID:          identity.UserID,
		ProfileComplete: profileComplete,
	}, nil
}
