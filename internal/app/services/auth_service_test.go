package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/app/models/dto"
	"github.com/yigit/collegeerp/internal/app/repositories"
	"github.com/yigit/collegeerp/internal/app/repositories/memory"
	"github.com/yigit/collegeerp/internal/pkg/apperrors"
)

func newAuthService(repos *repositories.Repositories) AuthService {
	return NewAuthService(repos.IdentityRepository, repos.StudentRepository, zerolog.Nop())
}

func TestSignup(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(memory.NewRepositories())

	identity, err := svc.Signup(ctx, &dto.SignupRequest{Name: "Asha", UserID: "12345", Role: models.RoleStudent})
	require.NoError(t, err)
	assert.NotEmpty(t, identity.ID)
	assert.Equal(t, models.RoleStudent, identity.Role)

	tests := []struct {
		name    string
		req     *dto.SignupRequest
		target  error
		message string
	}{
		{"missing name", &dto.SignupRequest{UserID: "1", Role: models.RoleStudent}, apperrors.ErrValidationFailed, "Name, ID, and role are required"},
		{"blank id", &dto.SignupRequest{Name: "A", UserID: "  ", Role: models.RoleStudent}, apperrors.ErrValidationFailed, "Name, ID, and role are required"},
		{"missing role", &dto.SignupRequest{Name: "A", UserID: "1"}, apperrors.ErrValidationFailed, "Name, ID, and role are required"},
		{"admin role", &dto.SignupRequest{Name: "A", UserID: "1", Role: models.RoleAdmin}, apperrors.ErrValidationFailed, "Role must be student or faculty"},
		{"duplicate id", &dto.SignupRequest{Name: "Other", UserID: "12345", Role: models.RoleFaculty}, apperrors.ErrConflict, "User ID already exists"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(ctx, tt.req)
			require.ErrorIs(t, err, tt.target)
			assert.Equal(t, tt.message, apperrors.Message(err, ""))
		})
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	svc := newAuthService(repos)
	students := newStudentService(t, repos, 0)

	for _, req := range []*dto.SignupRequest{
		{Name: "Asha", UserID: "S1", Role: models.RoleStudent},
		{Name: "Ravi", UserID: "S2", Role: models.RoleStudent},
		{Name: "Dr. Rao", UserID: "F1", Role: models.RoleFaculty},
	} {
		_, err := svc.Signup(ctx, req)
		require.NoError(t, err)
	}

	linked := validStudent(1)
	linked.UserID = "S1"
	linked.ProfileComplete = true
	_, err := students.CreateStudent(ctx, linked)
	require.NoError(t, err)

	t.Run("student with complete profile", func(t *testing.T) {
		resp, err := svc.Login(ctx, &dto.LoginRequest{Name: "Asha", UserID: "S1"})
		require.NoError(t, err)
		assert.Equal(t, "Login successful", resp.Message)
		assert.Equal(t, models.RoleStudent, resp.Role)
		assert.True(t, resp.ProfileComplete)
	})

	t.Run("student without record", func(t *testing.T) {
		resp, err := svc.Login(ctx, &dto.LoginRequest{Name: "Ravi", UserID: "S2"})
		require.NoError(t, err)
		assert.False(t, resp.ProfileComplete)
	})

	t.Run("faculty", func(t *testing.T) {
		resp, err := svc.Login(ctx, &dto.LoginRequest{Name: "Dr. Rao", UserID: "F1"})
		require.NoError(t, err)
		assert.Equal(t, models.RoleFaculty, resp.Role)
		assert.True(t, resp.ProfileComplete)
	})

	t.Run("wrong name", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Name: "asha", UserID: "S1"})
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
		assert.Equal(t, "Invalid credentials", apperrors.Message(err, ""))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Name: "Asha", UserID: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Name: "Asha"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Equal(t, "Name and ID are required", apperrors.Message(err, ""))
	})
}
