package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/app/repositories/memory"
	"github.com/yigit/collegeerp/internal/pkg/apperrors"
)

func newPolicy(t *testing.T) *IdentityPolicy {
	t.Helper()
	repos := memory.NewRepositories()
	ctx := context.Background()
	require.NoError(t, repos.IdentityRepository.Create(ctx, &models.Identity{ID: "1", Name: "Asha", UserID: "67890", Role: models.RoleStudent}))
	require.NoError(t, repos.IdentityRepository.Create(ctx, &models.Identity{ID: "2", Name: "Dr. Rao", UserID: "FAC001", Role: models.RoleFaculty}))
	return NewIdentityPolicy(repos.IdentityRepository)
}

func TestIdentityPolicy_Authorize(t *testing.T) {
	policy := newPolicy(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		presented string
		allowed   []models.Role
		wantErr   error
		wantUser  string
	}{
		{"missing credential", "", models.StaffRoles, apperrors.ErrUnauthenticated, ""},
		{"unknown identity", "nobody", models.StaffRoles, apperrors.ErrUnauthenticated, ""},
		{"wrong role", "67890", models.StaffRoles, apperrors.ErrPermissionDenied, ""},
		{"faculty allowed", "FAC001", models.StaffRoles, nil, "FAC001"},
		{"any role", "67890", nil, nil, "67890"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := policy.Authorize(ctx, tt.presented, tt.allowed...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, identity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, identity.UserID)
		})
	}
}

func TestIdentityPolicy_Messages(t *testing.T) {
	policy := newPolicy(t)
	ctx := context.Background()

	_, err := policy.Authorize(ctx, "")
	assert.Equal(t, "No token provided", apperrors.Message(err, ""))

	_, err = policy.Authorize(ctx, "67890", models.RoleFaculty)
	assert.Equal(t, "Access denied", apperrors.Message(err, ""))
}
