package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/app/repositories"
	"github.com/yigit/collegeerp/internal/pkg/apperrors"
)

// Authorization failures
var (
	ErrNoCredential    = apperrors.NewUnauthenticatedError("No token provided")
	ErrUnknownIdentity = apperrors.NewUnauthenticatedError("Invalid token")
	ErrAccessDenied    = apperrors.NewForbiddenError("Access denied")
)

// AccessPolicy decides whether a presented credential may use an operation
type AccessPolicy interface {
	// Authorize resolves presentedID to an identity holding one of allowed.
	// An empty allowed list accepts any registered identity.
	Authorize(ctx context.Context, presentedID string, allowed ...models.Role) (*models.Identity, error)
}

// IdentityPolicy trusts a presented user id at face value when it names a
// registered identity. There is no session, expiry or signature.
type IdentityPolicy struct {
	identityRepo repositories.IIdentityRepository
}

// NewIdentityPolicy creates a new IdentityPolicy
func NewIdentityPolicy(identityRepo repositories.IIdentityRepository) *IdentityPolicy {
	return &IdentityPolicy{identityRepo: identityRepo}
}

// Authorize implements AccessPolicy
func (p *IdentityPolicy) Authorize(ctx context.Context, presentedID string, allowed ...models.Role) (*models.Identity, error) {
	if presentedID == "" {
		return nil, ErrNoCredential
	}

	identity, err := p.identityRepo.GetByUserID(ctx, presentedID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnknownIdentity
		}
		return nil, fmt.Errorf("resolving identity: %w", err)
	}

	if len(allowed) == 0 {
		return identity, nil
	}
	for _, role := range allowed {
		if identity.Role == role {
			return identity, nil
		}
	}
	return nil, ErrAccessDenied
}
