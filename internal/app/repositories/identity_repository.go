package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/pkg/dberrors"
)

// IdentityRepository handles database operations for identities
type IdentityRepository struct {
	db *pgxpool.Pool
}

// NewIdentityRepository creates a new identity repository
func NewIdentityRepository(db *pgxpool.Pool) *IdentityRepository {
	return &IdentityRepository{db: db}
}

// Create inserts an identity. A taken user id yields ErrUserIDTaken.
func (r *IdentityRepository) Create(ctx context.Context, identity *models.Identity) error {
	sql, args, err := psql.Insert("identities").
		Columns("id", "name", "user_id", "role").
		Values(identity.ID, identity.Name, identity.UserID, identity.Role).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "identities_user_id_key") {
			return ErrUserIDTaken
		}
		return fmt.Errorf("error creating identity: %w", err)
	}
	return nil
}

// GetByUserID retrieves an identity by its external user id
func (r *IdentityRepository) GetByUserID(ctx context.Context, userID string) (*models.Identity, error) {
	sql, args, err := psql.Select("id", "name", "user_id", "role").
		From("identities").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var identity models.Identity
	err = r.db.QueryRow(ctx, sql, args...).Scan(&identity.ID, &identity.Name, &identity.UserID, &identity.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving identity: %w", err)
	}
	return &identity, nil
}
