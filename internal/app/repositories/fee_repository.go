package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/collegeerp/internal/app/models"
)

var feeColumns = []string{"id", "student_id", "semester", "amount", "status", "invoice_url", "caste"}

// FeeRepository handles database operations for fees
type FeeRepository struct {
	db *pgxpool.Pool
}

// NewFeeRepository creates a new FeeRepository
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{db: db}
}

func scanFee(row pgx.Row) (*models.Fee, error) {
	var fee models.Fee
	err := row.Scan(&fee.ID, &fee.StudentID, &fee.Semester, &fee.Amount, &fee.Status, &fee.InvoiceURL, &fee.Caste)
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

// Create inserts a fee record
func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) error {
	sql, args, err := psql.Insert("fees").
		Columns(feeColumns...).
		Values(fee.ID, fee.StudentID, fee.Semester, fee.Amount, fee.Status, fee.InvoiceURL, fee.Caste).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error creating fee: %w", err)
	}
	return nil
}

// GetByID retrieves a fee by ID
func (r *FeeRepository) GetByID(ctx context.Context, id string) (*models.Fee, error) {
	sql, args, err := psql.Select(feeColumns...).From("fees").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	fee, err := scanFee(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving fee: %w", err)
	}
	return fee, nil
}

// ListByStudent retrieves the fees of a student, highest amount first. An empty
// caste matches every fee.
func (r *FeeRepository) ListByStudent(ctx context.Context, studentID, caste string) ([]*models.Fee, error) {
	query := psql.Select(feeColumns...).From("fees").Where(squirrel.Eq{"student_id": studentID})
	if caste != "" {
		query = query.Where(squirrel.Eq{"caste": caste})
	}

	sql, args, err := query.OrderBy("amount DESC", "created_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	fees := []*models.Fee{}
	for rows.Next() {
		fee, err := scanFee(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		fees = append(fees, fee)
	}
	return fees, rows.Err()
}

// UpdateStatus sets the payment status of a fee and returns the updated record
func (r *FeeRepository) UpdateStatus(ctx context.Context, id string, status models.FeeStatus) (*models.Fee, error) {
	sql, args, err := psql.Update("fees").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, student_id, semester, amount, status, invoice_url, caste").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	fee, err := scanFee(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating fee: %w", err)
	}
	return fee, nil
}
