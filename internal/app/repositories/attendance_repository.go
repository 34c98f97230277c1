package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/collegeerp/internal/app/models"
)

// AttendanceRepository handles database operations for attendance marks
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Create inserts an attendance mark. Repeated marks for the same day are kept.
func (r *AttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	sql, args, err := psql.Insert("attendance").
		Columns("id", "student_id", "subject", "date", "status", "marks").
		Values(attendance.ID, attendance.StudentID, attendance.Subject, attendance.Date.Time,
			attendance.Status, attendance.Marks).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error creating attendance: %w", err)
	}
	return nil
}

func (r *AttendanceRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*models.Attendance, error) {
	sql, args, err := psql.Select("id", "student_id", "subject", "date", "status", "marks").
		From("attendance").
		Where(where).
		OrderBy("date ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	records := []*models.Attendance{}
	for rows.Next() {
		var a models.Attendance
		if err := rows.Scan(&a.ID, &a.StudentID, &a.Subject, &a.Date.Time, &a.Status, &a.Marks); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		records = append(records, &a)
	}
	return records, rows.Err()
}

// ListByStudent retrieves every attendance mark of a student
func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.Attendance, error) {
	return r.list(ctx, squirrel.Eq{"student_id": studentID})
}

// ListByStudentAndSubject retrieves the marks of a student in one subject, oldest first
func (r *AttendanceRepository) ListByStudentAndSubject(ctx context.Context, studentID, subject string) ([]*models.Attendance, error) {
	return r.list(ctx, squirrel.Eq{"student_id": studentID, "subject": subject})
}
