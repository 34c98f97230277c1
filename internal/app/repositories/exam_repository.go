package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/collegeerp/internal/app/models"
)

// ExamRepository handles database operations for exams
type ExamRepository struct {
	db *pgxpool.Pool
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{db: db}
}

// Create inserts an exam
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) error {
	sql, args, err := psql.Insert("exams").
		Columns("id", "course", "subject", "date", "type").
		Values(exam.ID, exam.Course, exam.Subject, exam.Date.Time, exam.Type).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error creating exam: %w", err)
	}
	return nil
}

// GetByID retrieves an exam by ID
func (r *ExamRepository) GetByID(ctx context.Context, id string) (*models.Exam, error) {
	sql, args, err := psql.Select("id", "course", "subject", "date", "type").
		From("exams").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var exam models.Exam
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exam.ID, &exam.Course, &exam.Subject, &exam.Date.Time, &exam.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving exam: %w", err)
	}
	return &exam, nil
}

// List retrieves every exam in date order
func (r *ExamRepository) List(ctx context.Context) ([]*models.Exam, error) {
	sql, args, err := psql.Select("id", "course", "subject", "date", "type").
		From("exams").
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

	exams := []*models.Exam{}
	for rows.Next() {
		var exam models.Exam
		if err := rows.Scan(&exam.ID, &exam.Course, &exam.Subject, &exam.Date.Time, &exam.Type); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		exams = append(exams, &exam)
	}
	return exams, rows.Err()
}

// ResultRepository handles database operations for exam results
type ResultRepository struct {
	db *pgxpool.Pool
}

// NewResultRepository creates a new ResultRepository
func NewResultRepository(db *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{db: db}
}

// Create inserts a result. A student may hold several results for one exam.
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	sql, args, err := psql.Insert("results").
		Columns("id", "student_id", "exam_id", "marks", "grade").
		Values(result.ID, result.StudentID, result.ExamID, result.Marks, result.Grade).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error creating result: %w", err)
	}
	return nil
}

// ListByStudent retrieves the results of a student with the exam joined.
// Results whose exam is gone keep a nil Exam.
func (r *ResultRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.Result, error) {
	sql, args, err := psql.Select(
		"r.id", "r.student_id", "r.exam_id", "r.marks", "r.grade",
		"e.id", "e.course", "e.subject", "e.date", "e.type").
		From("results r").
		LeftJoin("exams e ON e.id = r.exam_id").
		Where(squirrel.Eq{"r.student_id": studentID}).
		OrderBy("r.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	results := []*models.Result{}
	for rows.Next() {
		var (
			res                          models.Result
			examID, course, subject, typ *string
			date                         *time.Time
		)
		if err := rows.Scan(&res.ID, &res.StudentID, &res.ExamID, &res.Marks, &res.Grade,
			&examID, &course, &subject, &date, &typ); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		if examID != nil {
			res.Exam = &models.Exam{
				ID:      *examID,
				Course:  *course,
				Subject: *subject,
				Date:    models.NewDate(*date),
				Type:    models.ExamType(*typ),
			}
		}
		results = append(results, &res)
	}
	return results, rows.Err()
}
