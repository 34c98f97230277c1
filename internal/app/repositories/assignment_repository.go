package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/pkg/dberrors"
)

// AssignmentRepository handles database operations for assignments and submissions
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func assignmentsQuery() squirrel.SelectBuilder {
	return psql.Select(
		"a.id", "a.title", "a.description", "a.subject", "a.due_date", "a.faculty_id",
		"i.id", "i.name", "i.user_id").
		From("assignments a").
		LeftJoin("identities i ON i.id = a.faculty_id")
}

// Create inserts an assignment without submissions
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	sql, args, err := psql.Insert("assignments").
		Columns("id", "title", "description", "subject", "due_date", "faculty_id").
		Values(assignment.ID, assignment.Title, assignment.Description, assignment.Subject,
			assignment.DueDate.Time, assignment.FacultyID).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error creating assignment: %w", err)
	}
	return nil
}

func (r *AssignmentRepository) query(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Assignment, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	assignments := []*models.Assignment{}
	for rows.Next() {
		var (
			a                       models.Assignment
			facultyID, name, userID *string
		)
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Subject, &a.DueDate.Time, &a.FacultyID,
			&facultyID, &name, &userID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		if facultyID != nil {
			a.Faculty = &models.IdentitySummary{ID: *facultyID, Name: *name, UserID: *userID}
		}
		a.Submissions = []models.Submission{}
		assignments = append(assignments, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadSubmissions(ctx, assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// loadSubmissions fills the submissions of the given assignments with the student joined
func (r *AssignmentRepository) loadSubmissions(ctx context.Context, assignments []*models.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}
	byID := make(map[string]*models.Assignment, len(assignments))
	ids := make([]string, 0, len(assignments))
	for _, a := range assignments {
		byID[a.ID] = a
		ids = append(ids, a.ID)
	}

	sql, args, err := psql.Select(
		"s.assignment_id", "s.student_id", "s.file_url", "s.submitted_at",
		"st.id", "st.name", "st.roll_number").
		From("assignment_submissions s").
		LeftJoin("students st ON st.id = s.student_id").
		Where(squirrel.Eq{"s.assignment_id": ids}).
		OrderBy("s.submitted_at ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			assignmentID             string
			sub                      models.Submission
			studentID, name, rollNum *string
		)
		if err := rows.Scan(&assignmentID, &sub.StudentID, &sub.FileURL, &sub.SubmittedAt,
			&studentID, &name, &rollNum); err != nil {
			return fmt.Errorf("error scanning row: %w", err)
		}
		if studentID != nil {
			sub.Student = &models.StudentSummary{ID: *studentID, Name: *name, RollNumber: *rollNum}
		}
		if a, ok := byID[assignmentID]; ok {
			a.Submissions = append(a.Submissions, sub)
		}
	}
	return rows.Err()
}

// GetByID retrieves an assignment with its faculty and submissions
func (r *AssignmentRepository) GetByID(ctx context.Context, id string) (*models.Assignment, error) {
	assignments, err := r.query(ctx, assignmentsQuery().Where(squirrel.Eq{"a.id": id}))
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return nil, ErrNotFound
	}
	return assignments[0], nil
}

// List retrieves every assignment, nearest due date first
func (r *AssignmentRepository) List(ctx context.Context) ([]*models.Assignment, error) {
	return r.query(ctx, assignmentsQuery().OrderBy("a.due_date ASC", "a.created_at ASC"))
}

// AddSubmission appends a submission. The (assignment, student) key rejects a
// second submission from the same student with ErrDuplicateSubmission.
func (r *AssignmentRepository) AddSubmission(ctx context.Context, assignmentID string, submission models.Submission) error {
	sql, args, err := psql.Insert("assignment_submissions").
		Columns("assignment_id", "student_id", "file_url", "submitted_at").
		Values(assignmentID, submission.StudentID, submission.FileURL, submission.SubmittedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "assignment_submissions_student_key"):
			return ErrDuplicateSubmission
		case dberrors.IsForeignKeyViolation(err):
			return ErrNotFound
		}
		return fmt.Errorf("error creating submission: %w", err)
	}
	return nil
}
