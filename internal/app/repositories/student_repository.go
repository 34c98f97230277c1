package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/pkg/dberrors"
)

// studentConstraintErrors maps the unique keys of the students table to store errors
var studentConstraintErrors = map[string]error{
	"students_roll_number_key":       ErrRollNumberTaken,
	"students_email_key":             ErrEmailTaken,
	"students_enrollment_number_key": ErrEnrollmentNumberTaken,
	"students_user_id_key":           ErrUserIDTaken,
}

// StudentRepository handles database operations for the student directory.
// Filterable fields are columns, the complete record is the document column.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

func translateStudentError(err error) error {
	if name, ok := dberrors.DuplicateConstraint(err); ok {
		if mapped, found := studentConstraintErrors[name]; found {
			return mapped
		}
	}
	return err
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// EscapeLike makes the LIKE wildcards of term match literally
func EscapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}

func containsPattern(term string) string {
	return "%" + EscapeLike(term) + "%"
}

// applyStudentFilter adds the search clause and the AND-ed equality filters
func applyStudentFilter(query squirrel.SelectBuilder, filter models.StudentFilter) squirrel.SelectBuilder {
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query = query.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"roll_number": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"enrollment_number": pattern},
		})
	}
	if filter.Department != "" {
		query = query.Where(squirrel.Eq{"department": filter.Department})
	}
	if filter.Semester != 0 {
		query = query.Where(squirrel.Eq{"semester": filter.Semester})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.AcademicYear != "" {
		query = query.Where(squirrel.Eq{"academic_year": filter.AcademicYear})
	}
	if filter.EnrollmentPrefix != "" {
		query = query.Where(squirrel.Like{"enrollment_number": EscapeLike(filter.EnrollmentPrefix) + "%"})
	}
	return query
}

func listStudentsQuery(filter models.StudentFilter, offset, size uint64) squirrel.SelectBuilder {
	query := applyStudentFilter(psql.Select("document").From("students"), filter).
		OrderBy("created_at DESC", "id DESC")
	if size > 0 {
		query = query.Limit(size).Offset(offset)
	}
	return query
}

func searchStudentsQuery(term string, size uint64) squirrel.SelectBuilder {
	pattern := containsPattern(term)
	return psql.Select("document").
		From("students").
		Where(squirrel.Or{
			squirrel.ILike{"roll_number": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"enrollment_number": pattern},
		}).
		OrderBy("created_at DESC", "id DESC").
		Limit(size)
}

// Create inserts a student record
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	document, err := json.Marshal(student)
	if err != nil {
		return fmt.Errorf("error encoding student: %w", err)
	}

	sql, args, err := psql.Insert("students").
		Columns("id", "name", "roll_number", "email", "enrollment_number", "user_id",
			"department", "course", "semester", "academic_year", "category", "caste",
			"status", "profile_complete", "document", "created_at", "updated_at").
		Values(student.ID, student.Name, student.RollNumber, student.Email, student.EnrollmentNumber,
			nullableString(student.UserID), student.Department, student.Course, student.Semester,
			student.AcademicYear, student.Category, student.Caste, student.Status,
			student.ProfileComplete, document, student.CreatedAt, student.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if mapped := translateStudentError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

func (r *StudentRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.Student, error) {
	sql, args, err := psql.Select("document").From("students").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var document []byte
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&document); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	var student models.Student
	if err := json.Unmarshal(document, &student); err != nil {
		return nil, fmt.Errorf("error decoding student: %w", err)
	}
	return &student, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByRollNumber retrieves a student by roll number
func (r *StudentRepository) GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"roll_number": rollNumber})
}

// GetByUserID retrieves the student linked to an identity
func (r *StudentRepository) GetByUserID(ctx context.Context, userID string) (*models.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"user_id": userID})
}

// Update replaces a stored student record
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	document, err := json.Marshal(student)
	if err != nil {
		return fmt.Errorf("error encoding student: %w", err)
	}

	sql, args, err := psql.Update("students").
		Set("name", student.Name).
		Set("roll_number", student.RollNumber).
		Set("email", student.Email).
		Set("enrollment_number", student.EnrollmentNumber).
		Set("user_id", nullableString(student.UserID)).
		Set("department", student.Department).
		Set("course", student.Course).
		Set("semester", student.Semester).
		Set("academic_year", student.AcademicYear).
		Set("category", student.Category).
		Set("caste", student.Caste).
		Set("status", student.Status).
		Set("profile_complete", student.ProfileComplete).
		Set("document", document).
		Set("updated_at", student.UpdatedAt).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if mapped := translateStudentError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a student. Dependent records are left untouched.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := psql.Delete("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *StudentRepository) queryDocuments(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Student, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		var document []byte
		if err := rows.Scan(&document); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		var student models.Student
		if err := json.Unmarshal(document, &student); err != nil {
			return nil, fmt.Errorf("error decoding student: %w", err)
		}
		students = append(students, &student)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return students, nil
}

// List retrieves matching students, newest first
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter, offset, size uint64) ([]*models.Student, error) {
	return r.queryDocuments(ctx, listStudentsQuery(filter, offset, size))
}

// Search retrieves at most size students whose roll number, email or enrollment number contains term
func (r *StudentRepository) Search(ctx context.Context, term string, size uint64) ([]*models.Student, error) {
	return r.queryDocuments(ctx, searchStudentsQuery(term, size))
}

// Count counts matching students
func (r *StudentRepository) Count(ctx context.Context, filter models.StudentFilter) (int64, error) {
	sql, args, err := applyStudentFilter(psql.Select("COUNT(*)").From("students"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return total, nil
}

// CountByDepartment groups students by department, largest group first
func (r *StudentRepository) CountByDepartment(ctx context.Context) ([]models.GroupCount, error) {
	sql, args, err := psql.Select("department", "COUNT(*)").
		From("students").
		GroupBy("department").
		OrderBy("COUNT(*) DESC", "department ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	groups := []models.GroupCount{}
	for rows.Next() {
		var g models.GroupCount
		if err := rows.Scan(&g.Key, &g.Count); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// CountBySemester groups students by semester in ascending semester order
func (r *StudentRepository) CountBySemester(ctx context.Context) ([]models.SemesterCount, error) {
	sql, args, err := psql.Select("semester", "COUNT(*)").
		From("students").
		GroupBy("semester").
		OrderBy("semester ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	groups := []models.SemesterCount{}
	for rows.Next() {
		var g models.SemesterCount
		if err := rows.Scan(&g.Semester, &g.Count); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
