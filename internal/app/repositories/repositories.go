package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/collegeerp/internal/app/models"
)

// Store errors shared by every implementation
var (
	ErrNotFound = errors.New("record not found")

	ErrUserIDTaken           = errors.New("user id already exists")
	ErrRollNumberTaken       = errors.New("roll number already exists")
	ErrEmailTaken            = errors.New("email already exists")
	ErrEnrollmentNumberTaken = errors.New("enrollment number already exists")
	ErrDuplicateSubmission   = errors.New("submission already exists")
)

// IIdentityRepository stores registered identities
type IIdentityRepository interface {
	Create(ctx context.Context, identity *models.Identity) error
	GetByUserID(ctx context.Context, userID string) (*models.Identity, error)
}

// IStudentRepository stores the student directory
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id string) (*models.Student, error)
	GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error)
	GetByUserID(ctx context.Context, userID string) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error

	// List returns matching records newest first. size 0 means no limit.
	List(ctx context.Context, filter models.StudentFilter, offset, size uint64) ([]*models.Student, error)
	Count(ctx context.Context, filter models.StudentFilter) (int64, error)
	// Search matches term against roll number, email and enrollment number only
	Search(ctx context.Context, term string, size uint64) ([]*models.Student, error)
	CountByDepartment(ctx context.Context) ([]models.GroupCount, error)
	CountBySemester(ctx context.Context) ([]models.SemesterCount, error)
}

// IFeeRepository stores fee records
type IFeeRepository interface {
	Create(ctx context.Context, fee *models.Fee) error
	GetByID(ctx context.Context, id string) (*models.Fee, error)
	ListByStudent(ctx context.Context, studentID, caste string) ([]*models.Fee, error)
	UpdateStatus(ctx context.Context, id string, status models.FeeStatus) (*models.Fee, error)
}

// IAttendanceRepository stores attendance marks
type IAttendanceRepository interface {
	Create(ctx context.Context, attendance *models.Attendance) error
	ListByStudent(ctx context.Context, studentID string) ([]*models.Attendance, error)
	ListByStudentAndSubject(ctx context.Context, studentID, subject string) ([]*models.Attendance, error)
}

// IExamRepository stores exam sittings
type IExamRepository interface {
	Create(ctx context.Context, exam *models.Exam) error
	GetByID(ctx context.Context, id string) (*models.Exam, error)
	List(ctx context.Context) ([]*models.Exam, error)
}

// IResultRepository stores exam results
type IResultRepository interface {
	Create(ctx context.Context, result *models.Result) error
	ListByStudent(ctx context.Context, studentID string) ([]*models.Result, error)
}

// IAssignmentRepository stores assignments and their submissions
type IAssignmentRepository interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	GetByID(ctx context.Context, id string) (*models.Assignment, error)
	List(ctx context.Context) ([]*models.Assignment, error)
	AddSubmission(ctx context.Context, assignmentID string, submission models.Submission) error
}

// Repositories holds all the repository instances
type Repositories struct {
	IdentityRepository   IIdentityRepository
	StudentRepository    IStudentRepository
	FeeRepository        IFeeRepository
	AttendanceRepository IAttendanceRepository
	ExamRepository       IExamRepository
	ResultRepository     IResultRepository
	AssignmentRepository IAssignmentRepository
}

// NewRepositories initializes the Postgres repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		IdentityRepository:   NewIdentityRepository(db),
		StudentRepository:    NewStudentRepository(db),
		FeeRepository:        NewFeeRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		ExamRepository:       NewExamRepository(db),
		ResultRepository:     NewResultRepository(db),
		AssignmentRepository: NewAssignmentRepository(db),
	}
}

// psql is the statement builder for every Postgres repository
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
