package memory

import (
	"context"
	"sort"

	"github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/app/repositories"
)

// IdentityRepository is the in-memory identity registry
type IdentityRepository struct {
	store *Store
}

func (r *IdentityRepository) Create(ctx context.Context, identity *models.Identity) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.identities[identity.UserID]; exists {
		return repositories.ErrUserIDTaken
	}
	r.store.identities[identity.UserID] = *identity
	return nil
}

func (r *IdentityRepository) GetByUserID(ctx context.Context, userID string) (*models.Identity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	identity, ok := r.store.identities[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &identity, nil
}

// identitySummary must be called with the lock held
func (s *Store) identitySummary(id string) *models.IdentitySummary {
	for _, identity := range s.identities {
		if identity.ID == id {
			return &models.IdentitySummary{ID: identity.ID, Name: identity.Name, UserID: identity.UserID}
		}
	}
	return nil
}

// FeeRepository is the in-memory fee ledger
type FeeRepository struct {
	store *Store
}

func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.fees = append(r.store.fees, *fee)
	return nil
}

func (r *FeeRepository) GetByID(ctx context.Context, id string) (*models.Fee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, fee := range r.store.fees {
		if fee.ID == id {
			f := fee
			return &f, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *FeeRepository) ListByStudent(ctx context.Context, studentID, caste string) ([]*models.Fee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	fees := []*models.Fee{}
	for _, fee := range r.store.fees {
		if fee.StudentID == studentID && (caste == "" || fee.Caste == caste) {
			f := fee
			fees = append(fees, &f)
		}
	}
	sort.SliceStable(fees, func(i, j int) bool { return fees[i].Amount > fees[j].Amount })
	return fees, nil
}

func (r *FeeRepository) UpdateStatus(ctx context.Context, id string, status models.FeeStatus) (*models.Fee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.fees {
		if r.store.fees[i].ID == id {
			r.store.fees[i].Status = status
			f := r.store.fees[i]
			return &f, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// AttendanceRepository is the in-memory attendance register
type AttendanceRepository struct {
	store *Store
}

func (r *AttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a := *attendance
	a.Marks = cloneFloat(attendance.Marks)
	r.store.attendance = append(r.store.attendance, a)
	return nil
}

func (r *AttendanceRepository) list(match func(*models.Attendance) bool) []*models.Attendance {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	records := []*models.Attendance{}
	for i := range r.store.attendance {
		if match(&r.store.attendance[i]) {
			a := r.store.attendance[i]
			a.Marks = cloneFloat(a.Marks)
			records = append(records, &a)
		}
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date.Time) })
	return records
}

func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.Attendance, error) {
	return r.list(func(a *models.Attendance) bool { return a.StudentID == studentID }), nil
}

func (r *AttendanceRepository) ListByStudentAndSubject(ctx context.Context, studentID, subject string) ([]*models.Attendance, error) {
	return r.list(func(a *models.Attendance) bool { return a.StudentID == studentID && a.Subject == subject }), nil
}

// ExamRepository is the in-memory exam schedule
type ExamRepository struct {
	store *Store
}

func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.exams = append(r.store.exams, *exam)
	return nil
}

// exam must be called with the lock held
func (s *Store) exam(id string) (*models.Exam, bool) {
	for _, exam := range s.exams {
		if exam.ID == id {
			e := exam
			return &e, true
		}
	}
	return nil, false
}

func (r *ExamRepository) GetByID(ctx context.Context, id string) (*models.Exam, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	exam, ok := r.store.exam(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return exam, nil
}

func (r *ExamRepository) List(ctx context.Context) ([]*models.Exam, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	exams := make([]*models.Exam, 0, len(r.store.exams))
	for _, exam := range r.store.exams {
		e := exam
		exams = append(exams, &e)
	}
	sort.SliceStable(exams, func(i, j int) bool { return exams[i].Date.Before(exams[j].Date.Time) })
	return exams, nil
}

// ResultRepository is the in-memory result sheet
type ResultRepository struct {
	store *Store
}

func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	res := *result
	res.Exam = nil
	r.store.results = append(r.store.results, res)
	return nil
}

func (r *ResultRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.Result, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	results := []*models.Result{}
	for _, result := range r.store.results {
		if result.StudentID != studentID {
			continue
		}
		res := result
		if exam, ok := r.store.exam(res.ExamID); ok {
			res.Exam = exam
		}
		results = append(results, &res)
	}
	return results, nil
}

// AssignmentRepository is the in-memory assignment board
type AssignmentRepository struct {
	store *Store
}

func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a := *assignment
	a.Faculty = nil
	a.Submissions = nil
	r.store.assignments[a.ID] = &storedAssignment{seq: r.store.nextSeq(), assignment: a}
	return nil
}

// joinedAssignment must be called with the lock held
func (s *Store) joinedAssignment(stored *storedAssignment) *models.Assignment {
	a := stored.assignment
	a.Faculty = s.identitySummary(a.FacultyID)
	a.Submissions = make([]models.Submission, 0, len(stored.assignment.Submissions))
	for _, sub := range stored.assignment.Submissions {
		sub.Student = s.studentSummary(sub.StudentID)
		a.Submissions = append(a.Submissions, sub)
	}
	return &a
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id string) (*models.Assignment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stored, ok := r.store.assignments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return r.store.joinedAssignment(stored), nil
}

func (r *AssignmentRepository) List(ctx context.Context) ([]*models.Assignment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stored := make([]*storedAssignment, 0, len(r.store.assignments))
	for _, a := range r.store.assignments {
		stored = append(stored, a)
	}
	sort.Slice(stored, func(i, j int) bool {
		a, b := stored[i].assignment, stored[j].assignment
		if !a.DueDate.Equal(b.DueDate.Time) {
			return a.DueDate.Before(b.DueDate.Time)
		}
		return stored[i].seq < stored[j].seq
	})

	assignments := make([]*models.Assignment, 0, len(stored))
	for _, a := range stored {
		assignments = append(assignments, r.store.joinedAssignment(a))
	}
	return assignments, nil
}

func (r *AssignmentRepository) AddSubmission(ctx context.Context, assignmentID string, submission models.Submission) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.assignments[assignmentID]
	if !ok {
		return repositories.ErrNotFound
	}
	if stored.assignment.HasSubmissionFrom(submission.StudentID) {
		return repositories.ErrDuplicateSubmission
	}
	submission.Student = nil
	stored.assignment.Submissions = append(stored.assignment.Submissions, submission)
	return nil
}
