package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/app/repositories"
)

// StudentRepository is the in-memory student directory
type StudentRepository struct {
	store *Store
}

// studentConflict must be called with the lock held. Keys are checked in a fixed
// order: roll number, email, enrollment number, user id.
func (s *Store) studentConflict(candidate *models.Student) error {
	keys := []struct {
		err   error
		taken func(existing *models.Student) bool
	}{
		{repositories.ErrRollNumberTaken, func(e *models.Student) bool { return e.RollNumber == candidate.RollNumber }},
		{repositories.ErrEmailTaken, func(e *models.Student) bool { return e.Email == candidate.Email }},
		{repositories.ErrEnrollmentNumberTaken, func(e *models.Student) bool { return e.EnrollmentNumber == candidate.EnrollmentNumber }},
		{repositories.ErrUserIDTaken, func(e *models.Student) bool { return candidate.UserID != "" && e.UserID == candidate.UserID }},
	}
	for _, key := range keys {
		for id, stored := range s.students {
			if id != candidate.ID && key.taken(&stored.student) {
				return key.err
			}
		}
	}
	return nil
}

func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.store.studentConflict(student); err != nil {
		return err
	}
	r.store.students[student.ID] = &storedStudent{seq: r.store.nextSeq(), student: *cloneStudent(student)}
	return nil
}

func (r *StudentRepository) find(match func(*models.Student) bool) (*models.Student, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, stored := range r.store.students {
		if match(&stored.student) {
			return cloneStudent(&stored.student), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	r.store.mu.RLock()
	stored, ok := r.store.students[id]
	r.store.mu.RUnlock()
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return cloneStudent(&stored.student), nil
}

func (r *StudentRepository) GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error) {
	return r.find(func(s *models.Student) bool { return s.RollNumber == rollNumber })
}

func (r *StudentRepository) GetByUserID(ctx context.Context, userID string) (*models.Student, error) {
	return r.find(func(s *models.Student) bool { return s.UserID != "" && s.UserID == userID })
}

func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.students[student.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	if err := r.store.studentConflict(student); err != nil {
		return err
	}
	stored.student = *cloneStudent(student)
	return nil
}

func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.students[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.store.students, id)
	return nil
}

func containsFold(value, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(value), lowerTerm)
}

func matchesFilter(s *models.Student, filter models.StudentFilter) bool {
	if filter.Search != "" {
		term := strings.ToLower(filter.Search)
		if !containsFold(s.Name, term) && !containsFold(s.RollNumber, term) &&
			!containsFold(s.Email, term) && !containsFold(s.EnrollmentNumber, term) {
			return false
		}
	}
	if filter.Department != "" && s.Department != filter.Department {
		return false
	}
	if filter.Semester != 0 && s.Semester != filter.Semester {
		return false
	}
	if filter.Status != "" && s.Status != filter.Status {
		return false
	}
	if filter.Category != "" && s.Category != filter.Category {
		return false
	}
	if filter.AcademicYear != "" && s.AcademicYear != filter.AcademicYear {
		return false
	}
	if filter.EnrollmentPrefix != "" && !strings.HasPrefix(s.EnrollmentNumber, filter.EnrollmentPrefix) {
		return false
	}
	return true
}

// newestFirst returns the matching records ordered by createdAt desc, then insertion order desc
func (r *StudentRepository) newestFirst(match func(*models.Student) bool) []*storedStudent {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]*storedStudent, 0, len(r.store.students))
	for _, stored := range r.store.students {
		if match(&stored.student) {
			cp := *stored
			cp.student = *cloneStudent(&stored.student)
			matched = append(matched, &cp)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.student.CreatedAt.Equal(b.student.CreatedAt) {
			return a.student.CreatedAt.After(b.student.CreatedAt)
		}
		return a.seq > b.seq
	})
	return matched
}

func page(matched []*storedStudent, offset, size uint64) []*models.Student {
	students := []*models.Student{}
	if offset >= uint64(len(matched)) {
		return students
	}
	end := uint64(len(matched))
	if size > 0 && offset+size < end {
		end = offset + size
	}
	for _, stored := range matched[offset:end] {
		s := stored.student
		students = append(students, &s)
	}
	return students
}

func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter, offset, size uint64) ([]*models.Student, error) {
	matched := r.newestFirst(func(s *models.Student) bool { return matchesFilter(s, filter) })
	return page(matched, offset, size), nil
}

func (r *StudentRepository) Count(ctx context.Context, filter models.StudentFilter) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var total int64
	for _, stored := range r.store.students {
		if matchesFilter(&stored.student, filter) {
			total++
		}
	}
	return total, nil
}

func (r *StudentRepository) Search(ctx context.Context, term string, size uint64) ([]*models.Student, error) {
	lower := strings.ToLower(term)
	matched := r.newestFirst(func(s *models.Student) bool {
		return containsFold(s.RollNumber, lower) || containsFold(s.Email, lower) || containsFold(s.EnrollmentNumber, lower)
	})
	return page(matched, 0, size), nil
}

func (r *StudentRepository) CountByDepartment(ctx context.Context) ([]models.GroupCount, error) {
	r.store.mu.RLock()
	counts := map[string]int64{}
	for _, stored := range r.store.students {
		counts[stored.student.Department]++
	}
	r.store.mu.RUnlock()

	groups := make([]models.GroupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, models.GroupCount{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups, nil
}

func (r *StudentRepository) CountBySemester(ctx context.Context) ([]models.SemesterCount, error) {
	r.store.mu.RLock()
	counts := map[int]int64{}
	for _, stored := range r.store.students {
		counts[stored.student.Semester]++
	}
	r.store.mu.RUnlock()

	groups := make([]models.SemesterCount, 0, len(counts))
	for semester, count := range counts {
		groups = append(groups, models.SemesterCount{Semester: semester, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Semester < groups[j].Semester })
	return groups, nil
}

// studentSummary must be called with the lock held
func (s *Store) studentSummary(id string) *models.StudentSummary {
	stored, ok := s.students[id]
	if !ok {
		return nil
	}
	return &models.StudentSummary{ID: id, Name: stored.student.Name, RollNumber: stored.student.RollNumber}
}
