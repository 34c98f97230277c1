// Package memory is an in-process record store implementing the repository
// interfaces. It enforces the same unique keys as the Postgres schema and backs
// tests and the "memory" database driver.
package memory

import (
	"encoding/json"
	"sync"

	"github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/app/repositories"
)

type storedStudent struct {
	seq     uint64
	student models.Student
}

type storedAssignment struct {
	seq        uint64
	assignment models.Assignment
}

// Store holds every collection behind one lock
type Store struct {
	mu  sync.RWMutex
	seq uint64

	identities  map[string]models.Identity // keyed by user id
	students    map[string]*storedStudent
	fees        []models.Fee
	attendance  []models.Attendance
	exams       []models.Exam
	results     []models.Result
	assignments map[string]*storedAssignment
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		identities:  map[string]models.Identity{},
		students:    map[string]*storedStudent{},
		assignments: map[string]*storedAssignment{},
	}
}

// NewRepositories wires every repository to one fresh store
func NewRepositories() *repositories.Repositories {
	return NewStore().Repositories()
}

// Repositories exposes the store through the repository interfaces
func (s *Store) Repositories() *repositories.Repositories {
	return &repositories.Repositories{
		IdentityRepository:   &IdentityRepository{store: s},
		StudentRepository:    &StudentRepository{store: s},
		FeeRepository:        &FeeRepository{store: s},
		AttendanceRepository: &AttendanceRepository{store: s},
		ExamRepository:       &ExamRepository{store: s},
		ResultRepository:     &ResultRepository{store: s},
		AssignmentRepository: &AssignmentRepository{store: s},
	}
}

// nextSeq must be called with the write lock held
func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// cloneStudent deep copies a student so callers never share nested slices with the store
func cloneStudent(src *models.Student) *models.Student {
	data, err := json.Marshal(src)
	if err != nil {
		cp := *src
		return &cp
	}
	var dst models.Student
	if err := json.Unmarshal(data, &dst); err != nil {
		cp := *src
		return &cp
	}
	return &dst
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
