package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/app/repositories"
	"github.com/yigit/collegeerp/internal/app/repositories/memory"
	"github.com/yigit/collegeerp/internal/pkg/apperrors"
	"github.com/yigit/collegeerp/internal/pkg/validation"
)

var testStart = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// steppingClock advances one second per call so createdAt values are distinct
func steppingClock() func() time.Time {
	var mu sync.Mutex
	current := testStart
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	}
}

func newStudentService(t *testing.T, repos *repositories.Repositories, attempts int) *studentServiceImpl {
	t.Helper()
	svc := NewStudentService(repos.StudentRepository, StudentServiceConfig{EnrollmentAttempts: attempts}, zerolog.Nop())
	impl := svc.(*studentServiceImpl)
	impl.now = steppingClock()
	return impl
}

func validStudent(n int) *models.Student {
	return &models.Student{
		Name:         fmt.Sprintf("Student %d", n),
		RollNumber:   fmt.Sprintf("R%04d", n),
		Email:        fmt.Sprintf("student%d@college.test", n),
		Phone:        "9876543210",
		DateOfBirth:  models.NewDate(time.Date(2004, 5, 17, 0, 0, 0, 0, time.UTC)),
		Gender:       "Female",
		Department:   "CSE",
		Course:       "B.Tech",
		Semester:     1,
		AcademicYear: "2026",
	}
}

func studentJSON(t *testing.T, s *models.Student) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(s)
	require.NoError(t, err)
	return data
}

func TestFormatEnrollmentNumber(t *testing.T) {
	assert.Equal(t, "EN20260001", FormatEnrollmentNumber("2026", 1))
	assert.Equal(t, "EN20260042", FormatEnrollmentNumber("2026", 42))
	assert.Equal(t, "EN202612345", FormatEnrollmentNumber("2026", 12345))
}

func TestCreateStudent_GeneratesSequentialEnrollmentNumbers(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t, memory.NewRepositories(), 0)

	for i := 1; i <= 3; i++ {
		created, err := svc.CreateStudent(ctx, validStudent(i))
		require.NoError(t, err)
		assert.Equal(t, FormatEnrollmentNumber("2026", int64(i)), created.EnrollmentNumber)
		assert.Regexp(t, validation.CompiledPatterns.Enrollment, created.EnrollmentNumber)
		assert.NotEmpty(t, created.ID)
	}
}

func TestCreateStudent_AppliesDefaults(t *testing.T) {
	svc := newStudentService(t, memory.NewRepositories(), 0)

	created, err := svc.CreateStudent(context.Background(), validStudent(1))
	require.NoError(t, err)

	assert.Equal(t, models.StatusActive, created.Status)
	assert.Equal(t, models.DefaultCategory, created.Category)
	assert.Equal(t, models.DefaultCaste, created.Caste)
	assert.Equal(t, models.DefaultCountry, created.Address.Country)
	assert.False(t, created.ProfileComplete)
	assert.False(t, created.AdmissionDate.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.NotNil(t, created.Hobbies)
}

func TestCreateStudent_KeepsCallerEnrollmentNumber(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t, memory.NewRepositories(), 0)

	input := validStudent(1)
	input.EnrollmentNumber = "EN20249999"
	created, err := svc.CreateStudent(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "EN20249999", created.EnrollmentNumber)

	dup := validStudent(2)
	dup.EnrollmentNumber = "EN20249999"
	_, err = svc.CreateStudent(ctx, dup)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "Enrollment number already exists", apperrors.Message(err, ""))
}

func TestCreateStudent_RecomputesOnEnrollmentConflict(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t, memory.NewRepositories(), 0)

	// A record from another academic year already holds the first number of 2026
	older := validStudent(1)
	older.AcademicYear = "2025"
	older.EnrollmentNumber = "EN20260001"
	_, err := svc.CreateStudent(ctx, older)
	require.NoError(t, err)

	for i := 2; i <= 8; i++ {
		s := validStudent(i)
		s.AcademicYear = "2025-26"
		created, err := svc.CreateStudent(ctx, s)
		require.NoError(t, err, "student %d", i)
		assert.Equal(t, FormatEnrollmentNumber("2026", int64(i)), created.EnrollmentNumber)
	}
}

func TestCreateStudent_GivesUpAfterConfiguredAttempts(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t, memory.NewRepositories(), 1)

	holder := validStudent(1)
	holder.AcademicYear = "2025"
	holder.EnrollmentNumber = "EN20260001"
	_, err := svc.CreateStudent(ctx, holder)
	require.NoError(t, err)

	_, err = svc.CreateStudent(ctx, validStudent(2))
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCreateStudent_ConcurrentCreatesGetUniqueNumbers(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t, memory.NewRepositories(), 50)

	const workers = 20
	var wg sync.WaitGroup
	numbers := make(chan string, workers)
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			created, err := svc.CreateStudent(ctx, validStudent(n))
			if err != nil {
				errs <- err
				return
			}
			numbers <- created.EnrollmentNumber
		}(i + 1)
	}
	wg.Wait()
	close(numbers)
	close(errs)

	for err := range errs {
		t.Errorf("unexpected create error: %v", err)
	}

	seen := map[string]bool{}
	for number := range numbers {
		assert.Regexp(t, validation.CompiledPatterns.Enrollment, number)
		assert.False(t, seen[number], "duplicate enrollment number %s", number)
		seen[number] = true
	}
	assert.Len(t, seen, workers)
}

func TestCreateStudent_Validation(t *testing.T) {
	svc := newStudentService(t, memory.NewRepositories(), 0)

	tests := []struct {
		name    string
		mutate  func(s *models.Student)
		message string
	}{
		{"missing name", func(s *models.Student) { s.Name = "" }, "name is required"},
		{"bad email", func(s *models.Student) { s.Email = "not-an-email" }, "email must be a valid email address"},
		{"semester zero", func(s *models.Student) { s.Semester = 0 }, "semester is required"},
		{"negative semester", func(s *models.Student) { s.Semester = -2 }, "semester must be at least 1"},
		{"bad gender", func(s *models.Student) { s.Gender = "X" }, "gender must be one of: Male, Female, Other"},
		{"bad status", func(s *models.Student) { s.Status = "Expelled" }, "status must be one of: Active, Inactive, Graduated, Suspended"},
		{"missing birth date", func(s *models.Student) { s.DateOfBirth = models.Date{} }, "dateOfBirth is required"},
		{"bad parent email", func(s *models.Student) { s.Parent.FatherEmail = "nope" }, "parent.fatherEmail must be a valid email address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validStudent(1)
			tt.mutate(s)
			_, err := svc.CreateStudent(context.Background(), s)
			require.ErrorIs(t, err, apperrors.ErrValidationFailed)
			assert.Equal(t, tt.message, apperrors.Message(err, ""))
		})
	}
}

func TestCreateStudent_DuplicateKeys(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t, memory.NewRepositories(), 0)
	_, err := svc.CreateStudent(ctx, validStudent(1))
	require.NoError(t, err)

	dupRoll := validStudent(2)
	dupRoll.RollNumber = "R0001"
	_, err = svc.CreateStudent(ctx, dupRoll)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "Roll number already exists", apperrors.Message(err, ""))

	dupEmail := validStudent(3)
	dupEmail.Email = "student1@college.test"
	_, err = svc.CreateStudent(ctx, dupEmail)
	assert.Equal(t, "Email already exists", apperrors.Message(err, ""))
}

func TestListStudents_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t, memory.NewRepositories(), 0)

	names := []string{"Ashutosh Patil", "Priya Sharma", "Rahul Deshpande", "Kashu Mehta"}
	for i, name := range names {
		s := validStudent(i + 1)
		s.Name = name
		_, err := svc.CreateStudent(ctx, s)
		require.NoError(t, err)
	}
	emailMatch := validStudent(10)
	emailMatch.Email = "ASHU.k@college.test"
	_, err := svc.CreateStudent(ctx, emailMatch)
	require.NoError(t, err)

	result, err := svc.ListStudents(ctx, models.StudentFilter{Search: "ashu"}, 1, 10)
	require.NoError(t, err)

	require.Len(t, result.Students, 3)
	for _, s := range result.Students {
		assert.Contains(t, []string{"Ashutosh Patil", "Kashu Mehta", "Student 10"}, s.Name)
	}
	assert.EqualValues(t, 3, result.Pagination.TotalStudents)
}

func TestListStudents_FiltersCombineWithAnd(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t, memory.NewRepositories(), 0)

	fixtures := []struct {
		dept     string
		semester int
		category string
	}{
		{"CSE", 3, "OBC"}, {"CSE", 3, "General"}, {"CSE", 5, "OBC"}, {"ME", 3, "OBC"},
	}
	for i, fx := range fixtures {
		s := validStudent(i + 1)
		s.Department, s.Semester, s.Category = fx.dept, fx.semester, fx.category
		_, err := svc.CreateStudent(ctx, s)
		require.NoError(t, err)
	}

	result, err := svc.ListStudents(ctx, models.StudentFilter{Department: "CSE", Semester: 3, Category: "OBC"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Students, 1)
	assert.Equal(t, "R0001", result.Students[0].RollNumber)
}

func TestListStudents_Pagination(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t, memory.NewRepositories(), 0)

	empty, err := svc.ListStudents(ctx, models.StudentFilter{}, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, empty.Students)
	assert.Equal(t, 0, empty.Pagination.TotalPages)
	assert.False(t, empty.Pagination.HasNext)

	for i := 1; i <= 25; i++ {
		_, err := svc.CreateStudent(ctx, validStudent(i))
		require.NoError(t, err)
	}

	tests := []struct {
		page, limit int
		wantLen     int
		wantPages   int
		hasNext     bool
		hasPrev     bool
		firstRoll   string
	}{
		{1, 10, 10, 3, true, false, "R0025"},
		{2, 10, 10, 3, true, true, "R0015"},
		{3, 10, 5, 3, false, true, "R0005"},
		{4, 10, 0, 3, false, true, ""},
		{1, 25, 25, 1, false, false, "R0025"},
		{0, 0, 10, 3, true, false, "R0025"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d limit %d", tt.page, tt.limit), func(t *testing.T) {
			result, err := svc.ListStudents(ctx, models.StudentFilter{}, tt.page, tt.limit)
			require.NoError(t, err)
			assert.Len(t, result.Students, tt.wantLen)
			assert.Equal(t, tt.wantPages, result.Pagination.TotalPages)
			assert.Equal(t, tt.hasNext, result.Pagination.HasNext)
			assert.Equal(t, tt.hasPrev, result.Pagination.HasPrev)
			assert.EqualValues(t, 25, result.Pagination.TotalStudents)
			if tt.firstRoll != "" {
				assert.Equal(t, tt.firstRoll, result.Students[0].RollNumber)
			}
		})
	}
}

func TestListStudents_LargeLimitIsHonored(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t, memory.NewRepositories(), 0)

	for i := 1; i <= 250; i++ {
		_, err := svc.CreateStudent(ctx, validStudent(i))
		require.NoError(t, err)
	}

	first, err := svc.ListStudents(ctx, models.StudentFilter{}, 1, 150)
	require.NoError(t, err)
	assert.Len(t, first.Students, 150)
	assert.Equal(t, 2, first.Pagination.TotalPages)
	assert.True(t, first.Pagination.HasNext)

	second, err := svc.ListStudents(ctx, models.StudentFilter{}, 2, 150)
	require.NoError(t, err)
	assert.Len(t, second.Students, 100)
	assert.False(t, second.Pagination.HasNext)

	all, err := svc.ListStudents(ctx, models.StudentFilter{}, 1, 1000)
	require.NoError(t, err)
	assert.Len(t, all.Students, 250)
	assert.Equal(t, 1, all.Pagination.TotalPages)
}

func TestGetStudent(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t, memory.NewRepositories(), 0)
	created, err := svc.CreateStudent(ctx, validStudent(1))
	require.NoError(t, err)

	got, err := svc.GetStudent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.RollNumber, got.RollNumber)

	_, err = svc.GetStudent(ctx, "not-an-id")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.GetStudent(ctx, "4f1c2a8e-8d4b-4c1e-9a53-0e1f6f3b2a10")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestUpdateStudent_MergesPatch(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t, memory.NewRepositories(), 0)
	created, err := svc.CreateStudent(ctx, validStudent(1))
	require.NoError(t, err)

	patch := json.RawMessage(`{"id":"overridden","semester":4,"address":{"city":"Pune"},"createdAt":"2000-01-01T00:00:00Z"}`)
	updated, err := svc.UpdateStudent(ctx, created.ID, patch)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 4, updated.Semester)
	assert.Equal(t, "Pune", updated.Address.City)
	assert.Equal(t, models.DefaultCountry, updated.Address.Country)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.EnrollmentNumber, updated.EnrollmentNumber)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	stored, err := svc.GetStudent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, stored.Semester)
}

func TestUpdateStudent_Failures(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t, memory.NewRepositories(), 0)
	first, err := svc.CreateStudent(ctx, validStudent(1))
	require.NoError(t, err)
	_, err = svc.CreateStudent(ctx, validStudent(2))
	require.NoError(t, err)

	_, err = svc.UpdateStudent(ctx, first.ID, json.RawMessage(`{"semester":0}`))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.UpdateStudent(ctx, first.ID, json.RawMessage(`{"semester":"four"}`))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.UpdateStudent(ctx, first.ID, json.RawMessage(`{"email":"student2@college.test"}`))
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = svc.UpdateStudent(ctx, "4f1c2a8e-8d4b-4c1e-9a53-0e1f6f3b2a10", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDeleteStudent_LeavesDependentRecords(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	svc := newStudentService(t, repos, 0)
	fees := NewFeeService(repos.FeeRepository, FeeServiceConfig{}, zerolog.Nop())

	created, err := svc.CreateStudent(ctx, validStudent(1))
	require.NoError(t, err)
	_, err = fees.CreateForAllCastes(ctx, created.ID, feeRequest(1, nil))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStudent(ctx, created.ID))

	_, err = svc.GetStudent(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, svc.DeleteStudent(ctx, created.ID), apperrors.ErrResourceNotFound)

	orphans, err := fees.ListForStudent(ctx, created.ID, "")
	require.NoError(t, err)
	assert.Len(t, orphans, len(models.FeeCastes))
}

func TestStatsOverview(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t, memory.NewRepositories(), 0)

	fixtures := []struct {
		status   models.StudentStatus
		dept     string
		semester int
	}{
		{models.StatusActive, "CSE", 3},
		{models.StatusActive, "CSE", 1},
		{models.StatusActive, "ME", 3},
		{models.StatusGraduated, "EE", 8},
		{models.StatusGraduated, "ME", 8},
	}
	for i, fx := range fixtures {
		s := validStudent(i + 1)
		s.Status, s.Department, s.Semester = fx.status, fx.dept, fx.semester
		_, err := svc.CreateStudent(ctx, s)
		require.NoError(t, err)
	}

	stats, err := svc.StatsOverview(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 5, stats.TotalStudents)
	assert.EqualValues(t, 3, stats.ActiveStudents)
	assert.EqualValues(t, 2, stats.GraduatedStudents)
	assert.EqualValues(t, 0, stats.InactiveStudents)
	assert.EqualValues(t, 0, stats.SuspendedStudents)
	assert.Equal(t, []models.GroupCount{{Key: "CSE", Count: 2}, {Key: "ME", Count: 2}, {Key: "EE", Count: 1}}, stats.DepartmentStats)
	assert.Equal(t, []models.SemesterCount{{Semester: 1, Count: 1}, {Semester: 3, Count: 2}, {Semester: 8, Count: 2}}, stats.SemesterStats)
}

func TestSearchStudents_CapsResults(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t, memory.NewRepositories(), 0)
	for i := 1; i <= 12; i++ {
		_, err := svc.CreateStudent(ctx, validStudent(i))
		require.NoError(t, err)
	}

	found, err := svc.SearchStudents(ctx, "COLLEGE.TEST")
	require.NoError(t, err)
	assert.Len(t, found, SearchResultLimit)
	assert.Equal(t, "R0012", found[0].RollNumber)

	byEnrollment, err := svc.SearchStudents(ctx, "EN20260007")
	require.NoError(t, err)
	require.Len(t, byEnrollment, 1)
	assert.Equal(t, "R0007", byEnrollment[0].RollNumber)

	// Names are not searched
	none, err := svc.SearchStudents(ctx, "Student 3")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBulkImport_IsolatesItemFailures(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t, memory.NewRepositories(), 0)

	invalid := validStudent(2)
	invalid.Email = ""
	items := []json.RawMessage{
		studentJSON(t, validStudent(1)),
		studentJSON(t, invalid),
		studentJSON(t, validStudent(3)),
		json.RawMessage(`{"semester":"third"}`),
	}

	response, err := svc.BulkImport(ctx, items)
	require.NoError(t, err)
	require.Len(t, response.Results, 4)

	assert.True(t, response.Results[0].Success)
	assert.False(t, response.Results[1].Success)
	assert.Equal(t, "email is required", response.Results[1].Error)
	assert.JSONEq(t, string(items[1]), string(response.Results[1].Data))
	assert.True(t, response.Results[2].Success)
	assert.False(t, response.Results[3].Success)
	assert.Contains(t, response.Results[3].Error, "Invalid student data")

	for i, result := range response.Results {
		assert.Equal(t, i, result.Index)
	}

	listed, err := svc.ListStudents(ctx, models.StudentFilter{}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, listed.Pagination.TotalStudents)
}

func TestBulkImport_DuplicateWithinBatch(t *testing.T) {
	svc := newStudentService(t, memory.NewRepositories(), 0)
	item := studentJSON(t, validStudent(1))

	response, err := svc.BulkImport(context.Background(), []json.RawMessage{item, item})
	require.NoError(t, err)
	assert.True(t, response.Results[0].Success)
	assert.False(t, response.Results[1].Success)
	assert.Equal(t, "Roll number already exists", response.Results[1].Error)
}

func TestBulkImport_RequiresArray(t *testing.T) {
	svc := newStudentService(t, memory.NewRepositories(), 0)

	_, err := svc.BulkImport(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	response, err := svc.BulkImport(context.Background(), []json.RawMessage{})
	require.NoError(t, err)
	assert.Empty(t, response.Results)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t, memory.NewRepositories(), 0)
	created, err := svc.CreateStudent(ctx, validStudent(1))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.ID, "Expelled")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	updated, err := svc.UpdateStatus(ctx, created.ID, models.StatusSuspended)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuspended, updated.Status)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	_, err = svc.UpdateStatus(ctx, "4f1c2a8e-8d4b-4c1e-9a53-0e1f6f3b2a10", models.StatusActive)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestExportThenImportSpreadsheet(t *testing.T) {
	ctx := context.Background()
	source := newStudentService(t, memory.NewRepositories(), 0)
	for i := 1; i <= 3; i++ {
		s := validStudent(i)
		s.Semester = i + 2
		_, err := source.CreateStudent(ctx, s)
		require.NoError(t, err)
	}

	var workbook bytes.Buffer
	require.NoError(t, source.ExportStudents(ctx, models.StudentFilter{}, &workbook))

	target := newStudentService(t, memory.NewRepositories(), 0)
	response, err := target.ImportSpreadsheet(ctx, &workbook)
	require.NoError(t, err)
	require.Len(t, response.Results, 3)
	for _, r := range response.Results {
		assert.True(t, r.Success, r.Error)
	}

	imported, err := target.SearchStudents(ctx, "R0003")
	require.NoError(t, err)
	require.Len(t, imported, 1)
	assert.Equal(t, 5, imported[0].Semester)
	assert.Equal(t, "EN20260003", imported[0].EnrollmentNumber)
}

func TestImportSpreadsheet_RejectsNonWorkbook(t *testing.T) {
	svc := newStudentService(t, memory.NewRepositories(), 0)
	_, err := svc.ImportSpreadsheet(context.Background(), bytes.NewBufferString("plain text"))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestStudentRowJSON(t *testing.T) {
	raw, err := studentRowJSON(
		[]string{"name", "semester", "tenthPercentage", "profileComplete", "", "notes"},
		[]string{"Asha", "3", "88.5", "true", "ignored", ""},
	)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Asha","semester":3,"tenthPercentage":88.5,"profileComplete":true}`, string(raw))

	raw, err = studentRowJSON([]string{"semester"}, []string{"third"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"semester":"third"}`, string(raw))
}
