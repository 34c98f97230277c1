package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/app/models/dto"
	"github.com/yigit/collegeerp/internal/app/repositories/memory"
	"github.com/yigit/collegeerp/internal/pkg/apperrors"
)

func day(d int) models.Date {
	return models.NewDate(time.Date(2026, 7, d, 0, 0, 0, 0, time.UTC))
}

func TestMarkAttendance(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	students := newStudentService(t, repos, 0)
	svc := NewAttendanceService(repos.AttendanceRepository, repos.StudentRepository)

	student, err := students.CreateStudent(ctx, validStudent(1))
	require.NoError(t, err)

	marks := 8.5
	for _, d := range []int{12, 3, 7} {
		rec, err := svc.MarkAttendance(ctx, &dto.MarkAttendanceRequest{
			Student: student.RollNumber, Subject: "Maths", Date: day(d), Status: models.AttendancePresent, Marks: &marks,
		})
		require.NoError(t, err)
		assert.Equal(t, student.ID, rec.StudentID)
	}
	_, err = svc.MarkAttendance(ctx, &dto.MarkAttendanceRequest{
		Student: student.RollNumber, Subject: "Physics", Date: day(5), Status: models.AttendanceAbsent,
	})
	require.NoError(t, err)

	// Same student, subject and date again is a second record
	_, err = svc.MarkAttendance(ctx, &dto.MarkAttendanceRequest{
		Student: student.RollNumber, Subject: "Maths", Date: day(3), Status: models.AttendanceAbsent,
	})
	require.NoError(t, err)

	all, err := svc.ListForStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	report, err := svc.Report(ctx, student.ID, "Maths")
	require.NoError(t, err)
	require.Len(t, report, 4)
	for i := 1; i < len(report); i++ {
		assert.False(t, report[i].Date.Before(report[i-1].Date.Time))
	}
	assert.Equal(t, 12, report[3].Date.Day())
}

func TestMarkAttendance_UnknownRollWritesNothing(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	svc := NewAttendanceService(repos.AttendanceRepository, repos.StudentRepository)

	_, err := svc.MarkAttendance(ctx, &dto.MarkAttendanceRequest{
		Student: "R9999", Subject: "Maths", Date: day(1), Status: models.AttendancePresent,
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = svc.MarkAttendance(ctx, &dto.MarkAttendanceRequest{Subject: "Maths"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestMarkAttendance_Validation(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	students := newStudentService(t, repos, 0)
	svc := NewAttendanceService(repos.AttendanceRepository, repos.StudentRepository)
	student, err := students.CreateStudent(ctx, validStudent(1))
	require.NoError(t, err)

	_, err = svc.MarkAttendance(ctx, &dto.MarkAttendanceRequest{
		Student: student.RollNumber, Subject: "Maths", Date: day(1), Status: "late",
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "status must be one of: present, absent", apperrors.Message(err, ""))

	negative := -1.0
	_, err = svc.MarkAttendance(ctx, &dto.MarkAttendanceRequest{
		Student: student.RollNumber, Subject: "Maths", Date: day(1), Status: models.AttendancePresent, Marks: &negative,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Report(ctx, "R0001", "Maths")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
