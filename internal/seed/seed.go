package seed

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/app/models/dto"
	appRepos "github.com/yigit/collegeerp/internal/app/repositories"
	appServices "github.com/yigit/collegeerp/internal/app/services"
	"github.com/yigit/collegeerp/internal/pkg/helpers"
)

// DemoFeeAmounts are the per-caste fees created for every seeded student
var DemoFeeAmounts = map[string]float64{"Open": 1000, "OBC": 800, "EWS": 700, "ST": 600, "SC": 500, "NT": 400}

// DemoIdentities are the seeded registry entries. The admin identity can only be created here.
var DemoIdentities = []appModels.Identity{
	{Name: "Administrator", UserID: "admin", Role: appModels.RoleAdmin},
	{Name: "ashu.ashish", UserID: "67890", Role: appModels.RoleStudent},
	{Name: "ashu.ashish", UserID: "24680", Role: appModels.RoleStudent},
}

func demoStudents(now time.Time) []*appModels.Student {
	dob := appModels.NewDate(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	base := func(roll, phone, email, caste string) *appModels.Student {
		return &appModels.Student{
			Name:         "ashu.ashish",
			RollNumber:   roll,
			Email:        email,
			Phone:        phone,
			DateOfBirth:  dob,
			Gender:       "Male",
			Department:   "CSE",
			Branch:       "CSE",
			Course:       "B.Tech",
			Semester:     1,
			AcademicYear: helpers.AcademicYear(now),
			Caste:        caste,
			UserID:       roll,
		}
	}
	return []*appModels.Student{
		base("67890", "1234567890", "ashu.67890@college.example", "OBC"),
		base("24680", "1234567891", "ashu.24680@college.example", "SC"),
	}
}

// CreateDefaultData seeds the demo identities, students and their semester 1 fees.
// Records that already exist are left alone, so running it twice is harmless.
func CreateDefaultData(
	ctx context.Context,
	repos *appRepos.Repositories,
	students appServices.StudentService,
	fees appServices.FeeService,
	lgr zerolog.Logger,
) error {
	lgr.Info().Msg("Checking/Creating default data (identities/students/fees)...")
	var finalErr error

	for i := range DemoIdentities {
		identity := DemoIdentities[i]
		identity.ID = uuid.NewString()
		err := repos.IdentityRepository.Create(ctx, &identity)
		if err != nil && !errors.Is(err, appRepos.ErrUserIDTaken) {
			lgr.Error().Err(err).Str("userId", identity.UserID).Msg("Error creating identity")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, input := range demoStudents(time.Now()) {
		if _, err := repos.StudentRepository.GetByRollNumber(ctx, input.RollNumber); err == nil {
			continue
		} else if !errors.Is(err, appRepos.ErrNotFound) {
			finalErr = errors.Join(finalErr, err)
			continue
		}

		student, err := students.CreateStudent(ctx, input)
		if err != nil {
			lgr.Error().Err(err).Str("rollNumber", input.RollNumber).Msg("Error creating student")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		req := &dto.CreateFeesForAllCastesRequest{Semester: 1, Amounts: DemoFeeAmounts}
		if _, err := fees.CreateForAllCastes(ctx, student.ID, req); err != nil {
			lgr.Error().Err(err).Str("studentId", student.ID).Msg("Error creating fees")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data ready.")
	}
	return finalErr
}
