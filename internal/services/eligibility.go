package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/motiv8-batch/internal/logger"
	"github.com/sbilibin2017/motiv8-batch/internal/models"
)

//go:generate mockgen -source=eligibility.go -destination=eligibility_mock_test.go -package=services

// UserReader lists candidate users.
type UserReader interface {
	ListWithSourcePhoto(ctx context.Context) ([]models.UserDB, error) // Returns users that uploaded a selfie
}

// GeneratedImageReader reads the day's existing generations.
type GeneratedImageReader interface {
	ListUserIDsByDate(ctx context.Context, generationDate string) ([]uuid.UUID, error) // Returns users already generated for the day
}

// EligibilityService computes the cohort for a run.
type EligibilityService struct {
	users  UserReader
	images GeneratedImageReader
}

// NewEligibilityService creates a new EligibilityService.
func NewEligibilityService(users UserReader, images GeneratedImageReader) *EligibilityService {
	return &EligibilityService{users: users, images: images}
}

// Select returns the users to process for day. A non-empty override selects the
// user(s) with that email regardless of schedule and of existing rows for the day.
func (s *EligibilityService) Select(ctx context.Context, day models.DayContext, override string) (models.Cohort, error) {
	candidates, err := s.users.ListWithSourcePhoto(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return models.Cohort{}, err
	}

	if override = strings.TrimSpace(override); override != "" {
		cohort := models.Cohort{Override: true}
		for _, u := range candidates {
			if strings.EqualFold(u.Email, override) {
				cohort.Users = append(cohort.Users, u)
			}
		}
		cohort.MatchedSchedule = len(cohort.Users)

		if len(cohort.Users) == 0 {
			logger.Log.Warnw("override email matched no user with a source photo", "email", override)
		}
		logger.Log.Infow("cohort selected", "override", override, "to_process", cohort.ToProcess())
		return cohort, nil
	}

	weekday := day.WeekdayName()
	var scheduled []models.UserDB
	for _, u := range candidates {
		if u.WorkoutDays.On(weekday) {
			scheduled = append(scheduled, u)
		}
	}

	done, err := s.images.ListUserIDsByDate(ctx, day.ISODate())
	if err != nil {
		logger.Log.Errorw("failed to list generated images", "date", day.ISODate(), "error", err)
		return models.Cohort{}, err
	}
	doneSet := make(map[uuid.UUID]struct{}, len(done))
	for _, id := range done {
		doneSet[id] = struct{}{}
	}

	cohort := models.Cohort{MatchedSchedule: len(scheduled)}
	for _, u := range scheduled {
		if _, ok := doneSet[u.UserID]; ok {
			cohort.SkippedDone++
			continue
		}
		cohort.Users = append(cohort.Users, u)
	}

	logger.Log.Infow("cohort selected",
		"date", day.ISODate(),
		"weekday", weekday,
		"scheduled", cohort.MatchedSchedule,
		"skipped_done", cohort.SkippedDone,
		"to_process", cohort.ToProcess(),
	)

	return cohort, nil
}
