package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=core

const (
	profileProgressLimit      = 10
	dashboardProgressLimit    = 5
	dashboardAchievementLimit = 3
)

type coreRepo interface {
	GetProfile(ctx context.Context, userID int) (*Profile, error)
	UpdateProfile(ctx context.Context, profile *Profile) (*Profile, error)
	ListGoals(ctx context.Context, userID int, status GoalStatus) ([]Goal, error)
	GetGoal(ctx context.Context, userID, goalID int) (*Goal, error)
	CreateGoal(ctx context.Context, goal *Goal) (*Goal, error)
	UpdateGoal(ctx context.Context, goal *Goal) (*Goal, error)
	ListProgress(ctx context.Context, userID, limit int) ([]ProgressLog, error)
	CreateProgressLog(ctx context.Context, progressLog *ProgressLog) (*ProgressLog, error)
	ListAchievements(ctx context.Context, userID, limit int) ([]Achievement, error)
	SessionsBetween(ctx context.Context, userID int, from, to time.Time) ([]SessionSummary, error)
}

type ProfileDetails struct {
	Profile      *Profile      `json:"profile"`
	Age          *int          `json:"age"`
	Goals        []Goal        `json:"goals"`
	ProgressLogs []ProgressLog `json:"progress_logs"`
	Achievements []Achievement `json:"achievements"`
}

type GoalBuckets struct {
	Active    []Goal `json:"active_goals"`
	Completed []Goal `json:"completed_goals"`
	Other     []Goal `json:"other_goals"`
}

type Service struct {
	repo coreRepo
	now  func() time.Time
}

func NewService(repo coreRepo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Profile(ctx context.Context, userID int) (_ *ProfileDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.core.profile")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	goals, err := s.repo.ListGoals(ctx, userID, "")
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	progressLogs, err := s.repo.ListProgress(ctx, userID, profileProgressLimit)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	achievements, err := s.repo.ListAchievements(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}

	return &ProfileDetails{
		Profile:      profile,
		Age:          profile.Age(s.now()),
		Goals:        nonNil(goals),
		ProgressLogs: nonNil(progressLogs),
		Achievements: nonNil(achievements),
	}, nil
}

// UpdateProfile replaces the editable profile fields; empty values clear optional ones.
func (s *Service) UpdateProfile(ctx context.Context, userID int, params UpdateProfileParams) (_ *ProfileDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.core.updateprofile")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := params.Validate(); err != nil {
		return nil, err
	}

	profile := &Profile{
		UserID:        userID,
		Height:        params.Height,
		CurrentWeight: params.CurrentWeight,
		ActivityLevel: params.ActivityLevel,
		Bio:           params.Bio,
	}
	if profile.ActivityLevel == "" {
		profile.ActivityLevel = "moderate"
	}
	if params.DateOfBirth != "" {
		dob, _ := pkg.ParseDate("date_of_birth", params.DateOfBirth)
		profile.DateOfBirth = &dob
	}
	if params.Gender != "" {
		gender := params.Gender
		profile.Gender = &gender
	}

	updated, err := s.repo.UpdateProfile(ctx, profile)
	if err != nil {
		return nil, err
	}
	return &ProfileDetails{
		Profile: updated,
		Age:     updated.Age(s.now()),
	}, nil
}

func (s *Service) Goals(ctx context.Context, userID int) (_ *GoalBuckets, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.core.goals")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	goals, err := s.repo.ListGoals(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	return BucketGoals(goals), nil
}

// BucketGoals splits goals by status keeping their order.
func BucketGoals(goals []Goal) *GoalBuckets {
	buckets := &GoalBuckets{
		Active:    []Goal{},
		Completed: []Goal{},
		Other:     []Goal{},
	}
	for _, g := range goals {
		switch g.Status {
		case GoalActive:
			buckets.Active = append(buckets.Active, g)
		case GoalCompleted:
			buckets.Completed = append(buckets.Completed, g)
		default:
			buckets.Other = append(buckets.Other, g)
		}
	}
	return buckets
}

func (s *Service) CreateGoal(ctx context.Context, userID int, params CreateGoalParams) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.core.creategoal")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := params.Validate(); err != nil {
		return nil, err
	}

	goal := &Goal{
		UserID:       userID,
		GoalType:     params.GoalType,
		Title:        strings.TrimSpace(params.Title),
		Description:  params.Description,
		TargetWeight: params.TargetWeight,
		Status:       GoalActive,
	}
	if params.TargetDate != "" {
		targetDate, _ := pkg.ParseDate("target_date", params.TargetDate)
		goal.TargetDate = &targetDate
	}

	return s.repo.CreateGoal(ctx, goal)
}

// UpdateGoal sets progress and status. Moving to completed stamps completed_at,
// moving away from completed clears it.
func (s *Service) UpdateGoal(ctx context.Context, userID, goalID int, params UpdateGoalParams) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.core.updategoal")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := params.Validate(); err != nil {
		return nil, err
	}

	goal, err := s.repo.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if params.ProgressPercentage != nil {
		goal.ProgressPercentage = *params.ProgressPercentage
	}
	if params.Status != "" && params.Status != goal.Status {
		goal.Status = params.Status
		if goal.Status == GoalCompleted {
			now := s.now()
			goal.CompletedAt = &now
		} else {
			goal.CompletedAt = nil
		}
	}

	return s.repo.UpdateGoal(ctx, goal)
}

func (s *Service) Progress(ctx context.Context, userID int) (_ []ProgressLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.core.progress")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	logs, err := s.repo.ListProgress(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	return nonNil(logs), nil
}

func (s *Service) LogProgress(ctx context.Context, userID int, params LogProgressParams) (_ *ProgressLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.core.logprogress")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := params.Validate(); err != nil {
		return nil, err
	}
	date, _ := pkg.ParseDate("date", params.Date)

	return s.repo.CreateProgressLog(ctx, &ProgressLog{
		UserID:            userID,
		Date:              date,
		Weight:            params.Weight,
		BodyFatPercentage: params.BodyFatPercentage,
		MuscleMass:        params.MuscleMass,
		Waist:             params.Waist,
		Chest:             params.Chest,
		Arms:              params.Arms,
		Legs:              params.Legs,
		Notes:             params.Notes,
	})
}

func (s *Service) Achievements(ctx context.Context, userID int) (_ []Achievement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.core.achievements")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	achievements, err := s.repo.ListAchievements(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	return nonNil(achievements), nil
}

// Dashboard summarizes the last seven days of workouts along with goals, progress and achievements.
func (s *Service) Dashboard(ctx context.Context, userID int) (_ *Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.core.dashboard")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	sessions, err := s.repo.SessionsBetween(ctx, userID, today.AddDate(0, 0, -dashboardWindowDays), today)
	if err != nil {
		return nil, fmt.Errorf("get sessions: %w", err)
	}
	activeGoals, err := s.repo.ListGoals(ctx, userID, GoalActive)
	if err != nil {
		return nil, fmt.Errorf("get active goals: %w", err)
	}
	progress, err := s.repo.ListProgress(ctx, userID, dashboardProgressLimit)
	if err != nil {
		return nil, fmt.Errorf("get recent progress: %w", err)
	}
	achievements, err := s.repo.ListAchievements(ctx, userID, dashboardAchievementLimit)
	if err != nil {
		return nil, fmt.Errorf("get recent achievements: %w", err)
	}

	return &Dashboard{
		Stats:              ComputeDashboardStats(sessions),
		ActiveGoals:        nonNil(activeGoals),
		RecentProgress:     nonNil(progress),
		RecentAchievements: nonNil(achievements),
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
