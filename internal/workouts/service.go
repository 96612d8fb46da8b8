package workouts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts

const (
	recentExerciseLogsLimit = 10
	recentSessionsLimit     = 5
)

type exerciseCatalog interface {
	Get(ctx context.Context, id int) (*Exercise, error)
	List(ctx context.Context, filter ExerciseFilter) ([]Exercise, error)
}

type workoutsRepo interface {
	GetWorkout(ctx context.Context, userID, workoutID int) (*Workout, error)
	ListWorkouts(ctx context.Context, userID int, filter WorkoutFilter) ([]Workout, error)
	WorkoutExercises(ctx context.Context, workoutID int) ([]WorkoutExercise, error)
	ListSessions(ctx context.Context, userID int, params SessionListParams) ([]WorkoutSession, error)
	RecentExerciseLogs(ctx context.Context, userID, exerciseID, limit int) ([]ExerciseLog, error)
	GetOwnedWorkout(ctx context.Context, userID, workoutID int) (*Workout, error)
	CreateWorkout(ctx context.Context, workout *Workout) (*Workout, error)
	AddWorkoutExercise(ctx context.Context, workoutID int, we *WorkoutExercise) (*WorkoutExercise, error)
}

type recordsRepo interface {
	GetRecord(ctx context.Context, userID, exerciseID int, recordType RecordType) (*PersonalRecord, error)
	ListRecords(ctx context.Context, userID int) ([]PersonalRecord, error)
}

type ExerciseDetails struct {
	Exercise       *Exercise       `json:"exercise"`
	PersonalRecord *PersonalRecord `json:"personal_record"`
	RecentLogs     []ExerciseLog   `json:"recent_logs"`
}

type WorkoutDetails struct {
	Workout          *Workout          `json:"workout"`
	WorkoutExercises []WorkoutExercise `json:"workout_exercises"`
	RecentSessions   []WorkoutSession  `json:"recent_sessions"`
}

// Service serves the exercise catalog, workouts with their authoring and personal records.
type Service struct {
	catalog exerciseCatalog
	repo    workoutsRepo
	records recordsRepo
}

func NewService(catalog exerciseCatalog, repo workoutsRepo, records recordsRepo) *Service {
	return &Service{
		catalog: catalog,
		repo:    repo,
		records: records,
	}
}

func (s *Service) Exercises(ctx context.Context, filter ExerciseFilter) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.exercises")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.catalog.List(ctx, filter)
}

func (s *Service) ExerciseDetails(ctx context.Context, userID, exerciseID int) (_ *ExerciseDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.exercisedetails")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	exercise, err := s.catalog.Get(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	record, err := s.records.GetRecord(ctx, userID, exerciseID, RecordWeight)
	if err != nil && !errors.Is(err, ErrRecordNotFound) {
		return nil, fmt.Errorf("get personal record: %w", err)
	}

	logs, err := s.repo.RecentExerciseLogs(ctx, userID, exerciseID, recentExerciseLogsLimit)
	if err != nil {
		return nil, fmt.Errorf("get recent logs: %w", err)
	}

	return &ExerciseDetails{
		Exercise:       exercise,
		PersonalRecord: record,
		RecentLogs:     logs,
	}, nil
}

func (s *Service) Workouts(ctx context.Context, userID int, filter WorkoutFilter) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.repo.ListWorkouts(ctx, userID, filter)
}

func (s *Service) WorkoutDetails(ctx context.Context, userID, workoutID int) (_ *WorkoutDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.details")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	workout, err := s.repo.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	workoutExercises, err := s.repo.WorkoutExercises(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("get workout exercises: %w", err)
	}

	sessions, err := s.repo.ListSessions(ctx, userID, SessionListParams{
		WorkoutID: workoutID,
		Limit:     recentSessionsLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("get recent sessions: %w", err)
	}

	return &WorkoutDetails{
		Workout:          workout,
		WorkoutExercises: workoutExercises,
		RecentSessions:   sessions,
	}, nil
}

// CreateWorkout stores a new workout owned by the user, exercises are added one by one after.
func (s *Service) CreateWorkout(ctx context.Context, userID int, params CreateWorkoutParams) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return s.repo.CreateWorkout(ctx, &Workout{
		CreatorID:         &userID,
		Name:              strings.TrimSpace(params.Name),
		Description:       params.Description,
		Difficulty:        params.Difficulty,
		Goal:              params.Goal,
		Duration:          params.Duration,
		EstimatedCalories: params.EstimatedCalories,
		IsPublic:          params.IsPublic,
	})
}

// AddWorkoutExercise appends a catalog exercise to a workout the user created.
func (s *Service) AddWorkoutExercise(
	ctx context.Context,
	userID, workoutID int,
	params AddWorkoutExerciseParams,
) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.addexercise")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := params.Validate(); err != nil {
		return nil, err
	}

	workout, err := s.repo.GetOwnedWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	exercise, err := s.catalog.Get(ctx, params.ExerciseID)
	if err != nil {
		return nil, fmt.Errorf("get exercise %d: %w", params.ExerciseID, err)
	}

	return s.repo.AddWorkoutExercise(ctx, workout.ID, &WorkoutExercise{
		Exercise: *exercise,
		Position: params.Position,
		Sets:     params.sets(),
		Reps:     params.Reps,
		Duration: params.Duration,
		RestTime: params.restTime(),
		Notes:    params.Notes,
	})
}

func (s *Service) Records(ctx context.Context, userID int) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.records")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return s.records.ListRecords(ctx, userID)
}
