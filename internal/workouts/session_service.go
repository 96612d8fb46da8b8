package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=session_service_mocks_test.go -package=workouts

const weightUnit = "kg"

type sessionsRepo interface {
	GetWorkout(ctx context.Context, userID, workoutID int) (*Workout, error)
	WorkoutExercises(ctx context.Context, workoutID int) ([]WorkoutExercise, error)
	CreateSession(ctx context.Context, session *WorkoutSession) (*WorkoutSession, error)
	GetSession(ctx context.Context, userID, sessionID int) (*WorkoutSession, error)
	ListSessions(ctx context.Context, userID int, params SessionListParams) ([]WorkoutSession, error)
	UpdateSessionState(ctx context.Context, session *WorkoutSession, from SessionStatus) error
	CountCompletedSessions(ctx context.Context, userID int) (int, error)
	UpsertExerciseLog(ctx context.Context, exerciseLog *ExerciseLog) (*ExerciseLog, error)
	SessionLogs(ctx context.Context, sessionID int) ([]ExerciseLog, error)
}

type exerciseGetter interface {
	Get(ctx context.Context, id int) (*Exercise, error)
}

type recordEvaluator interface {
	Evaluate(
		ctx context.Context,
		userID, exerciseID int,
		recordType RecordType,
		candidate float64,
		unit string,
	) (EvaluationResult, error)
}

// achievementAwarder is implemented by the core achievements service.
type achievementAwarder interface {
	AwardWorkoutMilestone(ctx context.Context, userID, completedSessions int) error
	AwardPersonalRecord(ctx context.Context, userID int, exerciseName string, value float64, unit string) error
}

type SessionDetails struct {
	Session          *WorkoutSession   `json:"session"`
	WorkoutExercises []WorkoutExercise `json:"workout_exercises"`
	ExerciseLogs     []ExerciseLog     `json:"exercise_logs"`
}

type LogExerciseResult struct {
	Log *ExerciseLog `json:"exercise_log"`
	// Evaluation is nil when no positive weight was logged.
	Evaluation *EvaluationResult `json:"evaluation,omitempty"`
	NewRecord  bool              `json:"new_record"`
}

type SessionService struct {
	repo           sessionsRepo
	exercises      exerciseGetter
	records        recordEvaluator
	achievements   achievementAwarder
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewSessionService(
	repo sessionsRepo,
	exercises exerciseGetter,
	records recordEvaluator,
	achievements achievementAwarder,
	metricsManager *metrics.Manager,
) *SessionService {
	return &SessionService{
		repo:           repo,
		exercises:      exercises,
		records:        records,
		achievements:   achievements,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// StartWorkout creates a session for today that is already in progress.
func (s *SessionService) StartWorkout(ctx context.Context, userID, workoutID int) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.startworkout")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	workout, err := s.repo.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, fmt.Errorf("get workout %d: %w", workoutID, err)
	}

	now := s.now()
	session, err := s.repo.CreateSession(ctx, &WorkoutSession{
		UserID:        userID,
		WorkoutID:     workout.ID,
		WorkoutName:   workout.Name,
		ScheduledDate: dateOf(now),
		Status:        StatusInProgress,
		StartedAt:     &now,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.metricsManager.CounterSessions.WithLabelValues(string(EventStart)).Inc()
	log.Debugf("user %d started workout %d, session %d", userID, workoutID, session.ID)

	return session, nil
}

func (s *SessionService) PlanSession(ctx context.Context, userID, workoutID int, date time.Time) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.plan")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	workout, err := s.repo.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, fmt.Errorf("get workout %d: %w", workoutID, err)
	}

	session, err := s.repo.CreateSession(ctx, &WorkoutSession{
		UserID:        userID,
		WorkoutID:     workout.ID,
		WorkoutName:   workout.Name,
		ScheduledDate: dateOf(date),
		Status:        StatusPlanned,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.metricsManager.CounterSessions.WithLabelValues("planned").Inc()

	return session, nil
}

func (s *SessionService) Get(ctx context.Context, userID, sessionID int) (_ *SessionDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	session, err := s.repo.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	workoutExercises, err := s.repo.WorkoutExercises(ctx, session.WorkoutID)
	if err != nil {
		return nil, fmt.Errorf("get workout exercises: %w", err)
	}

	logs, err := s.repo.SessionLogs(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("get exercise logs: %w", err)
	}

	return &SessionDetails{
		Session:          session,
		WorkoutExercises: workoutExercises,
		ExerciseLogs:     logs,
	}, nil
}

func (s *SessionService) List(ctx context.Context, userID int, params SessionListParams) (_ []WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return s.repo.ListSessions(ctx, userID, params)
}

func (s *SessionService) Start(ctx context.Context, userID, sessionID int) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.start")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	session, err := s.transition(ctx, userID, sessionID, EventStart, func(session *WorkoutSession) {
		now := s.now()
		session.StartedAt = &now
	})
	if err != nil {
		return nil, err
	}

	s.metricsManager.CounterSessions.WithLabelValues(string(EventStart)).Inc()
	return session, nil
}

// LogExercise upserts the exercise log of the session and, when a positive weight was used,
// evaluates the weight personal record.
func (s *SessionService) LogExercise(
	ctx context.Context,
	userID, sessionID, exerciseID int,
	params LogExerciseParams,
) (_ *LogExerciseResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.logexercise")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.Int("session.id", sessionID),
		attribute.Int("exercise.id", exerciseID),
	)

	if err := params.Validate(); err != nil {
		return nil, err
	}

	session, err := s.repo.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := Transition(session.Status, EventLogExercise); err != nil {
		return nil, err
	}

	exercise, err := s.exercises.Get(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("get exercise %d: %w", exerciseID, err)
	}

	weight := params.weight()
	exerciseLog, err := s.repo.UpsertExerciseLog(ctx, &ExerciseLog{
		SessionID:       session.ID,
		ExerciseID:      exercise.ID,
		ExerciseName:    exercise.Name,
		SetsCompleted:   params.SetsCompleted,
		RepsCompleted:   params.RepsCompleted,
		WeightUsed:      weight,
		DurationSeconds: params.DurationSeconds,
		Notes:           params.Notes,
		Completed:       true,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert exercise log: %w", err)
	}
	s.metricsManager.CounterExercisesLogged.Inc()

	result := &LogExerciseResult{Log: exerciseLog}
	// bodyweight sets log no weight or zero, neither is a record
	if weight == nil || *weight <= 0 {
		return result, nil
	}

	evaluation, err := s.records.Evaluate(ctx, userID, exercise.ID, RecordWeight, *weight, weightUnit)
	if err != nil {
		return nil, fmt.Errorf("evaluate personal record: %w", err)
	}
	if evaluation.Record != nil && evaluation.Record.ExerciseName == "" {
		evaluation.Record.ExerciseName = exercise.Name
	}
	result.Evaluation = &evaluation
	result.NewRecord = evaluation.NewRecord()

	if result.NewRecord {
		s.metricsManager.CounterPersonalRecords.WithLabelValues(string(RecordWeight)).Inc()
		log.Debugf("user %d: new %s record for %s: %.2f", userID, RecordWeight, exercise.Name, *weight)
		if err := s.achievements.AwardPersonalRecord(ctx, userID, exercise.Name, *weight, weightUnit); err != nil {
			log.Errorf("award personal record achievement to user %d: %s", userID, err)
		}
	}

	return result, nil
}

// Complete finalizes an in-progress session. A session that was never started cannot
// be completed.
func (s *SessionService) Complete(ctx context.Context, userID, sessionID int, params CompleteParams) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.complete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := params.Validate(); err != nil {
		return nil, err
	}

	session, err := s.transition(ctx, userID, sessionID, EventComplete, func(session *WorkoutSession) {
		now := s.now()
		session.CompletedAt = &now
		session.DurationMinutes = params.DurationMinutes
		session.CaloriesBurned = params.CaloriesBurned
		session.DifficultyRating = params.DifficultyRating
		session.Notes = params.Notes
	})
	if err != nil {
		return nil, err
	}
	s.metricsManager.CounterSessions.WithLabelValues(string(EventComplete)).Inc()

	completed, err := s.repo.CountCompletedSessions(ctx, userID)
	if err != nil {
		log.Errorf("count completed sessions of user %d: %s", userID, err)
		return session, nil
	}
	if err := s.achievements.AwardWorkoutMilestone(ctx, userID, completed); err != nil {
		log.Errorf("award workout milestone to user %d: %s", userID, err)
	}

	return session, nil
}

func (s *SessionService) Skip(ctx context.Context, userID, sessionID int) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.skip")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	session, err := s.transition(ctx, userID, sessionID, EventSkip, nil)
	if err != nil {
		return nil, err
	}

	s.metricsManager.CounterSessions.WithLabelValues(string(EventSkip)).Inc()
	return session, nil
}

func (s *SessionService) transition(
	ctx context.Context,
	userID, sessionID int,
	event SessionEvent,
	apply func(session *WorkoutSession),
) (*WorkoutSession, error) {
	session, err := s.repo.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	from := session.Status
	next, err := Transition(from, event)
	if err != nil {
		return nil, err
	}

	session.Status = next
	if apply != nil {
		apply(session)
	}
	if err := s.repo.UpdateSessionState(ctx, session, from); err != nil {
		return nil, fmt.Errorf("update session %d: %w", session.ID, err)
	}

	log.Debugf("session %d of user %d: %s -> %s", session.ID, userID, from, next)
	return session, nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
