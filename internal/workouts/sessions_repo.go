package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

const sessionColumns = `
	s.id, s.user_id, s.workout_id, w.name, s.scheduled_date, s.status, s.started_at,
	s.completed_at, s.duration_minutes, s.calories_burned, s.difficulty_rating, s.notes, s.created_at`

func scanSession(row pgx.Row, s *WorkoutSession) error {
	return row.Scan(
		&s.ID, &s.UserID, &s.WorkoutID, &s.WorkoutName, &s.ScheduledDate, &s.Status, &s.StartedAt,
		&s.CompletedAt, &s.DurationMinutes, &s.CaloriesBurned, &s.DifficultyRating, &s.Notes, &s.CreatedAt,
	)
}

func (r *Repo) CreateSession(ctx context.Context, session *WorkoutSession) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessions.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.db.QueryRow(ctx, `
		INSERT INTO workout_sessions (user_id, workout_id, scheduled_date, status, started_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`,
		session.UserID, session.WorkoutID, session.ScheduledDate, string(session.Status), session.StartedAt,
	).Scan(&session.ID, &session.CreatedAt)
	if err != nil {
		return nil, pkg.AsValidationError(err)
	}

	return session, nil
}

// GetSession is owner scoped, a session of another user is reported as not found.
func (r *Repo) GetSession(ctx context.Context, userID, sessionID int) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessions.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	session := &WorkoutSession{}
	row := r.db.QueryRow(ctx, `
		SELECT `+sessionColumns+`
		FROM workout_sessions s
		JOIN workouts w ON w.id = s.workout_id
		WHERE s.id = $1 AND s.user_id = $2
	`, sessionID, userID)
	if err := scanSession(row, session); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (r *Repo) ListSessions(ctx context.Context, userID int, params SessionListParams) (_ []WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessions.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM workout_sessions s
		JOIN workouts w ON w.id = s.workout_id
		WHERE s.user_id = $1
			AND ($2 = '' OR s.status = $2)
			AND ($3 = 0 OR s.workout_id = $3)
		ORDER BY s.scheduled_date DESC, s.id DESC
		LIMIT $4
	`, userID, string(params.Status), params.WorkoutID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []WorkoutSession
	for rows.Next() {
		var s WorkoutSession
		if err := scanSession(rows, &s); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// UpdateSessionState persists a transition. The row is only written while it is still in
// the from state, so two racing transitions cannot both succeed.
func (r *Repo) UpdateSessionState(ctx context.Context, session *WorkoutSession, from SessionStatus) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessions.updatestate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("from", string(from)),
		attribute.String("to", string(session.Status)),
	)

	tag, err := r.db.Exec(ctx, `
		UPDATE workout_sessions
		SET status = $3, started_at = $4, completed_at = $5, duration_minutes = $6,
			calories_burned = $7, difficulty_rating = $8, notes = $9
		WHERE id = $1 AND user_id = $2 AND status = $10
	`,
		session.ID, session.UserID, string(session.Status), session.StartedAt, session.CompletedAt,
		session.DurationMinutes, session.CaloriesBurned, session.DifficultyRating, session.Notes,
		string(from),
	)
	if err != nil {
		return pkg.AsValidationError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: session %d is no longer %s", ErrInvalidTransition, session.ID, from)
	}
	return nil
}

func (r *Repo) CountCompletedSessions(ctx context.Context, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessions.countcompleted")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM workout_sessions WHERE user_id = $1 AND status = 'completed'
	`, userID).Scan(&count)
	return count, err
}

// UpsertExerciseLog creates the log for (session, exercise) or overwrites every field of the
// existing one. Nothing is written unless the session is still in progress.
func (r *Repo) UpsertExerciseLog(ctx context.Context, exerciseLog *ExerciseLog) (_ *ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.logs.upsert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var inserted bool
	err = r.db.QueryRow(ctx, `
		INSERT INTO exercise_logs
			(session_id, exercise_id, sets_completed, reps_completed, weight_used, duration_seconds, notes, completed)
		SELECT $1::int, $2::int, $3::int, $4::int, $5::numeric, $6::int, $7::text, $8::boolean
		WHERE EXISTS (
			SELECT 1 FROM workout_sessions WHERE id = $1 AND status = 'in_progress' FOR SHARE
		)
		ON CONFLICT (session_id, exercise_id) DO UPDATE SET
			sets_completed = EXCLUDED.sets_completed,
			reps_completed = EXCLUDED.reps_completed,
			weight_used = EXCLUDED.weight_used,
			duration_seconds = EXCLUDED.duration_seconds,
			notes = EXCLUDED.notes,
			completed = EXCLUDED.completed
		RETURNING id, created_at, (xmax = 0)
	`,
		exerciseLog.SessionID, exerciseLog.ExerciseID, exerciseLog.SetsCompleted, exerciseLog.RepsCompleted, exerciseLog.WeightUsed,
		exerciseLog.DurationSeconds, exerciseLog.Notes, exerciseLog.Completed,
	).Scan(&exerciseLog.ID, &exerciseLog.CreatedAt, &inserted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: session %d is no longer %s", ErrInvalidTransition, exerciseLog.SessionID, StatusInProgress)
		}
		return nil, pkg.AsValidationError(err)
	}
	span.SetAttributes(attribute.Bool("inserted", inserted))

	return exerciseLog, nil
}

const exerciseLogColumns = `
	l.id, l.session_id, l.exercise_id, e.name, l.sets_completed, l.reps_completed, l.weight_used,
	l.duration_seconds, l.notes, l.completed, l.created_at`

func scanExerciseLog(row pgx.Row, l *ExerciseLog) error {
	return row.Scan(
		&l.ID, &l.SessionID, &l.ExerciseID, &l.ExerciseName, &l.SetsCompleted, &l.RepsCompleted, &l.WeightUsed,
		&l.DurationSeconds, &l.Notes, &l.Completed, &l.CreatedAt,
	)
}

func (r *Repo) SessionLogs(ctx context.Context, sessionID int) (_ []ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.logs.session")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+exerciseLogColumns+`
		FROM exercise_logs l
		JOIN exercises e ON e.id = l.exercise_id
		WHERE l.session_id = $1
		ORDER BY l.id
	`, sessionID)
	if err != nil {
		return nil, err
	}
	return collectExerciseLogs(rows)
}

func (r *Repo) RecentExerciseLogs(ctx context.Context, userID, exerciseID, limit int) (_ []ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.logs.recent")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+exerciseLogColumns+`
		FROM exercise_logs l
		JOIN exercises e ON e.id = l.exercise_id
		JOIN workout_sessions s ON s.id = l.session_id
		WHERE s.user_id = $1 AND l.exercise_id = $2
		ORDER BY l.created_at DESC, l.id DESC
		LIMIT $3
	`, userID, exerciseID, limit)
	if err != nil {
		return nil, err
	}
	return collectExerciseLogs(rows)
}

func collectExerciseLogs(rows pgx.Rows) ([]ExerciseLog, error) {
	defer rows.Close()

	var logs []ExerciseLog
	for rows.Next() {
		var l ExerciseLog
		if err := scanExerciseLog(rows, &l); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}
