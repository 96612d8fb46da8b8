package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultListLimit = 100

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const exerciseColumns = `
	e.id, e.name, e.description, e.category, e.muscle_group, e.difficulty, e.video_url,
	e.instructions, e.tips, e.equipment_needed, e.calories_per_minute, e.created_at`

func scanExercise(row pgx.Row, e *Exercise) error {
	return row.Scan(
		&e.ID, &e.Name, &e.Description, &e.Category, &e.MuscleGroup, &e.Difficulty, &e.VideoURL,
		&e.Instructions, &e.Tips, &e.EquipmentNeeded, &e.CaloriesPerMinute, &e.CreatedAt,
	)
}

func (r *Repo) GetExercise(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercises.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	exercise := &Exercise{}
	row := r.db.QueryRow(ctx, `SELECT `+exerciseColumns+` FROM exercises e WHERE e.id = $1`, id)
	if err := scanExercise(row, exercise); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func (r *Repo) ListExercises(ctx context.Context, filter ExerciseFilter) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercises.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+exerciseColumns+`
		FROM exercises e
		WHERE ($1 = '' OR e.category = $1)
			AND ($2 = '' OR e.muscle_group = $2)
			AND ($3 = '' OR e.difficulty = $3)
			AND ($4 = '' OR e.name ILIKE '%' || $4 || '%')
		ORDER BY e.name, e.id
	`, string(filter.Category), string(filter.MuscleGroup), string(filter.Difficulty), filter.Query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		var e Exercise
		if err := scanExercise(rows, &e); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, e)
	}

	return exercises, rows.Err()
}

const workoutColumns = `
	w.id, w.creator_id, w.name, w.description, w.difficulty, w.goal, w.duration,
	w.estimated_calories, w.is_public, w.created_at`

func scanWorkout(row pgx.Row, w *Workout) error {
	return row.Scan(
		&w.ID, &w.CreatorID, &w.Name, &w.Description, &w.Difficulty, &w.Goal, &w.Duration,
		&w.EstimatedCalories, &w.IsPublic, &w.CreatedAt,
	)
}

// GetWorkout returns the workout if it is public or owned by the user.
func (r *Repo) GetWorkout(ctx context.Context, userID, workoutID int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	workout := &Workout{}
	row := r.db.QueryRow(ctx, `
		SELECT `+workoutColumns+`
		FROM workouts w
		WHERE w.id = $1 AND (w.is_public OR w.creator_id = $2)
	`, workoutID, userID)
	if err := scanWorkout(row, workout); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// GetOwnedWorkout returns the workout only to its creator.
func (r *Repo) GetOwnedWorkout(ctx context.Context, userID, workoutID int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getowned")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	workout := &Workout{}
	row := r.db.QueryRow(ctx, `
		SELECT `+workoutColumns+`
		FROM workouts w
		WHERE w.id = $1 AND w.creator_id = $2
	`, workoutID, userID)
	if err := scanWorkout(row, workout); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

func (r *Repo) CreateWorkout(ctx context.Context, workout *Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.db.QueryRow(ctx, `
		INSERT INTO workouts (creator_id, name, description, difficulty, goal, duration, estimated_calories, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`,
		workout.CreatorID, workout.Name, workout.Description, string(workout.Difficulty), string(workout.Goal),
		workout.Duration, workout.EstimatedCalories, workout.IsPublic,
	).Scan(&workout.ID, &workout.CreatedAt)
	if err != nil {
		return nil, pkg.AsValidationError(err)
	}

	return workout, nil
}

func (r *Repo) AddWorkoutExercise(ctx context.Context, workoutID int, we *WorkoutExercise) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercises.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.db.QueryRow(ctx, `
		INSERT INTO workout_exercises (workout_id, exercise_id, position, sets, reps, duration, rest_time, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`,
		workoutID, we.Exercise.ID, we.Position, we.Sets, we.Reps, we.Duration, we.RestTime, we.Notes,
	).Scan(&we.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrWorkoutExerciseExists
		}
		return nil, pkg.AsValidationError(err)
	}

	return we, nil
}

func (r *Repo) ListWorkouts(ctx context.Context, userID int, filter WorkoutFilter) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+workoutColumns+`
		FROM workouts w
		WHERE (w.is_public OR w.creator_id = $1)
			AND ($2 = '' OR w.difficulty = $2)
			AND ($3 = '' OR w.goal = $3)
		ORDER BY w.created_at DESC, w.id DESC
	`, userID, string(filter.Difficulty), string(filter.Goal))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []Workout
	for rows.Next() {
		var w Workout
		if err := scanWorkout(rows, &w); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workouts = append(workouts, w)
	}

	return workouts, rows.Err()
}

func (r *Repo) WorkoutExercises(ctx context.Context, workoutID int) (_ []WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercises")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT
			we.id, we.position, we.sets, we.reps, we.duration, we.rest_time, we.notes,
			`+exerciseColumns+`
		FROM workout_exercises we
		JOIN exercises e ON e.id = we.exercise_id
		WHERE we.workout_id = $1
		ORDER BY we.position, we.id
	`, workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []WorkoutExercise
	for rows.Next() {
		var we WorkoutExercise
		e := &we.Exercise
		if err := rows.Scan(
			&we.ID, &we.Position, &we.Sets, &we.Reps, &we.Duration, &we.RestTime, &we.Notes,
			&e.ID, &e.Name, &e.Description, &e.Category, &e.MuscleGroup, &e.Difficulty, &e.VideoURL,
			&e.Instructions, &e.Tips, &e.EquipmentNeeded, &e.CaloriesPerMinute, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		items = append(items, we)
	}

	return items, rows.Err()
}
