package workouts

import (
	"errors"
	"time"

	"github.com/2beens/fittrack/pkg"
)

var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrWorkoutNotFound   = errors.New("workout not found")
	ErrSessionNotFound   = errors.New("workout session not found")
	ErrRecordNotFound    = errors.New("personal record not found")
	ErrInvalidTransition = errors.New("invalid session state transition")
	ErrUnknownRecordType = errors.New("unknown record type")

	ErrWorkoutExerciseExists = errors.New("exercise already takes this position in the workout")
)

// weight_used NUMERIC(6,2)
const (
	weightPrecision = 6
	weightScale     = 2
)

const maxWorkoutNameLength = 200

type Category string
type MuscleGroup string
type Difficulty string
type Goal string

var (
	Categories   = []Category{"cardio", "strength", "flexibility", "balance", "plyometric"}
	MuscleGroups = []MuscleGroup{"chest", "back", "shoulders", "arms", "legs", "core", "full_body"}
	Difficulties = []Difficulty{"beginner", "intermediate", "advanced"}
	Goals        = []Goal{"weight_loss", "muscle_gain", "strength", "endurance", "flexibility", "general"}
)

type Exercise struct {
	ID                int         `json:"id"`
	Name              string      `json:"name"`
	Description       string      `json:"description"`
	Category          Category    `json:"category"`
	MuscleGroup       MuscleGroup `json:"muscle_group"`
	Difficulty        Difficulty  `json:"difficulty"`
	VideoURL          string      `json:"video_url"`
	Instructions      string      `json:"instructions"`
	Tips              string      `json:"tips"`
	EquipmentNeeded   string      `json:"equipment_needed"`
	CaloriesPerMinute float64     `json:"calories_per_minute"`
	CreatedAt         time.Time   `json:"created_at"`
}

type ExerciseFilter struct {
	Category    Category
	MuscleGroup MuscleGroup
	Difficulty  Difficulty
	Query       string
}

func (f ExerciseFilter) Validate() error {
	if f.Category != "" {
		if err := pkg.OneOf("category", f.Category, Categories...); err != nil {
			return err
		}
	}
	if f.MuscleGroup != "" {
		if err := pkg.OneOf("muscle_group", f.MuscleGroup, MuscleGroups...); err != nil {
			return err
		}
	}
	if f.Difficulty != "" {
		return pkg.OneOf("difficulty", f.Difficulty, Difficulties...)
	}
	return nil
}

type Workout struct {
	ID                int        `json:"id"`
	CreatorID         *int       `json:"creator_id,omitempty"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Difficulty        Difficulty `json:"difficulty"`
	Goal              Goal       `json:"goal"`
	Duration          int        `json:"duration"`
	EstimatedCalories int        `json:"estimated_calories"`
	IsPublic          bool       `json:"is_public"`
	CreatedAt         time.Time  `json:"created_at"`
}

type CreateWorkoutParams struct {
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Difficulty        Difficulty `json:"difficulty"`
	Goal              Goal       `json:"goal"`
	Duration          int        `json:"duration"`
	EstimatedCalories int        `json:"estimated_calories"`
	IsPublic          bool       `json:"is_public"`
}

func (p CreateWorkoutParams) Validate() error {
	if err := pkg.NotBlank("name", p.Name); err != nil {
		return err
	}
	if len(p.Name) > maxWorkoutNameLength {
		return pkg.NewValidationError("name", "too long")
	}
	if err := pkg.OneOf("difficulty", p.Difficulty, Difficulties...); err != nil {
		return err
	}
	if err := pkg.OneOf("goal", p.Goal, Goals...); err != nil {
		return err
	}
	if p.Duration == 0 {
		return pkg.NewValidationError("duration", "required")
	}
	if err := pkg.NonNegativeInt("duration", p.Duration); err != nil {
		return err
	}
	return pkg.NonNegativeInt("estimated_calories", p.EstimatedCalories)
}

type WorkoutFilter struct {
	Difficulty Difficulty
	Goal       Goal
}

func (f WorkoutFilter) Validate() error {
	if f.Difficulty != "" {
		if err := pkg.OneOf("difficulty", f.Difficulty, Difficulties...); err != nil {
			return err
		}
	}
	if f.Goal != "" {
		return pkg.OneOf("goal", f.Goal, Goals...)
	}
	return nil
}

// WorkoutExercise is one ordered entry of a workout plan.
type WorkoutExercise struct {
	ID       int      `json:"id"`
	Exercise Exercise `json:"exercise"`
	Position int      `json:"position"`
	Sets     int      `json:"sets"`
	Reps     *int     `json:"reps,omitempty"`
	Duration *int     `json:"duration,omitempty"`
	RestTime int      `json:"rest_time"`
	Notes    string   `json:"notes"`
}

// AddWorkoutExerciseParams appends an exercise to a workout plan. Sets and rest time
// default to 3 sets and 60 seconds.
type AddWorkoutExerciseParams struct {
	ExerciseID int    `json:"exercise_id"`
	Position   int    `json:"position"`
	Sets       *int   `json:"sets"`
	Reps       *int   `json:"reps"`
	Duration   *int   `json:"duration"`
	RestTime   *int   `json:"rest_time"`
	Notes      string `json:"notes"`
}

func (p AddWorkoutExerciseParams) sets() int {
	if p.Sets == nil {
		return 3
	}
	return *p.Sets
}

func (p AddWorkoutExerciseParams) restTime() int {
	if p.RestTime == nil {
		return 60
	}
	return *p.RestTime
}

func (p AddWorkoutExerciseParams) Validate() error {
	if p.ExerciseID <= 0 {
		return pkg.NewValidationError("exercise_id", "expected a positive integer")
	}
	if err := pkg.NonNegativeInt("position", p.Position); err != nil {
		return err
	}
	if err := pkg.NonNegativeInt("sets", p.sets()); err != nil {
		return err
	}
	if err := pkg.NonNegativeIntPtr("reps", p.Reps); err != nil {
		return err
	}
	if err := pkg.NonNegativeIntPtr("duration", p.Duration); err != nil {
		return err
	}
	return pkg.NonNegativeInt("rest_time", p.restTime())
}

type WorkoutSession struct {
	ID               int           `json:"id"`
	UserID           int           `json:"user_id"`
	WorkoutID        int           `json:"workout_id"`
	WorkoutName      string        `json:"workout_name"`
	ScheduledDate    time.Time     `json:"scheduled_date"`
	Status           SessionStatus `json:"status"`
	StartedAt        *time.Time    `json:"started_at,omitempty"`
	CompletedAt      *time.Time    `json:"completed_at,omitempty"`
	DurationMinutes  *int          `json:"duration_minutes,omitempty"`
	CaloriesBurned   *int          `json:"calories_burned,omitempty"`
	DifficultyRating *int          `json:"difficulty_rating,omitempty"`
	Notes            string        `json:"notes"`
	CreatedAt        time.Time     `json:"created_at"`
}

type SessionListParams struct {
	Status    SessionStatus
	WorkoutID int
	Limit     int
}

type ExerciseLog struct {
	ID              int       `json:"id"`
	SessionID       int       `json:"session_id"`
	ExerciseID      int       `json:"exercise_id"`
	ExerciseName    string    `json:"exercise_name"`
	SetsCompleted   int       `json:"sets_completed"`
	RepsCompleted   *int      `json:"reps_completed,omitempty"`
	WeightUsed      *float64  `json:"weight_used,omitempty"`
	DurationSeconds *int      `json:"duration_seconds,omitempty"`
	Notes           string    `json:"notes"`
	Completed       bool      `json:"completed"`
	CreatedAt       time.Time `json:"created_at"`
}

type LogExerciseParams struct {
	SetsCompleted   int      `json:"sets_completed"`
	RepsCompleted   *int     `json:"reps_completed"`
	WeightUsed      *float64 `json:"weight_used"`
	DurationSeconds *int     `json:"duration_seconds"`
	Notes           string   `json:"notes"`
}

func (p LogExerciseParams) Validate() error {
	if err := pkg.NonNegativeInt("sets_completed", p.SetsCompleted); err != nil {
		return err
	}
	if err := pkg.NonNegativeIntPtr("reps_completed", p.RepsCompleted); err != nil {
		return err
	}
	if err := pkg.NonNegativeNumericPtr("weight_used", p.WeightUsed, weightPrecision, weightScale); err != nil {
		return err
	}
	return pkg.NonNegativeIntPtr("duration_seconds", p.DurationSeconds)
}

// weight returns the logged weight as the exercise_logs column stores it.
func (p LogExerciseParams) weight() *float64 {
	if p.WeightUsed == nil {
		return nil
	}
	w := pkg.RoundNumeric(*p.WeightUsed, weightScale)
	return &w
}

type CompleteParams struct {
	DurationMinutes  *int   `json:"duration_minutes"`
	CaloriesBurned   *int   `json:"calories_burned"`
	DifficultyRating *int   `json:"difficulty_rating"`
	Notes            string `json:"notes"`
}

func (p CompleteParams) Validate() error {
	if err := pkg.NonNegativeIntPtr("duration_minutes", p.DurationMinutes); err != nil {
		return err
	}
	if err := pkg.NonNegativeIntPtr("calories_burned", p.CaloriesBurned); err != nil {
		return err
	}
	if p.DifficultyRating != nil {
		return pkg.IntInRange("difficulty_rating", *p.DifficultyRating, 1, 5)
	}
	return nil
}
