package core

import (
	"errors"
	"time"

	"github.com/2beens/fittrack/pkg"
)

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrGoalNotFound      = errors.New("goal not found")
	ErrProgressLogExists = errors.New("progress already logged for this date")
)

type Gender string
type ActivityLevel string
type GoalType string
type GoalStatus string
type AchievementType string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalPaused    GoalStatus = "paused"
	GoalAbandoned GoalStatus = "abandoned"

	AchievementWorkout  AchievementType = "workout"
	AchievementStrength AchievementType = "strength"
)

var (
	Genders        = []Gender{"M", "F", "O"}
	ActivityLevels = []ActivityLevel{"sedentary", "light", "moderate", "very", "extra"}
	GoalTypes      = []GoalType{
		"weight_loss", "weight_gain", "muscle_gain", "endurance", "strength", "flexibility", "general",
	}
	GoalStatuses = []GoalStatus{GoalActive, GoalCompleted, GoalPaused, GoalAbandoned}
)

const maxBioLength = 500

type Profile struct {
	ID            int           `json:"id"`
	UserID        int           `json:"user_id"`
	DateOfBirth   *time.Time    `json:"date_of_birth"`
	Gender        *Gender       `json:"gender"`
	Height        *float64      `json:"height"`
	CurrentWeight *float64      `json:"current_weight"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Bio           string        `json:"bio"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Age returns the age in full years at the given time, nil without a date of birth.
func (p Profile) Age(now time.Time) *int {
	if p.DateOfBirth == nil {
		return nil
	}
	dob := *p.DateOfBirth
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return &age
}

type UpdateProfileParams struct {
	DateOfBirth   string        `json:"date_of_birth"`
	Gender        Gender        `json:"gender"`
	Height        *float64      `json:"height"`
	CurrentWeight *float64      `json:"current_weight"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Bio           string        `json:"bio"`
}

func (p UpdateProfileParams) Validate() error {
	if p.DateOfBirth != "" {
		if _, err := pkg.ParseDate("date_of_birth", p.DateOfBirth); err != nil {
			return err
		}
	}
	if p.Gender != "" {
		if err := pkg.OneOf("gender", p.Gender, Genders...); err != nil {
			return err
		}
	}
	if p.ActivityLevel != "" {
		if err := pkg.OneOf("activity_level", p.ActivityLevel, ActivityLevels...); err != nil {
			return err
		}
	}
	if err := pkg.NonNegativeNumericPtr("height", p.Height, 5, 2); err != nil {
		return err
	}
	if err := pkg.NonNegativeNumericPtr("current_weight", p.CurrentWeight, 5, 2); err != nil {
		return err
	}
	if len(p.Bio) > maxBioLength {
		return pkg.NewValidationError("bio", "too long")
	}
	return nil
}

type Goal struct {
	ID                 int        `json:"id"`
	UserID             int        `json:"user_id"`
	GoalType           GoalType   `json:"goal_type"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	TargetWeight       *float64   `json:"target_weight"`
	TargetDate         *time.Time `json:"target_date"`
	Status             GoalStatus `json:"status"`
	ProgressPercentage int        `json:"progress_percentage"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	CompletedAt        *time.Time `json:"completed_at"`
}

type CreateGoalParams struct {
	GoalType     GoalType `json:"goal_type"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	TargetWeight *float64 `json:"target_weight"`
	TargetDate   string   `json:"target_date"`
}

func (p CreateGoalParams) Validate() error {
	if err := pkg.OneOf("goal_type", p.GoalType, GoalTypes...); err != nil {
		return err
	}
	if err := pkg.NotBlank("title", p.Title); err != nil {
		return err
	}
	if len(p.Title) > 200 {
		return pkg.NewValidationError("title", "too long")
	}
	if err := pkg.NonNegativeNumericPtr("target_weight", p.TargetWeight, 5, 2); err != nil {
		return err
	}
	if p.TargetDate != "" {
		if _, err := pkg.ParseDate("target_date", p.TargetDate); err != nil {
			return err
		}
	}
	return nil
}

type UpdateGoalParams struct {
	ProgressPercentage *int       `json:"progress_percentage"`
	Status             GoalStatus `json:"status"`
}

func (p UpdateGoalParams) Validate() error {
	if p.ProgressPercentage != nil {
		if err := pkg.IntInRange("progress_percentage", *p.ProgressPercentage, 0, 100); err != nil {
			return err
		}
	}
	if p.Status != "" {
		return pkg.OneOf("status", p.Status, GoalStatuses...)
	}
	return nil
}

type ProgressLog struct {
	ID                int       `json:"id"`
	UserID            int       `json:"user_id"`
	Date              time.Time `json:"date"`
	Weight            *float64  `json:"weight"`
	BodyFatPercentage *float64  `json:"body_fat_percentage"`
	MuscleMass        *float64  `json:"muscle_mass"`
	Waist             *float64  `json:"waist"`
	Chest             *float64  `json:"chest"`
	Arms              *float64  `json:"arms"`
	Legs              *float64  `json:"legs"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
}

type LogProgressParams struct {
	Date              string   `json:"date"`
	Weight            *float64 `json:"weight"`
	BodyFatPercentage *float64 `json:"body_fat_percentage"`
	MuscleMass        *float64 `json:"muscle_mass"`
	Waist             *float64 `json:"waist"`
	Chest             *float64 `json:"chest"`
	Arms              *float64 `json:"arms"`
	Legs              *float64 `json:"legs"`
	Notes             string   `json:"notes"`
}

func (p LogProgressParams) Validate() error {
	if _, err := pkg.ParseDate("date", p.Date); err != nil {
		return err
	}
	// precision and scale follow the progress_logs columns
	measurements := []struct {
		field            string
		value            *float64
		precision, scale int
	}{
		{"weight", p.Weight, 5, 2},
		{"body_fat_percentage", p.BodyFatPercentage, 4, 1},
		{"muscle_mass", p.MuscleMass, 5, 2},
		{"waist", p.Waist, 5, 1},
		{"chest", p.Chest, 5, 1},
		{"arms", p.Arms, 5, 1},
		{"legs", p.Legs, 5, 1},
	}
	for _, m := range measurements {
		if err := pkg.NonNegativeNumericPtr(m.field, m.value, m.precision, m.scale); err != nil {
			return err
		}
	}
	if p.BodyFatPercentage != nil && *p.BodyFatPercentage > 100 {
		return pkg.NewValidationError("body_fat_percentage", "must not exceed 100")
	}
	return nil
}

type Achievement struct {
	ID              int             `json:"id"`
	UserID          int             `json:"user_id"`
	AchievementType AchievementType `json:"achievement_type"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Icon            string          `json:"icon"`
	EarnedAt        time.Time       `json:"earned_at"`
}

// SessionSummary is the part of a workout session the dashboard needs.
type SessionSummary struct {
	ScheduledDate  time.Time `json:"scheduled_date"`
	Status         string    `json:"status"`
	CaloriesBurned *int      `json:"calories_burned"`
}
