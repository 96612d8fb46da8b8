package core

import (
	"context"
	"fmt"
	"strconv"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=achievements_mocks_test.go -package=core

type achievementStore interface {
	AwardAchievement(ctx context.Context, achievement *Achievement) (bool, error)
}

type milestone struct {
	sessions    int
	title       string
	description string
}

// workoutMilestones are ordered by the number of completed sessions.
var workoutMilestones = []milestone{
	{1, "First Workout!", "Completed your first workout session"},
	{10, "10 Workouts", "Completed 10 workout sessions"},
	{50, "50 Workouts", "Completed 50 workout sessions"},
	{100, "Century Club", "Completed 100 workout sessions"},
}

// Awarder grants achievements. Granting the same achievement twice is a no-op.
type Awarder struct {
	store achievementStore
}

func NewAwarder(store achievementStore) *Awarder {
	return &Awarder{
		store: store,
	}
}

// AwardWorkoutMilestone grants every workout milestone reached with completedSessions.
// Milestones already held are skipped by the store, so missed awards catch up on the next completion.
func (a *Awarder) AwardWorkoutMilestone(ctx context.Context, userID, completedSessions int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "core.awarder.workoutmilestone")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("completed_sessions", completedSessions))

	for _, m := range workoutMilestones {
		if completedSessions < m.sessions {
			break
		}
		if err := a.award(ctx, &Achievement{
			UserID:          userID,
			AchievementType: AchievementWorkout,
			Title:           m.title,
			Description:     m.description,
			Icon:            "🏆",
		}); err != nil {
			return err
		}
	}
	return nil
}

func (a *Awarder) AwardPersonalRecord(
	ctx context.Context,
	userID int,
	exerciseName string,
	value float64,
	unit string,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "core.awarder.personalrecord")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	formatted := strconv.FormatFloat(value, 'f', -1, 64) + " " + unit
	return a.award(ctx, &Achievement{
		UserID:          userID,
		AchievementType: AchievementStrength,
		Title:           fmt.Sprintf("%s PR: %s", exerciseName, formatted),
		Description:     fmt.Sprintf("New personal record of %s on %s", formatted, exerciseName),
		Icon:            "💪",
	})
}

func (a *Awarder) award(ctx context.Context, achievement *Achievement) error {
	created, err := a.store.AwardAchievement(ctx, achievement)
	if err != nil {
		return fmt.Errorf("award %q: %w", achievement.Title, err)
	}
	if created {
		log.Infof("user %d earned achievement [%s]", achievement.UserID, achievement.Title)
	}
	return nil
}
