package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/workouts"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// StarterExercises fill an empty catalog so a fresh deploy can author workouts.
var StarterExercises = []workouts.Exercise{
	{
		Name: "Push-Up", Category: "strength", MuscleGroup: "chest", Difficulty: "beginner",
		Instructions: "Hands under shoulders, lower the chest to the floor, push back up.", CaloriesPerMinute: 7,
	},
	{
		Name: "Barbell Bench Press", Category: "strength", MuscleGroup: "chest", Difficulty: "intermediate",
		EquipmentNeeded: "barbell, bench", CaloriesPerMinute: 6,
	},
	{
		Name: "Pull-Up", Category: "strength", MuscleGroup: "back", Difficulty: "intermediate",
		EquipmentNeeded: "pull-up bar", CaloriesPerMinute: 8,
	},
	{
		Name: "Bent-Over Row", Category: "strength", MuscleGroup: "back", Difficulty: "intermediate",
		EquipmentNeeded: "barbell", CaloriesPerMinute: 6,
	},
	{
		Name: "Overhead Press", Category: "strength", MuscleGroup: "shoulders", Difficulty: "intermediate",
		EquipmentNeeded: "barbell", CaloriesPerMinute: 5.5,
	},
	{
		Name: "Dumbbell Curl", Category: "strength", MuscleGroup: "arms", Difficulty: "beginner",
		EquipmentNeeded: "dumbbells", CaloriesPerMinute: 4,
	},
	{
		Name: "Back Squat", Category: "strength", MuscleGroup: "legs", Difficulty: "intermediate",
		EquipmentNeeded: "barbell, rack", CaloriesPerMinute: 8,
	},
	{
		Name: "Deadlift", Category: "strength", MuscleGroup: "back", Difficulty: "advanced",
		EquipmentNeeded: "barbell", CaloriesPerMinute: 8,
	},
	{
		Name: "Walking Lunge", Category: "strength", MuscleGroup: "legs", Difficulty: "beginner",
		CaloriesPerMinute: 6,
	},
	{
		Name: "Plank", Category: "strength", MuscleGroup: "core", Difficulty: "beginner",
		Instructions: "Hold a straight line from head to heels on forearms and toes.", CaloriesPerMinute: 4,
	},
	{
		Name: "Running", Category: "cardio", MuscleGroup: "full_body", Difficulty: "beginner",
		CaloriesPerMinute: 11,
	},
	{
		Name: "Jump Rope", Category: "cardio", MuscleGroup: "full_body", Difficulty: "beginner",
		EquipmentNeeded: "jump rope", CaloriesPerMinute: 12,
	},
	{
		Name: "Burpee", Category: "plyometric", MuscleGroup: "full_body", Difficulty: "intermediate",
		CaloriesPerMinute: 10,
	},
	{
		Name: "Box Jump", Category: "plyometric", MuscleGroup: "legs", Difficulty: "intermediate",
		EquipmentNeeded: "plyo box", CaloriesPerMinute: 9,
	},
	{
		Name: "Downward Dog", Category: "flexibility", MuscleGroup: "full_body", Difficulty: "beginner",
		CaloriesPerMinute: 3,
	},
	{
		Name: "Single-Leg Stand", Category: "balance", MuscleGroup: "legs", Difficulty: "beginner",
		CaloriesPerMinute: 2.5,
	},
}

// SeedExercises inserts the starter exercises when the catalog is empty.
// A catalog that already has rows is left untouched.
func SeedExercises(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			log.Errorf("seed exercises: rollback: %s", err)
		}
	}()

	// serialize concurrent startups, the second one sees a filled catalog
	if _, err := tx.Exec(ctx, `LOCK TABLE exercises IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return 0, fmt.Errorf("lock exercises: %w", err)
	}

	var existing int
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM exercises`).Scan(&existing); err != nil {
		return 0, fmt.Errorf("count exercises: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	rows := make([][]any, 0, len(StarterExercises))
	for _, e := range StarterExercises {
		rows = append(rows, []any{
			e.Name, e.Description, string(e.Category), string(e.MuscleGroup), string(e.Difficulty),
			e.Instructions, e.EquipmentNeeded, e.CaloriesPerMinute,
		})
	}
	inserted, err := tx.CopyFrom(ctx,
		pgx.Identifier{"exercises"},
		[]string{
			"name", "description", "category", "muscle_group", "difficulty",
			"instructions", "equipment_needed", "calories_per_minute",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("copy exercises: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return int(inserted), nil
}
