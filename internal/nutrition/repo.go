package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const logColumns = `
	id, user_id, date, total_calories, total_protein, total_carbs, total_fats, total_fiber,
	water_intake, notes, created_at, updated_at`

func scanLog(row pgx.Row, l *NutritionLog) error {
	return row.Scan(
		&l.ID, &l.UserID, &l.Date, &l.Calories, &l.Protein, &l.Carbs, &l.Fats, &l.Fiber,
		&l.WaterIntake, &l.Notes, &l.CreatedAt, &l.UpdatedAt,
	)
}

// GetOrCreateLog returns the log of the user for the date, creating an empty one if absent.
// Uniqueness of (user, date) is left to the table.
func (r *Repo) GetOrCreateLog(ctx context.Context, userID int, date time.Time) (_ *NutritionLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.logs.getorcreate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if _, err := r.db.Exec(ctx, `
		INSERT INTO nutrition_logs (user_id, date)
		VALUES ($1, $2)
		ON CONFLICT (user_id, date) DO NOTHING
	`, userID, date); err != nil {
		return nil, fmt.Errorf("insert log: %w", err)
	}

	nutritionLog := &NutritionLog{}
	row := r.db.QueryRow(ctx, `SELECT `+logColumns+` FROM nutrition_logs WHERE user_id = $1 AND date = $2`, userID, date)
	if err := scanLog(row, nutritionLog); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	return nutritionLog, nil
}

func (r *Repo) UpdateTotals(ctx context.Context, userID, logID int, totals Totals) (_ *NutritionLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.logs.updatetotals")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	nutritionLog := &NutritionLog{}
	row := r.db.QueryRow(ctx, `
		UPDATE nutrition_logs
		SET total_calories = $3, total_protein = $4, total_carbs = $5, total_fats = $6, total_fiber = $7,
			updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+logColumns,
		logID, userID, totals.Calories, totals.Protein, totals.Carbs, totals.Fats, totals.Fiber,
	)
	if err := scanLog(row, nutritionLog); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNutritionLogNotFound
		}
		return nil, err
	}

	return nutritionLog, nil
}

// SetWaterIntake creates the log of the day if needed and sets its water intake in liters.
func (r *Repo) SetWaterIntake(ctx context.Context, userID int, date time.Time, liters float64) (_ *NutritionLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.logs.setwater")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	nutritionLog := &NutritionLog{}
	row := r.db.QueryRow(ctx, `
		INSERT INTO nutrition_logs (user_id, date, water_intake)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, date) DO UPDATE SET
			water_intake = EXCLUDED.water_intake,
			updated_at = now()
		RETURNING `+logColumns,
		userID, date, liters,
	)
	if err := scanLog(row, nutritionLog); err != nil {
		return nil, err
	}

	return nutritionLog, nil
}

// LogsBetween returns the logs of the user within [from, to], latest first.
func (r *Repo) LogsBetween(ctx context.Context, userID int, from, to time.Time) (_ []NutritionLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.logs.between")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+logColumns+`
		FROM nutrition_logs
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date DESC
	`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []NutritionLog
	for rows.Next() {
		var l NutritionLog
		if err := scanLog(rows, &l); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}

const mealColumns = `
	id, nutrition_log_id, recipe_id, meal_type, meal_name, calories, protein, carbs, fats, fiber,
	servings, COALESCE(to_char(time, 'HH24:MI'), ''), notes, created_at`

func scanMeal(row pgx.Row, m *MealLog) error {
	return row.Scan(
		&m.ID, &m.NutritionLogID, &m.RecipeID, &m.MealType, &m.MealName, &m.Calories, &m.Protein, &m.Carbs,
		&m.Fats, &m.Fiber, &m.Servings, &m.Time, &m.Notes, &m.CreatedAt,
	)
}

func (r *Repo) ListMeals(ctx context.Context, logID int) (_ []MealLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.meals.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+mealColumns+`
		FROM meal_logs
		WHERE nutrition_log_id = $1
		ORDER BY time NULLS LAST, id
	`, logID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meals []MealLog
	for rows.Next() {
		var m MealLog
		if err := scanMeal(rows, &m); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		meals = append(meals, m)
	}

	return meals, rows.Err()
}

func (r *Repo) AddMeal(ctx context.Context, meal *MealLog) (_ *MealLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.meals.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.db.QueryRow(ctx, `
		INSERT INTO meal_logs
			(nutrition_log_id, recipe_id, meal_type, meal_name, calories, protein, carbs, fats, fiber,
			servings, time, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, '')::time, $12)
		RETURNING id, created_at
	`,
		meal.NutritionLogID, meal.RecipeID, string(meal.MealType), meal.MealName, meal.Calories, meal.Protein,
		meal.Carbs, meal.Fats, meal.Fiber, meal.Servings, meal.Time, meal.Notes,
	).Scan(&meal.ID, &meal.CreatedAt)
	if err != nil {
		return nil, pkg.AsValidationError(err)
	}

	return meal, nil
}

// DeleteMeal removes a meal of the user and returns the id of the log it belonged to.
func (r *Repo) DeleteMeal(ctx context.Context, userID, mealID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.meals.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var logID int
	err = r.db.QueryRow(ctx, `
		DELETE FROM meal_logs m
		USING nutrition_logs n
		WHERE m.id = $1 AND m.nutrition_log_id = n.id AND n.user_id = $2
		RETURNING m.nutrition_log_id
	`, mealID, userID).Scan(&logID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrMealLogNotFound
		}
		return 0, err
	}

	return logID, nil
}
