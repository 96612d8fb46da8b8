package nutrition

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
)

const planColumns = `
	id, creator_id, name, description, plan_type, duration_days, daily_calories, daily_protein,
	daily_carbs, daily_fats, is_public, created_at`

func scanPlan(row pgx.Row, p *MealPlan) error {
	return row.Scan(
		&p.ID, &p.CreatorID, &p.Name, &p.Description, &p.PlanType, &p.DurationDays, &p.DailyCalories,
		&p.DailyProtein, &p.DailyCarbs, &p.DailyFats, &p.IsPublic, &p.CreatedAt,
	)
}

func (r *Repo) ListMealPlans(ctx context.Context, userID int, planType PlanType) (_ []MealPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.plans.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+planColumns+`
		FROM meal_plans
		WHERE (is_public OR creator_id = $1) AND ($2 = '' OR plan_type = $2)
		ORDER BY created_at DESC, id DESC
	`, userID, string(planType))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []MealPlan
	for rows.Next() {
		var p MealPlan
		if err := scanPlan(rows, &p); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		plans = append(plans, p)
	}

	return plans, rows.Err()
}

func (r *Repo) GetMealPlan(ctx context.Context, userID, planID int) (_ *MealPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.plans.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	plan := &MealPlan{}
	row := r.db.QueryRow(ctx, `
		SELECT `+planColumns+`
		FROM meal_plans
		WHERE id = $1 AND (is_public OR creator_id = $2)
	`, planID, userID)
	if err := scanPlan(row, plan); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMealPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// MealPlanDays returns the days of the plan in order, each with its recipes.
func (r *Repo) MealPlanDays(ctx context.Context, planID int) (_ []MealPlanDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.plans.days")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT
			d.id, d.day_number, d.notes,
			mpr.id, mpr.recipe_id, rc.name, rc.calories, mpr.meal_time, mpr.servings, mpr.notes
		FROM meal_plan_days d
		LEFT JOIN meal_plan_recipes mpr ON mpr.meal_plan_day_id = d.id
		LEFT JOIN recipes rc ON rc.id = mpr.recipe_id
		WHERE d.meal_plan_id = $1
		ORDER BY d.day_number, mpr.meal_time, mpr.id
	`, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []MealPlanDay
	for rows.Next() {
		var (
			day        MealPlanDay
			entryID    *int
			recipeID   *int
			recipeName *string
			calories   *int
			mealTime   *string
			servings   *float64
			notes      *string
		)
		if err := rows.Scan(
			&day.ID, &day.DayNumber, &day.Notes,
			&entryID, &recipeID, &recipeName, &calories, &mealTime, &servings, &notes,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		if len(days) == 0 || days[len(days)-1].ID != day.ID {
			day.Recipes = []MealPlanRecipe{}
			days = append(days, day)
		}
		if entryID == nil {
			continue
		}
		current := &days[len(days)-1]
		current.Recipes = append(current.Recipes, MealPlanRecipe{
			ID:         *entryID,
			RecipeID:   *recipeID,
			RecipeName: *recipeName,
			Calories:   *calories,
			MealTime:   MealType(*mealTime),
			Servings:   *servings,
			Notes:      *notes,
		})
	}

	return days, rows.Err()
}

// CreateMealPlan stores the plan together with its empty days 1..duration in one transaction.
func (r *Repo) CreateMealPlan(ctx context.Context, plan *MealPlan) (_ *MealPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.plans.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
		INSERT INTO meal_plans
			(creator_id, name, description, plan_type, duration_days, daily_calories, daily_protein,
			daily_carbs, daily_fats, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`,
		plan.CreatorID, plan.Name, plan.Description, string(plan.PlanType), plan.DurationDays, plan.DailyCalories,
		plan.DailyProtein, plan.DailyCarbs, plan.DailyFats, plan.IsPublic,
	).Scan(&plan.ID, &plan.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert meal plan: %w", pkg.AsValidationError(err))
	}

	if _, err = tx.Exec(ctx, `
		INSERT INTO meal_plan_days (meal_plan_id, day_number)
		SELECT $1, generate_series(1, $2::int)
	`, plan.ID, plan.DurationDays); err != nil {
		return nil, fmt.Errorf("insert meal plan days: %w", err)
	}

	return plan, nil
}
