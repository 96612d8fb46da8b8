package nutrition

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
)

const recipeColumns = `
	id, creator_id, name, description, meal_type, difficulty, calories, protein, carbs, fats, fiber,
	servings, prep_time, cook_time, ingredients, instructions, is_vegetarian, is_vegan, is_gluten_free,
	is_dairy_free, is_public, created_at`

func scanRecipe(row pgx.Row, r *Recipe) error {
	return row.Scan(
		&r.ID, &r.CreatorID, &r.Name, &r.Description, &r.MealType, &r.Difficulty, &r.Calories, &r.Protein,
		&r.Carbs, &r.Fats, &r.Fiber, &r.Servings, &r.PrepTime, &r.CookTime, &r.Ingredients, &r.Instructions,
		&r.IsVegetarian, &r.IsVegan, &r.IsGlutenFree, &r.IsDairyFree, &r.IsPublic, &r.CreatedAt,
	)
}

// GetRecipe returns the recipe if it is public or created by the user.
func (r *Repo) GetRecipe(ctx context.Context, userID, recipeID int) (_ *Recipe, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.recipes.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	recipe := &Recipe{}
	row := r.db.QueryRow(ctx, `
		SELECT `+recipeColumns+`
		FROM recipes
		WHERE id = $1 AND (is_public OR creator_id = $2)
	`, recipeID, userID)
	if err := scanRecipe(row, recipe); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (r *Repo) CreateRecipe(ctx context.Context, recipe *Recipe) (_ *Recipe, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.recipes.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.db.QueryRow(ctx, `
		INSERT INTO recipes
			(creator_id, name, description, meal_type, difficulty, calories, protein, carbs, fats, fiber,
			servings, prep_time, cook_time, ingredients, instructions, is_vegetarian, is_vegan,
			is_gluten_free, is_dairy_free, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id, created_at
	`,
		recipe.CreatorID, recipe.Name, recipe.Description, string(recipe.MealType), recipe.Difficulty,
		recipe.Calories, recipe.Protein, recipe.Carbs, recipe.Fats, recipe.Fiber, recipe.Servings,
		recipe.PrepTime, recipe.CookTime, recipe.Ingredients, recipe.Instructions, recipe.IsVegetarian,
		recipe.IsVegan, recipe.IsGlutenFree, recipe.IsDairyFree, recipe.IsPublic,
	).Scan(&recipe.ID, &recipe.CreatedAt)
	if err != nil {
		return nil, pkg.AsValidationError(err)
	}

	return recipe, nil
}

func (r *Repo) ListRecipes(ctx context.Context, userID int, filter RecipeFilter) (_ []Recipe, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.recipes.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+recipeColumns+`
		FROM recipes
		WHERE (is_public OR creator_id = $1)
			AND ($2 = '' OR meal_type = $2)
			AND (NOT $3 OR is_vegetarian)
			AND (NOT $4 OR is_vegan)
			AND (NOT $5 OR is_gluten_free)
		ORDER BY created_at DESC, id DESC
	`, userID, string(filter.MealType), filter.Vegetarian, filter.Vegan, filter.GlutenFree)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []Recipe
	for rows.Next() {
		var recipe Recipe
		if err := scanRecipe(rows, &recipe); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		recipes = append(recipes, recipe)
	}

	return recipes, rows.Err()
}

const foodColumns = `
	id, name, category, brand, serving_size, calories, protein, carbs, fats, fiber, is_vegetarian, is_vegan`

func scanFood(row pgx.Row, f *FoodItem) error {
	return row.Scan(
		&f.ID, &f.Name, &f.Category, &f.Brand, &f.ServingSize, &f.Calories, &f.Protein, &f.Carbs,
		&f.Fats, &f.Fiber, &f.IsVegetarian, &f.IsVegan,
	)
}

func (r *Repo) GetFood(ctx context.Context, foodID int) (_ *FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.foods.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	item := &FoodItem{}
	row := r.db.QueryRow(ctx, `SELECT `+foodColumns+` FROM food_items WHERE id = $1`, foodID)
	if err := scanFood(row, item); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFoodItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *Repo) ListFoods(ctx context.Context, filter FoodFilter) (_ []FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.foods.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+foodColumns+`
		FROM food_items
		WHERE ($1 = '' OR category = $1)
			AND ($2 = '' OR name ILIKE '%' || $2 || '%')
		ORDER BY name, id
	`, string(filter.Category), filter.Search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []FoodItem
	for rows.Next() {
		var f FoodItem
		if err := scanFood(rows, &f); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		items = append(items, f)
	}

	return items, rows.Err()
}
