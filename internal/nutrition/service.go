package nutrition

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=nutrition

const (
	statsWindow    = 30
	maxWaterLiters = 99.9
)

type nutritionRepo interface {
	GetOrCreateLog(ctx context.Context, userID int, date time.Time) (*NutritionLog, error)
	SetWaterIntake(ctx context.Context, userID int, date time.Time, liters float64) (*NutritionLog, error)
	LogsBetween(ctx context.Context, userID int, from, to time.Time) ([]NutritionLog, error)
	ListMeals(ctx context.Context, logID int) ([]MealLog, error)
	AddMeal(ctx context.Context, meal *MealLog) (*MealLog, error)
	DeleteMeal(ctx context.Context, userID, mealID int) (int, error)
	GetRecipe(ctx context.Context, userID, recipeID int) (*Recipe, error)
	CreateRecipe(ctx context.Context, recipe *Recipe) (*Recipe, error)
	ListRecipes(ctx context.Context, userID int, filter RecipeFilter) ([]Recipe, error)
	GetFood(ctx context.Context, foodID int) (*FoodItem, error)
	ListFoods(ctx context.Context, filter FoodFilter) ([]FoodItem, error)
	ListMealPlans(ctx context.Context, userID int, planType PlanType) ([]MealPlan, error)
	GetMealPlan(ctx context.Context, userID, planID int) (*MealPlan, error)
	MealPlanDays(ctx context.Context, planID int) ([]MealPlanDay, error)
	CreateMealPlan(ctx context.Context, plan *MealPlan) (*MealPlan, error)
}

type totalsRecomputer interface {
	Recompute(ctx context.Context, userID, logID int) (*NutritionLog, error)
}

type LogDetails struct {
	Log      *NutritionLog `json:"log"`
	Meals    []MealLog     `json:"meals"`
	LogDate  string        `json:"log_date"`
	PrevDate string        `json:"prev_date"`
	NextDate string        `json:"next_date"`
}

type AddMealResult struct {
	Meal *MealLog      `json:"meal"`
	Log  *NutritionLog `json:"log"`
}

type Averages struct {
	Calories float64 `json:"avg_calories"`
	Protein  float64 `json:"avg_protein"`
	Carbs    float64 `json:"avg_carbs"`
	Fats     float64 `json:"avg_fats"`
	Water    float64 `json:"avg_water"`
}

type Stats struct {
	From       string         `json:"from"`
	To         string         `json:"to"`
	LoggedDays int            `json:"logged_days"`
	Averages   Averages       `json:"averages"`
	Logs       []NutritionLog `json:"logs"`
}

type RecipeDetails struct {
	Recipe       *Recipe  `json:"recipe"`
	Ingredients  []string `json:"ingredients_list"`
	Instructions []string `json:"instructions_list"`
	TotalTime    int      `json:"total_time"`
}

type MealPlanDetails struct {
	Plan *MealPlan     `json:"meal_plan"`
	Days []MealPlanDay `json:"days"`
}

type Service struct {
	repo           nutritionRepo
	aggregator     totalsRecomputer
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(repo nutritionRepo, aggregator totalsRecomputer, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		aggregator:     aggregator,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (s *Service) Today() time.Time {
	return dateOf(s.now())
}

// Log returns the log of the day with its meals, creating an empty log when there is none.
// Totals are served as stored, they are kept up to date on every meal change.
func (s *Service) Log(ctx context.Context, userID int, date time.Time) (_ *LogDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.log")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	date = dateOf(date)
	nutritionLog, err := s.repo.GetOrCreateLog(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("get log: %w", err)
	}

	meals, err := s.repo.ListMeals(ctx, nutritionLog.ID)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	if meals == nil {
		meals = []MealLog{}
	}

	return &LogDetails{
		Log:      nutritionLog,
		Meals:    meals,
		LogDate:  date.Format(pkg.DateLayout),
		PrevDate: date.AddDate(0, 0, -1).Format(pkg.DateLayout),
		NextDate: date.AddDate(0, 0, 1).Format(pkg.DateLayout),
	}, nil
}

// AddMeal logs a meal on the day of the user and recomputes the day totals.
func (s *Service) AddMeal(ctx context.Context, userID int, date time.Time, params AddMealParams) (_ *AddMealResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.addmeal")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := params.Validate(); err != nil {
		return nil, err
	}

	meal := &MealLog{
		MealType: params.MealType,
		Servings: params.servings(),
		Time:     params.Time,
		Notes:    params.Notes,
	}
	source := "manual"
	if params.RecipeID != nil {
		recipe, err := s.repo.GetRecipe(ctx, userID, *params.RecipeID)
		if err != nil {
			return nil, err
		}
		applyRecipe(meal, recipe)
		source = "recipe"
	} else {
		meal.MealName = strings.TrimSpace(params.MealName)
		meal.Calories = *params.Calories
		meal.Protein = *params.Protein
		meal.Carbs = *params.Carbs
		meal.Fats = *params.Fats
		if params.Fiber != nil {
			meal.Fiber = *params.Fiber
		}
	}

	nutritionLog, err := s.repo.GetOrCreateLog(ctx, userID, dateOf(date))
	if err != nil {
		return nil, fmt.Errorf("get log: %w", err)
	}
	meal.NutritionLogID = nutritionLog.ID

	meal, err = s.repo.AddMeal(ctx, meal)
	if err != nil {
		return nil, fmt.Errorf("add meal: %w", err)
	}

	nutritionLog, err = s.aggregator.Recompute(ctx, userID, nutritionLog.ID)
	if err != nil {
		return nil, err
	}

	s.metricsManager.CounterMealsLogged.WithLabelValues(source).Inc()
	span.SetAttributes(attribute.String("meal.source", source))

	return &AddMealResult{
		Meal: meal,
		Log:  nutritionLog,
	}, nil
}

// applyRecipe fills the meal values from the recipe scaled by the meal servings.
// Calories are truncated to whole kcal, macros are rounded to one decimal.
func applyRecipe(meal *MealLog, recipe *Recipe) {
	servings := meal.Servings
	meal.RecipeID = &recipe.ID
	meal.MealName = recipe.Name
	// servings carry one decimal, scale in tenths so 333 x 1.5 gives 499
	meal.Calories = recipe.Calories * int(math.Round(servings*10)) / 10
	meal.Protein = round1(recipe.Protein * servings)
	meal.Carbs = round1(recipe.Carbs * servings)
	meal.Fats = round1(recipe.Fats * servings)
	if recipe.Fiber != nil {
		meal.Fiber = round1(*recipe.Fiber * servings)
	}
}

func (s *Service) DeleteMeal(ctx context.Context, userID, mealID int) (_ *NutritionLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.deletemeal")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	logID, err := s.repo.DeleteMeal(ctx, userID, mealID)
	if err != nil {
		return nil, err
	}
	return s.aggregator.Recompute(ctx, userID, logID)
}

func (s *Service) SetWater(ctx context.Context, userID int, date time.Time, liters float64) (_ *NutritionLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.setwater")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := pkg.NonNegative("water_intake", liters); err != nil {
		return nil, err
	}
	if liters > maxWaterLiters {
		return nil, pkg.NewValidationError("water_intake", fmt.Sprintf("must not exceed %.1f", maxWaterLiters))
	}
	return s.repo.SetWaterIntake(ctx, userID, dateOf(date), liters)
}

// Stats returns the averages over the logs of the last 30 days.
func (s *Service) Stats(ctx context.Context, userID int) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.stats")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	to := s.Today()
	from := to.AddDate(0, 0, -statsWindow)
	logs, err := s.repo.LogsBetween(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("get logs: %w", err)
	}
	if logs == nil {
		logs = []NutritionLog{}
	}

	return &Stats{
		From:       from.Format(pkg.DateLayout),
		To:         to.Format(pkg.DateLayout),
		LoggedDays: len(logs),
		Averages:   ComputeAverages(logs),
		Logs:       logs,
	}, nil
}

// ComputeAverages averages the stored day totals. No logs yield zero averages.
func ComputeAverages(logs []NutritionLog) Averages {
	if len(logs) == 0 {
		return Averages{}
	}
	var sum Averages
	for _, l := range logs {
		sum.Calories += float64(l.Calories)
		sum.Protein += l.Protein
		sum.Carbs += l.Carbs
		sum.Fats += l.Fats
		sum.Water += l.WaterIntake
	}
	n := float64(len(logs))
	return Averages{
		Calories: round1(sum.Calories / n),
		Protein:  round1(sum.Protein / n),
		Carbs:    round1(sum.Carbs / n),
		Fats:     round1(sum.Fats / n),
		Water:    round1(sum.Water / n),
	}
}

func (s *Service) Foods(ctx context.Context, filter FoodFilter) (_ []FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.foods")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if filter.Category != "" {
		if err := pkg.OneOf("category", filter.Category, FoodCategories...); err != nil {
			return nil, err
		}
	}
	return s.repo.ListFoods(ctx, filter)
}

func (s *Service) Food(ctx context.Context, foodID int) (_ *FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.food")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return s.repo.GetFood(ctx, foodID)
}

func (s *Service) Recipes(ctx context.Context, userID int, filter RecipeFilter) (_ []Recipe, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.recipes")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if filter.MealType != "" {
		if err := pkg.OneOf("meal_type", filter.MealType, RecipeMealTypes...); err != nil {
			return nil, err
		}
	}
	return s.repo.ListRecipes(ctx, userID, filter)
}

func (s *Service) Recipe(ctx context.Context, userID, recipeID int) (_ *RecipeDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.recipe")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	recipe, err := s.repo.GetRecipe(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}

	return &RecipeDetails{
		Recipe:       recipe,
		Ingredients:  splitLines(recipe.Ingredients),
		Instructions: splitLines(recipe.Instructions),
		TotalTime:    recipe.TotalTime(),
	}, nil
}

// splitLines returns the non-blank lines of text, trimmed.
func splitLines(text string) []string {
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// CreateRecipe stores a recipe owned by the user.
func (s *Service) CreateRecipe(ctx context.Context, userID int, params CreateRecipeParams) (_ *Recipe, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.createrecipe")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := params.Validate(); err != nil {
		return nil, err
	}

	recipe := &Recipe{
		CreatorID:    &userID,
		Name:         strings.TrimSpace(params.Name),
		Description:  params.Description,
		MealType:     params.MealType,
		Difficulty:   params.difficulty(),
		Calories:     *params.Calories,
		Protein:      pkg.RoundNumeric(*params.Protein, numericScale),
		Carbs:        pkg.RoundNumeric(*params.Carbs, numericScale),
		Fats:         pkg.RoundNumeric(*params.Fats, numericScale),
		Servings:     params.servings(),
		PrepTime:     *params.PrepTime,
		CookTime:     *params.CookTime,
		Ingredients:  params.Ingredients,
		Instructions: params.Instructions,
		IsVegetarian: params.IsVegetarian,
		IsVegan:      params.IsVegan,
		IsGlutenFree: params.IsGlutenFree,
		IsDairyFree:  params.IsDairyFree,
		IsPublic:     params.isPublic(),
	}
	if params.Fiber != nil {
		fiber := pkg.RoundNumeric(*params.Fiber, numericScale)
		recipe.Fiber = &fiber
	}

	recipe, err = s.repo.CreateRecipe(ctx, recipe)
	if err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	span.SetAttributes(attribute.Int("recipe.id", recipe.ID))
	return recipe, nil
}

func (s *Service) MealPlans(ctx context.Context, userID int, planType PlanType) (_ []MealPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.mealplans")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if planType != "" {
		if err := pkg.OneOf("plan_type", planType, PlanTypes...); err != nil {
			return nil, err
		}
	}
	return s.repo.ListMealPlans(ctx, userID, planType)
}

func (s *Service) MealPlan(ctx context.Context, userID, planID int) (_ *MealPlanDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.mealplan")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	plan, err := s.repo.GetMealPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	days, err := s.repo.MealPlanDays(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("get meal plan days: %w", err)
	}
	if days == nil {
		days = []MealPlanDay{}
	}

	return &MealPlanDetails{
		Plan: plan,
		Days: days,
	}, nil
}

func (s *Service) CreateMealPlan(ctx context.Context, userID int, params CreateMealPlanParams) (_ *MealPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.createmealplan")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return s.repo.CreateMealPlan(ctx, &MealPlan{
		CreatorID:     &userID,
		Name:          strings.TrimSpace(params.Name),
		Description:   params.Description,
		PlanType:      params.PlanType,
		DurationDays:  params.durationDays(),
		DailyCalories: params.DailyCalories,
		DailyProtein:  params.DailyProtein,
		DailyCarbs:    params.DailyCarbs,
		DailyFats:     params.DailyFats,
		IsPublic:      params.IsPublic,
	})
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
