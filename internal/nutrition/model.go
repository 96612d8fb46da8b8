package nutrition

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/2beens/fittrack/pkg"
)

var (
	ErrNutritionLogNotFound = errors.New("nutrition log not found")
	ErrMealLogNotFound      = errors.New("meal log not found")
	ErrRecipeNotFound       = errors.New("recipe not found")
	ErrMealPlanNotFound     = errors.New("meal plan not found")
	ErrFoodItemNotFound     = errors.New("food item not found")
)

// precision and scale of the NUMERIC columns meals, recipes and plans are stored in
const (
	macroPrecision    = 6
	fiberPrecision    = 5
	servingsPrecision = 4
	numericScale      = 1

	maxRecipeNameLength = 200
)

type MealType string
type PlanType string
type FoodCategory string

var (
	// LogMealTypes are the slots a logged meal or a meal plan recipe can take.
	LogMealTypes = []MealType{
		"breakfast", "morning_snack", "lunch", "afternoon_snack", "dinner", "evening_snack",
	}
	RecipeMealTypes = []MealType{
		"breakfast", "lunch", "dinner", "snack", "post_workout", "pre_workout",
	}
	PlanTypes = []PlanType{
		"weight_loss", "weight_gain", "muscle_gain", "maintenance", "keto", "low_carb", "high_protein", "balanced",
	}
	FoodCategories = []FoodCategory{
		"fruit", "vegetable", "protein", "grain", "dairy", "snack", "beverage", "other",
	}
)

// Totals are the per-day sums derived from the meal logs of a nutrition log.
type Totals struct {
	Calories int     `json:"total_calories"`
	Protein  float64 `json:"total_protein"`
	Carbs    float64 `json:"total_carbs"`
	Fats     float64 `json:"total_fats"`
	Fiber    float64 `json:"total_fiber"`
}

type NutritionLog struct {
	ID     int       `json:"id"`
	UserID int       `json:"user_id"`
	Date   time.Time `json:"date"`
	Totals
	WaterIntake float64   `json:"water_intake"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MealLog struct {
	ID             int      `json:"id"`
	NutritionLogID int      `json:"nutrition_log_id"`
	RecipeID       *int     `json:"recipe_id,omitempty"`
	MealType       MealType `json:"meal_type"`
	MealName       string   `json:"meal_name"`
	Calories       int      `json:"calories"`
	Protein        float64  `json:"protein"`
	Carbs          float64  `json:"carbs"`
	Fats           float64  `json:"fats"`
	Fiber          float64  `json:"fiber"`
	Servings       float64  `json:"servings"`
	// Time is HH:MM, empty when not given.
	Time      string    `json:"time,omitempty"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// AddMealParams describes either a recipe-derived meal (RecipeID set) or a manual entry.
type AddMealParams struct {
	RecipeID *int     `json:"recipe_id"`
	MealType MealType `json:"meal_type"`
	Servings *float64 `json:"servings"`
	Time     string   `json:"time"`
	Notes    string   `json:"notes"`

	// manual entry only
	MealName string   `json:"meal_name"`
	Calories *int     `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fats     *float64 `json:"fats"`
	Fiber    *float64 `json:"fiber"`
}

// servings returns the servings as the meal_logs column stores them.
func (p AddMealParams) servings() float64 {
	if p.Servings == nil {
		return 1
	}
	return pkg.RoundNumeric(*p.Servings, numericScale)
}

func (p AddMealParams) Validate() error {
	if err := pkg.OneOf("meal_type", p.MealType, LogMealTypes...); err != nil {
		return err
	}
	if p.Servings != nil {
		if err := pkg.NonNegativeNumeric("servings", *p.Servings, servingsPrecision, numericScale); err != nil {
			return err
		}
	}
	if p.servings() <= 0 {
		return pkg.NewValidationError("servings", "must be positive")
	}
	if p.Time != "" {
		if _, err := time.Parse("15:04", p.Time); err != nil {
			return pkg.NewValidationError("time", "expected HH:MM")
		}
	}
	if p.RecipeID != nil {
		if *p.RecipeID <= 0 {
			return pkg.NewValidationError("recipe_id", "expected a positive integer")
		}
		return nil
	}

	if err := pkg.NotBlank("meal_name", p.MealName); err != nil {
		return err
	}
	if p.Calories == nil {
		return pkg.NewValidationError("calories", "required")
	}
	macros := []struct {
		field string
		value *float64
	}{{"protein", p.Protein}, {"carbs", p.Carbs}, {"fats", p.Fats}}
	for _, m := range macros {
		if m.value == nil {
			return pkg.NewValidationError(m.field, "required")
		}
	}
	if err := pkg.NonNegativeIntPtr("calories", p.Calories); err != nil {
		return err
	}
	for _, m := range macros {
		if err := pkg.NonNegativeNumericPtr(m.field, m.value, macroPrecision, numericScale); err != nil {
			return err
		}
	}
	return pkg.NonNegativeNumericPtr("fiber", p.Fiber, fiberPrecision, numericScale)
}

type Recipe struct {
	ID           int       `json:"id"`
	CreatorID    *int      `json:"creator_id,omitempty"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	MealType     MealType  `json:"meal_type"`
	Difficulty   string    `json:"difficulty"`
	Calories     int       `json:"calories"`
	Protein      float64   `json:"protein"`
	Carbs        float64   `json:"carbs"`
	Fats         float64   `json:"fats"`
	Fiber        *float64  `json:"fiber,omitempty"`
	Servings     int       `json:"servings"`
	PrepTime     int       `json:"prep_time"`
	CookTime     int       `json:"cook_time"`
	Ingredients  string    `json:"ingredients"`
	Instructions string    `json:"instructions"`
	IsVegetarian bool      `json:"is_vegetarian"`
	IsVegan      bool      `json:"is_vegan"`
	IsGlutenFree bool      `json:"is_gluten_free"`
	IsDairyFree  bool      `json:"is_dairy_free"`
	IsPublic     bool      `json:"is_public"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

var RecipeDifficulties = []string{"easy", "medium", "hard"}

type CreateRecipeParams struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	MealType     MealType `json:"meal_type"`
	Difficulty   string   `json:"difficulty"`
	Calories     *int     `json:"calories"`
	Protein      *float64 `json:"protein"`
	Carbs        *float64 `json:"carbs"`
	Fats         *float64 `json:"fats"`
	Fiber        *float64 `json:"fiber"`
	Servings     *int     `json:"servings"`
	PrepTime     *int     `json:"prep_time"`
	CookTime     *int     `json:"cook_time"`
	Ingredients  string   `json:"ingredients"`
	Instructions string   `json:"instructions"`
	IsVegetarian bool     `json:"is_vegetarian"`
	IsVegan      bool     `json:"is_vegan"`
	IsGlutenFree bool     `json:"is_gluten_free"`
	IsDairyFree  bool     `json:"is_dairy_free"`
	IsPublic     *bool    `json:"is_public"`
}

func (p CreateRecipeParams) difficulty() string {
	if p.Difficulty == "" {
		return "easy"
	}
	return p.Difficulty
}

func (p CreateRecipeParams) servings() int {
	if p.Servings == nil {
		return 1
	}
	return *p.Servings
}

func (p CreateRecipeParams) isPublic() bool {
	return p.IsPublic == nil || *p.IsPublic
}

func (p CreateRecipeParams) Validate() error {
	if err := pkg.NotBlank("name", p.Name); err != nil {
		return err
	}
	if len(strings.TrimSpace(p.Name)) > maxRecipeNameLength {
		return pkg.NewValidationError("name", fmt.Sprintf("must not exceed %d characters", maxRecipeNameLength))
	}
	if err := pkg.OneOf("meal_type", p.MealType, RecipeMealTypes...); err != nil {
		return err
	}
	if err := pkg.OneOf("difficulty", p.difficulty(), RecipeDifficulties...); err != nil {
		return err
	}

	required := []struct {
		field string
		set   bool
	}{
		{"calories", p.Calories != nil},
		{"protein", p.Protein != nil},
		{"carbs", p.Carbs != nil},
		{"fats", p.Fats != nil},
		{"prep_time", p.PrepTime != nil},
		{"cook_time", p.CookTime != nil},
	}
	for _, r := range required {
		if !r.set {
			return pkg.NewValidationError(r.field, "required")
		}
	}

	if err := pkg.NonNegativeIntPtr("calories", p.Calories); err != nil {
		return err
	}
	macros := []struct {
		field string
		value *float64
	}{{"protein", p.Protein}, {"carbs", p.Carbs}, {"fats", p.Fats}}
	for _, m := range macros {
		if err := pkg.NonNegativeNumericPtr(m.field, m.value, macroPrecision, numericScale); err != nil {
			return err
		}
	}
	if err := pkg.NonNegativeNumericPtr("fiber", p.Fiber, fiberPrecision, numericScale); err != nil {
		return err
	}
	if err := pkg.IntInRange("servings", p.servings(), 1, math.MaxInt32); err != nil {
		return err
	}
	if err := pkg.NonNegativeIntPtr("prep_time", p.PrepTime); err != nil {
		return err
	}
	return pkg.NonNegativeIntPtr("cook_time", p.CookTime)
}

type RecipeFilter struct {
	MealType   MealType
	Vegetarian bool
	Vegan      bool
	GlutenFree bool
}

type FoodItem struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Category     FoodCategory `json:"category"`
	Brand        string       `json:"brand"`
	ServingSize  string       `json:"serving_size"`
	Calories     int          `json:"calories"`
	Protein      float64      `json:"protein"`
	Carbs        float64      `json:"carbs"`
	Fats         float64      `json:"fats"`
	Fiber        *float64     `json:"fiber,omitempty"`
	IsVegetarian bool         `json:"is_vegetarian"`
	IsVegan      bool         `json:"is_vegan"`
}

type FoodFilter struct {
	Category FoodCategory
	Search   string
}

type MealPlan struct {
	ID            int       `json:"id"`
	CreatorID     *int      `json:"creator_id,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PlanType      PlanType  `json:"plan_type"`
	DurationDays  int       `json:"duration_days"`
	DailyCalories int       `json:"daily_calories"`
	DailyProtein  float64   `json:"daily_protein"`
	DailyCarbs    float64   `json:"daily_carbs"`
	DailyFats     float64   `json:"daily_fats"`
	IsPublic      bool      `json:"is_public"`
	CreatedAt     time.Time `json:"created_at"`
}

type MealPlanDay struct {
	ID        int              `json:"id"`
	DayNumber int              `json:"day_number"`
	Notes     string           `json:"notes"`
	Recipes   []MealPlanRecipe `json:"recipes"`
}

type MealPlanRecipe struct {
	ID         int      `json:"id"`
	RecipeID   int      `json:"recipe_id"`
	RecipeName string   `json:"recipe_name"`
	Calories   int      `json:"calories"`
	MealTime   MealType `json:"meal_time"`
	Servings   float64  `json:"servings"`
	Notes      string   `json:"notes"`
}

type CreateMealPlanParams struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PlanType      PlanType `json:"plan_type"`
	DurationDays  *int     `json:"duration_days"`
	DailyCalories int      `json:"daily_calories"`
	DailyProtein  float64  `json:"daily_protein"`
	DailyCarbs    float64  `json:"daily_carbs"`
	DailyFats     float64  `json:"daily_fats"`
	IsPublic      bool     `json:"is_public"`
}

func (p CreateMealPlanParams) durationDays() int {
	if p.DurationDays == nil {
		return 7
	}
	return *p.DurationDays
}

func (p CreateMealPlanParams) Validate() error {
	if err := pkg.NotBlank("name", p.Name); err != nil {
		return err
	}
	if err := pkg.OneOf("plan_type", p.PlanType, PlanTypes...); err != nil {
		return err
	}
	if err := pkg.IntInRange("duration_days", p.durationDays(), 1, 366); err != nil {
		return err
	}
	if err := pkg.NonNegativeInt("daily_calories", p.DailyCalories); err != nil {
		return err
	}
	if err := pkg.NonNegativeNumeric("daily_protein", p.DailyProtein, macroPrecision, numericScale); err != nil {
		return err
	}
	if err := pkg.NonNegativeNumeric("daily_carbs", p.DailyCarbs, macroPrecision, numericScale); err != nil {
		return err
	}
	return pkg.NonNegativeNumeric("daily_fats", p.DailyFats, macroPrecision, numericScale)
}
