package nutrition

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition

type nutritionService interface {
	Today() time.Time
	Log(ctx context.Context, userID int, date time.Time) (*LogDetails, error)
	AddMeal(ctx context.Context, userID int, date time.Time, params AddMealParams) (*AddMealResult, error)
	DeleteMeal(ctx context.Context, userID, mealID int) (*NutritionLog, error)
	SetWater(ctx context.Context, userID int, date time.Time, liters float64) (*NutritionLog, error)
	Stats(ctx context.Context, userID int) (*Stats, error)
	Foods(ctx context.Context, filter FoodFilter) ([]FoodItem, error)
	Food(ctx context.Context, foodID int) (*FoodItem, error)
	Recipes(ctx context.Context, userID int, filter RecipeFilter) ([]Recipe, error)
	Recipe(ctx context.Context, userID, recipeID int) (*RecipeDetails, error)
	CreateRecipe(ctx context.Context, userID int, params CreateRecipeParams) (*Recipe, error)
	MealPlans(ctx context.Context, userID int, planType PlanType) ([]MealPlan, error)
	MealPlan(ctx context.Context, userID, planID int) (*MealPlanDetails, error)
	CreateMealPlan(ctx context.Context, userID int, params CreateMealPlanParams) (*MealPlan, error)
}

type LogResponse struct {
	Title string `json:"title"`
	LogDetails
}

type AddMealResponse struct {
	Title string `json:"title"`
	AddMealResult
}

type NutritionLogResponse struct {
	Title string        `json:"title"`
	Log   *NutritionLog `json:"log"`
}

type StatsResponse struct {
	Title string `json:"title"`
	Stats
}

type FoodsResponse struct {
	Title     string     `json:"title"`
	FoodItems []FoodItem `json:"food_items"`
}

type FoodResponse struct {
	Title    string    `json:"title"`
	FoodItem *FoodItem `json:"food_item"`
}

type RecipesResponse struct {
	Title string   `json:"title"`
	Meals []Recipe `json:"meals"`
}

type RecipeResponse struct {
	Title string `json:"title"`
	RecipeDetails
}

type MealPlansResponse struct {
	Title     string     `json:"title"`
	MealPlans []MealPlan `json:"meal_plans"`
}

type MealPlanResponse struct {
	Title string `json:"title"`
	MealPlanDetails
}

type WaterRequest struct {
	WaterIntake *float64 `json:"water_intake"`
}

type Handler struct {
	service nutritionService
}

func NewHandler(service nutritionService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/nutrition/log", h.HandleTodayLog).Methods("GET", "OPTIONS").Name("nutrition-log-today")
	r.HandleFunc("/nutrition/log/{date}", h.HandleLog).Methods("GET", "OPTIONS").Name("nutrition-log")
	r.HandleFunc("/nutrition/log/{date}/meals", h.HandleAddMeal).Methods("POST", "OPTIONS").Name("add-meal")
	r.HandleFunc("/nutrition/log/{date}/water", h.HandleSetWater).Methods("PUT", "OPTIONS").Name("set-water")
	r.HandleFunc("/nutrition/meals/{id}", h.HandleDeleteMeal).Methods("DELETE", "OPTIONS").Name("delete-meal")
	r.HandleFunc("/nutrition/stats", h.HandleStats).Methods("GET", "OPTIONS").Name("nutrition-stats")
	r.HandleFunc("/nutrition/foods", h.HandleFoods).Methods("GET", "OPTIONS").Name("foods")
	r.HandleFunc("/nutrition/foods/{id}", h.HandleFood).Methods("GET", "OPTIONS").Name("food")
	r.HandleFunc("/nutrition/recipes", h.HandleRecipes).Methods("GET", "OPTIONS").Name("recipes")
	r.HandleFunc("/nutrition/recipes", h.HandleCreateRecipe).Methods("POST").Name("create-recipe")
	r.HandleFunc("/nutrition/recipes/{id}", h.HandleRecipe).Methods("GET", "OPTIONS").Name("recipe")
	r.HandleFunc("/nutrition/plans", h.HandleMealPlans).Methods("GET", "OPTIONS").Name("meal-plans")
	r.HandleFunc("/nutrition/plans", h.HandleCreateMealPlan).Methods("POST").Name("create-meal-plan")
	r.HandleFunc("/nutrition/plans/{id}", h.HandleMealPlan).Methods("GET", "OPTIONS").Name("meal-plan")
}

func (h *Handler) HandleTodayLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.todaylog")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}
	h.writeLog(ctx, w, userID, h.service.Today())
}

func (h *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.log")
	defer span.End()

	userID, date, ok := userAndPathDate(w, r)
	if !ok {
		return
	}
	h.writeLog(ctx, w, userID, date)
}

func (h *Handler) writeLog(ctx context.Context, w http.ResponseWriter, userID int, date time.Time) {
	details, err := h.service.Log(ctx, userID, date)
	if err != nil {
		writeError(w, err, "failed to get nutrition log")
		return
	}

	pkg.WriteJSONResponseOK(w, LogResponse{
		Title:      "Nutrition Log - " + details.LogDate,
		LogDetails: *details,
	})
}

func (h *Handler) HandleAddMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.addmeal")
	defer span.End()

	userID, date, ok := userAndPathDate(w, r)
	if !ok {
		return
	}

	var params AddMealParams
	if err := pkg.DecodeJSONBody(r, &params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.AddMeal(ctx, userID, date, params)
	if err != nil {
		writeError(w, err, "failed to add meal")
		return
	}

	pkg.WriteJSONResponse(w, AddMealResponse{
		Title:         "Meal logged successfully!",
		AddMealResult: *result,
	}, http.StatusCreated)
}

func (h *Handler) HandleDeleteMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.deletemeal")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}
	mealID, err := pkg.ParseID("id", mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	nutritionLog, err := h.service.DeleteMeal(ctx, userID, mealID)
	if err != nil {
		writeError(w, err, "failed to delete meal")
		return
	}

	pkg.WriteJSONResponseOK(w, NutritionLogResponse{
		Title: "Meal deleted!",
		Log:   nutritionLog,
	})
}

func (h *Handler) HandleSetWater(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.setwater")
	defer span.End()

	userID, date, ok := userAndPathDate(w, r)
	if !ok {
		return
	}

	var req WaterRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.WaterIntake == nil {
		http.Error(w, pkg.NewValidationError("water_intake", "required").Error(), http.StatusBadRequest)
		return
	}

	nutritionLog, err := h.service.SetWater(ctx, userID, date, *req.WaterIntake)
	if err != nil {
		writeError(w, err, "failed to update water intake")
		return
	}

	pkg.WriteJSONResponseOK(w, NutritionLogResponse{
		Title: "Water intake updated!",
		Log:   nutritionLog,
	})
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.stats")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	stats, err := h.service.Stats(ctx, userID)
	if err != nil {
		writeError(w, err, "failed to get nutrition stats")
		return
	}

	pkg.WriteJSONResponseOK(w, StatsResponse{
		Title: "Nutrition Statistics",
		Stats: *stats,
	})
}

func (h *Handler) HandleFoods(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.foods")
	defer span.End()

	query := r.URL.Query()
	items, err := h.service.Foods(ctx, FoodFilter{
		Category: FoodCategory(query.Get("category")),
		Search:   query.Get("search"),
	})
	if err != nil {
		writeError(w, err, "failed to get food items")
		return
	}

	pkg.WriteJSONResponseOK(w, FoodsResponse{
		Title:     "Food Database",
		FoodItems: items,
	})
}

func (h *Handler) HandleFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.food")
	defer span.End()

	foodID, err := pkg.ParseID("id", mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.service.Food(ctx, foodID)
	if err != nil {
		writeError(w, err, "failed to get food item")
		return
	}

	pkg.WriteJSONResponseOK(w, FoodResponse{
		Title:    item.Name,
		FoodItem: item,
	})
}

func (h *Handler) HandleRecipes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.recipes")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	recipes, err := h.service.Recipes(ctx, userID, RecipeFilter{
		MealType:   MealType(query.Get("meal_type")),
		Vegetarian: flagSet(query.Get("vegetarian")),
		Vegan:      flagSet(query.Get("vegan")),
		GlutenFree: flagSet(query.Get("gluten_free")),
	})
	if err != nil {
		writeError(w, err, "failed to get recipes")
		return
	}

	pkg.WriteJSONResponseOK(w, RecipesResponse{
		Title: "Meals",
		Meals: recipes,
	})
}

func (h *Handler) HandleRecipe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.recipe")
	defer span.End()

	userID, recipeID, ok := userAndPathID(w, r)
	if !ok {
		return
	}

	details, err := h.service.Recipe(ctx, userID, recipeID)
	if err != nil {
		writeError(w, err, "failed to get recipe")
		return
	}

	pkg.WriteJSONResponseOK(w, RecipeResponse{
		Title:         details.Recipe.Name,
		RecipeDetails: *details,
	})
}

func (h *Handler) HandleMealPlans(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.mealplans")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	plans, err := h.service.MealPlans(ctx, userID, PlanType(r.URL.Query().Get("plan_type")))
	if err != nil {
		writeError(w, err, "failed to get meal plans")
		return
	}

	pkg.WriteJSONResponseOK(w, MealPlansResponse{
		Title:     "Meal Plans",
		MealPlans: plans,
	})
}

func (h *Handler) HandleMealPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.mealplan")
	defer span.End()

	userID, planID, ok := userAndPathID(w, r)
	if !ok {
		return
	}

	details, err := h.service.MealPlan(ctx, userID, planID)
	if err != nil {
		writeError(w, err, "failed to get meal plan")
		return
	}

	pkg.WriteJSONResponseOK(w, MealPlanResponse{
		Title:           details.Plan.Name,
		MealPlanDetails: *details,
	})
}

func (h *Handler) HandleCreateMealPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.createmealplan")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	var params CreateMealPlanParams
	if err := pkg.DecodeJSONBody(r, &params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan, err := h.service.CreateMealPlan(ctx, userID, params)
	if err != nil {
		writeError(w, err, "failed to create meal plan")
		return
	}

	pkg.WriteJSONResponse(w, MealPlanResponse{
		Title: fmt.Sprintf("Meal plan %q created!", plan.Name),
		MealPlanDetails: MealPlanDetails{
			Plan: plan,
			Days: []MealPlanDay{},
		},
	}, http.StatusCreated)
}

func (h *Handler) HandleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.createrecipe")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	var params CreateRecipeParams
	if err := pkg.DecodeJSONBody(r, &params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	recipe, err := h.service.CreateRecipe(ctx, userID, params)
	if err != nil {
		writeError(w, err, "failed to create recipe")
		return
	}

	pkg.WriteJSONResponse(w, RecipeResponse{
		Title: "Recipe created successfully!",
		RecipeDetails: RecipeDetails{
			Recipe:       recipe,
			Ingredients:  splitLines(recipe.Ingredients),
			Instructions: splitLines(recipe.Instructions),
			TotalTime:    recipe.TotalTime(),
		},
	}, http.StatusCreated)
}

// flagSet accepts the checkbox style "on" as well as "true" and "1".
func flagSet(value string) bool {
	switch value {
	case "on", "true", "1":
		return true
	}
	return false
}

func userFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
	}
	return userID, ok
}

func userAndPathID(w http.ResponseWriter, r *http.Request) (userID, id int, ok bool) {
	if userID, ok = userFromRequest(w, r); !ok {
		return 0, 0, false
	}
	id, err := pkg.ParseID("id", mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, 0, false
	}
	return userID, id, true
}

func userAndPathDate(w http.ResponseWriter, r *http.Request) (userID int, date time.Time, ok bool) {
	if userID, ok = userFromRequest(w, r); !ok {
		return 0, time.Time{}, false
	}
	date, err := pkg.ParseDate("date", mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, time.Time{}, false
	}
	return userID, date, true
}

func writeError(w http.ResponseWriter, err error, msg string) {
	switch {
	case pkg.IsValidationError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNutritionLogNotFound),
		errors.Is(err, ErrMealLogNotFound),
		errors.Is(err, ErrRecipeNotFound),
		errors.Is(err, ErrMealPlanNotFound),
		errors.Is(err, ErrFoodItemNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Errorf("%s: %s", msg, err)
		http.Error(w, msg, http.StatusInternalServerError)
	}
}
