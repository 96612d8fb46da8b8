//go:build integration_test || all_tests

package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// call sends body as JSON (when not nil) and decodes a JSON response into a map.
// Plain text error responses come back under the "error" key.
func (s *IntegrationTestSuite) call(method, path, token string, body any) (int, map[string]any) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, testServerEndpoint+path, reqBody)
	s.Require().NoError(err)
	req.Header.Set("User-Agent", "fittrack-integration-test")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	decoded := map[string]any{}
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		s.Require().NoError(json.Unmarshal(respBytes, &decoded), string(respBytes))
	} else {
		decoded["error"] = strings.TrimSpace(string(respBytes))
	}
	return resp.StatusCode, decoded
}

// newUser registers a random user and logs in, returning the session token.
func (s *IntegrationTestSuite) newUser() string {
	username := strings.ReplaceAll(gofakeit.Username(), " ", "") + gofakeit.DigitN(4)
	password := gofakeit.Password(true, true, true, false, false, 14)

	status, resp := s.call(http.MethodPost, "/a/register", "", map[string]string{
		"username": username,
		"email":    gofakeit.Email(),
		"password": password,
	})
	s.Require().Equal(http.StatusCreated, status, resp)

	status, resp = s.call(http.MethodPost, "/a/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	s.Require().Equal(http.StatusOK, status, resp)
	token, _ := resp["token"].(string)
	s.Require().NotEmpty(token)
	return token
}

func (s *IntegrationTestSuite) TestHealthAndVersion() {
	status, resp := s.call(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, status, resp)
	s.Equal("ok", resp["status"])

	status, resp = s.call(http.MethodGet, "/version", "", nil)
	s.Equal(http.StatusOK, status)
	s.Equal("test-version-info", resp["version"])
}

func (s *IntegrationTestSuite) TestAuth_LoginLogout() {
	token := s.newUser()

	status, _ := s.call(http.MethodGet, "/profile", token, nil)
	s.Equal(http.StatusOK, status)

	status, resp := s.call(http.MethodPost, "/a/logout", token, nil)
	s.Require().Equal(http.StatusOK, status, resp)
	s.Equal(true, resp["logged_out"])

	status, _ = s.call(http.MethodGet, "/profile", token, nil)
	s.Equal(http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestWorkoutSession_RecordsAndAchievements() {
	token := s.newUser()

	status, resp := s.call(http.MethodPost, fmt.Sprintf("/workouts/%d/start", s.workoutID), token, nil)
	s.Require().Equal(http.StatusCreated, status, resp)
	s.Equal(`Workout "Full Body Strength" started!`, resp["title"])
	session := resp["session"].(map[string]any)
	s.Equal("in_progress", session["status"])
	firstSessionID := int(session["id"].(float64))

	// the first weight only establishes the record
	status, resp = s.call(http.MethodPost,
		fmt.Sprintf("/sessions/%d/exercises/%d", firstSessionID, s.benchPressID), token,
		map[string]any{"sets_completed": 4, "reps_completed": 8, "weight_used": 60.0},
	)
	s.Require().Equal(http.StatusOK, status, resp)
	s.Equal(false, resp["new_record"])
	evaluation := resp["evaluation"].(map[string]any)
	s.Equal("created", evaluation["outcome"])
	s.Equal("Bench Press", evaluation["record"].(map[string]any)["exercise_name"])

	status, resp = s.call(http.MethodPost, fmt.Sprintf("/sessions/%d/complete", firstSessionID), token,
		map[string]any{"duration_minutes": 40, "difficulty_rating": 3},
	)
	s.Require().Equal(http.StatusOK, status, resp)
	s.Equal("completed", resp["session"].(map[string]any)["status"])

	// a completed session is terminal
	status, _ = s.call(http.MethodPost, fmt.Sprintf("/sessions/%d/skip", firstSessionID), token, nil)
	s.Equal(http.StatusConflict, status)

	status, resp = s.call(http.MethodPost, fmt.Sprintf("/workouts/%d/start", s.workoutID), token, nil)
	s.Require().Equal(http.StatusCreated, status, resp)
	secondSessionID := int(resp["session"].(map[string]any)["id"].(float64))

	status, resp = s.call(http.MethodPost,
		fmt.Sprintf("/sessions/%d/exercises/%d", secondSessionID, s.benchPressID), token,
		map[string]any{"sets_completed": 4, "reps_completed": 6, "weight_used": 70.0},
	)
	s.Require().Equal(http.StatusOK, status, resp)
	s.Equal(true, resp["new_record"])
	s.Equal("New personal record for Bench Press!", resp["title"])

	status, resp = s.call(http.MethodGet, "/records", token, nil)
	s.Require().Equal(http.StatusOK, status, resp)
	records := resp["records"].([]any)
	s.Require().Len(records, 1)
	s.Equal(70.0, records[0].(map[string]any)["value"])

	status, resp = s.call(http.MethodGet, "/achievements", token, nil)
	s.Require().Equal(http.StatusOK, status, resp)
	titles := map[string]bool{}
	for _, a := range resp["achievements"].([]any) {
		titles[a.(map[string]any)["title"].(string)] = true
	}
	s.True(titles["First Workout!"], titles)
	s.Len(titles, 2, titles)

	status, resp = s.call(http.MethodGet, "/dashboard", token, nil)
	s.Require().Equal(http.StatusOK, status, resp)
	stats := resp["stats"].(map[string]any)
	s.Equal(1.0, stats["workouts_completed"])
	s.Equal(2.0, stats["workouts_planned"])
	s.Equal(50.0, stats["workout_percentage"])
}

func (s *IntegrationTestSuite) TestNutritionLog_TotalsFollowMeals() {
	token := s.newUser()
	today := time.Now().Format("2006-01-02")

	status, resp := s.call(http.MethodGet, "/nutrition/log", token, nil)
	s.Require().Equal(http.StatusOK, status, resp)
	s.Equal("Nutrition Log - "+today, resp["title"])
	s.Empty(resp["meals"])

	status, resp = s.call(http.MethodPost, "/nutrition/log/"+today+"/meals", token, map[string]any{
		"meal_type": "lunch",
		"meal_name": gofakeit.Lunch(),
		"calories":  650,
		"protein":   40.5,
		"carbs":     70.0,
		"fats":      20.2,
		"fiber":     9.0,
	})
	s.Require().Equal(http.StatusCreated, status, resp)
	s.Equal("Meal logged successfully!", resp["title"])
	mealID := int(resp["meal"].(map[string]any)["id"].(float64))

	status, resp = s.call(http.MethodPost, "/nutrition/log/"+today+"/meals", token, map[string]any{
		"meal_type": "snack",
		"meal_name": "apple",
		"calories":  95,
		"protein":   0.5,
		"carbs":     25.0,
		"fats":      0.3,
	})
	s.Require().Equal(http.StatusBadRequest, status, resp)

	status, resp = s.call(http.MethodPost, "/nutrition/log/"+today+"/meals", token, map[string]any{
		"meal_type": "evening_snack",
		"meal_name": "apple",
		"calories":  95,
		"protein":   0.5,
		"carbs":     25.0,
		"fats":      0.3,
	})
	s.Require().Equal(http.StatusCreated, status, resp)
	log := resp["log"].(map[string]any)
	s.Equal(745.0, log["total_calories"])
	s.Equal(41.0, log["total_protein"])

	status, resp = s.call(http.MethodPut, "/nutrition/log/"+today+"/water", token, map[string]any{
		"water_intake": 2.5,
	})
	s.Require().Equal(http.StatusOK, status, resp)

	status, resp = s.call(http.MethodDelete, fmt.Sprintf("/nutrition/meals/%d", mealID), token, nil)
	s.Require().Equal(http.StatusOK, status, resp)

	status, resp = s.call(http.MethodGet, "/nutrition/log/"+today, token, nil)
	s.Require().Equal(http.StatusOK, status, resp)
	log = resp["log"].(map[string]any)
	s.Equal(95.0, log["total_calories"])
	s.Equal(2.5, log["water_intake"])
	s.Len(resp["meals"], 1)
}

func (s *IntegrationTestSuite) TestNutritionLog_RecipeMeal() {
	token := s.newUser()

	status, resp := s.call(http.MethodGet, "/nutrition/recipes?meal_type=breakfast", token, nil)
	s.Require().Equal(http.StatusOK, status, resp)
	recipes := resp["meals"].([]any)
	s.Require().NotEmpty(recipes)
	recipeID := int(recipes[0].(map[string]any)["id"].(float64))

	status, resp = s.call(http.MethodGet, fmt.Sprintf("/nutrition/recipes/%d", recipeID), token, nil)
	s.Require().Equal(http.StatusOK, status, resp)
	s.Equal("Oat Bowl", resp["title"])
	s.Equal([]any{"oats", "milk", "banana"}, resp["ingredients_list"])

	status, resp = s.call(http.MethodPost, "/nutrition/log/2024-05-10/meals", token, map[string]any{
		"meal_type": "breakfast",
		"recipe_id": recipeID,
		"servings":  2,
	})
	s.Require().Equal(http.StatusCreated, status, resp)
	log := resp["log"].(map[string]any)
	s.Equal(700.0, log["total_calories"])
	s.Equal(25.0, log["total_protein"])
}

func (s *IntegrationTestSuite) TestGoalsAndProgress() {
	token := s.newUser()

	status, resp := s.call(http.MethodPost, "/goals", token, map[string]any{
		"goal_type":     "weight_loss",
		"title":         "Lose 5kg",
		"target_weight": 75.0,
	})
	s.Require().Equal(http.StatusCreated, status, resp)
	goalID := int(resp["goal"].(map[string]any)["id"].(float64))

	status, resp = s.call(http.MethodPut, fmt.Sprintf("/goals/%d", goalID), token, map[string]any{
		"status":              "completed",
		"progress_percentage": 100,
	})
	s.Require().Equal(http.StatusOK, status, resp)
	s.Equal(`Goal "Lose 5kg" completed!`, resp["title"])

	today := time.Now().Format("2006-01-02")
	status, resp = s.call(http.MethodPost, "/progress", token, map[string]any{
		"date":   today,
		"weight": 79.4,
	})
	s.Require().Equal(http.StatusCreated, status, resp)

	status, _ = s.call(http.MethodPost, "/progress", token, map[string]any{
		"date":   today,
		"weight": 79.0,
	})
	s.Equal(http.StatusConflict, status)

	status, resp = s.call(http.MethodGet, "/profile", token, nil)
	s.Require().Equal(http.StatusOK, status, resp)
	s.Equal(79.4, resp["profile"].(map[string]any)["current_weight"])
}

func (s *IntegrationTestSuite) TestAuthoring_WorkoutFromStarterCatalog() {
	token := s.newUser()

	// the starter catalog was seeded into the empty db on startup
	status, resp := s.call(http.MethodGet, "/exercises?category=plyometric", token, nil)
	s.Require().Equal(http.StatusOK, status, resp)
	var burpeeID int
	for _, e := range resp["exercises"].([]any) {
		if exercise := e.(map[string]any); exercise["name"] == "Burpee" {
			burpeeID = int(exercise["id"].(float64))
		}
	}
	s.Require().NotZero(burpeeID, resp)

	status, resp = s.call(http.MethodPost, "/workouts", token, map[string]any{
		"name":       "Garage HIIT",
		"difficulty": "intermediate",
		"goal":       "endurance",
		"duration":   25,
	})
	s.Require().Equal(http.StatusCreated, status, resp)
	workoutID := int(resp["workout"].(map[string]any)["id"].(float64))

	status, resp = s.call(http.MethodPost, fmt.Sprintf("/workouts/%d/exercises", workoutID), token, map[string]any{
		"exercise_id": burpeeID,
		"position":    1,
		"reps":        15,
	})
	s.Require().Equal(http.StatusCreated, status, resp)
	s.Equal("Burpee added to workout!", resp["title"])
	s.Equal(3.0, resp["workout_exercise"].(map[string]any)["sets"])

	status, _ = s.call(http.MethodPost, fmt.Sprintf("/workouts/%d/exercises", workoutID), token, map[string]any{
		"exercise_id": burpeeID,
		"position":    1,
	})
	s.Equal(http.StatusConflict, status)

	// someone else cannot extend the workout
	status, _ = s.call(http.MethodPost, fmt.Sprintf("/workouts/%d/exercises", workoutID), s.newUser(), map[string]any{
		"exercise_id": burpeeID,
		"position":    2,
	})
	s.Equal(http.StatusNotFound, status)

	status, resp = s.call(http.MethodPost, fmt.Sprintf("/workouts/%d/start", workoutID), token, nil)
	s.Require().Equal(http.StatusCreated, status, resp)
	sessionID := int(resp["session"].(map[string]any)["id"].(float64))
	logPath := fmt.Sprintf("/sessions/%d/exercises/%d", sessionID, burpeeID)

	status, resp = s.call(http.MethodPost, logPath, token, map[string]any{"sets_completed": 3, "weight_used": 0})
	s.Require().Equal(http.StatusOK, status, resp)
	s.Nil(resp["evaluation"])

	status, resp = s.call(http.MethodPost, logPath, token, map[string]any{"sets_completed": 3, "weight_used": 10.0})
	s.Require().Equal(http.StatusOK, status, resp)
	s.Equal("created", resp["evaluation"].(map[string]any)["outcome"])

	status, resp = s.call(http.MethodPost, logPath, token, map[string]any{"sets_completed": 3, "weight_used": 10.004})
	s.Require().Equal(http.StatusOK, status, resp)
	s.Equal("unchanged", resp["evaluation"].(map[string]any)["outcome"])
	s.Equal(false, resp["new_record"])

	status, _ = s.call(http.MethodPost, logPath, token, map[string]any{"weight_used": 10000})
	s.Equal(http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestAuthoring_RecipeCaloriesTruncated() {
	token := s.newUser()

	status, resp := s.call(http.MethodPost, "/nutrition/recipes", token, map[string]any{
		"name":      "Rice bowl",
		"meal_type": "lunch",
		"calories":  333,
		"protein":   20.0,
		"carbs":     50.0,
		"fats":      7.5,
		"prep_time": 10,
		"cook_time": 20,
		"is_public": false,
	})
	s.Require().Equal(http.StatusCreated, status, resp)
	recipeID := int(resp["recipe"].(map[string]any)["id"].(float64))

	status, _ = s.call(http.MethodGet, fmt.Sprintf("/nutrition/recipes/%d", recipeID), s.newUser(), nil)
	s.Equal(http.StatusNotFound, status)

	status, resp = s.call(http.MethodPost, "/nutrition/log/2024-05-11/meals", token, map[string]any{
		"meal_type": "lunch",
		"recipe_id": recipeID,
		"servings":  1.5,
	})
	s.Require().Equal(http.StatusCreated, status, resp)
	s.Equal(499.0, resp["meal"].(map[string]any)["calories"])
	s.Equal(499.0, resp["log"].(map[string]any)["total_calories"])

	status, _ = s.call(http.MethodPost, "/nutrition/log/2024-05-11/meals", token, map[string]any{
		"meal_type": "lunch",
		"recipe_id": recipeID,
		"servings":  1000,
	})
	s.Equal(http.StatusBadRequest, status)
}
