package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=core

type coreService interface {
	Profile(ctx context.Context, userID int) (*ProfileDetails, error)
	UpdateProfile(ctx context.Context, userID int, params UpdateProfileParams) (*ProfileDetails, error)
	Goals(ctx context.Context, userID int) (*GoalBuckets, error)
	CreateGoal(ctx context.Context, userID int, params CreateGoalParams) (*Goal, error)
	UpdateGoal(ctx context.Context, userID, goalID int, params UpdateGoalParams) (*Goal, error)
	Progress(ctx context.Context, userID int) ([]ProgressLog, error)
	LogProgress(ctx context.Context, userID int, params LogProgressParams) (*ProgressLog, error)
	Achievements(ctx context.Context, userID int) ([]Achievement, error)
	Dashboard(ctx context.Context, userID int) (*Dashboard, error)
}

type ProfileResponse struct {
	Title string `json:"title"`
	ProfileDetails
}

type GoalsResponse struct {
	Title string `json:"title"`
	GoalBuckets
}

type GoalResponse struct {
	Title string `json:"title"`
	Goal  *Goal  `json:"goal"`
}

type ProgressResponse struct {
	Title string        `json:"title"`
	Logs  []ProgressLog `json:"logs"`
}

type ProgressLogResponse struct {
	Title string       `json:"title"`
	Log   *ProgressLog `json:"log"`
}

type AchievementsResponse struct {
	Title        string        `json:"title"`
	Achievements []Achievement `json:"achievements"`
}

type DashboardResponse struct {
	Title string `json:"title"`
	Dashboard
}

type Handler struct {
	service coreService
}

func NewHandler(service coreService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/dashboard", h.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
	r.HandleFunc("/profile", h.HandleProfile).Methods("GET", "OPTIONS").Name("profile")
	r.HandleFunc("/profile", h.HandleUpdateProfile).Methods("PUT").Name("update-profile")
	r.HandleFunc("/goals", h.HandleGoals).Methods("GET", "OPTIONS").Name("goals")
	r.HandleFunc("/goals", h.HandleCreateGoal).Methods("POST").Name("create-goal")
	r.HandleFunc("/goals/{id}", h.HandleUpdateGoal).Methods("PUT", "OPTIONS").Name("update-goal")
	r.HandleFunc("/progress", h.HandleProgress).Methods("GET", "OPTIONS").Name("progress")
	r.HandleFunc("/progress", h.HandleLogProgress).Methods("POST").Name("log-progress")
	r.HandleFunc("/achievements", h.HandleAchievements).Methods("GET", "OPTIONS").Name("achievements")
}

func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.core.dashboard")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	dashboard, err := h.service.Dashboard(ctx, userID)
	if err != nil {
		writeError(w, err, "failed to get dashboard")
		return
	}

	pkg.WriteJSONResponseOK(w, DashboardResponse{
		Title:     "Dashboard",
		Dashboard: *dashboard,
	})
}

func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.core.profile")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	details, err := h.service.Profile(ctx, userID)
	if err != nil {
		writeError(w, err, "failed to get profile")
		return
	}

	pkg.WriteJSONResponseOK(w, ProfileResponse{
		Title:          "Profile",
		ProfileDetails: *details,
	})
}

func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.core.updateprofile")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	var params UpdateProfileParams
	if err := pkg.DecodeJSONBody(r, &params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	details, err := h.service.UpdateProfile(ctx, userID, params)
	if err != nil {
		writeError(w, err, "failed to update profile")
		return
	}

	pkg.WriteJSONResponseOK(w, ProfileResponse{
		Title:          "Profile updated successfully!",
		ProfileDetails: *details,
	})
}

func (h *Handler) HandleGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.core.goals")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	buckets, err := h.service.Goals(ctx, userID)
	if err != nil {
		writeError(w, err, "failed to get goals")
		return
	}

	pkg.WriteJSONResponseOK(w, GoalsResponse{
		Title:       "My Goals",
		GoalBuckets: *buckets,
	})
}

func (h *Handler) HandleCreateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.core.creategoal")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	var params CreateGoalParams
	if err := pkg.DecodeJSONBody(r, &params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	goal, err := h.service.CreateGoal(ctx, userID, params)
	if err != nil {
		writeError(w, err, "failed to create goal")
		return
	}

	pkg.WriteJSONResponse(w, GoalResponse{
		Title: "Goal created successfully!",
		Goal:  goal,
	}, http.StatusCreated)
}

func (h *Handler) HandleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.core.updategoal")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}
	goalID, err := pkg.ParseID("id", mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var params UpdateGoalParams
	if err := pkg.DecodeJSONBody(r, &params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	goal, err := h.service.UpdateGoal(ctx, userID, goalID, params)
	if err != nil {
		writeError(w, err, "failed to update goal")
		return
	}

	title := "Goal updated successfully!"
	if goal.Status == GoalCompleted {
		title = fmt.Sprintf("Goal %q completed!", goal.Title)
	}
	pkg.WriteJSONResponseOK(w, GoalResponse{
		Title: title,
		Goal:  goal,
	})
}

func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.core.progress")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	logs, err := h.service.Progress(ctx, userID)
	if err != nil {
		writeError(w, err, "failed to get progress")
		return
	}

	pkg.WriteJSONResponseOK(w, ProgressResponse{
		Title: "My Progress",
		Logs:  logs,
	})
}

func (h *Handler) HandleLogProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.core.logprogress")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	var params LogProgressParams
	if err := pkg.DecodeJSONBody(r, &params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	progressLog, err := h.service.LogProgress(ctx, userID, params)
	if err != nil {
		writeError(w, err, "failed to log progress")
		return
	}

	pkg.WriteJSONResponse(w, ProgressLogResponse{
		Title: "Progress logged successfully!",
		Log:   progressLog,
	}, http.StatusCreated)
}

func (h *Handler) HandleAchievements(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.core.achievements")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	achievements, err := h.service.Achievements(ctx, userID)
	if err != nil {
		writeError(w, err, "failed to get achievements")
		return
	}

	pkg.WriteJSONResponseOK(w, AchievementsResponse{
		Title:        "My Achievements",
		Achievements: achievements,
	})
}

func userFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
	}
	return userID, ok
}

func writeError(w http.ResponseWriter, err error, msg string) {
	switch {
	case pkg.IsValidationError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrProfileNotFound), errors.Is(err, ErrGoalNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrProgressLogExists):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Errorf("%s: %s", msg, err)
		http.Error(w, msg, http.StatusInternalServerError)
	}
}
