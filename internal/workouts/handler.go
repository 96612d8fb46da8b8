package workouts

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts

type browseService interface {
	Exercises(ctx context.Context, filter ExerciseFilter) ([]Exercise, error)
	ExerciseDetails(ctx context.Context, userID, exerciseID int) (*ExerciseDetails, error)
	Workouts(ctx context.Context, userID int, filter WorkoutFilter) ([]Workout, error)
	WorkoutDetails(ctx context.Context, userID, workoutID int) (*WorkoutDetails, error)
	Records(ctx context.Context, userID int) ([]PersonalRecord, error)
	CreateWorkout(ctx context.Context, userID int, params CreateWorkoutParams) (*Workout, error)
	AddWorkoutExercise(ctx context.Context, userID, workoutID int, params AddWorkoutExerciseParams) (*WorkoutExercise, error)
}

type sessionService interface {
	StartWorkout(ctx context.Context, userID, workoutID int) (*WorkoutSession, error)
	PlanSession(ctx context.Context, userID, workoutID int, date time.Time) (*WorkoutSession, error)
	Get(ctx context.Context, userID, sessionID int) (*SessionDetails, error)
	List(ctx context.Context, userID int, params SessionListParams) ([]WorkoutSession, error)
	Start(ctx context.Context, userID, sessionID int) (*WorkoutSession, error)
	LogExercise(ctx context.Context, userID, sessionID, exerciseID int, params LogExerciseParams) (*LogExerciseResult, error)
	Complete(ctx context.Context, userID, sessionID int, params CompleteParams) (*WorkoutSession, error)
	Skip(ctx context.Context, userID, sessionID int) (*WorkoutSession, error)
}

type ExercisesResponse struct {
	Title     string     `json:"title"`
	Exercises []Exercise `json:"exercises"`
}

type ExerciseDetailResponse struct {
	Title string `json:"title"`
	ExerciseDetails
}

type WorkoutsResponse struct {
	Title    string    `json:"title"`
	Workouts []Workout `json:"workouts"`
}

type WorkoutDetailResponse struct {
	Title string `json:"title"`
	WorkoutDetails
}

type WorkoutExerciseResponse struct {
	Title           string           `json:"title"`
	WorkoutExercise *WorkoutExercise `json:"workout_exercise"`
}

type SessionsResponse struct {
	Title    string           `json:"title"`
	Sessions []WorkoutSession `json:"sessions"`
}

type SessionDetailResponse struct {
	Title string `json:"title"`
	SessionDetails
}

type SessionResponse struct {
	Title   string          `json:"title"`
	Session *WorkoutSession `json:"session"`
}

type LogExerciseResponse struct {
	Title string `json:"title"`
	LogExerciseResult
}

type RecordsResponse struct {
	Title   string           `json:"title"`
	Records []PersonalRecord `json:"records"`
}

type PlanSessionRequest struct {
	Date string `json:"date"`
}

type Handler struct {
	browse   browseService
	sessions sessionService
}

func NewHandler(browse browseService, sessions sessionService) *Handler {
	return &Handler{
		browse:   browse,
		sessions: sessions,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercises", h.HandleExercises).Methods("GET", "OPTIONS").Name("exercises")
	r.HandleFunc("/exercises/{id}", h.HandleExerciseDetail).Methods("GET", "OPTIONS").Name("exercise-detail")
	r.HandleFunc("/workouts", h.HandleWorkouts).Methods("GET", "OPTIONS").Name("workouts")
	r.HandleFunc("/workouts", h.HandleCreateWorkout).Methods("POST").Name("create-workout")
	r.HandleFunc("/workouts/{id}", h.HandleWorkoutDetail).Methods("GET", "OPTIONS").Name("workout-detail")
	r.HandleFunc("/workouts/{id}/exercises", h.HandleAddWorkoutExercise).Methods("POST", "OPTIONS").Name("add-workout-exercise")
	r.HandleFunc("/workouts/{id}/start", h.HandleStartWorkout).Methods("POST", "OPTIONS").Name("start-workout")
	r.HandleFunc("/workouts/{id}/plan", h.HandlePlanSession).Methods("POST", "OPTIONS").Name("plan-session")
	r.HandleFunc("/sessions", h.HandleSessions).Methods("GET", "OPTIONS").Name("sessions")
	r.HandleFunc("/sessions/{id}", h.HandleSession).Methods("GET", "OPTIONS").Name("session")
	r.HandleFunc("/sessions/{id}/start", h.HandleStartSession).Methods("POST", "OPTIONS").Name("start-session")
	r.HandleFunc("/sessions/{id}/exercises/{exerciseId}", h.HandleLogExercise).Methods("POST", "OPTIONS").Name("log-exercise")
	r.HandleFunc("/sessions/{id}/complete", h.HandleCompleteSession).Methods("POST", "OPTIONS").Name("complete-session")
	r.HandleFunc("/sessions/{id}/skip", h.HandleSkipSession).Methods("POST", "OPTIONS").Name("skip-session")
	r.HandleFunc("/records", h.HandleRecords).Methods("GET", "OPTIONS").Name("records")
}

func (h *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exercises")
	defer span.End()

	query := r.URL.Query()
	exercises, err := h.browse.Exercises(ctx, ExerciseFilter{
		Category:    Category(query.Get("category")),
		MuscleGroup: MuscleGroup(query.Get("muscle_group")),
		Difficulty:  Difficulty(query.Get("difficulty")),
		Query:       query.Get("q"),
	})
	if err != nil {
		writeError(w, err, "failed to get exercises")
		return
	}

	pkg.WriteJSONResponseOK(w, ExercisesResponse{
		Title:     "Exercises",
		Exercises: exercises,
	})
}

func (h *Handler) HandleExerciseDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exercisedetail")
	defer span.End()

	userID, exerciseID, ok := userAndPathID(w, r, "id")
	if !ok {
		return
	}

	details, err := h.browse.ExerciseDetails(ctx, userID, exerciseID)
	if err != nil {
		writeError(w, err, "failed to get exercise")
		return
	}

	pkg.WriteJSONResponseOK(w, ExerciseDetailResponse{
		Title:           details.Exercise.Name,
		ExerciseDetails: *details,
	})
}

func (h *Handler) HandleWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	workouts, err := h.browse.Workouts(ctx, userID, WorkoutFilter{
		Difficulty: Difficulty(query.Get("difficulty")),
		Goal:       Goal(query.Get("goal")),
	})
	if err != nil {
		writeError(w, err, "failed to get workouts")
		return
	}

	pkg.WriteJSONResponseOK(w, WorkoutsResponse{
		Title:    "Workouts",
		Workouts: workouts,
	})
}

func (h *Handler) HandleWorkoutDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.detail")
	defer span.End()

	userID, workoutID, ok := userAndPathID(w, r, "id")
	if !ok {
		return
	}

	details, err := h.browse.WorkoutDetails(ctx, userID, workoutID)
	if err != nil {
		writeError(w, err, "failed to get workout")
		return
	}

	pkg.WriteJSONResponseOK(w, WorkoutDetailResponse{
		Title:          details.Workout.Name,
		WorkoutDetails: *details,
	})
}

func (h *Handler) HandleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	var params CreateWorkoutParams
	if err := pkg.DecodeJSONBody(r, &params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	workout, err := h.browse.CreateWorkout(ctx, userID, params)
	if err != nil {
		writeError(w, err, "failed to create workout")
		return
	}

	pkg.WriteJSONResponse(w, WorkoutDetailResponse{
		Title: "Workout created successfully! Now add exercises.",
		WorkoutDetails: WorkoutDetails{
			Workout:          workout,
			WorkoutExercises: []WorkoutExercise{},
			RecentSessions:   []WorkoutSession{},
		},
	}, http.StatusCreated)
}

func (h *Handler) HandleAddWorkoutExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addexercise")
	defer span.End()

	userID, workoutID, ok := userAndPathID(w, r, "id")
	if !ok {
		return
	}

	var params AddWorkoutExerciseParams
	if err := pkg.DecodeJSONBody(r, &params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	we, err := h.browse.AddWorkoutExercise(ctx, userID, workoutID, params)
	if err != nil {
		writeError(w, err, "failed to add exercise to workout")
		return
	}

	pkg.WriteJSONResponse(w, WorkoutExerciseResponse{
		Title:           we.Exercise.Name + " added to workout!",
		WorkoutExercise: we,
	}, http.StatusCreated)
}

func (h *Handler) HandleStartWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.start")
	defer span.End()

	userID, workoutID, ok := userAndPathID(w, r, "id")
	if !ok {
		return
	}

	session, err := h.sessions.StartWorkout(ctx, userID, workoutID)
	if err != nil {
		writeError(w, err, "failed to start workout")
		return
	}

	pkg.WriteJSONResponse(w, SessionResponse{
		Title:   fmt.Sprintf("Workout %q started!", session.WorkoutName),
		Session: session,
	}, http.StatusCreated)
}

func (h *Handler) HandlePlanSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.plan")
	defer span.End()

	userID, workoutID, ok := userAndPathID(w, r, "id")
	if !ok {
		return
	}

	var req PlanSessionRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	date, err := pkg.ParseDate("date", req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.sessions.PlanSession(ctx, userID, workoutID, date)
	if err != nil {
		writeError(w, err, "failed to plan workout")
		return
	}

	pkg.WriteJSONResponse(w, SessionResponse{
		Title:   fmt.Sprintf("Workout %q planned for %s", session.WorkoutName, req.Date),
		Session: session,
	}, http.StatusCreated)
}

func (h *Handler) HandleSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.list")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	status := SessionStatus(r.URL.Query().Get("status"))
	if status != "" {
		if err := pkg.OneOf("status", status, SessionStatuses...); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	sessions, err := h.sessions.List(ctx, userID, SessionListParams{Status: status})
	if err != nil {
		writeError(w, err, "failed to get sessions")
		return
	}

	pkg.WriteJSONResponseOK(w, SessionsResponse{
		Title:    "My Workout History",
		Sessions: sessions,
	})
}

func (h *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.get")
	defer span.End()

	userID, sessionID, ok := userAndPathID(w, r, "id")
	if !ok {
		return
	}

	details, err := h.sessions.Get(ctx, userID, sessionID)
	if err != nil {
		writeError(w, err, "failed to get session")
		return
	}

	pkg.WriteJSONResponseOK(w, SessionDetailResponse{
		Title:          "Session: " + details.Session.WorkoutName,
		SessionDetails: *details,
	})
}

func (h *Handler) HandleStartSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.start")
	defer span.End()

	userID, sessionID, ok := userAndPathID(w, r, "id")
	if !ok {
		return
	}

	session, err := h.sessions.Start(ctx, userID, sessionID)
	if err != nil {
		writeError(w, err, "failed to start session")
		return
	}

	pkg.WriteJSONResponseOK(w, SessionResponse{
		Title:   fmt.Sprintf("Workout %q started!", session.WorkoutName),
		Session: session,
	})
}

func (h *Handler) HandleLogExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.logexercise")
	defer span.End()

	userID, sessionID, ok := userAndPathID(w, r, "id")
	if !ok {
		return
	}
	exerciseID, err := pkg.ParseID("exerciseId", mux.Vars(r)["exerciseId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var params LogExerciseParams
	if err := pkg.DecodeJSONBody(r, &params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.sessions.LogExercise(ctx, userID, sessionID, exerciseID, params)
	if err != nil {
		writeError(w, err, "failed to log exercise")
		return
	}

	title := result.Log.ExerciseName + " logged!"
	if result.NewRecord {
		title = fmt.Sprintf("New personal record for %s!", result.Log.ExerciseName)
	}
	pkg.WriteJSONResponseOK(w, LogExerciseResponse{
		Title:             title,
		LogExerciseResult: *result,
	})
}

func (h *Handler) HandleCompleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.complete")
	defer span.End()

	userID, sessionID, ok := userAndPathID(w, r, "id")
	if !ok {
		return
	}

	var params CompleteParams
	if r.ContentLength != 0 {
		if err := pkg.DecodeJSONBody(r, &params); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	session, err := h.sessions.Complete(ctx, userID, sessionID, params)
	if err != nil {
		writeError(w, err, "failed to complete session")
		return
	}

	pkg.WriteJSONResponseOK(w, SessionResponse{
		Title:   "Workout completed! Great job!",
		Session: session,
	})
}

func (h *Handler) HandleSkipSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.skip")
	defer span.End()

	userID, sessionID, ok := userAndPathID(w, r, "id")
	if !ok {
		return
	}

	session, err := h.sessions.Skip(ctx, userID, sessionID)
	if err != nil {
		writeError(w, err, "failed to skip session")
		return
	}

	pkg.WriteJSONResponseOK(w, SessionResponse{
		Title:   "Workout skipped",
		Session: session,
	})
}

func (h *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.records")
	defer span.End()

	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	records, err := h.browse.Records(ctx, userID)
	if err != nil {
		writeError(w, err, "failed to get personal records")
		return
	}

	pkg.WriteJSONResponseOK(w, RecordsResponse{
		Title:   "Personal Records",
		Records: records,
	})
}

func userFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
	}
	return userID, ok
}

func userAndPathID(w http.ResponseWriter, r *http.Request, name string) (userID, id int, ok bool) {
	if userID, ok = userFromRequest(w, r); !ok {
		return 0, 0, false
	}
	id, err := pkg.ParseID(name, mux.Vars(r)[name])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, 0, false
	}
	return userID, id, true
}

func writeError(w http.ResponseWriter, err error, msg string) {
	switch {
	case pkg.IsValidationError(err), errors.Is(err, ErrUnknownRecordType):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrWorkoutNotFound),
		errors.Is(err, ErrExerciseNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrWorkoutExerciseExists):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Errorf("%s: %s", msg, err)
		http.Error(w, msg, http.StatusInternalServerError)
	}
}
