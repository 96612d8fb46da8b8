package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type accountsService interface {
	Register(ctx context.Context, params RegisterParams) (*User, error)
	Authenticate(ctx context.Context, credentials Credentials) (*User, error)
}

type sessionService interface {
	Login(ctx context.Context, userID int, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type Handler struct {
	accounts       accountsService
	sessions       sessionService
	metricsManager *metrics.Manager
}

type RegisterResponse struct {
	Title string `json:"title"`
	User  *User  `json:"user"`
}

type LoginResponse struct {
	Title  string `json:"title"`
	Token  string `json:"token"`
	UserID int    `json:"user_id"`
}

type LogoutResponse struct {
	Title     string `json:"title"`
	LoggedOut bool   `json:"logged_out"`
}

func NewHandler(
	accounts accountsService,
	sessions sessionService,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		accounts:       accounts,
		sessions:       sessions,
		metricsManager: metricsManager,
	}
}

// SetupRoutes expects the "/a" subrouter, already guarded by the rate limiter.
func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/register", h.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	r.HandleFunc("/login", h.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	r.HandleFunc("/logout", h.HandleLogout).Methods("GET", "POST", "OPTIONS").Name("logout")
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	var params RegisterParams
	if err := pkg.DecodeJSONBody(r, &params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.accounts.Register(ctx, params)
	if err != nil {
		switch {
		case pkg.IsValidationError(err):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrUsernameTaken):
			http.Error(w, "username already taken", http.StatusConflict)
		default:
			log.Errorf("register user [%s]: %s", params.Username, err)
			http.Error(w, "registration failed", http.StatusInternalServerError)
		}
		return
	}

	h.metricsManager.CounterRegistrations.Inc()
	log.Infof("new user registered: %d [%s]", user.ID, user.Username)

	pkg.WriteJSONResponse(w, RegisterResponse{
		Title: "Welcome to FitTrack",
		User:  user,
	}, http.StatusCreated)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	var credentials Credentials
	if err := pkg.DecodeJSONBody(r, &credentials); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if credentials.Username == "" || credentials.Password == "" {
		http.Error(w, "error, username and password required", http.StatusBadRequest)
		return
	}

	user, err := h.accounts.Authenticate(ctx, credentials)
	if err != nil {
		if errors.Is(err, ErrWrongPassword) {
			log.Tracef("failed login attempt for [%s]", credentials.Username)
			http.Error(w, "wrong username or password", http.StatusUnauthorized)
			return
		}
		log.Errorf("login [%s]: %s", credentials.Username, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	token, err := h.sessions.Login(ctx, user.ID, time.Now())
	if err != nil {
		log.Errorf("create session for user %d: %s", user.ID, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, LoginResponse{
		Title:  "Welcome back, " + user.Username,
		Token:  token,
		UserID: user.ID,
	})
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	token := TokenFromRequest(r)
	if token == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := h.sessions.Logout(ctx, token)
	if err != nil {
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, LogoutResponse{
		Title:     "Logged out",
		LoggedOut: loggedOut,
	})
}
