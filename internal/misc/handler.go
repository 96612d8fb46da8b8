package misc

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Pinger is anything the health check can probe: the db pool, redis.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type HealthResponse struct {
	Title  string            `json:"title"`
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type VersionResponse struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

type Handler struct {
	versionInfo  string
	dependencies map[string]Pinger
	pingTimeout  time.Duration
}

func NewHandler(versionInfo string, dependencies map[string]Pinger) *Handler {
	return &Handler{
		versionInfo:  versionInfo,
		dependencies: dependencies,
		pingTimeout:  3 * time.Second,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/", h.HandleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	r.HandleFunc("/health", h.HandleHealth).Methods("GET", "OPTIONS").Name("health")
	r.HandleFunc("/version", h.HandleVersion).Methods("GET", "OPTIONS").Name("version")
}

func (h *Handler) HandleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

// HandleHealth pings every dependency and answers 503 if any of them is down.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	names := make([]string, 0, len(h.dependencies))
	for name := range h.dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := HealthResponse{
		Title:  "Health",
		Status: "ok",
		Checks: make(map[string]string, len(names)),
	}
	for _, name := range names {
		pingCtx, cancel := context.WithTimeout(ctx, h.pingTimeout)
		err := h.dependencies[name].Ping(pingCtx)
		cancel()
		if err != nil {
			log.Errorf("health check, %s ping: %s", name, err)
			resp.Checks[name] = "down"
			resp.Status = "degraded"
			continue
		}
		resp.Checks[name] = "up"
	}

	span.SetAttributes(attribute.String("health.status", resp.Status))
	if resp.Status != "ok" {
		pkg.WriteJSONResponse(w, resp, http.StatusServiceUnavailable)
		return
	}
	pkg.WriteJSONResponseOK(w, resp)
}

func (h *Handler) HandleVersion(w http.ResponseWriter, _ *http.Request) {
	version := h.versionInfo
	if version == "" {
		version = "unknown"
	}
	pkg.WriteJSONResponseOK(w, VersionResponse{
		Title:   "Version",
		Version: version,
	})
}
