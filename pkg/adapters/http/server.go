package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/digit"
	"github.com/aretw0/digit/pkg/host"
	"github.com/aretw0/digit/pkg/plugin"
	"github.com/aretw0/digit/pkg/wire"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes caps the size of an invocation request body.
const maxBodyBytes = 1 << 20

// Host is the part of host.Host the HTTP adapter needs.
type Host interface {
	List() []host.Entry
	Operations(id string) ([]plugin.Operation, error)
	Invoke(ctx context.Context, id, op string, args map[string]any) (any, error)
}

// InvocationResponse is the body of a successful POST to an operation.
type InvocationResponse struct {
	Plugin    string `json:"plugin"`
	Operation string `json:"operation"`
	Result    any    `json:"result"`
}

// Server serves a Host over HTTP.
type Server struct {
	Host    Host
	Streams *StreamManager

	logger      *slog.Logger
	corsOrigins []string
	rateLimit   float64
	rateBurst   int
	metrics     http.Handler
}

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithLogger sets the structured logger for request errors.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithCORS enables CORS for the given origins. "*" allows any origin.
func WithCORS(origins ...string) Option {
	return func(s *Server) {
		s.corsOrigins = origins
	}
}

// WithRateLimit throttles the whole API to rps requests per second with the
// given burst. A non-positive rps disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		s.rateLimit = rps
		s.rateBurst = burst
	}
}

// WithMetrics mounts h under /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithStreams serves invocation events from sm on /events.
func WithStreams(sm *StreamManager) Option {
	return func(s *Server) {
		s.Streams = sm
	}
}

// NewHandler creates a new HTTP handler for the host.
func NewHandler(h Host, opts ...Option) http.Handler {
	s := &Server{Host: h}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.Streams == nil {
		s.Streams = NewStreamManager(s.logger)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if s.rateLimit > 0 {
		r.Use(rateLimit(s.rateLimit, s.rateBurst))
	}

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/openapi.json", s.GetOpenAPI)
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	r.Get("/events", s.SubscribeEvents)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	r.Route("/plugins", func(r chi.Router) {
		r.Get("/", s.ListPlugins)
		r.Get("/{id}", s.GetPlugin)
		r.Get("/{id}/operations", s.ListOperations)
		r.Post("/{id}/operations/{op}", s.InvokeOperation)
	})

	return withCORS(r, s.corsOrigins)
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Digit API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.json',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":         "digit-http",
		"version":     strings.TrimSpace(digit.Version),
		"api_version": APIVersion,
	})
}

// GetOpenAPI handles the GET /openapi.json request. The document is rebuilt
// from the live catalog on each call.
func (s *Server) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	doc, err := BuildOpenAPI(s.Host)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	data, err := doc.MarshalJSON()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// ListPlugins handles the GET /plugins request.
func (s *Server) ListPlugins(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Host.List())
}

// GetPlugin handles the GET /plugins/{id} request.
func (s *Server) GetPlugin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, e := range s.Host.List() {
		if e.ID == id {
			s.writeJSON(w, http.StatusOK, e)
			return
		}
	}
	s.writeError(w, http.StatusNotFound, fmt.Errorf("%w: %s", plugin.ErrPluginNotFound, id))
}

// ListOperations handles the GET /plugins/{id}/operations request.
func (s *Server) ListOperations(w http.ResponseWriter, r *http.Request) {
	ops, err := s.Host.Operations(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	if ops == nil {
		ops = []plugin.Operation{}
	}
	s.writeJSON(w, http.StatusOK, ops)
}

// InvokeOperation handles the POST /plugins/{id}/operations/{op} request.
// The body is a JSON object of named arguments.
func (s *Server) InvokeOperation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	op := chi.URLParam(r, "op")

	args, err := wire.DecodeArgs(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.logger.Warn("InvokeOperation: Invalid request body", "plugin", id, "operation", op, "error", err)
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := s.Host.Invoke(r.Context(), id, op, args)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("InvokeOperation failed", "plugin", id, "operation", op, "error", err)
		}
		s.writeError(w, status, err)
		return
	}

	s.writeJSON(w, http.StatusOK, InvocationResponse{Plugin: id, Operation: op, Result: wire.Normalize(result)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, plugin.ErrPluginNotFound), errors.Is(err, plugin.ErrOperationNotFound):
		return http.StatusNotFound
	case errors.Is(err, plugin.ErrInvalidArguments):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := wire.Encode(w, v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
