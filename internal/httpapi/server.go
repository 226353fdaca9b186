package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"zimaged/internal/manager"
	"zimaged/internal/pipeline"
	"zimaged/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Health() types.HealthResponse
	Generate(ctx context.Context, req types.GenerateRequest) (types.GenerateResponse, error)
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(svc.Health()); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
			return
		}
	})

	r.Post("/generate", func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
			writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req types.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if strings.TrimSpace(req.Prompt) == "" {
			writeJSONError(w, http.StatusBadRequest, "prompt is required")
			return
		}

		lvl := requestLogLevel(r)
		if lvl >= LevelInfo {
			logEvent(r).Int("width", req.Width).Int("height", req.Height).Msg("generate start")
		}
		start := time.Now()
		// Join server base context with request context so shutdown cancels work too.
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		resp, err := svc.Generate(ctx, req)
		if err != nil {
			// If context was canceled (client disconnect), just return.
			if r.Context().Err() != nil || serverBaseCtx.Err() != nil {
				return
			}
			status := http.StatusInternalServerError
			switch {
			case manager.IsPipelineNotLoaded(err), pipeline.IsUnavailable(err):
				status = http.StatusServiceUnavailable
			default:
				if he, ok := err.(HTTPError); ok {
					status = he.StatusCode()
				}
			}
			ObserveGeneration("error", time.Since(start))
			writeJSONError(w, status, err.Error())
			if lvl >= LevelInfo {
				logEvent(r).Int("status", status).Dur("dur", time.Since(start)).Err(err).Msg("generate end")
			}
			return
		}
		ObserveGeneration("ok", time.Since(start))
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
			return
		}
		if lvl >= LevelInfo {
			logEvent(r).Int("status", http.StatusOK).Dur("dur", time.Since(start)).Msg("generate end")
		}
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}
