// Package server exposes the scoring engine over HTTP: one calculation
// endpoint plus health and metrics.
package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"auswo-calculator/internal/common/config"
	apperrors "auswo-calculator/internal/common/errors"
	"auswo-calculator/internal/common/logger"
	"auswo-calculator/internal/common/metrics"
	"auswo-calculator/internal/common/observability"
	"auswo-calculator/internal/scoring"
)

// maxBodyBytes caps the calculation request body. Profiles are small; anything
// larger is not a profile.
const maxBodyBytes = 1 << 20

// Server wires the engine into an HTTP listener.
type Server struct {
	httpServer     *http.Server
	engine         *scoring.Engine
	logger         logger.Logger
	obs            *observability.Observability
	allowedOrigins []string
}

// New builds a Server with routes and middleware attached.
func New(cfg config.ServerConfig, engine *scoring.Engine, log logger.Logger, obs *observability.Observability) *Server {
	s := &Server{
		engine:         engine,
		logger:         log,
		obs:            obs,
		allowedOrigins: cfg.AllowedOrigins,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /points/calc", s.handleCalc)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := s.withCORS(s.withRequestID(s.withLogging(mux)))

	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  config.GetDuration(cfg.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.WriteTimeout),
	}
	return s
}

// Start blocks serving requests until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("http server listening", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the full middleware-wrapped handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) handleCalc(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, apperrors.NewRequestParseFailedError(err), nil, start)
		return
	}

	fieldErrs, err := validateCalcRequest(body)
	if err != nil {
		s.writeError(w, apperrors.NewRequestParseFailedError(err), nil, start)
		return
	}
	if len(fieldErrs) > 0 {
		s.writeError(w, apperrors.NewProfileValidationFailedError("request body failed profile validation"), fieldErrs, start)
		return
	}

	var profile scoring.Profile
	if err := json.Unmarshal(body, &profile); err != nil {
		s.writeError(w, apperrors.NewRequestParseFailedError(err), nil, start)
		return
	}

	result, err := s.engine.Evaluate(&profile)
	if err != nil {
		s.writeError(w, apperrors.AsStandardError(err), nil, start)
		return
	}

	metrics.CalcRequestsTotal.WithLabelValues("success").Inc()
	metrics.CalcDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())
	if s.obs != nil {
		s.obs.RecordEvaluation(r.Context(), "success")
		s.obs.RecordEvaluationDuration(r.Context(), time.Since(start), "success")
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	meta := s.engine.Table().Meta
	s.writeJSON(w, http.StatusOK, HealthResponse{
		OK:           true,
		RulesVersion: meta.Version,
		UpdatedAt:    meta.UpdatedAt,
	})
}

func (s *Server) writeError(w http.ResponseWriter, stdErr *apperrors.StandardError, fields []FieldError, start time.Time) {
	metrics.CalcRequestsTotal.WithLabelValues("error").Inc()
	metrics.CalcRequestsFailed.WithLabelValues(string(stdErr.Code)).Inc()
	metrics.CalcDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
	if s.obs != nil {
		s.obs.RecordEvaluation(context.Background(), "error")
	}

	s.logger.Warn("calculation rejected", map[string]interface{}{
		"code":    string(stdErr.Code),
		"details": stdErr.Details,
	})

	s.writeJSON(w, apperrors.HTTPStatus(stdErr.Code), ErrorResponse{
		Error:  stdErr,
		Fields: fields,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response write failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
