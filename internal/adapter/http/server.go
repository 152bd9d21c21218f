// Package http exposes the evaluation pipelines over a JSON API, plus
// health, readiness, and metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/climate-risk-service/internal/domain"
	"github.com/couchcryptid/climate-risk-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RiskAssessor computes risk profiles for single locations and rosters.
type RiskAssessor interface {
	ComputeProfile(ctx context.Context, loc domain.Location) (domain.RiskProfile, error)
	ComputeProfiles(ctx context.Context, roster []domain.Location) service.ProfileBatch
}

// TriggerEvaluator evaluates parametric triggers over a roster.
type TriggerEvaluator interface {
	Evaluate(ctx context.Context, roster []domain.Location) service.TriggerBatch
}

// ClaimAssessor triages damage claims.
type ClaimAssessor interface {
	Assess(ctx context.Context, req service.AssessRequest) (domain.DamageAssessment, error)
}

// Server exposes the risk, trigger, and claim APIs.
type Server struct {
	httpServer *http.Server
	risk       RiskAssessor
	triggers   TriggerEvaluator
	claims     ClaimAssessor
	roster     []domain.Location
	logger     *slog.Logger
}

// NewServer creates the API server. The roster drives the batch endpoints.
func NewServer(addr string, risk RiskAssessor, triggers TriggerEvaluator, claims ClaimAssessor, roster []domain.Location, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		risk:     risk,
		triggers: triggers,
		claims:   claims,
		roster:   roster,
		logger:   logger,
	}

	mux.HandleFunc("POST /api/v1/risk-profile", s.handleRiskProfile)
	mux.HandleFunc("GET /api/v1/risk-profiles", s.handleRiskProfiles)
	mux.HandleFunc("GET /api/v1/triggers", s.handleTriggers)
	mux.HandleFunc("POST /api/v1/claims/assess", s.handleAssessClaim)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

type riskProfileRequest struct {
	LocationName string  `json:"location_name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// riskProfileResponse decorates a profile with its band; the band is a
// consumer-facing classification, not part of the stored profile.
type riskProfileResponse struct {
	domain.RiskProfile
	RiskBand domain.RiskBand `json:"risk_band"`
}

func (s *Server) handleRiskProfile(w http.ResponseWriter, r *http.Request) {
	var req riskProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := s.risk.ComputeProfile(r.Context(), domain.Location{
		Name:      req.LocationName,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, riskProfileResponse{
		RiskProfile: profile,
		RiskBand:    domain.ClassifyRisk(profile.RiskScore),
	})
}

func (s *Server) handleRiskProfiles(w http.ResponseWriter, r *http.Request) {
	batch := s.risk.ComputeProfiles(r.Context(), s.roster)
	writeJSON(w, http.StatusOK, batch)
}

func (s *Server) handleTriggers(w http.ResponseWriter, r *http.Request) {
	batch := s.triggers.Evaluate(r.Context(), s.roster)
	writeJSON(w, http.StatusOK, batch)
}

func (s *Server) handleAssessClaim(w http.ResponseWriter, r *http.Request) {
	var req service.AssessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assessment, err := s.claims.Assess(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if len(s.roster) == 0 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  "no monitored locations configured",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Error("request failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
