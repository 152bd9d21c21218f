package service

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/climate-risk-service/internal/domain"
	"github.com/couchcryptid/climate-risk-service/internal/observability"
)

// ClaimService triages damage claims against current environmental
// conditions.
type ClaimService struct {
	signals   domain.SignalProvider
	publisher EventPublisher // optional
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// NewClaimService creates a ClaimService. publisher may be nil, in which
// case auto-approved claims are not forwarded anywhere.
func NewClaimService(signals domain.SignalProvider, publisher EventPublisher, logger *slog.Logger, metrics *observability.Metrics) *ClaimService {
	return &ClaimService{
		signals:   signals,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
}

// AssessRequest identifies the claim to triage: the disaster event and
// where it happened.
type AssessRequest struct {
	LocationName string  `json:"location_name"`
	DisasterType string  `json:"disaster_type"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// Assess fetches current conditions for the claim location and runs the
// triage engine. An unrecognized disaster type or missing identifying
// fields reject the request; an upstream fetch failure degrades to
// normalizer defaults.
func (s *ClaimService) Assess(ctx context.Context, req AssessRequest) (domain.DamageAssessment, error) {
	disaster, err := domain.ParseDisasterType(req.DisasterType)
	if err != nil {
		return domain.DamageAssessment{}, err
	}
	if err := validateLocation(domain.Location{
		Name:      req.LocationName,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}); err != nil {
		return domain.DamageAssessment{}, err
	}

	raw, err := s.signals.FetchSignal(ctx, req.Latitude, req.Longitude)
	if err != nil {
		s.logger.Warn("signal fetch failed, assessing with defaults",
			"location", req.LocationName, "error", err)
		raw = domain.RawSignal{}
	}

	assessment := domain.AssessDamage(disaster, domain.Normalize(raw))
	s.metrics.ClaimsAssessed.
		WithLabelValues(string(disaster), string(assessment.ClaimStatus)).Inc()

	if s.publisher != nil && assessment.AutoApproved {
		event := ClaimEvent{
			LocationName: req.LocationName,
			DisasterType: disaster,
			Assessment:   assessment,
		}
		if err := s.publisher.PublishClaim(ctx, event); err != nil {
			s.logger.Error("publishing approved claim failed",
				"location", req.LocationName, "error", err)
		}
	}

	return assessment, nil
}
