// Package service orchestrates the three evaluation pipelines over the
// external data providers: risk profiles, parametric triggers, and claim
// triage. All pipelines are stateless; batch evaluations fan out per
// location and tolerate individual fetch failures.
package service

import (
	"context"
	"fmt"
	"math"

	"github.com/couchcryptid/climate-risk-service/internal/domain"
)

// LocationFailure records one location that could not be evaluated in a
// batch. The rest of the batch is unaffected.
type LocationFailure struct {
	LocationName string `json:"location_name"`
	Error        string `json:"error"`
}

// ClaimEvent is the published form of an assessed claim.
type ClaimEvent struct {
	LocationName string                  `json:"location_name"`
	DisasterType domain.DisasterType     `json:"disaster_type"`
	Assessment   domain.DamageAssessment `json:"assessment"`
}

// EventPublisher forwards evaluation outcomes to a downstream sink.
// Publishing is best-effort; a publish failure never fails the evaluation.
type EventPublisher interface {
	PublishTriggers(ctx context.Context, triggers []domain.ParametricTrigger) error
	PublishClaim(ctx context.Context, event ClaimEvent) error
}

// validateLocation rejects roster entries with missing identifying fields.
func validateLocation(loc domain.Location) error {
	if loc.Name == "" {
		return fmt.Errorf("%w: location name is required", domain.ErrInvalidInput)
	}
	return validateCoordinates(loc.Latitude, loc.Longitude)
}

func validateCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return fmt.Errorf("%w: coordinates must be finite", domain.ErrInvalidInput)
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range", domain.ErrInvalidInput, lat)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range", domain.ErrInvalidInput, lon)
	}
	return nil
}
