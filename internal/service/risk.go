package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/couchcryptid/climate-risk-service/internal/domain"
	"github.com/couchcryptid/climate-risk-service/internal/observability"
)

// RiskService computes composite risk profiles from live environmental data.
type RiskService struct {
	signals    domain.SignalProvider
	elevations domain.ElevationProvider
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewRiskService creates a RiskService over the given providers.
func NewRiskService(signals domain.SignalProvider, elevations domain.ElevationProvider, logger *slog.Logger, metrics *observability.Metrics) *RiskService {
	return &RiskService{
		signals:    signals,
		elevations: elevations,
		logger:     logger,
		metrics:    metrics,
	}
}

// ProfileBatch holds the successfully computed profiles of a batch plus a
// failure record per skipped location.
type ProfileBatch struct {
	Profiles []domain.RiskProfile `json:"profiles"`
	Failures []LocationFailure    `json:"failures,omitempty"`
}

// ComputeProfile evaluates the risk pipeline for a single location.
// Upstream fetch failures degrade to normalizer defaults rather than
// failing: missing data is reduced precision, not an error. Only invalid
// identifying fields reject the request.
func (s *RiskService) ComputeProfile(ctx context.Context, loc domain.Location) (domain.RiskProfile, error) {
	if err := validateLocation(loc); err != nil {
		return domain.RiskProfile{}, err
	}

	start := time.Now()
	defer func() {
		s.metrics.ProfileDuration.Observe(time.Since(start).Seconds())
	}()

	raw, err := s.signals.FetchSignal(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		s.logger.Warn("signal fetch failed, substituting defaults",
			"location", loc.Name, "error", err)
		raw = domain.RawSignal{}
	}
	s.fillElevation(ctx, loc, &raw)

	profile := s.buildProfile(loc, raw)
	s.metrics.ProfilesComputed.Inc()
	return profile, nil
}

// ComputeProfiles evaluates the roster concurrently, one goroutine per
// location. In batch mode a failed signal fetch skips the location and
// records the failure; sibling evaluations are unaffected. Results are
// returned in roster order.
func (s *RiskService) ComputeProfiles(ctx context.Context, roster []domain.Location) ProfileBatch {
	start := time.Now()
	defer func() {
		s.metrics.BatchDuration.Observe(time.Since(start).Seconds())
	}()

	type result struct {
		profile domain.RiskProfile
		err     error
	}
	results := make([]result, len(roster))

	var wg sync.WaitGroup
	for i, loc := range roster {
		wg.Add(1)
		go func(i int, loc domain.Location) {
			defer wg.Done()
			if err := validateLocation(loc); err != nil {
				results[i] = result{err: err}
				return
			}
			raw, err := s.signals.FetchSignal(ctx, loc.Latitude, loc.Longitude)
			if err != nil {
				results[i] = result{err: err}
				return
			}
			s.fillElevation(ctx, loc, &raw)
			results[i] = result{profile: s.buildProfile(loc, raw)}
		}(i, loc)
	}
	wg.Wait()

	batch := ProfileBatch{Profiles: make([]domain.RiskProfile, 0, len(roster))}
	for i, r := range results {
		if r.err != nil {
			s.logger.Warn("skipping location in batch",
				"location", roster[i].Name, "error", r.err)
			s.metrics.LocationsSkipped.Inc()
			batch.Failures = append(batch.Failures, LocationFailure{
				LocationName: roster[i].Name,
				Error:        r.err.Error(),
			})
			continue
		}
		s.metrics.ProfilesComputed.Inc()
		batch.Profiles = append(batch.Profiles, r.profile)
	}
	return batch
}

// fillElevation resolves terrain elevation into the raw signal. A lookup
// failure leaves elevation unset so normalization applies the default.
func (s *RiskService) fillElevation(ctx context.Context, loc domain.Location, raw *domain.RawSignal) {
	elevation, err := s.elevations.FetchElevation(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		s.logger.Warn("elevation fetch failed, substituting default",
			"location", loc.Name, "error", err)
		return
	}
	raw.Elevation = &elevation
}

func (s *RiskService) buildProfile(loc domain.Location, raw domain.RawSignal) domain.RiskProfile {
	raw.Latitude = loc.Latitude
	raw.Longitude = loc.Longitude
	sig := domain.Normalize(raw)
	return domain.BuildRiskProfile(loc.Name, sig, domain.ScoreHazards(sig))
}
