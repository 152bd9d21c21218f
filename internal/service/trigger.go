package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/couchcryptid/climate-risk-service/internal/domain"
	"github.com/couchcryptid/climate-risk-service/internal/observability"
)

// TriggerService evaluates parametric insurance triggers over a location
// roster.
type TriggerService struct {
	signals   domain.SignalProvider
	publisher EventPublisher // optional
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// NewTriggerService creates a TriggerService. publisher may be nil, in which
// case breached triggers are not forwarded anywhere.
func NewTriggerService(signals domain.SignalProvider, publisher EventPublisher, logger *slog.Logger, metrics *observability.Metrics) *TriggerService {
	return &TriggerService{
		signals:   signals,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
}

// TriggerBatch is the outcome of one batch evaluation: the trigger records
// in roster order plus a failure record per skipped location.
type TriggerBatch struct {
	Triggers []domain.ParametricTrigger `json:"triggers"`
	Failures []LocationFailure          `json:"failures,omitempty"`
}

// Evaluate runs every active trigger rule for every roster location.
// Fetches fan out concurrently; a per-location fetch failure skips that
// location and the batch continues. Triggers are ordered by roster position
// and numbered sequentially, so output is deterministic for a fixed roster
// and signal set.
func (s *TriggerService) Evaluate(ctx context.Context, roster []domain.Location) TriggerBatch {
	start := time.Now()
	defer func() {
		s.metrics.BatchDuration.Observe(time.Since(start).Seconds())
	}()
	s.metrics.TriggerBatches.Inc()

	type result struct {
		triggers []domain.ParametricTrigger
		err      error
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
			sig := domain.Normalize(raw)
			results[i] = result{triggers: domain.EvaluateTriggers(loc, sig)}
		}(i, loc)
	}
	wg.Wait()

	var batch TriggerBatch
	for i, r := range results {
		if r.err != nil {
			s.logger.Warn("skipping location in trigger batch",
				"location", roster[i].Name, "error", r.err)
			s.metrics.LocationsSkipped.Inc()
			batch.Failures = append(batch.Failures, LocationFailure{
				LocationName: roster[i].Name,
				Error:        r.err.Error(),
			})
			continue
		}
		batch.Triggers = append(batch.Triggers, r.triggers...)
	}
	domain.AssignTriggerIDs(batch.Triggers)

	var breached []domain.ParametricTrigger
	for _, trig := range batch.Triggers {
		s.metrics.TriggersEvaluated.WithLabelValues(trig.Parameter).Inc()
		if trig.Triggered {
			s.metrics.TriggersBreached.WithLabelValues(trig.Parameter).Inc()
			breached = append(breached, trig)
		}
	}

	if s.publisher != nil && len(breached) > 0 {
		if err := s.publisher.PublishTriggers(ctx, breached); err != nil {
			s.logger.Error("publishing breached triggers failed",
				"count", len(breached), "error", err)
		}
	}

	return batch
}
