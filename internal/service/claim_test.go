package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/couchcryptid/climate-risk-service/internal/domain"
	"github.com/couchcryptid/climate-risk-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimService_Assess(t *testing.T) {
	req := service.AssessRequest{
		LocationName: "Houston, TX",
		DisasterType: "flood",
		Latitude:     29.76,
		Longitude:    -95.37,
	}

	t.Run("assesses against fetched conditions", func(t *testing.T) {
		freezeDomain(t)

		signals := &stubSignals{signal: domain.RawSignal{
			Temperature:   f64(22),
			Precipitation: f64(80),
			WindSpeed:     f64(45),
		}}
		svc := service.NewClaimService(signals, nil, discardLogger(), testMetrics())

		a, err := svc.Assess(context.Background(), req)
		require.NoError(t, err)

		// 0.3 + 80/100 with zero jitter, clamped to 1.0.
		assert.Equal(t, 1.0, a.DamageScore)
		assert.Equal(t, 180000, a.ClaimAmountUSD)
		assert.Equal(t, domain.ClaimApproved, a.ClaimStatus)
		assert.True(t, a.AutoApproved)
		assert.Equal(t, 80.0, a.Analysis.Precipitation)
		assert.Equal(t, "2026-03-14", a.DateAnalyzed)
	})

	t.Run("auto-approved claims are published", func(t *testing.T) {
		freezeDomain(t)

		signals := &stubSignals{signal: domain.RawSignal{Precipitation: f64(80)}}
		pub := &recordingPublisher{}
		svc := service.NewClaimService(signals, pub, discardLogger(), testMetrics())

		_, err := svc.Assess(context.Background(), req)
		require.NoError(t, err)

		require.Len(t, pub.claims, 1)
		assert.Equal(t, "Houston, TX", pub.claims[0].LocationName)
		assert.Equal(t, domain.DisasterFlood, pub.claims[0].DisasterType)
		assert.True(t, pub.claims[0].Assessment.AutoApproved)
	})

	t.Run("rejected claims are not published", func(t *testing.T) {
		freezeDomain(t)

		// Defaults with zero jitter: flood score 0.3, rejected.
		signals := &stubSignals{err: errors.New("provider down")}
		pub := &recordingPublisher{}
		svc := service.NewClaimService(signals, pub, discardLogger(), testMetrics())

		a, err := svc.Assess(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, domain.ClaimRejected, a.ClaimStatus)
		assert.Empty(t, pub.claims)
	})

	t.Run("unrecognized disaster type is rejected", func(t *testing.T) {
		svc := service.NewClaimService(&stubSignals{}, nil, discardLogger(), testMetrics())

		bad := req
		bad.DisasterType = "meteor"
		_, err := svc.Assess(context.Background(), bad)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing location name is rejected", func(t *testing.T) {
		svc := service.NewClaimService(&stubSignals{}, nil, discardLogger(), testMetrics())

		bad := req
		bad.LocationName = ""
		_, err := svc.Assess(context.Background(), bad)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("publish failure does not fail the assessment", func(t *testing.T) {
		freezeDomain(t)

		signals := &stubSignals{signal: domain.RawSignal{Precipitation: f64(80)}}
		pub := &recordingPublisher{err: errors.New("broker unavailable")}
		svc := service.NewClaimService(signals, pub, discardLogger(), testMetrics())

		a, err := svc.Assess(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, a.AutoApproved)
	})
}
