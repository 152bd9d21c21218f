package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRiskProfile(t *testing.T) {
	miami := EnvironmentalSignal{
		Temperature: 35, Humidity: 20, Precipitation: 0,
		WindSpeed: 10, Elevation: 5, Latitude: 25.7, Longitude: -80.2,
	}

	t.Run("coastal profile", func(t *testing.T) {
		scores := ScoreHazards(miami)
		profile := BuildRiskProfile("Miami, FL", miami, scores)

		assert.Equal(t, "Miami, FL", profile.LocationName)
		assert.Equal(t, 25.7, profile.Latitude)
		assert.Equal(t, -80.2, profile.Longitude)
		assert.Equal(t, scores, profile.HazardScores)
		assert.Equal(t, 35, profile.AvgTempC)
		// round(25 * (0.7 + 1.0 + 0.4 + 1.0))
		assert.Equal(t, 78, profile.RiskScore)
		// round(10*0.7 + 10*0.4 + 5*1.0)
		assert.Equal(t, 16, profile.HistoricalEvents)
		// round2(0.5 * 0.7)
		assert.Equal(t, 0.35, profile.SeaLevelRiseM)
		assert.Equal(t, 5.0, profile.Elevation)

		require.NotNil(t, profile.CurrentWeather)
		assert.Equal(t, 35.0, profile.CurrentWeather.Temperature)
		assert.Equal(t, 20.0, profile.CurrentWeather.Humidity)
		assert.Equal(t, 10.0, profile.CurrentWeather.WindSpeed)
	})

	t.Run("inland profile has no sea level rise", func(t *testing.T) {
		inland := EnvironmentalSignal{
			Temperature: 20, Humidity: 50, Precipitation: 0,
			WindSpeed: 0, Elevation: 1609, Latitude: 39.74, Longitude: -104.99,
		}
		profile := BuildRiskProfile("Denver, CO", inland, ScoreHazards(inland))

		assert.Equal(t, 0.0, profile.SeaLevelRiseM)
	})

	t.Run("risk score is always in range", func(t *testing.T) {
		combos := []HazardScores{
			{},
			{FloodRisk: 1, WildfireRisk: 1, StormRisk: 1, VegetationDryness: 1},
			{FloodRisk: 0.33, WildfireRisk: 0.47, StormRisk: 0.99, VegetationDryness: 0.01},
		}
		for _, scores := range combos {
			profile := BuildRiskProfile("x", EnvironmentalSignal{}, scores)
			assert.GreaterOrEqual(t, profile.RiskScore, 0)
			assert.LessOrEqual(t, profile.RiskScore, 100)
		}
	})

	t.Run("identical inputs yield identical profiles", func(t *testing.T) {
		scores := ScoreHazards(miami)
		p1 := BuildRiskProfile("Miami, FL", miami, scores)
		p2 := BuildRiskProfile("Miami, FL", miami, scores)

		assert.Empty(t, cmp.Diff(p1, p2))
	})
}

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		score    int
		expected RiskBand
	}{
		{0, RiskLow},
		{49, RiskLow},
		{50, RiskMedium},
		{69, RiskMedium},
		{70, RiskHigh},
		{100, RiskHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyRisk(tt.score), "score %d", tt.score)
	}
}

func TestClassifyRisk_TotalAndExclusive(t *testing.T) {
	// Every integer score maps to exactly one band.
	for score := 0; score <= 100; score++ {
		band := ClassifyRisk(score)
		assert.Contains(t, []RiskBand{RiskLow, RiskMedium, RiskHigh}, band)
	}
}
