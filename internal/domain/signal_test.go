package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestNormalize(t *testing.T) {
	t.Run("empty raw signal gets all defaults", func(t *testing.T) {
		sig := Normalize(RawSignal{Latitude: 29.76, Longitude: -95.37})

		assert.Equal(t, DefaultTemperature, sig.Temperature)
		assert.Equal(t, DefaultHumidity, sig.Humidity)
		assert.Equal(t, DefaultPrecipitation, sig.Precipitation)
		assert.Equal(t, DefaultWindSpeed, sig.WindSpeed)
		assert.Equal(t, DefaultElevation, sig.Elevation)
		assert.Equal(t, 29.76, sig.Latitude)
		assert.Equal(t, -95.37, sig.Longitude)
		assert.Nil(t, sig.HourlyPrecipitation)
	})

	t.Run("populated fields pass through", func(t *testing.T) {
		sig := Normalize(RawSignal{
			Temperature:         f64(35),
			Humidity:            f64(20),
			Precipitation:       f64(12.5),
			WindSpeed:           f64(80),
			Elevation:           f64(5),
			HourlyPrecipitation: []float64{1, 2, 3},
		})

		assert.Equal(t, 35.0, sig.Temperature)
		assert.Equal(t, 20.0, sig.Humidity)
		assert.Equal(t, 12.5, sig.Precipitation)
		assert.Equal(t, 80.0, sig.WindSpeed)
		assert.Equal(t, 5.0, sig.Elevation)
		assert.Equal(t, []float64{1, 2, 3}, sig.HourlyPrecipitation)
	})

	t.Run("non-finite values fall back to defaults", func(t *testing.T) {
		sig := Normalize(RawSignal{
			Temperature:         f64(math.NaN()),
			WindSpeed:           f64(math.Inf(1)),
			HourlyPrecipitation: []float64{1, math.NaN(), math.Inf(-1), 4},
		})

		assert.Equal(t, DefaultTemperature, sig.Temperature)
		assert.Equal(t, DefaultWindSpeed, sig.WindSpeed)
		assert.Equal(t, []float64{1, 0, 0, 4}, sig.HourlyPrecipitation)
	})
}

func TestRainfall24h(t *testing.T) {
	tests := []struct {
		name     string
		hourly   []float64
		expected float64
	}{
		{"empty series", nil, 0},
		{"short series summed in full", []float64{2, 3, 5}, 10},
		{"exactly 24 samples", repeat(1.5, 24), 36},
		{"only first 24 of longer series", append(repeat(2, 24), 100, 100), 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Rainfall24h(tt.hourly), 1e-9)
		})
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
