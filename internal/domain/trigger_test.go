package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same value, making perturbation terms
// deterministic in tests.
type fixedRand struct {
	v float64
}

func (f fixedRand) Float64() float64 { return f.v }

func freezeTime(t *testing.T, at time.Time) {
	t.Helper()
	SetClock(clockwork.NewFakeClockAt(at))
	t.Cleanup(func() { SetClock(nil) })
}

func freezeRand(t *testing.T, v float64) {
	t.Helper()
	SetRand(fixedRand{v: v})
	t.Cleanup(func() { SetRand(nil) })
}

func TestEvaluateTriggers(t *testing.T) {
	checked := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("base rules are always active", func(t *testing.T) {
		freezeTime(t, checked)

		loc := Location{Name: "New York, NY", Latitude: 40.71, Longitude: -74.01}
		sig := EnvironmentalSignal{WindSpeed: 22.4, HourlyPrecipitation: repeat(0.5, 24)}

		triggers := EvaluateTriggers(loc, sig)
		require.Len(t, triggers, 2)

		wind := triggers[0]
		assert.Equal(t, "Wind Speed (km/h)", wind.Parameter)
		assert.Equal(t, 150.0, wind.Threshold)
		assert.Equal(t, 22.0, wind.CurrentValue)
		assert.False(t, wind.Triggered)
		assert.Equal(t, "New York, NY", wind.LocationName)
		assert.Equal(t, "2026-03-14", wind.DateChecked)

		rain := triggers[1]
		assert.Equal(t, "Rainfall (mm)", rain.Parameter)
		assert.Equal(t, 200.0, rain.Threshold)
		assert.Equal(t, 12.0, rain.CurrentValue)
		assert.False(t, rain.Triggered)
	})

	t.Run("breach at exact threshold", func(t *testing.T) {
		freezeTime(t, checked)

		sig := EnvironmentalSignal{WindSpeed: 150, HourlyPrecipitation: repeat(200.0/24, 24)}
		triggers := EvaluateTriggers(Location{Name: "x"}, sig)
		require.Len(t, triggers, 2)

		assert.True(t, triggers[0].Triggered, "wind at threshold")
		assert.True(t, triggers[1].Triggered, "rainfall at threshold")
	})

	t.Run("river level rule for flood-prone location", func(t *testing.T) {
		freezeTime(t, checked)

		loc := Location{Name: "Houston, TX", FloodProne: true}
		// 240mm over 24h: river level = 3 + 240/50 = 7.8m.
		sig := EnvironmentalSignal{HourlyPrecipitation: repeat(10, 24)}

		triggers := EvaluateTriggers(loc, sig)
		require.Len(t, triggers, 3)

		river := triggers[2]
		assert.Equal(t, "River Level (m)", river.Parameter)
		assert.Equal(t, 5.0, river.Threshold)
		assert.Equal(t, 7.8, river.CurrentValue)
		assert.True(t, river.Triggered)
	})

	t.Run("river level below threshold in dry conditions", func(t *testing.T) {
		freezeTime(t, checked)

		loc := Location{Name: "Miami, FL", FloodProne: true}
		triggers := EvaluateTriggers(loc, EnvironmentalSignal{})
		require.Len(t, triggers, 3)

		assert.Equal(t, 3.0, triggers[2].CurrentValue)
		assert.False(t, triggers[2].Triggered)
	})

	t.Run("air quality rule for wildfire-prone location", func(t *testing.T) {
		freezeTime(t, checked)
		freezeRand(t, 0.99)

		loc := Location{Name: "Los Angeles, CA", WildfireProne: true}
		triggers := EvaluateTriggers(loc, EnvironmentalSignal{})
		require.Len(t, triggers, 3)

		aqi := triggers[2]
		assert.Equal(t, "Air Quality Index", aqi.Parameter)
		assert.Equal(t, 180.0, aqi.Threshold)
		// 100 + 0.99*150 = 248.5, rounded up.
		assert.Equal(t, 249.0, aqi.CurrentValue)
		assert.True(t, aqi.Triggered)
	})

	t.Run("air quality stub stays below threshold at low draw", func(t *testing.T) {
		freezeTime(t, checked)
		freezeRand(t, 0)

		loc := Location{Name: "San Francisco, CA", WildfireProne: true}
		triggers := EvaluateTriggers(loc, EnvironmentalSignal{})
		require.Len(t, triggers, 3)

		assert.Equal(t, 100.0, triggers[2].CurrentValue)
		assert.False(t, triggers[2].Triggered)
	})

	t.Run("prone flags combine", func(t *testing.T) {
		freezeTime(t, checked)
		freezeRand(t, 0.5)

		loc := Location{Name: "both", FloodProne: true, WildfireProne: true}
		triggers := EvaluateTriggers(loc, EnvironmentalSignal{})
		require.Len(t, triggers, 4)
	})
}

func TestAssignTriggerIDs(t *testing.T) {
	triggers := make([]ParametricTrigger, 12)
	AssignTriggerIDs(triggers)

	assert.Equal(t, "T01", triggers[0].TriggerID)
	assert.Equal(t, "T02", triggers[1].TriggerID)
	assert.Equal(t, "T09", triggers[8].TriggerID)
	assert.Equal(t, "T10", triggers[9].TriggerID)
	assert.Equal(t, "T12", triggers[11].TriggerID)
}
