package domain

import "math"

// HazardScores holds the four independent hazard sub-scores for a location.
// Each is in [0.0, 1.0], rounded to two decimal places.
type HazardScores struct {
	FloodRisk         float64 `json:"flood_risk"`
	WildfireRisk      float64 `json:"wildfire_risk"`
	StormRisk         float64 `json:"storm_risk"`
	VegetationDryness float64 `json:"vegetation_dryness"`
}

// IsCoastal classifies a location as coastal: low latitude and low elevation.
// Latitudes past 45° are treated as inland regardless of elevation.
func IsCoastal(latitude, elevation float64) bool {
	return math.Abs(latitude) < 45 && elevation < 50
}

// ScoreHazards computes the four hazard sub-scores from a normalized signal.
//
// Each formula is a threshold branch (the qualitative jump past a danger
// point) plus a linear ramp below it, summed and clamped to [0,1]. The
// heuristics are deliberately simple so outputs stay reproducible and
// auditable; see the package documentation for the full term tables.
func ScoreHazards(sig EnvironmentalSignal) HazardScores {
	coastal := IsCoastal(sig.Latitude, sig.Elevation)

	flood := rampOrStep(sig.Precipitation, 50, 0.3, 166)
	if coastal {
		flood += 0.4
	} else {
		flood += 0.1
	}
	if sig.Elevation < 10 {
		flood += 0.3
	}

	wildfire := rampOrStep(sig.Temperature, 30, 0.4, 75) +
		inverseRampOrStep(sig.Humidity, 30, 0.4, 250)
	if sig.Precipitation < 10 {
		wildfire += 0.2
	}

	storm := rampOrStep(sig.WindSpeed, 50, 0.5, 100)
	if coastal {
		storm += 0.3
	} else {
		storm += 0.1
	}
	if sig.Precipitation > 30 {
		storm += 0.2
	}

	dryness := rampOrStep(sig.Temperature, 25, 0.4, 62.5) +
		inverseRampOrStep(sig.Humidity, 40, 0.4, 166)
	if sig.Precipitation < 20 {
		dryness += 0.2
	}

	return HazardScores{
		FloodRisk:         Round2(clamp01(flood)),
		WildfireRisk:      Round2(clamp01(wildfire)),
		StormRisk:         Round2(clamp01(storm)),
		VegetationDryness: Round2(clamp01(dryness)),
	}
}

// rampOrStep returns the fixed step contribution when the value exceeds the
// threshold, otherwise the linear ramp value/divisor.
func rampOrStep(value, threshold, step, divisor float64) float64 {
	if value > threshold {
		return step
	}
	return value / divisor
}

// inverseRampOrStep is the falling-value variant: the step applies below the
// threshold, the ramp (100-value)/divisor above it. Used for humidity, where
// dryness drives risk.
func inverseRampOrStep(value, threshold, step, divisor float64) float64 {
	if value < threshold {
		return step
	}
	return (100 - value) / divisor
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
