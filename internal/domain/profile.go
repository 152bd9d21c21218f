package domain

import "math"

// CurrentWeather echoes the conditions a risk profile was computed from.
type CurrentWeather struct {
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	Precipitation float64 `json:"precipitation"`
	WindSpeed     float64 `json:"wind_speed"`
}

// RiskProfile is the composite risk assessment for one location at one
// point in time. It is computed on demand and immutable once produced.
type RiskProfile struct {
	LocationName string  `json:"location_name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`

	HazardScores

	AvgTempC         int             `json:"avg_temp_c"`
	SeaLevelRiseM    float64         `json:"sea_level_rise_m"`
	HistoricalEvents int             `json:"historical_events"`
	RiskScore        int             `json:"risk_score"`
	Elevation        float64         `json:"elevation,omitempty"`
	CurrentWeather   *CurrentWeather `json:"current_weather,omitempty"`
}

// RiskBand is the coarse classification of a composite risk score.
type RiskBand string

const (
	RiskLow    RiskBand = "Low"
	RiskMedium RiskBand = "Medium"
	RiskHigh   RiskBand = "High"
)

// ClassifyRisk maps a 0-100 composite score to its band. Bands are
// contiguous and closed on their lower bound: >=70 High, >=50 Medium.
func ClassifyRisk(score int) RiskBand {
	switch {
	case score >= 70:
		return RiskHigh
	case score >= 50:
		return RiskMedium
	default:
		return RiskLow
	}
}

// BuildRiskProfile aggregates hazard sub-scores and the source signal into a
// RiskProfile.
//
// The composite score weights each sub-score equally at 25 points.
// historical_events is a weighted proxy derived from the sub-scores, not a
// measured count. Sea level rise applies to coastal locations only.
func BuildRiskProfile(locationName string, sig EnvironmentalSignal, scores HazardScores) RiskProfile {
	coastal := IsCoastal(sig.Latitude, sig.Elevation)

	seaLevelRise := 0.0
	if coastal {
		seaLevelRise = Round2(0.5 * scores.FloodRisk)
	}

	return RiskProfile{
		LocationName:  locationName,
		Latitude:      sig.Latitude,
		Longitude:     sig.Longitude,
		HazardScores:  scores,
		AvgTempC:      int(math.Round(sig.Temperature)),
		SeaLevelRiseM: seaLevelRise,
		HistoricalEvents: int(math.Round(
			10*scores.FloodRisk + 10*scores.StormRisk + 5*scores.WildfireRisk)),
		RiskScore: int(math.Round(25 * (scores.FloodRisk + scores.WildfireRisk +
			scores.StormRisk + scores.VegetationDryness))),
		Elevation: sig.Elevation,
		CurrentWeather: &CurrentWeather{
			Temperature:   sig.Temperature,
			Humidity:      sig.Humidity,
			Precipitation: sig.Precipitation,
			WindSpeed:     sig.WindSpeed,
		},
	}
}
