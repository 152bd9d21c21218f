package domain

import (
	"fmt"
	"math"
)

// Location is one entry of the monitored roster. The prone flags are
// structured attributes set in configuration; rule activation never infers
// them from the display name.
type Location struct {
	Name          string  `json:"name" yaml:"name"`
	Latitude      float64 `json:"latitude" yaml:"latitude"`
	Longitude     float64 `json:"longitude" yaml:"longitude"`
	FloodProne    bool    `json:"flood_prone" yaml:"flood_prone"`
	WildfireProne bool    `json:"wildfire_prone" yaml:"wildfire_prone"`
}

// ParametricTrigger is one evaluated threshold rule for one location.
// Triggered is always recomputed from CurrentValue and Threshold.
type ParametricTrigger struct {
	TriggerID    string  `json:"trigger_id"`
	Parameter    string  `json:"parameter"`
	Threshold    float64 `json:"threshold"`
	CurrentValue float64 `json:"current_value"`
	Triggered    bool    `json:"triggered"`
	LocationName string  `json:"location_name"`
	DateChecked  string  `json:"date_checked"`
}

// Trigger rule thresholds, the contractual payout boundaries.
const (
	WindSpeedThreshold  = 150.0 // km/h
	RainfallThreshold   = 200.0 // mm over 24h
	RiverLevelThreshold = 5.0   // m
	AQIThreshold        = 180.0
)

// EvaluateTriggers evaluates every active parametric rule for a location
// against a normalized signal and returns one trigger record per active
// rule. TriggerID is left empty; batch callers assign sequential IDs with
// [AssignTriggerIDs] once the full batch is collected.
//
// Wind speed and rainfall rules are always active. The river level rule is
// active for flood-prone locations, with the level derived from 24h rainfall.
// The air quality rule is active for wildfire-prone locations; its value
// comes from a bounded stub until a real AQI feed is wired in.
func EvaluateTriggers(loc Location, sig EnvironmentalSignal) []ParametricTrigger {
	rainfall24h := Rainfall24h(sig.HourlyPrecipitation)
	date := today()

	triggers := []ParametricTrigger{
		newTrigger("Wind Speed (km/h)", WindSpeedThreshold, math.Round(sig.WindSpeed), loc.Name, date),
		newTrigger("Rainfall (mm)", RainfallThreshold, math.Round(rainfall24h), loc.Name, date),
	}

	if loc.FloodProne {
		level := riverLevel(rainfall24h)
		triggers = append(triggers,
			newTrigger("River Level (m)", RiverLevelThreshold, round1(level), loc.Name, date))
	}

	if loc.WildfireProne {
		triggers = append(triggers,
			newTrigger("Air Quality Index", AQIThreshold, math.Round(stubAQI()), loc.Name, date))
	}

	return triggers
}

// AssignTriggerIDs numbers a batch sequentially: T01, T02, ...
// The sequence restarts at the start of every evaluation batch.
func AssignTriggerIDs(triggers []ParametricTrigger) {
	for i := range triggers {
		triggers[i].TriggerID = fmt.Sprintf("T%02d", i+1)
	}
}

func newTrigger(parameter string, threshold, current float64, locationName, date string) ParametricTrigger {
	return ParametricTrigger{
		Parameter:    parameter,
		Threshold:    threshold,
		CurrentValue: current,
		Triggered:    current >= threshold,
		LocationName: locationName,
		DateChecked:  date,
	}
}

// riverLevel derives a river gauge estimate from accumulated rainfall:
// a 3m base stage plus 1m for every 50mm of 24h rainfall.
func riverLevel(rainfall24h float64) float64 {
	return 3 + rainfall24h/50
}

// stubAQI produces a bounded placeholder AQI in [100, 250).
// TODO: replace with a real AQI provider once one is selected; the numeric
// generation here is a stub, not a contract.
func stubAQI() float64 {
	return 100 + rng.Float64()*150
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
