package domain

import "math"

// Fallback values substituted for missing or non-finite signal fields.
// Absence of upstream data degrades precision, it is never an error.
const (
	DefaultTemperature   = 20.0 // °C
	DefaultHumidity      = 50.0 // %
	DefaultPrecipitation = 0.0  // mm
	DefaultWindSpeed     = 0.0  // km/h
	DefaultElevation     = 0.0  // m
)

// RawSignal is a partially-populated environmental observation as returned
// by an upstream weather provider. Nil fields mean the provider omitted them.
type RawSignal struct {
	Temperature         *float64  // °C
	Humidity            *float64  // relative humidity, %
	Precipitation       *float64  // instantaneous, mm
	HourlyPrecipitation []float64 // most recent hourly samples, mm
	WindSpeed           *float64  // km/h
	Elevation           *float64  // m
	Latitude            float64
	Longitude           float64
}

// EnvironmentalSignal is a fully-populated observation. Every field carries a
// usable value so downstream formulas never see an undefined input.
type EnvironmentalSignal struct {
	Temperature         float64   `json:"temperature"`
	Humidity            float64   `json:"humidity"`
	Precipitation       float64   `json:"precipitation"`
	HourlyPrecipitation []float64 `json:"-"`
	WindSpeed           float64   `json:"wind_speed"`
	Elevation           float64   `json:"elevation"`
	Latitude            float64   `json:"latitude"`
	Longitude           float64   `json:"longitude"`
}

// Normalize fills in the documented fallback for every missing or non-finite
// field of a raw signal. It never fails.
func Normalize(raw RawSignal) EnvironmentalSignal {
	return EnvironmentalSignal{
		Temperature:         valueOr(raw.Temperature, DefaultTemperature),
		Humidity:            valueOr(raw.Humidity, DefaultHumidity),
		Precipitation:       valueOr(raw.Precipitation, DefaultPrecipitation),
		HourlyPrecipitation: finiteSamples(raw.HourlyPrecipitation),
		WindSpeed:           valueOr(raw.WindSpeed, DefaultWindSpeed),
		Elevation:           valueOr(raw.Elevation, DefaultElevation),
		Latitude:            raw.Latitude,
		Longitude:           raw.Longitude,
	}
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return fallback
	}
	return *v
}

// finiteSamples copies an hourly series, replacing non-finite samples with 0.
func finiteSamples(samples []float64) []float64 {
	if len(samples) == 0 {
		return nil
	}
	out := make([]float64, len(samples))
	for i, s := range samples {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			continue
		}
		out[i] = s
	}
	return out
}

// Rainfall24h sums the most recent 24 hourly precipitation samples.
// Series shorter than 24 samples are summed in full.
func Rainfall24h(hourly []float64) float64 {
	n := len(hourly)
	if n > 24 {
		n = 24
	}
	var sum float64
	for _, v := range hourly[:n] {
		sum += v
	}
	return sum
}
