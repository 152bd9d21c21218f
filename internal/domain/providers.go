package domain

import "context"

// SignalProvider fetches current environmental conditions for a coordinate.
type SignalProvider interface {
	// FetchSignal returns the raw signal for a coordinate, with whatever
	// fields the upstream source could supply. Elevation is not included;
	// it comes from a separate ElevationProvider.
	FetchSignal(ctx context.Context, lat, lon float64) (RawSignal, error)
}

// ElevationProvider looks up terrain elevation for a coordinate.
type ElevationProvider interface {
	// FetchElevation returns the elevation in meters.
	FetchElevation(ctx context.Context, lat, lon float64) (float64, error)
}
