package config

import (
	"fmt"
	"os"

	"github.com/couchcryptid/climate-risk-service/internal/domain"
	"gopkg.in/yaml.v3"
)

// rosterFile is the YAML shape of a monitored-location roster.
type rosterFile struct {
	Locations []domain.Location `yaml:"locations"`
}

// LoadRoster reads the monitored-location roster from a YAML file.
// An empty path returns the built-in default roster.
func LoadRoster(path string) ([]domain.Location, error) {
	if path == "" {
		return DefaultRoster(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	if len(file.Locations) == 0 {
		return nil, fmt.Errorf("roster %s contains no locations", path)
	}

	for _, loc := range file.Locations {
		if loc.Name == "" {
			return nil, fmt.Errorf("roster %s: every location needs a name", path)
		}
	}

	return file.Locations, nil
}

// DefaultRoster returns the built-in monitored locations. The prone flags
// are part of the roster data; rule activation never infers them from
// location names.
func DefaultRoster() []domain.Location {
	return []domain.Location{
		{Name: "Houston, TX", Latitude: 29.7604, Longitude: -95.3698, FloodProne: true},
		{Name: "Los Angeles, CA", Latitude: 34.0522, Longitude: -118.2437, WildfireProne: true},
		{Name: "Miami, FL", Latitude: 25.7617, Longitude: -80.1918, FloodProne: true},
		{Name: "San Francisco, CA", Latitude: 37.7749, Longitude: -122.4194, WildfireProne: true},
		{Name: "New York, NY", Latitude: 40.7128, Longitude: -74.0060},
		{Name: "Denver, CO", Latitude: 39.7392, Longitude: -104.9903},
	}
}
