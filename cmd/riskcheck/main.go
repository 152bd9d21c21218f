// Command riskcheck runs a one-shot evaluation for a single location against
// the live data providers and prints the result as JSON. Useful for spot
// checks and for validating provider connectivity without running the daemon.
//
// Usage:
//
//	go run ./cmd/riskcheck -name "Miami, FL" -lat 25.7617 -lon -80.1918
//	go run ./cmd/riskcheck -name "Miami, FL" -lat 25.7617 -lon -80.1918 -triggers -flood-prone
//	go run ./cmd/riskcheck -name "Miami, FL" -lat 25.7617 -lon -80.1918 -disaster hurricane
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/couchcryptid/climate-risk-service/internal/adapter/openelevation"
	"github.com/couchcryptid/climate-risk-service/internal/adapter/openmeteo"
	"github.com/couchcryptid/climate-risk-service/internal/config"
	"github.com/couchcryptid/climate-risk-service/internal/domain"
	"github.com/couchcryptid/climate-risk-service/internal/observability"
	"github.com/couchcryptid/climate-risk-service/internal/service"
)

func main() {
	name := flag.String("name", "", "location name (required)")
	lat := flag.Float64("lat", 0, "latitude in decimal degrees")
	lon := flag.Float64("lon", 0, "longitude in decimal degrees")
	triggers := flag.Bool("triggers", false, "evaluate parametric triggers instead of the risk profile")
	floodProne := flag.Bool("flood-prone", false, "location is monitored for river flooding")
	wildfireProne := flag.Bool("wildfire-prone", false, "location is monitored for wildfire air quality")
	disaster := flag.String("disaster", "", "assess a damage claim for this disaster type instead of the risk profile")
	timeout := flag.Duration("timeout", 30*time.Second, "overall timeout")
	flag.Parse()

	if *name == "" {
		flag.Usage()
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// Quiet logger; the JSON result is the output.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetrics()

	signals := openmeteo.NewClient(cfg.WeatherBaseURL, cfg.ProviderTimeout, metrics, logger)
	elevations := openelevation.NewClient(cfg.ElevationBaseURL, cfg.ProviderTimeout, metrics, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	loc := domain.Location{
		Name:          *name,
		Latitude:      *lat,
		Longitude:     *lon,
		FloodProne:    *floodProne,
		WildfireProne: *wildfireProne,
	}

	var result any
	switch {
	case *triggers:
		svc := service.NewTriggerService(signals, nil, logger, metrics)
		result = svc.Evaluate(ctx, []domain.Location{loc})
	case *disaster != "":
		svc := service.NewClaimService(signals, nil, logger, metrics)
		result, err = svc.Assess(ctx, service.AssessRequest{
			LocationName: *name,
			DisasterType: *disaster,
			Latitude:     *lat,
			Longitude:    *lon,
		})
	default:
		svc := service.NewRiskService(signals, elevations, logger, metrics)
		var profile domain.RiskProfile
		profile, err = svc.ComputeProfile(ctx, loc)
		if err == nil {
			result = struct {
				domain.RiskProfile
				RiskBand domain.RiskBand `json:"risk_band"`
			}{profile, domain.ClassifyRisk(profile.RiskScore)}
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "evaluation failed: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "encode result: %v\n", err)
		os.Exit(1)
	}
}
