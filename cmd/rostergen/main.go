// Command rostergen writes a monitored-location roster as YAML, seeded from
// the built-in defaults. Use it to bootstrap a roster file for ROSTER_PATH,
// then edit coordinates and prone flags to match the locations you monitor.
//
// Usage:
//
//	go run ./cmd/rostergen -out roster.yaml
//	go run ./cmd/rostergen                 # print to stdout
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/climate-risk-service/internal/config"
	"github.com/couchcryptid/climate-risk-service/internal/domain"
)

type rosterDoc struct {
	Locations []domain.Location `yaml:"locations"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path; empty prints to stdout")
	flag.Parse()

	data, err := yaml.Marshal(rosterDoc{Locations: config.DefaultRoster()})
	if err != nil {
		return fmt.Errorf("marshal roster: %w", err)
	}

	if *out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return fmt.Errorf("write roster: %w", err)
	}

	// Round-trip through the loader so a generated file is known-good.
	if _, err := config.LoadRoster(*out); err != nil {
		return fmt.Errorf("generated roster failed validation: %w", err)
	}

	fmt.Printf("wrote %d locations to %s\n", len(config.DefaultRoster()), *out)
	return nil
}
