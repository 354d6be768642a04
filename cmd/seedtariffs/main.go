// Command seedtariffs converts a tariff spreadsheet (or any supported tariff
// source) into the JSON file the server loads at startup.
// Usage: go run ./cmd/seedtariffs <input.xlsx|input.json|s3://bucket/key> [output.json]
// Output defaults to data/tariffs.json.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"logistics/internal/config"
	"logistics/internal/domain"
	"logistics/internal/port"
	"logistics/internal/source"
	s3storage "logistics/internal/storage/s3"
)

const defaultOutPath = "data/tariffs.json"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: seedtariffs <input> [output.json]")
	}
	outPath := defaultOutPath
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg.Tariffs.Source = os.Args[1]

	ctx := context.Background()
	src, err := source.NewSource(&cfg.Tariffs, func() (port.ObjectStorage, error) {
		return s3storage.NewS3Client(ctx, &cfg.S3)
	})
	if err != nil {
		return fmt.Errorf("creating source: %w", err)
	}

	records, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading %s: %w", src.Name(), err)
	}

	valid := make([]domain.TariffRecord, 0, len(records))
	for i := range records {
		if verr := records[i].Validate(); verr != nil {
			log.Printf("skipping record %d: %v", i, verr)
			continue
		}
		valid = append(valid, records[i])
	}

	// Duplicates are dropped here so the seed file has one record per destination.
	var out []domain.TariffRecord
	seen := make(map[string]bool, len(valid))
	for _, r := range valid {
		key := strings.ToLower(r.Destination)
		if seen[key] {
			log.Printf("dropping duplicate destination %q", r.Destination)
			continue
		}
		seen[key] = true
		out = append(out, r)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tariffs: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	log.Printf("wrote %d tariffs (%d duplicates dropped) to %s", len(out), len(valid)-len(out), outPath)
	return nil
}
