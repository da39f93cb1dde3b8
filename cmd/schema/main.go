package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"eventchance/pkg/maps"
)

func main() {
	var outPath string
	var samplesDir string
	flag.StringVar(&outPath, "out", "", "path to write the map file JSON schema")
	flag.StringVar(&samplesDir, "samples", "", "optional directory to write the built-in sample maps to")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	if err := writeSchema(outPath, buildSchema()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}

	if samplesDir != "" {
		if err := writeSamples(samplesDir); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write sample maps: %v\n", err)
			os.Exit(1)
		}
	}
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
	}
	schema := reflector.Reflect(new(maps.Map))
	schema.Title = "Event chance map"
	schema.Description = "Validates map files MapNNN.json with tagged objects"
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}

func writeSamples(dir string) error {
	lib := maps.Samples()
	for _, id := range lib.IDs() {
		m, err := lib.Load(context.Background(), id)
		if err != nil {
			return err
		}
		if err := maps.WriteFile(dir, m); err != nil {
			return err
		}
	}
	return nil
}
