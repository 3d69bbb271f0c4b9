// contentschema writes the JSON schemas of the content resources so editors
// can validate enemy-types.json and waves.json.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/invopop/jsonschema"

	"github.com/zaptastic/core/internal/data"
)

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "", "directory to write the schemas into")
	flag.Parse()

	if outDir == "" {
		fmt.Fprintln(os.Stderr, "-out is required")
		os.Exit(1)
	}

	schemas := data.Schemas()
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(outDir, name+".schema.json")
		if err := writeSchema(path, schemas[name]); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s schema: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Println("wrote", path)
	}
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	raw, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}
