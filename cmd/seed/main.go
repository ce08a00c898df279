// Command seed writes the built-in content dataset to a JSON file.
// Operators edit the file and point CATALOG_PATH at it to serve their
// own content.
package main

import (
	"encoding/json/jsontext"
	"encoding/json/v2"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/writermorphosis/writermorphosis-server/internal/content"
)

func main() {
	output := flag.String("o", "catalog.json", "Output path for the dataset")
	force := flag.Bool("f", false, "Overwrite an existing file")
	flag.Parse()

	if _, err := os.Stat(*output); err == nil && !*force {
		log.Fatalf("%s already exists, pass -f to overwrite", *output)
	}

	ds := content.DefaultDataset()

	// Round-trip through the catalog builder so a broken edit to this
	// tool fails here, not at server startup.
	catalog, err := content.New(ds)
	if err != nil {
		log.Fatalf("Built-in dataset failed validation: %v", err)
	}
	for _, warning := range catalog.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	f, err := os.Create(*output) //#nosec G304 -- output path is operator input
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()

	if err := json.MarshalWrite(f, ds, jsontext.WithIndent("  ")); err != nil {
		log.Fatalf("Failed to write dataset: %v", err)
	}

	fmt.Printf("Wrote %d posts, %d categories, %d quizzes to %s\n",
		len(ds.Posts), len(ds.Categories), len(ds.Quizzes), *output)
}
