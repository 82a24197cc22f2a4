// Command gtfsindex loads a GTFS feed directory and writes a JSON summary
// of the derived index, for inspecting a feed before pointing the server
// at it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"triphub/gtfs"
)

func main() {
	var dir string
	var out string
	flag.StringVar(&dir, "dir", "./data/gtfs", "Path to GTFS directory containing the five required .txt files")
	flag.StringVar(&out, "out", "", "Path to write the JSON summary (default: stdout)")
	flag.Parse()

	log.Printf("Loading GTFS from %s...", dir)
	idx, err := gtfs.Load(dir)
	if err != nil {
		log.Fatalf("failed to load GTFS: %v", err)
	}

	summary := idx.Summary()
	encoded, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Fatalf("failed to encode summary: %v", err)
	}

	if out == "" {
		fmt.Println(string(encoded))
		return
	}
	if err := os.WriteFile(out, encoded, 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", out, err)
	}
	fmt.Printf("GTFS summary written to %s\n", out)
}
