// Command agenda-dump scrapes the Identiverse agenda page and writes the raw
// session records as JSON, for feeding into identiverse-calendar --input.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/confsync/identiverse-calendar/internal/scraper"
)

var (
	agendaURL = flag.String("agenda-url", scraper.AgendaURL, "Agenda page URL to scrape")
	outFile   = flag.String("out", "", "Write sessions JSON to this file (default: stdout)")
)

func main() {
	flag.Parse()

	sessions, err := scraper.NewWithURL(*agendaURL).FetchSessions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding sessions: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if *outFile == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := os.WriteFile(*outFile, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *outFile, err)
			os.Exit(1)
		}
	}

	fmt.Fprintf(os.Stderr, "Dumped %d sessions\n", len(sessions))
}
