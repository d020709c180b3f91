// Package cli implements the identiverse-calendar command line interface.
//
// The root command runs the full pipeline: scrape the agenda page (or read a
// pre-scraped JSON file), normalize the raw sessions into validated events,
// diff against the previous run's snapshot, and write the iCalendar file.
package cli
