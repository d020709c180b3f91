// Package session provides types and normalization logic for Identiverse
// conference sessions.
//
// The package turns loosely structured scraped text (date labels like
// "JUNE 3", time ranges like "9:30 AM - 11:20 AM", optional upstream session
// IDs) into validated calendar events with timezone-correct instants and
// identifiers that stay stable across repeated scrapes, so re-importing the
// generated calendar never duplicates events. Every unparseable component
// degrades to a documented default reported through a diag.Sink; the only
// record that is dropped outright is one with neither a date nor a time.
package session
