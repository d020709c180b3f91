package session

import (
	"strings"
	"testing"

	"github.com/confsync/identiverse-calendar/internal/diag"
)

func TestNormalize(t *testing.T) {
	n := NewNormalizer(diag.Discard)

	evt := n.Normalize(RawSession{
		Date:        "JUNE 3",
		Time:        "9:30 AM - 11:20 AM",
		Title:       "Opening Keynote",
		Description: "Welcome to Identiverse.",
		Location:    "South Pacific Ballroom",
		Type:        "Keynote",
		DetailURL:   "https://identiverse.com/idv25/session-details/?sessionID=98765",
	})

	if evt == nil {
		t.Fatal("Normalize() returned nil for a complete record")
	}
	if evt.UID != "identiverse-2025-event-98765@identiverse.com" {
		t.Errorf("UID = %q, want source-ID form", evt.UID)
	}
	if evt.Title != "Opening Keynote" {
		t.Errorf("Title = %q, want %q", evt.Title, "Opening Keynote")
	}
	if evt.Location != "South Pacific Ballroom" {
		t.Errorf("Location = %q, want %q", evt.Location, "South Pacific Ballroom")
	}
	if got := evt.Start.Format("20060102T150405"); got != "20250603T093000" {
		t.Errorf("Start = %s, want 20250603T093000", got)
	}
	if got := evt.End.Format("20060102T150405"); got != "20250603T112000" {
		t.Errorf("End = %s, want 20250603T112000", got)
	}
	if evt.SourceID != "98765" {
		t.Errorf("SourceID = %q, want %q", evt.SourceID, "98765")
	}
	if evt.UsedDefaultTime {
		t.Error("UsedDefaultTime should be false for parseable input")
	}
	if !strings.Contains(evt.Description, "Welcome to Identiverse.") {
		t.Errorf("Description = %q, missing free text", evt.Description)
	}
}

func TestNormalizeSkipsEmptyDateAndTime(t *testing.T) {
	c := &diag.Collector{}
	n := NewNormalizer(c)

	evt := n.Normalize(RawSession{Title: "Mystery Session"})

	if evt != nil {
		t.Fatalf("Normalize() = %+v, want nil for record with no date and no time", evt)
	}
	if c.Count() == 0 {
		t.Error("skip should be reported on the sink")
	}
}

func TestNormalizeDefaults(t *testing.T) {
	n := NewNormalizer(diag.Discard)

	evt := n.Normalize(RawSession{
		Date: "JUNE 4",
		Time: "8:00 AM - 9:00 AM",
	})

	if evt == nil {
		t.Fatal("Normalize() returned nil")
	}
	if evt.Title != "Untitled Session" {
		t.Errorf("Title = %q, want default", evt.Title)
	}
	if evt.Location != "Mandalay Bay, Las Vegas, NV" {
		t.Errorf("Location = %q, want default placeholder", evt.Location)
	}
	if evt.Description == "" {
		t.Error("Description must never be empty")
	}
	if evt.SourceID != "" {
		t.Errorf("SourceID = %q, want empty", evt.SourceID)
	}
	if !strings.HasPrefix(evt.UID, "identiverse-2025-UntitledSession-20250604-") {
		t.Errorf("UID = %q, want fallback form for defaulted title", evt.UID)
	}
}

func TestNormalizeExplicitSourceIDWins(t *testing.T) {
	n := NewNormalizer(diag.Discard)

	evt := n.Normalize(RawSession{
		Date:      "JUNE 3",
		Time:      "9:00 AM - 10:00 AM",
		Title:     "Registration",
		SourceID:  "111",
		DetailURL: "https://identiverse.com/idv25/session-details/?sessionID=222",
	})

	if evt == nil {
		t.Fatal("Normalize() returned nil")
	}
	if evt.SourceID != "111" {
		t.Errorf("SourceID = %q, want explicit %q over URL-derived", evt.SourceID, "111")
	}
	if evt.UID != "identiverse-2025-event-111@identiverse.com" {
		t.Errorf("UID = %q, want source-ID form with explicit ID", evt.UID)
	}
}

func TestNormalizeStableAcrossRuns(t *testing.T) {
	raw := RawSession{
		Date:  "JUNE 3",
		Time:  "8:00 AM - 9:00 AM",
		Title: "Registration",
	}

	first := NewNormalizer(diag.Discard).Normalize(raw)
	second := NewNormalizer(diag.Discard).Normalize(raw)

	if first == nil || second == nil {
		t.Fatal("Normalize() returned nil")
	}
	if first.UID != second.UID {
		t.Errorf("UID not stable across runs: %q != %q", first.UID, second.UID)
	}

	// Incidental field changes must not move the fallback UID
	moved := raw
	moved.Time = "10:00 AM - 11:00 AM"
	moved.Location = "Surf Ballroom"
	moved.Description = "Now with coffee"

	third := NewNormalizer(diag.Discard).Normalize(moved)
	if third == nil {
		t.Fatal("Normalize() returned nil")
	}
	if third.UID != first.UID {
		t.Errorf("UID changed with incidental fields: %q != %q", third.UID, first.UID)
	}
}

func TestNormalizeAll(t *testing.T) {
	n := NewNormalizer(diag.Discard)

	raw := []RawSession{
		{Date: "JUNE 3", Time: "9:00 AM - 10:00 AM", Title: "First"},
		{Title: "No Date Or Time"},
		{Date: "JUNE 3", Time: "10:00 AM - 11:00 AM", Title: "Second"},
	}

	events := n.NormalizeAll(raw)

	if len(events) != 2 {
		t.Fatalf("NormalizeAll() returned %d events, want 2", len(events))
	}
	if events[0].Title != "First" || events[1].Title != "Second" {
		t.Errorf("input order not preserved: %q, %q", events[0].Title, events[1].Title)
	}
}

func TestExtractSourceID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"query parameter", "https://identiverse.com/idv25/session-details/?sessionID=12345", "12345"},
		{"extra parameters", "https://identiverse.com/s/?sessionID=7&ref=agenda", "7"},
		{"missing parameter", "https://identiverse.com/idv25/agenda/", ""},
		{"non-numeric value", "https://identiverse.com/?sessionID=abc", ""},
		{"empty url", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractSourceID(tt.url); got != tt.want {
				t.Errorf("ExtractSourceID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
