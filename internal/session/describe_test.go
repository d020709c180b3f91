package session

import (
	"strings"
	"testing"
)

func TestFormatDescription(t *testing.T) {
	raw := RawSession{
		Title:       "Zero Trust in Practice",
		Description: "A practical look at zero trust rollouts.",
		Speakers:    []string{"Jane Doe, CISO", "John Smith, VP of engineering"},
		Type:        "Breakout",
	}

	got := FormatDescription(raw)

	if !strings.HasPrefix(got, "A practical look at zero trust rollouts.") {
		t.Errorf("description should lead the body, got %q", got)
	}
	if !strings.Contains(got, "Speakers:") {
		t.Error("speakers block missing")
	}
	if !strings.Contains(got, "- Jane Doe, CISO") {
		t.Errorf("speaker group missing from body: %q", got)
	}
	if !strings.Contains(got, "- John Smith, VP of engineering") {
		t.Errorf("second speaker group missing from body: %q", got)
	}
	if !strings.Contains(got, "Session Type: Breakout") {
		t.Error("session type line missing")
	}
	if !strings.HasSuffix(got, "All times are shown in Pacific Time (PDT).") {
		t.Error("timezone note should end the body")
	}
}

func TestFormatDescriptionMinimal(t *testing.T) {
	got := FormatDescription(RawSession{Title: "Registration"})

	if got == "" {
		t.Fatal("description must never be empty")
	}
	if got != "All times are shown in Pacific Time (PDT)." {
		t.Errorf("minimal record should contain only the timezone note, got %q", got)
	}
}

func TestSpeakersBlock(t *testing.T) {
	tests := []struct {
		name      string
		speakers  []string
		wantLines []string
	}{
		{
			name:      "no speakers",
			speakers:  nil,
			wantLines: nil,
		},
		{
			name:     "name with lowercase role",
			speakers: []string{"Jane Doe, chief identity officer"},
			wantLines: []string{
				"Speakers:",
				"- Jane Doe, chief identity officer",
			},
		},
		{
			name:     "multiple speakers in one blob",
			speakers: []string{"Jane Doe", "John Smith, lead engineer"},
			wantLines: []string{
				"Speakers:",
				"- Jane Doe",
				"- John Smith, lead engineer",
			},
		},
		{
			// A capitalized company name is indistinguishable from a person;
			// the heuristic promotes it to its own group.
			name:     "capitalized company starts its own group",
			speakers: []string{"Jane Doe, CISO, Example Corp"},
			wantLines: []string{
				"Speakers:",
				"- Jane Doe, CISO",
				"- Example Corp",
			},
		},
		{
			name:     "heuristic miss falls back to raw list",
			speakers: []string{"panel tbd"},
			wantLines: []string{
				"Speakers:",
				"- panel tbd",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := speakersBlock(tt.speakers)

			if tt.wantLines == nil {
				if got != "" {
					t.Errorf("speakersBlock() = %q, want empty", got)
				}
				return
			}

			want := strings.Join(tt.wantLines, "\n")
			if got != want {
				t.Errorf("speakersBlock() = %q, want %q", got, want)
			}
		})
	}
}
