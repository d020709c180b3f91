package session

import (
	"regexp"
	"strings"
)

// timezoneNote is appended to every event description so importers know the
// wall-clock convention in use.
const timezoneNote = "All times are shown in Pacific Time (PDT)."

// namePattern matches a capitalized multi-word sequence ("Jane Doe"), which
// starts a new speaker group. Best-effort: a capitalized company name is
// indistinguishable from a person and will start a group of its own.
var namePattern = regexp.MustCompile(`^[A-Z][a-zA-Z.'-]+(?: [A-Z][a-zA-Z.'-]+)+$`)

// FormatDescription builds the human-readable event body: free-text
// description, a speakers block, a session type line, and the timezone note.
// Output is never empty.
func FormatDescription(raw RawSession) string {
	var parts []string

	if d := strings.TrimSpace(raw.Description); d != "" {
		parts = append(parts, d)
	}

	if block := speakersBlock(raw.Speakers); block != "" {
		parts = append(parts, block)
	}

	if t := strings.TrimSpace(raw.Type); t != "" {
		parts = append(parts, "Session Type: "+t)
	}

	parts = append(parts, timezoneNote)
	return strings.Join(parts, "\n\n")
}

// speakersBlock splits the joined speaker blob into "Name, role/company"
// groups: a comma-delimited segment matching the name heuristic starts a new
// group, anything else attaches to the current one. When no segment looks
// like a name the raw speaker list is used as-is.
func speakersBlock(speakers []string) string {
	if len(speakers) == 0 {
		return ""
	}

	blob := strings.Join(speakers, ", ")

	var groups []string
	for _, seg := range strings.Split(blob, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		switch {
		case namePattern.MatchString(seg):
			groups = append(groups, seg)
		case len(groups) > 0:
			groups[len(groups)-1] += ", " + seg
		}
	}

	if len(groups) == 0 {
		groups = speakers
	}

	lines := make([]string, 0, len(groups)+1)
	lines = append(lines, "Speakers:")
	for _, g := range groups {
		lines = append(lines, "- "+g)
	}
	return strings.Join(lines, "\n")
}
