package session

import (
	"fmt"
	"regexp"
	"time"
)

const (
	uidDomain = "identiverse.com"
	uidPrefix = "identiverse-2025"

	// fallbackDate stands in for the date portion of a derived UID when no
	// start instant is available (first conference day).
	fallbackDate = "20250603"
)

var nonAlnumPattern = regexp.MustCompile(`[^a-zA-Z0-9]`)

// GenerateUID derives the stable identifier for a session. A non-empty
// sourceID always wins: upstream-assigned IDs persist across site edits.
// Otherwise the UID is derived from title and date only, so recurring
// scrapes update rather than duplicate calendar entries even when times,
// locations, or descriptions change.
func GenerateUID(title string, start time.Time, sourceID string) string {
	if sourceID != "" {
		return fmt.Sprintf("%s-event-%s@%s", uidPrefix, sourceID, uidDomain)
	}

	clean := nonAlnumPattern.ReplaceAllString(title, "")
	if len(clean) > 30 {
		clean = clean[:30]
	}

	dateStr := fallbackDate
	if !start.IsZero() {
		dateStr = start.Format("20060102")
	}

	return fmt.Sprintf("%s-%s-%s-%s@%s", uidPrefix, clean, dateStr, titleChecksum(title), uidDomain)
}

// titleChecksum computes an 8-hex-digit checksum over the raw title using a
// 31-multiplier rolling hash wrapped to signed 32 bits. Collisions between
// distinct titles sharing a truncated prefix and date are an accepted risk;
// changing the hash would break UID stability for already-exported calendars.
func titleChecksum(title string) string {
	var h int32
	for _, r := range title {
		h = h*31 + int32(r)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}

	s := fmt.Sprintf("%08x", v)
	if len(s) > 8 {
		s = s[:8]
	}
	return s
}
