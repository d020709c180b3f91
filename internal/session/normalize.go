package session

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/confsync/identiverse-calendar/internal/diag"
)

const (
	defaultTitle    = "Untitled Session"
	defaultLocation = "Mandalay Bay, Las Vegas, NV"
)

// sourceIDPattern extracts the upstream session identifier from a detail
// page URL, e.g. ".../session-details/?sessionID=12345".
var sourceIDPattern = regexp.MustCompile(`sessionID=(\d+)`)

// Normalizer converts raw scraped sessions into validated events.
type Normalizer struct {
	Times *TimeParser
	Sink  diag.Sink
}

// NewNormalizer creates a Normalizer reporting diagnostics to sink.
func NewNormalizer(sink diag.Sink) *Normalizer {
	if sink == nil {
		sink = diag.Discard
	}
	return &Normalizer{
		Times: NewTimeParser(sink),
		Sink:  sink,
	}
}

// Normalize validates one raw session. It returns nil when the record has
// neither a date nor a time label; every other missing field receives a
// default. A panic while normalizing one record is converted to a skip so
// the rest of the batch survives.
func (n *Normalizer) Normalize(raw RawSession) (evt *Event) {
	defer func() {
		if r := recover(); r != nil {
			n.report(diag.SeverityError, raw.Title, fmt.Sprintf("normalization panic: %v", r))
			evt = nil
		}
	}()

	if strings.TrimSpace(raw.Date) == "" && strings.TrimSpace(raw.Time) == "" {
		n.report(diag.SeverityWarn, raw.Title, "record has neither date nor time, skipping")
		return nil
	}

	sourceID := strings.TrimSpace(raw.SourceID)
	if sourceID == "" {
		sourceID = ExtractSourceID(raw.DetailURL)
	}

	tr := n.Times.Normalize(raw.Date, raw.Time)

	usedDefault := false
	if tr.Start.IsZero() || !tr.End.After(tr.Start) {
		now := time.Now().In(n.Times.Zone)
		tr.Start = time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, n.Times.Zone)
		tr.End = tr.Start.Add(time.Hour)
		usedDefault = true
		n.report(diag.SeverityWarn, raw.Title, "time normalization unusable, using default noon window")
	}

	title := strings.TrimSpace(raw.Title)
	if title == "" {
		title = defaultTitle
	}

	location := strings.TrimSpace(raw.Location)
	if location == "" {
		location = defaultLocation
	}

	return &Event{
		UID:             GenerateUID(title, tr.Start, sourceID),
		Title:           title,
		Description:     FormatDescription(raw),
		Location:        location,
		Start:           tr.Start,
		End:             tr.End,
		Type:            strings.TrimSpace(raw.Type),
		SourceID:        sourceID,
		UsedDefaultTime: usedDefault,
	}
}

// NormalizeAll maps a batch of raw sessions to events, dropping records that
// fail to normalize. Input order is preserved.
func (n *Normalizer) NormalizeAll(raw []RawSession) []*Event {
	events := make([]*Event, 0, len(raw))
	for _, r := range raw {
		if evt := n.Normalize(r); evt != nil {
			events = append(events, evt)
		}
	}
	return events
}

// ExtractSourceID pulls the numeric sessionID query parameter out of a
// detail page URL. Returns the empty string when absent.
func ExtractSourceID(detailURL string) string {
	m := sourceIDPattern.FindStringSubmatch(detailURL)
	if m == nil {
		return ""
	}
	return m[1]
}

func (n *Normalizer) report(sev diag.Severity, record, message string) {
	n.Sink.Report(diag.Entry{
		Severity: sev,
		Record:   record,
		Message:  message,
	})
}
