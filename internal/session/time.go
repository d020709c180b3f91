package session

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/confsync/identiverse-calendar/internal/diag"
)

// DefaultYear is the conference year all agenda dates belong to.
const DefaultYear = 2025

// Pacific is the fixed UTC-7 offset used for all conference instants.
// Every target date falls inside the DST window, so a fixed offset stands in
// for full America/Los_Angeles handling. TimeParser.Zone makes the
// simplification swappable.
var Pacific = time.FixedZone("PDT", -7*60*60)

var (
	dayPattern   = regexp.MustCompile(`\d+`)
	clockPattern = regexp.MustCompile(`(?i)(\d+)(?::(\d+))?\s*(AM|PM)?`)
)

// monthLabels maps date-label substrings to months. Matched
// case-insensitively; full names come first so "JUNE" wins over "JUN".
var monthLabels = []struct {
	label string
	month time.Month
}{
	{"JUNE", time.June},
	{"JULY", time.July},
	{"JUN", time.June},
	{"JUL", time.July},
	{"MAY", time.May},
}

// TimeParser turns free-text date and time labels into absolute instants.
type TimeParser struct {
	Zone *time.Location
	Year int
	Sink diag.Sink
}

// NewTimeParser returns a TimeParser with the conference defaults.
func NewTimeParser(sink diag.Sink) *TimeParser {
	if sink == nil {
		sink = diag.Discard
	}
	return &TimeParser{
		Zone: Pacific,
		Year: DefaultYear,
		Sink: sink,
	}
}

// Normalize parses a date label ("JUNE 3") and a time label
// ("9:30 AM - 11:20 AM") into a start/end pair in p.Zone. It never fails:
// every unparseable component degrades to a documented default and a
// diagnostic on the sink.
func (p *TimeParser) Normalize(dateLabel, timeLabel string) TimeRange {
	month, day := p.parseDate(dateLabel)

	startPart, endPart, hasEnd := splitTimeRange(timeLabel)

	startHour, startMin := p.parseClock(startPart, dateLabel)
	start := time.Date(p.Year, month, day, startHour, startMin, 0, 0, p.Zone)

	if !hasEnd {
		p.warn(dateLabel, fmt.Sprintf("no end time in %q, defaulting to one hour", timeLabel))
		return TimeRange{Start: start, End: start.Add(time.Hour)}
	}

	endHour, endMin := p.parseClock(endPart, dateLabel)
	end := time.Date(p.Year, month, day, endHour, endMin, 0, 0, p.Zone)

	if !end.After(start) {
		// End times sometimes omit the PM marker ("11:00 AM - 1:30").
		end = end.Add(12 * time.Hour)
	}
	if !end.After(start) {
		p.warn(dateLabel, fmt.Sprintf("end not after start in %q, defaulting to one hour", timeLabel))
		end = start.Add(time.Hour)
	}

	return TimeRange{Start: start, End: end}
}

// parseDate extracts month and day-of-month from a free-text date label.
func (p *TimeParser) parseDate(label string) (time.Month, int) {
	upper := strings.ToUpper(label)

	var month time.Month
	for _, m := range monthLabels {
		if strings.Contains(upper, m.label) {
			month = m.month
			break
		}
	}
	if month == 0 {
		p.warn(label, "unrecognized month, defaulting to June")
		month = time.June
	}

	day := 1
	if ds := dayPattern.FindString(label); ds != "" {
		if d, err := strconv.Atoi(ds); err == nil {
			day = d
		}
	} else {
		p.warn(label, "no day of month found, defaulting to 1")
	}

	return month, day
}

// parseClock extracts a 24-hour clock value from one side of a time range.
// An unmatchable part is treated as noon.
func (p *TimeParser) parseClock(part, record string) (hour, minute int) {
	m := clockPattern.FindStringSubmatch(part)
	if m == nil {
		p.warn(record, fmt.Sprintf("unparseable time %q, defaulting to noon", part))
		return 12, 0
	}

	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch strings.ToUpper(m[3]) {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return hour, minute
}

// splitTimeRange splits a time label on the first hyphen into start and
// optional end parts.
func splitTimeRange(label string) (start, end string, hasEnd bool) {
	parts := strings.SplitN(label, "-", 2)
	start = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		end = strings.TrimSpace(parts[1])
	}
	return start, end, end != ""
}

func (p *TimeParser) warn(record, message string) {
	p.Sink.Report(diag.Entry{
		Severity: diag.SeverityWarn,
		Record:   record,
		Message:  message,
	})
}
