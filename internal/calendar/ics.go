package calendar

import (
	"strings"
	"time"

	"github.com/confsync/identiverse-calendar/internal/session"
)

const (
	prodID     = "-//Identiverse//Conference Calendar//EN"
	calName    = "Identiverse 2025"
	calDesc    = "Identiverse 2025 Conference Agenda"
	timezoneID = "America/Los_Angeles"

	// maxLineLen is the RFC 5545 octet limit for a physical content line,
	// excluding the terminator.
	maxLineLen = 75
)

// Encoder serializes validated events into an iCalendar file.
type Encoder struct {
	// Now supplies the DTSTAMP generation time. Overridable in tests.
	Now func() time.Time
}

// NewEncoder creates an Encoder stamping events with the current time.
func NewEncoder() *Encoder {
	return &Encoder{Now: time.Now}
}

// Encode writes the full VCALENDAR for the given events, preserving their
// order.
func (e *Encoder) Encode(events []*session.Event) []byte {
	var b strings.Builder

	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:"+prodID)
	writeLine(&b, "CALSCALE:GREGORIAN")
	writeLine(&b, "METHOD:PUBLISH")
	writeLine(&b, "X-WR-CALNAME:"+calName)
	writeLine(&b, "X-WR-TIMEZONE:"+timezoneID)
	writeLine(&b, "X-WR-CALDESC:"+calDesc)

	writeTimezone(&b)

	stamp := e.Now().UTC().Format("20060102T150405Z")
	for _, evt := range events {
		writeEvent(&b, evt, stamp)
	}

	writeLine(&b, "END:VCALENDAR")
	return []byte(b.String())
}

// writeTimezone emits the VTIMEZONE definition for the Pacific zone.
// The daylight/standard rule pair is hand-authored, not computed.
func writeTimezone(b *strings.Builder) {
	writeLine(b, "BEGIN:VTIMEZONE")
	writeLine(b, "TZID:"+timezoneID)
	writeLine(b, "X-LIC-LOCATION:"+timezoneID)
	writeLine(b, "BEGIN:DAYLIGHT")
	writeLine(b, "TZOFFSETFROM:-0800")
	writeLine(b, "TZOFFSETTO:-0700")
	writeLine(b, "TZNAME:PDT")
	writeLine(b, "DTSTART:19700308T020000")
	writeLine(b, "RRULE:FREQ=YEARLY;BYMONTH=3;BYDAY=2SU")
	writeLine(b, "END:DAYLIGHT")
	writeLine(b, "BEGIN:STANDARD")
	writeLine(b, "TZOFFSETFROM:-0700")
	writeLine(b, "TZOFFSETTO:-0800")
	writeLine(b, "TZNAME:PST")
	writeLine(b, "DTSTART:19701101T020000")
	writeLine(b, "RRULE:FREQ=YEARLY;BYMONTH=11;BYDAY=1SU")
	writeLine(b, "END:STANDARD")
	writeLine(b, "END:VTIMEZONE")
}

// writeEvent emits one VEVENT block.
func writeEvent(b *strings.Builder, evt *session.Event, stamp string) {
	writeLine(b, "BEGIN:VEVENT")
	writeLine(b, foldLine("UID:"+evt.UID))
	writeLine(b, "SEQUENCE:0")
	writeLine(b, "DTSTAMP:"+stamp)
	writeLine(b, "DTSTART;TZID="+timezoneID+":"+formatLocal(evt.Start))
	writeLine(b, "DTEND;TZID="+timezoneID+":"+formatLocal(evt.End))
	writeLine(b, foldLine("SUMMARY:"+escapeText(evt.Title)))
	writeLine(b, foldLine("DESCRIPTION:"+escapeText(evt.Description)))
	writeLine(b, foldLine("LOCATION:"+escapeText(evt.Location)))
	writeLine(b, "CLASS:PUBLIC")
	writeLine(b, "STATUS:CONFIRMED")
	writeLine(b, "TRANSP:OPAQUE")
	writeLine(b, "X-MICROSOFT-CDO-BUSYSTATUS:BUSY")
	writeLine(b, "X-MICROSOFT-CDO-IMPORTANCE:1")
	if evt.Type != "" {
		writeLine(b, foldLine("CATEGORIES:"+escapeText(evt.Type)))
	}
	writeLine(b, "END:VEVENT")
}

// formatLocal renders an instant as local wall-clock time. The TZID
// parameter on the property carries the zone; no UTC conversion happens
// here.
func formatLocal(t time.Time) string {
	return t.Format("20060102T150405")
}

// writeLine appends a content line with the CRLF terminator.
func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteString("\r\n")
}

// foldLine folds a content line longer than 75 octets, continuing each
// following physical line with a single leading space. Folding is purely
// byte based; a multi-byte rune may be split across physical lines, which
// compliant readers tolerate when unfolding.
func foldLine(line string) string {
	if len(line) <= maxLineLen {
		return line
	}

	var b strings.Builder
	b.WriteString(line[:maxLineLen])
	rest := line[maxLineLen:]
	for len(rest) > 0 {
		chunk := rest
		if len(chunk) > maxLineLen-1 {
			chunk = chunk[:maxLineLen-1]
		}
		b.WriteString("\r\n ")
		b.WriteString(chunk)
		rest = rest[len(chunk):]
	}
	return b.String()
}

// escapeText escapes the characters RFC 5545 reserves inside text values.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
