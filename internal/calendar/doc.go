// Package calendar serializes validated events into an iCalendar (.ics)
// file.
//
// The encoder writes one VCALENDAR containing a static VTIMEZONE definition
// for the Pacific zone and one VEVENT per input event, in input order. Event
// start and end are written as local wall-clock values tagged with the zone
// identifier rather than converted to UTC. Content lines use CRLF
// terminators, RFC 5545 text escaping, and 75-octet line folding.
package calendar
