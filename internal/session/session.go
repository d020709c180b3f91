package session

import "time"

// RawSession is a single agenda entry as extracted by the scraping layer.
// All fields are free text supplied by the page; any of them may be empty,
// and no uniqueness or completeness is guaranteed.
type RawSession struct {
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Speakers    []string `json:"speakers,omitempty"`
	Type        string   `json:"type,omitempty"`
	SourceID    string   `json:"source_id,omitempty"`
	DetailURL   string   `json:"detail_url,omitempty"`
}

// TimeRange is a start/end instant pair anchored to the conference zone.
// End is always after Start once normalization has run.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Event is a fully validated calendar event, ready for encoding.
// All defaults have been applied; instances are immutable once built.
type Event struct {
	UID             string    `json:"uid"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	Type            string    `json:"type,omitempty"`
	SourceID        string    `json:"source_id,omitempty"`
	UsedDefaultTime bool      `json:"used_default_time,omitempty"`
}
