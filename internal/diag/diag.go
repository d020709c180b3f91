package diag

import "sync"

// Severity indicates how serious a diagnostic entry is
type Severity string

const (
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// Entry is a single diagnostic produced while normalizing a record
type Entry struct {
	Severity Severity `json:"severity"`
	Record   string   `json:"record"` // best-effort reference to the source record
	Message  string   `json:"message"`
}

// Sink receives diagnostic entries from the normalization pipeline
type Sink interface {
	Report(e Entry)
}

// Func adapts a plain function to the Sink interface
type Func func(Entry)

// Report calls f with the entry
func (f Func) Report(e Entry) {
	f(e)
}

// Discard is a Sink that drops every entry
var Discard Sink = Func(func(Entry) {})

// Collector is a Sink that accumulates entries in arrival order.
// Safe for concurrent use.
type Collector struct {
	mu      sync.Mutex
	entries []Entry
}

// Report appends the entry to the collector
func (c *Collector) Report(e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, e)
}

// Entries returns a copy of all collected entries
func (c *Collector) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Count returns the number of collected entries
func (c *Collector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
