package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/confsync/identiverse-calendar/internal/session"
)

// DefaultDataDir is where snapshots live unless overridden
const DefaultDataDir = "~/.local/share/identiverse-calendar"

// Snapshot represents the exported events at a point in time
type Snapshot struct {
	Events    map[string]*session.Event `json:"events"`     // keyed by UID
	UpdatedAt string                    `json:"updated_at"` // RFC3339 timestamp
}

// NewSnapshot creates an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Events: make(map[string]*session.Event),
	}
}

// Storage handles persistence of event snapshots
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

func (s *Storage) snapshotPath() string {
	return filepath.Join(s.dataDir, "snapshot.json")
}

// LoadSnapshot loads the previous snapshot from disk. A missing file yields
// an empty snapshot, not an error.
func (s *Storage) LoadSnapshot() (*Snapshot, error) {
	data, err := os.ReadFile(s.snapshotPath())
	if err != nil {
		if os.IsNotExist(err) {
			return NewSnapshot(), nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	if snapshot.Events == nil {
		snapshot.Events = make(map[string]*session.Event)
	}

	return &snapshot, nil
}

// SaveSnapshot persists the given events as the current snapshot
func (s *Storage) SaveSnapshot(events []*session.Event) error {
	snapshot := NewSnapshot()
	for _, evt := range events {
		snapshot.Events[evt.UID] = evt
	}
	snapshot.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(s.snapshotPath(), data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}

// Diff returns the events whose UID is absent from the previous snapshot,
// in input order
func Diff(previous *Snapshot, current []*session.Event) []*session.Event {
	if previous == nil {
		previous = NewSnapshot()
	}

	added := make([]*session.Event, 0)
	for _, evt := range current {
		if _, exists := previous.Events[evt.UID]; !exists {
			added = append(added, evt)
		}
	}
	return added
}
