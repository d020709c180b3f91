package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/confsync/identiverse-calendar/internal/session"
)

// readSessionsFile decodes a JSON array of raw sessions, as produced by
// agenda-dump
func readSessionsFile(path string) ([]session.RawSession, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sessions file: %w", err)
	}

	var sessions []session.RawSession
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("parsing sessions file: %w", err)
	}

	return sessions, nil
}
