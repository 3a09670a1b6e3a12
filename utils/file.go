package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paologalligit/seatrank/entities"
)

// WriteSessionsToFile stores the ranked sessions as an indented JSON array,
// creating the parent directory when needed.
func WriteSessionsToFile(sessions []entities.SessionSummary, filename string) error {
	if sessions == nil {
		sessions = []entities.SessionSummary{}
	}
	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sessions: %w", err)
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write sessions to file: %w", err)
	}
	return nil
}
