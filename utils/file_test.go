package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/paologalligit/seatrank/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSessionsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "top.json")
	sessions := []entities.SessionSummary{
		{Movie: "A", CinemaName: "X", StartTime: "2025-09-15T20:00:00", Seats: 20},
	}

	require.NoError(t, WriteSessionsToFile(sessions, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got []entities.SessionSummary
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, sessions, got)
}

func TestWriteSessionsToFile_Nil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top.json")

	require.NoError(t, WriteSessionsToFile(nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestWriteSessionsToFile_BadPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := WriteSessionsToFile(nil, filepath.Join(blocker, "top.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output dir")
}
