package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const SEAT_LOG = `{"cinemaName":"Vimercate","filmName":"The Conjuring: Il rito finale","sessionId":"81234","seats":42,"loggedAt":"2025-09-15T18:42:10+02:00","startHour":"18:30"}

{"cinemaName":"Torino","filmName":"Downton Abbey","sessionId":"90001","seats":7,"loggedAt":"2025-09-15T21:13:55+02:00","startHour":"21:00"}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFileSeatLog_ReadSeatLog(t *testing.T) {
	path := writeFile(t, "seat_counts.log", SEAT_LOG)

	entries, err := NewFileSeatLog(path).ReadSeatLog(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Vimercate", entries[0].CinemaName)
	assert.Equal(t, "The Conjuring: Il rito finale", entries[0].FilmName)
	assert.Equal(t, "81234", entries[0].SessionId)
	assert.Equal(t, 42, entries[0].Seats)
	assert.Equal(t, "18:30", entries[0].StartHour)
	assert.True(t, entries[0].LoggedAt.Equal(time.Date(2025, 9, 15, 16, 42, 10, 0, time.UTC)))
	assert.Equal(t, "Torino", entries[1].CinemaName)
}

func TestFileSeatLog_Errors(t *testing.T) {
	cases := []struct {
		name    string
		path    func(t *testing.T) string
		errPart string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.log") },
			errPart: "error opening seat log",
		},
		{
			name:    "malformed line",
			path:    func(t *testing.T) string { return writeFile(t, "bad.log", "{\"seats\":1}\nnot json\n") },
			errPart: "line 2",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFileSeatLog(tc.path(t)).ReadSeatLog(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errPart)
		})
	}
}

func TestFileSeatLog_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.log", "")

	entries, err := NewFileSeatLog(path).ReadSeatLog(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSplitStatements(t *testing.T) {
	sql := `-- header comment
CREATE TABLE a (id INT);

-- second
CREATE INDEX a_idx ON a (id);
;
`
	stmts := SplitStatements(sql)

	assert.Equal(t, []string{
		"CREATE TABLE a (id INT)",
		"CREATE INDEX a_idx ON a (id)",
	}, stmts)
}

func TestSplitStatements_SchemaFile(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "db", "schema.sql"))
	require.NoError(t, err)

	stmts := SplitStatements(string(data))

	require.Len(t, stmts, 2)
	assert.Contains(t, stmts[0], "CREATE TABLE IF NOT EXISTS session")
}

func TestNewPostgresPool_MissingDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Chdir(t.TempDir())

	pool, err := NewPostgresPool(context.Background(), "")

	assert.Nil(t, pool)
	assert.EqualError(t, err, "DATABASE_URL is not set")
}
