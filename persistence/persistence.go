package persistence

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/paologalligit/seatrank/entities"
)

// SeatLogReader defines the interface for reading logged seat counts
// Implementations: FileSeatLog, PostgresSeatLog
type SeatLogReader interface {
	ReadSeatLog(ctx context.Context) ([]entities.SeatLogEntry, error)
}

// FileSeatLog reads a seat log written as one JSON object per line
type FileSeatLog struct {
	FilePath string
}

func NewFileSeatLog(filePath string) *FileSeatLog {
	return &FileSeatLog{FilePath: filePath}
}

func (f *FileSeatLog) ReadSeatLog(ctx context.Context) ([]entities.SeatLogEntry, error) {
	file, err := os.Open(f.FilePath)
	if err != nil {
		return nil, fmt.Errorf("error opening seat log: %w", err)
	}
	defer file.Close()

	entries := []entities.SeatLogEntry{}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var entry entities.SeatLogEntry
		if err := json.Unmarshal([]byte(text), &entry); err != nil {
			return nil, fmt.Errorf("error decoding seat log line %d: %w", line, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading seat log: %w", err)
	}
	return entries, nil
}

// Querier is the part of a pgx pool the seat log needs
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSeatLog reads the session table filled by the seat timers
type PostgresSeatLog struct {
	Pool Querier
}

func NewPostgresSeatLog(pool Querier) *PostgresSeatLog {
	return &PostgresSeatLog{Pool: pool}
}

func (p *PostgresSeatLog) ReadSeatLog(ctx context.Context) ([]entities.SeatLogEntry, error) {
	rows, err := p.Pool.Query(ctx, `
		SELECT cinema_name, film_name, session_id, seats, logged_at, start_hour
		FROM session
		ORDER BY logged_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("error querying seat log: %w", err)
	}
	defer rows.Close()

	entries := []entities.SeatLogEntry{}
	for rows.Next() {
		var entry entities.SeatLogEntry
		if err := rows.Scan(
			&entry.CinemaName,
			&entry.FilmName,
			&entry.SessionId,
			&entry.Seats,
			&entry.LoggedAt,
			&entry.StartHour,
		); err != nil {
			return nil, fmt.Errorf("error scanning seat log row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating seat log rows: %w", err)
	}
	return entries, nil
}
