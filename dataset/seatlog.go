package dataset

import (
	"context"
	"fmt"

	"github.com/paologalligit/seatrank/entities"
	"github.com/paologalligit/seatrank/persistence"
)

// SeatLogSource builds a dataset out of the seat counts logged by the seat
// timers, either from a log file or from Postgres.
type SeatLogSource struct {
	Reader persistence.SeatLogReader
}

func NewSeatLogSource(reader persistence.SeatLogReader) *SeatLogSource {
	return &SeatLogSource{Reader: reader}
}

func (s *SeatLogSource) Load(ctx context.Context) ([]entities.Movie, error) {
	entries, err := s.Reader.ReadSeatLog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read seat log: %w", err)
	}
	return GroupSeatLog(entries), nil
}

// GroupSeatLog folds log rows into movies keyed by film and cinema, in the
// order each pair first shows up. Rows logged on the same UTC day share one
// showing group; sessions keep row order.
func GroupSeatLog(entries []entities.SeatLogEntry) []entities.Movie {
	type movieKey struct{ film, cinema string }

	movies := []entities.Movie{}
	movieIdx := map[movieKey]int{}
	groupIdx := map[movieKey]map[string]int{}

	for _, entry := range entries {
		key := movieKey{film: entry.FilmName, cinema: entry.CinemaName}
		mi, ok := movieIdx[key]
		if !ok {
			mi = len(movies)
			movieIdx[key] = mi
			groupIdx[key] = map[string]int{}
			movies = append(movies, entities.Movie{
				Movie:      entities.Text(entry.FilmName),
				CinemaName: entities.Text(entry.CinemaName),
			})
		}

		date := ""
		if !entry.LoggedAt.IsZero() {
			date = entry.LoggedAt.UTC().Format("2006-01-02")
		}
		gi, ok := groupIdx[key][date]
		if !ok {
			gi = len(movies[mi].ShowingGroups)
			groupIdx[key][date] = gi
			groupDate := ""
			if date != "" {
				groupDate = date + "T00:00:00"
			}
			movies[mi].ShowingGroups = append(movies[mi].ShowingGroups, entities.ShowingGroup{Date: entities.Text(groupDate)})
		}

		group := &movies[mi].ShowingGroups[gi]
		group.Sessions = append(group.Sessions, entities.Session{
			SessionId: entities.Text(entry.SessionId),
			StartHour: entities.Text(entry.StartHour),
			StartTime: entities.Text(sessionStartTime(date, entry.StartHour)),
			Seats:     entities.SeatCount(max(entry.Seats, 0)),
		})
	}
	return movies
}

// sessionStartTime rebuilds the 'YYYY-MM-DDTHH:MM:SS' start time used in
// showings files. Missing parts leave it empty.
func sessionStartTime(date, startHour string) string {
	if date == "" || startHour == "" {
		return ""
	}
	return date + "T" + startHour + ":00"
}
