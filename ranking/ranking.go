// Package ranking turns a showings dataset into a list of sessions ordered
// by seat count, highest first.
package ranking

import (
	"cmp"
	"slices"

	"github.com/paologalligit/seatrank/entities"
)

// Ranking is the result of a ranking run. Total counts every flattened
// session, Sessions holds only the top ones.
type Ranking struct {
	Total    int                       `json:"total"`
	Sessions []entities.SessionSummary `json:"sessions"`
}

// FirstNonEmpty returns the first candidate that is not the empty string,
// or "" when none is.
func FirstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// FlattenSessions produces one summary per session, walking movies, then
// showing groups, then sessions in dataset order.
func FlattenSessions(movies []entities.Movie) []entities.SessionSummary {
	summaries := []entities.SessionSummary{}
	for _, movie := range movies {
		title := FirstNonEmpty(movie.Movie.String(), movie.FilmTitle.String())
		for _, group := range movie.ShowingGroups {
			for _, session := range group.Sessions {
				summaries = append(summaries, entities.SessionSummary{
					Movie:      title,
					CinemaName: movie.CinemaName.String(),
					StartTime:  session.StartTime.String(),
					Seats:      session.Seats.Int(),
				})
			}
		}
	}
	return summaries
}

// RankBySeatsDescending returns a copy of summaries sorted by seats, highest
// first. Equal seat counts keep their relative order.
func RankBySeatsDescending(summaries []entities.SessionSummary) []entities.SessionSummary {
	ranked := slices.Clone(summaries)
	if ranked == nil {
		ranked = []entities.SessionSummary{}
	}
	slices.SortStableFunc(ranked, func(a, b entities.SessionSummary) int {
		return cmp.Compare(b.Seats, a.Seats)
	})
	return ranked
}

// TopN returns the first min(n, len(summaries)) elements.
func TopN(summaries []entities.SessionSummary, n int) []entities.SessionSummary {
	if n <= 0 || len(summaries) == 0 {
		return []entities.SessionSummary{}
	}
	return summaries[:min(n, len(summaries))]
}

// Rank flattens movies, orders the sessions by seats and keeps the top n.
func Rank(movies []entities.Movie, n int) Ranking {
	ranked := RankBySeatsDescending(FlattenSessions(movies))
	return Ranking{
		Total:    len(ranked),
		Sessions: TopN(ranked, n),
	}
}
