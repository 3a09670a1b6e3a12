package entities

import (
	"time"
)

type Session struct {
	SessionId        Text      `json:"sessionId" yaml:"sessionId"`
	StartHour        Text      `json:"startHour" yaml:"startHour"`
	RoundedStartHour Text      `json:"roundedStartHour" yaml:"roundedStartHour"`
	Seats            SeatCount `json:"seats" yaml:"seats"`
	TotalSeats       SeatCount `json:"totalSeats" yaml:"totalSeats"`
	StartTime        Text      `json:"startTime" yaml:"startTime"`
}

type ShowingGroup struct {
	Date     Text      `json:"date" yaml:"date"`
	Sessions []Session `json:"sessions" yaml:"sessions"`
}

// Movie is one entry of a showings dataset: a film playing at a cinema.
// The title comes from either "movie" or "filmTitle" depending on which
// tool produced the file.
type Movie struct {
	Movie         Text           `json:"movie" yaml:"movie"`
	FilmTitle     Text           `json:"filmTitle" yaml:"filmTitle"`
	FilmId        Text           `json:"filmId" yaml:"filmId"`
	CinemaId      Text           `json:"cinemaId" yaml:"cinemaId"`
	CinemaName    Text           `json:"cinemaName" yaml:"cinemaName"`
	ShowingGroups []ShowingGroup `json:"showingGroups" yaml:"showingGroups"`
}

// SessionSummary is a session flattened together with its movie and cinema.
type SessionSummary struct {
	Movie      string `json:"movie"`
	CinemaName string `json:"cinemaName"`
	StartTime  string `json:"startTime"`
	Seats      int    `json:"seats"`
}

type SeatLogEntry struct {
	CinemaName string    `json:"cinemaName"`
	FilmName   string    `json:"filmName"`
	SessionId  string    `json:"sessionId"`
	Seats      int       `json:"seats"`
	LoggedAt   time.Time `json:"loggedAt"`
	StartHour  string    `json:"startHour"`
}
