package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestText_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected Text
	}{
		{name: "string", body: `{"startTime": "2025-09-15T18:30:00"}`, expected: "2025-09-15T18:30:00"},
		{name: "escaped string", body: `{"startTime": "caf\u00e9"}`, expected: "café"},
		{name: "missing", body: `{}`, expected: ""},
		{name: "integer keeps its text", body: `{"startTime": 1200}`, expected: "1200"},
		{name: "float keeps its text", body: `{"startTime": -12.50}`, expected: "-12.50"},
		{name: "null", body: `{"startTime": null}`, expected: ""},
		{name: "bool", body: `{"startTime": false}`, expected: ""},
		{name: "object", body: `{"startTime": {"h": 18}}`, expected: ""},
		{name: "array", body: `{"startTime": ["18:30"]}`, expected: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var session Session
			require.NoError(t, json.Unmarshal([]byte(tc.body), &session))
			assert.Equal(t, tc.expected, session.StartTime)
		})
	}
}

func TestText_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected Text
	}{
		{name: "string", body: "cinemaName: Vimercate", expected: "Vimercate"},
		{name: "missing", body: "filmId: x", expected: ""},
		{name: "integer keeps its text", body: "cinemaName: 1200", expected: "1200"},
		{name: "timestamp keeps its text", body: "cinemaName: 2025-09-15T18:30:00", expected: "2025-09-15T18:30:00"},
		{name: "null", body: "cinemaName: ~", expected: ""},
		{name: "bool", body: "cinemaName: true", expected: ""},
		{name: "mapping", body: "cinemaName: {name: X}", expected: ""},
		{name: "sequence", body: "cinemaName: [X]", expected: ""},
		{name: "alias", body: "filmId: &c Torino\ncinemaName: *c", expected: "Torino"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var movie Movie
			require.NoError(t, yaml.Unmarshal([]byte(tc.body), &movie))
			assert.Equal(t, tc.expected, movie.CinemaName)
		})
	}
}

func TestMovie_WrongTypedFieldsDoNotFailDecode(t *testing.T) {
	body := `[{"movie": 2046, "filmTitle": null, "filmId": 3077, "cinemaName": true,
	  "showingGroups": [{"date": 20250915, "sessions": [{"sessionId": 81234, "startTime": 1200, "seats": 5}]}]}]`

	var movies []Movie
	require.NoError(t, json.Unmarshal([]byte(body), &movies))
	require.Len(t, movies, 1)
	assert.Equal(t, Text("2046"), movies[0].Movie)
	assert.Equal(t, Text(""), movies[0].FilmTitle)
	assert.Equal(t, Text("3077"), movies[0].FilmId)
	assert.Equal(t, Text(""), movies[0].CinemaName)
	assert.Equal(t, Text("20250915"), movies[0].ShowingGroups[0].Date)
	session := movies[0].ShowingGroups[0].Sessions[0]
	assert.Equal(t, Text("81234"), session.SessionId)
	assert.Equal(t, Text("1200"), session.StartTime)
	assert.Equal(t, SeatCount(5), session.Seats)
}
