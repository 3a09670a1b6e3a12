// Package report renders a ranking for humans or machines.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/paologalligit/seatrank/ranking"
)

// HeaderStyle styles the title and the column header row.
var HeaderStyle = lipgloss.NewStyle().Bold(true)

// WriteText prints the ranking as an aligned table under a
// "Top N sessions by seats:" title.
func WriteText(w io.Writer, r ranking.Ranking, n int) error {
	if _, err := fmt.Fprintln(w, HeaderStyle.Render(fmt.Sprintf("Top %d sessions by seats:", n))); err != nil {
		return err
	}
	if len(r.Sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}

	var table bytes.Buffer
	tw := tabwriter.NewWriter(&table, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tMOVIE\tCINEMA\tSTART\tSEATS")
	for i, s := range r.Sessions {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", i+1, orDash(s.Movie), orDash(s.CinemaName), orDash(s.StartTime), s.Seats)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	// Style after alignment so escape codes don't skew column widths.
	header, rows, _ := strings.Cut(table.String(), "\n")
	if _, err := fmt.Fprintf(w, "%s\n%s", HeaderStyle.Render(header), rows); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d of %d sessions\n", len(r.Sessions), r.Total)
	return err
}

// WriteJSON prints the ranked sessions as an indented JSON array.
func WriteJSON(w io.Writer, r ranking.Ranking) error {
	data, err := json.MarshalIndent(r.Sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sessions: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
