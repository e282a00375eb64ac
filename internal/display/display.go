// Package display renders scoreboards and simulation reports for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/tennisassist/internal/statistics"
	"github.com/lox/tennisassist/tennis"
)

const (
	serverMarker = "*"
	barWidth     = 30
	topSetScores = 8
)

// Renderer formats match state for a particular output
type Renderer struct {
	styles styles
	bar    progress.Model
}

// NewRenderer creates a renderer for w. With color disabled output is plain
// text regardless of the terminal.
func NewRenderer(w io.Writer, color bool) *Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		styles: newStyles(r),
		bar: progress.New(
			progress.WithSolidFill(string(colorAccent)),
			progress.WithWidth(barWidth),
			progress.WithoutPercentage(),
			progress.WithColorProfile(r.ColorProfile()),
		),
	}
}

// Scoreboard renders completed sets, the current set, the point score and
// the server for both players
func (r *Renderer) Scoreboard(m *tennis.Match) string {
	players := m.Players()
	server, hasServer := m.CurrentServer()
	winner, finished := m.Winner()
	sets := m.CompletedSetScores()
	current, inSet := m.CurrentSetScore()
	// a match super-tiebreak replaces the deciding set, leaving an empty counter
	if m.Phase() == tennis.SuperTiebreakInProgress && current.Values() == [2]int{} {
		inSet = false
	}
	points := r.pointColumn(m)

	width := 0
	for _, p := range players {
		width = max(width, lipgloss.Width(p.String()))
	}

	rows := make([]string, 0, len(players))
	for i, p := range players {
		var b strings.Builder

		nameStyle := r.styles.name
		if finished && winner == p {
			nameStyle = r.styles.winner
		}
		b.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", width, p)))

		marker := " "
		if hasServer && !finished && server == p {
			marker = serverMarker
		}
		b.WriteString(" " + marker)

		for _, set := range sets {
			games, _ := set.Get(p)
			b.WriteString(r.styles.set.Render(fmt.Sprint(games)))
		}
		if inSet && !finished {
			games, _ := current.Get(p)
			b.WriteString(r.styles.current.Render(fmt.Sprint(games)))
		}
		if points != nil {
			b.WriteString(r.styles.point.Render(points[i]))
		}
		rows = append(rows, b.String())
	}

	header := r.styles.header.Render(m.Settings().String())
	status := r.styles.muted.Render(r.status(m))
	body := r.styles.board.Render(strings.Join(rows, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

// pointColumn returns the game or tiebreak score per player, or nil when no
// game is being played
func (r *Renderer) pointColumn(m *tennis.Match) []string {
	players := m.Players()
	if game, ok := m.CurrentGameScore(); ok {
		out := make([]string, len(players))
		for i, p := range players {
			v, _ := game.Get(p)
			out[i] = v.String()
		}
		return out
	}
	if tb, ok := m.CurrentTiebreakScore(); ok {
		out := make([]string, len(players))
		for i, p := range players {
			v, _ := tb.Get(p)
			out[i] = fmt.Sprint(v)
		}
		return out
	}
	return nil
}

func (r *Renderer) status(m *tennis.Match) string {
	if winner, ok := m.Winner(); ok {
		return fmt.Sprintf("%s wins %s", winner, m.MatchScore())
	}
	switch m.Phase() {
	case tennis.NotStarted:
		if server, ok := m.CurrentServer(); ok {
			return fmt.Sprintf("%s to serve", server)
		}
		return "waiting for first server"
	case tennis.TiebreakInProgress:
		return "tiebreak"
	case tennis.SuperTiebreakInProgress:
		return "super-tiebreak"
	case tennis.BetweenGames:
		return "between games"
	}
	return "game in progress"
}

// Report summarises a simulation run
func (r *Renderer) Report(stats *statistics.Statistics, players [2]tennis.Player) string {
	var b strings.Builder

	b.WriteString(r.styles.header.Render(fmt.Sprintf("%d matches", stats.Matches)))
	b.WriteString("\n\n")

	width := max(lipgloss.Width(players[0].String()), lipgloss.Width(players[1].String()))
	for i, p := range players {
		lo, hi := stats.WinRateCI95(i)
		fmt.Fprintf(&b, "%s  %s  %5.1f%%  %s\n",
			r.styles.name.Render(fmt.Sprintf("%-*s", width, p)),
			r.bar.ViewAs(stats.WinRate(i)),
			stats.WinRate(i)*100,
			r.styles.muted.Render(fmt.Sprintf("(95%% CI %.1f-%.1f%%)", lo*100, hi*100)))
	}

	fmt.Fprintf(&b, "\nPoints per match: mean %.1f, sd %.1f, median %.0f\n",
		stats.MeanPoints(), stats.StdDev(), stats.Median())
	fmt.Fprintf(&b, "Tiebreaks: %d  Super-tiebreaks: %d  Sets: %d\n",
		stats.Tiebreaks, stats.SuperTiebreaks, stats.Sets)

	keys := stats.SetScoreKeys()
	if len(keys) > topSetScores {
		keys = keys[:topSetScores]
	}
	if len(keys) > 0 {
		b.WriteString("\nSet scores:\n")
		for _, k := range keys {
			n := stats.SetScores[k]
			fmt.Fprintf(&b, "  %-6s %6d  %s\n", k, n,
				r.styles.muted.Render(fmt.Sprintf("%.1f%%", 100*float64(n)/float64(stats.Sets))))
		}
	}
	return b.String()
}
