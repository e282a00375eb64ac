package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tennisassist/internal/statistics"
	"github.com/lox/tennisassist/tennis"
)

var (
	alice = tennis.Singles("Alice")
	bob   = tennis.Singles("Bob")
)

func plain() *Renderer {
	return NewRenderer(&bytes.Buffer{}, false)
}

func newMatch(t *testing.T) *tennis.Match {
	t.Helper()
	m, err := tennis.NewMatch(alice, bob, tennis.DefaultSettings())
	require.NoError(t, err)
	return m
}

func TestScoreboardBeforePlay(t *testing.T) {
	t.Parallel()
	m := newMatch(t)
	out := plain().Scoreboard(m)
	assert.Contains(t, out, "best_of_three/advantage/final_set=tiebreak")
	assert.Contains(t, out, "waiting for first server")
	assert.NotContains(t, out, "\x1b[")
}

func TestScoreboardGameInProgress(t *testing.T) {
	t.Parallel()
	m := newMatch(t)
	require.NoError(t, m.RegisterFirstServer(alice))
	require.NoError(t, m.StartPlay())
	for _, p := range []tennis.Player{alice, alice, bob} {
		require.NoError(t, m.RegisterPoint(p))
	}

	out := plain().Scoreboard(m)
	lines := strings.Split(out, "\n")
	var aliceRow, bobRow string
	for _, l := range lines {
		switch {
		case strings.Contains(l, "Alice"):
			aliceRow = l
		case strings.Contains(l, "Bob"):
			bobRow = l
		}
	}
	require.NotEmpty(t, aliceRow)
	require.NotEmpty(t, bobRow)
	assert.Contains(t, aliceRow, "Alice *")
	assert.Contains(t, aliceRow, "30")
	assert.NotContains(t, bobRow, serverMarker)
	assert.Contains(t, bobRow, "15")
	assert.Contains(t, out, "game in progress")
}

func TestScoreboardFinished(t *testing.T) {
	t.Parallel()
	m := newMatch(t)
	require.NoError(t, m.RegisterFirstServer(bob))
	for range 12 {
		require.NoError(t, m.StartPlay())
		for range 4 {
			require.NoError(t, m.RegisterPoint(bob))
		}
	}

	out := plain().Scoreboard(m)
	assert.Contains(t, out, "Bob wins")
	assert.NotContains(t, out, serverMarker)
	assert.Equal(t, 2, strings.Count(out, "6"), "two completed sets of 6 games")
}

func TestScoreboardMatchSuperTiebreak(t *testing.T) {
	t.Parallel()
	m, err := tennis.NewMatch(alice, bob, tennis.Settings{
		Format:      tennis.SingleSetSuperTiebreak,
		GameScoring: tennis.AdvantageScoring,
		FinalSet:    tennis.TiebreakSet,
	})
	require.NoError(t, err)
	require.NoError(t, m.RegisterFirstServer(alice))
	for _, winner := range []tennis.Player{alice, bob} {
		for range 6 {
			require.NoError(t, m.StartPlay())
			for range 4 {
				require.NoError(t, m.RegisterPoint(winner))
			}
		}
	}
	require.NoError(t, m.StartPlay())
	require.Equal(t, tennis.SuperTiebreakInProgress, m.Phase())
	for range 3 {
		require.NoError(t, m.RegisterPoint(bob))
	}

	out := plain().Scoreboard(m)
	assert.Contains(t, out, "super-tiebreak")
	// sets 6-0 and 0-6, then the super-tiebreak points with no empty set column
	assert.Equal(t, 3, strings.Count(out, "0"), "two completed set zeros and alice's tiebreak points")
	assert.Contains(t, out, "3")
}

func TestReport(t *testing.T) {
	t.Parallel()
	stats := &statistics.Statistics{}
	stats.Add(statistics.MatchResult{Winner: 0, Sets: [][2]int{{6, 4}, {6, 2}}, Points: 110})
	stats.Add(statistics.MatchResult{Winner: 0, Sets: [][2]int{{7, 6}, {6, 4}}, Points: 140, Tiebreaks: 1})
	stats.Add(statistics.MatchResult{Winner: 1, Sets: [][2]int{{3, 6}, {4, 6}}, Points: 100})

	out := plain().Report(stats, [2]tennis.Player{alice, bob})
	assert.Contains(t, out, "3 matches")
	assert.Contains(t, out, "66.7%")
	assert.Contains(t, out, "33.3%")
	assert.Contains(t, out, "Tiebreaks: 1")
	assert.Contains(t, out, "6-4")
	assert.Contains(t, out, "█")
	assert.NotContains(t, out, "\x1b[")
}
