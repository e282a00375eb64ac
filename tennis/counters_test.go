package tennis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playGame(t *testing.T, scoring GameScoring, points ...Player) GameCounter {
	t.Helper()
	g, err := NewGameCounter(alice, bob, scoring)
	require.NoError(t, err)
	for i, p := range points {
		g, err = g.Increment(p)
		require.NoError(t, err, "point %d", i+1)
	}
	return g
}

func gameScore(t *testing.T, g GameCounter) [2]GamePoint {
	t.Helper()
	s := g.Score()
	a, err := s.Get(alice)
	require.NoError(t, err)
	b, err := s.Get(bob)
	require.NoError(t, err)
	return [2]GamePoint{a, b}
}

func TestGameCounterAdvantage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		points []Player
		want   [2]GamePoint
		winner *Player
	}{
		{"love all", nil, [2]GamePoint{Zero, Zero}, nil},
		{"forty love", []Player{alice, alice, alice}, [2]GamePoint{Forty, Zero}, nil},
		{"game to love", []Player{alice, alice, alice, alice}, [2]GamePoint{Game, Zero}, &alice},
		{"forty thirty wins", []Player{alice, alice, bob, bob, alice, alice}, [2]GamePoint{Game, Thirty}, &alice},
		{"deuce", []Player{alice, alice, alice, bob, bob, bob}, [2]GamePoint{Forty, Forty}, nil},
		{"advantage", []Player{alice, alice, alice, bob, bob, bob, bob}, [2]GamePoint{Forty, Advantage}, nil},
		{"back to deuce", []Player{alice, alice, alice, bob, bob, bob, bob, alice}, [2]GamePoint{Forty, Forty}, nil},
		{"won from advantage", []Player{alice, alice, alice, bob, bob, bob, alice, alice}, [2]GamePoint{Game, Forty}, &alice},
		{"long deuce", []Player{alice, alice, alice, bob, bob, bob, alice, bob, bob, alice, bob, bob}, [2]GamePoint{Forty, Game}, &bob},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := playGame(t, AdvantageScoring, tt.points...)
			assert.Equal(t, tt.want, gameScore(t, g))
			assert.Equal(t, tt.winner != nil && *tt.winner == alice, g.HasWon(alice))
			assert.Equal(t, tt.winner != nil && *tt.winner == bob, g.HasWon(bob))
		})
	}
}

func TestGameCounterNoAdvantage(t *testing.T) {
	t.Parallel()

	t.Run("golden point at deuce", func(t *testing.T) {
		g := playGame(t, NoAdvantageScoring, alice, alice, alice, bob, bob, bob)
		assert.Equal(t, [2]GamePoint{Forty, Forty}, gameScore(t, g))

		won, err := g.Increment(bob)
		require.NoError(t, err)
		assert.True(t, won.HasWon(bob))
		assert.Equal(t, [2]GamePoint{Forty, Game}, gameScore(t, won))
	})

	t.Run("trailing player only reaches forty", func(t *testing.T) {
		g := playGame(t, NoAdvantageScoring, alice, alice, alice, bob, bob)
		assert.Equal(t, [2]GamePoint{Forty, Thirty}, gameScore(t, g))

		g, err := g.Increment(bob)
		require.NoError(t, err)
		assert.False(t, g.HasWon(bob))
		assert.False(t, g.HasWon(alice))
		assert.Equal(t, [2]GamePoint{Forty, Forty}, gameScore(t, g))
	})

	t.Run("never shows advantage", func(t *testing.T) {
		g := playGame(t, NoAdvantageScoring, alice, bob, alice, bob, alice, bob)
		for _, v := range gameScore(t, g) {
			assert.NotEqual(t, Advantage, v)
		}
	})
}

func TestGameCounterRejectsPointsAfterGame(t *testing.T) {
	t.Parallel()
	for _, scoring := range []GameScoring{AdvantageScoring, NoAdvantageScoring} {
		g := playGame(t, scoring, alice, alice, alice, alice)
		require.True(t, g.HasWon(alice))

		_, err := g.Increment(alice)
		assert.ErrorIs(t, err, ErrGameAlreadyWon, scoring.String())
		_, err = g.Increment(bob)
		assert.ErrorIs(t, err, ErrGameAlreadyWon, scoring.String())
	}
}

func TestGameCounterUnknownPlayer(t *testing.T) {
	t.Parallel()
	g := playGame(t, AdvantageScoring)
	_, err := g.Increment(carol)
	assert.ErrorIs(t, err, ErrUnknownPlayer)
	assert.False(t, g.HasWon(carol))
}

func TestTiebreakCounterServeRotation(t *testing.T) {
	t.Parallel()
	tb, err := NewTiebreakCounter(alice, bob, TiebreakTarget)
	require.NoError(t, err)
	assert.False(t, tb.ShouldChangeServer())

	for total := 1; total <= 12; total++ {
		p := alice
		if total%2 == 0 {
			p = bob
		}
		tb, err = tb.Increment(p)
		require.NoError(t, err)
		assert.Equal(t, total%2 == 1, tb.ShouldChangeServer(), "after %d points", total)
	}
}

func TestTiebreakCounterWinCondition(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		target  int
		alice   int
		bob     int
		aliceWn bool
	}{
		{"seven love", TiebreakTarget, 7, 0, true},
		{"seven five", TiebreakTarget, 7, 5, true},
		{"seven six", TiebreakTarget, 7, 6, false},
		{"eight six", TiebreakTarget, 8, 6, true},
		{"super nine nine", SuperTiebreakTarget, 9, 9, false},
		{"super ten eight", SuperTiebreakTarget, 10, 8, true},
		{"super ten nine", SuperTiebreakTarget, 10, 9, false},
		{"super seven love", SuperTiebreakTarget, 7, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb, err := NewTiebreakCounter(alice, bob, tt.target)
			require.NoError(t, err)
			// interleave so neither side wins early
			for i := 0; i < max(tt.alice, tt.bob); i++ {
				if i < tt.bob {
					tb, err = tb.Increment(bob)
					require.NoError(t, err)
				}
				if i < tt.alice {
					tb, err = tb.Increment(alice)
					require.NoError(t, err)
				}
			}
			assert.Equal(t, tt.aliceWn, tb.IsWon(alice))
			assert.False(t, tb.IsWon(bob))
		})
	}
}

func TestTiebreakCounterRejectsPointsAfterWin(t *testing.T) {
	t.Parallel()
	tb, _ := NewTiebreakCounter(alice, bob, TiebreakTarget)
	var err error
	for range 7 {
		tb, err = tb.Increment(bob)
		require.NoError(t, err)
	}
	require.True(t, tb.IsWon(bob))

	_, err = tb.Increment(bob)
	assert.ErrorIs(t, err, ErrTiebreakAlreadyWon)
	assert.Equal(t, 7, tb.Score().get(bob))
}

func playSet(t *testing.T, variant SetVariant, games ...Player) SetCounter {
	t.Helper()
	s, err := NewSetCounter(alice, bob, variant)
	require.NoError(t, err)
	for i, p := range games {
		s, err = s.Increase(p)
		require.NoError(t, err, "game %d", i+1)
	}
	return s
}

// alternating returns n games won alternately, alice first
func alternating(n int) []Player {
	games := make([]Player, n)
	for i := range games {
		games[i] = alice
		if i%2 == 1 {
			games[i] = bob
		}
	}
	return games
}

func repeat(p Player, n int) []Player {
	out := make([]Player, n)
	for i := range out {
		out[i] = p
	}
	return out
}

func TestSetCounterTiebreakAtSix(t *testing.T) {
	t.Parallel()

	t.Run("six four wins", func(t *testing.T) {
		s := playSet(t, TiebreakAtSix, append(alternating(8), alice, alice)...)
		assert.Equal(t, [2]int{6, 4}, s.Score().Values())
		assert.True(t, s.IsWon(alice))
	})

	t.Run("six five is not won", func(t *testing.T) {
		s := playSet(t, TiebreakAtSix, append(alternating(10), alice)...)
		assert.False(t, s.IsWon(alice))
		assert.False(t, s.NeedsTiebreak())
	})

	t.Run("seven five wins", func(t *testing.T) {
		s := playSet(t, TiebreakAtSix, append(alternating(10), alice, alice)...)
		assert.True(t, s.IsWon(alice))
	})

	t.Run("six all needs tiebreak", func(t *testing.T) {
		s := playSet(t, TiebreakAtSix, alternating(12)...)
		assert.True(t, s.NeedsTiebreak())
		assert.False(t, s.NeedsSuperTiebreak())
		assert.False(t, s.IsWon(alice))

		s, err := s.Increase(bob)
		require.NoError(t, err)
		assert.Equal(t, [2]int{6, 7}, s.Score().Values())
		assert.True(t, s.IsWon(bob))

		_, err = s.Increase(alice)
		assert.ErrorIs(t, err, ErrSetAlreadyWon)
	})
}

func TestSetCounterAdvantage(t *testing.T) {
	t.Parallel()
	s := playSet(t, AdvantageVariant, alternating(12)...)
	assert.False(t, s.NeedsTiebreak())
	assert.False(t, s.NeedsSuperTiebreak())

	s, err := s.Increase(alice)
	require.NoError(t, err)
	assert.False(t, s.IsWon(alice), "7-6 is not won without a tiebreak")

	s = playSet(t, AdvantageVariant, append(alternating(16), alice, alice)...)
	assert.Equal(t, [2]int{10, 8}, s.Score().Values())
	assert.True(t, s.IsWon(alice))
}

func TestSetCounterSuperTiebreak(t *testing.T) {
	t.Parallel()
	s := playSet(t, SuperTiebreakAtSix, alternating(12)...)
	assert.True(t, s.NeedsSuperTiebreak())
	assert.False(t, s.NeedsTiebreak())

	s = playSet(t, SuperTiebreakAtSix, repeat(bob, 6)...)
	assert.True(t, s.IsWon(bob))
}

func TestVariantFor(t *testing.T) {
	t.Parallel()
	for _, res := range []TieResolution{AdvantageSet, TiebreakSet, SuperTiebreakSet} {
		assert.Equal(t, TiebreakAtSix, VariantFor(false, res), res.String())
	}
	assert.Equal(t, AdvantageVariant, VariantFor(true, AdvantageSet))
	assert.Equal(t, TiebreakAtSix, VariantFor(true, TiebreakSet))
	assert.Equal(t, SuperTiebreakAtSix, VariantFor(true, SuperTiebreakSet))
}
