package tennis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsPredicates(t *testing.T) {
	t.Parallel()
	tests := []struct {
		format      MatchFormat
		finishedAt  int
		finalAt     [2]int
		superAt     [2]int
		notFinalAt  [2]int
		hasSuperTie bool
	}{
		{format: BestOfThree, finishedAt: 2, finalAt: [2]int{1, 1}, notFinalAt: [2]int{1, 0}},
		{format: BestOfFive, finishedAt: 3, finalAt: [2]int{2, 2}, notFinalAt: [2]int{1, 1}},
		{format: SingleSetSuperTiebreak, finishedAt: 2, notFinalAt: [2]int{1, 1}, superAt: [2]int{1, 1}, hasSuperTie: true},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			s := Settings{Format: tt.format, GameScoring: AdvantageScoring, FinalSet: TiebreakSet}
			assert.True(t, s.IsMatchFinished(tt.finishedAt))
			assert.False(t, s.IsMatchFinished(tt.finishedAt-1))

			if tt.format != SingleSetSuperTiebreak {
				assert.True(t, s.IsFinalSet(tt.finalAt[0], tt.finalAt[1]))
			}
			assert.False(t, s.IsFinalSet(tt.notFinalAt[0], tt.notFinalAt[1]))

			assert.Equal(t, tt.hasSuperTie, s.NeedsSuperTiebreak(1, 1))
			assert.False(t, s.NeedsSuperTiebreak(1, 0))
		})
	}
}

func TestParseSettingsNames(t *testing.T) {
	t.Parallel()
	for _, f := range []MatchFormat{BestOfThree, BestOfFive, SingleSetSuperTiebreak} {
		got, err := ParseMatchFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	for _, g := range []GameScoring{AdvantageScoring, NoAdvantageScoring} {
		got, err := ParseGameScoring(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, got)
	}
	for _, r := range []TieResolution{AdvantageSet, TiebreakSet, SuperTiebreakSet} {
		got, err := ParseTieResolution(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	_, err := ParseMatchFormat("best_of_seven")
	assert.Error(t, err)
	_, err = ParseGameScoring("")
	assert.Error(t, err)
	_, err = ParseTieResolution("coin_toss")
	assert.Error(t, err)
}

func TestSettingsValidate(t *testing.T) {
	t.Parallel()
	require.NoError(t, DefaultSettings().Validate())

	bad := DefaultSettings()
	bad.FinalSet = 9
	assert.ErrorIs(t, bad.Validate(), ErrInvalidSettings)

	bad = DefaultSettings()
	bad.GameScoring = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidSettings)

	assert.Equal(t, "best_of_three/advantage/final_set=tiebreak", DefaultSettings().String())
}
