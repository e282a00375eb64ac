package tennis

import "fmt"

// MatchFormat decides how many sets a match is played over
type MatchFormat uint8

const (
	BestOfThree MatchFormat = iota + 1
	BestOfFive
	// SingleSetSuperTiebreak plays sets until one-set-all, then a super-tiebreak
	// decides the match. The winner is still credited with two sets.
	SingleSetSuperTiebreak
)

// GameScoring decides how a game is won from 40-40
type GameScoring uint8

const (
	AdvantageScoring GameScoring = iota + 1
	// NoAdvantageScoring is golden point: a point won at 40 wins the game.
	NoAdvantageScoring
)

// TieResolution decides how a final set tied at 6-6 is resolved
type TieResolution uint8

const (
	AdvantageSet TieResolution = iota + 1
	TiebreakSet
	SuperTiebreakSet
)

var (
	matchFormatNames = map[MatchFormat]string{
		BestOfThree:            "best_of_three",
		BestOfFive:             "best_of_five",
		SingleSetSuperTiebreak: "single_set_super_tiebreak",
	}
	gameScoringNames = map[GameScoring]string{
		AdvantageScoring:   "advantage",
		NoAdvantageScoring: "no_advantage",
	}
	tieResolutionNames = map[TieResolution]string{
		AdvantageSet:     "advantage",
		TiebreakSet:      "tiebreak",
		SuperTiebreakSet: "super_tiebreak",
	}
)

func (f MatchFormat) String() string {
	if name, ok := matchFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("MatchFormat(%d)", uint8(f))
}

func (g GameScoring) String() string {
	if name, ok := gameScoringNames[g]; ok {
		return name
	}
	return fmt.Sprintf("GameScoring(%d)", uint8(g))
}

func (r TieResolution) String() string {
	if name, ok := tieResolutionNames[r]; ok {
		return name
	}
	return fmt.Sprintf("TieResolution(%d)", uint8(r))
}

// ParseMatchFormat parses the snake_case name of a format
func ParseMatchFormat(s string) (MatchFormat, error) {
	for f, name := range matchFormatNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown match format %q", s)
}

// ParseGameScoring parses the snake_case name of a game scoring policy
func ParseGameScoring(s string) (GameScoring, error) {
	for g, name := range gameScoringNames {
		if name == s {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown game scoring %q", s)
}

// ParseTieResolution parses the snake_case name of a final set resolution
func ParseTieResolution(s string) (TieResolution, error) {
	for r, name := range tieResolutionNames {
		if name == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown final set resolution %q", s)
}

// Settings is the immutable rule set of a match
type Settings struct {
	Format      MatchFormat
	GameScoring GameScoring
	FinalSet    TieResolution
}

// DefaultSettings returns best of three sets, advantage games and a final set tiebreak
func DefaultSettings() Settings {
	return Settings{
		Format:      BestOfThree,
		GameScoring: AdvantageScoring,
		FinalSet:    TiebreakSet,
	}
}

// Validate rejects enum values outside the known set
func (s Settings) Validate() error {
	if _, ok := matchFormatNames[s.Format]; !ok {
		return fmt.Errorf("%w: match format %s", ErrInvalidSettings, s.Format)
	}
	if _, ok := gameScoringNames[s.GameScoring]; !ok {
		return fmt.Errorf("%w: game scoring %s", ErrInvalidSettings, s.GameScoring)
	}
	if _, ok := tieResolutionNames[s.FinalSet]; !ok {
		return fmt.Errorf("%w: final set %s", ErrInvalidSettings, s.FinalSet)
	}
	return nil
}

// IsMatchFinished reports whether a player holding leaderSets sets has won
func (s Settings) IsMatchFinished(leaderSets int) bool {
	switch s.Format {
	case BestOfThree, SingleSetSuperTiebreak:
		return leaderSets == 2
	case BestOfFive:
		return leaderSets == 3
	}
	return false
}

// IsFinalSet reports whether the set played at this match score decides the match
func (s Settings) IsFinalSet(sets1, sets2 int) bool {
	switch s.Format {
	case BestOfThree:
		return sets1 == 1 && sets2 == 1
	case BestOfFive:
		return sets1 == 2 && sets2 == 2
	}
	return false
}

// NeedsSuperTiebreak reports whether the match score calls for a match
// super-tiebreak instead of another set
func (s Settings) NeedsSuperTiebreak(sets1, sets2 int) bool {
	return s.Format == SingleSetSuperTiebreak && sets1 == 1 && sets2 == 1
}

func (s Settings) String() string {
	return fmt.Sprintf("%s/%s/final_set=%s", s.Format, s.GameScoring, s.FinalSet)
}
