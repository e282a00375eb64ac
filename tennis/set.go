package tennis

// SetVariant selects how a set tied at 6-6 is resolved
type SetVariant uint8

const (
	// TiebreakAtSix plays a tiebreak at 6-6; the set is won 7-6. Used for every
	// set except a final set configured otherwise.
	TiebreakAtSix SetVariant = iota
	// AdvantageVariant has no ceiling: games continue until a two game lead.
	AdvantageVariant
	// SuperTiebreakAtSix plays a super-tiebreak at 6-6 in place of the 13th game.
	SuperTiebreakAtSix
)

const (
	gamesToWinSet = 6
	setCeiling    = 7
	setMargin     = 2
)

func (v SetVariant) String() string {
	switch v {
	case AdvantageVariant:
		return "advantage"
	case SuperTiebreakAtSix:
		return "super_tiebreak"
	default:
		return "tiebreak"
	}
}

// VariantFor picks the set variant. Only the final set honours the configured
// final set resolution.
func VariantFor(finalSet bool, resolution TieResolution) SetVariant {
	if !finalSet {
		return TiebreakAtSix
	}
	switch resolution {
	case AdvantageSet:
		return AdvantageVariant
	case SuperTiebreakSet:
		return SuperTiebreakAtSix
	default:
		return TiebreakAtSix
	}
}

// SetCounter counts games within a set
type SetCounter struct {
	variant SetVariant
	games   marginCounter
}

// NewSetCounter starts a set at 0-0
func NewSetCounter(p1, p2 Player, variant SetVariant) (SetCounter, error) {
	if p1 == p2 {
		return SetCounter{}, ErrDuplicatePlayer
	}
	return newSetCounter([2]Player{p1, p2}, variant), nil
}

func newSetCounter(players [2]Player, variant SetVariant) SetCounter {
	ceiling := setCeiling
	if variant == AdvantageVariant {
		ceiling = 0
	}
	return SetCounter{variant: variant, games: newMarginCounter(players, gamesToWinSet, setMargin, ceiling)}
}

// Increase records a game for winner
func (s SetCounter) Increase(winner Player) (SetCounter, error) {
	next, ok, err := s.games.increment(winner)
	if err != nil {
		return s, err
	}
	if !ok {
		return s, ErrSetAlreadyWon
	}
	s.games = next
	return s, nil
}

// IsWon reports whether p has won the set
func (s SetCounter) IsWon(p Player) bool {
	if _, err := s.games.score.index(p); err != nil {
		return false
	}
	return s.games.won(p)
}

// NeedsTiebreak is true at 6-6 in a tiebreak set
func (s SetCounter) NeedsTiebreak() bool {
	return s.variant == TiebreakAtSix && s.games.level(gamesToWinSet)
}

// NeedsSuperTiebreak is true at 6-6 in a super-tiebreak set
func (s SetCounter) NeedsSuperTiebreak() bool {
	return s.variant == SuperTiebreakAtSix && s.games.level(gamesToWinSet)
}

func (s SetCounter) Variant() SetVariant {
	return s.variant
}

func (s SetCounter) Score() Score[int] {
	return s.games.score
}
