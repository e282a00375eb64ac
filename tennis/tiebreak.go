package tennis

const (
	TiebreakTarget      = 7
	SuperTiebreakTarget = 10
	tiebreakMargin      = 2
)

// TiebreakCounter scores a tiebreak or super-tiebreak: first to target points
// with a lead of two.
type TiebreakCounter struct {
	points marginCounter
}

// NewTiebreakCounter starts a tiebreak to target points
func NewTiebreakCounter(p1, p2 Player, target int) (TiebreakCounter, error) {
	if p1 == p2 {
		return TiebreakCounter{}, ErrDuplicatePlayer
	}
	return newTiebreakCounter([2]Player{p1, p2}, target), nil
}

func newTiebreakCounter(players [2]Player, target int) TiebreakCounter {
	return TiebreakCounter{points: newMarginCounter(players, target, tiebreakMargin, 0)}
}

// Increment records a point for winner
func (t TiebreakCounter) Increment(winner Player) (TiebreakCounter, error) {
	next, ok, err := t.points.increment(winner)
	if err != nil {
		return t, err
	}
	if !ok {
		return t, ErrTiebreakAlreadyWon
	}
	t.points = next
	return t, nil
}

// IsWon reports whether p has reached the target with a two point lead
func (t TiebreakCounter) IsWon(p Player) bool {
	if _, err := t.points.score.index(p); err != nil {
		return false
	}
	return t.points.won(p)
}

// ShouldChangeServer is true after every odd cumulative point (1, 3, 5, ...)
func (t TiebreakCounter) ShouldChangeServer() bool {
	return t.points.total()%2 == 1
}

// Target returns the number of points needed to win
func (t TiebreakCounter) Target() int {
	return t.points.target
}

func (t TiebreakCounter) Score() Score[int] {
	return t.points.score
}
