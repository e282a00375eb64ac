package tennis

// GameCounter scores the points of a single game. Points are counted raw and
// projected onto GamePoint, so deuce and advantage fall out of the margin rule:
// advantage scoring needs four points and a lead of two, golden point needs four
// points and any lead.
type GameCounter struct {
	scoring GameScoring
	points  marginCounter
}

// NewGameCounter starts a game at 0-0
func NewGameCounter(p1, p2 Player, scoring GameScoring) (GameCounter, error) {
	if p1 == p2 {
		return GameCounter{}, ErrDuplicatePlayer
	}
	if _, ok := gameScoringNames[scoring]; !ok {
		return GameCounter{}, ErrInvalidSettings
	}
	return newGameCounter([2]Player{p1, p2}, scoring), nil
}

func newGameCounter(players [2]Player, scoring GameScoring) GameCounter {
	var margin int
	switch scoring {
	case NoAdvantageScoring:
		margin = 1
	default:
		margin = 2
	}
	return GameCounter{scoring: scoring, points: newMarginCounter(players, 4, margin, 0)}
}

// Increment records a point for winner
func (g GameCounter) Increment(winner Player) (GameCounter, error) {
	next, ok, err := g.points.increment(winner)
	if err != nil {
		return g, err
	}
	if !ok {
		return g, ErrGameAlreadyWon
	}
	g.points = next
	return g, nil
}

// HasWon reports whether p has won the game
func (g GameCounter) HasWon(p Player) bool {
	if _, err := g.points.score.index(p); err != nil {
		return false
	}
	return g.points.won(p)
}

// Scoring returns the policy the counter was built with
func (g GameCounter) Scoring() GameScoring {
	return g.scoring
}

// Score returns the game score as tennis calls it
func (g GameCounter) Score() Score[GamePoint] {
	players := g.points.score.players
	return Score[GamePoint]{
		players: players,
		values:  [2]GamePoint{g.point(players[0]), g.point(players[1])},
	}
}

func (g GameCounter) point(p Player) GamePoint {
	if g.points.won(p) {
		return Game
	}
	mine, theirs := g.points.score.get(p), g.points.score.other(p)
	if mine >= 3 && theirs >= 3 {
		if mine > theirs {
			return Advantage
		}
		return Forty
	}
	return GamePoint(mine)
}
