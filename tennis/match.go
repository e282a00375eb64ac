package tennis

import (
	"fmt"
	"slices"
)

// Match tracks a single match from the choice of first server to the winner.
// A Match is not safe for concurrent use; independent matches share nothing.
type Match struct {
	st state
}

// NewMatch creates a match between two distinct identities
func NewMatch(p1, p2 Player, settings Settings) (*Match, error) {
	if p1.IsZero() || p2.IsZero() {
		return nil, ErrEmptyPlayer
	}
	if p1 == p2 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, p1)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Match{st: newState([2]Player{p1, p2}, settings)}, nil
}

// Apply processes one event. On error the match is left exactly as it was.
func (m *Match) Apply(ev Event) ([]Change, error) {
	next, changes, err := step(m.st, ev)
	if err != nil {
		return nil, err
	}
	m.st = next
	return changes, nil
}

// RegisterFirstServer chooses who serves the first game
func (m *Match) RegisterFirstServer(p Player) error {
	_, err := m.Apply(FirstServerEvent(p))
	return err
}

// StartPlay starts the next game, tiebreak or super-tiebreak
func (m *Match) StartPlay() error {
	_, err := m.Apply(StartPlayEvent())
	return err
}

// RegisterPoint awards the point in play to p
func (m *Match) RegisterPoint(p Player) error {
	_, err := m.Apply(PointEvent(p))
	return err
}

func (m *Match) Players() [2]Player {
	return m.st.players
}

func (m *Match) Settings() Settings {
	return m.st.settings
}

func (m *Match) Phase() PhaseKind {
	return m.st.phase.kind()
}

// CurrentServer returns the serving player once one has been chosen
func (m *Match) CurrentServer() (Player, bool) {
	return m.st.server, m.st.hasServer
}

// CurrentGameScore returns the score of the regular game in progress
func (m *Match) CurrentGameScore() (Score[GamePoint], bool) {
	if ph, ok := m.st.phase.(gameInProgress); ok {
		return ph.game.Score(), true
	}
	return Score[GamePoint]{}, false
}

// CurrentTiebreakScore returns the points of a running tiebreak or super-tiebreak
func (m *Match) CurrentTiebreakScore() (Score[int], bool) {
	switch ph := m.st.phase.(type) {
	case tiebreakInProgress:
		return ph.counter.Score(), true
	case superTiebreakInProgress:
		return ph.counter.Score(), true
	}
	return Score[int]{}, false
}

// CurrentSetScore returns the games of the set in progress
func (m *Match) CurrentSetScore() (Score[int], bool) {
	if !m.st.hasSet {
		return Score[int]{}, false
	}
	return m.st.set.Score(), true
}

// MatchScore returns sets won per player
func (m *Match) MatchScore() Score[int] {
	return m.st.matchScore
}

// CompletedSetScores returns one score per finished set, oldest first
func (m *Match) CompletedSetScores() []Score[int] {
	return slices.Clone(m.st.sets)
}

// Winner returns the winner once the match is finished
func (m *Match) Winner() (Player, bool) {
	if ph, ok := m.st.phase.(finished); ok {
		return ph.winner, true
	}
	return Player{}, false
}
