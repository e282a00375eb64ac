package tennis

import "fmt"

// Score maps exactly two players to a value. It is a value type: With returns
// a new Score and never changes the receiver.
type Score[T comparable] struct {
	players [2]Player
	values  [2]T
}

// NewScore creates a score with an explicit value for each player
func NewScore[T comparable](p1 Player, v1 T, p2 Player, v2 T) (Score[T], error) {
	if p1 == p2 {
		return Score[T]{}, fmt.Errorf("%w: %s", ErrDuplicatePlayer, p1)
	}
	return Score[T]{players: [2]Player{p1, p2}, values: [2]T{v1, v2}}, nil
}

// newScore starts both players at the same value. Callers guarantee distinct players.
func newScore[T comparable](players [2]Player, zero T) Score[T] {
	return Score[T]{players: players, values: [2]T{zero, zero}}
}

func (s Score[T]) index(p Player) (int, error) {
	switch p {
	case s.players[0]:
		return 0, nil
	case s.players[1]:
		return 1, nil
	}
	return -1, fmt.Errorf("%w: %s", ErrUnknownPlayer, p)
}

// Get returns the value held by p
func (s Score[T]) Get(p Player) (T, error) {
	i, err := s.index(p)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.values[i], nil
}

// With returns a copy of s where p holds v
func (s Score[T]) With(p Player, v T) (Score[T], error) {
	i, err := s.index(p)
	if err != nil {
		return s, err
	}
	s.values[i] = v
	return s, nil
}

// Other returns the value held by the player who is not p
func (s Score[T]) Other(p Player) (T, error) {
	i, err := s.index(p)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.values[1-i], nil
}

// Opponent returns the player who is not p
func (s Score[T]) Opponent(p Player) (Player, error) {
	i, err := s.index(p)
	if err != nil {
		return Player{}, err
	}
	return s.players[1-i], nil
}

// Players returns both keys in construction order
func (s Score[T]) Players() [2]Player {
	return s.players
}

// Values returns both values in construction order
func (s Score[T]) Values() [2]T {
	return s.values
}

// Equal compares keys and values regardless of construction order
func (s Score[T]) Equal(o Score[T]) bool {
	if s.players == o.players {
		return s.values == o.values
	}
	return s.players[0] == o.players[1] && s.players[1] == o.players[0] &&
		s.values[0] == o.values[1] && s.values[1] == o.values[0]
}

func (s Score[T]) String() string {
	return fmt.Sprintf("%v-%v", s.values[0], s.values[1])
}

// get and other are for internal callers that already validated p.
func (s Score[T]) get(p Player) T {
	v, _ := s.Get(p)
	return v
}

func (s Score[T]) other(p Player) T {
	v, _ := s.Other(p)
	return v
}

func (s Score[T]) with(p Player, v T) Score[T] {
	n, _ := s.With(p, v)
	return n
}

func (s Score[T]) opponent(p Player) Player {
	o, _ := s.Opponent(p)
	return o
}
