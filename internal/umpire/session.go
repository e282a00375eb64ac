// Package umpire records a match as it is scored, keeping a timestamped log of
// every accepted event.
package umpire

import (
	"fmt"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/tennisassist/internal/matchid"
	"github.com/lox/tennisassist/tennis"
)

// Session wraps a match for a single umpire. It is safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	id      string
	match   *tennis.Match
	clock   quartz.Clock
	logger  *log.Logger
	entries []Entry
}

// NewSession starts recording match
func NewSession(match *tennis.Match, opts ...Option) *Session {
	if match == nil {
		panic("umpire: match is required")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.id == "" {
		cfg.id = matchid.NewGenerator(cfg.clock, nil).Generate()
	}

	players := match.Players()
	return &Session{
		id:    cfg.id,
		match: match,
		clock: cfg.clock,
		logger: cfg.logger.WithPrefix("umpire").With(
			"match", cfg.id,
			"players", fmt.Sprintf("%s vs %s", players[0], players[1]),
		),
	}
}

func (s *Session) ID() string {
	return s.id
}

// ChooseServer registers who serves first
func (s *Session) ChooseServer(p tennis.Player) error {
	return s.apply(tennis.FirstServerEvent(p))
}

// StartPlay begins the next game or tiebreak
func (s *Session) StartPlay() error {
	return s.apply(tennis.StartPlayEvent())
}

// Point awards the current point to p
func (s *Session) Point(p tennis.Player) error {
	return s.apply(tennis.PointEvent(p))
}

// Play replays a whole sequence of points, starting play whenever the match
// is waiting between games.
func (s *Session) Play(firstServer tennis.Player, points []tennis.Player) error {
	if err := s.ChooseServer(firstServer); err != nil {
		return err
	}
	for i, p := range points {
		switch s.Phase() {
		case tennis.NotStarted, tennis.BetweenGames:
			if err := s.StartPlay(); err != nil {
				return fmt.Errorf("point %d: %w", i+1, err)
			}
		}
		if err := s.Point(p); err != nil {
			return fmt.Errorf("point %d: %w", i+1, err)
		}
	}
	return nil
}

func (s *Session) apply(ev tennis.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changes, err := s.match.Apply(ev)
	if err != nil {
		s.logger.Warn("Event rejected", "event", ev, "phase", s.match.Phase(), "error", err)
		return err
	}

	entry := Entry{
		Seq:     len(s.entries) + 1,
		Event:   ev,
		Changes: changes,
		At:      s.clock.Now("umpire", "apply"),
	}
	s.entries = append(s.entries, entry)

	for _, c := range changes {
		switch c.Kind {
		case tennis.ChangeGameWon:
			s.logger.Info("Game", "winner", c.Player, "set", c.Score)
		case tennis.ChangeSetWon:
			s.logger.Info("Set", "winner", c.Player, "score", c.Score)
		case tennis.ChangeMatchWon:
			s.logger.Info("Match", "winner", c.Player, "sets", c.Score)
		case tennis.ChangeTiebreakStarted, tennis.ChangeSuperTiebreakStarted:
			s.logger.Info("Tiebreak", "kind", c.Kind)
		default:
			s.logger.Debug("Change", "kind", c.Kind, "player", c.Player)
		}
	}
	return nil
}

// Phase reports the phase of the underlying match
func (s *Session) Phase() tennis.PhaseKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.match.Phase()
}

// Entries returns a copy of the log
func (s *Session) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.entries)
}

// Summary describes the session so far
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{
		ID:         s.id,
		Players:    s.match.Players(),
		Settings:   s.match.Settings(),
		Sets:       s.match.CompletedSetScores(),
		MatchScore: s.match.MatchScore(),
	}
	sum.Winner, sum.Finished = s.match.Winner()

	for _, e := range s.entries {
		if e.Event.Type == tennis.EventRegisterPoint {
			sum.Points++
		}
		if e.has(tennis.ChangeTiebreakStarted) {
			sum.Tiebreaks++
		}
		if e.has(tennis.ChangeSuperTiebreakStarted) {
			sum.SuperTiebreaks++
		}
	}
	if n := len(s.entries); n > 1 {
		sum.Duration = s.entries[n-1].At.Sub(s.entries[0].At)
	}
	return sum
}

// Match exposes the underlying match for rendering. Callers must not mutate it
// while the session is in use.
func (s *Session) Match() *tennis.Match {
	return s.match
}
