// Package simulator plays many matches with a simple serve model to estimate
// how formats and scoring rules play out.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/tennisassist/internal/randutil"
	"github.com/lox/tennisassist/internal/statistics"
	"github.com/lox/tennisassist/tennis"
)

// maxPoints bounds a single match. Players who never lose a point on serve
// never finish a tiebreak.
const maxPoints = 20000

var ErrMatchTooLong = errors.New("simulator: match did not finish")

// Config holds configuration for running simulations
type Config struct {
	Matches  int
	Seed     int64
	Settings tennis.Settings
	Players  [2]tennis.Player
	// ServeWin is the chance each player wins a point on their own serve
	ServeWin [2]float64
	Workers  int
	Logger   *log.Logger
}

// DefaultConfig returns a thousand best of three matches between evenly
// matched players
func DefaultConfig() Config {
	return Config{
		Matches:  1000,
		Seed:     1,
		Settings: tennis.DefaultSettings(),
		Players:  [2]tennis.Player{tennis.Singles("Player A"), tennis.Singles("Player B")},
		ServeWin: [2]float64{0.62, 0.62},
		Workers:  runtime.NumCPU(),
	}
}

func (c Config) Validate() error {
	if c.Matches <= 0 {
		return fmt.Errorf("matches must be positive, got %d", c.Matches)
	}
	for i, p := range c.ServeWin {
		if p < 0 || p > 1 {
			return fmt.Errorf("serve win probability for player %d out of range: %v", i+1, p)
		}
	}
	if c.Players[0] == c.Players[1] {
		return fmt.Errorf("players must be distinct: %s", c.Players[0])
	}
	return c.Settings.Validate()
}

// Simulator runs match simulations
type Simulator struct {
	config Config
	logger *log.Logger
}

func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	config.Workers = min(config.Workers, max(config.Matches, 1))
	logger := config.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Simulator{config: config, logger: logger.WithPrefix("simulator")}
}

// Run plays every match and aggregates the results. Matches are seeded by
// index, so totals do not depend on the number of workers.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if err := s.config.Validate(); err != nil {
		return nil, err
	}
	s.logger.Info("Starting simulation",
		"matches", s.config.Matches,
		"settings", s.config.Settings,
		"workers", s.config.Workers,
		"seed", s.config.Seed)

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *statistics.Statistics, s.config.Workers)

	for w := 0; w < s.config.Workers; w++ {
		g.Go(func() error {
			local := &statistics.Statistics{}
			for i := w; i < s.config.Matches; i += s.config.Workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := s.playMatch(i)
				if err != nil {
					return err
				}
				local.Add(result)
			}
			select {
			case results <- local:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		defer close(results)
		_ = g.Wait()
	}()

	stats := &statistics.Statistics{}
	for local := range results {
		stats.Merge(local)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	s.logger.Info("Simulation complete",
		"win_rate_a", fmt.Sprintf("%.3f", stats.WinRate(0)),
		"mean_points", fmt.Sprintf("%.1f", stats.MeanPoints()))
	return stats, nil
}

// playMatch simulates match i. The first server alternates by index.
func (s *Simulator) playMatch(i int) (statistics.MatchResult, error) {
	seed := s.config.Seed + int64(i)
	rng := randutil.New(seed)
	players := s.config.Players

	m, err := tennis.NewMatch(players[0], players[1], s.config.Settings)
	if err != nil {
		return statistics.MatchResult{}, err
	}
	result := statistics.MatchResult{Seed: seed, FirstServer: i % 2}
	if err := m.RegisterFirstServer(players[result.FirstServer]); err != nil {
		return statistics.MatchResult{}, err
	}

	for m.Phase() != tennis.Finished {
		if result.Points >= maxPoints {
			return statistics.MatchResult{}, fmt.Errorf("%w: seed %d after %d points", ErrMatchTooLong, seed, result.Points)
		}

		var ev tennis.Event
		switch m.Phase() {
		case tennis.NotStarted, tennis.BetweenGames:
			ev = tennis.StartPlayEvent()
		default:
			server, _ := m.CurrentServer()
			idx := indexOf(players, server)
			winner := players[idx]
			if !randutil.Chance(rng, s.config.ServeWin[idx]) {
				winner = players[1-idx]
			}
			ev = tennis.PointEvent(winner)
			result.Points++
		}

		changes, err := m.Apply(ev)
		if err != nil {
			return statistics.MatchResult{}, fmt.Errorf("match %d: %w", i, err)
		}
		for _, c := range changes {
			switch c.Kind {
			case tennis.ChangeTiebreakStarted:
				result.Tiebreaks++
			case tennis.ChangeSuperTiebreakStarted:
				result.SuperTiebreaks++
			}
		}
	}

	winner, _ := m.Winner()
	result.Winner = indexOf(players, winner)
	for _, set := range m.CompletedSetScores() {
		a, _ := set.Get(players[0])
		b, _ := set.Get(players[1])
		result.Sets = append(result.Sets, [2]int{a, b})
	}
	s.logger.Debug("Match complete", "match", i, "seed", seed, "winner", winner, "points", result.Points)
	return result, nil
}

func indexOf(players [2]tennis.Player, p tennis.Player) int {
	if players[1] == p {
		return 1
	}
	return 0
}
