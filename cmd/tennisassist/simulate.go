package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/lox/tennisassist/internal/display"
	"github.com/lox/tennisassist/internal/simulator"
	"github.com/lox/tennisassist/tennis"
)

// SimulateCmd runs a Monte Carlo simulation of many matches
type SimulateCmd struct {
	Matches  int     `default:"10000" help:"Number of matches to simulate"`
	Seed     int64   `default:"0" help:"RNG seed (0 for random)"`
	Format   string  `default:"best_of_three" enum:"best_of_three,best_of_five,single_set_super_tiebreak" help:"Match format"`
	Scoring  string  `default:"advantage" enum:"advantage,no_advantage" help:"Game scoring"`
	FinalSet string  `default:"tiebreak" enum:"advantage,tiebreak,super_tiebreak" help:"How a final set at 6-6 is resolved"`
	PlayerA  string  `default:"Player A" help:"Name of the first player"`
	PlayerB  string  `default:"Player B" help:"Name of the second player"`
	ServeA   float64 `default:"0.62" help:"Chance the first player wins a point on serve"`
	ServeB   float64 `default:"0.62" help:"Chance the second player wins a point on serve"`
	Workers  int     `default:"0" help:"Worker goroutines (0 for one per CPU)"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	logger, err := g.logger("")
	if err != nil {
		return err
	}

	format, err := tennis.ParseMatchFormat(c.Format)
	if err != nil {
		return err
	}
	scoring, err := tennis.ParseGameScoring(c.Scoring)
	if err != nil {
		return err
	}
	finalSet, err := tennis.ParseTieResolution(c.FinalSet)
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		logger.Info("Using random seed", "seed", seed)
	}

	cfg := simulator.Config{
		Matches:  c.Matches,
		Seed:     seed,
		Settings: tennis.Settings{Format: format, GameScoring: scoring, FinalSet: finalSet},
		Players:  [2]tennis.Player{tennis.Singles(c.PlayerA), tennis.Singles(c.PlayerB)},
		ServeWin: [2]float64{c.ServeA, c.ServeB},
		Workers:  c.Workers,
		Logger:   logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	stats, err := simulator.New(cfg).Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("Done", "duration", time.Since(start).Round(time.Millisecond))

	r := display.NewRenderer(os.Stdout, !g.NoColor)
	fmt.Print(r.Report(stats, cfg.Players))
	return nil
}
