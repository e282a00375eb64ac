package main

import (
	"fmt"
	"os"

	"github.com/lox/tennisassist/internal/config"
	"github.com/lox/tennisassist/internal/display"
	"github.com/lox/tennisassist/internal/umpire"
	"github.com/lox/tennisassist/tennis"
)

// ReplayCmd scores the play block of a match file
type ReplayCmd struct {
	File string `arg:"" type:"existingfile" help:"Match file (HCL)"`
	Log  bool   `help:"Print every accepted event"`
}

func (c *ReplayCmd) Run(g *Globals) error {
	cfg, err := loadMatchFile(c.File)
	if err != nil {
		return err
	}
	logger, err := g.logger(cfg.LogLevel().String())
	if err != nil {
		return err
	}

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	p1, p2 := cfg.MatchPlayers()
	first, points, err := cfg.Points()
	if err != nil {
		return err
	}

	match, err := tennis.NewMatch(p1, p2, settings)
	if err != nil {
		return err
	}
	session := umpire.NewSession(match, umpire.WithLogger(logger))
	logger.Info("Replaying match", "file", c.File, "id", session.ID(), "points", len(points))

	playErr := session.Play(first, points)

	if c.Log {
		for _, e := range session.Entries() {
			fmt.Println(e)
		}
		fmt.Println()
	}
	r := display.NewRenderer(os.Stdout, !g.NoColor)
	fmt.Println(r.Scoreboard(session.Match()))
	fmt.Println(session.Summary())

	if playErr != nil {
		return fmt.Errorf("replay stopped: %w", playErr)
	}
	return nil
}

func loadMatchFile(path string) (*config.MatchConfig, error) {
	cfg, err := config.LoadMatchConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
