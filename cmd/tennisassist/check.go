package main

import (
	"fmt"
)

// CheckCmd validates a match file without scoring it
type CheckCmd struct {
	File string `arg:"" type:"existingfile" help:"Match file (HCL)"`
}

func (c *CheckCmd) Run(g *Globals) error {
	cfg, err := loadMatchFile(c.File)
	if err != nil {
		return err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	p1, p2 := cfg.MatchPlayers()

	points := 0
	if cfg.Play != nil {
		points = len(cfg.Play.Points)
	}
	fmt.Printf("%s: %s vs %s, %s, %d recorded points\n", c.File, p1, p2, settings, points)
	return nil
}
