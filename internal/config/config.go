// Package config loads match files written in HCL.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/tennisassist/tennis"
)

var ErrInvalidConfig = errors.New("config: invalid match file")

// MatchConfig is the complete contents of a match file
type MatchConfig struct {
	Match   MatchSettings  `hcl:"match,block"`
	Players []PlayerConfig `hcl:"player,block"`
	Play    *PlayConfig    `hcl:"play,block"`
	Log     *LogConfig     `hcl:"log,block"`
}

// MatchSettings mirrors tennis.Settings using the names accepted by the
// tennis Parse functions
type MatchSettings struct {
	Format      string `hcl:"format,optional"`
	GameScoring string `hcl:"game_scoring,optional"`
	FinalSet    string `hcl:"final_set,optional"`
}

// PlayerConfig declares one side of the match. A partner makes it a doubles team.
type PlayerConfig struct {
	Label   string `hcl:"label,label"`
	Name    string `hcl:"name"`
	Partner string `hcl:"partner,optional"`
}

// PlayConfig is a recorded sequence of points, by player label
type PlayConfig struct {
	FirstServer string   `hcl:"first_server"`
	Points      []string `hcl:"points,optional"`
}

type LogConfig struct {
	Level string `hcl:"level,optional"`
}

// DefaultMatchConfig returns a best of three singles match with no recorded play
func DefaultMatchConfig() *MatchConfig {
	defaults := tennis.DefaultSettings()
	return &MatchConfig{
		Match: MatchSettings{
			Format:      defaults.Format.String(),
			GameScoring: defaults.GameScoring.String(),
			FinalSet:    defaults.FinalSet.String(),
		},
		Players: []PlayerConfig{
			{Label: "a", Name: "Player A"},
			{Label: "b", Name: "Player B"},
		},
		Log: &LogConfig{Level: "info"},
	}
}

// LoadMatchConfig loads a match file. A missing file yields the defaults.
func LoadMatchConfig(filename string) (*MatchConfig, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultMatchConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read match file: %w", err)
	}
	return ParseMatchConfig(src, filename)
}

// ParseMatchConfig decodes HCL source and fills in defaults for omitted fields
func ParseMatchConfig(src []byte, filename string) (*MatchConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config MatchConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultMatchConfig()
	if config.Match.Format == "" {
		config.Match.Format = defaults.Match.Format
	}
	if config.Match.GameScoring == "" {
		config.Match.GameScoring = defaults.Match.GameScoring
	}
	if config.Match.FinalSet == "" {
		config.Match.FinalSet = defaults.Match.FinalSet
	}
	if len(config.Players) == 0 {
		config.Players = defaults.Players
	}
	if config.Log == nil {
		config.Log = defaults.Log
	}
	if config.Log.Level == "" {
		config.Log.Level = defaults.Log.Level
	}

	return &config, nil
}

// Validate checks the config describes a playable match
func (c *MatchConfig) Validate() error {
	if _, err := c.Settings(); err != nil {
		return err
	}
	if len(c.Players) != 2 {
		return fmt.Errorf("%w: need exactly 2 players, got %d", ErrInvalidConfig, len(c.Players))
	}
	if c.Players[0].Label == c.Players[1].Label {
		return fmt.Errorf("%w: duplicate player label %q", ErrInvalidConfig, c.Players[0].Label)
	}
	p1, p2 := c.Players[0].Player(), c.Players[1].Player()
	if p1 == p2 {
		return fmt.Errorf("%w: players %q and %q are the same identity", ErrInvalidConfig, c.Players[0].Label, c.Players[1].Label)
	}
	for _, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("%w: player %q has no name", ErrInvalidConfig, p.Label)
		}
	}
	if c.Log != nil && c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	if c.Play != nil {
		if _, err := c.Lookup(c.Play.FirstServer); err != nil {
			return fmt.Errorf("first_server: %w", err)
		}
		for i, label := range c.Play.Points {
			if _, err := c.Lookup(label); err != nil {
				return fmt.Errorf("point %d: %w", i+1, err)
			}
		}
	}
	return nil
}

// Settings converts the match block into tennis settings
func (c *MatchConfig) Settings() (tennis.Settings, error) {
	format, err := tennis.ParseMatchFormat(c.Match.Format)
	if err != nil {
		return tennis.Settings{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	scoring, err := tennis.ParseGameScoring(c.Match.GameScoring)
	if err != nil {
		return tennis.Settings{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	finalSet, err := tennis.ParseTieResolution(c.Match.FinalSet)
	if err != nil {
		return tennis.Settings{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return tennis.Settings{Format: format, GameScoring: scoring, FinalSet: finalSet}, nil
}

// Player returns the identity declared by the block
func (p PlayerConfig) Player() tennis.Player {
	if p.Partner != "" {
		return tennis.Doubles(p.Name, p.Partner)
	}
	return tennis.Singles(p.Name)
}

// MatchPlayers returns both identities in declaration order. Call Validate first.
func (c *MatchConfig) MatchPlayers() (tennis.Player, tennis.Player) {
	return c.Players[0].Player(), c.Players[1].Player()
}

// Lookup resolves a player label
func (c *MatchConfig) Lookup(label string) (tennis.Player, error) {
	for _, p := range c.Players {
		if p.Label == label {
			return p.Player(), nil
		}
	}
	return tennis.Player{}, fmt.Errorf("%w: unknown player label %q", ErrInvalidConfig, label)
}

// Points resolves the recorded play into players
func (c *MatchConfig) Points() (first tennis.Player, points []tennis.Player, err error) {
	if c.Play == nil {
		return tennis.Player{}, nil, fmt.Errorf("%w: no play block", ErrInvalidConfig)
	}
	if first, err = c.Lookup(c.Play.FirstServer); err != nil {
		return tennis.Player{}, nil, err
	}
	points = make([]tennis.Player, 0, len(c.Play.Points))
	for _, label := range c.Play.Points {
		p, err := c.Lookup(label)
		if err != nil {
			return tennis.Player{}, nil, err
		}
		points = append(points, p)
	}
	return first, points, nil
}

// LogLevel parses the configured level. A missing log block means info.
func (c *MatchConfig) LogLevel() log.Level {
	if c.Log == nil {
		return log.InfoLevel
	}
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
