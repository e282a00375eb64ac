package main

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tennisassist/internal/config"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("tennisassist"), kong.Vars{"version": "test"})
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run(&cli.Globals)
}

func TestCheck(t *testing.T) {
	assert.NoError(t, run(t, "check", "testdata/tiebreak.hcl"))

	err := run(t, "check", "testdata/invalid.hcl")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestReplay(t *testing.T) {
	assert.NoError(t, run(t, "--no-color", "--log-level", "error", "replay", "--log", "testdata/tiebreak.hcl"))
}

func TestSimulate(t *testing.T) {
	assert.NoError(t, run(t, "--no-color", "--log-level", "error", "simulate", "--matches", "20", "--seed", "7", "--workers", "2"))

	assert.Error(t, run(t, "simulate", "--format", "best_of_seven"))
}

func TestLogLevel(t *testing.T) {
	g := Globals{}
	_, err := g.logger("warn")
	assert.NoError(t, err)

	g.LogLevel = "loud"
	_, err = g.logger("warn")
	assert.Error(t, err)
}
