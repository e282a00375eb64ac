package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	LogLevel string `help:"Log level (debug, info, warn, error)" default:"" placeholder:"LEVEL"`
	NoColor  bool   `help:"Disable colored output"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Replay   ReplayCmd        `cmd:"" help:"Score a recorded match file and print the result"`
	Simulate SimulateCmd      `cmd:"" help:"Simulate many matches with a serve model"`
	Check    CheckCmd         `cmd:"" help:"Validate a match file"`
}

// logger builds the process logger. An explicit --log-level wins over fallback.
func (g *Globals) logger(fallback string) (*log.Logger, error) {
	name := g.LogLevel
	if name == "" {
		name = fallback
	}
	if name == "" {
		name = "info"
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	}), nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tennisassist"),
		kong.Description("Point by point tennis scoring"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
