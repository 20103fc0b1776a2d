package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-engine/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `help:"Show version"`
	Config   string           `short:"c" help:"Path to the match configuration" default:"holdem.hcl" type:"path"`
	Verbose  bool             `short:"v" help:"Log every hand and action"`
	NoColor  bool             `help:"Disable colored output"`
	Run      RunCmd           `cmd:"" default:"withargs" help:"Play a match between the configured bots"`
	Validate ValidateCmd      `cmd:"" help:"Check a configuration file and exit"`
	Bots     BotsCmd          `cmd:"" help:"List the built-in strategies"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Texas Hold'em engine and bot tournament runner"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}

// setup loads the configuration, applies overrides and the environment,
// validates it and builds the logger.
func (c *CLI) setup(override func(*config.Config)) (*config.Config, *log.Logger, error) {
	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := config.LoadConfig(c.Config)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, nil, err
	}
	if override != nil {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration %s: %w", c.Config, err)
	}

	level, _ := cfg.LogLevel()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	if c.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if c.NoColor {
		logger.SetColorProfile(termenv.Ascii)
	}
	return cfg, logger, nil
}
