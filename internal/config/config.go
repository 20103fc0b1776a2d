// Package config loads match configuration from HCL files with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/kelseyhightower/envconfig"

	"github.com/lox/holdem-engine/internal/bot"
	"github.com/lox/holdem-engine/internal/tournament"
)

// Config represents the complete match configuration
type Config struct {
	Tournament TournamentSettings `hcl:"tournament,block"`
	Log        *LogSettings       `hcl:"log,block"`
	Players    []PlayerConfig     `hcl:"player,block"`
}

// TournamentSettings contains the match rules
type TournamentSettings struct {
	StartingStack   int     `hcl:"starting_stack,optional"`
	SmallBlind      int     `hcl:"small_blind,optional"`
	BigBlind        int     `hcl:"big_blind,optional"`
	BlindInterval   int     `hcl:"blind_interval,optional"`
	BlindMultiplier float64 `hcl:"blind_multiplier,optional"`
	MaxHands        int     `hcl:"max_hands,optional"`
	StartDealer     int     `hcl:"start_dealer,optional"`
	Seed            int64   `hcl:"seed,optional"`
	Tables          int     `hcl:"tables,optional"`
	DecisionTimeout string  `hcl:"decision_timeout,optional"`
	DefaultAction   string  `hcl:"default_action,optional"`
	HistoryDir      string  `hcl:"history_dir,optional"`
}

// LogSettings contains logging configuration
type LogSettings struct {
	Level string `hcl:"level,optional"`
}

// PlayerConfig seats one built-in strategy
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
}

// Env holds the environment overrides, read with the HOLDEM_ prefix.
// Zero values leave the file's setting in place.
type Env struct {
	Seed       int64  `envconfig:"seed"`
	LogLevel   string `envconfig:"log_level"`
	MaxHands   int    `envconfig:"max_hands"`
	HistoryDir string `envconfig:"history_dir"`
}

// DefaultConfig returns a four-player match between the built-in bots.
func DefaultConfig() *Config {
	t := tournament.DefaultConfig()
	return &Config{
		Tournament: TournamentSettings{
			StartingStack:   t.StartingStack,
			SmallBlind:      t.SmallBlind,
			BigBlind:        t.BigBlind,
			BlindInterval:   t.BlindInterval,
			BlindMultiplier: t.BlindMultiplier,
			Tables:          1,
			DecisionTimeout: t.DecisionTimeout.String(),
			DefaultAction:   string(t.DefaultAction),
		},
		Log: &LogSettings{Level: "info"},
		Players: []PlayerConfig{
			{Name: "alice", Strategy: "tag"},
			{Name: "bob", Strategy: "call"},
			{Name: "carol", Strategy: "maniac"},
			{Name: "dave", Strategy: "random"},
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields
// DefaultConfig.
func LoadConfig(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills unset values with defaults.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	t := &c.Tournament
	if t.StartingStack == 0 {
		t.StartingStack = d.Tournament.StartingStack
	}
	if t.BigBlind == 0 {
		t.BigBlind = d.Tournament.BigBlind
		if t.SmallBlind == 0 {
			t.SmallBlind = d.Tournament.SmallBlind
		}
	}
	if t.BlindMultiplier == 0 {
		t.BlindMultiplier = d.Tournament.BlindMultiplier
	}
	if t.Tables == 0 {
		t.Tables = 1
	}
	if t.DecisionTimeout == "" {
		t.DecisionTimeout = d.Tournament.DecisionTimeout
	}
	if t.DefaultAction == "" {
		t.DefaultAction = d.Tournament.DefaultAction
	}
	if c.Log == nil {
		c.Log = d.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}

// ApplyEnv overrides settings from HOLDEM_* environment variables.
func (c *Config) ApplyEnv() error {
	var env Env
	if err := envconfig.Process("holdem", &env); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	if env.Seed != 0 {
		c.Tournament.Seed = env.Seed
	}
	if env.MaxHands != 0 {
		c.Tournament.MaxHands = env.MaxHands
	}
	if env.HistoryDir != "" {
		c.Tournament.HistoryDir = env.HistoryDir
	}
	if env.LogLevel != "" {
		if c.Log == nil {
			c.Log = &LogSettings{}
		}
		c.Log.Level = env.LogLevel
	}
	return nil
}

// TournamentConfig converts the settings into the loop's configuration.
func (c *Config) TournamentConfig() (tournament.Config, error) {
	t := c.Tournament
	timeout, err := time.ParseDuration(t.DecisionTimeout)
	if err != nil {
		return tournament.Config{}, fmt.Errorf("decision_timeout: %w", err)
	}
	action, err := tournament.ParseDefaultAction(t.DefaultAction)
	if err != nil {
		return tournament.Config{}, fmt.Errorf("default_action: %w", err)
	}
	return tournament.Config{
		StartingStack:   t.StartingStack,
		SmallBlind:      t.SmallBlind,
		BigBlind:        t.BigBlind,
		BlindInterval:   t.BlindInterval,
		BlindMultiplier: t.BlindMultiplier,
		MaxHands:        t.MaxHands,
		StartDealer:     t.StartDealer,
		DecisionTimeout: timeout,
		DefaultAction:   action,
	}, nil
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() (log.Level, error) {
	if c.Log == nil || c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(c.Log.Level)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errs []error

	tc, err := c.TournamentConfig()
	if err != nil {
		errs = append(errs, err)
	} else if err := tc.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Tournament.Tables < 1 {
		errs = append(errs, fmt.Errorf("tables must be at least 1, got %d", c.Tournament.Tables))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}

	if len(c.Players) < 2 {
		errs = append(errs, fmt.Errorf("at least two players must be configured, got %d", len(c.Players)))
	}
	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if seen[p.Name] {
			errs = append(errs, fmt.Errorf("player %s: duplicate name", p.Name))
		}
		seen[p.Name] = true
		if _, err := bot.New(p.Strategy, nil, nil); err != nil {
			errs = append(errs, fmt.Errorf("player %s: %w", p.Name, err))
		}
	}

	return errors.Join(errs...)
}

// PlayerNames returns the configured names in seat order.
func (c *Config) PlayerNames() []string {
	names := make([]string, len(c.Players))
	for i, p := range c.Players {
		names[i] = p.Name
	}
	return names
}
