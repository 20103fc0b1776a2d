package main

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/bot"
	"github.com/lox/holdem-engine/internal/config"
	"github.com/lox/holdem-engine/internal/phh"
	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/lox/holdem-engine/internal/statistics"
	"github.com/lox/holdem-engine/internal/tournament"
)

// RunCmd plays the configured match on one or more independent tables.
type RunCmd struct {
	Seed       int64  `help:"Base seed; 0 picks one from the clock"`
	Tables     int    `short:"t" help:"Number of independent tables"`
	Parallel   int    `short:"p" help:"Tables to play at once (0 = all)"`
	MaxHands   int    `help:"Stop each table after this many hands"`
	HistoryDir string `help:"Write every hand as a PHH file under this directory"`
}

func (cmd *RunCmd) Run(cli *CLI) error {
	cfg, logger, err := cli.setup(cmd.override)
	if err != nil {
		return err
	}

	tc, err := cfg.TournamentConfig()
	if err != nil {
		return err
	}

	seed := randutil.Seed(cfg.Tournament.Seed)
	seeds := randutil.Derive(seed, cfg.Tournament.Tables)
	names := cfg.PlayerNames()

	stats := statistics.NewCollector(len(names))
	opts := []tournament.Option{
		tournament.WithLogger(logger),
		tournament.WithHistory(stats),
	}
	if dir := cfg.Tournament.HistoryDir; dir != "" {
		opts = append(opts, tournament.WithHistory(phh.NewDirWriter(dir, names)))
		logger.Info("writing hand histories", "dir", dir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting series", "players", len(names), "tables", len(seeds), "seed", seed)
	start := time.Now()

	res, err := tournament.RunSeries(ctx, tc, seeds, botFactory(cfg.Players, logger), cmd.Parallel, opts...)
	if err != nil {
		return err
	}

	logger.Info("series finished", "duration", time.Since(start).Round(time.Millisecond))
	fmt.Println(renderResults(cfg.Players, res, stats))
	return nil
}

func (cmd *RunCmd) override(cfg *config.Config) {
	if cmd.Seed != 0 {
		cfg.Tournament.Seed = cmd.Seed
	}
	if cmd.Tables != 0 {
		cfg.Tournament.Tables = cmd.Tables
	}
	if cmd.MaxHands != 0 {
		cfg.Tournament.MaxHands = cmd.MaxHands
	}
	if cmd.HistoryDir != "" {
		cfg.Tournament.HistoryDir = cmd.HistoryDir
	}
}

// botFactory seats a fresh set of bots at each table, each with its own
// random source drawn from the table's.
func botFactory(players []config.PlayerConfig, logger *log.Logger) tournament.Factory {
	return func(table int, rng *rand.Rand) ([]tournament.Strategy, error) {
		out := make([]tournament.Strategy, len(players))
		for i, p := range players {
			b, err := bot.New(p.Strategy, randutil.New(rng.Int64()), logger.With("table", table, "player", p.Name))
			if err != nil {
				return nil, fmt.Errorf("player %s: %w", p.Name, err)
			}
			out[i] = b
		}
		return out, nil
	}
}

// ValidateCmd checks the configuration without playing.
type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(cli *CLI) error {
	cfg, _, err := cli.setup(nil)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d players, %d table(s), blinds %d/%d\n", cli.Config,
		len(cfg.Players), cfg.Tournament.Tables, cfg.Tournament.SmallBlind, cfg.Tournament.BigBlind)
	return nil
}

// BotsCmd lists the strategies a player block can name.
type BotsCmd struct{}

func (cmd *BotsCmd) Run() error {
	for _, name := range bot.Names() {
		fmt.Println(name)
	}
	return nil
}
