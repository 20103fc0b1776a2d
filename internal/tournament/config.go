package tournament

import (
	"errors"
	"fmt"
	"time"

	"github.com/lox/holdem-engine/internal/game"
)

// DefaultAction is the house rule applied when a player fails to decide.
type DefaultAction string

const (
	// CheckFold checks when checking is legal and folds otherwise.
	CheckFold DefaultAction = "check-fold"
	// FoldAlways folds even when a check is available.
	FoldAlways DefaultAction = "fold"
)

// ParseDefaultAction parses a configured house rule.
func ParseDefaultAction(s string) (DefaultAction, error) {
	switch DefaultAction(s) {
	case CheckFold, FoldAlways:
		return DefaultAction(s), nil
	case "":
		return CheckFold, nil
	}
	return "", fmt.Errorf("unknown default action %q (want %q or %q)", s, CheckFold, FoldAlways)
}

// Action returns the action the rule synthesizes for the given legal set.
func (d DefaultAction) Action(legal *game.LegalActions) game.Action {
	if d != FoldAlways && legal != nil && legal.Check {
		return game.Action{Kind: game.Check}
	}
	return game.Action{Kind: game.Fold}
}

// Config describes a single-table match.
type Config struct {
	StartingStack   int
	SmallBlind      int
	BigBlind        int
	BlindInterval   int     // hands between blind increases; 0 keeps blinds fixed
	BlindMultiplier float64 // factor applied to both blinds at each increase
	MaxHands        int     // 0 plays until one player holds every chip
	StartDealer     int
	DecisionTimeout time.Duration // 0 waits for the strategy indefinitely
	DefaultAction   DefaultAction
}

// DefaultConfig returns a 1000-chip match with 5/10 blinds doubling every
// 50 hands.
func DefaultConfig() Config {
	return Config{
		StartingStack:   1000,
		SmallBlind:      5,
		BigBlind:        10,
		BlindInterval:   50,
		BlindMultiplier: 2,
		DecisionTimeout: 5 * time.Second,
		DefaultAction:   CheckFold,
	}
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	var errs []error
	if c.StartingStack <= 0 {
		errs = append(errs, fmt.Errorf("starting stack must be positive, got %d", c.StartingStack))
	}
	if c.BigBlind <= 0 {
		errs = append(errs, fmt.Errorf("big blind must be positive, got %d", c.BigBlind))
	}
	if c.SmallBlind < 0 || c.SmallBlind > c.BigBlind {
		errs = append(errs, fmt.Errorf("small blind must be between 0 and the big blind, got %d", c.SmallBlind))
	}
	if c.BlindInterval < 0 {
		errs = append(errs, fmt.Errorf("blind interval cannot be negative, got %d", c.BlindInterval))
	}
	if c.BlindInterval > 0 && c.BlindMultiplier < 1 {
		errs = append(errs, fmt.Errorf("blind multiplier must be at least 1, got %g", c.BlindMultiplier))
	}
	if c.MaxHands < 0 {
		errs = append(errs, fmt.Errorf("max hands cannot be negative, got %d", c.MaxHands))
	}
	if c.StartDealer < 0 {
		errs = append(errs, fmt.Errorf("start dealer cannot be negative, got %d", c.StartDealer))
	}
	if c.DecisionTimeout < 0 {
		errs = append(errs, fmt.Errorf("decision timeout cannot be negative, got %s", c.DecisionTimeout))
	}
	if _, err := ParseDefaultAction(string(c.DefaultAction)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// escalate multiplies the blinds, keeping the big blind strictly positive
// and the small blind no larger than it.
func escalate(sb, bb int, m float64) (int, int) {
	nbb := max(bb, int(float64(bb)*m))
	nsb := min(nbb, int(float64(sb)*m))
	return nsb, nbb
}
