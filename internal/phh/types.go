package phh

// HandHistory is one hand in Poker Hand History (PHH) TOML form. Seats are
// numbered from p1 in table order, so p1 is seat 0 of the engine's table.
type HandHistory struct {
	Variant           string         `toml:"variant"`
	Table             string         `toml:"table,omitempty"`
	SeatCount         int            `toml:"seat_count,omitempty"`
	Antes             []int          `toml:"antes"`
	BlindsOrStraddles []int          `toml:"blinds_or_straddles"`
	MinBet            int            `toml:"min_bet"`
	StartingStacks    []int          `toml:"starting_stacks"`
	FinishingStacks   []int          `toml:"finishing_stacks,omitempty"`
	Winnings          []int          `toml:"winnings,omitempty"`
	Actions           []string       `toml:"actions"`
	Players           []string       `toml:"players,omitempty"`
	HandID            string         `toml:"hand"`
	Metadata          map[string]any `toml:"metadata,omitempty"`
}

// VariantNoLimitHoldem is the PHH code for no-limit Texas hold'em.
const VariantNoLimitHoldem = "NT"
