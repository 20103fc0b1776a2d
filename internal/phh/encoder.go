package phh

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/lox/holdem-engine/internal/game"
)

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return errors.New("phh: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatAction renders a player action. raiseTo is the seat's bet for the
// current street after a bet or raise; pass 0 for actions that only match
// the current bet, including all-ins that fall short of it.
func FormatAction(seat int, kind game.ActionKind, raiseTo int) string {
	p := player(seat)
	switch kind {
	case game.Fold:
		return p + " f"
	case game.Check, game.Call:
		return p + " cc"
	case game.Raise, game.AllIn:
		if raiseTo <= 0 {
			return p + " cc"
		}
		return fmt.Sprintf("%s cbr %d", p, raiseTo)
	default:
		return fmt.Sprintf("# %s %s", p, kind)
	}
}
