package phh

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lox/holdem-engine/internal/fileutil"
	"github.com/lox/holdem-engine/internal/game"
)

// DirWriter stores every hand of a match as a PHH file, one directory per
// tournament: <dir>/<tournament>/hand-00001.phh.
type DirWriter struct {
	dir   string
	names []string
}

// NewDirWriter returns a writer rooted at dir. names are the match players
// in player order.
func NewDirWriter(dir string, names []string) *DirWriter {
	return &DirWriter{dir: dir, names: names}
}

// Path returns the file a hand is written to.
func (w *DirWriter) Path(tournamentID string, hand int) string {
	return filepath.Join(w.dir, tournamentID, fmt.Sprintf("hand-%05d.phh", hand))
}

// RecordHand writes one hand. players maps each seat to its match player.
func (w *DirWriter) RecordHand(tournamentID string, hand int, players []int, rec game.HandRecord) error {
	names := make([]string, len(players))
	for seat, p := range players {
		if p >= 0 && p < len(w.names) {
			names[seat] = w.names[p]
		} else {
			names[seat] = fmt.Sprintf("player%d", p+1)
		}
	}

	h := FromRecord(rec, names)
	h.Table = tournamentID
	h.Metadata["hand_number"] = hand

	path := w.Path(tournamentID, hand)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("phh: %w", err)
	}
	return fileutil.WriteAtomic(path, 0o644, func(out io.Writer) error {
		return Encode(out, h)
	})
}
