package main

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/holdem-engine/internal/config"
	"github.com/lox/holdem-engine/internal/statistics"
	"github.com/lox/holdem-engine/internal/tournament"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	winnerStyle = cellStyle.
			Foreground(lipgloss.Color("10"))

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

type standing struct {
	name     string
	strategy string
	score    float64
	wins     int
	chips    float64
	hands    int
	stats    statistics.Statistics
}

// standings orders players by mean score, best first.
func standings(players []config.PlayerConfig, res *tournament.SeriesResult, stats *statistics.Collector) []standing {
	rows := make([]standing, len(players))
	for i, p := range players {
		rows[i] = standing{name: p.Name, strategy: p.Strategy, score: res.Scores[i], wins: res.Wins[i]}
		if stats != nil {
			rows[i].stats = stats.Player(i)
		}
		for _, t := range res.Tables {
			rows[i].chips += float64(t.FinalChips[i]) / float64(len(res.Tables))
			rows[i].hands += t.HandsPlayed[i]
		}
	}
	slices.SortStableFunc(rows, func(a, b standing) int {
		return cmp.Compare(b.score, a.score)
	})
	return rows
}

func renderResults(players []config.PlayerConfig, res *tournament.SeriesResult, stats *statistics.Collector) string {
	rows := standings(players, res, stats)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("#", "Player", "Strategy", "Score/hand", "bb/hand", "95% CI", "Showdown bb", "Wins", "Avg chips", "Hands").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == 0:
				return winnerStyle
			default:
				return cellStyle
			}
		})

	for i, r := range rows {
		t.Row(
			fmt.Sprint(i+1),
			r.name,
			r.strategy,
			fmt.Sprintf("%+.2f", r.score),
			fmt.Sprintf("%+.3f", r.stats.Mean()),
			ci(&r.stats),
			fmt.Sprintf("%+.1f", r.stats.ShowdownBB),
			fmt.Sprintf("%d/%d", r.wins, len(res.Tables)),
			fmt.Sprintf("%.0f", r.chips),
			fmt.Sprint(r.hands),
		)
	}
	return t.String()
}

func ci(s *statistics.Statistics) string {
	if s.Hands < 2 {
		return "-"
	}
	lo, hi := s.ConfidenceInterval95()
	return fmt.Sprintf("[%+.3f, %+.3f]", lo, hi)
}
