package cmd

import (
	"fmt"
	"math"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/notequiz/internal/i18n"
	"github.com/abhisek/notequiz/internal/pitch"
	"github.com/abhisek/notequiz/internal/store"
	"github.com/abhisek/notequiz/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime answer statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		stats, err := e.store.EventRepo().LifetimeStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		if stats.Answered == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), e.loc.T("stats.empty"))
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), e.loc.T("stats.total",
			stats.Answered, stats.Correct, percent(stats.Accuracy()), stats.Sessions))
		fmt.Fprintln(cmd.OutOrStdout())
		lipgloss.Fprintln(cmd.OutOrStdout(), renderStatsTable(stats, e.loc))
		return nil
	},
}

// renderStatsTable lays out per-letter accuracy with a row per note.
func renderStatsTable(stats store.Stats, loc *i18n.Localizer) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(loc.T("stats.note"), loc.T("stats.attempted"), loc.T("stats.correct"), loc.T("stats.accuracy")).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Foreground(theme.Primary).Bold(true)
			}
			if col == 0 {
				return style.Foreground(theme.Accent)
			}
			return style.Foreground(theme.Text).Align(lipgloss.Right)
		})

	for _, ls := range stats.Letters {
		name := ls.Letter
		if l, err := pitch.ParseLetter(ls.Letter); err == nil {
			name = loc.NoteName(l)
		}
		t.Row(name,
			fmt.Sprint(ls.Attempted),
			fmt.Sprint(ls.Correct),
			fmt.Sprintf("%d%%", percent(ls.Accuracy())))
	}
	return t.Render()
}

func percent(f float64) int {
	return int(math.Round(f * 100))
}
