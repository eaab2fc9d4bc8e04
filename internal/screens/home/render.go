package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/notequiz/internal/store"
	"github.com/abhisek/notequiz/internal/ui/theme"
)

// A short phrase on a staff, shown above the menu when there is room.
const staffBanner = `──────────────────────────────────
───────────────────────●──────────
──────────────●────────────●──────
─────●─────────────────────────●──
──────────────────────────────────`

const titleCompact = "N · O · T · E · Q · U · I · Z"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the spaced-out title with the tagline below it.
func renderTitle(tagline string, cw int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(titleCompact)
	sub := theme.Hint.Render(tagline)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title + "\n" + sub)
}

// renderBanner renders the decorative staff centered at content width.
func renderBanner(cw int) string {
	lines := strings.Split(staffBanner, "\n")
	for i, l := range lines {
		parts := strings.Split(l, "●")
		for j, p := range parts {
			parts[j] = theme.Staff.Render(p)
		}
		lines[i] = strings.Join(parts, theme.Notehead.Render("●"))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderStatsBar renders lifetime totals in a bordered box matching content width.
func renderStatsBar(stats store.Stats, empty string, cw int) string {
	var text string
	if stats.Answered == 0 {
		text = theme.Hint.Render(empty)
	} else {
		answered := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		correct := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		accuracy := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		text = fmt.Sprintf("%s  %s  %s",
			answered.Render(fmt.Sprintf("♪ %d", stats.Answered)),
			correct.Render(fmt.Sprintf("✓ %d", stats.Correct)),
			accuracy.Render(fmt.Sprintf("%.0f%%", stats.Accuracy()*100)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(text)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as plain lines for short terminals
// where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Accent).
				Bold(true).
				Render(" ▸ "+label+" "))
		} else {
			lines = append(lines, theme.Unselected.Render("   "+label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderCabinetFrame wraps content in a double-border frame,
// centering vertically and horizontally within the given dimensions.
func renderCabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
