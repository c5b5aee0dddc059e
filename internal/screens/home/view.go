package home

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/gfranca/mestre/internal/history"
	"github.com/gfranca/mestre/internal/ui/components"
	"github.com/gfranca/mestre/internal/ui/theme"
)

var banner = []string{
	"█▀▄▀█ █▀▀ █▀ ▀█▀ █▀█ █▀▀",
	"█ ▀ █ ██▄ ▄█  █  █▀▄ ██▄",
}

func (h *HomeScreen) View(width, height int) string {
	termHeight := height + 8
	compact := termHeight < 30 || width < 80

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, h.renderStatsBar(cw))
	sections = append(sections, h.renderMenu(cw))

	content := strings.Join(sections, "\n\n")
	return components.Frame(content, width, height)
}

func renderTitle(cw int, compact bool) string {
	if compact {
		return lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Width(cw).
			Align(lipgloss.Center).
			Render("M E S T R E")
	}

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(strings.Join(banner, "\n"))
	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("your exam preparation coach")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title + "\n" + sub)
}

// renderStatsBar summarizes the collection: saved exams, sessions played,
// and the all-time accuracy.
func (h *HomeScreen) renderStatsBar(cw int) string {
	sessions := h.ws.AllSessions()

	stat := func(icon, label string, value string, c color.Color) string {
		return lipgloss.NewStyle().Foreground(c).Bold(true).Render(icon+" "+value) +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(" "+label)
	}

	parts := []string{
		stat("◆", "exams", fmt.Sprintf("%d", len(h.ws.Records)), theme.Secondary),
		stat("▣", "sessions", fmt.Sprintf("%d", len(sessions)), theme.Accent),
		stat("✓", "accuracy", fmt.Sprintf("%d%%", history.OverallAccuracy(sessions)), theme.Success),
	}

	return components.Card(strings.Join(parts, "    "), cw)
}

func (h *HomeScreen) renderMenu(cw int) string {
	buttonWidth := cw - 8
	if buttonWidth < 20 {
		buttonWidth = 20
	}

	var rows []string
	for i, label := range h.menuLabels {
		rows = append(rows, components.ActionButton(label, i == h.menu.Selected, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(rows, "\n"))
}
