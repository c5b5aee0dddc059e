// Package placeholder is shown for features that need an LLM provider
// when none is configured.
package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gfranca/mestre/internal/screen"
	"github.com/gfranca/mestre/internal/ui/theme"
)

// PlaceholderScreen displays a "feature unavailable" notice.
type PlaceholderScreen struct {
	feature string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a placeholder for the named feature.
func New(feature string) *PlaceholderScreen {
	return &PlaceholderScreen{feature: feature}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Title() string {
	return p.feature
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	msg := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(p.feature+" needs an AI provider.") + "\n\n" +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Set GEMINI_API_KEY (or OPENAI, ANTHROPIC, OPENROUTER)\nand restart. Press Esc to go back.")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(msg)
}
