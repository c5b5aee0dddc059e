package simulation

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sim "github.com/gfranca/mestre/internal/simulation"
	"github.com/gfranca/mestre/internal/ui/components"
	"github.com/gfranca/mestre/internal/ui/theme"
)

func (r *RunnerScreen) View(width, height int) string {
	if r.quitting {
		return renderQuitConfirm(width, height)
	}
	if r.engine.State() == sim.Summary {
		return ""
	}

	var b strings.Builder

	q := r.engine.Current()

	// Status line: position, score, topic.
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", r.engine.Current().Topic))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d",
			r.engine.Position()+1,
			len(r.engine.Questions()),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			r.engine.Score(),
		))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question stem.
	b.WriteString(lipgloss.NewStyle().
		Width(width - 4).
		PaddingLeft(2).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(r.renderOptions(width))

	if r.engine.State() == sim.Answered {
		b.WriteString("\n")
		b.WriteString(r.renderExplanation(width))
	}

	return b.String()
}

func (r *RunnerScreen) renderOptions(width int) string {
	q := r.engine.Current()
	answer, answered := r.answerState()

	mc := components.MultiChoice{
		Options:      q.Options,
		CorrectIndex: q.CorrectOptionIndex,
		Selected:     r.selected,
		Submitted:    answered,
		ChosenIndex:  answer.SelectedOptionIndex,
	}
	return lipgloss.NewStyle().
		Width(width - 4).
		PaddingLeft(2).
		Render(mc.View())
}

func (r *RunnerScreen) renderExplanation(width int) string {
	q := r.engine.Current()
	answer, _ := r.answerState()

	verdict := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Correct!")
	if !answer.IsCorrect {
		verdict = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Wrong.")
	}

	body := verdict + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Render(q.Explanation)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(width - 6).
		MarginLeft(2).
		Render(body)
}

func renderQuitConfirm(width, height int) string {
	msg := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Leave the simulation?") + "\n\n" +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Your answers are saved. You can resume from the history.\n\n[Y] Save and leave    [N] Keep going")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(msg)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
