package guide

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/gfranca/mestre/internal/ui/theme"
)

func (g *GuideScreen) View(width, height int) string {
	switch g.mode {
	case modeSearch:
		return g.viewSearch(width, height)
	case modeLoading:
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(lipgloss.NewStyle().Foreground(theme.Secondary).Render(g.loading))
	case modeRoles:
		return g.viewRoles(width, height)
	default:
		return g.viewRecord(width, height)
	}
}

func (g *GuideScreen) viewSearch(width, height int) string {
	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Which exam are you preparing for?") + "\n\n" +
		g.input.View()

	if g.errMsg != "" {
		prompt += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(g.errMsg)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(prompt)
}

func (g *GuideScreen) viewRoles(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Which role are you applying for?"))
	b.WriteString("\n\n")

	for i, role := range g.record.AvailableRoles {
		prefix := "   "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == g.roleIdx {
			prefix = " ▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(prefix + style.Render(role) + "\n")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (g *GuideScreen) viewRecord(width, height int) string {
	infoWidth := width - 6
	if infoWidth < 30 {
		infoWidth = 30
	}

	lines := g.recordLines(infoWidth)

	acts := g.actions()
	// The action menu is always on screen; the info body scrolls above it.
	viewport := height - len(acts) - 5
	if viewport < 4 {
		viewport = 4
	}
	maxScroll := len(lines) - viewport
	if maxScroll < 0 {
		maxScroll = 0
	}
	if g.scroll > maxScroll {
		g.scroll = maxScroll
	}
	end := g.scroll + viewport
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(strings.Join(lines[g.scroll:end], "\n")))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 0))))
	b.WriteString("\n")

	for i, a := range acts {
		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == g.actionIdx {
			prefix = "  ▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(prefix + style.Render(a.Label) + "\n")
	}

	if g.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(theme.Error).
			Render(g.errMsg))
	}

	return b.String()
}

// recordLines flattens the record into styled lines for the scrollable
// info body.
func (g *GuideScreen) recordLines(width int) []string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text)
	heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(width)

	var lines []string
	push := func(s string) {
		lines = append(lines, strings.Split(s, "\n")...)
	}

	field := func(name, v string) {
		if v != "" {
			push(label.Render(name+": ") + value.Render(v))
		}
	}

	push(heading.Render(g.record.Title))
	field("Organization", g.record.Organization)
	field("Vacancies", g.record.EstimatedVacancies)
	field("Registration", g.record.RegistrationPeriod)
	field("Fee", g.record.Fee)
	field("Exam date", g.record.ExamDate)
	if g.record.SelectedRole != "" {
		field("Role", g.record.SelectedRole)
	}

	if g.record.Summary != "" {
		push("")
		push(body.Render(g.record.Summary))
	}

	if len(g.record.Subjects) > 0 {
		push("")
		push(heading.Render("Syllabus"))
		for _, subj := range g.record.Subjects {
			line := fmt.Sprintf("• %s", subj.Name)
			if subj.Importance != "" {
				line += label.Render(fmt.Sprintf("  (%s priority)", strings.ToLower(subj.Importance)))
			}
			push(value.Render(line))
		}
	}

	if len(g.record.Strategies) > 0 {
		push("")
		push(heading.Render("Preparation strategy"))
		for _, st := range g.record.Strategies {
			push(value.Bold(true).Render(st.Phase))
			push(body.Render(st.Advice))
		}
	}

	if g.record.PreviousContestAnalysis != "" {
		push("")
		push(heading.Render("Previous editions"))
		push(body.Render(g.record.PreviousContestAnalysis))
	}

	if len(g.sources) > 0 {
		push("")
		push(heading.Render("Sources"))
		for _, src := range g.sources {
			push(label.Render("↗ ") + value.Render(src.Title))
		}
	}

	return lines
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
