package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/gfranca/mestre/internal/markdown"
	"github.com/gfranca/mestre/internal/ui/components"
	"github.com/gfranca/mestre/internal/ui/theme"
)

func (s *StudyScreen) View(width, height int) string {
	switch s.mode {
	case modeLoading:
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(lipgloss.NewStyle().Foreground(theme.Secondary).Render(s.loading))
	case modeRead, modeTutor:
		return s.viewLesson(width, height)
	default:
		return s.viewBrowser(width, height)
	}
}

func (s *StudyScreen) viewBrowser(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		PaddingLeft(2).
		Foreground(theme.Secondary).
		Bold(true).
		Render(s.record.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		PaddingLeft(2).
		Foreground(theme.TextDim).
		Render("Pick a topic to study"))
	b.WriteString("\n")

	if len(s.entries) > 0 {
		done := 0
		for _, e := range s.entries {
			if s.record.TopicCompleted(e.Topic) {
				done++
			}
		}
		bar := components.NewProgressBar(
			fmt.Sprintf("%d/%d topics", done, len(s.entries)),
			float64(done)/float64(len(s.entries)),
			true,
			width-8,
		)
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(bar.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(s.entries) == 0 {
		b.WriteString(lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(theme.TextDim).
			Render("This exam has no syllabus yet. Analyze it from the guide first."))
		return b.String()
	}

	// Scroll the list so the cursor stays visible.
	visible := height - 8
	if visible < 3 {
		visible = 3
	}
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}
	end := start + visible
	if end > len(s.entries) {
		end = len(s.entries)
	}

	lastSubject := ""
	for i := start; i < end; i++ {
		entry := s.entries[i]

		if entry.Subject != lastSubject {
			lastSubject = entry.Subject
			b.WriteString(lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(theme.Primary).
				Bold(true).
				Render(entry.Subject))
			b.WriteString("\n")
		}

		mark := "○"
		markStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if s.record.TopicCompleted(entry.Topic) {
			mark = "✓"
			markStyle = lipgloss.NewStyle().Foreground(theme.Success)
		}

		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "  ▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, markStyle.Render(mark), style.Render(entry.Topic)))
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	return b.String()
}

func (s *StudyScreen) viewLesson(width, height int) string {
	textWidth := width - 6
	if textWidth < 20 {
		textWidth = 20
	}

	rendered := markdown.Render(s.content.Content, textWidth)
	lines := strings.Split(rendered, "\n")

	// Clamp the scroll offset to the document.
	viewport := height - 6
	if viewport < 3 {
		viewport = 3
	}
	maxScroll := len(lines) - viewport
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}

	end := s.scroll + viewport
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder

	subject := lipgloss.NewStyle().
		PaddingLeft(2).
		Foreground(theme.TextDim).
		Render(s.content.Subject)
	pos := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d%%", scrollPercent(s.scroll, maxScroll)))
	pad := width - lipgloss.Width(subject) - lipgloss.Width(pos) - 2
	if pad < 1 {
		pad = 1
	}
	b.WriteString(subject + strings.Repeat(" ", pad) + pos)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	body := strings.Join(lines[s.scroll:end], "\n")
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(body))
	b.WriteString("\n")

	switch {
	case s.mode == modeTutor:
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(theme.Secondary).
			Bold(true).
			Render("Ask the tutor about this lesson:"))
		b.WriteString("\n  ")
		b.WriteString(s.tutorInput.View())
	case s.pending != "":
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(theme.Secondary).
			Render(s.pending))
	case s.errMsg != "":
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	return b.String()
}

func scrollPercent(scroll, maxScroll int) int {
	if maxScroll <= 0 {
		return 100
	}
	return scroll * 100 / maxScroll
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
