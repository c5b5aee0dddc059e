// Package markdown renders the lesson markdown subset for the terminal:
// three heading levels, bold, bullets, blockquotes, horizontal rules, and
// ::: callout blocks for attention notes and worked examples.
package markdown

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/gfranca/mestre/internal/ui/theme"
)

var (
	h1Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Primary).
		MarginTop(1).
		MarginBottom(1)

	h2Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Secondary).
		MarginTop(1)

	h3Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Text)

	quoteStyle = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(theme.Primary).
			PaddingLeft(1)

	bulletStyle = lipgloss.NewStyle().
			Foreground(theme.Secondary)

	boldStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent)

	bodyStyle = lipgloss.NewStyle().
			Foreground(theme.Text)

	attentionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Error).
			Padding(0, 1)

	attentionTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Error)

	exampleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Success).
			Padding(0, 1)

	exampleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Success)

	ruleStyle = lipgloss.NewStyle().
			Foreground(theme.Border)
)

// Render converts lesson markdown into styled terminal text wrapped to the
// given width. Unknown constructs pass through as plain paragraphs.
func Render(text string, width int) string {
	if width < 10 {
		width = 10
	}

	lines := strings.Split(text, "\n")
	var blocks []string

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		switch {
		case isAttention(line):
			body, next := collectCallout(lines, i+1)
			blocks = append(blocks, renderCallout("ATTENTION", body, width, attentionStyle, attentionTitle))
			i = next - 1

		case isExample(line):
			body, next := collectCallout(lines, i+1)
			blocks = append(blocks, renderCallout("EXAMPLE", body, width, exampleStyle, exampleTitle))
			i = next - 1

		case strings.HasPrefix(line, "# "):
			blocks = append(blocks, h1Style.Width(width).Render(strings.TrimPrefix(line, "# ")))

		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, h2Style.Width(width).Render(strings.TrimPrefix(line, "## ")))

		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, h3Style.Width(width).Render(strings.TrimPrefix(line, "### ")))

		case strings.HasPrefix(line, "> "):
			content := renderInline(strings.TrimPrefix(line, "> "))
			blocks = append(blocks, quoteStyle.Width(width).Render(content))

		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			content := renderInline(trimmed[2:])
			bullet := bulletStyle.Render("•") + " "
			blocks = append(blocks, bodyStyle.Width(width).Render(bullet+content))

		case trimmed == "---":
			blocks = append(blocks, ruleStyle.Render(strings.Repeat("─", width)))

		case trimmed == "":
			blocks = append(blocks, "")

		default:
			blocks = append(blocks, bodyStyle.Width(width).Render(renderInline(line)))
		}
	}

	return strings.Join(blocks, "\n")
}

// isAttention matches the attention and caution callout markers.
func isAttention(line string) bool {
	return strings.Contains(line, ":::ATTENTION:::") || strings.Contains(line, ":::CAUTION:::")
}

func isExample(line string) bool {
	return strings.Contains(line, ":::EXAMPLE:::")
}

// collectCallout gathers the body of a callout: lines up to the next blank
// line or heading. Returns the body and the index of the first line after it.
func collectCallout(lines []string, start int) ([]string, int) {
	var body []string
	i := start
	for i < len(lines) {
		line := lines[i]
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			break
		}
		body = append(body, line)
		i++
	}
	return body, i
}

func renderCallout(label string, body []string, width int, box, title lipgloss.Style) string {
	parts := []string{title.Render(label)}
	for _, line := range body {
		parts = append(parts, renderInline(strings.TrimSpace(line)))
	}
	inner := strings.Join(parts, "\n")
	return box.Width(width).Render(inner)
}

// renderInline styles **bold** spans. Unbalanced markers render literally.
func renderInline(s string) string {
	var b strings.Builder
	for {
		open := strings.Index(s, "**")
		if open < 0 {
			b.WriteString(s)
			break
		}
		close := strings.Index(s[open+2:], "**")
		if close < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:open])
		b.WriteString(boldStyle.Render(s[open+2 : open+2+close]))
		s = s[open+close+4:]
	}
	return b.String()
}
