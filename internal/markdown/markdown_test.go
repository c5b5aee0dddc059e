package markdown

import (
	"strings"
	"testing"
)

func TestRender_Headings(t *testing.T) {
	out := Render("# Title\n## Section\n### Sub", 80)
	for _, want := range []string{"Title", "Section", "Sub"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "#") {
		t.Error("heading markers should not survive rendering")
	}
}

func TestRender_Bullets(t *testing.T) {
	out := Render("- first\n* second", 80)
	if !strings.Contains(out, "• first") || !strings.Contains(out, "• second") {
		t.Errorf("bullets not rendered:\n%s", out)
	}
}

func TestRender_BoldMarkersConsumed(t *testing.T) {
	out := Render("a **key term** here", 80)
	if strings.Contains(out, "**") {
		t.Error("bold markers should not survive rendering")
	}
	if !strings.Contains(out, "key term") {
		t.Error("bold content lost")
	}
}

func TestRender_UnbalancedBoldIsLiteral(t *testing.T) {
	out := Render("a **dangling marker", 80)
	if !strings.Contains(out, "**dangling marker") {
		t.Errorf("unbalanced markers should render literally:\n%s", out)
	}
}

func TestRender_CalloutBlocks(t *testing.T) {
	text := ":::ATTENTION:::\nexceptions live here\nand here\n\nafter the block"
	out := Render(text, 80)

	if !strings.Contains(out, "ATTENTION") {
		t.Error("attention label missing")
	}
	if !strings.Contains(out, "exceptions live here") || !strings.Contains(out, "and here") {
		t.Error("callout body missing")
	}
	if !strings.Contains(out, "after the block") {
		t.Error("content after the callout was swallowed")
	}
	if strings.Contains(out, ":::") {
		t.Error("callout markers should not survive rendering")
	}
}

func TestRender_CalloutStopsAtHeading(t *testing.T) {
	text := ":::EXAMPLE:::\nscenario line\n# Next Section"
	out := Render(text, 80)

	if !strings.Contains(out, "EXAMPLE") || !strings.Contains(out, "scenario line") {
		t.Error("example callout not rendered")
	}
	if !strings.Contains(out, "Next Section") {
		t.Error("heading after callout was swallowed")
	}
}

func TestRender_Rule(t *testing.T) {
	out := Render("---", 20)
	if !strings.Contains(out, "────") {
		t.Errorf("horizontal rule not rendered:\n%s", out)
	}
}

func TestRender_NarrowWidthClamped(t *testing.T) {
	// Must not panic on degenerate widths.
	out := Render("# T\nparagraph", 0)
	if out == "" {
		t.Fatal("empty output")
	}
}
