package llm

import "strings"

// StripFences removes a Markdown code fence wrapping the given text.
// Models sometimes wrap JSON in ```json ... ``` even when asked not to,
// especially when structured output is unavailable (grounded requests).
// Text without a fence is returned trimmed but otherwise unchanged.
func StripFences(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	// Drop the optional language tag on the opening fence line.
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
