package examinfo

import (
	"fmt"
	"strings"
)

const analyzeSystemPrompt = `You are an elite specialist in public competitive examinations.

Rules:
- Research the requested exam using web search before answering.
- If the exam is specific (e.g. "IBGE 2025"), use the exact data from the
  current or expected official notice. If no notice is open, rely on the most
  recent news and the last published notice.
- Report the examining board, the main roles on offer, the schedule
  (registration window and exam date), how the board typically phrases its
  questions, and the subjects common to all roles or to the main role.
- Do not invent data. Prefer figures straight from the official notice.
- Respond with a single JSON object and nothing else.`

// buildAnalyzePrompt asks for a full research pass over one named exam.
func buildAnalyzePrompt(examName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Research and analyze the following exam in detail: %q.\n\n", examName)
	b.WriteString("I need these exact data points:\n")
	b.WriteString("1. The examining board.\n")
	b.WriteString("2. Available roles: list the main roles (e.g. Technician, Analyst, Agent).\n")
	b.WriteString("3. The schedule: registration window and exam date.\n")
	b.WriteString("4. Board analysis: how does it usually phrase its questions?\n")
	b.WriteString("5. General subjects: the subjects common to all roles or to the main role.\n")
	return b.String()
}

const roleSystemPrompt = `You are a syllabus researcher for public competitive examinations.

Rules:
- Immediately search for the official notice (syllabus) for the specific role
  you are given.
- Return the subject list and above all the specific topics required for that
  role. Do not invent: use real data from the current notice, or from the last
  published notice for that role.
- Respond with a single JSON object and nothing else.`

// buildRolePrompt asks for the syllabus of one role within a known exam.
func buildRolePrompt(examTitle, organization, role string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The candidate selected the role %q for the exam %q", role, examTitle)
	if organization != "" {
		fmt.Fprintf(&b, " (board: %s)", organization)
	}
	b.WriteString(".\n\n")
	fmt.Fprintf(&b, "Return the subjects and the specific topics required for %s.\n", role)
	return b.String()
}
