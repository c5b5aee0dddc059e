package questiongen

import (
	"fmt"
	"strings"

	"github.com/gfranca/mestre/internal/exam"
)

// maxStudyContext caps how much pasted study material goes into the prompt.
const maxStudyContext = 50000

const systemPrompt = `You are a question writer for public competitive examinations.

Rules:
- Write original questions in the style of the examining board for the given
  exam: its vocabulary, its stem length, its typical traps.
- Every question has exactly 5 options (A, B, C, D, E) with exactly one
  correct option.
- In the explanation field, explain WHY the correct option is correct and WHY
  each of the others is wrong.
- Tag every question with the specific topic it covers.
- Respond with a single JSON object and nothing else.`

// GenerateInput selects one of three generation modes:
// study-context (StudyContext set), full mock exam (Topic is
// exam.GeneralTopic and Subjects present), or single topic (everything else).
type GenerateInput struct {
	// ExamContext names the exam the questions are for, e.g.
	// "IBGE 2025 - Census Agent".
	ExamContext string

	// Count is how many questions to produce.
	Count int

	// Topic focuses the set on one syllabus topic. exam.GeneralTopic
	// spreads the set across Subjects instead.
	Topic string

	// StudyContext, when non-empty, restricts questions to this study
	// material. Takes precedence over Topic and Subjects.
	StudyContext string

	// Subjects is the syllabus used to distribute a full mock exam.
	Subjects []exam.Subject

	// Organization is the examining board, used to sharpen the persona.
	Organization string
}

func buildUserMessage(input GenerateInput) string {
	switch {
	case input.StudyContext != "":
		return buildStudyContextPrompt(input)
	case input.Topic == exam.GeneralTopic && len(input.Subjects) > 0:
		return buildFullMockPrompt(input)
	default:
		return buildTopicPrompt(input)
	}
}

// buildStudyContextPrompt generates questions strictly from pasted material.
func buildStudyContextPrompt(input GenerateInput) string {
	content := input.StudyContext
	truncated := false
	if len(content) > maxStudyContext {
		content = content[:maxStudyContext]
		truncated = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Act as an examiner of the board for the exam: %q.\n\n", input.ExamContext)
	fmt.Fprintf(&b, "Create a mock exam of %d questions based STRICTLY on the study text below.\n\n", input.Count)
	b.WriteString("STUDY TEXT (base for the questions):\n\"\"\"\n")
	b.WriteString(content)
	if truncated {
		b.WriteString("\n... (truncated)")
	}
	b.WriteString("\n\"\"\"\n\n")
	b.WriteString("Strict rules:\n")
	b.WriteString("1. Level: medium to hard, compatible with the exam.\n")
	b.WriteString("2. Style: imitate how this exam's board phrases its questions.\n")
	b.WriteString("3. Test comprehension of the rules, exceptions and case law cited in the text.\n")
	b.WriteString("4. In the explanation, reference the text when commenting each option.\n")
	return b.String()
}

// buildFullMockPrompt generates a full mock exam distributed across the
// syllabus, weighted by subject importance.
func buildFullMockPrompt(input GenerateInput) string {
	parts := make([]string, len(input.Subjects))
	for i, s := range input.Subjects {
		parts[i] = fmt.Sprintf("%s (weight: %s)", s.Name, s.Importance)
	}

	persona := "the official examining board"
	if input.Organization != "" {
		persona = fmt.Sprintf("the board %s", input.Organization)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a FULL MOCK EXAM for the exam: %q.\n\n", input.ExamContext)
	fmt.Fprintf(&b, "Goal: simulate the real exam-day experience. Total questions: %d.\n\n", input.Count)
	b.WriteString("Syllabus subjects (follow this distribution):\n")
	b.WriteString(strings.Join(parts, "; "))
	b.WriteString("\n\nStrict guidelines:\n")
	fmt.Fprintf(&b, "1. Persona: you are %s. Use its vocabulary, stem length and typical traps.\n", persona)
	fmt.Fprintf(&b, "2. Distribution: spread the %d questions proportionally to subject weight (High gets more).\n", input.Count)
	b.WriteString("3. Realism: no generic questions. Contextualize with statutes, hypothetical cases or text interpretation, per the board's style.\n")
	b.WriteString("4. Answer key: comment every question in detail, explaining the board's reasoning.\n")
	return b.String()
}

// buildTopicPrompt generates questions for a single topic, or a random mix
// when no syllabus is available.
func buildTopicPrompt(input GenerateInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a mock exam of original questions for the exam: %q.\n", input.ExamContext)
	fmt.Fprintf(&b, "Content focus: %s.\n", input.Topic)
	fmt.Fprintf(&b, "Number of questions: %d.\n", input.Count)
	b.WriteString("Board style: imitate the board that usually runs this kind of exam.\n")
	return b.String()
}

const pastExamSystemPrompt = `You are an archivist of public competitive examinations.

Rules:
- Search the web for the original content of the requested exam paper: PDFs,
  question banks, official answer keys.
- Identify the exact year and examining board.
- Extract or reconstruct the text of the REAL questions. Try to find at least
  20 to 30 original questions. Keep the stems and options faithful to the
  original, and mark the correct option per the official answer key.
- If the exact text of every question cannot be found, find as many as
  possible and fill the rest with faithful same-board, same-year style
  questions, but prioritize the real ones.
- In the explanation field, add a didactic review comment even if the
  original paper had none.
- Respond with a single JSON object, without introductory text or markdown.`

func buildPastExamPrompt(searchQuery string) string {
	return fmt.Sprintf("Find the real exam paper (historical questions) matching this search: %q.\n", searchQuery)
}
