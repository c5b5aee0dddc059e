package study

import (
	"fmt"
	"strings"

	"github.com/gfranca/mestre/internal/exam"
)

const lessonSystemPrompt = `You are the best exam-preparation teacher in the country.

Rules:
- Authoritative but didactic tone.
- Rich formatting: bold for key terms, lists, comparison tables where they
  help tell concepts apart.
- Be PRECISE. No generic explanations. Use the exact technical terminology
  the syllabus demands.
- Research past questions from the given board on this topic before writing,
  and shape the lesson around how that board actually tests it.`

// buildLessonPrompt asks for the definitive lesson on one topic, laid out
// in the app's markdown subset (including ::: callout blocks).
func buildLessonPrompt(rec exam.Record, subjectName, topicName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create the definitive study material for the topic %q (%s).\n\n", topicName, subjectName)

	b.WriteString("Context:\n")
	fmt.Fprintf(&b, "- Exam: %s\n", rec.Title)
	fmt.Fprintf(&b, "- Board: %s\n", rec.Organization)
	if rec.SelectedRole != "" {
		fmt.Fprintf(&b, "- Target role: %s\n", rec.SelectedRole)
	}

	b.WriteString("\nMandatory lesson structure (markdown):\n\n")
	fmt.Fprintf(&b, "# %s\n\n", topicName)
	fmt.Fprintf(&b, "> **Overview:** what this is and why %s tests it. Be direct.\n\n", rec.Organization)
	b.WriteString("## 1. How the Rule Works (Pure Theory)\n")
	b.WriteString("No padding. Explain HOW IT WORKS: the exact rule, the underlying structure, the formula or statute as the subject demands.\n\n")
	b.WriteString("## 2. Golden Rules & Exceptions\n")
	b.WriteString("This is where candidates win the question. List the mandatory rules, then a :::ATTENTION::: block covering the EXCEPTIONS, one by one. Boards love exceptions.\n\n")
	fmt.Fprintf(&b, "## 3. Board X-Ray: %s\n", rec.Organization)
	b.WriteString("Search for patterns: which words the board swaps, whether it leans on the bare statute or on case law here, and its historical traps for this topic.\n\n")
	b.WriteString("## 4. Commented Examples\n")
	b.WriteString("Three clear examples, each as a :::EXAMPLE::: block with a scenario and how the rule applies.\n\n")
	b.WriteString("## 5. Memorization Summary\n")
	b.WriteString("A short bullet list with the keywords to memorize.\n")
	return b.String()
}

const expandSystemPrompt = `You are the advanced-course teacher.

Rules:
- The student has already read the base material. Do not repeat it.
- Research deeper nuances, recent case law or technical details the base
  material did not cover.
- Use markdown formatting consistent with the base material.`

// expandHeading opens every appendix so it splices cleanly under the lesson.
const expandHeading = "---\n# Advanced Deep Dive & Extra Questions"

func buildExpandPrompt(currentContent, topicName string, tailChars int) string {
	tail := currentContent
	if len(tail) > tailChars {
		tail = tail[len(tail)-tailChars:]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The student finished the base material on %q and asked for more depth.\n\n", topicName)
	b.WriteString("EXISTING MATERIAL (do not repeat, excerpt of the ending):\n\"\"\"\n")
	b.WriteString(tail)
	b.WriteString("\n\"\"\"\n\n")
	b.WriteString("Create an ADVANCED APPENDIX:\n")
	b.WriteString("1. Deeper nuances, recent case law or technical details not yet covered.\n")
	b.WriteString("2. Two hard-level questions commented step by step.\n\n")
	fmt.Fprintf(&b, "Start the text with:\n%q\n", expandHeading)
	return b.String()
}

const tutorSystemPrompt = `You are a gentle and extremely didactic private tutor.

Rules:
- Explain the student's doubt clearly, using everyday analogies.
- Give one new practical example, different from the material.
- Be direct and encouraging.
- Format the answer in markdown, bold for emphasis.`

func buildTutorPrompt(currentContent, userQuestion string, contextChars int) string {
	excerpt := currentContent
	if len(excerpt) > contextChars {
		excerpt = excerpt[:contextChars]
	}

	var b strings.Builder
	b.WriteString("MATERIAL THE STUDENT IS READING (excerpt):\n\"\"\"\n")
	b.WriteString(excerpt)
	b.WriteString("\n\"\"\"\n\n")
	fmt.Fprintf(&b, "STUDENT'S DOUBT:\n%q\n", userQuestion)
	return b.String()
}

const stepSystemPrompt = `You are an elite mentor giving a one-on-one advanced lecture.

Rules:
- Deconstruct the topic into logical steps, like an algorithm or a recipe.
- No jargon in the one-sentence concept. Use a powerful analogy.
- Rich markdown: bold, numbered lists.
- Be extremely didactic and logical.`

func buildStepByStepPrompt(topicName, currentContent string, contextChars int) string {
	excerpt := currentContent
	if len(excerpt) > contextChars {
		excerpt = excerpt[:contextChars]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The student is studying %q and asked for a STEP-BY-STEP breakdown of the logic behind it.\n\n", topicName)
	b.WriteString("Base content (context):\n\"\"\"\n")
	b.WriteString(excerpt)
	b.WriteString("\n\"\"\"\n\n")
	b.WriteString("Generate the explanation structured exactly like this:\n\n")
	fmt.Fprintf(&b, "# Structural Logic: %s\n\n", topicName)
	b.WriteString("## 1. The Concept in One Sentence\n")
	b.WriteString("What it is, without jargon, plus a powerful analogy.\n\n")
	b.WriteString("## 2. The Identification Checklist\n")
	b.WriteString("A mental checklist: \"to know whether this rule applies, look at:\" followed by numbered steps.\n\n")
	b.WriteString("## 3. The Application Manual\n")
	b.WriteString("How to solve a question of this type, as bold numbered steps.\n\n")
	b.WriteString("## 4. Dissected Examples\n")
	b.WriteString("Two complex examples, walking through every part of the problem step by step to the conclusion.\n")
	return b.String()
}
