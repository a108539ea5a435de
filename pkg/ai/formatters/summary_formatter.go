package formatters

import (
	"fmt"
	"strings"
)

const summaryInstruction = "You are an expert resume writer. Generate a professional summary that is concise, impactful, and tailored to the user's provided details. The tone should be professional and confident. Output only the summary text, with no extra formatting or introductory phrases."

// BuildSummaryPrompt assembles the drafting prompt for the summary call.
func BuildSummaryPrompt(name, title string, experience, skills []string) string {
	var b strings.Builder
	b.WriteString(summaryInstruction)
	b.WriteString("\n\nBased on the following information, write a compelling and concise professional summary in about 3-4 sentences.\n")
	fmt.Fprintf(&b, "- Full Name: %s\n", name)
	fmt.Fprintf(&b, "- Professional Title: %s\n", title)
	fmt.Fprintf(&b, "- Experience: %s\n", strings.Join(experience, ", "))
	fmt.Fprintf(&b, "- Skills: %s", strings.Join(skills, ", "))
	return b.String()
}
