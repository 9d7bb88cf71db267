package plan

import (
	"fmt"
	"strings"

	"bizgenius/internal/model"
)

// BuildPrompt assembles the generation instruction for a business profile.
// Every profile field is embedded by name; optional fields are included only
// when set. The instruction asks for the full ten-part catalog in plain text
// so the output needs minimal cleanup before sectioning.
func BuildPrompt(p model.BusinessProfile) string {
	var b strings.Builder

	b.WriteString("You are an experienced business consultant. Create a comprehensive business plan for the following business:\n\n")
	fmt.Fprintf(&b, "Business Name: %s\n", p.BusinessName)
	fmt.Fprintf(&b, "Industry: %s\n", p.Industry)
	fmt.Fprintf(&b, "Business Type: %s\n", p.BusinessType)
	fmt.Fprintf(&b, "Location: %s\n", p.Location)
	fmt.Fprintf(&b, "Target Audience: %s\n", p.TargetAudience)
	fmt.Fprintf(&b, "Unique Value Proposition: %s\n", p.UniqueValue)
	if p.RevenueModel != "" {
		fmt.Fprintf(&b, "Revenue Model: %s\n", p.RevenueModel)
	}
	if p.Goals != "" {
		fmt.Fprintf(&b, "Goals: %s\n", p.Goals)
	}

	b.WriteString("\nThe plan must contain these sections, each introduced by a numbered heading on its own line:\n")
	for i, title := range SectionTitles {
		fmt.Fprintf(&b, "%d. %s\n", i+1, title)
	}
	b.WriteString("\nWrite in plain text only. Do not use markdown, asterisks, or any other emphasis markers. Keep each section substantive and specific to the business described above.")

	return b.String()
}

// BuildRevisionPrompt assembles the instruction for a revision pass: the
// current plan is rendered back to text and the user's modification request
// is appended. The response is parsed into a brand new plan; the original is
// never mutated.
func BuildRevisionPrompt(p model.Plan, instructions string) string {
	var b strings.Builder

	b.WriteString("You are an experienced business consultant. Below is an existing business plan followed by a modification request. Rewrite the full plan with the requested changes applied, keeping every section heading.\n\n")
	b.WriteString("Current plan:\n\n")
	b.WriteString(RenderText(p))
	b.WriteString("\n\nModification request: ")
	b.WriteString(instructions)
	b.WriteString("\n\nWrite in plain text only. Do not use markdown, asterisks, or any other emphasis markers. Introduce each section with a numbered heading on its own line.")

	return b.String()
}
