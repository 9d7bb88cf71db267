package plan

import (
	"strings"

	"bizgenius/internal/model"
)

// RenderText produces the flat-text export of a plan: a short header with the
// title, industry, and creation date, then every section with its title
// underlined with dashes. Re-parsing the rendered text recovers the same
// section titles in the same order.
func RenderText(p model.Plan) string {
	var b strings.Builder

	b.WriteString(p.Title)
	b.WriteString("\n")
	b.WriteString("Industry: " + p.Industry)
	b.WriteString("\n")
	b.WriteString("Created: " + p.CreatedAt.Format("2006-01-02"))
	b.WriteString("\n")

	for _, s := range p.Sections {
		b.WriteString("\n")
		b.WriteString(s.Title)
		b.WriteString("\n")
		b.WriteString(strings.Repeat("-", len(s.Title)))
		b.WriteString("\n")
		b.WriteString(s.Content)
		b.WriteString("\n")
	}

	return b.String()
}
