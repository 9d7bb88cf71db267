package plan

import (
	"regexp"
	"strings"
)

var (
	blankRunRe   = regexp.MustCompile(`\n{3,}`)
	headerMarkRe = regexp.MustCompile(`^#+\s*`)
	listMarkRe   = regexp.MustCompile(`^[-*+]\s+`)
)

// Normalize cleans raw model output into plain text: markdown emphasis and
// header markers are stripped, list-marker variants become a single bullet
// character, leading whitespace is trimmed per line, and runs of three or
// more line breaks collapse to exactly two. Normalize is idempotent.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		line = strings.TrimLeft(line, " \t")
		line = headerMarkRe.ReplaceAllString(line, "")
		line = listMarkRe.ReplaceAllString(line, "• ")
		line = strings.ReplaceAll(line, "*", "")
		line = strings.ReplaceAll(line, "_", "")
		lines[i] = line
	}
	s = strings.Join(lines, "\n")

	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
