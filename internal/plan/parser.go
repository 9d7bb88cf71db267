package plan

import (
	"regexp"
	"strings"

	"bizgenius/internal/model"
)

var ordinalRe = regexp.MustCompile(`^\d+\.`)

// matchHeader reports whether a normalized line introduces a new section and
// which catalog title it matches. A line qualifies only when it contains a
// catalog title as a case-insensitive substring AND independently looks like
// a heading: it starts with an ordinal marker ("3.") or is exactly the title.
// The second condition keeps titles merely mentioned in prose from splitting
// the document.
func matchHeader(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	lower := strings.ToLower(trimmed)
	for _, title := range SectionTitles {
		lt := strings.ToLower(title)
		if !strings.Contains(lower, lt) {
			continue
		}
		if ordinalRe.MatchString(trimmed) || lower == lt {
			return title, true
		}
	}
	return "", false
}

// ParseSections splits raw model output into an ordered sequence of titled
// sections. The input is normalized first, then scanned line by line; each
// recognized heading closes the previous section and opens a new one. A
// repeated heading opens a fresh section each time it appears, so duplicates
// are preserved in encounter order rather than merged. When no heading is
// recognized at all, the result is a single section under FallbackTitle
// holding the whole normalized text.
//
// ParseSections is total: any input string, including the empty string,
// yields at least one section.
func ParseSections(raw string) []model.Section {
	text := Normalize(raw)

	sections := make([]model.Section, 0, len(SectionTitles))
	var cur *model.Section

	for _, line := range strings.Split(text, "\n") {
		if title, ok := matchHeader(line); ok {
			if cur != nil && strings.TrimSpace(cur.Content) != "" {
				sections = append(sections, model.Section{Title: cur.Title, Content: Normalize(cur.Content)})
			}
			cur = &model.Section{Title: title}
			continue
		}
		if cur != nil {
			// An underline directly below a heading is decoration, not content.
			if cur.Content == "" {
				if t := strings.TrimSpace(line); t != "" && strings.Trim(t, "-") == "" {
					continue
				}
			}
			cur.Content += line + "\n"
		}
	}
	if cur != nil && strings.TrimSpace(cur.Content) != "" {
		sections = append(sections, model.Section{Title: cur.Title, Content: Normalize(cur.Content)})
	}

	if len(sections) == 0 {
		return []model.Section{{Title: FallbackTitle, Content: text}}
	}
	return sections
}
