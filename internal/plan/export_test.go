package plan

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizgenius/internal/model"
)

func TestRenderText(t *testing.T) {
	doc := model.Plan{
		Title:     "Widget Works Business Plan",
		Industry:  "Manufacturing",
		CreatedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Sections: []model.Section{
			{Title: "Executive Summary", Content: "We sell widgets."},
			{Title: "Market Analysis", Content: "Growing market."},
		},
	}

	got := RenderText(doc)

	assert.Contains(t, got, "Widget Works Business Plan\n")
	assert.Contains(t, got, "Industry: Manufacturing\n")
	assert.Contains(t, got, "Created: 2026-03-14\n")
	for _, s := range doc.Sections {
		underline := strings.Repeat("-", len(s.Title))
		assert.Contains(t, got, s.Title+"\n"+underline+"\n"+s.Content+"\n")
	}
}

func TestRenderTextRoundTrip(t *testing.T) {
	doc := model.Plan{
		Title:     "Widget Works Business Plan",
		Industry:  "Manufacturing",
		CreatedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Sections: []model.Section{
			{Title: "Executive Summary", Content: "We sell widgets."},
			{Title: "Products or Services", Content: "• widgets\n• gadgets"},
			{Title: "Financial Projections", Content: "Break even in year two."},
		},
	}

	got := ParseSections(RenderText(doc))

	require.Len(t, got, len(doc.Sections))
	for i, s := range got {
		assert.Equal(t, doc.Sections[i].Title, s.Title)
		assert.Equal(t, doc.Sections[i].Content, s.Content)
	}
}
