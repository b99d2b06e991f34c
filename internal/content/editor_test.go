package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePage() Page {
	return Page{
		ID:       "page-1",
		Slug:     "/about",
		Template: TemplateContent,
		Title:    "About",
		Sections: []Section{
			{ID: "hero", Type: SectionHero, Content: Content{"title": "Old", "subtitle": "Keep me"}},
			{ID: "about", Type: SectionText, Content: Content{"text": "Body", "meta": map[string]any{"a": "1", "b": "2"}}},
		},
	}
}

func TestGetSectionContentUnknownID(t *testing.T) {
	p := samplePage()
	got := GetSectionContent(p, "missing")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetSectionContentReturnsCopy(t *testing.T) {
	p := samplePage()
	got := GetSectionContent(p, "hero")
	got["title"] = "changed"
	assert.Equal(t, "Old", p.Sections[0].Content["title"])
}

func TestUpdateSectionShallowUnion(t *testing.T) {
	p := samplePage()
	next := UpdateSection(p, "hero", Content{"title": "New", "bgImage": "x.png"})

	assert.Equal(t, Content{"title": "New", "subtitle": "Keep me", "bgImage": "x.png"}, next.Sections[0].Content)
	assert.Equal(t, "Old", p.Sections[0].Content["title"], "input page must not change")
	assert.Equal(t, p.Sections[1], next.Sections[1])
	assert.Len(t, next.Sections, 2)
}

func TestUpdateSectionSequentialPatches(t *testing.T) {
	p := samplePage()
	c1 := Content{"title": "First", "cta": "Call"}
	c2 := Content{"title": "Second", "badge": "New"}

	next := UpdateSection(UpdateSection(p, "hero", c1), "hero", c2)

	want := Content{"title": "Second", "subtitle": "Keep me", "cta": "Call", "badge": "New"}
	assert.Equal(t, want, next.Sections[0].Content)
	assert.Equal(t, p.Sections[1:], next.Sections[1:])
}

func TestUpdateSectionReplacesNestedValues(t *testing.T) {
	p := samplePage()
	next := UpdateSection(p, "about", Content{"meta": map[string]any{"a": "9"}})
	assert.Equal(t, map[string]any{"a": "9"}, next.Sections[1].Content["meta"])
}

func TestUpdateSectionAppendsKnownID(t *testing.T) {
	p := samplePage()
	patch := Content{"title": "Why us"}
	next := UpdateSection(p, "trust", patch)

	require.Len(t, next.Sections, 3)
	added := next.Sections[2]
	assert.Equal(t, "trust", added.ID)
	assert.Equal(t, SectionFeatures, added.Type)
	assert.Equal(t, patch, added.Content)
	assert.Len(t, p.Sections, 2)
}

func TestUpdateSectionAppendsUnknownIDAsText(t *testing.T) {
	next := UpdateSection(Page{}, "custom-banner", Content{"x": "y"})
	require.Len(t, next.Sections, 1)
	assert.Equal(t, SectionText, next.Sections[0].Type)
}

func TestUpdateSectionNeverDuplicates(t *testing.T) {
	p := UpdateSection(Page{}, "faq", Content{"title": "A"})
	p = UpdateSection(p, "faq", Content{"title": "B"})
	require.Len(t, p.Sections, 1)
	assert.Equal(t, "B", p.Sections[0].Content["title"])
}

func TestSectionTypeFor(t *testing.T) {
	cases := map[string]SectionType{
		"hero":             SectionHero,
		"trust":            SectionFeatures,
		"products":         SectionProductGrid,
		"applications":     SectionGallery,
		"testimonials":     SectionFeatures,
		"faq":              SectionText,
		"location-content": SectionLocationContent,
		"main-content":     SectionHTML,
		"product-hero":     SectionHero,
		"product-features": SectionFeatures,
		"anything-else":    SectionText,
	}
	for id, want := range cases {
		assert.Equal(t, want, SectionTypeFor(id), id)
	}
}

func TestNormalizeSlug(t *testing.T) {
	cases := map[string]string{
		"/":        "/",
		"/about/":  "/about",
		"/about":   "/about",
		" /cork/ ": "/cork",
		"//":       "/",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeSlug(in), in)
	}
}

func TestMergeNilBase(t *testing.T) {
	got := Merge(nil, Content{"a": "b"})
	assert.Equal(t, Content{"a": "b"}, got)
}
