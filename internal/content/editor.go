package content

import "strings"

// sectionTypes maps well-known section ids onto the type used when the
// section is first created by an edit.
var sectionTypes = map[string]SectionType{
	"hero":             SectionHero,
	"trust":            SectionFeatures,
	"products":         SectionProductGrid,
	"about":            SectionText,
	"social-proof":     SectionText,
	"applications":     SectionGallery,
	"testimonials":     SectionFeatures,
	"faq":              SectionText,
	"location-content": SectionLocationContent,
	"main-content":     SectionHTML,
	"product-hero":     SectionHero,
	"product-features": SectionFeatures,
}

// SectionTypeFor returns the type a new section with the given id gets.
// Unknown ids are plain text sections.
func SectionTypeFor(id string) SectionType {
	if t, ok := sectionTypes[id]; ok {
		return t
	}
	return SectionText
}

// Merge returns the shallow union of base and patch: keys in patch win,
// keys only in base are kept. Nested values are replaced, not merged.
func Merge(base, patch Content) Content {
	out := base.Clone()
	for k, v := range patch {
		out[k] = cloneValue(v)
	}
	return out
}

// FindSection returns the index of the section with id, or -1.
func FindSection(p Page, id string) int {
	for i, section := range p.Sections {
		if section.ID == id {
			return i
		}
	}
	return -1
}

// GetSectionContent returns a copy of the content of section id, or an empty
// map when the page has no such section.
func GetSectionContent(p Page, id string) Content {
	if i := FindSection(p, id); i >= 0 {
		return p.Sections[i].Content.Clone()
	}
	return Content{}
}

// UpdateSection returns a copy of p where section id has patch merged into
// its content. A missing section is appended with exactly patch as content.
// p itself is not modified.
func UpdateSection(p Page, id string, patch Content) Page {
	out := p.Clone()
	if i := FindSection(out, id); i >= 0 {
		out.Sections[i].Content = Merge(out.Sections[i].Content, patch)
		return out
	}
	out.Sections = append(out.Sections, Section{
		ID:      id,
		Type:    SectionTypeFor(id),
		Content: patch.Clone(),
	})
	return out
}

// NormalizeSlug trims surrounding whitespace and trailing slashes. The home
// slug "/" is returned unchanged.
func NormalizeSlug(slug string) string {
	s := strings.TrimSpace(slug)
	if s == HomeSlug || s == "" {
		return s
	}
	trimmed := strings.TrimRight(s, "/")
	if trimmed == "" {
		return HomeSlug
	}
	return trimmed
}
