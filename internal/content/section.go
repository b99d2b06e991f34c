package content

import "encoding/json"

// SectionType selects the renderer for a section.
type SectionType string

const (
	SectionHero            SectionType = "hero"
	SectionFeatures        SectionType = "features"
	SectionProductGrid     SectionType = "product-grid"
	SectionText            SectionType = "text"
	SectionGallery         SectionType = "gallery"
	SectionHTML            SectionType = "html"
	SectionLocationContent SectionType = "location-content"
)

// Known reports whether t has a dedicated renderer.
func (t SectionType) Known() bool {
	switch t {
	case SectionHero, SectionFeatures, SectionProductGrid, SectionText,
		SectionGallery, SectionHTML, SectionLocationContent:
		return true
	}
	return false
}

// Content is the loosely typed field bag of a section. Values are JSON
// compatible: string, float64, bool, nil, []any and map[string]any.
type Content map[string]any

// Clone returns a deep copy of c. A nil receiver yields an empty map.
func (c Content) Clone() Content {
	out := make(Content, len(c))
	for k, v := range c {
		out[k] = cloneValue(v)
	}
	return out
}

// String returns the string stored under key, or "".
func (c Content) String(key string) string {
	if s, ok := c[key].(string); ok {
		return s
	}
	return ""
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[k] = cloneValue(inner)
		}
		return out
	case Content:
		return map[string]any(t.Clone())
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = cloneValue(inner)
		}
		return out
	case []string:
		return append([]string{}, t...)
	default:
		return v
	}
}

// Section is one independently editable block of a page.
type Section struct {
	ID      string      `json:"id"`
	Type    SectionType `json:"type"`
	Content Content     `json:"content"`
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	return Section{ID: s.ID, Type: s.Type, Content: s.Content.Clone()}
}

// Body is the typed view of a section's content. The concrete type is
// selected by the section type; FreeformBody covers everything else.
type Body interface {
	SectionType() SectionType
}

type HeroBody struct {
	Title        string `json:"title,omitempty"`
	Subtitle     string `json:"subtitle,omitempty"`
	BtnPrimary   string `json:"btnPrimary,omitempty"`
	BtnSecondary string `json:"btnSecondary,omitempty"`
	BgImage      string `json:"bgImage"`
}

type Feature struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// FeaturesBody backs trust badges, testimonials and product feature lists.
// Items differ in shape per section id, so they stay untyped.
type FeaturesBody struct {
	Title    string    `json:"title,omitempty"`
	Subtitle string    `json:"subtitle,omitempty"`
	Text     string    `json:"text,omitempty"`
	Features []Feature `json:"features,omitempty"`
	Items    []any     `json:"items,omitempty"`
}

type ProductGridBody struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
}

type TextBody struct {
	Title    string   `json:"title,omitempty"`
	Subtitle string   `json:"subtitle,omitempty"`
	Text     string   `json:"text,omitempty"`
	Image    string   `json:"image,omitempty"`
	Years    string   `json:"years,omitempty"`
	Bullets  []string `json:"bullets,omitempty"`
	Items    []any    `json:"items,omitempty"`
}

type GalleryItem struct {
	Title string `json:"title"`
	Img   string `json:"img"`
}

type GalleryBody struct {
	Title    string        `json:"title,omitempty"`
	Subtitle string        `json:"subtitle,omitempty"`
	Items    []GalleryItem `json:"items,omitempty"`
}

type HTMLBody struct {
	HTML string `json:"html"`
}

type LocationBody struct {
	City      string `json:"city,omitempty"`
	Highlight string `json:"highlight,omitempty"`
}

// FreeformBody carries content of unknown or undecodable sections as-is.
type FreeformBody struct {
	Type    SectionType
	Content Content
}

func (HeroBody) SectionType() SectionType        { return SectionHero }
func (FeaturesBody) SectionType() SectionType    { return SectionFeatures }
func (ProductGridBody) SectionType() SectionType { return SectionProductGrid }
func (TextBody) SectionType() SectionType        { return SectionText }
func (GalleryBody) SectionType() SectionType     { return SectionGallery }
func (HTMLBody) SectionType() SectionType        { return SectionHTML }
func (LocationBody) SectionType() SectionType    { return SectionLocationContent }
func (b FreeformBody) SectionType() SectionType  { return b.Type }

// Body decodes the section content into its typed variant. Content that does
// not fit the variant's shape is returned as a FreeformBody.
func (s Section) Body() Body {
	var target Body
	switch s.Type {
	case SectionHero:
		target = &HeroBody{}
	case SectionFeatures:
		target = &FeaturesBody{}
	case SectionProductGrid:
		target = &ProductGridBody{}
	case SectionText:
		target = &TextBody{}
	case SectionGallery:
		target = &GalleryBody{}
	case SectionHTML:
		target = &HTMLBody{}
	case SectionLocationContent:
		target = &LocationBody{}
	default:
		return FreeformBody{Type: s.Type, Content: s.Content.Clone()}
	}

	raw, err := json.Marshal(s.Content)
	if err != nil {
		return FreeformBody{Type: s.Type, Content: s.Content.Clone()}
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return FreeformBody{Type: s.Type, Content: s.Content.Clone()}
	}

	switch b := target.(type) {
	case *HeroBody:
		return *b
	case *FeaturesBody:
		return *b
	case *ProductGridBody:
		return *b
	case *TextBody:
		return *b
	case *GalleryBody:
		return *b
	case *HTMLBody:
		return *b
	case *LocationBody:
		return *b
	}
	return FreeformBody{Type: s.Type, Content: s.Content.Clone()}
}

// EncodeBody converts a typed body into JSON-normalised content.
func EncodeBody(b Body) (Content, error) {
	if free, ok := b.(FreeformBody); ok {
		return free.Content.Clone(), nil
	}
	return Normalize(b)
}

// Normalize round-trips v through JSON so the result only holds the value
// types storage hands back (float64 numbers, []any, map[string]any).
func Normalize(v any) (Content, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := Content{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = Content{}
	}
	return out, nil
}

// NewSection builds a section from a typed body.
func NewSection(id string, b Body) (Section, error) {
	c, err := EncodeBody(b)
	if err != nil {
		return Section{}, err
	}
	return Section{ID: id, Type: b.SectionType(), Content: c}, nil
}
