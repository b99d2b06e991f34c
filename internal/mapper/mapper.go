// Package mapper translates between storage rows (flat, snake_case columns
// with JSON blobs) and the nested content types. Reads are resilient per
// field: a malformed column falls back to that field's empty value instead of
// failing the whole record.
package mapper

import (
	"encoding/json"
	"fmt"

	"github.com/stylencms/internal/content"
	"github.com/stylencms/internal/db"
)

// PageToEntity converts a cms_pages row.
func PageToEntity(row db.Page) content.Page {
	template := content.Template(row.Template)
	if !template.Valid() {
		template = content.TemplateContent
	}

	seo := decodeObject(row.SEO)

	return content.Page{
		ID:       row.ID,
		Slug:     row.Slug,
		Template: template,
		Title:    row.Title,
		SEO: content.SEO{
			Title:       stringField(seo, "title"),
			Description: stringField(seo, "description"),
			Keywords:    stringField(seo, "keywords"),
		},
		Sections:    sectionsFromJSON(row.Sections),
		IsPublished: row.IsPublished,
		UpdatedAt:   row.UpdatedAt,
	}
}

// sectionsFromJSON skips elements that are not objects or carry no id, and
// keeps only the first section for a repeated id.
func sectionsFromJSON(raw []byte) []content.Section {
	sections := []content.Section{}
	seen := map[string]bool{}
	for _, item := range decodeArray(raw) {
		var obj map[string]any
		if err := json.Unmarshal(item, &obj); err != nil || obj == nil {
			continue
		}
		id := stringField(obj, "id")
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true

		sectionType := content.SectionType(stringField(obj, "type"))
		if sectionType == "" {
			sectionType = content.SectionTypeFor(id)
		}

		body := content.Content{}
		if c, ok := objectField(obj, "content"); ok {
			body = content.Content(c)
		}

		sections = append(sections, content.Section{ID: id, Type: sectionType, Content: body})
	}
	return sections
}

// PageToRow converts a page into its row. Nil sections are stored as [].
func PageToRow(p content.Page) (db.Page, error) {
	seo, err := encode(p.SEO, "{}")
	if err != nil {
		return db.Page{}, fmt.Errorf("encode seo: %w", err)
	}

	sections := p.Sections
	if sections == nil {
		sections = []content.Section{}
	}
	normalized := make([]content.Section, len(sections))
	for i, s := range sections {
		if s.Content == nil {
			s.Content = content.Content{}
		}
		normalized[i] = s
	}
	rawSections, err := encode(normalized, "[]")
	if err != nil {
		return db.Page{}, fmt.Errorf("encode sections: %w", err)
	}

	return db.Page{
		ID:          p.ID,
		Slug:        p.Slug,
		Template:    string(p.Template),
		Title:       p.Title,
		SEO:         seo,
		Sections:    rawSections,
		IsPublished: p.IsPublished,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

// ProductToEntity converts a cms_products row. Unknown categories become
// "other".
func ProductToEntity(row db.Product) content.Product {
	category := content.Category(row.Category)
	if !category.Valid() {
		category = content.CategoryOther
	}

	specs := []content.Spec{}
	for _, item := range decodeArray(row.Specs) {
		var obj map[string]any
		if err := json.Unmarshal(item, &obj); err != nil || obj == nil {
			continue
		}
		specs = append(specs, content.Spec{Label: stringField(obj, "label"), Value: stringField(obj, "value")})
	}

	return content.Product{
		ID:           row.ID,
		Name:         row.Name,
		Category:     category,
		Description:  row.Description,
		Features:     decodeStrings(row.Features),
		Specs:        specs,
		Image:        row.Image,
		Applications: decodeStrings(row.Applications),
		IsFeatured:   row.IsFeatured,
	}
}

// ProductToRow converts a product into its row.
func ProductToRow(p content.Product) (db.Product, error) {
	features, err := encode(nonNilStrings(p.Features), "[]")
	if err != nil {
		return db.Product{}, fmt.Errorf("encode features: %w", err)
	}
	specs := p.Specs
	if specs == nil {
		specs = []content.Spec{}
	}
	rawSpecs, err := encode(specs, "[]")
	if err != nil {
		return db.Product{}, fmt.Errorf("encode specs: %w", err)
	}
	applications, err := encode(nonNilStrings(p.Applications), "[]")
	if err != nil {
		return db.Product{}, fmt.Errorf("encode applications: %w", err)
	}

	return db.Product{
		ID:           p.ID,
		Name:         p.Name,
		Category:     string(p.Category),
		Description:  p.Description,
		Features:     features,
		Specs:        rawSpecs,
		Image:        p.Image,
		Applications: applications,
		IsFeatured:   p.IsFeatured,
	}, nil
}

// SettingsToEntity converts the settings row. Blank fields stay blank; the
// caller decides whether to substitute defaults.
func SettingsToEntity(row db.Settings) content.Settings {
	integrations := decodeObject(row.Integrations)
	return content.Settings{
		SiteName: row.SiteName,
		Phone:    row.Phone,
		Email:    row.Email,
		Address:  row.Address,
		WhatsApp: row.WhatsApp,
		Integrations: content.Integrations{
			EnableAutoSync: boolField(integrations, "enableAutoSync"),
			ZapierWebhook:  stringField(integrations, "zapierWebhook"),
		},
	}
}

// SettingsToRow converts settings into the singleton row.
func SettingsToRow(s content.Settings) (db.Settings, error) {
	integrations, err := encode(s.Integrations, "{}")
	if err != nil {
		return db.Settings{}, fmt.Errorf("encode integrations: %w", err)
	}
	return db.Settings{
		ID:           db.SettingsRowID,
		SiteName:     s.SiteName,
		Phone:        s.Phone,
		Email:        s.Email,
		Address:      s.Address,
		WhatsApp:     s.WhatsApp,
		Integrations: integrations,
	}, nil
}

// MenuToEntity converts a cms_menus row into its name and items.
func MenuToEntity(row db.Menu) (content.MenuName, []content.MenuItem) {
	items := []content.MenuItem{}
	for _, raw := range decodeArray(row.Items) {
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
			continue
		}
		items = append(items, content.MenuItem{
			ID:     stringField(obj, "id"),
			Label:  stringField(obj, "label"),
			URL:    stringField(obj, "url"),
			Target: stringField(obj, "target"),
		})
	}
	return content.MenuName(row.Type), items
}

// MenuToRow converts one named menu into its row.
func MenuToRow(name content.MenuName, items []content.MenuItem) (db.Menu, error) {
	if items == nil {
		items = []content.MenuItem{}
	}
	raw, err := encode(items, "[]")
	if err != nil {
		return db.Menu{}, fmt.Errorf("encode menu %s: %w", name, err)
	}
	return db.Menu{Type: string(name), Items: raw}, nil
}

// MediaToEntity converts a cms_media row.
func MediaToEntity(row db.Media) content.MediaItem {
	mediaType := row.Type
	if mediaType == "" {
		mediaType = content.MediaTypeImage
	}
	return content.MediaItem{ID: row.ID, Name: row.Name, Type: mediaType, URL: row.URL}
}

// MediaToRow converts a media item into its row.
func MediaToRow(m content.MediaItem) db.Media {
	return db.Media{ID: m.ID, Name: m.Name, Type: m.Type, URL: m.URL}
}

// LeadToEntity converts a leads row.
func LeadToEntity(row db.Lead) content.Lead {
	return content.Lead{
		ID:          row.ID,
		CreatedAt:   row.CreatedAt,
		FullName:    row.FullName,
		Phone:       row.Phone,
		UserType:    row.UserType,
		Requirement: row.Requirement,
	}
}

// LeadToRow converts a lead into its row.
func LeadToRow(l content.Lead) db.Lead {
	return db.Lead{
		ID:          l.ID,
		CreatedAt:   l.CreatedAt,
		FullName:    l.FullName,
		Phone:       l.Phone,
		UserType:    l.UserType,
		Requirement: l.Requirement,
	}
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
