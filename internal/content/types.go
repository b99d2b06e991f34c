package content

import "time"

// Template 决定页面使用哪一套默认布局。
type Template string

const (
	TemplateHome     Template = "home"
	TemplateProduct  Template = "product"
	TemplateLocation Template = "location"
	TemplateContent  Template = "content"
)

// Valid reports whether t is one of the known templates.
func (t Template) Valid() bool {
	switch t {
	case TemplateHome, TemplateProduct, TemplateLocation, TemplateContent:
		return true
	}
	return false
}

// HomeSlug is the routing key reserved for the home page.
const HomeSlug = "/"

// SEO holds the meta tags rendered in a page head.
type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// Page is an editable site page composed of sections.
type Page struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Template    Template  `json:"template"`
	Title       string    `json:"title"`
	SEO         SEO       `json:"seo"`
	Sections    []Section `json:"sections"`
	IsPublished bool      `json:"isPublished"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Clone returns a deep copy of the page.
func (p Page) Clone() Page {
	out := p
	out.Sections = make([]Section, len(p.Sections))
	for i, section := range p.Sections {
		out.Sections[i] = section.Clone()
	}
	return out
}

// Category groups products on the catalogue pages.
type Category string

const (
	CategoryAcrylic     Category = "acrylic"
	CategoryUbuntuBoard Category = "ubuntu-board"
	CategoryCork        Category = "cork"
	CategoryOther       Category = "other"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryAcrylic, CategoryUbuntuBoard, CategoryCork, CategoryOther:
		return true
	}
	return false
}

// Spec is one labelled row of a product's technical data.
type Spec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Product is a sheet product shown in the catalogue.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Specs        []Spec   `json:"specs"`
	Image        string   `json:"image"`
	Applications []string `json:"applications"`
	IsFeatured   bool     `json:"isFeatured,omitempty"`
}

// Clone returns a deep copy of the product.
func (p Product) Clone() Product {
	out := p
	out.Features = append([]string{}, p.Features...)
	out.Specs = append([]Spec{}, p.Specs...)
	out.Applications = append([]string{}, p.Applications...)
	return out
}

// Integrations configures the CRM relay for captured leads.
type Integrations struct {
	EnableAutoSync bool   `json:"enableAutoSync"`
	ZapierWebhook  string `json:"zapierWebhook"`
}

// Settings 是站点级的全局配置，逻辑上只有一份。
type Settings struct {
	SiteName     string       `json:"siteName"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email"`
	Address      string       `json:"address"`
	WhatsApp     string       `json:"whatsapp"`
	Integrations Integrations `json:"integrations"`
}

// MenuName identifies one of the two navigation menus.
type MenuName string

const (
	MenuHeader MenuName = "header"
	MenuFooter MenuName = "footer"
)

// Link target values accepted on menu items.
const (
	TargetSelf  = "_self"
	TargetBlank = "_blank"
)

// MenuItem is a single navigation link.
type MenuItem struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	URL    string `json:"url"`
	Target string `json:"target,omitempty"`
}

// Menus holds the header and footer navigation.
type Menus struct {
	Header []MenuItem `json:"header"`
	Footer []MenuItem `json:"footer"`
}

// Items returns the menu stored under name.
func (m Menus) Items(name MenuName) []MenuItem {
	if name == MenuFooter {
		return m.Footer
	}
	return m.Header
}

// Clone returns a deep copy of both menus.
func (m Menus) Clone() Menus {
	return Menus{
		Header: append([]MenuItem{}, m.Header...),
		Footer: append([]MenuItem{}, m.Footer...),
	}
}

// MediaTypeImage is currently the only media type.
const MediaTypeImage = "image"

// MediaItem is an image in the media library. URL is either an external
// link or an inlined data URL.
type MediaItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Lead is an enquiry captured by the public contact form. Leads are never
// modified once stored.
type Lead struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	FullName    string    `json:"full_name"`
	Phone       string    `json:"phone"`
	UserType    string    `json:"user_type"`
	Requirement string    `json:"requirement"`
}

// Kind names an entity kind as used by seeding and storage.
type Kind string

const (
	KindPage     Kind = "pages"
	KindProduct  Kind = "products"
	KindSettings Kind = "settings"
	KindMenus    Kind = "menus"
	KindMedia    Kind = "media"
	KindLead     Kind = "leads"
)
