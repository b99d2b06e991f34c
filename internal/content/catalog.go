package content

import (
	"fmt"
	"time"
)

const (
	// HomePageID is the stable id of the built-in home page.
	HomePageID = "307c8702-85a0-4357-9653-4158654c6095"
	// DefaultHeroTitle is the hero headline shipped with the home page.
	DefaultHeroTitle = "Premium Acrylic, Ubuntu & Cork Sheets"
)

// Catalog is the built-in baseline content used when storage is empty or a
// record is missing. All accessors return copies, so callers may modify what
// they get without affecting other requests.
type Catalog struct {
	settings Settings
	menus    Menus
	products []Product
	home     Page
}

// NewCatalog builds the default catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		settings: defaultSettings(),
		menus:    defaultMenus(),
		products: defaultProducts(),
		home:     defaultHomePage(time.Now().UTC()),
	}
}

// Settings returns the default site settings.
func (c *Catalog) Settings() Settings {
	return c.settings
}

// Menus returns both default menus.
func (c *Catalog) Menus() Menus {
	return c.menus.Clone()
}

// Menu returns the default items for one menu.
func (c *Catalog) Menu(name MenuName) []MenuItem {
	return append([]MenuItem{}, c.menus.Items(name)...)
}

// Products returns the default product list.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	for i, p := range c.products {
		out[i] = p.Clone()
	}
	return out
}

// Product looks up a default product by id.
func (c *Catalog) Product(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return Product{}, false
}

// HomePage returns the default home page.
func (c *Catalog) HomePage() Page {
	return c.home.Clone()
}

// Pages returns every default page. There is exactly one: the home page.
func (c *Catalog) Pages() []Page {
	return []Page{c.HomePage()}
}

// Page returns the default page routed at slug, if any.
func (c *Catalog) Page(slug string) (Page, bool) {
	if NormalizeSlug(slug) == c.home.Slug {
		return c.HomePage(), true
	}
	return Page{}, false
}

// SectionDefault returns the default content of section id for pages using
// template. Only the home template ships section defaults.
func (c *Catalog) SectionDefault(template Template, id string) (Content, bool) {
	if template != c.home.Template {
		return nil, false
	}
	if i := FindSection(c.home, id); i >= 0 {
		return c.home.Sections[i].Content.Clone(), true
	}
	return nil, false
}

func defaultSettings() Settings {
	return Settings{
		SiteName: "StylenSurface",
		Phone:    "+91 98765 43210",
		Email:    "sales@stylensurface.com",
		Address:  "Plot No. 123, Industrial Area, Phase 2, New Delhi, 110020",
		WhatsApp: "+91 98765 43210",
		Integrations: Integrations{
			EnableAutoSync: false,
			ZapierWebhook:  "",
		},
	}
}

func defaultMenus() Menus {
	return Menus{
		Header: []MenuItem{
			{ID: "1", Label: "Home", URL: "/"},
			{ID: "2", Label: "Acrylic Sheets", URL: "/acrylic-sheets"},
			{ID: "3", Label: "Ubuntu Sheets", URL: "/ubuntu-sheets"},
			{ID: "4", Label: "Cork Sheets", URL: "/cork-sheets"},
			{ID: "5", Label: "About Us", URL: "/about"},
			{ID: "6", Label: "Contact", URL: "/contact"},
		},
		Footer: []MenuItem{
			{ID: "1", Label: "Home", URL: "/"},
			{ID: "2", Label: "About Us", URL: "/about"},
			{ID: "3", Label: "Privacy Policy", URL: "/privacy"},
			{ID: "4", Label: "Terms", URL: "/terms"},
		},
	}
}

func defaultProducts() []Product {
	return []Product{
		{
			ID:           "a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11",
			Name:         "Clear Cast Acrylic Sheet",
			Category:     CategoryAcrylic,
			Description:  "Premium optical grade clear acrylic with 92% light transmission. Ideal for signage and glazing.",
			Features:     []string{"UV Resistant", "High Clarity", "Weatherproof"},
			Specs:        []Spec{{Label: "Thickness", Value: "2mm - 50mm"}, {Label: "Size", Value: "8ft x 4ft"}},
			Image:        "https://images.unsplash.com/photo-1513366853605-54962eb02f0a?q=80&w=600&auto=format&fit=crop",
			Applications: []string{"Signage", "Glazing"},
		},
		{
			ID:           "b1eebc99-9c0b-4ef8-bb6d-6bb9bd380a12",
			Name:         "Ubuntu Foam Board",
			Category:     CategoryUbuntuBoard,
			Description:  "High density multi-layer composite board. 100% Waterproof and termite proof plywood alternative.",
			Features:     []string{"Waterproof", "Termite Proof", "Screw Holding"},
			Specs:        []Spec{{Label: "Density", Value: "0.65 g/cm3"}, {Label: "Size", Value: "8ft x 4ft"}},
			Image:        "https://picsum.photos/id/135/600/400",
			Applications: []string{"Kitchens", "Furniture"},
		},
		{
			ID:           "c2eebc99-9c0b-4ef8-bb6d-6bb9bd380a13",
			Name:         "Industrial Cork Sheet",
			Category:     CategoryCork,
			Description:  "Rubberized cork sheets for industrial gaskets, vibration pads, and sealing applications.",
			Features:     []string{"High Compression", "Oil Resistant", "Durable"},
			Specs:        []Spec{{Label: "Grade", Value: "RC-20"}, {Label: "Thickness", Value: "3mm - 12mm"}},
			Image:        "https://images.unsplash.com/photo-1621261354943-4a3b10856528?q=80&w=600&auto=format&fit=crop",
			Applications: []string{"Gaskets", "Flooring"},
		},
		{
			ID:           "d3eebc99-9c0b-4ef8-bb6d-6bb9bd380a14",
			Name:         "Colored Acrylic Sheet",
			Category:     CategoryAcrylic,
			Description:  "Vibrant opaque and translucent colored sheets for decorative and branding purposes.",
			Features:     []string{"Consistent Color", "Gloss Finish", "Easy Cutting"},
			Specs:        []Spec{{Label: "Colors", Value: "40+ Available"}},
			Image:        "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?q=80&w=600&auto=format&fit=crop",
			Applications: []string{"Decor", "Displays"},
		},
	}
}

type chatMessage struct {
	Side string `json:"side"`
	Text string `json:"text"`
	Time string `json:"time"`
}

type socialPost struct {
	Platform string        `json:"platform"`
	Name     string        `json:"name"`
	Role     string        `json:"role"`
	Avatar   string        `json:"avatar"`
	Image    string        `json:"image,omitempty"`
	Messages []chatMessage `json:"messages"`
}

type testimonial struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Image   string `json:"image"`
}

type faqEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func defaultHomePage(now time.Time) Page {
	return Page{
		ID:          HomePageID,
		Title:       "Home Page",
		Slug:        HomeSlug,
		Template:    TemplateHome,
		IsPublished: true,
		UpdatedAt:   now,
		SEO: SEO{
			Title:       "StylenSurface | Premium Industrial Sheets",
			Description: "Manufacturer of Acrylic, Ubuntu, and Cork Sheets.",
			Keywords:    "acrylic sheets, ubuntu board, cork sheets",
		},
		Sections: []Section{
			mustSection("hero", HeroBody{
				Title:        DefaultHeroTitle,
				Subtitle:     "Direct from manufacturer. High-quality, custom-cut sheets for furniture, construction, signage, and industrial applications across India.",
				BtnPrimary:   "Get Best Price Quote",
				BtnSecondary: "View Catalog",
			}),
			mustSection("trust", FeaturesBody{
				Title: "Why Industry Leaders Choose Us",
				Features: []Feature{
					{Icon: "Factory", Title: "Manufacturer Direct", Desc: "No middlemen, get factory prices."},
					{Icon: "Clock", Title: "10+ Years Experience", Desc: "Expertise in sheet manufacturing."},
					{Icon: "Users", Title: "500+ Happy Clients", Desc: "Trusted by top furniture brands."},
					{Icon: "Ruler", Title: "Custom Sizes", Desc: "Cut-to-size service available."},
					{Icon: "MapPin", Title: "Pan-India Delivery", Desc: "Fast logistics partner network."},
					{Icon: "Award", Title: "ISO 9001 Certified", Desc: "Guaranteed quality standards."},
				},
			}),
			mustSection("products", ProductGridBody{
				Title:    "Premium Industrial Sheets",
				Subtitle: "Explore our extensive collection of specialized sheet categories designed for durability, aesthetics, and industrial performance.",
			}),
			mustSection("about", TextBody{
				Title:   "Manufacturing Quality That You Can Trust",
				Text:    "Established in 2013, StylenSurface has grown to become one of India's most trusted suppliers of industrial grade sheets. Our state-of-the-art manufacturing facility employs advanced extrusion and casting technologies to ensure every sheet meets rigorous ISO standards.",
				Image:   "https://picsum.photos/id/180/600/500",
				Years:   "10+",
				Bullets: []string{"ISO 9001:2015 Certified", "Advanced CNC Cutting", "Eco-friendly Practices", "24/7 Support"},
			}),
			mustSection("social-proof", TextBody{
				Title:    "Don't Just Take Our Word For It",
				Subtitle: "See what our clients are saying about us directly on WhatsApp and Instagram. Transparency is our best policy.",
				Items: []any{
					socialPost{
						Platform: "whatsapp",
						Name:     "Rahul - Furniture Mfg",
						Role:     "Bulk Buyer",
						Avatar:   "https://randomuser.me/api/portraits/men/32.jpg",
						Messages: []chatMessage{
							{Side: "right", Text: "Hi team, received the 50 sheets of Acrylic today.", Time: "10:30 AM"},
							{Side: "right", Text: "Packaging was solid. No scratches at all! ⭐", Time: "10:31 AM"},
							{Side: "left", Text: "Glad to hear that Rahul! We added extra corner guards this time.", Time: "10:35 AM"},
						},
					},
					socialPost{
						Platform: "instagram",
						Name:     "design_studio_x",
						Role:     "Interior Designer",
						Avatar:   "https://randomuser.me/api/portraits/women/44.jpg",
						Image:    "https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?q=80&w=300&auto=format&fit=crop",
						Messages: []chatMessage{
							{Side: "left", Text: "Hey! Just installed the Ubuntu sheets for the vanity.", Time: "2h"},
							{Side: "left", Text: "Carpenters are loving the calibration. Zero undulations! 😍", Time: "2h"},
							{Side: "right", Text: "Music to our ears! 🛠️✨ Can't wait to see the final pics.", Time: "1h"},
						},
					},
					socialPost{
						Platform: "whatsapp",
						Name:     "Vikram Signs",
						Role:     "Distributor",
						Avatar:   "https://randomuser.me/api/portraits/men/86.jpg",
						Messages: []chatMessage{
							{Side: "left", Text: "Sir, the 12mm Clear Acrylic quality is superb.", Time: "4:20 PM"},
							{Side: "left", Text: "Laser cutting edges are coming out crystal clear.", Time: "4:21 PM"},
							{Side: "right", Text: "That's great Vikram. It's 100% virgin monomer casting.", Time: "4:25 PM"},
						},
					},
				},
			}),
			mustSection("applications", GalleryBody{
				Title:    "Applications Across Industries",
				Subtitle: "From heavy industry to aesthetic interiors, our sheets deliver performance and beauty.",
				Items: []GalleryItem{
					{Title: "Furniture Manufacturing", Img: "https://picsum.photos/id/40/600/400"},
					{Title: "Interior Design & Decor", Img: "https://picsum.photos/id/50/600/400"},
					{Title: "Signage & Displays", Img: "https://picsum.photos/id/60/600/400"},
					{Title: "Industrial Fabrication", Img: "https://picsum.photos/id/70/600/400"},
					{Title: "Construction & Roofing", Img: "https://picsum.photos/id/80/600/400"},
					{Title: "Office Partitions", Img: "https://picsum.photos/id/90/600/400"},
				},
			}),
			mustSection("testimonials", FeaturesBody{
				Title:    "Trusted by Professionals",
				Subtitle: "Join over 500+ businesses who trust StylenSurface for their material needs.",
				Items: []any{
					testimonial{
						ID:      1,
						Name:    "Rajesh Kumar",
						Role:    "Production Manager",
						Company: "Urban Furniture Ltd.",
						Content: "We have been procuring Ubuntu sheets for our modular kitchens for 2 years. The moisture resistance and finish are top-notch.",
						Rating:  5,
						Image:   "https://randomuser.me/api/portraits/men/32.jpg",
					},
					testimonial{
						ID:      2,
						Name:    "Sarah Pinto",
						Role:    "Interior Designer",
						Company: "Design Studio X",
						Content: "Their clear acrylic sheets are perfect for the high-end signage projects we handle. Delivery is always on time in Mumbai.",
						Rating:  5,
						Image:   "https://randomuser.me/api/portraits/women/44.jpg",
					},
					testimonial{
						ID:      3,
						Name:    "Amit Verma",
						Role:    "Purchase Head",
						Company: "Industrial Solutions",
						Content: "Excellent cork sheets for our industrial gasket requirements. Very consistent density and pricing is competitive.",
						Rating:  4,
						Image:   "https://randomuser.me/api/portraits/men/85.jpg",
					},
				},
			}),
			mustSection("faq", TextBody{
				Title: "Frequently Asked Questions",
				Items: []any{
					faqEntry{
						Question: "What is the minimum order quantity (MOQ) for bulk prices?",
						Answer:   "For wholesale pricing, our MOQ is typically 500kg or 50 sheets, depending on the material type.",
					},
					faqEntry{
						Question: "Do you provide custom cutting services?",
						Answer:   "Yes, we have advanced CNC and laser cutting machines to provide sheets cut to your exact dimensions.",
					},
					faqEntry{
						Question: "What is the difference between Cast and Extruded Acrylic?",
						Answer:   "Cast acrylic offers better optical clarity and chemical resistance. Extruded is more uniform in thickness.",
					},
					faqEntry{
						Question: "Do you deliver pan-India?",
						Answer:   "Yes, we have logistics partners covering all major cities and industrial hubs across India.",
					},
					faqEntry{
						Question: "Can I get a sample before placing a bulk order?",
						Answer:   "Absolutely. We can ship a sample kit containing small swatches of our Acrylic, Ubuntu, and Cork sheets.",
					},
				},
			}),
		},
	}
}

// mustSection panics on encoding errors; the catalog only holds static data.
func mustSection(id string, b Body) Section {
	s, err := NewSection(id, b)
	if err != nil {
		panic(fmt.Sprintf("content: encode default section %q: %v", id, err))
	}
	return s
}
