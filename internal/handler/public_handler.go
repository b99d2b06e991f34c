package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stylencms/internal/content"
	"github.com/stylencms/internal/view"
)

type publicPage struct {
	ID        string           `json:"id"`
	Slug      string           `json:"slug"`
	Template  content.Template `json:"template"`
	Title     string           `json:"title"`
	SEO       content.SEO      `json:"seo"`
	UpdatedAt time.Time        `json:"updatedAt"`
	Sections  []view.Section   `json:"sections"`
}

// publicSettings omits the integration settings, which hold the CRM hook.
type publicSettings struct {
	SiteName string `json:"siteName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	WhatsApp string `json:"whatsapp"`
}

// ShowPage returns a published page with every section resolved against its
// defaults and, for text and html sections, rendered to HTML.
func (a *API) ShowPage(c *gin.Context) {
	page, err := a.pages.GetPageBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err, "failed to load page")
		return
	}
	if !page.IsPublished {
		respondError(c, http.StatusNotFound, "page not found")
		return
	}

	out := publicPage{
		ID:        page.ID,
		Slug:      page.Slug,
		Template:  page.Template,
		Title:     page.Title,
		SEO:       page.SEO,
		UpdatedAt: page.UpdatedAt,
		Sections:  make([]view.Section, 0, len(page.Sections)),
	}
	for _, section := range page.Sections {
		rendered, err := a.renderer.RenderSection(section, a.pages.ResolveSection(page, section.ID))
		if err != nil {
			respondServiceError(c, err, "failed to render page")
			return
		}
		out.Sections = append(out.Sections, rendered)
	}

	c.JSON(http.StatusOK, gin.H{"page": out})
}

// ShowSettings returns the public part of the site settings.
func (a *API) ShowSettings(c *gin.Context) {
	s := a.settings.GetSettings(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"settings": publicSettings{
		SiteName: s.SiteName,
		Phone:    s.Phone,
		Email:    s.Email,
		Address:  s.Address,
		WhatsApp: s.WhatsApp,
	}})
}
