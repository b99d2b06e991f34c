package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stylencms/internal/content"
)

// ListPages returns every stored page.
func (a *API) ListPages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pages": a.pages.ListPages(c.Request.Context())})
}

// GetPage returns one page by id.
func (a *API) GetPage(c *gin.Context) {
	page, err := a.pages.GetPage(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "failed to load page")
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page})
}

// CreatePage adds a blank draft page.
func (a *API) CreatePage(c *gin.Context) {
	page, err := a.pages.CreatePage(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "failed to create page")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"page": page})
}

// SavePage replaces the page identified by the path id with the body.
func (a *API) SavePage(c *gin.Context) {
	var payload content.Page
	if !bindJSON(c, &payload, "invalid page payload") {
		return
	}
	payload.ID = c.Param("id")

	page, err := a.pages.SavePage(c.Request.Context(), payload)
	if err != nil {
		respondServiceError(c, err, "failed to save page")
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page})
}

// DeletePage removes a page.
func (a *API) DeletePage(c *gin.Context) {
	if err := a.pages.DeletePage(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "failed to delete page")
		return
	}
	c.Status(http.StatusNoContent)
}

// DuplicatePage stores a draft copy of a page.
func (a *API) DuplicatePage(c *gin.Context) {
	page, err := a.pages.DuplicatePage(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "failed to duplicate page")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"page": page})
}

// GetSection returns the stored content of one section, {} when absent.
func (a *API) GetSection(c *gin.Context) {
	section, err := a.pages.GetSectionContent(c.Request.Context(), c.Param("id"), c.Param("section"))
	if err != nil {
		respondServiceError(c, err, "failed to load section")
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": section})
}

// UpdateSection merges the JSON object in the body into one section.
func (a *API) UpdateSection(c *gin.Context) {
	var patch content.Content
	if !bindJSON(c, &patch, "section patch must be a JSON object") {
		return
	}
	if patch == nil {
		patch = content.Content{}
	}

	page, err := a.pages.UpdateSection(c.Request.Context(), c.Param("id"), c.Param("section"), patch)
	if err != nil {
		respondServiceError(c, err, "failed to update section")
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page})
}
