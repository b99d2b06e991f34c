package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stylencms/internal/content"
)

// GetMenus returns the header and footer navigation.
func (a *API) GetMenus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"menus": a.menus.GetMenus(c.Request.Context())})
}

// SaveMenus replaces both menus.
func (a *API) SaveMenus(c *gin.Context) {
	var payload content.Menus
	if !bindJSON(c, &payload, "invalid menu payload") {
		return
	}

	menus, err := a.menus.SaveMenus(c.Request.Context(), payload)
	if err != nil {
		respondServiceError(c, err, "failed to save menus")
		return
	}
	c.JSON(http.StatusOK, gin.H{"menus": menus})
}

// GetSettings 返回完整的站点配置（包括集成设置）。
func (a *API) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"settings": a.settings.GetSettings(c.Request.Context())})
}

// SaveSettings 保存站点配置。
func (a *API) SaveSettings(c *gin.Context) {
	var payload content.Settings
	if !bindJSON(c, &payload, "invalid settings payload") {
		return
	}

	settings, err := a.settings.SaveSettings(c.Request.Context(), payload)
	if err != nil {
		respondServiceError(c, err, "failed to save settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
