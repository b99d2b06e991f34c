package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stylencms/internal/media"
	"github.com/stylencms/internal/service"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// respondServiceError maps service errors onto status codes. Anything not
// recognised is logged and reported as a 500.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrPageNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrMediaNotFound),
		errors.Is(err, service.ErrLeadNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSlugTaken):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrSlugMissing),
		errors.Is(err, service.ErrSlugReserved),
		errors.Is(err, service.ErrInvalidTemplate),
		errors.Is(err, service.ErrProductNameMissing),
		errors.Is(err, service.ErrMenuUnknown),
		errors.Is(err, service.ErrWebhookInvalid),
		errors.Is(err, service.ErrLeadInvalid),
		errors.Is(err, media.ErrEmpty),
		errors.Is(err, media.ErrNotImage),
		errors.Is(err, media.ErrInvalidURL):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, media.ErrTooLarge):
		respondError(c, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, service.ErrSyncDisabled):
		respondError(c, http.StatusPreconditionFailed, err.Error())
	default:
		slog.ErrorContext(c.Request.Context(), fallback, "path", c.FullPath(), "err", err)
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
