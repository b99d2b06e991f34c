package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stylencms/internal/media"
)

type mediaURLPayload struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ListMedia returns the media library newest first.
func (a *API) ListMedia(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": a.media.ListMedia(c.Request.Context())})
}

// UploadMedia 处理图片上传：校验大小与格式后以 data URL 形式入库。
func (a *API) UploadMedia(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "missing file field")
		return
	}
	if file.Size > int64(a.media.MaxBytes()) {
		respondServiceError(c, media.ErrTooLarge, "upload failed")
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "failed to read upload")
		return
	}
	defer src.Close()

	// one extra byte detects bodies larger than the declared size
	data, err := io.ReadAll(io.LimitReader(src, int64(a.media.MaxBytes())+1))
	if err != nil {
		respondError(c, http.StatusBadRequest, "failed to read upload")
		return
	}

	item, err := a.media.UploadMedia(c.Request.Context(), file.Filename, data)
	if err != nil {
		respondServiceError(c, err, "upload failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// AddMediaURL registers an external image link.
func (a *API) AddMediaURL(c *gin.Context) {
	var payload mediaURLPayload
	if !bindJSON(c, &payload, "invalid media payload") {
		return
	}

	item, err := a.media.AddMediaURL(c.Request.Context(), payload.Name, payload.URL)
	if err != nil {
		respondServiceError(c, err, "failed to add media")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// DeleteMedia removes a library item.
func (a *API) DeleteMedia(c *gin.Context) {
	if err := a.media.DeleteMedia(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "failed to delete media")
		return
	}
	c.Status(http.StatusNoContent)
}
