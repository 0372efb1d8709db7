package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/starkdipesh/portfolio-api/internal/config"
	"github.com/starkdipesh/portfolio-api/internal/storage"
	"github.com/starkdipesh/portfolio-api/pkg/logger"
	"github.com/starkdipesh/portfolio-api/pkg/middleware"
)

// UploadsHandler stores portfolio media (certification badges, project
// screenshots, company logos) in object storage and hands back a presigned
// URL for use in the image/logo fields of the content resources.
type UploadsHandler struct {
	cfg   *config.Config
	media *storage.MediaStore
}

func NewUploadsHandler(cfg *config.Config, media *storage.MediaStore) *UploadsHandler {
	return &UploadsHandler{cfg: cfg, media: media}
}

func (h *UploadsHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/uploads", middleware.RequireAdmin(h.cfg), h.Upload)
}

func (h *UploadsHandler) Upload(c *gin.Context) {
	if h.media == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media storage not configured"})
		return
	}
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}
	defer file.Close()

	key := fmt.Sprintf("uploads/%d_%s", time.Now().UnixNano(), filepath.Base(header.Filename))
	contentType := header.Header.Get("Content-Type")
	if err := h.media.Upload(c.Request.Context(), key, file, header.Size, contentType); err != nil {
		logger.Errorf("media upload failed (%s): %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	url, err := h.media.PresignedURL(c.Request.Context(), key, 7*24*time.Hour)
	if err != nil {
		logger.Errorf("presign failed (%s): %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create URL"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "url": url})
}
