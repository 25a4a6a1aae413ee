package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"tubtime/services/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxPhotoSizeBytes matches the booking form's 10MB limit.
const maxPhotoSizeBytes = 10 << 20

// StorageHandler serves customer photo uploads.
type StorageHandler struct {
	Storage storage.StorageService
	Logger  *zap.Logger
}

func NewStorageHandler(svc storage.StorageService, logger *zap.Logger) *StorageHandler {
	return &StorageHandler{Storage: svc, Logger: logger}
}

// UploadPhoto handles POST /api/uploads/photo (multipart field "photo").
func (h *StorageHandler) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing photo file", "field": "photo"})
		return
	}
	if file.Size > maxPhotoSizeBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file must be smaller than 10MB", "field": "photo"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "only JPG and PNG images are accepted", "field": "photo"})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+ext)
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		h.Logger.Error("failed to stage uploaded photo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer os.Remove(tmpPath)

	url, err := h.Storage.UploadPhoto(c.Request.Context(), tmpPath, "appointment-photos")
	if err != nil {
		h.Logger.Error("photo upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photoUrl": url})
}
