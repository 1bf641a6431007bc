package handler

import (
	"fmt"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"skillio/internal/domain/service"
	"skillio/pkg/errors"
	"skillio/pkg/logger"
	"skillio/pkg/response"
)

// FileHandler uploads portfolio and service images. The store is nil when no bucket is configured.
type FileHandler struct {
	images      service.ImageStore
	maxFileSize int64
}

func NewFileHandler(images service.ImageStore) *FileHandler {
	return &FileHandler{
		images:      images,
		maxFileSize: 5 * 1024 * 1024,
	}
}

func (h *FileHandler) UploadImage(c echo.Context) error {
	if h.images == nil {
		return response.Error(c, errors.Unavailable("Image uploads are not configured", nil))
	}

	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	logger.Debug("Received file: %s, size: %d bytes, type: %s", file.Filename, file.Size, file.Header.Get("Content-Type"))

	if file.Size > h.maxFileSize {
		logger.Warn("File too large: %d bytes (max: %d)", file.Size, h.maxFileSize)
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	fileType := file.Header.Get("Content-Type")
	if !isAllowedImageType(fileType) {
		return response.Error(c, errors.BadRequest("File type not supported", nil))
	}

	folder := sanitizeFolderName(c.FormValue("folder"))
	if uid := getUserIDFromContext(c); uid != "" {
		folder = folder + "/" + sanitizeFolderName(uid)
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	url, err := h.images.UploadImage(c.Request().Context(), src, fileType, folder)
	if err != nil {
		logger.Error("Error from storage client: %v", err)
		return response.Error(c, errors.Internal("Failed to upload file", err))
	}

	return response.Created(c, map[string]interface{}{
		"url":         url,
		"contentType": fileType,
		"size":        file.Size,
	})
}

func isAllowedImageType(fileType string) bool {
	switch fileType {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}

func sanitizeFolderName(folder string) string {
	folder = filepath.Base(folder)

	validChars := []rune{}
	for _, char := range folder {
		if (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9') || char == '-' || char == '_' {
			validChars = append(validChars, char)
		}
	}

	sanitized := string(validChars)
	if sanitized == "" {
		return "uploads"
	}
	return sanitized
}
