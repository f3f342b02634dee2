package handler

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"mining-map-api/internal/models"
	"mining-map-api/internal/service"
	"mining-map-api/internal/storage"

	"github.com/gin-gonic/gin"
)

// FileService is the dossier logic used by FileHandler.
type FileService interface {
	Upload(ctx context.Context, licenseID string, up service.Upload) (*models.LicenseFile, error)
	List(ctx context.Context, licenseID string) ([]models.LicenseFile, error)
	Delete(ctx context.Context, id string) error
	Open(ctx context.Context, name string) (*storage.Object, error)
}

// FileHandler serves dossier uploads and downloads.
type FileHandler struct {
	service FileService
}

// NewFileHandler creates a new file handler
func NewFileHandler(svc FileService) *FileHandler {
	return &FileHandler{service: svc}
}

// Upload handles POST /licenses/{id}/files
func (h *FileHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing multipart field 'file'"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	file, err := h.service.Upload(c.Request.Context(), c.Param("id"), service.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if errors.Is(err, service.ErrNotFound) {
		c.String(http.StatusNotFound, "License not found")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": file.ID, "filename": file.Filename, "url": file.URL})
}

// List handles GET /licenses/{id}/files
func (h *FileHandler) List(c *gin.Context) {
	files, err := h.service.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}

// Delete handles DELETE /files/:id
func (h *FileHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Serve handles GET /files/*name
func (h *FileHandler) Serve(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("name"), "/")
	if name == "" || strings.Contains(name, "/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	obj, err := h.service.Open(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	defer obj.Close()

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("X-Content-Type-Options", "nosniff")
	// Only raster images render inline.
	if !strings.HasPrefix(contentType, "image/") || strings.HasPrefix(contentType, "image/svg") {
		c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	}
	if obj.Size >= 0 {
		c.Header("Content-Length", strconv.FormatInt(obj.Size, 10))
	}
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, obj)
}
