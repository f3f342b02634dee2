package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"mining-map-api/internal/models"
	"mining-map-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// DefaultMaxImportSize caps the CSV accepted by POST /licenses/import.
const DefaultMaxImportSize = 32 << 20

const importFailed = "import failed"

// LicenseService is the license logic used by LicenseHandler.
type LicenseService interface {
	List(ctx context.Context) ([]models.License, error)
	Create(ctx context.Context, in models.LicenseInput) (*models.License, error)
	Delete(ctx context.Context, id string) error
	BatchDelete(ctx context.Context, ids []string) (int64, error)
	Export(ctx context.Context, w io.Writer) error
	WriteTemplate(w io.Writer) error
	Import(ctx context.Context, data []byte) (*service.ImportResult, error)
}

// LicenseHandler serves the license collection.
type LicenseHandler struct {
	service       LicenseService
	maxImportSize int64
}

// NewLicenseHandler creates a new license handler
func NewLicenseHandler(svc LicenseService) *LicenseHandler {
	return &LicenseHandler{service: svc, maxImportSize: DefaultMaxImportSize}
}

// List handles GET /licenses
func (h *LicenseHandler) List(c *gin.Context) {
	licenses, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, licenses)
}

// Create handles POST /licenses
func (h *LicenseHandler) Create(c *gin.Context) {
	var in models.LicenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company and country are required"})
		return
	}

	l, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// Delete handles DELETE /licenses/{id}. The id may contain slashes.
func (h *LicenseHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.service.Delete(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "License " + id + " not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "deleted_id": id})
}

// BatchDelete handles POST /licenses/batch-delete
func (h *LicenseHandler) BatchDelete(c *gin.Context) {
	var req models.BatchDelete
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be {\"ids\": [...]}"})
		return
	}

	n, err := h.service.BatchDelete(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "deleted_count": n})
}

// Export handles GET /licenses/export
func (h *LicenseHandler) Export(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=licenses_export.csv")

	if err := h.service.Export(c.Request.Context(), c.Writer); err != nil {
		if !c.Writer.Written() {
			c.Header("Content-Disposition", "")
			c.Header("Content-Type", "")
			respondError(c, err)
			return
		}
		_ = c.Error(err)
	}
}

// Template handles GET /licenses/template
func (h *LicenseHandler) Template(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=import_template.csv")

	if err := h.service.WriteTemplate(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

// Import handles POST /licenses/import. Failures are reported in the body
// with status 200, matching what the map frontend expects.
func (h *LicenseHandler) Import(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing multipart field 'file'"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": err.Error()})
		return
	}
	defer f.Close()

	// One byte past the limit tells a full read from a truncated one.
	data, err := io.ReadAll(io.LimitReader(f, h.maxImportSize+1))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if int64(len(data)) > h.maxImportSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"status": "error", "message": "file too large"})
		return
	}

	res, err := h.service.Import(c.Request.Context(), data)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "No valid rows found or file is empty"})
		return
	case err != nil:
		log.Error().Err(err).Int("bytes", len(data)).Msg("license import failed")
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": importFailed})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"imported_count": res.Imported,
		"skipped_count":  res.Skipped,
	})
}
