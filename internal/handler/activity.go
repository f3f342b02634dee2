package handler

import (
	"context"
	"net/http"
	"strconv"

	"mining-map-api/internal/models"
	"mining-map-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ActivityService is the audit logic used by ActivityHandler.
type ActivityService interface {
	Log(ctx context.Context, in models.NewActivity) (*models.ActivityLog, error)
	List(ctx context.Context, limit int) ([]models.ActivityLog, error)
}

// ActivityHandler serves the audit trail.
type ActivityHandler struct {
	service ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(svc ActivityService) *ActivityHandler {
	return &ActivityHandler{service: svc}
}

// Log handles POST /activity/log. Logging never fails the caller: errors
// come back as {"status": "failed"} with 200.
func (h *ActivityHandler) Log(c *gin.Context) {
	var in models.NewActivity
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id, username and action are required"})
		return
	}

	if _, err := h.service.Log(c.Request.Context(), in); err != nil {
		log.Warn().Err(err).Str("action", in.Action).Msg("activity logging failed")
		c.JSON(http.StatusOK, gin.H{"status": "failed", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged"})
}

// List handles GET /activity/logs?limit=N
func (h *ActivityHandler) List(c *gin.Context) {
	limit := service.DefaultActivityLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	logs, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
