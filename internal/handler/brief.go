package handler

import (
	"context"
	"net/http"

	"mining-map-api/internal/models"

	"github.com/gin-gonic/gin"
)

// BriefService is the summary logic used by BriefHandler.
type BriefService interface {
	Brief(ctx context.Context, id string) (*models.Brief, error)
}

// BriefHandler serves generated license briefs.
type BriefHandler struct {
	service BriefService
}

// NewBriefHandler creates a new brief handler
func NewBriefHandler(svc BriefService) *BriefHandler {
	return &BriefHandler{service: svc}
}

// Brief handles POST /licenses/{id}/brief
func (h *BriefHandler) Brief(c *gin.Context) {
	brief, err := h.service.Brief(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, brief)
}
