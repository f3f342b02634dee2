package handler

import (
	"context"
	"errors"
	"net/http"

	"mining-map-api/internal/models"
	"mining-map-api/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthService is the account logic used by AuthHandler.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)
	Register(ctx context.Context, in models.NewUser) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, in models.UserUpdate) (bool, error)
	DeleteUser(ctx context.Context, id string) error
}

// AuthHandler serves login and user management.
type AuthHandler struct {
	service AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	session, err := h.service.Login(c.Request.Context(), creds)
	if errors.Is(err, service.ErrInvalidCredentials) {
		c.String(http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in models.NewUser
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	u, err := h.service.Register(c.Request.Context(), in)
	if errors.Is(err, service.ErrConflict) {
		c.String(http.StatusBadRequest, "Username already taken")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "username": u.Username, "role": u.Role})
}

// ListUsers handles GET /auth/users
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUser handles PUT /auth/users/:id
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	var in models.UserUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	changed, err := h.service.UpdateUser(c.Request.Context(), c.Param("id"), in)
	if errors.Is(err, service.ErrNotFound) {
		c.String(http.StatusNotFound, "User not found")
		return
	}
	if errors.Is(err, service.ErrConflict) {
		c.String(http.StatusBadRequest, "Username already taken")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if !changed {
		c.JSON(http.StatusOK, gin.H{"status": "no changes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteUser handles DELETE /auth/users/:id
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	err := h.service.DeleteUser(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		c.String(http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
