package handler

import (
	"net/http"
	"strings"

	"mining-map-api/internal/models"

	"github.com/gin-gonic/gin"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Licenses *LicenseHandler
	Files    *FileHandler
	Auth     *AuthHandler
	Activity *ActivityHandler
	Briefs   *BriefHandler
}

// Guards holds the middleware placed in front of protected routes. Nil
// entries leave the routes open.
type Guards struct {
	Admin  gin.HandlerFunc
	Member gin.HandlerFunc
}

// NewGuards builds the guards. With enforce off every route is open.
func NewGuards(v TokenVerifier, enforce bool) Guards {
	if !enforce {
		return Guards{}
	}
	return Guards{
		Admin:  Authenticate(v, models.RoleAdmin),
		Member: Authenticate(v),
	}
}

func chain(guard gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	if guard == nil {
		return []gin.HandlerFunc{h}
	}
	return []gin.HandlerFunc{guard, h}
}

// Register mounts every API route on r.
//
// License ids may contain '/', so everything below /licenses/ goes through a
// catch-all and is dispatched by suffix.
func Register(r gin.IRouter, h Handlers, g Guards) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	authGroup.POST("/login", h.Auth.Login)
	authGroup.POST("/register", chain(g.Admin, h.Auth.Register)...)
	authGroup.GET("/users", chain(g.Admin, h.Auth.ListUsers)...)
	authGroup.PUT("/users/:id", chain(g.Admin, h.Auth.UpdateUser)...)
	authGroup.DELETE("/users/:id", chain(g.Admin, h.Auth.DeleteUser)...)

	r.POST("/activity/log", h.Activity.Log)
	r.GET("/activity/logs", chain(g.Admin, h.Activity.List)...)

	r.GET("/licenses", h.Licenses.List)
	r.POST("/licenses", chain(g.Member, h.Licenses.Create)...)
	r.GET("/licenses/*path", h.getLicensePath)
	r.POST("/licenses/*path", chain(g.Member, h.postLicensePath)...)
	r.DELETE("/licenses/*path", chain(g.Member, h.deleteLicensePath)...)

	r.GET("/files/*name", h.Files.Serve)
	r.DELETE("/files/:id", chain(g.Member, h.Files.Delete)...)
}

func (h Handlers) getLicensePath(c *gin.Context) {
	p := licensePath(c)
	switch {
	case p == "export":
		h.Licenses.Export(c)
	case p == "template":
		h.Licenses.Template(c)
	case withID(c, p, "/files"):
		h.Files.List(c)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	}
}

func (h Handlers) postLicensePath(c *gin.Context) {
	p := licensePath(c)
	switch {
	case p == "import":
		h.Licenses.Import(c)
	case p == "batch-delete":
		h.Licenses.BatchDelete(c)
	case withID(c, p, "/files"):
		h.Files.Upload(c)
	case withID(c, p, "/brief"):
		h.Briefs.Brief(c)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	}
}

func (h Handlers) deleteLicensePath(c *gin.Context) {
	if !withID(c, licensePath(c), "") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	h.Licenses.Delete(c)
}

func licensePath(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("path"), "/")
}

// withID strips suffix from p and, when a non-empty id remains, exposes it
// as the "id" route parameter.
func withID(c *gin.Context, p, suffix string) bool {
	if !strings.HasSuffix(p, suffix) {
		return false
	}
	id := strings.TrimSuffix(p, suffix)
	if id == "" {
		return false
	}
	c.Params = append(c.Params, gin.Param{Key: "id", Value: id})
	return true
}
