package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/befound-studio/studio-backend/internal/content/domain"
	"github.com/befound-studio/studio-backend/internal/content/service"
)

type Handler struct {
	svc *service.ContentService
}

func New(svc *service.ContentService) *Handler { return &Handler{svc: svc} }

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/projects", h.list)
	rg.GET("/projects/featured", h.featured)
	rg.GET("/projects/:slug", h.get)
	rg.GET("/tags", h.tags)
}

func (h *Handler) list(c *gin.Context) {
	tag := c.Query("tag")

	if typeParam := c.Query("type"); typeParam != "" {
		projects, err := h.svc.ListByType(c.Request.Context(), domain.ProjectType(typeParam))
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects})
		return
	}

	projects, err := h.svc.List(c.Request.Context(), tag)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects})
}

func (h *Handler) featured(c *gin.Context) {
	projects, err := h.svc.Featured(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects})
}

func (h *Handler) get(c *gin.Context) {
	slug := c.Param("slug")

	project, err := h.svc.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": project})
}

func (h *Handler) tags(c *gin.Context) {
	tags, err := h.svc.Tags(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "tags": tags})
}

// fail maps content errors onto the upstream-gateway responses the front-end
// expects: unknown variants mean the store handed back a record we cannot
// represent, anything else is a fetch failure.
func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrUnknownVariant) {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "content store unavailable"})
}
