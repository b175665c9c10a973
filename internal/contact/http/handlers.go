package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/befound-studio/studio-backend/internal/contact/domain"
	"github.com/befound-studio/studio-backend/internal/contact/service"
)

type Handler struct {
	svc *service.ContactService
}

func New(svc *service.ContactService) *Handler { return &Handler{svc: svc} }

// Register wires the contact endpoint. The explicit OPTIONS route keeps the
// 200-no-body preflight contract even for requests the CORS layer passes
// through (no Origin header).
func (h *Handler) Register(r gin.IRouter, extraMiddleware ...gin.HandlerFunc) {
	handlers := make([]gin.HandlerFunc, 0, len(extraMiddleware)+1)
	handlers = append(handlers, extraMiddleware...)
	handlers = append(handlers, h.submit)
	r.POST("/api/contact", handlers...)
	r.OPTIONS("/api/contact", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

func (h *Handler) submit(c *gin.Context) {
	var sub domain.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Missing required fields: name, email, services, and message are required",
		})
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), sub)
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Missing required fields: name, email, services, and message are required",
				"errors":  verrs,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error sending email. Please try again later.",
			"success": false,
		})
		return
	}

	if !result.Success {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": result.Message,
			"error":   result.Diagnostic,
			"success": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": result.Message,
		"success": true,
	})
}
