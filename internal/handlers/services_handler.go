package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quochuydev/pet-app/internal/httperr"
	"github.com/quochuydev/pet-app/internal/services"
)

type ServicesHandler struct{}

func NewServicesHandler() *ServicesHandler {
	return &ServicesHandler{}
}

func (h *ServicesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"services": services.All(),
	})
}

func (h *ServicesHandler) Get(c *gin.Context) {
	slug := c.Param("slug")

	svc, ok := services.BySlug(slug)
	if !ok {
		httperr.NotFound(c, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"service": svc,
	})
}
