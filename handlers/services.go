package handlers

import (
	"net/http"

	catalogRepo "strikersyard/database/repository/catalog"

	"github.com/gin-gonic/gin"
)

// ServicesHandler exposes the public service list.
type ServicesHandler struct {
	Repo catalogRepo.CatalogRepository
}

// NewServicesHandler constructs a ServicesHandler.
func NewServicesHandler(repo catalogRepo.CatalogRepository) *ServicesHandler {
	return &ServicesHandler{Repo: repo}
}

// ListServices handles GET /api/services.
func (h *ServicesHandler) ListServices(c *gin.Context) {
	services, err := h.Repo.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}
