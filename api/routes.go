package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/vehiclerental/internal/repository"
	"github.com/Domenick1991/vehiclerental/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service catalog.RouteUseCase
}

func NewCatalogHandler(service catalog.RouteUseCase) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/routes", h.listRoutes)
	router.GET("/routes/:name", h.getRoute)
	router.GET("/vehicle-types", h.vehicleTypes)
}

func (h *CatalogHandler) listRoutes(c *gin.Context) {
	routes, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, routes)
}

func (h *CatalogHandler) getRoute(c *gin.Context) {
	route, err := h.service.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *CatalogHandler) vehicleTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.VehicleTypes())
}
