package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tour-packages-backend/internal/cache"
	"tour-packages-backend/internal/http/middleware"
	"tour-packages-backend/internal/repositories"
	"tour-packages-backend/internal/services"
)

// DestinationHandlers serves the read-only destination facade.
type DestinationHandlers struct {
	StatsCache *cache.StatsCache
}

func (h DestinationHandlers) service(c *gin.Context) services.DestinationService {
	return services.DestinationService{
		PackageRepo: repositories.PackageRepository{},
		StatsCache:  h.StatsCache,
		RequestID:   middleware.GetRequestID(c),
	}
}

// GET /api/destinations
func (h DestinationHandlers) List(c *gin.Context) {
	destinations, err := h.service(c).ListDestinations()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, destinations)
}

// GET /api/destinations/:destination/packages?minPrice=&maxPrice=&duration=
func (h DestinationHandlers) Packages(c *gin.Context) {
	filter := repositories.PackageFilter{
		Duration: strings.TrimSpace(c.Query("duration")),
		MinPrice: queryFloat(c, "minPrice"),
		MaxPrice: queryFloat(c, "maxPrice"),
	}

	packages, err := h.service(c).PackagesByDestination(c.Param("destination"), filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

// GET /api/destinations/:destination/stats
func (h DestinationHandlers) Stats(c *gin.Context) {
	stats, err := h.service(c).Stats(c.Request.Context(), c.Param("destination"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
