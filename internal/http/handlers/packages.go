package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tour-packages-backend/internal/cache"
	"tour-packages-backend/internal/domain"
	"tour-packages-backend/internal/domain/models"
	"tour-packages-backend/internal/http/middleware"
	"tour-packages-backend/internal/repositories"
	"tour-packages-backend/internal/services"
)

// PackageHandlers serves the public catalog plus the admin CRUD surface.
type PackageHandlers struct {
	StatsCache *cache.StatsCache
}

type packagePayload struct {
	Title       string   `json:"title" binding:"required"`
	Destination string   `json:"destination" binding:"required"`
	Price       float64  `json:"price"`
	Duration    string   `json:"duration"`
	Images      []string `json:"images"`
	Featured    bool     `json:"featured"`
}

func (h PackageHandlers) service(c *gin.Context) services.PackageService {
	return services.PackageService{
		PackageRepo: repositories.PackageRepository{},
		StatsCache:  h.StatsCache,
		RequestID:   middleware.GetRequestID(c),
	}
}

// GET /api/packages?destination=&minPrice=&maxPrice=&duration=&featured=
func (h PackageHandlers) List(c *gin.Context) {
	filter := repositories.PackageFilter{
		Destination: strings.TrimSpace(c.Query("destination")),
		Duration:    strings.TrimSpace(c.Query("duration")),
		MinPrice:    queryFloat(c, "minPrice"),
		MaxPrice:    queryFloat(c, "maxPrice"),
	}
	if raw := strings.TrimSpace(c.Query("featured")); raw != "" {
		featured := raw == "true" || raw == "1"
		filter.Featured = &featured
	}

	packages, err := repositories.PackageRepository{}.List(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

// GET /api/packages/featured
func (h PackageHandlers) Featured(c *gin.Context) {
	featured := true
	packages, err := repositories.PackageRepository{}.List(repositories.PackageFilter{Featured: &featured})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

// GET /api/packages/:id
func (h PackageHandlers) Get(c *gin.Context) {
	id := ParseIDOrZero(c, "id")
	pkg, err := repositories.PackageRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// GET /api/packages/:id/brochure
func (h PackageHandlers) Brochure(c *gin.Context) {
	id := ParseIDOrZero(c, "id")
	svc := services.DocsService{
		PackageRepo: repositories.PackageRepository{},
		RequestID:   middleware.GetRequestID(c),
	}

	pdf, filename, err := svc.GenerateBrochure(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// POST /api/packages (admin)
func (h PackageHandlers) Create(c *gin.Context) {
	var req packagePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Price < 0 {
		RespondDomainError(c, domain.ValidationError{Field: "price", Msg: "must not be negative"})
		return
	}

	pkg, err := h.service(c).Create(c.Request.Context(), models.TourPackage{
		Title:       req.Title,
		Destination: req.Destination,
		Price:       req.Price,
		Duration:    req.Duration,
		Images:      req.Images,
		Featured:    req.Featured,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

// PUT /api/packages/:id (admin)
func (h PackageHandlers) Update(c *gin.Context) {
	id := ParseIDOrZero(c, "id")

	var req packagePayload
	if !BindJSONOrError(c, &req) {
		return
	}

	pkg, err := h.service(c).Update(c.Request.Context(), id, models.TourPackage{
		Title:       req.Title,
		Destination: req.Destination,
		Price:       req.Price,
		Duration:    req.Duration,
		Images:      req.Images,
		Featured:    req.Featured,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// DELETE /api/packages/:id (admin)
func (h PackageHandlers) Delete(c *gin.Context) {
	id := ParseIDOrZero(c, "id")
	if err := h.service(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "package deleted successfully"})
}
