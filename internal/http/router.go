package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"tour-packages-backend/internal/cache"
	intconfig "tour-packages-backend/internal/config"
	h "tour-packages-backend/internal/http/handlers"
	"tour-packages-backend/internal/http/middleware"
	"tour-packages-backend/internal/repositories"
	"tour-packages-backend/internal/services"
)

// Deps holds the process-lifetime collaborators built in main: outbound
// notification transports and the optional stats cache.
type Deps struct {
	Notifier   services.Notifier
	StatsCache *cache.StatsCache
}

func NewRouter(env intconfig.Env, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	inquiries := h.InquiryHandlers{Notifier: deps.Notifier}
	packages := h.PackageHandlers{StatsCache: deps.StatsCache}
	destinations := h.DestinationHandlers{StatsCache: deps.StatsCache}
	auth := h.AuthHandlers{Users: repositories.UserRepository{}, Secret: []byte(env.JWTSecret)}
	admin := middleware.AdminRequired([]byte(env.JWTSecret))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		api.POST("/auth/login", auth.Login)

		pkg := api.Group("/packages")
		pkg.GET("", packages.List)
		pkg.GET("/featured", packages.Featured)
		pkg.GET("/:id", packages.Get)
		pkg.GET("/:id/brochure", packages.Brochure)
		pkg.POST("", admin, packages.Create)
		pkg.PUT("/:id", admin, packages.Update)
		pkg.DELETE("/:id", admin, packages.Delete)

		dest := api.Group("/destinations")
		dest.GET("", destinations.List)
		dest.GET("/:destination/packages", destinations.Packages)
		dest.GET("/:destination/stats", destinations.Stats)

		inq := api.Group("/inquiries")
		inq.POST("", inquiries.Create)
		inq.GET("", admin, inquiries.List)
		inq.GET("/:id", admin, inquiries.Get)
		inq.PUT("/:id/status", admin, inquiries.UpdateStatus)
		inq.DELETE("/:id", admin, inquiries.Delete)
	}

	h.SetRouter(r)
	return r
}
