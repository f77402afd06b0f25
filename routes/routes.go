package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"realestate-backend/controllers"
	"realestate-backend/middleware"
	"realestate-backend/models"
	"realestate-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Handlers bundles the controller instances SetupRouter mounts.
type Handlers struct {
	Auth     *controllers.AuthController
	Search   *controllers.SearchController
	Blocks   *controllers.BlockController
	Props    *controllers.PropertyController
	Types    *controllers.ReferenceController[models.PropertyType]
	Dists    *controllers.ReferenceController[models.District]
	Amens    *controllers.ReferenceController[models.Amenity]
	Feats    *controllers.ReferenceController[models.Feature]
	Settings *controllers.SettingsController

	AuthSvc *services.AuthService
}

func SetupRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public detail page.
	r.GET("/property/:slug", h.Search.Show)

	api := r.Group("/api")
	{
		api.POST("/auth/login", h.Auth.Login)

		api.GET("/properties/search", h.Search.Search)

		// Active, ordered select options for the search forms.
		api.GET("/property-types", h.Types.Options)
		api.GET("/districts", h.Dists.Options)
		api.GET("/amenities", h.Amens.Options)
		api.GET("/features", h.Feats.Options)

		blocks := api.Group("/blocks")
		{
			blocks.GET("/property-listings", h.Blocks.PropertyListings)
			blocks.GET("/featured-property", h.Blocks.FeaturedProperty)
		}

		admin := api.Group("/admin", middleware.RequireAdmin(h.AuthSvc))
		{
			admin.GET("/config", h.Settings.Show)

			properties := admin.Group("/properties")
			{
				properties.GET("", h.Props.List)
				properties.POST("", h.Props.Create)
				properties.GET("/:id", h.Props.Get)
				properties.PUT("/:id", h.Props.Update)
				properties.DELETE("/:id", h.Props.Delete)
				properties.POST("/:id/restore", h.Props.Restore)
				properties.POST("/:id/photos", h.Props.AddPhoto)
				properties.DELETE("/:id/photos", h.Props.RemovePhoto)

				properties.POST("/bulk/publish", h.Props.BulkPublish)
				properties.POST("/bulk/unpublish", h.Props.BulkUnpublish)
				properties.POST("/bulk/delete", h.Props.BulkDelete)
				properties.POST("/bulk/restore", h.Props.BulkRestore)
			}

			h.Types.RegisterAdmin(admin.Group("/property-types"))
			h.Dists.RegisterAdmin(admin.Group("/districts"))
			h.Amens.RegisterAdmin(admin.Group("/amenities"))
			h.Feats.RegisterAdmin(admin.Group("/features"))
		}
	}

	return r
}
