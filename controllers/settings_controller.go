package controllers

import (
	"net/http"

	"realestate-backend/config"
	"realestate-backend/utils"

	"github.com/gin-gonic/gin"
)

// SettingsController exposes the effective plugin configuration to the admin
// UI. Options are environment-driven, so this surface is read-only.
type SettingsController struct {
	Cfg *config.Config
}

func NewSettingsController(cfg *config.Config) *SettingsController {
	return &SettingsController{Cfg: cfg}
}

// Show handles GET /api/admin/config.
func (c *SettingsController) Show(ctx *gin.Context) {
	currencies := make(map[string]gin.H, len(c.Cfg.Currency.Supported))
	for code, info := range c.Cfg.Currency.Supported {
		currencies[code] = gin.H{"symbol": info.Symbol, "name": info.Name}
	}

	utils.JSONSuccess(ctx, http.StatusOK, gin.H{
		"search": gin.H{
			"default_per_page":  c.Cfg.Search.DefaultPerPage,
			"max_per_page":      c.Cfg.Search.MaxPerPage,
			"searchable_fields": c.Cfg.Search.SearchableFields,
			"default_sort":      c.Cfg.Search.DefaultSort,
		},
		"properties": gin.H{
			"required_fields":      c.Cfg.Properties.RequiredFields,
			"enable_tenure":        c.Cfg.Properties.EnableTenure,
			"enable_agent_fields":  c.Cfg.Properties.EnableAgentFields,
			"enable_seo_fields":    c.Cfg.Properties.EnableSEOFields,
			"enable_coordinates":   c.Cfg.Properties.EnableCoordinates,
			"enable_virtual_tours": c.Cfg.Properties.EnableVirtualTours,
			"images": gin.H{
				"path":               c.Cfg.Properties.Images.Path,
				"max_size_kb":        c.Cfg.Properties.Images.MaxSizeKB,
				"allowed_extensions": c.Cfg.Properties.Images.AllowedExtensions,
			},
		},
		"currency": gin.H{
			"default":             c.Cfg.Currency.Default,
			"supported":           currencies,
			"decimals":            c.Cfg.Currency.Decimals,
			"decimal_separator":   c.Cfg.Currency.DecimalSeparator,
			"thousands_separator": c.Cfg.Currency.ThousandsSeparator,
		},
	})
}
