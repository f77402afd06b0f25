package controllers

import (
	"net/http"

	"realestate-backend/config"
	"realestate-backend/services"
	"realestate-backend/utils"

	"github.com/gin-gonic/gin"
)

// BlockController serves the embeddable content blocks: the curated listings
// grid and the featured-property spotlight.
type BlockController struct {
	SearchSvc *services.SearchService
	Cfg       *config.Config
}

func NewBlockController(svc *services.SearchService, cfg *config.Config) *BlockController {
	return &BlockController{SearchSvc: svc, Cfg: cfg}
}

// PropertyListings handles GET /api/blocks/property-listings.
func (c *BlockController) PropertyListings(ctx *gin.Context) {
	q := services.BlockQuery{
		DisplayType: ctx.Query("display_type"),
		Sort:        ctx.Query("sort"),
	}
	q.PropertyTypeID = parseUintParam(ctx.Query("property_type"))
	q.MinPrice = services.ParseDecimal(ctx.Query("min_price"))
	q.MaxPrice = services.ParseDecimal(ctx.Query("max_price"))
	if limit := services.ParseInt(ctx.Query("limit")); limit != nil {
		q.Limit = *limit
	}

	properties, err := c.SearchSvc.ListingsBlock(q)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, properties)
}

// FeaturedProperty handles GET /api/blocks/featured-property. An explicit
// property_id pins the spotlight; otherwise the latest featured listing wins.
func (c *BlockController) FeaturedProperty(ctx *gin.Context) {
	property, err := c.SearchSvc.FeaturedProperty(parseUintParam(ctx.Query("property_id")))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, gin.H{
		"property":         property,
		"formatted_price":  c.Cfg.FormatPrice(property.Price, property.Currency),
		"full_address":     property.FullAddress(),
		"bathroom_display": property.BathroomDisplay(),
		"primary_photo":    property.PrimaryPhoto(),
	})
}
