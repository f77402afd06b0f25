package controllers

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"realestate-backend/config"
	"realestate-backend/models"
	"realestate-backend/services"
	"realestate-backend/utils"

	"github.com/gin-gonic/gin"
)

var slugParamPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

type SearchController struct {
	SearchSvc *services.SearchService
	Cfg       *config.Config
}

func NewSearchController(svc *services.SearchService, cfg *config.Config) *SearchController {
	return &SearchController{SearchSvc: svc, Cfg: cfg}
}

// Search handles GET /api/properties/search. Every parameter is optional;
// unparseable numeric values are dropped rather than treated as zero.
func (c *SearchController) Search(ctx *gin.Context) {
	q := services.SearchQuery{
		Keyword: ctx.Query("keyword"),
		Sort:    ctx.Query("sort"),
	}

	if id := parseUintParam(ctx.Query("property_type")); id != 0 {
		q.PropertyTypeID = id
	}
	q.DistrictIDs = districtUnion(ctx)

	q.MinPrice = services.ParseDecimal(ctx.Query("min_price"))
	q.MaxPrice = services.ParseDecimal(ctx.Query("max_price"))
	q.MinBedrooms = services.ParseInt(ctx.Query("min_bedrooms"))
	q.MaxBedrooms = services.ParseInt(ctx.Query("max_bedrooms"))
	q.Bedrooms = services.ParseCountToken(ctx.Query("bedrooms"))
	q.MinBathrooms = services.ParseDecimal(ctx.Query("min_bathrooms"))
	q.Bathrooms = services.ParseCountToken(ctx.Query("bathrooms"))

	for _, tenure := range ctx.QueryArray("tenure") {
		if trimmed := strings.TrimSpace(tenure); trimmed != "" {
			q.Tenures = append(q.Tenures, trimmed)
		}
	}

	if page := services.ParseInt(ctx.Query("page")); page != nil {
		q.Page = *page
	}
	if perPage := services.ParseInt(ctx.Query("per_page")); perPage != nil {
		q.PerPage = *perPage
	}

	result, err := c.SearchSvc.Search(q)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Show handles GET /property/:slug, the public detail page payload.
func (c *SearchController) Show(ctx *gin.Context) {
	slugValue := ctx.Param("slug")
	if !slugParamPattern.MatchString(slugValue) {
		utils.JSONError(ctx, http.StatusNotFound, "not found")
		return
	}

	property, related, err := c.SearchSvc.GetBySlug(slugValue)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	utils.JSONSuccess(ctx, http.StatusOK, gin.H{
		"property": c.present(property),
		"related":  c.presentAll(related),
	})
}

// present decorates a property with the derived display fields the detail
// and card templates need.
func (c *SearchController) present(p *models.Property) gin.H {
	url := strings.TrimRight(c.Cfg.SiteURL, "/") + "/property/" + p.Slug
	return gin.H{
		"property":         p,
		"formatted_price":  c.Cfg.FormatPrice(p.Price, p.Currency),
		"full_address":     p.FullAddress(),
		"bathroom_display": p.BathroomDisplay(),
		"primary_photo":    p.PrimaryPhoto(),
		"photos":           p.PhotoList(),
		"has_virtual_tour": p.HasVirtualTour(),
		"has_video":        p.HasVideo(),
		"meta_title":       p.SEOTitle(),
		"meta_description": p.SEODescription(),
		"structured_data":  p.StructuredData(url),
	}
}

func (c *SearchController) presentAll(properties []models.Property) []gin.H {
	out := make([]gin.H, 0, len(properties))
	for i := range properties {
		out = append(out, c.present(&properties[i]))
	}
	return out
}

// districtUnion merges the legacy single district parameter with the
// multi-value districts parameter. Duplicates collapse; junk is ignored.
func districtUnion(ctx *gin.Context) []uint {
	seen := map[uint]bool{}
	var ids []uint

	add := func(raw string) {
		if id := parseUintParam(raw); id != 0 && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	add(ctx.Query("district"))
	for _, raw := range ctx.QueryArray("districts") {
		for _, part := range strings.Split(raw, ",") {
			add(part)
		}
	}
	return ids
}

func parseUintParam(raw string) uint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
