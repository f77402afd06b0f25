package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"realestate-backend/services"
	"realestate-backend/utils"

	"github.com/gin-gonic/gin"
)

// PropertyController is the admin write surface for listings.
type PropertyController struct {
	PropSvc  *services.PropertyService
	ImageSvc *services.ImageService
}

func NewPropertyController(propSvc *services.PropertyService, imageSvc *services.ImageService) *PropertyController {
	return &PropertyController{PropSvc: propSvc, ImageSvc: imageSvc}
}

// List handles GET /api/admin/properties with the admin table filters.
func (c *PropertyController) List(ctx *gin.Context) {
	q := services.AdminListQuery{
		Status:  ctx.Query("status"),
		Keyword: ctx.Query("keyword"),
		Trashed: ctx.Query("trashed") == "true",
	}
	if raw := ctx.Query("published"); raw != "" {
		if published, err := strconv.ParseBool(raw); err == nil {
			q.Published = &published
		}
	}
	if page := services.ParseInt(ctx.Query("page")); page != nil {
		q.Page = *page
	}
	if perPage := services.ParseInt(ctx.Query("per_page")); perPage != nil {
		q.PerPage = *perPage
	}

	properties, total, err := c.PropSvc.List(q)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, gin.H{
		"properties": properties,
		"total":      total,
	})
}

func (c *PropertyController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	property, err := c.PropSvc.Get(id, true)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, property)
}

func (c *PropertyController) Create(ctx *gin.Context) {
	var input services.PropertyInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	property, err := c.PropSvc.Create(input)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusCreated, property)
}

func (c *PropertyController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var input services.PropertyInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	property, err := c.PropSvc.Update(id, input)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, property)
}

func (c *PropertyController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.PropSvc.Delete(id); err != nil {
		respondErr(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, gin.H{"deleted": id})
}

func (c *PropertyController) Restore(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.PropSvc.Restore(id); err != nil {
		respondErr(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, gin.H{"restored": id})
}

func (c *PropertyController) BulkPublish(ctx *gin.Context) {
	ids, ok := bindIDList(ctx)
	if !ok {
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, c.PropSvc.BulkSetPublished(ids, true))
}

func (c *PropertyController) BulkUnpublish(ctx *gin.Context) {
	ids, ok := bindIDList(ctx)
	if !ok {
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, c.PropSvc.BulkSetPublished(ids, false))
}

func (c *PropertyController) BulkDelete(ctx *gin.Context) {
	ids, ok := bindIDList(ctx)
	if !ok {
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, c.PropSvc.BulkDelete(ids))
}

func (c *PropertyController) BulkRestore(ctx *gin.Context) {
	ids, ok := bindIDList(ctx)
	if !ok {
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, c.PropSvc.BulkRestore(ids))
}

type photoUploadRequest struct {
	// Photo is either a base64 payload (optionally a data URL) to store, or
	// an already-hosted URL to attach as-is.
	Photo string `json:"photo" binding:"required"`
}

// AddPhoto handles POST /api/admin/properties/:id/photos.
func (c *PropertyController) AddPhoto(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req photoUploadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "photo is required")
		return
	}

	ref := strings.TrimSpace(req.Photo)
	if !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://") {
		stored, err := c.ImageSvc.SavePropertyPhoto(ref)
		if err != nil {
			respondErr(ctx, err)
			return
		}
		ref = stored
	}

	property, err := c.PropSvc.AddPhoto(id, ref)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, property)
}

// RemovePhoto handles DELETE /api/admin/properties/:id/photos. The stored
// file is removed after the reference is detached.
func (c *PropertyController) RemovePhoto(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req photoUploadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "photo is required")
		return
	}

	property, err := c.PropSvc.RemovePhoto(id, req.Photo)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	if err := c.ImageSvc.DeletePropertyPhoto(req.Photo); err != nil {
		respondErr(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, property)
}
