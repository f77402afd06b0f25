package controllers

import (
	"net/http"

	"realestate-backend/services"
	"realestate-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReferenceController is the shared admin CRUD surface for the four
// reference catalogs. Each instance registers the same route shape under its
// own path segment.
type ReferenceController[T any] struct {
	Svc *services.CatalogService[T]
}

func NewReferenceController[T any](svc *services.CatalogService[T]) *ReferenceController[T] {
	return &ReferenceController[T]{Svc: svc}
}

// RegisterAdmin mounts the admin CRUD routes on the given group.
func (c *ReferenceController[T]) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", c.List)
	rg.POST("", c.Create)
	rg.GET("/:id", c.Get)
	rg.PUT("/:id", c.Update)
	rg.DELETE("/:id", c.Delete)
	rg.POST("/:id/restore", c.Restore)
	rg.POST("/bulk/activate", c.BulkActivate)
	rg.POST("/bulk/deactivate", c.BulkDeactivate)
}

func (c *ReferenceController[T]) List(ctx *gin.Context) {
	items, err := c.Svc.List(ctx.Query("trashed") == "true")
	if err != nil {
		respondErr(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, items)
}

// Options serves the public dropdown payload: active records only.
func (c *ReferenceController[T]) Options(ctx *gin.Context) {
	items, err := c.Svc.Options()
	if err != nil {
		respondErr(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, items)
}

func (c *ReferenceController[T]) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	item, err := c.Svc.Get(id)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, item)
}

func (c *ReferenceController[T]) Create(ctx *gin.Context) {
	var item T
	if err := ctx.ShouldBindJSON(&item); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := c.Svc.Create(&item); err != nil {
		respondErr(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusCreated, item)
}

func (c *ReferenceController[T]) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var changes map[string]any
	if err := ctx.ShouldBindJSON(&changes); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	item, err := c.Svc.Update(id, changes)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, item)
}

func (c *ReferenceController[T]) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.Svc.Delete(id); err != nil {
		respondErr(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, gin.H{"deleted": id})
}

func (c *ReferenceController[T]) Restore(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.Svc.Restore(id); err != nil {
		respondErr(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, gin.H{"restored": id})
}

func (c *ReferenceController[T]) BulkActivate(ctx *gin.Context) {
	ids, ok := bindIDList(ctx)
	if !ok {
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, c.Svc.BulkSetActive(ids, true))
}

func (c *ReferenceController[T]) BulkDeactivate(ctx *gin.Context) {
	ids, ok := bindIDList(ctx)
	if !ok {
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, c.Svc.BulkSetActive(ids, false))
}
