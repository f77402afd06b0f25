package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"realestate-backend/services"
	"realestate-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondErr maps service errors onto HTTP responses. Validation problems
// carry their field map; unknown errors are logged but never leaked.
func respondErr(ctx *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "validation failed",
			"fields":  ve.Fields,
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONError(ctx, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(ctx, http.StatusUnauthorized, "invalid email or password")
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "internal server error")
	}
}

func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// idListRequest is the shared payload of every bulk endpoint.
type idListRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

func bindIDList(ctx *gin.Context) ([]uint, bool) {
	var req idListRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "ids must be a non-empty array")
		return nil, false
	}
	return req.IDs, true
}
