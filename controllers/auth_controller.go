package controllers

import (
	"net/http"

	"realestate-backend/services"
	"realestate-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login and issues the admin token.
func (c *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "email and password are required")
		return
	}

	token, admin, err := c.AuthSvc.Login(req.Email, req.Password)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, gin.H{
		"token": token,
		"admin": admin,
	})
}
