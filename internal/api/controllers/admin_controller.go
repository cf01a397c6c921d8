package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"tripscout/internal/models/request_models"
	"tripscout/pkg/utils"
)

type AdminController struct {
	keyHash string
}

func NewAdminController() *AdminController {
	return &AdminController{
		keyHash: os.Getenv("ADMIN_KEY_HASH"),
	}
}

// Login godoc
// @Summary Exchange the operator key for an admin token
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.AdminLoginRequest true "Operator key"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /admin/login [post]
func (a *AdminController) Login(c *gin.Context) {
	var req request_models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Key == "" {
		utils.RespondError(c, http.StatusBadRequest, "Operator key is required")
		return
	}

	if a.keyHash == "" || utils.CompareOperatorKey(a.keyHash, req.Key) != nil {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return
	}

	token, err := utils.CreateAdminToken("admin")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}
