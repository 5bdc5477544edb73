package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Domkr4t/SocialNetwork/entity"
	"github.com/Domkr4t/SocialNetwork/service"
)

type AuthController struct {
	svc *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

// Register creates a new account from a JSON body.
func (a *AuthController) Register(c *gin.Context) {
	var req entity.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"description": err.Error()})
		return
	}
	resp := a.svc.Register(req)
	if !resp.IsOk() {
		c.JSON(http.StatusBadRequest, gin.H{"description": resp.Description})
		return
	}
	c.JSON(http.StatusOK, gin.H{"description": resp.Description, "data": resp.Data})
}

// Login authenticates by login/password and returns the profile.
func (a *AuthController) Login(c *gin.Context) {
	var req entity.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"description": err.Error()})
		return
	}
	resp := a.svc.Authenticate(req)
	if !resp.IsOk() {
		c.JSON(http.StatusBadRequest, gin.H{"description": resp.Description})
		return
	}
	c.JSON(http.StatusOK, gin.H{"description": resp.Description, "data": resp.Data})
}
