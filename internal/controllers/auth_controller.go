package controllers

import (
	"net/http"
	"time"

	"mesto-be/internal/middleware"
	"mesto-be/internal/models"
	"mesto-be/internal/service"
	"mesto-be/internal/validation"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService service.AuthService
	tokenTTL    time.Duration
}

func NewAuthController(authService service.AuthService, tokenTTL time.Duration) *AuthController {
	return &AuthController{
		authService: authService,
		tokenTTL:    tokenTTL,
	}
}

// Register handles POST /users and POST /signup
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(validation.FromValidator(err))
		return
	}

	user, err := ac.authService.Register(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles POST /signin. The token is returned in the body and also set
// as an httpOnly cookie.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(validation.FromValidator(err))
		return
	}

	response, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, response.Token, int(ac.tokenTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, response)
}
