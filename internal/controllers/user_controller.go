package controllers

import (
	"net/http"

	"mesto-be/internal/middleware"
	"mesto-be/internal/models"
	"mesto-be/internal/service"
	"mesto-be/internal/validation"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetUsers handles GET /users
func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.userService.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetMe handles GET /users/me
func (uc *UserController) GetMe(c *gin.Context) {
	userID, err := middleware.ActingUserID(c)
	if err != nil {
		c.Error(err)
		return
	}

	uc.respondWithUser(c, userID)
}

// GetUser handles GET /users/:id
func (uc *UserController) GetUser(c *gin.Context) {
	var param models.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		c.Error(validation.FromValidator(err))
		return
	}

	uc.respondWithUser(c, param.ID)
}

func (uc *UserController) respondWithUser(c *gin.Context, id string) {
	user, err := uc.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PATCH /users/me
func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID, err := middleware.ActingUserID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(validation.FromValidator(err))
		return
	}

	user, err := uc.userService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateAvatar handles PATCH /users/me/avatar
func (uc *UserController) UpdateAvatar(c *gin.Context) {
	userID, err := middleware.ActingUserID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req models.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(validation.FromValidator(err))
		return
	}

	user, err := uc.userService.UpdateAvatar(c.Request.Context(), userID, req.Avatar)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, user)
}
