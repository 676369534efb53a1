package models

// UpdateProfileRequest represents the body of PATCH /users/me
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=2,max=30"`
	About *string `json:"about,omitempty" binding:"omitempty,min=2,max=30"`
}

// UpdateAvatarRequest represents the body of PATCH /users/me/avatar
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required,urlpattern"`
}

// IDParam binds a UUID path parameter
type IDParam struct {
	ID string `uri:"id" binding:"required,uuid"`
}
