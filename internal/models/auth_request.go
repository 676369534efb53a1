package models

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     *string `json:"name,omitempty" binding:"omitempty,min=2,max=30"`
	About    *string `json:"about,omitempty" binding:"omitempty,min=2,max=30"`
	Avatar   *string `json:"avatar,omitempty" binding:"omitempty,urlpattern"`
}

// LoginRequest represents the request body for sign-in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
