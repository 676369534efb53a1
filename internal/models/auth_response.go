package models

// AuthResponse represents the response after successful sign-in
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}
