package models

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
