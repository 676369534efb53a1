package models

import "mesto-be/internal/entities"

// CreateCardRequest represents the body of POST /cards
type CreateCardRequest struct {
	Name string `json:"name" binding:"required,min=2,max=30"`
	Link string `json:"link" binding:"required,urlpattern"`
}

// DeleteCardResponse is returned after a card is removed
type DeleteCardResponse struct {
	Message string         `json:"message"`
	Card    *entities.Card `json:"card"`
}
