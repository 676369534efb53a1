package controllers

import (
	"context"
	"net/http"

	"mesto-be/internal/entities"
	"mesto-be/internal/middleware"
	"mesto-be/internal/models"
	"mesto-be/internal/service"
	"mesto-be/internal/validation"

	"github.com/gin-gonic/gin"
)

type CardController struct {
	cardService service.CardService
}

func NewCardController(cardService service.CardService) *CardController {
	return &CardController{
		cardService: cardService,
	}
}

// GetCards handles GET /cards
func (cc *CardController) GetCards(c *gin.Context) {
	cards, err := cc.cardService.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, cards)
}

// CreateCard handles POST /cards
func (cc *CardController) CreateCard(c *gin.Context) {
	userID, err := middleware.ActingUserID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req models.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(validation.FromValidator(err))
		return
	}

	card, err := cc.cardService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, card)
}

// DeleteCard handles DELETE /cards/:id
func (cc *CardController) DeleteCard(c *gin.Context) {
	card, ok := cc.mutate(c, cc.cardService.Delete)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.DeleteCardResponse{
		Message: "Card deleted",
		Card:    card,
	})
}

// LikeCard handles PUT /cards/:id/likes
func (cc *CardController) LikeCard(c *gin.Context) {
	if card, ok := cc.mutate(c, cc.cardService.AddLike); ok {
		c.JSON(http.StatusOK, card)
	}
}

// DislikeCard handles DELETE /cards/:id/likes
func (cc *CardController) DislikeCard(c *gin.Context) {
	if card, ok := cc.mutate(c, cc.cardService.RemoveLike); ok {
		c.JSON(http.StatusOK, card)
	}
}

type cardMutation func(ctx context.Context, userID, cardID string) (*entities.Card, error)

// mutate resolves the acting user and the card id, then applies op. Errors
// are attached to the context and ok is false.
func (cc *CardController) mutate(c *gin.Context, op cardMutation) (*entities.Card, bool) {
	userID, err := middleware.ActingUserID(c)
	if err != nil {
		c.Error(err)
		return nil, false
	}

	var param models.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		c.Error(validation.FromValidator(err))
		return nil, false
	}

	card, err := op(c.Request.Context(), userID, param.ID)
	if err != nil {
		c.Error(err)
		return nil, false
	}
	return card, true
}
