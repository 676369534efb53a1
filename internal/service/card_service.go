package service

import (
	"context"
	"errors"

	"mesto-be/internal/apperr"
	"mesto-be/internal/entities"
	"mesto-be/internal/models"
	"mesto-be/internal/repository"
	"mesto-be/internal/validation"
)

// CardService defines the interface for card business logic
type CardService interface {
	List(ctx context.Context) ([]*entities.Card, error)
	Get(ctx context.Context, cardID string) (*entities.Card, error)
	Create(ctx context.Context, ownerID string, req *models.CreateCardRequest) (*entities.Card, error)
	Delete(ctx context.Context, userID, cardID string) (*entities.Card, error)
	AddLike(ctx context.Context, userID, cardID string) (*entities.Card, error)
	RemoveLike(ctx context.Context, userID, cardID string) (*entities.Card, error)
}

type cardService struct {
	repo repository.CardRepository
}

type newCard struct {
	Name string `validate:"required,min=2,max=30"`
	Link string `validate:"required,urlpattern"`
}

// NewCardService creates a new card service
func NewCardService(repo repository.CardRepository) CardService {
	return &cardService{repo: repo}
}

// List returns all cards
func (s *cardService) List(ctx context.Context) ([]*entities.Card, error) {
	cards, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return cards, nil
}

// Get returns a single card
func (s *cardService) Get(ctx context.Context, cardID string) (*entities.Card, error) {
	if err := validateID(cardID); err != nil {
		return nil, err
	}

	card, err := s.repo.FindByID(ctx, cardID)
	if err != nil {
		return nil, classify(err, msgCardNotFound)
	}
	return card, nil
}

// Create stores a card owned by ownerID with no likes
func (s *cardService) Create(ctx context.Context, ownerID string, req *models.CreateCardRequest) (*entities.Card, error) {
	if err := validation.Struct(newCard{Name: req.Name, Link: req.Link}); err != nil {
		return nil, err
	}

	card, err := s.repo.Create(ctx, req.Name, req.Link, ownerID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return card, nil
}

// Delete removes a card. Only the owner may delete it; the ownership check
// happens before anything is removed.
func (s *cardService) Delete(ctx context.Context, userID, cardID string) (*entities.Card, error) {
	card, err := s.Get(ctx, cardID)
	if err != nil {
		return nil, err
	}

	if card.Owner != userID {
		return nil, apperr.Forbidden(msgNotCardOwner)
	}

	// Another request may have deleted the card since it was read.
	if err := s.repo.Delete(ctx, cardID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound(msgCardNotFound)
		}
		return nil, apperr.Internal(err)
	}

	return card, nil
}

// AddLike puts userID into the card's likes. Repeated calls are no-ops.
func (s *cardService) AddLike(ctx context.Context, userID, cardID string) (*entities.Card, error) {
	if err := validateID(cardID); err != nil {
		return nil, err
	}

	card, err := s.repo.AddLike(ctx, cardID, userID)
	if err != nil {
		return nil, classify(err, msgCardNotFound)
	}
	return card, nil
}

// RemoveLike takes userID out of the card's likes. Removing an absent like is a no-op.
func (s *cardService) RemoveLike(ctx context.Context, userID, cardID string) (*entities.Card, error) {
	if err := validateID(cardID); err != nil {
		return nil, err
	}

	card, err := s.repo.RemoveLike(ctx, cardID, userID)
	if err != nil {
		return nil, classify(err, msgCardNotFound)
	}
	return card, nil
}
