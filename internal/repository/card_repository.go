package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"mesto-be/internal/entities"
)

// CardRepository defines the interface for card database operations
type CardRepository interface {
	List(ctx context.Context) ([]*entities.Card, error)
	FindByID(ctx context.Context, id string) (*entities.Card, error)
	Create(ctx context.Context, name, link, owner string) (*entities.Card, error)
	// Delete removes the card only if it is still owned by owner. ErrNotFound
	// is returned when no row matched.
	Delete(ctx context.Context, id, owner string) error
	AddLike(ctx context.Context, cardID, userID string) (*entities.Card, error)
	RemoveLike(ctx context.Context, cardID, userID string) (*entities.Card, error)
}

type cardRepository struct {
	db *sql.DB
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *sql.DB) CardRepository {
	return &cardRepository{db: db}
}

// selectCards aggregates the like rows of each card into a text array.
const selectCards = `
	SELECT c.id, c.name, c.link, c.owner, c.created_at,
		COALESCE(array_agg(l.user_id::text ORDER BY l.created_at)
			FILTER (WHERE l.user_id IS NOT NULL), '{}') AS likes
	FROM cards c
	LEFT JOIN card_likes l ON l.card_id = c.id`

func scanCard(row interface{ Scan(...any) error }, card *entities.Card) error {
	return row.Scan(
		&card.ID,
		&card.Name,
		&card.Link,
		&card.Owner,
		&card.CreatedAt,
		pq.Array(&card.Likes),
	)
}

// List retrieves all cards in creation order
func (r *cardRepository) List(ctx context.Context) ([]*entities.Card, error) {
	query := selectCards + `
	GROUP BY c.id
	ORDER BY c.created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	cards := make([]*entities.Card, 0)
	for rows.Next() {
		var card entities.Card
		if err := scanCard(rows, &card); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, &card)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cards: %w", err)
	}

	return cards, nil
}

// FindByID finds a card with its like set
func (r *cardRepository) FindByID(ctx context.Context, id string) (*entities.Card, error) {
	query := selectCards + `
	WHERE c.id = $1
	GROUP BY c.id`

	var card entities.Card
	err := scanCard(r.db.QueryRowContext(ctx, query, id), &card)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		if errors.Is(translate(err), ErrInvalidID) {
			return nil, ErrInvalidID
		}
		return nil, fmt.Errorf("failed to find card: %w", err)
	}

	return &card, nil
}

// Create inserts a new card with an empty like set
func (r *cardRepository) Create(ctx context.Context, name, link, owner string) (*entities.Card, error) {
	query := `
		INSERT INTO cards (name, link, owner)
		VALUES ($1, $2, $3)
		RETURNING id, name, link, owner, created_at
	`

	card := entities.Card{Likes: []string{}}
	err := r.db.QueryRowContext(ctx, query, name, link, owner).Scan(
		&card.ID,
		&card.Name,
		&card.Link,
		&card.Owner,
		&card.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	return &card, nil
}

// Delete removes a card owned by owner
func (r *cardRepository) Delete(ctx context.Context, id, owner string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1 AND owner = $2`, id, owner)
	if err != nil {
		if errors.Is(translate(err), ErrInvalidID) {
			return ErrInvalidID
		}
		return fmt.Errorf("failed to delete card: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// AddLike puts userID into the card's like set. Adding an existing like is a no-op.
func (r *cardRepository) AddLike(ctx context.Context, cardID, userID string) (*entities.Card, error) {
	query := `
		INSERT INTO card_likes (card_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (card_id, user_id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, cardID, userID); err != nil {
		switch translated := translate(err); translated {
		case ErrNotFound, ErrInvalidID:
			return nil, translated
		}
		return nil, fmt.Errorf("failed to add like: %w", err)
	}

	return r.FindByID(ctx, cardID)
}

// RemoveLike takes userID out of the card's like set. Removing a missing like is a no-op.
func (r *cardRepository) RemoveLike(ctx context.Context, cardID, userID string) (*entities.Card, error) {
	query := `DELETE FROM card_likes WHERE card_id = $1 AND user_id = $2`

	if _, err := r.db.ExecContext(ctx, query, cardID, userID); err != nil {
		if errors.Is(translate(err), ErrInvalidID) {
			return nil, ErrInvalidID
		}
		return nil, fmt.Errorf("failed to remove like: %w", err)
	}

	return r.FindByID(ctx, cardID)
}
