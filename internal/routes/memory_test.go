package routes

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"mesto-be/internal/entities"
	"mesto-be/internal/repository"
)

// In-memory repositories for exercising the full router without Postgres.

type memUserRepo struct {
	mu    sync.Mutex
	users []*entities.Credentials
}

func (r *memUserRepo) Create(_ context.Context, user *entities.User, passwordHash string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.users {
		if c.User.Email == user.Email {
			return nil, repository.ErrDuplicate
		}
	}
	u := *user
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	r.users = append(r.users, &entities.Credentials{User: u, PasswordHash: passwordHash})
	return &u, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.users {
		if c.User.ID == id {
			u := c.User
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) FindCredentialsByEmail(_ context.Context, email string) (*entities.Credentials, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.users {
		if c.User.Email == email {
			creds := *c
			return &creds, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]*entities.User, 0, len(r.users))
	for _, c := range r.users {
		u := c.User
		users = append(users, &u)
	}
	return users, nil
}

func (r *memUserRepo) Update(_ context.Context, id string, upd entities.ProfileUpdate) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.users {
		if c.User.ID != id {
			continue
		}
		if upd.Name != nil {
			c.User.Name = *upd.Name
		}
		if upd.About != nil {
			c.User.About = *upd.About
		}
		if upd.Avatar != nil {
			c.User.Avatar = *upd.Avatar
		}
		u := c.User
		return &u, nil
	}
	return nil, repository.ErrNotFound
}

type memCardRepo struct {
	mu    sync.Mutex
	cards []*entities.Card
}

func copyCard(c *entities.Card) *entities.Card {
	out := *c
	out.Likes = append([]string{}, c.Likes...)
	return &out
}

func (r *memCardRepo) find(id string) (int, bool) {
	for i, c := range r.cards {
		if c.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (r *memCardRepo) List(_ context.Context) ([]*entities.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cards := make([]*entities.Card, 0, len(r.cards))
	for _, c := range r.cards {
		cards = append(cards, copyCard(c))
	}
	return cards, nil
}

func (r *memCardRepo) FindByID(_ context.Context, id string) (*entities.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.find(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyCard(r.cards[i]), nil
}

func (r *memCardRepo) Create(_ context.Context, name, link, owner string) (*entities.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	card := &entities.Card{
		ID:        uuid.NewString(),
		Name:      name,
		Link:      link,
		Owner:     owner,
		Likes:     []string{},
		CreatedAt: time.Now(),
	}
	r.cards = append(r.cards, card)
	return copyCard(card), nil
}

func (r *memCardRepo) Delete(_ context.Context, id, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.find(id)
	if !ok || r.cards[i].Owner != owner {
		return repository.ErrNotFound
	}
	r.cards = append(r.cards[:i], r.cards[i+1:]...)
	return nil
}

func (r *memCardRepo) AddLike(_ context.Context, cardID, userID string) (*entities.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.find(cardID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	card := r.cards[i]
	if !card.LikedBy(userID) {
		card.Likes = append(card.Likes, userID)
	}
	return copyCard(card), nil
}

func (r *memCardRepo) RemoveLike(_ context.Context, cardID, userID string) (*entities.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.find(cardID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	card := r.cards[i]
	likes := card.Likes[:0]
	for _, id := range card.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	card.Likes = likes
	return copyCard(card), nil
}
