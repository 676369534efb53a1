package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"mesto-be/internal/apperr"
	"mesto-be/internal/cache"
	"mesto-be/internal/entities"
	"mesto-be/internal/models"
	"mesto-be/internal/repository"
	"mesto-be/internal/validation"
)

const userCacheTTL = time.Hour

// UserService defines the interface for profile reads and updates
type UserService interface {
	GetByID(ctx context.Context, id string) (*entities.User, error)
	List(ctx context.Context) ([]*entities.User, error)
	UpdateProfile(ctx context.Context, id string, req *models.UpdateProfileRequest) (*entities.User, error)
	UpdateAvatar(ctx context.Context, id string, avatar string) (*entities.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache cache.Cache
}

type profileFields struct {
	Name   *string `validate:"omitempty,min=2,max=30"`
	About  *string `validate:"omitempty,min=2,max=30"`
	Avatar *string `validate:"omitempty,urlpattern"`
}

// NewUserService creates a new user service. cacheClient may be nil.
func NewUserService(repo repository.UserRepository, cacheClient cache.Cache) UserService {
	return &userService{
		repo:  repo,
		cache: cacheClient,
	}
}

func userCacheKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

// GetByID returns a user profile, served from cache when possible
func (s *userService) GetByID(ctx context.Context, id string) (*entities.User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	if s.cache != nil {
		var cached entities.User
		err := s.cache.GetJSON(ctx, userCacheKey(id), &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			logrus.WithError(err).WithField("user_id", id).Warn("Profile cache read failed")
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err, msgUserNotFound)
	}

	s.remember(ctx, user)
	return user, nil
}

// List returns every user
func (s *userService) List(ctx context.Context) ([]*entities.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return users, nil
}

// UpdateProfile changes name and/or about of the given user
func (s *userService) UpdateProfile(ctx context.Context, id string, req *models.UpdateProfileRequest) (*entities.User, error) {
	return s.update(ctx, id, entities.ProfileUpdate{Name: req.Name, About: req.About})
}

// UpdateAvatar changes the avatar link of the given user
func (s *userService) UpdateAvatar(ctx context.Context, id string, avatar string) (*entities.User, error) {
	return s.update(ctx, id, entities.ProfileUpdate{Avatar: &avatar})
}

func (s *userService) update(ctx context.Context, id string, upd entities.ProfileUpdate) (*entities.User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := validation.Struct(profileFields{Name: upd.Name, About: upd.About, Avatar: upd.Avatar}); err != nil {
		return nil, err
	}

	user, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, classify(err, msgUserNotFound)
	}

	s.remember(ctx, user)
	return user, nil
}

// remember refreshes the cached profile. Cache failures only degrade reads.
func (s *userService) remember(ctx context.Context, user *entities.User) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, userCacheKey(user.ID), user, userCacheTTL); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Warn("Profile cache write failed")
	}
}
