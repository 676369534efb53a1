package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"mesto-be/internal/apperr"
	"mesto-be/internal/entities"
	"mesto-be/internal/jwt"
	"mesto-be/internal/models"
	"mesto-be/internal/repository"
	"mesto-be/internal/validation"
)

// Profile defaults applied at registration.
const (
	DefaultName   = "Jacques-Yves Cousteau"
	DefaultAbout  = "Explorer"
	DefaultAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// AuthService defines the interface for registration and sign-in
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*entities.User, error)
	VerifyCredentials(ctx context.Context, email, password string) (*entities.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
	hashCost   int
	dummyHash  []byte
}

// newUser holds the registration fields after defaults are applied.
type newUser struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=72"`
	Name     string `validate:"min=2,max=30"`
	About    string `validate:"min=2,max=30"`
	Avatar   string `validate:"urlpattern"`
}

// NewAuthService creates a new auth service. hashCost is the bcrypt cost.
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService, hashCost int) (AuthService, error) {
	// Compared against when the email is unknown so both failure paths do the same work.
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("dummy password for timing"), hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare password hasher: %w", err)
	}

	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		hashCost:   hashCost,
		dummyHash:  dummyHash,
	}, nil
}

// Register creates a new user account
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*entities.User, error) {
	in := newUser{
		Email:    req.Email,
		Password: req.Password,
		Name:     valueOr(req.Name, DefaultName),
		About:    valueOr(req.About, DefaultAbout),
		Avatar:   valueOr(req.Avatar, DefaultAvatar),
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to hash password: %w", err))
	}

	user, err := s.userRepo.Create(ctx, &entities.User{
		Email:  in.Email,
		Name:   in.Name,
		About:  in.About,
		Avatar: in.Avatar,
	}, string(hashedPassword))
	if err != nil {
		return nil, classify(err, msgUserNotFound)
	}

	return user, nil
}

// VerifyCredentials returns the user owning email if password matches. Unknown
// email and wrong password fail with the same error.
func (s *authService) VerifyCredentials(ctx context.Context, email, password string) (*entities.User, error) {
	creds, err := s.userRepo.FindCredentialsByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Internal(err)
		}
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}

	user := creds.User
	return &user, nil
}

// Login authenticates a user and returns a signed token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.VerifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to generate token: %w", err))
	}

	return &models.AuthResponse{Token: token}, nil
}

func valueOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}
