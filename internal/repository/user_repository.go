package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mesto-be/internal/entities"
)

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User, passwordHash string) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	// FindCredentialsByEmail is the only read that returns the password hash.
	FindCredentialsByEmail(ctx context.Context, email string) (*entities.Credentials, error)
	List(ctx context.Context) ([]*entities.User, error)
	Update(ctx context.Context, id string, upd entities.ProfileUpdate) (*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, name, about, avatar, created_at`

func scanUser(row interface{ Scan(...any) error }, user *entities.User) error {
	return row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.About,
		&user.Avatar,
		&user.CreatedAt,
	)
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *entities.User, passwordHash string) (*entities.User, error) {
	query := `
		INSERT INTO users (email, password_hash, name, about, avatar)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	var created entities.User
	row := r.db.QueryRowContext(ctx, query, user.Email, passwordHash, user.Name, user.About, user.Avatar)
	if err := scanUser(row, &created); err != nil {
		if errors.Is(translate(err), ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &created, nil
}

// FindByID finds a user by ID (UUID)
func (r *userRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user entities.User
	err := scanUser(r.db.QueryRowContext(ctx, query, id), &user)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		if errors.Is(translate(err), ErrInvalidID) {
			return nil, ErrInvalidID
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// FindCredentialsByEmail finds a user and the stored password hash by email
func (r *userRepository) FindCredentialsByEmail(ctx context.Context, email string) (*entities.Credentials, error) {
	query := `SELECT ` + userColumns + `, password_hash FROM users WHERE email = $1`

	var creds entities.Credentials
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&creds.User.ID,
		&creds.User.Email,
		&creds.User.Name,
		&creds.User.About,
		&creds.User.Avatar,
		&creds.User.CreatedAt,
		&creds.PasswordHash,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &creds, nil
}

// List returns all users in creation order
func (r *userRepository) List(ctx context.Context) ([]*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*entities.User, 0)
	for rows.Next() {
		var user entities.User
		if err := scanUser(rows, &user); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// Update applies the non-nil profile fields and returns the updated user
func (r *userRepository) Update(ctx context.Context, id string, upd entities.ProfileUpdate) (*entities.User, error) {
	query := `
		UPDATE users
		SET name = COALESCE($2, name),
			about = COALESCE($3, about),
			avatar = COALESCE($4, avatar)
		WHERE id = $1
		RETURNING ` + userColumns

	var user entities.User
	err := scanUser(r.db.QueryRowContext(ctx, query, id, upd.Name, upd.About, upd.Avatar), &user)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		if errors.Is(translate(err), ErrInvalidID) {
			return nil, ErrInvalidID
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &user, nil
}
