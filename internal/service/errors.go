package service

import (
	"errors"

	"github.com/google/uuid"

	"mesto-be/internal/apperr"
	"mesto-be/internal/repository"
)

const (
	msgInvalidID          = "Invalid identifier"
	msgInvalidCredentials = "Invalid email or password"
	msgEmailTaken         = "User with this email is already registered"
	msgUserNotFound       = "User with specified id not found"
	msgCardNotFound       = "Card with specified id not found"
	msgNotCardOwner       = "You can only delete your own cards"
)

// validateID rejects identifiers that are not UUIDs before they reach storage.
func validateID(id string) error {
	if err := uuid.Validate(id); err != nil {
		return apperr.Validation(msgInvalidID)
	}
	return nil
}

// classify turns repository errors into application errors. notFound is the
// message used when the referenced row is missing.
func classify(err error, notFound string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound(notFound)
	case errors.Is(err, repository.ErrInvalidID):
		return apperr.Validation(msgInvalidID)
	case errors.Is(err, repository.ErrDuplicate):
		return apperr.Conflict(msgEmailTaken)
	}
	return apperr.Internal(err)
}
