package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound indicates the referenced row does not exist.
	ErrNotFound = errors.New("repository: not found")
	// ErrDuplicate indicates a unique constraint was violated.
	ErrDuplicate = errors.New("repository: duplicate key")
	// ErrInvalidID indicates an identifier the database could not parse.
	ErrInvalidID = errors.New("repository: invalid identifier")
)

// PostgreSQL error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeInvalidText         = "22P02"
)

// translate maps driver errors onto repository sentinels. Other errors are
// returned unchanged.
func translate(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case codeUniqueViolation:
		return ErrDuplicate
	case codeForeignKeyViolation:
		return ErrNotFound
	case codeInvalidText:
		return ErrInvalidID
	}
	return err
}
