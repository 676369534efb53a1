package entities

import "time"

// User represents a user profile. The password hash is deliberately not part
// of this type; see Credentials.
type User struct {
	ID        string    `json:"_id"` // UUID
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	About     string    `json:"about"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

// Credentials pairs a user with the stored password hash. It is only produced
// by UserRepository.FindCredentialsByEmail.
type Credentials struct {
	User         User
	PasswordHash string
}

// ProfileUpdate holds the mutable profile fields. Nil fields are left unchanged.
type ProfileUpdate struct {
	Name   *string
	About  *string
	Avatar *string
}
