package models

import "time"

// User represents an account entity used for authentication and authorship.
// Entries, comments and reactions reference users by UserID.
type User struct {
	// UserID is the unique identifier of the user (UUID string).
	UserID string `json:"_id"`

	// Name is the display name shown next to entries and comments.
	Name string `json:"name"`

	// Email is the unique login identifier. Stored lower-cased.
	Email string `json:"email"`

	// Password holds the plaintext password on the way in (register, login)
	// and the bcrypt hash once it reaches the persistence layer.
	// It is never serialized back to clients.
	Password string `json:"password,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Ref returns the public projection of the user embedded into entries.
func (u User) Ref() UserRef {
	return UserRef{ID: u.UserID, Name: u.Name, Email: u.Email}
}

// Public returns a copy of the user without credential data.
func (u User) Public() User {
	u.Password = ""
	return u
}

// UserRef is the populated author reference carried by entries and comments.
// Only ID is persisted, Name and Email are filled in on read.
type UserRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// RegisterRequest is the payload of POST /api/users/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the payload of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
