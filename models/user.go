// File: /models/user.go
package models

import (
	"time"
)

// User is a locally registered account. Users are created by registration
// only, never mutated or deleted in-app. The password field holds a bcrypt
// hash and must never leave the service layer; responses and the current-user
// record use PublicUser instead.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

// PublicUser is the redacted copy of a User handed to everything outside the
// auth service, including the persisted current-user record.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Public strips the credential material from a User.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
