// Package models defines server-side data models persisted in the database.
package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the stored account record. It carries secrets and must never be
// sent to clients; use Public for that.
type User struct {
	ID                     string
	Email                  string
	PasswordHash           string
	FirstName              string
	LastName               string
	TermsAccepted          bool
	Role                   Role
	IsVerified             bool
	VerificationCode       *string
	PasswordResetToken     *string
	PasswordResetExpiresAt *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// PublicUser is the client-facing view of a User.
type PublicUser struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Role          Role      `json:"role"`
	IsVerified    bool      `json:"is_verified"`
	TermsAccepted bool      `json:"terms_accepted"`
	CreatedAt     time.Time `json:"created_at"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Role:          u.Role,
		IsVerified:    u.IsVerified,
		TermsAccepted: u.TermsAccepted,
		CreatedAt:     u.CreatedAt,
	}
}
