package models

import "time"

// TokenPair is one issued session: a refresh token and the access token
// currently bound to it.
type TokenPair struct {
	ID           string
	UserID       string
	RefreshToken string
	AccessToken  string
	CreatedAt    time.Time
	ExpiresAt    time.Time
	Revoked      bool
}

// IsValid reports whether the pair may still authenticate requests at now.
func (p *TokenPair) IsValid(now time.Time) bool {
	return !p.Revoked && now.Before(p.ExpiresAt)
}
