package models

import "time"

// Token is an issued or verified session token.
type Token struct {
	// SignedString is the compact JWS form sent as "Authorization: Bearer".
	SignedString string `json:"-"`

	// UserID is the "sub" claim.
	UserID string `json:"-"`

	// ExpiresAt is the "exp" claim. Zero when the token carries none.
	ExpiresAt time.Time `json:"-"`
}

func (t Token) String() string {
	return t.SignedString
}
