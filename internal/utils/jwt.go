package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/work-diary/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errTokenParams  = errors.New("token issuer, sign key and lifetime must be set")
	errNoSubject    = errors.New("token has no subject")
	errBearerFormat = errors.New(`authorization header is not "Bearer <token>"`)
)

// TokenParams signs and verifies HS256 session tokens whose subject is a
// user id.
type TokenParams struct {
	Issuer  string
	SignKey string
	TTL     time.Duration
}

// Issue signs a token for userID valid from now for TTL.
func (p TokenParams) Issue(userID string, now time.Time) (models.Token, error) {
	if p.Issuer == "" || p.SignKey == "" || p.TTL == 0 || userID == "" {
		return models.Token{}, errTokenParams
	}

	expiresAt := now.Add(p.TTL)
	claims := jwt.RegisteredClaims{
		Issuer:    p.Issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(p.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("sign token: %w", err)
	}

	return models.Token{SignedString: signed, UserID: userID, ExpiresAt: expiresAt}, nil
}

// Parse checks the signature, the algorithm, the issuer and the expiry of raw
// and returns its subject. jwt sentinel errors such as jwt.ErrTokenExpired
// stay matchable with errors.Is.
func (p TokenParams) Parse(raw string) (models.Token, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return []byte(p.SignKey), nil },
		jwt.WithIssuer(p.Issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse token: %w", err)
	}
	if claims.Subject == "" {
		return models.Token{}, errNoSubject
	}

	token := models.Token{SignedString: raw, UserID: claims.Subject}
	if claims.ExpiresAt != nil {
		token.ExpiresAt = claims.ExpiresAt.Time
	}
	return token, nil
}

// ParseBearerToken returns the token part of an Authorization header value.
// The scheme is matched case-insensitively.
func ParseBearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" || strings.ContainsAny(token, " \t") {
		return "", errBearerFormat
	}
	return token, nil
}
