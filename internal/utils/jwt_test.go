package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTokens = TokenParams{Issuer: "work-diary", SignKey: "secret-key", TTL: time.Hour}

// ─────────────────────────────────────────────────────────────
// Issue
// ─────────────────────────────────────────────────────────────

func TestTokenParams_IssueAndParse(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	issued, err := testTokens.Issue("0192f1c4-7d4e-7b1a-9c55-3a1f1d2e3c4b", now)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.SignedString)
	assert.Equal(t, now.Add(time.Hour), issued.ExpiresAt)
	assert.Equal(t, issued.SignedString, issued.String())

	parsed, err := testTokens.Parse(issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, issued.UserID, parsed.UserID)
	assert.True(t, parsed.ExpiresAt.Equal(issued.ExpiresAt))
}

func TestTokenParams_IssueRejectsIncompleteParams(t *testing.T) {
	tests := []struct {
		name   string
		params TokenParams
		userID string
	}{
		{name: "no issuer", params: TokenParams{SignKey: "k", TTL: time.Hour}, userID: "u1"},
		{name: "no key", params: TokenParams{Issuer: "i", TTL: time.Hour}, userID: "u1"},
		{name: "no ttl", params: TokenParams{Issuer: "i", SignKey: "k"}, userID: "u1"},
		{name: "no user", params: testTokens},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.params.Issue(tt.userID, time.Now())
			assert.ErrorIs(t, err, errTokenParams)
		})
	}
}

// ─────────────────────────────────────────────────────────────
// Parse
// ─────────────────────────────────────────────────────────────

func TestTokenParams_ParseRejects(t *testing.T) {
	valid, err := testTokens.Issue("u1", time.Now())
	require.NoError(t, err)
	expired, err := testTokens.Issue("u1", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	foreignKey := testTokens
	foreignKey.SignKey = "other-key"
	foreignIssuer := testTokens
	foreignIssuer.Issuer = "someone-else"

	tests := []struct {
		name    string
		params  TokenParams
		raw     string
		wantErr error
	}{
		{name: "wrong key", params: foreignKey, raw: valid.SignedString, wantErr: jwt.ErrSignatureInvalid},
		{name: "wrong issuer", params: foreignIssuer, raw: valid.SignedString, wantErr: jwt.ErrTokenInvalidIssuer},
		{name: "expired", params: testTokens, raw: expired.SignedString, wantErr: jwt.ErrTokenExpired},
		{name: "garbage", params: testTokens, raw: "not.a.token", wantErr: jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.params.Parse(tt.raw)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTokenParams_ParseRejectsOtherAlgorithm(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    testTokens.Issuer,
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testTokens.SignKey))
	require.NoError(t, err)

	_, err = testTokens.Parse(raw)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestTokenParams_ParseRequiresSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    testTokens.Issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testTokens.SignKey))
	require.NoError(t, err)

	_, err = testTokens.Parse(raw)
	assert.ErrorIs(t, err, errNoSubject)
}

// ─────────────────────────────────────────────────────────────
// ParseBearerToken
// ─────────────────────────────────────────────────────────────

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "canonical", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lower case scheme and padding", header: "bearer   abc ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "basic auth", header: "Basic abc", wantErr: true},
		{name: "two tokens", header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, errBearerFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
