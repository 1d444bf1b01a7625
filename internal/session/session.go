// Package session implements the client-side session store: login and
// logout, persisted token lifecycle, claims derivation and role checks.
//
// The persisted state intentionally mirrors what the web client kept in
// localStorage: the raw token under authToken, the derived claims under
// userInfo and the optional remembered login email under rememberedUser.
// Derived claims are never trusted on their own; the live session is always
// re-derived from the stored token.
package session

import (
	"fmt"
	"time"

	"github.com/Memetgms/kitapinceleme/internal/shared"
	jwt "github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded token payload the client cares about.
type Claims struct {
	UserID    string
	UserName  string
	Role      string
	ExpiresAt time.Time
}

// Expired reports whether the claims' expiry has passed at the given instant.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}

// Session is the live authentication state. The zero value is anonymous.
type Session struct {
	Token    string `json:"-"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	UserRole string `json:"userRole"`
}

// Anonymous reports whether no user is logged in.
func (s Session) Anonymous() bool {
	return s.Token == ""
}

// HasRole reports whether the session belongs to an authenticated user
// holding the given role.
func (s Session) HasRole(role string) bool {
	return !s.Anonymous() && s.UserRole == role
}

// DecodeClaims extracts the identity claims from a signed token without
// verifying its signature: the client holds no key material and the server
// re-checks the token on every authenticated call.
//
// Fails with [shared.ErrTokenMalformed] when the token cannot be parsed or is
// missing the claims the client depends on, rather than silently producing
// empty fields.
func DecodeClaims(token string) (Claims, error) {
	mapClaims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mapClaims); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", shared.ErrTokenMalformed, err)
	}

	claims := Claims{
		UserID:   stringClaim(mapClaims, "nameid"),
		UserName: stringClaim(mapClaims, "unique_name"),
		Role:     stringClaim(mapClaims, "role"),
	}

	if claims.UserID == "" || claims.UserName == "" {
		return Claims{}, fmt.Errorf("%w: missing identity claims", shared.ErrTokenMalformed)
	}

	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil {
		return Claims{}, fmt.Errorf("%w: missing exp claim", shared.ErrTokenMalformed)
	}
	claims.ExpiresAt = exp.Time

	return claims, nil
}

// stringClaim reads a claim that may arrive as a string, a number or, for
// roles, a list of strings. The backing store supports multiple roles per
// user but the client presents exactly one, so a list collapses to its first
// entry.
func stringClaim(claims jwt.MapClaims, name string) string {
	switch v := claims[name].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				return s
			}
		}
	}
	return ""
}
