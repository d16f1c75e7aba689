package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the bearer token claims the client relies on.
// The token is issued and verified by the server; the client only reads it.
type SessionClaims struct {
	jwt.RegisteredClaims

	// SyncApproved is set once the user has been approved to sync data.
	SyncApproved bool `json:"sync_approved"`
}

// ErrEmptyToken is returned when there is no token to parse.
var ErrEmptyToken = errors.New("empty token")

// ParseSessionClaims decodes the claims of tokenString without verifying the
// signature.
//
// Example usage:
//
//	claims, err := utils.ParseSessionClaims(token)
//	if err == nil && claims.SyncApproved { ... }
func ParseSessionClaims(tokenString string) (SessionClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return SessionClaims{}, ErrEmptyToken
	}

	var claims SessionClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return SessionClaims{}, fmt.Errorf("error parsing session token: %w", err)
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
