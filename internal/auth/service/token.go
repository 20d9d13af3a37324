package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/taskcrew/backend/internal/models"
)

// TokenGenerator handles JWT token generation and validation
type TokenGenerator struct {
	secret      string
	tokenExpiry time.Duration
}

// NewTokenGenerator creates a new token generator
func NewTokenGenerator(secret string, tokenExpiry time.Duration) *TokenGenerator {
	return &TokenGenerator{
		secret:      secret,
		tokenExpiry: tokenExpiry,
	}
}

// Generate creates a signed token embedding the user ID and access level
func (tg *TokenGenerator) Generate(userID string, level models.AccessLevel) (string, error) {
	claims := jwt.MapClaims{
		"sub":          userID,
		"access_level": string(level),
		"exp":          time.Now().Add(tg.tokenExpiry).Unix(),
		"iat":          time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tg.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate validates a token and returns the embedded user ID and access level.
// The signing algorithm is pinned to HS256 on both sides; a token declaring any
// other algorithm is rejected regardless of its signature.
func (tg *TokenGenerator) Validate(tokenString string) (string, models.AccessLevel, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tg.secret), nil
	})

	if err != nil {
		return "", "", fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return "", "", fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", fmt.Errorf("invalid token claims")
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("sub not found in token")
	}

	levelStr, ok := claims["access_level"].(string)
	if !ok {
		return "", "", fmt.Errorf("access_level not found in token")
	}

	level := models.AccessLevel(levelStr)
	if !level.Valid() {
		return "", "", fmt.Errorf("unknown access level in token")
	}

	return userID, level, nil
}
