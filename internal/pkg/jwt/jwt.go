package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies access tokens minted by the identity service and issues
// the short-lived stream tokens SSE connections authenticate with.
type Service interface {
	// GenerateStreamToken issues a short-lived token for SSE connections,
	// which cannot carry an Authorization header.
	GenerateStreamToken(userID string) (token string, expiresIn int, err error)
	ValidateStreamToken(tokenString string) (userID string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	tokenAuth      *jwtauth.JWTAuth
	streamTokenTTL time.Duration
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		streamTokenTTL: 5 * time.Minute,
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateStreamToken(userID string) (string, int, error) {
	expiresIn := int(j.streamTokenTTL.Seconds())

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "stream",
		"exp":     time.Now().Add(j.streamTokenTTL).Unix(),
	})
	if err != nil {
		return "", 0, fmt.Errorf("failed to encode stream token: %w", err)
	}

	return tokenString, expiresIn, nil
}

func (j *JWTService) ValidateStreamToken(tokenString string) (string, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", fmt.Errorf("failed to decode stream token: %w", err)
	}
	if err := jwt.Validate(token); err != nil {
		return "", fmt.Errorf("stream token invalid: %w", err)
	}

	claims, err := token.AsMap(context.Background())
	if err != nil {
		return "", fmt.Errorf("failed to read stream token claims: %w", err)
	}
	if tokenType, _ := claims["type"].(string); tokenType != "stream" {
		return "", fmt.Errorf("token is not a stream token")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("stream token missing user_id")
	}

	return userID, nil
}
