package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestStreamTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret)

	token, expiresIn, err := svc.GenerateStreamToken("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 300, expiresIn)

	userID, err := svc.ValidateStreamToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestValidateStreamTokenRejectsAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret)

	// An access token from the identity service, valid for the API but not
	// for the stream endpoint.
	_, token, err := svc.JWTAuth().Encode(map[string]interface{}{
		"user_id": "user-1",
		"type":    "access",
		"exp":     time.Now().Add(15 * time.Minute).Unix(),
	})
	require.NoError(t, err)

	_, err = svc.ValidateStreamToken(token)
	assert.Error(t, err)
}

func TestValidateStreamTokenRejectsWrongKey(t *testing.T) {
	token, _, err := NewJWTService("other-secret").GenerateStreamToken("user-1")
	require.NoError(t, err)

	_, err = NewJWTService(testSecret).ValidateStreamToken(token)
	assert.Error(t, err)
}
