package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("user-1", secret, time.Minute)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := GetUserIDFromToken(token, secret)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestParseTokenWrongKey(t *testing.T) {
	token, err := GenerateToken("user-1", []byte("key-a"), time.Minute)
	assert.NoError(t, err)

	_, err = GetUserIDFromToken(token, []byte("key-b"))
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("user-1", secret, -time.Minute)
	assert.NoError(t, err)

	_, err = GetUserIDFromToken(token, secret)
	assert.Error(t, err)
}
