package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	salt, err := GenerateSalt()
	assert.NoError(t, err)
	assert.Len(t, salt, saltLen)

	hash := HashPassword([]byte("s3cret"), salt)
	assert.True(t, VerifyPassword([]byte("s3cret"), salt, hash))
	assert.False(t, VerifyPassword([]byte("wrong"), salt, hash))

	otherSalt, err := GenerateSalt()
	assert.NoError(t, err)
	assert.False(t, VerifyPassword([]byte("s3cret"), otherSalt, hash))
}
