package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestService() *Service {
	return NewService("test-secret", time.Hour)
}

func TestService_HashAndCheckPassword(t *testing.T) {
	s := newTestService()

	hash, err := s.HashPassword("testpassword123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "testpassword123", hash)

	assert.True(t, s.CheckPassword("testpassword123", hash))
	assert.False(t, s.CheckPassword("wrongpassword", hash))
}

func TestService_GenerateAndValidateToken(t *testing.T) {
	s := newTestService()

	token, err := s.GenerateToken(42, "tech1", false)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := s.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, uint64(42), claims.PersonID)
	assert.Equal(t, "tech1", claims.Username)
	assert.False(t, claims.Superuser)

	// Bearer prefix tolerated
	_, err = s.ValidateToken("Bearer " + token)
	assert.NoError(t, err)

	// Garbage rejected
	_, err = s.ValidateToken("invalid-token")
	assert.Equal(t, ErrInvalidToken, err)
}

func TestService_ValidateToken_WrongSecret(t *testing.T) {
	token, err := newTestService().GenerateToken(7, "admin", true)
	assert.NoError(t, err)

	other := NewService("other-secret", time.Hour)
	_, err = other.ValidateToken(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestService_ValidateToken_Expired(t *testing.T) {
	s := NewService("test-secret", -time.Minute)
	token, err := s.GenerateToken(7, "admin", true)
	assert.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.Equal(t, ErrExpiredToken, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tok, err := ExtractTokenFromHeader("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	for _, h := range []string{"", "abc.def.ghi", "Basic abc", "Bearer "} {
		_, err := ExtractTokenFromHeader(h)
		assert.Error(t, err, "header %q", h)
	}
}
