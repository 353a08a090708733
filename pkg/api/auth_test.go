package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delverhq/delver/pkg/config"
	"github.com/delverhq/delver/pkg/models"
)

func testIssuer(ttl time.Duration) *TokenIssuer {
	return NewTokenIssuer(&config.AuthConfig{
		JWTSecret: "test-secret-key",
		TokenTTL:  ttl,
	})
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := testIssuer(time.Hour)
	user := &models.UserView{ID: "user-1", Email: "a@example.com", Role: "admin"}

	token, expires, err := issuer.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.True(t, claims.Admin())
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	issuer := testIssuer(-time.Minute)
	token, _, err := issuer.Issue(&models.UserView{ID: "user-1", Role: "user"})
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	token, _, err := testIssuer(time.Hour).Issue(&models.UserView{ID: "user-1", Role: "user"})
	require.NoError(t, err)

	other := NewTokenIssuer(&config.AuthConfig{JWTSecret: "different", TokenTTL: time.Hour})
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsGarbage(t *testing.T) {
	_, err := testIssuer(time.Hour).Parse("not-a-token")
	assert.Error(t, err)
}
