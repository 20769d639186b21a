package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchapi/internal/config"
)

func TestIssueAndVerify(t *testing.T) {
	m, err := NewManager(config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour})
	require.NoError(t, err)

	signed, claims, err := m.Issue("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.NotEmpty(t, claims.ID)

	parsed, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.Subject)
	assert.Equal(t, claims.ID, parsed.ID)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m1, err := NewManager(config.AuthConfig{JWTSecret: "secret-a"})
	require.NoError(t, err)
	m2, err := NewManager(config.AuthConfig{JWTSecret: "secret-b"})
	require.NoError(t, err)

	signed, _, err := m1.Issue("user-1")
	require.NoError(t, err)

	_, err = m2.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	m, err := NewManager(config.AuthConfig{JWTSecret: "test-secret", TokenTTL: -time.Minute})
	require.NoError(t, err)
	// negative TTL falls back to the default; force expiry via a tiny TTL instead
	m.ttl = time.Nanosecond

	signed, _, err := m.Issue("user-1")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = m.Verify(signed)
	assert.Error(t, err)
}

func TestNewManagerRequiresSecret(t *testing.T) {
	_, err := NewManager(config.AuthConfig{})
	assert.Error(t, err)
}
