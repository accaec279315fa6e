package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)

	exp := claims.ExpiresAt.Time
	iat := claims.IssuedAt.Time
	assert.Equal(t, TokenTTL, exp.Sub(iat))
}

func TestVerifyExpired(t *testing.T) {
	svc := NewTokenService("test-secret")
	svc.now = func() time.Time {
		return time.Now().Add(-25 * time.Hour)
	}

	// Correctly signed but past its 24h expiry.
	token, err := svc.Issue()
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a")
	verifier := NewTokenService("secret-b")

	token, err := issuer.Issue()
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyTampered(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue()
	require.NoError(t, err)

	tampered := []byte(token)
	i := len(tampered) / 2
	if tampered[i] == 'A' {
		tampered[i] = 'B'
	} else {
		tampered[i] = 'A'
	}

	_, err = svc.Verify(string(tampered))
	assert.Error(t, err)
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewTokenService("test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.Error(t, err, "token %q", token)
	}
}
