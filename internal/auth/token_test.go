package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/meinblog/blog-api/internal/domain/auth"
)

const testSecret = "test-signing-secret"

func testCredential() domainauth.Credential {
	return domainauth.Credential{
		UserID: "11111111-2222-3333-4444-555555555555",
		Email:  "user@example.com",
		Name:   "Test User",
	}
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec(testSecret, 7*24*time.Hour)

	token, err := codec.Issue(testCredential())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	cred, ok := codec.Verify(token)
	require.True(t, ok)
	assert.Equal(t, testCredential(), cred)
}

func TestTokenCodec_TamperedToken(t *testing.T) {
	codec := NewTokenCodec(testSecret, time.Hour)

	token, err := codec.Issue(testCredential())
	require.NoError(t, err)

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, ok := codec.Verify(tampered)
	assert.False(t, ok)
}

func TestTokenCodec_WrongKey(t *testing.T) {
	issuer := NewTokenCodec(testSecret, time.Hour)
	verifier := NewTokenCodec("rotated-secret", time.Hour)

	token, err := issuer.Issue(testCredential())
	require.NoError(t, err)

	_, ok := verifier.Verify(token)
	assert.False(t, ok)
}

func TestTokenCodec_Malformed(t *testing.T) {
	codec := NewTokenCodec(testSecret, time.Hour)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, ok := codec.Verify(raw)
		assert.False(t, ok, "token %q should not verify", raw)
	}
}

func TestTokenCodec_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ttl := 7 * 24 * time.Hour

	codec := NewTokenCodec(testSecret, ttl)
	codec.now = func() time.Time { return issuedAt }

	token, err := codec.Issue(testCredential())
	require.NoError(t, err)

	// Valid one second before expiry.
	codec.now = func() time.Time { return issuedAt.Add(ttl - time.Second) }
	_, ok := codec.Verify(token)
	assert.True(t, ok)

	// Invalid one second after expiry.
	codec.now = func() time.Time { return issuedAt.Add(ttl + time.Second) }
	_, ok = codec.Verify(token)
	assert.False(t, ok)
}
