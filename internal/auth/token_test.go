package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", DefaultTokenTTL)
	tok, exp, err := tm.Issue(42)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(tok, "."))
	assert.WithinDuration(t, time.Now().Add(120*time.Minute), exp, 2*time.Second)

	claims, err := tm.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.Subject)
}

func TestTokenManager_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	tok, _, err := NewTokenManager("secret", DefaultTokenTTL).WithClock(fixedClock(issuedAt)).Issue(42)
	require.NoError(t, err)

	before := NewTokenManager("secret", DefaultTokenTTL).WithClock(fixedClock(issuedAt.Add(119 * time.Minute)))
	claims, err := before.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.Subject)

	after := NewTokenManager("secret", DefaultTokenTTL).WithClock(fixedClock(issuedAt.Add(121 * time.Minute)))
	_, err = after.Verify(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)

	atExpiry := NewTokenManager("secret", DefaultTokenTTL).WithClock(fixedClock(issuedAt.Add(120 * time.Minute)))
	_, err = atExpiry.Verify(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_ExpiredTokenWithValidSignature(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Minute).WithClock(fixedClock(time.Now().Add(-time.Hour)))
	tok, _, err := tm.Issue(7)
	require.NoError(t, err)

	_, err = NewTokenManager("secret", time.Minute).Verify(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := NewTokenManager("secret1", 0).Issue(1)
	require.NoError(t, err)

	_, err = NewTokenManager("secret2", 0).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_TamperedBytes(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", 0)
	tok, _, err := tm.Issue(42)
	require.NoError(t, err)

	for i := range tok {
		if tok[i] == '.' {
			continue
		}
		replacement := byte('A')
		if tok[i] == 'A' {
			replacement = 'B'
		}
		tampered := tok[:i] + string(replacement) + tok[i+1:]

		_, err := tm.Verify(tampered)
		require.ErrorIs(t, err, ErrInvalidToken, "position %d", i)
	}
}

func TestTokenManager_RejectsMalformed(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", 0)
	for _, tok := range []string{"", "not.a.jwt", "abc", "a.b", "a.b.c.d"} {
		_, err := tm.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, tok)
	}
}

func TestTokenManager_RejectsNoneAlg(t *testing.T) {
	t.Parallel()

	claims := jwt.MapClaims{"sub": 42, "exp": time.Now().Add(time.Minute).Unix()}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager("secret", 0).Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsMissingExpiry(t *testing.T) {
	t.Parallel()

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": 42}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenManager("secret", 0).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsNonIntegerSubject(t *testing.T) {
	t.Parallel()

	claims := jwt.MapClaims{"sub": "42", "exp": time.Now().Add(time.Minute).Unix()}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenManager("secret", 0).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_AcceptsExternallySignedToken(t *testing.T) {
	t.Parallel()

	claims := jwt.MapClaims{"sub": 42, "exp": time.Now().Add(time.Minute).Unix()}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	got, err := NewTokenManager("secret", 0).Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.Subject)
}

func TestTokenManager_WireFormat(t *testing.T) {
	t.Parallel()

	issuedAt := time.Unix(1_700_000_000, 0)
	tok, _, err := NewTokenManager("secret", DefaultTokenTTL).WithClock(fixedClock(issuedAt)).Issue(42)
	require.NoError(t, err)

	segments := strings.Split(tok, ".")
	require.Len(t, segments, 3)

	rawHeader, err := base64.RawURLEncoding.DecodeString(segments[0])
	require.NoError(t, err)
	var header map[string]any
	require.NoError(t, json.Unmarshal(rawHeader, &header))
	assert.Equal(t, "HS256", header["alg"])

	rawPayload, err := base64.RawURLEncoding.DecodeString(segments[1])
	require.NoError(t, err)
	var payload map[string]json.Number
	dec := json.NewDecoder(strings.NewReader(string(rawPayload)))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&payload))
	assert.Equal(t, json.Number("42"), payload["sub"])
	assert.Equal(t, json.Number("1700007200"), payload["exp"])
}
