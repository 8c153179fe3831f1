package jwt

import (
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	_, err := NewService("secret", "HS256", time.Minute)
	require.NoError(t, err)

	_, err = NewService("secret", "HS512", time.Minute)
	require.NoError(t, err)

	_, err = NewService("secret", "RS256", time.Minute)
	require.Error(t, err)

	_, err = NewService("secret", "nope", time.Minute)
	require.Error(t, err)
}

func TestIssueAndValidate(t *testing.T) {
	svc, err := NewService("test-secret", "HS256", 15*time.Minute)
	require.NoError(t, err)

	token, expiresIn, err := svc.Issue(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, int64(900), expiresIn)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestValidate_Expired(t *testing.T) {
	// TTL of zero means the token is already past its expiry
	svc, err := NewService("test-secret", "HS256", 0)
	require.NoError(t, err)

	token, _, err := svc.Issue(1, "alice")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTokenExpired))
}

func TestValidate_WrongSecret(t *testing.T) {
	issuer, err := NewService("secret-one", "HS256", time.Minute)
	require.NoError(t, err)
	verifier, err := NewService("secret-two", "HS256", time.Minute)
	require.NoError(t, err)

	token, _, err := issuer.Issue(1, "alice")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}

func TestValidate_Malformed(t *testing.T) {
	svc, err := NewService("test-secret", "HS256", time.Minute)
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", "a.b.c", "a.b"} {
		_, err := svc.Validate(token)
		assert.True(t, errors.Is(err, ErrTokenInvalid), "token %q", token)
	}
}

func TestValidate_NoneAlgorithmRejected(t *testing.T) {
	svc, err := NewService("test-secret", "HS256", time.Minute)
	require.NoError(t, err)

	unsigned := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}

func TestValidate_MissingSubject(t *testing.T) {
	svc, err := NewService("test-secret", "HS256", time.Minute)
	require.NoError(t, err)

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate(signed)
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}
