package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesto-be/internal/apperr"
)

func TestGenerateAndValidate_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("super-secret", 7*24*time.Hour)

	for _, userID := range []string{"u1", "2f1b9c2e-7a3d-4a59-9a43-8f4e0e5b6c11"} {
		tok, err := svc.GenerateToken(userID)
		require.NoError(t, err)

		got, err := svc.ValidateToken(tok)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	}
}

func TestGenerateToken_EmbedsIssuedAndExpiry(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc := NewJWTService("secret", 7*24*time.Hour)
	svc.now = func() time.Time { return fixed }

	tok, err := svc.GenerateToken("u1")
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwtlib.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)
	assert.Equal(t, fixed.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixed.Add(7*24*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestGenerateToken_EmptyUserID(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService("secret", time.Hour).GenerateToken("")
	assert.Error(t, err)
}

func TestValidateToken_Failures(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("right-secret", time.Hour)

	expired := NewJWTService("right-secret", -time.Second)
	expiredTok, err := expired.GenerateToken("u1")
	require.NoError(t, err)

	wrongKeyTok, err := NewJWTService("wrong-secret", time.Hour).GenerateToken("u1")
	require.NoError(t, err)

	noneTok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, Claims{
		UserID: "u1",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, Claims{UserID: "u1"}).
		SignedString([]byte("right-secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"expired":      expiredTok,
		"wrong secret": wrongKeyTok,
		"alg none":     noneTok,
		"no expiry":    noExpiry,
		"malformed":    "not.a.jwt",
		"empty":        "",
	}

	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(tok)
			require.Error(t, err)
			assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
			assert.EqualError(t, err, "unauthorized: Authorization required")
		})
	}
}
