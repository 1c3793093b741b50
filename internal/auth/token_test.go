package auth

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/VictorHerdz10/ACRP-API/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:       testSecret,
		Issuer:          "acrp-api",
		Audience:        "acrp-clients",
		TokenTTLMinutes: 60,
	}
}

func newTestManager(t *testing.T) *TokenManager {
	t.Helper()
	tm, err := NewTokenManager(testAuthConfig())
	require.NoError(t, err)
	return tm
}

// signRaw builds a token outside the manager so tests can vary secret,
// issuer, audience, and expiry independently.
func signRaw(t *testing.T, secret, issuer, audience string, expiresAt time.Time) string {
	t.Helper()
	claims := &Claims{
		Email: "admin@example.com",
		Role:  "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestNewTokenManagerRejectsWeakSecret(t *testing.T) {
	cfg := testAuthConfig()
	cfg.JWTSecret = "short"
	_, err := NewTokenManager(cfg)
	require.Error(t, err)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	tm := newTestManager(t)

	token, expiresAt, err := tm.Issue("user-42", "ana@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(60*time.Minute), expiresAt, 5*time.Second)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-42", claims.Subject)
	require.Equal(t, "ana@example.com", claims.Email)
	require.Equal(t, "admin", claims.Role)
	require.WithinDuration(t, expiresAt, claims.ExpiresAt.Time, time.Second)
}

func TestVerifyFailuresCollapseToOneError(t *testing.T) {
	tm := newTestManager(t)
	cfg := testAuthConfig()
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "expired token with valid signature",
			token: signRaw(t, testSecret, cfg.Issuer, cfg.Audience, time.Now().Add(-time.Minute)),
		},
		{
			name:  "wrong secret",
			token: signRaw(t, "ffffffffffffffffffffffffffffffff", cfg.Issuer, cfg.Audience, future),
		},
		{
			name:  "wrong issuer",
			token: signRaw(t, testSecret, "someone-else", cfg.Audience, future),
		},
		{
			name:  "wrong audience",
			token: signRaw(t, testSecret, cfg.Issuer, "other-clients", future),
		},
		{
			name:  "garbage",
			token: "not.a.jwt",
		},
		{
			name:  "empty",
			token: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := tm.Verify(tc.token)
			require.Nil(t, claims)
			require.ErrorIs(t, err, ErrTokenInvalid)
			// The error text must not leak which check failed.
			require.Equal(t, ErrTokenInvalid.Error(), err.Error())
		})
	}
}

func TestVerifyRejectsAlternateSigningMethod(t *testing.T) {
	tm := newTestManager(t)
	cfg := testAuthConfig()

	claims := &Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.Verify(signed)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestIssuedTokenIsOpaqueSigned(t *testing.T) {
	tm := newTestManager(t)
	token, _, err := tm.Issue("user-1", "a@b.c", "user")
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)
}
