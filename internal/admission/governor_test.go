package admission

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/VictorHerdz10/ACRP-API/internal/auth"
	"github.com/VictorHerdz10/ACRP-API/internal/config"
	"github.com/VictorHerdz10/ACRP-API/internal/ratelimit"
)

func newTestGovernor(t *testing.T) (*Governor, *auth.TokenManager) {
	t.Helper()
	tokens, err := auth.NewTokenManager(config.AuthConfig{
		JWTSecret:       "0123456789abcdef0123456789abcdef",
		Issuer:          "acrp-api",
		Audience:        "acrp-clients",
		TokenTTLMinutes: 60,
	})
	require.NoError(t, err)
	limiter := ratelimit.New(ratelimit.NewMemoryStore(0))
	return NewGovernor(limiter, tokens), tokens
}

func wideRule() ratelimit.Rule {
	return ratelimit.Rule{Scope: "test", Limit: 100, PeriodSeconds: 60}
}

func TestAdmitRequestWithValidAdminToken(t *testing.T) {
	g, tokens := newTestGovernor(t)
	token, _, err := tokens.Issue("user-1", "admin@example.com", "admin")
	require.NoError(t, err)

	result, err := g.AdmitRequest(context.Background(), "1.2.3.4", token, true, wideRule())
	require.NoError(t, err)
	require.Equal(t, Admitted, result.Outcome)
	require.NotNil(t, result.Claims)
	require.Equal(t, "admin@example.com", result.Claims.Email)
	require.Equal(t, "user-1", result.Claims.Subject)
}

func TestAdmitRequestNonAdminForbidden(t *testing.T) {
	g, tokens := newTestGovernor(t)
	token, _, err := tokens.Issue("user-2", "u@example.com", "user")
	require.NoError(t, err)

	result, err := g.AdmitRequest(context.Background(), "1.2.3.4", token, true, wideRule())
	require.NoError(t, err)
	require.Equal(t, Forbidden, result.Outcome)
	require.Nil(t, result.Claims)
}

func TestAdmitRequestNonAdminAllowedWhenRoleNotRequired(t *testing.T) {
	g, tokens := newTestGovernor(t)
	token, _, err := tokens.Issue("user-2", "u@example.com", "user")
	require.NoError(t, err)

	result, err := g.AdmitRequest(context.Background(), "1.2.3.4", token, false, wideRule())
	require.NoError(t, err)
	require.Equal(t, Admitted, result.Outcome)
}

func TestAdmitRequestMissingToken(t *testing.T) {
	g, _ := newTestGovernor(t)

	result, err := g.AdmitRequest(context.Background(), "1.2.3.4", "", false, wideRule())
	require.NoError(t, err)
	require.Equal(t, Unauthenticated, result.Outcome)
}

func TestAdmitRequestInvalidToken(t *testing.T) {
	g, _ := newTestGovernor(t)

	result, err := g.AdmitRequest(context.Background(), "1.2.3.4", "garbage.token.here", true, wideRule())
	require.NoError(t, err)
	require.Equal(t, Unauthenticated, result.Outcome)
}

// Rate limiting is checked before any token work: unauthenticated
// requests still consume quota, and once exhausted the outcome flips
// from Unauthenticated to RateLimited.
func TestRateLimitPrecedesAuthentication(t *testing.T) {
	g, _ := newTestGovernor(t)
	rule := ratelimit.Rule{Scope: "tight", Limit: 1, PeriodSeconds: 60}

	result, err := g.AdmitRequest(context.Background(), "9.9.9.9", "", false, rule)
	require.NoError(t, err)
	require.Equal(t, Unauthenticated, result.Outcome)

	result, err = g.AdmitRequest(context.Background(), "9.9.9.9", "", false, rule)
	require.NoError(t, err)
	require.Equal(t, RateLimited, result.Outcome)
	require.Greater(t, result.RetryAfter, time.Duration(0))
}

func TestRateLimitPrecedesRoleCheck(t *testing.T) {
	g, tokens := newTestGovernor(t)
	token, _, err := tokens.Issue("user-1", "admin@example.com", "admin")
	require.NoError(t, err)
	rule := ratelimit.Rule{Scope: "tight2", Limit: 1, PeriodSeconds: 60}

	result, err := g.AdmitRequest(context.Background(), "8.8.8.8", token, true, rule)
	require.NoError(t, err)
	require.Equal(t, Admitted, result.Outcome)

	// A perfectly valid admin token does not bypass the quota.
	result, err = g.AdmitRequest(context.Background(), "8.8.8.8", token, true, rule)
	require.NoError(t, err)
	require.Equal(t, RateLimited, result.Outcome)
}

func TestCheckLimitAllowsAnonymous(t *testing.T) {
	g, _ := newTestGovernor(t)
	rule := ratelimit.Rule{Scope: "anon", Limit: 2, PeriodSeconds: 60}

	for i := 0; i < 2; i++ {
		result, err := g.CheckLimit(context.Background(), "7.7.7.7", rule)
		require.NoError(t, err)
		require.Equal(t, Admitted, result.Outcome)
	}

	result, err := g.CheckLimit(context.Background(), "7.7.7.7", rule)
	require.NoError(t, err)
	require.Equal(t, RateLimited, result.Outcome)
}
