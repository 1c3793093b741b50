package admission

import (
	"context"
	"time"

	"github.com/VictorHerdz10/ACRP-API/internal/auth"
	"github.com/VictorHerdz10/ACRP-API/internal/ratelimit"
)

// Outcome tags the admission result for one request.
type Outcome int

const (
	Admitted Outcome = iota
	RateLimited
	Unauthenticated
	Forbidden
)

// Result is the single admission decision produced per request. Claims
// is set only when the outcome is Admitted; RetryAfter only when it is
// RateLimited.
type Result struct {
	Outcome    Outcome
	Claims     *auth.Claims
	RetryAfter time.Duration
}

// Governor composes the rate limiter, token verification, and role gate
// into one short-circuiting admission decision per inbound request.
type Governor struct {
	limiter *ratelimit.Limiter
	tokens  *auth.TokenManager
}

// NewGovernor wires the admission dependencies.
func NewGovernor(limiter *ratelimit.Limiter, tokens *auth.TokenManager) *Governor {
	return &Governor{limiter: limiter, tokens: tokens}
}

// AdmitRequest runs the checks in fixed order: rate limit first (before
// any token work is spent), then token presence, verification, and
// finally the role gate when requireAdmin is set. bearer is the raw
// presented token, empty when the request carried none. The returned
// error is reserved for window-store failures; every policy rejection is
// a Result.
func (g *Governor) AdmitRequest(ctx context.Context, clientKey, bearer string, requireAdmin bool, rule ratelimit.Rule) (Result, error) {
	decision, err := g.limiter.Admit(ctx, clientKey, rule)
	if err != nil {
		return Result{}, err
	}
	if !decision.Allowed {
		return Result{Outcome: RateLimited, RetryAfter: decision.RetryAfter}, nil
	}

	if bearer == "" {
		return Result{Outcome: Unauthenticated}, nil
	}

	claims, err := g.tokens.Verify(bearer)
	if err != nil {
		return Result{Outcome: Unauthenticated}, nil
	}

	if requireAdmin && !auth.CheckAdmin(claims) {
		return Result{Outcome: Forbidden}, nil
	}

	return Result{Outcome: Admitted, Claims: claims}, nil
}

// CheckLimit runs only the rate-limiting step, for routes that accept
// anonymous callers but still count against the quota.
func (g *Governor) CheckLimit(ctx context.Context, clientKey string, rule ratelimit.Rule) (Result, error) {
	decision, err := g.limiter.Admit(ctx, clientKey, rule)
	if err != nil {
		return Result{}, err
	}
	if !decision.Allowed {
		return Result{Outcome: RateLimited, RetryAfter: decision.RetryAfter}, nil
	}
	return Result{Outcome: Admitted}, nil
}
