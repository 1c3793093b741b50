package ratelimit

import (
	"context"
	"time"
)

// Rule is one entry of the rate rule table: a quota of Limit requests
// per PeriodSeconds, bucketed under Scope.
type Rule struct {
	Scope         string
	Limit         int64
	PeriodSeconds int
}

// Period returns the window length.
func (r Rule) Period() time.Duration {
	return time.Duration(r.PeriodSeconds) * time.Second
}

// Decision is the limiter's verdict for one request. RetryAfter is only
// meaningful when Allowed is false.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Limiter enforces fixed-window quotas per client key over a WindowStore.
type Limiter struct {
	store WindowStore
	now   func() time.Time
}

// New builds a limiter over the given store.
func New(store WindowStore) *Limiter {
	return &Limiter{store: store, now: time.Now}
}

// Admit counts the request against the rule's window for clientKey and
// decides. The decision is made independent of authentication outcome;
// a rejected request carries the time until the window rolls over.
func (l *Limiter) Admit(ctx context.Context, clientKey string, rule Rule) (Decision, error) {
	now := l.now()
	key := rule.Scope + ":" + clientKey

	w, err := l.store.IncrOrReset(ctx, key, rule.Period(), now)
	if err != nil {
		return Decision{}, err
	}

	if w.Count > rule.Limit {
		retryAfter := w.Start.Add(rule.Period()).Sub(now)
		if retryAfter <= 0 {
			retryAfter = time.Second
		}
		return Decision{Allowed: false, RetryAfter: retryAfter}, nil
	}
	return Decision{Allowed: true}, nil
}
