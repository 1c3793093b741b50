package admission

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/VictorHerdz10/ACRP-API/internal/auth"
	"github.com/VictorHerdz10/ACRP-API/internal/ratelimit"
	"github.com/VictorHerdz10/ACRP-API/pkg/util"
)

const claimsKey = "admission_claims"

// Guard returns route middleware that takes the full admission decision
// (rate limit, token, role) before the handler runs. Rejections surface
// as DomainErrors so the global error middleware renders the canonical
// envelope with 429/401/403.
func (g *Governor) Guard(rule ratelimit.Rule, requireAdmin bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := g.AdmitRequest(c.UserContext(), c.IP(), bearerToken(c), requireAdmin, rule)
		if err != nil {
			return util.NewInternalError(err)
		}
		if err := rejectionError(c, result); err != nil {
			return err
		}
		c.Locals(claimsKey, result.Claims)
		return c.Next()
	}
}

// Limit returns middleware enforcing only the rate step, for routes that
// allow anonymous callers (register, login). Quota is still consumed
// before any credential work happens.
func (g *Governor) Limit(rule ratelimit.Rule) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := g.CheckLimit(c.UserContext(), c.IP(), rule)
		if err != nil {
			return util.NewInternalError(err)
		}
		if err := rejectionError(c, result); err != nil {
			return err
		}
		return c.Next()
	}
}

func rejectionError(c *fiber.Ctx, result Result) error {
	switch result.Outcome {
	case RateLimited:
		seconds := int64(math.Ceil(result.RetryAfter.Seconds()))
		if seconds < 1 {
			seconds = 1
		}
		c.Set(fiber.HeaderRetryAfter, strconv.FormatInt(seconds, 10))
		return util.NewRateLimited("rate limit exceeded, retry later")
	case Unauthenticated:
		return util.NewUnauthorized("user is not authenticated")
	case Forbidden:
		return util.NewForbidden("you are not allowed to perform this action")
	}
	return nil
}

// ClaimsFromContext retrieves the admitted caller's claims.
func ClaimsFromContext(c *fiber.Ctx) (*auth.Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*auth.Claims)
	return claims, ok && claims != nil
}

// RewriteUnauthorized normalizes 401 responses produced outside the
// governor (framework-level rejections, handlers writing the status
// directly) into the canonical envelope, so callers see one error shape
// regardless of which layer rejected the request.
func RewriteUnauthorized() fiber.Handler {
	body := []byte(`{"Message":"user is not authenticated"}`)
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil {
			return err
		}
		if c.Response().StatusCode() == fiber.StatusUnauthorized && !isEnvelope(c.Response().Body()) {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Status(fiber.StatusUnauthorized).Send(body)
		}
		return nil
	}
}

func isEnvelope(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return bytes.HasPrefix(trimmed, []byte("{")) && bytes.Contains(trimmed, []byte(`"Message"`))
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
