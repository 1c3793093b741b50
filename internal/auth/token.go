package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/VictorHerdz10/ACRP-API/internal/config"
)

// ErrTokenInvalid is returned for every verification failure: bad
// signature, wrong issuer or audience, malformed token, or expiry.
// Collapsing the causes keeps callers from probing why a token was
// rejected.
var ErrTokenInvalid = errors.New("invalid token")

// Claims is the identity embedded in a signed token. The role is a
// snapshot taken at issuance; later role changes in the store do not
// affect tokens already in flight.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HMAC-signed identity tokens.
type TokenManager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewTokenManager builds a manager from auth configuration. The secret
// length floor is enforced here as well as in config validation so the
// manager cannot be constructed unsafely from other entry points.
func NewTokenManager(cfg config.AuthConfig) (*TokenManager, error) {
	if len(cfg.JWTSecret) < config.MinSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d bytes", config.MinSecretLength)
	}
	if cfg.Issuer == "" || cfg.Audience == "" {
		return nil, fmt.Errorf("jwt issuer and audience must be configured")
	}
	ttlMinutes := cfg.TokenTTLMinutes
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &TokenManager{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      time.Duration(ttlMinutes) * time.Minute,
	}, nil
}

// Issue builds and signs a token for the subject.
func (tm *TokenManager) Issue(subjectID, email, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			Issuer:    tm.issuer,
			Audience:  jwt.ClaimStrings{tm.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify checks signature, issuer, audience, and expiry, returning the
// embedded claims. Pure and idempotent; no store access.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, ErrTokenInvalid
			}
			return tm.secret, nil
		},
		jwt.WithIssuer(tm.issuer),
		jwt.WithAudience(tm.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
