package auth

import "github.com/VictorHerdz10/ACRP-API/internal/domain"

// CheckAdmin reports whether verified claims carry the admin role. The
// comparison is exact and case-sensitive; an empty or unknown role is
// non-admin. Callers must only reach this after token verification
// succeeds, so a false result means forbidden rather than
// unauthenticated.
func CheckAdmin(claims *Claims) bool {
	return claims != nil && claims.Role == domain.RoleAdmin
}
