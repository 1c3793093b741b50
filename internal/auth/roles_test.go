package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckAdmin(t *testing.T) {
	tests := []struct {
		name   string
		claims *Claims
		want   bool
	}{
		{name: "admin role", claims: &Claims{Role: "admin"}, want: true},
		{name: "user role", claims: &Claims{Role: "user"}, want: false},
		{name: "empty role", claims: &Claims{Role: ""}, want: false},
		{name: "case mismatch", claims: &Claims{Role: "Admin"}, want: false},
		{name: "uppercase", claims: &Claims{Role: "ADMIN"}, want: false},
		{name: "padded", claims: &Claims{Role: " admin"}, want: false},
		{name: "nil claims", claims: nil, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CheckAdmin(tc.claims))
		})
	}
}
