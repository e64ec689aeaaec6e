package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/opsuite/payroll-backend-go/internal/handler/http/response"
	"github.com/opsuite/payroll-backend-go/internal/pkg/jwt"
)

// RequireRole allows only the listed operator roles.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			role, ok := claims["role"].(string)
			if !ok {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, fmt.Sprintf("Insufficient permissions for role '%s'", role))
		})
	}
}

// RequireHR requires the hr role.
func RequireHR(next http.Handler) http.Handler {
	return RequireRole(jwt.RoleHR)(next)
}

// RequireAccountant requires the accountant role.
func RequireAccountant(next http.Handler) http.Handler {
	return RequireRole(jwt.RoleAccountant)(next)
}

// AnyOperator admits every recognised operator role.
func AnyOperator(next http.Handler) http.Handler {
	return RequireRole(jwt.RoleRateSetter, jwt.RoleAccountant, jwt.RoleHR)(next)
}
