package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/talentwatch/retention-backend-go/internal/domain/user"
	"github.com/talentwatch/retention-backend-go/internal/handler/http/response"
)

// RequireManager requires the manager role. Super admins pass too.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		if isSuperAdmin(claims) {
			next.ServeHTTP(w, r)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok || user.Role(roleStr) != user.RoleManager {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isSuperAdmin(claims map[string]interface{}) bool {
	super, ok := claims["is_super_admin"].(bool)
	return ok && super
}
