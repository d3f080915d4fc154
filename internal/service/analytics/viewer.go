package analytics

import (
	"context"

	"github.com/go-chi/jwtauth/v5"

	"github.com/talentwatch/retention-backend-go/internal/domain/user"
)

// Viewer carries the three auth facts the engine gates computation on.
// Gating means skipping the computation, not hiding its output.
type Viewer struct {
	SignedIn     bool
	IsManager    bool
	IsSuperAdmin bool
}

// ViewerFromContext derives the viewer facts from the JWT claims the auth
// middleware verified. A context without claims yields a signed-out viewer,
// for whom the engine computes no aggregates at all.
func ViewerFromContext(ctx context.Context) Viewer {
	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil || token == nil {
		return Viewer{}
	}

	v := Viewer{SignedIn: true}
	if role, ok := claims["role"].(string); ok {
		v.IsManager = user.Role(role) == user.RoleManager
	}
	if super, ok := claims["is_super_admin"].(bool); ok {
		v.IsSuperAdmin = super
	}
	// Super admins see everything a manager sees.
	if v.IsSuperAdmin {
		v.IsManager = true
	}
	return v
}
