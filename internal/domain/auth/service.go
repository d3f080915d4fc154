package auth

import "context"

type AuthService interface {
	// Login verifies credentials and issues an access/refresh token pair
	// carrying the role and is_super_admin claims the analytics engine gates
	// computation on.
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, req RefreshRequest) (*LoginResponse, error)
}
