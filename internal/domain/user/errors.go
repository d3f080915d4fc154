package user

import "errors"

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrSignInRequired           = errors.New("sign in required")
	ErrManagerAccessRequired    = errors.New("manager access required")
	ErrSuperAdminAccessRequired = errors.New("super admin access required")
)
