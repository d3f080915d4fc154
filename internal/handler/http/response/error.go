package response

import (
	"errors"
	"net/http"

	"github.com/talentwatch/retention-backend-go/internal/domain/analytics"
	"github.com/talentwatch/retention-backend-go/internal/domain/auth"
	"github.com/talentwatch/retention-backend-go/internal/domain/employee"
	"github.com/talentwatch/retention-backend-go/internal/domain/reference"
	"github.com/talentwatch/retention-backend-go/internal/domain/user"
	"github.com/talentwatch/retention-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrSignInRequired):
		Unauthorized(w, "Sign in required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrSuperAdminAccessRequired):
		Forbidden(w, "Super admin access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrIDNumberExists):
		Conflict(w, "ID number already registered")
	case errors.Is(err, employee.ErrEmployeeAlreadyLeft):
		Conflict(w, "Employee already marked as left")
	case errors.Is(err, employee.ErrStartDateRequired),
		errors.Is(err, employee.ErrInvalidScore),
		errors.Is(err, employee.ErrInvalidReplacement):
		BadRequest(w, err.Error(), nil)

	// Reference domain errors
	case errors.Is(err, reference.ErrUnknownKind):
		NotFound(w, "Unknown reference kind")
	case errors.Is(err, reference.ErrReferenceNotFound):
		NotFound(w, "Reference not found")
	case errors.Is(err, reference.ErrReferenceNameTaken):
		Conflict(w, "Reference name already exists")
	case errors.Is(err, reference.ErrReferenceInUse):
		Conflict(w, "Reference is still assigned to employees")

	// Analytics domain errors
	case errors.Is(err, analytics.ErrUnknownDimension):
		BadRequest(w, "Unknown drill-down dimension", nil)
	case errors.Is(err, analytics.ErrRangeRequired):
		BadRequest(w, "Bucket dimensions require the clicked min/max range", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
