package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrIDNumberExists      = errors.New("id number already registered")
	ErrEmployeeAlreadyLeft = errors.New("employee is already marked as left")
	ErrInvalidScore        = errors.New("score must be between 0 and 5")
	ErrInvalidReplacement  = errors.New("replacement_needed must be yes, no or undecided")
	ErrStartDateRequired   = errors.New("start date is required")
)
