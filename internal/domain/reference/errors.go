package reference

import "errors"

var (
	ErrUnknownKind        = errors.New("unknown reference kind")
	ErrReferenceNotFound  = errors.New("reference not found")
	ErrReferenceNameTaken = errors.New("reference name already exists for this kind")
	ErrReferenceInUse     = errors.New("reference is still assigned to employees")
)
