package analytics

import "errors"

var (
	ErrUnknownDimension = errors.New("unknown drill-down dimension")
	ErrRangeRequired    = errors.New("min and max are required for bucket dimensions")
)
