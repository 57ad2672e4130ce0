package project

import "errors"

// Allocation domain errors
var (
	ErrAllocationOutOfRange = errors.New("allocation must be between 0 and 1")
	ErrOverAllocated        = errors.New("total allocation exceeds a full-time position")
)
