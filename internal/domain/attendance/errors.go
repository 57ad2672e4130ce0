package attendance

import "errors"

// Attendance domain errors
var (
	ErrEntryNotFound         = errors.New("attendance entry not found")
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request has already been approved or rejected")
)
