package project

import (
	"github.com/staffport/attendance-report-go/internal/pkg/validator"
)

// AllocationStatus summarizes one user's workload across all projects.
type AllocationStatus struct {
	Total           float64 `json:"total"`
	Remaining       float64 `json:"remaining"`
	IsOverAllocated bool    `json:"isOverAllocated"`
	Percentage      int     `json:"percentage"`
}

// MembershipCheckRequest validates a candidate allocation for one project
// membership against the user's other memberships. ProjectID names the
// project being edited so its current value is excluded from the sum.
type MembershipCheckRequest struct {
	UserID     string   `json:"userId"`
	ProjectID  string   `json:"projectId,omitempty"`
	Allocation *float64 `json:"allocation"`
}

func (r *MembershipCheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Message: "userId is required",
		})
	}

	if r.Allocation == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "allocation",
			Message: "allocation is required",
		})
	} else if !validator.IsValidAllocation(*r.Allocation) {
		errs = append(errs, validator.ValidationError{
			Field:   "allocation",
			Message: "allocation must be between 0 and 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MembershipCheckResponse reports the would-be total if the candidate
// allocation were saved. OverAllocated is advisory: callers decide whether
// to block or warn, but the rule behind it is computed in exactly one place.
type MembershipCheckResponse struct {
	Allocation    float64          `json:"allocation"`
	Status        AllocationStatus `json:"status"`
	OverAllocated bool             `json:"overAllocated"`
	Warning       string           `json:"warning,omitempty"`
}
