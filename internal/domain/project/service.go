package project

import "context"

// AllocationService defines cross-project workload validation.
type AllocationService interface {
	// CalculateTotalAllocation sums the user's allocation across every
	// project membership, optionally excluding one project (the one being
	// edited, so its old value does not double-count).
	CalculateTotalAllocation(ctx context.Context, userID, excludeProjectID string) (float64, error)

	// GetUserAllocationStatus derives the user's current workload summary.
	GetUserAllocationStatus(ctx context.Context, userID string) (AllocationStatus, error)

	// CheckMembership validates a candidate allocation for one membership
	// and reports the would-be total across all projects.
	CheckMembership(ctx context.Context, req MembershipCheckRequest) (MembershipCheckResponse, error)
}
