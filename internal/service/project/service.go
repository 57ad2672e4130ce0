package project

import (
	"context"
	"fmt"
	"math"

	"github.com/staffport/attendance-report-go/internal/domain/project"
)

type AllocationServiceImpl struct {
	project.ProjectRepository
}

func NewAllocationService(projectRepo project.ProjectRepository) project.AllocationService {
	return &AllocationServiceImpl{
		ProjectRepository: projectRepo,
	}
}

// ValidateAllocation is the single allocation rule every caller shares:
// a candidate fraction outside [0, 1] is a hard error, and a combined
// workload above a full-time position is ErrOverAllocated. Callers decide
// whether the latter blocks or merely warns.
func ValidateAllocation(candidate, othersSum float64) error {
	if candidate < 0 || candidate > 1 {
		return project.ErrAllocationOutOfRange
	}
	if candidate+othersSum > 1.0 {
		return project.ErrOverAllocated
	}
	return nil
}

// AllocationStatusFor derives the workload summary for a total allocation.
func AllocationStatusFor(total float64) project.AllocationStatus {
	return project.AllocationStatus{
		Total:           total,
		Remaining:       math.Max(0, 1-total),
		IsOverAllocated: total > 1.0,
		Percentage:      int(math.Round(total * 100)),
	}
}

// CalculateTotalAllocation implements project.AllocationService.
func (s *AllocationServiceImpl) CalculateTotalAllocation(ctx context.Context, userID, excludeProjectID string) (float64, error) {
	projects, err := s.ProjectRepository.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get projects: %w", err)
	}

	var total float64
	for _, p := range projects {
		if excludeProjectID != "" && p.ID == excludeProjectID {
			continue
		}
		for _, m := range p.Members {
			if m.UserID == userID {
				total += m.Allocation
			}
		}
	}
	return total, nil
}

// GetUserAllocationStatus implements project.AllocationService.
func (s *AllocationServiceImpl) GetUserAllocationStatus(ctx context.Context, userID string) (project.AllocationStatus, error) {
	total, err := s.CalculateTotalAllocation(ctx, userID, "")
	if err != nil {
		return project.AllocationStatus{}, err
	}
	return AllocationStatusFor(total), nil
}

// CheckMembership implements project.AllocationService.
func (s *AllocationServiceImpl) CheckMembership(ctx context.Context, req project.MembershipCheckRequest) (project.MembershipCheckResponse, error) {
	if err := req.Validate(); err != nil {
		return project.MembershipCheckResponse{}, err
	}

	othersSum, err := s.CalculateTotalAllocation(ctx, req.UserID, req.ProjectID)
	if err != nil {
		return project.MembershipCheckResponse{}, err
	}

	candidate := *req.Allocation
	resp := project.MembershipCheckResponse{
		Allocation: candidate,
		Status:     AllocationStatusFor(othersSum + candidate),
	}

	switch err := ValidateAllocation(candidate, othersSum); err {
	case nil:
	case project.ErrOverAllocated:
		// Advisory: the membership can still be saved, the caller shows a
		// warning instead of blocking.
		resp.OverAllocated = true
		resp.Warning = err.Error()
	default:
		return project.MembershipCheckResponse{}, err
	}

	return resp, nil
}
