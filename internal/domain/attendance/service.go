package attendance

import (
	"context"
)

// AttendanceService defines the month-view operations. Each viewer gets one
// session holding the currently viewed month; every successful mutation
// refetches that month rather than patching state locally.
type AttendanceService interface {
	// GetMonthlyData fetches a month, recomputes stats locally, merges them
	// over the upstream stats and annotates every entry with its lateness
	// verdict.
	GetMonthlyData(ctx context.Context, year, month int) (MonthlyAttendanceResponse, error)

	// GetWorkSettings fetches the schedule configuration and caches it on
	// the viewer's session.
	GetWorkSettings(ctx context.Context) (WorkSettings, error)

	// UpdateAttendance applies a manual correction, then refetches the
	// viewed month.
	UpdateAttendance(ctx context.Context, req UpdateEntryRequest) error

	// SubmitWorkReport submits a work summary, then refetches the viewed month.
	SubmitWorkReport(ctx context.Context, req WorkReportRequest) error

	// ApproveLeave / RejectLeave record a leave decision, then refetch.
	ApproveLeave(ctx context.Context, id string) error
	RejectLeave(ctx context.Context, id string) error

	// SaveBulkTransportation expands one amount over every calendar day of
	// the target month, submits the batch, then refetches.
	SaveBulkTransportation(ctx context.Context, req BulkTransportationRequest) error
}
