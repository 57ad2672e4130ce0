package attendance

import (
	"context"
)

// AttendanceRepository defines access to attendance data held by the
// upstream HR backend. All methods forward the caller's bearer token from
// the context; none of them persist anything locally.
type AttendanceRepository interface {
	// GetMonthly retrieves one month of raw attendance, flattened from
	// whichever response shape the upstream produced for the caller's role.
	GetMonthly(ctx context.Context, year, month int) (MonthlyPayload, error)

	// GetWorkSettings retrieves the schedule configuration.
	GetWorkSettings(ctx context.Context) (WorkSettings, error)

	// UpdateEntry applies a manual attendance correction.
	UpdateEntry(ctx context.Context, req UpdateEntryRequest) error

	// SubmitWorkReport submits a monthly work summary.
	SubmitWorkReport(ctx context.Context, req WorkReportRequest) error

	// ApproveLeave / RejectLeave record a leave decision.
	ApproveLeave(ctx context.Context, id string) error
	RejectLeave(ctx context.Context, id string) error

	// SaveBulkTransportation submits a batch of daily registrations.
	SaveBulkTransportation(ctx context.Context, batch BulkTransportationBatch) error
}
