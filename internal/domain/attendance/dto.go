package attendance

import (
	"github.com/staffport/attendance-report-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// UpdateEntryRequest is a manual attendance correction submitted by a
// manager, forwarded to the upstream misc/update endpoint.
type UpdateEntryRequest struct {
	UserID             string   `json:"userId"`
	Date               string   `json:"date"`
	ClockIn            string   `json:"clockIn,omitempty"`
	ClockOut           string   `json:"clockOut,omitempty"`
	WorkHours          *float64 `json:"workHours,omitempty"`
	TransportationCost *int     `json:"transportationCost,omitempty"`
	LeaveType          string   `json:"leaveType,omitempty"`
	Note               string   `json:"note,omitempty"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Message: "userId is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.ClockIn != "" && !validator.IsValidClockTime(r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clockIn",
			Message: "clockIn must be in HH:MM format",
		})
	}

	if r.ClockOut != "" && !validator.IsValidClockTime(r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "clockOut",
			Message: "clockOut must be in HH:MM format",
		})
	}

	if r.WorkHours != nil && *r.WorkHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "workHours",
			Message: "workHours must not be negative",
		})
	}

	if r.TransportationCost != nil && *r.TransportationCost < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "transportationCost",
			Message: "transportationCost must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WorkReportRequest is a monthly work summary submission.
type WorkReportRequest struct {
	UserID  string `json:"userId"`
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Summary string `json:"summary"`
}

func (r *WorkReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Message: "userId is required",
		})
	}

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if validator.IsEmpty(r.Summary) {
		errs = append(errs, validator.ValidationError{
			Field:   "summary",
			Message: "summary is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BulkTransportationRequest registers one daily transportation amount for
// every calendar day of the target month.
type BulkTransportationRequest struct {
	UserID string `json:"userId"`
	Amount int    `json:"amount"`
	Year   int    `json:"year"`
	Month  int    `json:"month"`
}

func (r *BulkTransportationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Message: "userId is required",
		})
	}

	if r.Amount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	}

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// TransportationRegistration is one expanded daily registration inside a
// bulk batch sent upstream.
type TransportationRegistration struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Amount int    `json:"amount"`
	Date   string `json:"date"`
	Year   int    `json:"year"`
	Month  int    `json:"month"`
}

// BulkTransportationBatch is the upstream batch payload.
type BulkTransportationBatch struct {
	Registrations []TransportationRegistration `json:"registrations"`
}

// MonthlyAttendanceResponse is the combined month view served to clients:
// annotated entries plus merged statistics. MonthlyStats stays a map so
// upstream-only fields and the preserved apiLateCount ride along with the
// locally recomputed values.
type MonthlyAttendanceResponse struct {
	Year           int               `json:"year"`
	Month          int               `json:"month"`
	AttendanceData map[string]*Entry `json:"attendanceData"`
	MonthlyStats   map[string]any    `json:"monthlyStats"`
	WorkSettings   WorkSettings      `json:"workSettings"`
}
