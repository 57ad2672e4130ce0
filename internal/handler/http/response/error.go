package response

import (
	"errors"
	"net/http"

	"github.com/staffport/attendance-report-go/internal/domain/attendance"
	"github.com/staffport/attendance-report-go/internal/domain/project"
	"github.com/staffport/attendance-report-go/internal/pkg/validator"
	"github.com/staffport/attendance-report-go/internal/repository/upstream"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Attendance domain errors
	switch {
	case errors.Is(err, attendance.ErrEntryNotFound):
		NotFound(w, "Attendance entry not found")
	case errors.Is(err, attendance.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, attendance.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Allocation domain errors
	case errors.Is(err, project.ErrAllocationOutOfRange):
		BadRequest(w, "Allocation must be between 0 and 1", nil)
	case errors.Is(err, project.ErrOverAllocated):
		Conflict(w, "Total allocation exceeds a full-time position")

	// Upstream failures
	default:
		var statusErr *upstream.StatusError
		if errors.As(err, &statusErr) {
			switch statusErr.StatusCode {
			case http.StatusUnauthorized:
				Unauthorized(w, "Upstream rejected the access token")
			case http.StatusNotFound:
				NotFound(w, "Resource not found")
			default:
				BadGateway(w, "The HR backend could not process the request")
			}
			return
		}
		InternalServerError(w, "An unexpected error occurred")
	}
}
