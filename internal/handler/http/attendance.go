package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/staffport/attendance-report-go/internal/domain/attendance"
	"github.com/staffport/attendance-report-go/internal/handler/http/response"
	"github.com/staffport/attendance-report-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	GetMonthly(w http.ResponseWriter, r *http.Request)
	GetWorkSettings(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	SubmitWorkReport(w http.ResponseWriter, r *http.Request)
	ApproveLeave(w http.ResponseWriter, r *http.Request)
	RejectLeave(w http.ResponseWriter, r *http.Request)
	SaveBulkTransportation(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// GetMonthly implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	year, errYear := strconv.Atoi(chi.URLParam(r, "year"))
	month, errMonth := strconv.Atoi(chi.URLParam(r, "month"))

	var errs validator.ValidationErrors
	if errYear != nil || !validator.IsValidYear(year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if errMonth != nil || !validator.IsValidMonth(month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	result, err := h.attendanceService.GetMonthlyData(r.Context(), year, month)
	if err != nil {
		slog.Error("Failed to get monthly attendance", "year", year, "month", month, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetWorkSettings implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetWorkSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetWorkSettings(r.Context())
	if err != nil {
		slog.Error("Failed to get work settings", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements AttendanceHandler.
func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.attendanceService.UpdateAttendance(r.Context(), req); err != nil {
		slog.Error("Failed to update attendance", "date", req.Date, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", nil)
}

// SubmitWorkReport implements AttendanceHandler.
func (h *attendanceHandlerImpl) SubmitWorkReport(w http.ResponseWriter, r *http.Request) {
	var req attendance.WorkReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.attendanceService.SubmitWorkReport(r.Context(), req); err != nil {
		slog.Error("Failed to submit work report", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work report submitted", nil)
}

// ApproveLeave implements AttendanceHandler.
func (h *attendanceHandlerImpl) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if validator.IsEmpty(id) {
		response.BadRequest(w, "Leave request id is required", nil)
		return
	}

	if err := h.attendanceService.ApproveLeave(r.Context(), id); err != nil {
		slog.Error("Failed to approve leave", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave approved", nil)
}

// RejectLeave implements AttendanceHandler.
func (h *attendanceHandlerImpl) RejectLeave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if validator.IsEmpty(id) {
		response.BadRequest(w, "Leave request id is required", nil)
		return
	}

	if err := h.attendanceService.RejectLeave(r.Context(), id); err != nil {
		slog.Error("Failed to reject leave", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave rejected", nil)
}

// SaveBulkTransportation implements AttendanceHandler.
func (h *attendanceHandlerImpl) SaveBulkTransportation(w http.ResponseWriter, r *http.Request) {
	var req attendance.BulkTransportationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.attendanceService.SaveBulkTransportation(r.Context(), req); err != nil {
		slog.Error("Failed to save bulk transportation", "year", req.Year, "month", req.Month, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transportation costs registered", nil)
}
