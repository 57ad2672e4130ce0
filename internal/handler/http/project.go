package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffport/attendance-report-go/internal/domain/project"
	"github.com/staffport/attendance-report-go/internal/handler/http/response"
	"github.com/staffport/attendance-report-go/internal/pkg/validator"
)

type ProjectHandler interface {
	GetAllocationStatus(w http.ResponseWriter, r *http.Request)
	CheckMembership(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	allocationService project.AllocationService
}

func NewProjectHandler(allocationService project.AllocationService) ProjectHandler {
	return &projectHandlerImpl{
		allocationService: allocationService,
	}
}

// GetAllocationStatus implements ProjectHandler.
func (h *projectHandlerImpl) GetAllocationStatus(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if validator.IsEmpty(userID) {
		response.BadRequest(w, "userID is required", nil)
		return
	}

	result, err := h.allocationService.GetUserAllocationStatus(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to get allocation status", "user_id", userID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CheckMembership implements ProjectHandler.
func (h *projectHandlerImpl) CheckMembership(w http.ResponseWriter, r *http.Request) {
	var req project.MembershipCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.allocationService.CheckMembership(r.Context(), req)
	if err != nil {
		slog.Error("Failed to check membership allocation", "user_id", req.UserID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
