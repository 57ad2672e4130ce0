package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/staffport/attendance-report-go/internal/domain/attendance"
)

type AttendanceRepository struct {
	client *Client
}

func NewAttendanceRepository(client *Client) attendance.AttendanceRepository {
	return &AttendanceRepository{client: client}
}

// monthlyEnvelope tolerates the response shapes the upstream produces for
// different caller roles: a flat date map, a bare entry list, or an admin
// view wrapping each user's entries. Which role yields which shape is an
// upstream contract, not something this layer infers.
type monthlyEnvelope struct {
	Data struct {
		AttendanceData map[string]*attendance.Entry `json:"attendanceData"`
		Users          []struct {
			User struct {
				ID string `json:"id"`
			} `json:"user"`
			Entries []*attendance.Entry `json:"entries"`
		} `json:"users"`
		Entries      []*attendance.Entry      `json:"entries"`
		MonthlyStats map[string]any           `json:"monthlyStats"`
		WorkSettings *attendance.WorkSettings `json:"workSettings"`
	} `json:"data"`
}

// GetMonthly implements attendance.AttendanceRepository.
func (r *AttendanceRepository) GetMonthly(ctx context.Context, year, month int) (attendance.MonthlyPayload, error) {
	// Cache-buster so intermediate proxies never serve a stale month.
	query := url.Values{"t": {strconv.FormatInt(time.Now().UnixMilli(), 10)}}

	var env monthlyEnvelope
	path := fmt.Sprintf("/attendance/monthly/%d/%d", year, month)
	if err := r.client.get(ctx, path, query, &env); err != nil {
		return attendance.MonthlyPayload{}, fmt.Errorf("failed to fetch monthly attendance: %w", err)
	}

	entries := make(map[string]*attendance.Entry)
	switch {
	case len(env.Data.AttendanceData) > 0:
		for date, entry := range env.Data.AttendanceData {
			if entry == nil {
				continue
			}
			if entry.Date == "" {
				entry.Date = date
			}
			entries[date] = entry
		}
	case len(env.Data.Users) > 0:
		for _, u := range env.Data.Users {
			for _, entry := range u.Entries {
				if entry == nil || entry.Date == "" {
					continue
				}
				if entry.UserID == "" {
					entry.UserID = u.User.ID
				}
				entries[entry.Date] = entry
			}
		}
	default:
		for _, entry := range env.Data.Entries {
			if entry == nil || entry.Date == "" {
				continue
			}
			entries[entry.Date] = entry
		}
	}

	return attendance.MonthlyPayload{
		Entries:  entries,
		Stats:    env.Data.MonthlyStats,
		Settings: env.Data.WorkSettings,
	}, nil
}

// workSettingsEnvelope accepts both the enveloped and the flat settings
// payload: the embedded struct captures flat responses, Data wrapped ones.
type workSettingsEnvelope struct {
	attendance.WorkSettings
	Data *attendance.WorkSettings `json:"data"`
}

// GetWorkSettings implements attendance.AttendanceRepository.
func (r *AttendanceRepository) GetWorkSettings(ctx context.Context) (attendance.WorkSettings, error) {
	var env workSettingsEnvelope
	if err := r.client.get(ctx, "/attendance/work-settings", nil, &env); err != nil {
		return attendance.WorkSettings{}, fmt.Errorf("failed to fetch work settings: %w", err)
	}
	if env.Data != nil {
		return *env.Data, nil
	}
	return env.WorkSettings, nil
}

// UpdateEntry implements attendance.AttendanceRepository.
func (r *AttendanceRepository) UpdateEntry(ctx context.Context, req attendance.UpdateEntryRequest) error {
	if err := r.client.post(ctx, "/attendance/misc/update", req); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return attendance.ErrEntryNotFound
		}
		return fmt.Errorf("failed to update attendance entry: %w", err)
	}
	return nil
}

// SubmitWorkReport implements attendance.AttendanceRepository.
func (r *AttendanceRepository) SubmitWorkReport(ctx context.Context, req attendance.WorkReportRequest) error {
	if err := r.client.post(ctx, "/attendance/work-report", req); err != nil {
		return fmt.Errorf("failed to submit work report: %w", err)
	}
	return nil
}

// ApproveLeave implements attendance.AttendanceRepository.
func (r *AttendanceRepository) ApproveLeave(ctx context.Context, id string) error {
	return r.leaveDecision(ctx, "/attendance/approve-leave/"+url.PathEscape(id))
}

// RejectLeave implements attendance.AttendanceRepository.
func (r *AttendanceRepository) RejectLeave(ctx context.Context, id string) error {
	return r.leaveDecision(ctx, "/attendance/reject-leave/"+url.PathEscape(id))
}

func (r *AttendanceRepository) leaveDecision(ctx context.Context, path string) error {
	if err := r.client.patch(ctx, path); err != nil {
		switch {
		case statusIs(err, http.StatusNotFound):
			return attendance.ErrLeaveRequestNotFound
		case statusIs(err, http.StatusConflict):
			return attendance.ErrLeaveAlreadyProcessed
		}
		return fmt.Errorf("failed to record leave decision: %w", err)
	}
	return nil
}

// SaveBulkTransportation implements attendance.AttendanceRepository.
func (r *AttendanceRepository) SaveBulkTransportation(ctx context.Context, batch attendance.BulkTransportationBatch) error {
	if err := r.client.post(ctx, "/attendance/misc/bulk-transportation", batch); err != nil {
		return fmt.Errorf("failed to save bulk transportation: %w", err)
	}
	return nil
}
