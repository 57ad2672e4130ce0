package upstream

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/staffport/attendance-report-go/internal/domain/attendance"
	"github.com/staffport/attendance-report-go/internal/pkg/authtoken"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T, handler http.HandlerFunc) (attendance.AttendanceRepository, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewAttendanceRepository(NewClient(server.URL, 5*time.Second)), server
}

func TestGetMonthly_FlatMapShape(t *testing.T) {
	var gotPath, gotBuster, gotAuth string
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBuster = r.URL.Query().Get("t")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {
				"attendanceData": {
					"2024-06-03": {"clockIn": "09:00 JST", "clockOut": "18:00", "workHours": 8},
					"2024-06-04": null
				},
				"monthlyStats": {"lateCount": 2},
				"workSettings": {"workStartTime": "09:30"}
			}
		}`))
	})

	ctx := authtoken.WithToken(context.Background(), "raw-token")
	payload, err := repo.GetMonthly(ctx, 2024, 6)
	require.NoError(t, err)

	assert.Equal(t, "/attendance/monthly/2024/6", gotPath)
	assert.NotEmpty(t, gotBuster, "monthly fetch must carry a cache-buster")
	assert.Equal(t, "Bearer raw-token", gotAuth)

	require.Len(t, payload.Entries, 1)
	entry := payload.Entries["2024-06-03"]
	require.NotNil(t, entry)
	assert.Equal(t, "2024-06-03", entry.Date)
	assert.Equal(t, "09:00 JST", entry.ClockIn)

	assert.Equal(t, float64(2), payload.Stats["lateCount"])
	require.NotNil(t, payload.Settings)
	assert.Equal(t, "09:30", payload.Settings.WorkStartTime)
}

func TestGetMonthly_UsersShape(t *testing.T) {
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {
				"users": [
					{
						"user": {"id": "user-1"},
						"entries": [
							{"date": "2024-06-03", "clockIn": "09:00", "clockOut": "18:00"},
							{"date": "2024-06-04", "leaveType": "有給"}
						]
					}
				]
			}
		}`))
	})

	payload, err := repo.GetMonthly(context.Background(), 2024, 6)
	require.NoError(t, err)

	require.Len(t, payload.Entries, 2)
	assert.Equal(t, "user-1", payload.Entries["2024-06-03"].UserID)
	assert.Equal(t, "有給", payload.Entries["2024-06-04"].LeaveType)
}

func TestGetMonthly_EntriesShape(t *testing.T) {
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {
				"entries": [
					{"date": "2024-06-03", "clockIn": "10:00", "clockOut": "19:00"}
				]
			}
		}`))
	})

	payload, err := repo.GetMonthly(context.Background(), 2024, 6)
	require.NoError(t, err)

	require.Len(t, payload.Entries, 1)
	assert.Equal(t, "10:00", payload.Entries["2024-06-03"].ClockIn)
}

func TestGetMonthly_EmptyUnknownShape(t *testing.T) {
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {}}`))
	})

	payload, err := repo.GetMonthly(context.Background(), 2024, 6)
	require.NoError(t, err)
	assert.Empty(t, payload.Entries)
}

func TestGetWorkSettings_Flat(t *testing.T) {
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"workStartTime": "08:45", "overtimeThreshold": 7.5}`))
	})

	settings, err := repo.GetWorkSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "08:45", settings.WorkStartTime)
	require.NotNil(t, settings.OvertimeThreshold)
	assert.Equal(t, 7.5, *settings.OvertimeThreshold)
}

func TestGetWorkSettings_Enveloped(t *testing.T) {
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"workStartTime": "10:00"}}`))
	})

	settings, err := repo.GetWorkSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10:00", settings.WorkStartTime)
}

func TestApproveLeave_MapsUpstreamStatuses(t *testing.T) {
	status := http.StatusOK
	var gotMethod, gotPath string
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(status)
	})

	require.NoError(t, repo.ApproveLeave(context.Background(), "leave-1"))
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/attendance/approve-leave/leave-1", gotPath)

	status = http.StatusNotFound
	assert.ErrorIs(t, repo.ApproveLeave(context.Background(), "leave-1"), attendance.ErrLeaveRequestNotFound)

	status = http.StatusConflict
	assert.ErrorIs(t, repo.RejectLeave(context.Background(), "leave-1"), attendance.ErrLeaveAlreadyProcessed)
}

func TestUpdateEntry_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := repo.UpdateEntry(context.Background(), attendance.UpdateEntryRequest{UserID: "u", Date: "2024-06-03"})
	assert.ErrorIs(t, err, attendance.ErrEntryNotFound)
}

func TestSaveBulkTransportation_SendsBatch(t *testing.T) {
	var gotBody string
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = string(body)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	})

	batch := attendance.BulkTransportationBatch{
		Registrations: []attendance.TransportationRegistration{
			{ID: "r1", UserID: "u1", Amount: 500, Date: "2024-06-01", Year: 2024, Month: 6},
		},
	}
	require.NoError(t, repo.SaveBulkTransportation(context.Background(), batch))
	assert.Contains(t, gotBody, `"registrations"`)
	assert.Contains(t, gotBody, `"2024-06-01"`)
}
