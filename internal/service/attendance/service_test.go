package attendance

import (
	"context"
	"errors"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffport/attendance-report-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	payload      attendance.MonthlyPayload
	monthlyErr   error
	monthlyCalls int

	updateErr error
	lastBatch attendance.BulkTransportationBatch
}

func (f *fakeAttendanceRepo) GetMonthly(ctx context.Context, year, month int) (attendance.MonthlyPayload, error) {
	f.monthlyCalls++
	if f.monthlyErr != nil {
		return attendance.MonthlyPayload{}, f.monthlyErr
	}
	return f.payload, nil
}

func (f *fakeAttendanceRepo) GetWorkSettings(ctx context.Context) (attendance.WorkSettings, error) {
	return attendance.WorkSettings{WorkStartTime: "09:00"}, nil
}

func (f *fakeAttendanceRepo) UpdateEntry(ctx context.Context, req attendance.UpdateEntryRequest) error {
	return f.updateErr
}

func (f *fakeAttendanceRepo) SubmitWorkReport(ctx context.Context, req attendance.WorkReportRequest) error {
	return nil
}

func (f *fakeAttendanceRepo) ApproveLeave(ctx context.Context, id string) error { return nil }
func (f *fakeAttendanceRepo) RejectLeave(ctx context.Context, id string) error  { return nil }

func (f *fakeAttendanceRepo) SaveBulkTransportation(ctx context.Context, batch attendance.BulkTransportationBatch) error {
	f.lastBatch = batch
	return nil
}

func viewerContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": userID, "type": "access"})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func monthPayload() attendance.MonthlyPayload {
	hours := 9.0
	return attendance.MonthlyPayload{
		Entries: map[string]*attendance.Entry{
			"2024-06-03": {Date: "2024-06-03", ClockIn: "09:30 JST", ClockOut: "19:00", WorkHours: &hours},
			"2024-06-04": {Date: "2024-06-04", LeaveType: "有給"},
		},
		Stats: map[string]any{
			"lateCount":    5,
			"workDays":     99,
			"approvedDays": 12,
		},
		Settings: &attendance.WorkSettings{WorkStartTime: "09:00"},
	}
}

func TestAttendanceService_GetMonthlyData_MergesStats(t *testing.T) {
	repo := &fakeAttendanceRepo{payload: monthPayload()}
	svc := NewAttendanceService(repo)
	ctx := viewerContext(t, "user-1")

	result, err := svc.GetMonthlyData(ctx, 2024, 6)
	require.NoError(t, err)

	// Local recomputation overrides every overlapping field.
	assert.Equal(t, 1, result.MonthlyStats["workDays"])
	assert.Equal(t, 1, result.MonthlyStats["lateCount"])
	assert.Equal(t, 1, result.MonthlyStats["leaveDays"])
	assert.Equal(t, 9.0, result.MonthlyStats["totalHours"])
	assert.Equal(t, 1.0, result.MonthlyStats["overtimeHours"])

	// The upstream's own late count survives for comparison, and fields
	// only the upstream computes ride along untouched.
	assert.Equal(t, 5, result.MonthlyStats["apiLateCount"])
	assert.Equal(t, 12, result.MonthlyStats["approvedDays"])
}

func TestAttendanceService_GetMonthlyData_AnnotatesEntries(t *testing.T) {
	repo := &fakeAttendanceRepo{payload: monthPayload()}
	svc := NewAttendanceService(repo)
	ctx := viewerContext(t, "user-1")

	result, err := svc.GetMonthlyData(ctx, 2024, 6)
	require.NoError(t, err)

	worked := result.AttendanceData["2024-06-03"]
	require.NotNil(t, worked.LateInfo)
	assert.True(t, worked.LateInfo.IsLate)
	assert.Equal(t, 30, worked.LateInfo.LateMinutes)
	assert.Equal(t, "09:30", worked.LateInfo.ActualStartTime)

	leave := result.AttendanceData["2024-06-04"]
	require.NotNil(t, leave.LateInfo)
	assert.False(t, leave.LateInfo.IsLate)
}

func TestAttendanceService_GetMonthlyData_UpstreamError(t *testing.T) {
	repo := &fakeAttendanceRepo{monthlyErr: errors.New("boom")}
	svc := NewAttendanceService(repo)
	ctx := viewerContext(t, "user-1")

	_, err := svc.GetMonthlyData(ctx, 2024, 6)
	assert.Error(t, err)
}

func TestAttendanceService_NoClaims(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{})

	_, err := svc.GetMonthlyData(context.Background(), 2024, 6)
	assert.Error(t, err)
}

func TestAttendanceService_UpdateRefetchesViewedMonth(t *testing.T) {
	repo := &fakeAttendanceRepo{payload: monthPayload()}
	svc := NewAttendanceService(repo)
	ctx := viewerContext(t, "user-1")

	_, err := svc.GetMonthlyData(ctx, 2024, 6)
	require.NoError(t, err)
	require.Equal(t, 1, repo.monthlyCalls)

	err = svc.UpdateAttendance(ctx, attendance.UpdateEntryRequest{
		UserID: "user-1",
		Date:   "2024-06-03",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.monthlyCalls)
}

func TestAttendanceService_UpdateWithoutLoadedMonthSkipsRefetch(t *testing.T) {
	repo := &fakeAttendanceRepo{payload: monthPayload()}
	svc := NewAttendanceService(repo)
	ctx := viewerContext(t, "user-1")

	err := svc.UpdateAttendance(ctx, attendance.UpdateEntryRequest{
		UserID: "user-1",
		Date:   "2024-06-03",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, repo.monthlyCalls)
}

func TestAttendanceService_UpdateFailureDoesNotRefetch(t *testing.T) {
	repo := &fakeAttendanceRepo{payload: monthPayload()}
	svc := NewAttendanceService(repo)
	ctx := viewerContext(t, "user-1")

	_, err := svc.GetMonthlyData(ctx, 2024, 6)
	require.NoError(t, err)

	repo.updateErr = errors.New("rejected")
	err = svc.UpdateAttendance(ctx, attendance.UpdateEntryRequest{
		UserID: "user-1",
		Date:   "2024-06-03",
	})
	assert.Error(t, err)
	assert.Equal(t, 1, repo.monthlyCalls)
}

func TestAttendanceService_UpdateValidation(t *testing.T) {
	repo := &fakeAttendanceRepo{payload: monthPayload()}
	svc := NewAttendanceService(repo)
	ctx := viewerContext(t, "user-1")

	err := svc.UpdateAttendance(ctx, attendance.UpdateEntryRequest{
		UserID: "user-1",
		Date:   "not-a-date",
	})
	assert.Error(t, err)
	assert.Equal(t, 0, repo.monthlyCalls)
}

func TestAttendanceService_BulkTransportationExpansion(t *testing.T) {
	repo := &fakeAttendanceRepo{payload: monthPayload()}
	svc := NewAttendanceService(repo)
	ctx := viewerContext(t, "user-1")

	err := svc.SaveBulkTransportation(ctx, attendance.BulkTransportationRequest{
		UserID: "user-1",
		Amount: 500,
		Year:   2024,
		Month:  2,
	})
	require.NoError(t, err)

	// 2024 is a leap year: one registration per calendar day.
	regs := repo.lastBatch.Registrations
	require.Len(t, regs, 29)
	assert.Equal(t, "2024-02-01", regs[0].Date)
	assert.Equal(t, "2024-02-29", regs[28].Date)
	for _, reg := range regs {
		assert.NotEmpty(t, reg.ID)
		assert.Equal(t, "user-1", reg.UserID)
		assert.Equal(t, 500, reg.Amount)
		assert.Equal(t, 2024, reg.Year)
		assert.Equal(t, 2, reg.Month)
	}
}

func TestMonthSession_StaleCommitDiscarded(t *testing.T) {
	sess := &monthSession{}

	older := sess.begin()
	newer := sess.begin()

	// The newer fetch lands first; the older one must not overwrite it.
	committed := sess.commit(newer, 2024, 7, nil, map[string]any{"workDays": 2}, attendance.WorkSettings{})
	require.True(t, committed)

	committed = sess.commit(older, 2024, 6, nil, map[string]any{"workDays": 1}, attendance.WorkSettings{})
	assert.False(t, committed)

	year, month, ok := sess.viewed()
	require.True(t, ok)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 7, month)
}

func TestMonthSession_StaleFailureIgnored(t *testing.T) {
	sess := &monthSession{}

	older := sess.begin()
	newer := sess.begin()

	require.True(t, sess.commit(newer, 2024, 7, nil, nil, attendance.WorkSettings{}))
	sess.fail(older, errors.New("slow response"))

	assert.NoError(t, sess.lastErr)
}

func TestAttendanceService_SessionsPerViewer(t *testing.T) {
	repo := &fakeAttendanceRepo{payload: monthPayload()}
	svc := NewAttendanceService(repo).(*AttendanceServiceImpl)

	ctxA := viewerContext(t, "user-a")
	ctxB := viewerContext(t, "user-b")

	_, err := svc.GetMonthlyData(ctxA, 2024, 6)
	require.NoError(t, err)
	_, err = svc.GetMonthlyData(ctxB, 2024, 7)
	require.NoError(t, err)

	sessA, err := svc.sessionFromContext(ctxA)
	require.NoError(t, err)
	_, monthA, _ := sessA.viewed()
	assert.Equal(t, 6, monthA)

	sessB, err := svc.sessionFromContext(ctxB)
	require.NoError(t, err)
	_, monthB, _ := sessB.viewed()
	assert.Equal(t, 7, monthB)
}
