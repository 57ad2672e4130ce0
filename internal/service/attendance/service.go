package attendance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/staffport/attendance-report-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository

	mu       sync.Mutex
	sessions map[string]*monthSession
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		sessions:             make(map[string]*monthSession),
	}
}

// sessionFromContext returns the viewer's month session, keyed by the
// user_id claim of the verified access token.
func (s *AttendanceServiceImpl) sessionFromContext(ctx context.Context) (*monthSession, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, fmt.Errorf("user_id claim is missing or invalid")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &monthSession{}
		s.sessions[userID] = sess
	}
	return sess, nil
}

// GetMonthlyData implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonthlyData(ctx context.Context, year, month int) (attendance.MonthlyAttendanceResponse, error) {
	sess, err := s.sessionFromContext(ctx)
	if err != nil {
		return attendance.MonthlyAttendanceResponse{}, err
	}
	return s.loadMonth(ctx, sess, year, month)
}

func (s *AttendanceServiceImpl) loadMonth(ctx context.Context, sess *monthSession, year, month int) (attendance.MonthlyAttendanceResponse, error) {
	gen := sess.begin()

	payload, err := s.AttendanceRepository.GetMonthly(ctx, year, month)
	if err != nil {
		sess.fail(gen, err)
		return attendance.MonthlyAttendanceResponse{}, fmt.Errorf("failed to get monthly attendance: %w", err)
	}

	settings := sess.currentSettings()
	if payload.Settings != nil {
		settings = *payload.Settings
	}

	localStats := CalculateMonthlyStats(payload.Entries, settings)
	combined := mergeStats(payload.Stats, localStats)

	workStart := EffectiveWorkStartTime(settings)
	for _, entry := range payload.Entries {
		if entry == nil {
			continue
		}
		verdict := CheckLateArrival(entry.ClockIn, workStart)
		entry.LateInfo = &verdict
	}

	// A superseded fetch still answers its own caller; it just must not
	// become the session's state.
	sess.commit(gen, year, month, payload.Entries, combined, settings)

	return attendance.MonthlyAttendanceResponse{
		Year:           year,
		Month:          month,
		AttendanceData: payload.Entries,
		MonthlyStats:   combined,
		WorkSettings:   settings,
	}, nil
}

// mergeStats layers the locally recomputed stats over the upstream's own
// monthly stats. Local computation wins on every overlapping field; the
// upstream's original late count is preserved under apiLateCount for
// comparison.
func mergeStats(server map[string]any, local attendance.MonthlyStats) map[string]any {
	combined := make(map[string]any, len(server)+7)
	for k, v := range server {
		combined[k] = v
	}

	combined["workDays"] = local.WorkDays
	combined["totalHours"] = local.TotalHours
	combined["overtimeHours"] = local.OvertimeHours
	combined["lateCount"] = local.LateCount
	combined["leaveDays"] = local.LeaveDays
	combined["transportationCost"] = local.TransportationCost

	if v, ok := server["lateCount"]; ok {
		combined["apiLateCount"] = v
	}
	return combined
}

// refreshViewed refetches the month the viewer currently has loaded. A
// mutation before any month was loaded has nothing to refresh.
func (s *AttendanceServiceImpl) refreshViewed(ctx context.Context, sess *monthSession) error {
	year, month, ok := sess.viewed()
	if !ok {
		return nil
	}
	if _, err := s.loadMonth(ctx, sess, year, month); err != nil {
		return fmt.Errorf("mutation succeeded but refetch failed: %w", err)
	}
	return nil
}

// GetWorkSettings implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetWorkSettings(ctx context.Context) (attendance.WorkSettings, error) {
	sess, err := s.sessionFromContext(ctx)
	if err != nil {
		return attendance.WorkSettings{}, err
	}

	settings, err := s.AttendanceRepository.GetWorkSettings(ctx)
	if err != nil {
		return attendance.WorkSettings{}, fmt.Errorf("failed to get work settings: %w", err)
	}

	sess.setSettings(settings)
	return settings, nil
}

// UpdateAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateEntryRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	sess, err := s.sessionFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.AttendanceRepository.UpdateEntry(ctx, req); err != nil {
		return err
	}

	return s.refreshViewed(ctx, sess)
}

// SubmitWorkReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SubmitWorkReport(ctx context.Context, req attendance.WorkReportRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	sess, err := s.sessionFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.AttendanceRepository.SubmitWorkReport(ctx, req); err != nil {
		return err
	}

	return s.refreshViewed(ctx, sess)
}

// ApproveLeave implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ApproveLeave(ctx context.Context, id string) error {
	sess, err := s.sessionFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.AttendanceRepository.ApproveLeave(ctx, id); err != nil {
		return err
	}

	return s.refreshViewed(ctx, sess)
}

// RejectLeave implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RejectLeave(ctx context.Context, id string) error {
	sess, err := s.sessionFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.AttendanceRepository.RejectLeave(ctx, id); err != nil {
		return err
	}

	return s.refreshViewed(ctx, sess)
}

// SaveBulkTransportation implements attendance.AttendanceService.
// One amount and a target month expand into a registration per calendar day
// of that month, submitted as a single batch.
func (s *AttendanceServiceImpl) SaveBulkTransportation(ctx context.Context, req attendance.BulkTransportationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	sess, err := s.sessionFromContext(ctx)
	if err != nil {
		return err
	}

	batch := expandBulkTransportation(req)
	if err := s.AttendanceRepository.SaveBulkTransportation(ctx, batch); err != nil {
		return err
	}

	return s.refreshViewed(ctx, sess)
}

func expandBulkTransportation(req attendance.BulkTransportationRequest) attendance.BulkTransportationBatch {
	daysInMonth := time.Date(req.Year, time.Month(req.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	registrations := make([]attendance.TransportationRegistration, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(req.Year, time.Month(req.Month), day, 0, 0, 0, 0, time.UTC)
		registrations = append(registrations, attendance.TransportationRegistration{
			ID:     uuid.NewString(),
			UserID: req.UserID,
			Amount: req.Amount,
			Date:   date.Format("2006-01-02"),
			Year:   req.Year,
			Month:  req.Month,
		})
	}

	return attendance.BulkTransportationBatch{Registrations: registrations}
}
