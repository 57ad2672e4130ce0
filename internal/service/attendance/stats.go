package attendance

import (
	"math"

	"github.com/staffport/attendance-report-go/internal/domain/attendance"
)

const (
	// DefaultWorkStartTime applies when neither workStartTime nor the
	// legacy startTime is configured.
	DefaultWorkStartTime = "09:00"

	// DefaultOvertimeThreshold is the daily hour count above which worked
	// hours count as overtime.
	DefaultOvertimeThreshold = 8.0
)

// EffectiveWorkStartTime resolves the expected start time:
// workStartTime, then the legacy startTime alias, then the default.
func EffectiveWorkStartTime(ws attendance.WorkSettings) string {
	if ws.WorkStartTime != "" {
		return ws.WorkStartTime
	}
	if ws.StartTime != "" {
		return ws.StartTime
	}
	return DefaultWorkStartTime
}

// EffectiveOvertimeThreshold resolves the overtime threshold in hours.
func EffectiveOvertimeThreshold(ws attendance.WorkSettings) float64 {
	if ws.OvertimeThreshold != nil {
		return *ws.OvertimeThreshold
	}
	return DefaultOvertimeThreshold
}

// CalculateMonthlyStats folds a month of entries into totals. Entries are
// independent of each other, so the result does not depend on map iteration
// order. Pure: no I/O, no state; the same input always yields the same
// output.
//
// Worked days and leave days are counted independently: an entry carrying
// both clock times and a leave type increments both.
func CalculateMonthlyStats(entries map[string]*attendance.Entry, ws attendance.WorkSettings) attendance.MonthlyStats {
	workStart := EffectiveWorkStartTime(ws)
	threshold := EffectiveOvertimeThreshold(ws)

	var stats attendance.MonthlyStats
	for _, entry := range entries {
		if entry == nil {
			continue
		}

		if entry.IsWorked() {
			stats.WorkDays++
		}

		if entry.WorkHours != nil {
			stats.TotalHours += *entry.WorkHours
			if *entry.WorkHours > threshold {
				stats.OvertimeHours += *entry.WorkHours - threshold
			}
		}

		if entry.ClockIn != "" && CheckLateArrival(entry.ClockIn, workStart).IsLate {
			stats.LateCount++
		}

		if entry.IsLeave() {
			stats.LeaveDays++
		}

		// An explicitly recorded cost of 0 still counts; only absence is
		// skipped.
		if entry.TransportationCost != nil {
			stats.TransportationCost += *entry.TransportationCost
		}
	}

	stats.TotalHours = round2(stats.TotalHours)
	stats.OvertimeHours = round2(stats.OvertimeHours)
	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
