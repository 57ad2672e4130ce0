package attendance

import (
	"fmt"

	"github.com/staffport/attendance-report-go/internal/domain/attendance"
	"github.com/staffport/attendance-report-go/internal/pkg/timeutil"
)

// CheckLateArrival compares an actual clock-in against the expected work
// start. A missing input yields a "not late" verdict, never an error: the
// answer defaults rather than failing, and callers needing to distinguish
// "on time" from "cannot tell" must check the inputs themselves.
//
// The comparison is strict: clocking in exactly at the start time is on
// time. Single-day minute arithmetic only; shifts crossing midnight are not
// handled here.
func CheckLateArrival(clockIn, workStart string) attendance.LateArrival {
	verdict := attendance.LateArrival{
		ExpectedStartTime: workStart,
		ActualStartTime:   timeutil.StripSuffix(clockIn),
	}

	if clockIn == "" || workStart == "" {
		verdict.Message = "勤務時間情報が不正です"
		return verdict
	}

	clockInMinutes := timeutil.MinutesOfDay(clockIn)
	startMinutes := timeutil.MinutesOfDay(workStart)

	if clockInMinutes > startMinutes {
		verdict.IsLate = true
		verdict.LateMinutes = clockInMinutes - startMinutes
		verdict.Message = fmt.Sprintf("%d分の遅刻", verdict.LateMinutes)
		return verdict
	}

	verdict.Message = "正常出勤"
	return verdict
}
