package attendance

// Entry is one calendar day's attendance record for one user, as served by
// the upstream HR API. This service only aggregates and annotates entries;
// creation and persistence belong to the upstream backend.
type Entry struct {
	Date               string   `json:"date"`
	UserID             string   `json:"userId,omitempty"`
	ClockIn            string   `json:"clockIn,omitempty"`
	ClockOut           string   `json:"clockOut,omitempty"`
	WorkHours          *float64 `json:"workHours,omitempty"`
	TransportationCost *int     `json:"transportationCost,omitempty"`
	LeaveType          string   `json:"leaveType,omitempty"`
	IsApprovedLeave    *bool    `json:"isApprovedLeave,omitempty"`
	Breaks             []Break  `json:"breaks,omitempty"`

	// LateInfo is derived on every aggregation pass, never stored upstream.
	LateInfo *LateArrival `json:"lateInfo,omitempty"`
}

// IsWorked reports whether the entry counts as a worked day: both clock
// times recorded. A worked day and a leave day are counted independently;
// an entry carrying both increments both counters.
func (e *Entry) IsWorked() bool {
	return e.ClockIn != "" && e.ClockOut != ""
}

// IsLeave reports whether the entry counts as a leave day.
func (e *Entry) IsLeave() bool {
	return e.LeaveType != ""
}

type Break struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Type      string `json:"type,omitempty"`
}

// WorkSettings is the per-user or per-project schedule configuration.
// StartTime is a legacy alias for WorkStartTime kept for older upstream
// payloads; resolution order is WorkStartTime, StartTime, then the default.
type WorkSettings struct {
	WorkStartTime             string   `json:"workStartTime,omitempty"`
	StartTime                 string   `json:"startTime,omitempty"`
	OvertimeThreshold         *float64 `json:"overtimeThreshold,omitempty"`
	BreakTime                 *int     `json:"breakTime,omitempty"`
	TimeInterval              *int     `json:"timeInterval,omitempty"`
	WeekStartDay              *int     `json:"weekStartDay,omitempty"`
	DefaultTransportationCost *int     `json:"defaultTransportationCost,omitempty"`
}

// LateArrival is the lateness verdict for one day's clock-in against an
// expected start time. Derived fresh on every aggregation pass.
type LateArrival struct {
	IsLate            bool   `json:"isLate"`
	LateMinutes       int    `json:"lateMinutes"`
	ExpectedStartTime string `json:"expectedStartTime"`
	ActualStartTime   string `json:"actualStartTime"`
	Message           string `json:"message"`
}

// MonthlyStats aggregates one user's entries for one month.
type MonthlyStats struct {
	WorkDays           int     `json:"workDays"`
	TotalHours         float64 `json:"totalHours"`
	OvertimeHours      float64 `json:"overtimeHours"`
	LateCount          int     `json:"lateCount"`
	LeaveDays          int     `json:"leaveDays"`
	TransportationCost int     `json:"transportationCost"`
}

// MonthlyPayload is one month of raw upstream data after the shape-tolerant
// decode: a flat date -> entry map plus whatever stats and settings the
// upstream included. Stats stay untyped because the upstream adds fields of
// its own that must survive the merge.
type MonthlyPayload struct {
	Entries  map[string]*Entry
	Stats    map[string]any
	Settings *WorkSettings
}
