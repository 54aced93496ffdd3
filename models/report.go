package models

// MonthlyReportEntry is one employee row of /AllEmployeeReport.
type MonthlyReportEntry struct {
	EmployeeName         string            `json:"employee_name"`
	EmployeeCode         string            `json:"employee_code"`
	DailyAttendance      map[string]string `json:"daily_attendance"`
	TotalWorkingDays     int               `json:"TotalWorkingDays"`
	TotalTimeWorked      string            `json:"TotalTimeWorked"`
	PresentDays          int               `json:"PresentDays"`
	AbsentDays           int               `json:"AbsentDays"`
	AttendancePercentage float64           `json:"AttendancePercentage"`
}

// AttendanceDetail is one day of /ByEmployeeReport.
type AttendanceDetail struct {
	Date          string  `json:"date"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	HoursWorked   float64 `json:"hours_worked"`
	Status        string  `json:"status"`
	Remarks       string  `json:"remarks"`
	ArrivalStatus string  `json:"arrival_status"`
}

// MonthlySummary totals one employee's month.
type MonthlySummary struct {
	TotalHoursWorked float64 `json:"total_hours_worked"`
	Month            string  `json:"month"`
	Year             string  `json:"year"`
	EmployeeCode     string  `json:"employee_code"`
}

// EmployeeMonthlyReport is the body of POST /ByEmployeeReport.
type EmployeeMonthlyReport struct {
	AttendanceDetails []AttendanceDetail `json:"attendance_details"`
	Summary           MonthlySummary     `json:"summary"`
	Status            string             `json:"status"`
	Message           string             `json:"message"`
}

// OverallStats aggregates an all-employee monthly report.
type OverallStats struct {
	TotalEmployees int
	AvgAttendance  int
	TotalPresent   int
	TotalAbsent    int
}

// PerformanceBand groups employees by attendance percentage.
type PerformanceBand string

const (
	BandExcellent PerformanceBand = "excellent"
	BandGood      PerformanceBand = "good"
	BandAverage   PerformanceBand = "average"
	BandPoor      PerformanceBand = "poor"
)

// PerformanceEntry is one row of the performance leaderboard.
type PerformanceEntry struct {
	Rank           int
	EmployeeName   string
	EmployeeCode   string
	HoursWorked    float64
	AttendanceRate float64
	Band           PerformanceBand
}

// PerformanceOverview summarises the leaderboard.
type PerformanceOverview struct {
	Entries           []PerformanceEntry
	AvgHours          int
	AvgAttendance     int
	TopPerformer      *PerformanceEntry
	ImprovementNeeded int
}

// DayMark is the calendar state of one day.
type DayMark string

const (
	DayPresent DayMark = "P"
	DayAbsent  DayMark = "A"
	DayUnknown DayMark = ""
)

// CalendarDay is one cell of a Monday-first month grid. Padding cells
// before the first of the month have an empty Date.
type CalendarDay struct {
	Date string
	Day  int
	Mark DayMark
}

// CalendarMonth is a daily attendance calendar for one employee.
type CalendarMonth struct {
	Year       int
	Month      int
	Cells      []CalendarDay
	Present    int
	Absent     int
	Percentage int
}
