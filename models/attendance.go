package models

import (
	"fmt"
	"strconv"
)

// AttendanceStatus is the numeric status understood by MarkExit and
// SetAttendanceStatus.
type AttendanceStatus int

const (
	StatusPresent AttendanceStatus = iota + 1
	StatusAbsent
	StatusHalfDay
	StatusLeave
	StatusWFH
)

var attendanceStatusNames = map[AttendanceStatus]string{
	StatusPresent: "Present",
	StatusAbsent:  "Absent",
	StatusHalfDay: "Half-day",
	StatusLeave:   "Leave",
	StatusWFH:     "WFH",
}

// AttendanceStatuses lists the selectable statuses in display order.
func AttendanceStatuses() []AttendanceStatus {
	return []AttendanceStatus{StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave, StatusWFH}
}

// String returns the display name, or "Pending" for unknown codes.
func (s AttendanceStatus) String() string {
	if name, ok := attendanceStatusNames[s]; ok {
		return name
	}
	return "Pending"
}

// Valid reports whether s is one of the known statuses.
func (s AttendanceStatus) Valid() bool {
	_, ok := attendanceStatusNames[s]
	return ok
}

// ParseAttendanceStatus accepts either the numeric code or the display name
// (case-sensitive, e.g. "Half-day").
func ParseAttendanceStatus(v string) (AttendanceStatus, error) {
	if n, err := strconv.Atoi(v); err == nil {
		s := AttendanceStatus(n)
		if !s.Valid() {
			return 0, fmt.Errorf("unknown attendance status %d", n)
		}
		return s, nil
	}
	for s, name := range attendanceStatusNames {
		if name == v {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown attendance status %q", v)
}

// MessageResponse is the generic {"message": ...} body returned by the
// mark and admin endpoints.
type MessageResponse struct {
	Message string `json:"message"`
	Success *bool  `json:"success,omitempty"`
}

// CheckInStatusResponse is the body of POST /CheckInStatus.
type CheckInStatusResponse struct {
	Status   string `json:"status"`
	Duration string `json:"duration"`
	Message  string `json:"message,omitempty"`
}

// DailyAttendance is one day of an employee as returned by
// /AttendanceDetails. Times are "HH:MM:SS[.fff]" and check-out is null
// until exit is marked.
type DailyAttendance struct {
	EmployeeCode string  `json:"empcode"`
	Date         string  `json:"date"`
	CheckInTime  *string `json:"checkintime"`
	CheckOutTime *string `json:"checkouttime"`
	Status       int     `json:"status"`
	Remarks      string  `json:"remarks"`
}

// AttendanceDetailsResponse is the body of POST /AttendanceDetails.
type AttendanceDetailsResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Data    *DailyAttendance `json:"data,omitempty"`
}

// AttendanceView is today's attendance as shown to the employee.
type AttendanceView struct {
	CheckInTime  string
	CheckOutTime string
	Status       string
	Remarks      string
}

// DateLayout is the calendar date format used on the wire and in storage.
const DateLayout = "2006-01-02"

// Display defaults used when nothing has been recorded yet.
const (
	NotMarked     = "Not Marked"
	PendingStatus = "Pending"
)

// DefaultAttendanceView is the view for a day without records.
func DefaultAttendanceView() AttendanceView {
	return AttendanceView{
		CheckInTime:  NotMarked,
		CheckOutTime: NotMarked,
		Status:       PendingStatus,
	}
}

// SetAttendanceRequest is an administrator correction of one day.
type SetAttendanceRequest struct {
	EmployeeCode string           `validate:"required"`
	Date         string           `validate:"required,datetime=2006-01-02"`
	CheckInTime  string           `validate:"omitempty,datetime=15:04"`
	CheckOutTime string           `validate:"omitempty,datetime=15:04"`
	Status       AttendanceStatus `validate:"attendance_status"`
	Remarks      string           `validate:"max=500"`
}
