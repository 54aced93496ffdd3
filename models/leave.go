package models

// LeaveType is the category of a leave request.
type LeaveType string

const (
	LeaveSick      LeaveType = "sick"
	LeavePersonal  LeaveType = "personal"
	LeaveVacation  LeaveType = "vacation"
	LeaveEmergency LeaveType = "emergency"
)

// LeaveRequest is the JSON body of POST /leave/apply.
type LeaveRequest struct {
	LeaveType LeaveType `json:"leaveType" validate:"required,oneof=sick personal vacation emergency"`
	StartDate string    `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string    `json:"endDate" validate:"required,datetime=2006-01-02"`
	Reason    string    `json:"reason" validate:"required,max=1000"`
}
