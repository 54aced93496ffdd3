package service

import (
	"github.com/MKhiriev/go-attendance/internal/adapter"
	"github.com/MKhiriev/go-attendance/internal/crypto"
	"github.com/MKhiriev/go-attendance/internal/session"
	"github.com/MKhiriev/go-attendance/internal/validators"
)

type ClientServices struct {
	AuthService         AuthService
	AttendanceService   AttendanceService
	CheckInService      CheckInService
	EmployeeService     EmployeeService
	AdminService        AdminService
	PasswordService     PasswordService
	ReportService       ReportService
	LeaveService        LeaveService
	NotificationService NotificationService
	StatusRefreshJob    StatusRefreshJob
}

func NewClientServices(sess *session.Session, api adapter.AttendanceAPI, codec crypto.Codec, v validators.Validator) *ClientServices {
	checkInSvc := NewCheckInService(sess, sess.CheckIn, api)

	return &ClientServices{
		AuthService:         NewAuthService(sess, api, codec, v, sess.Attendance, sess.CheckIn),
		AttendanceService:   NewAttendanceService(sess, sess.Attendance, sess.CheckIn, api),
		CheckInService:      checkInSvc,
		EmployeeService:     NewEmployeeService(sess, api, v),
		AdminService:        NewAdminService(sess, api, v),
		PasswordService:     NewPasswordService(sess, api, codec),
		ReportService:       NewReportService(sess, api),
		LeaveService:        NewLeaveService(sess, api, v),
		NotificationService: NewNotificationService(sess, api),
		StatusRefreshJob:    NewStatusRefreshJob(checkInSvc),
	}
}
