// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote Attendance REST API.
//
// The primary abstraction is [AttendanceAPI], which decouples the service
// layer from HTTP. The only implementation is resty based
// ([NewHTTPAttendanceAPI]).
//
// Sensitive query parameters (employee codes, e-mail, passwords) are
// encrypted with the shared parameter codec and then percent-encoded with
// encodeURIComponent rules before they are appended to the URL. Responses
// are returned as decoded, so ciphertext inside them is left to the caller.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError; every one of them wraps [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-attendance/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/attendance_api_mock.go -package=mock

// AttendanceAPI is the remote attendance backend. Employee codes and
// passwords are passed in plaintext; implementations encrypt them.
type AttendanceAPI interface {
	// SetToken stores the Authorization value attached to later requests.
	SetToken(token string)

	// Login exchanges credentials for a token and the encrypted employee code.
	// A wrong password is reported by the backend in the response message.
	Login(ctx context.Context, email, password string) (models.LoginResponse, error)

	// MarkEntry records today's check-in. The decoded body is returned even
	// when the status is not 2xx so the caller can inspect its message.
	MarkEntry(ctx context.Context, employeeCode string) (models.MessageResponse, error)

	// MarkExit records today's check-out with a status and free-form remarks.
	MarkExit(ctx context.Context, employeeCode string, status models.AttendanceStatus, remarks string) (models.MessageResponse, error)

	// CheckInStatus returns the server-side check-in state and worked duration.
	CheckInStatus(ctx context.Context, employeeCode string) (models.CheckInStatusResponse, error)

	// AttendanceDetails returns today's entry and exit times.
	AttendanceDetails(ctx context.Context, employeeCode string) (models.AttendanceDetailsResponse, error)

	// EmployeeDetails returns the employee's full name.
	EmployeeDetails(ctx context.Context, employeeCode string) (models.EmployeeDetails, error)

	// UpdatePassword changes the employee's password.
	UpdatePassword(ctx context.Context, employeeCode, currentPassword, newPassword string) (models.PasswordChangeResponse, error)

	// RegisterEmployee creates a new employee record.
	RegisterEmployee(ctx context.Context, req models.RegisterEmployeeRequest) (models.MessageResponse, error)

	// SetAttendanceStatus overwrites one day of an employee's attendance.
	SetAttendanceStatus(ctx context.Context, req models.SetAttendanceRequest) (models.MessageResponse, error)

	// AllEmployeeReport returns the monthly report of every employee.
	AllEmployeeReport(ctx context.Context, month, year int) ([]models.MonthlyReportEntry, error)

	// ByEmployeeReport returns one employee's daily records for a month.
	ByEmployeeReport(ctx context.Context, employeeCode string, month, year int) (models.EmployeeMonthlyReport, error)

	// ApplyLeave submits a leave request.
	ApplyLeave(ctx context.Context, req models.LeaveRequest) (models.MessageResponse, error)

	// Notifications lists the announcements of an employee, or of everybody
	// when feed is [models.GlobalFeed].
	Notifications(ctx context.Context, feed string) ([]models.APINotification, error)

	// MarkNotificationRead marks one announcement as read.
	MarkNotificationRead(ctx context.Context, req models.MarkReadRequest) error

	// MarkAllNotificationsRead marks every announcement of an employee as read.
	MarkAllNotificationsRead(ctx context.Context, employeeCode string) error
}
