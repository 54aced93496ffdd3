package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-attendance/models"
)

// IdentityStore is the part of the local session that knows who is signed in.
// It is satisfied by *session.Session.
type IdentityStore interface {
	EmployeeCode(ctx context.Context) string
	IsAuthenticated(ctx context.Context) bool
	UserData(ctx context.Context) (models.User, bool)
	AuthToken(ctx context.Context) (string, bool)
	AuthTokenExpired(ctx context.Context) bool
	Login(ctx context.Context, code string, profile *models.User, token string)
	Logout(ctx context.Context)
}

// FlagCache is one date-scoped group of session flags. It is satisfied by
// *session.DateScopedCache.
type FlagCache interface {
	Record(ctx context.Context, key, value string)
	RecordAll(ctx context.Context, values map[string]string)
	Read(ctx context.Context, key string) (string, bool)
	Clear(ctx context.Context)
}

// AuthService signs employees in and out.
type AuthService interface {
	// Login validates the credentials, authenticates against the backend and
	// stores the decrypted employee code, the profile and the token locally.
	// Returns ErrInvalidCredentials when the backend rejects them.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Logout forgets the local session.
	Logout(ctx context.Context)

	// CurrentUser returns the signed-in employee. Only EmployeeCode is
	// guaranteed to be set.
	CurrentUser(ctx context.Context) (models.User, bool)

	// RestoreSession re-attaches a stored token to the API client. It returns
	// ErrNotAuthenticated when nobody is signed in and ErrSessionExpired when
	// the stored JWT has expired; the latter also logs the employee out.
	RestoreSession(ctx context.Context) (models.User, error)
}

// AttendanceService marks entry and exit.
type AttendanceService interface {
	// MarkEntry records today's check-in. When the entry is already recorded,
	// locally or remotely, it returns ErrEntryAlreadyMarked.
	MarkEntry(ctx context.Context) (string, error)

	// HasMarkedAttendance reports whether entry was marked today.
	HasMarkedAttendance(ctx context.Context) bool

	// ResetAttendanceStatus forgets today's entry flag.
	ResetAttendanceStatus(ctx context.Context)

	// MarkExit records today's check-out.
	MarkExit(ctx context.Context, status models.AttendanceStatus, remarks string) (string, error)

	// TodayAttendance returns today's times and status for display. Any
	// failure yields models.DefaultAttendanceView.
	TodayAttendance(ctx context.Context) models.AttendanceView
}

// CheckInService mirrors the backend's check-in state into the session.
type CheckInService interface {
	// RefreshCheckInStatus fetches the state from the backend and stores it
	// under today's date.
	RefreshCheckInStatus(ctx context.Context) error

	// CheckInStatus returns the cached status of today.
	CheckInStatus(ctx context.Context) (string, bool)

	// Duration returns the cached worked duration of today.
	Duration(ctx context.Context) (string, bool)

	// ResetCheckInStatus forgets today's check-in state.
	ResetCheckInStatus(ctx context.Context)
}

// EmployeeService reads and creates employee records.
type EmployeeService interface {
	// Details returns the record of code, or of the signed-in employee when
	// code is empty.
	Details(ctx context.Context, code string) (models.EmployeeDetails, error)

	// Register validates and submits a new employee.
	Register(ctx context.Context, req models.RegisterEmployeeRequest) (string, error)
}

// AdminService holds administrator corrections.
type AdminService interface {
	// SetAttendance validates and submits a correction of one day.
	SetAttendance(ctx context.Context, req models.SetAttendanceRequest) (string, error)
}

// PasswordService changes the signed-in employee's password.
type PasswordService interface {
	ChangePassword(ctx context.Context, current, next, confirm string) (string, error)
}

// ReportService fetches monthly reports and derives the dashboard figures.
type ReportService interface {
	// EmployeeMonthly returns the daily records of one employee, or of the
	// signed-in employee when code is empty.
	EmployeeMonthly(ctx context.Context, code string, month, year int) (models.EmployeeMonthlyReport, error)

	// AllEmployees returns the monthly report of every employee.
	AllEmployees(ctx context.Context, month, year int) ([]models.MonthlyReportEntry, error)

	// DailyCalendar lays one employee's month out on a Monday-first grid.
	DailyCalendar(ctx context.Context, code string, month, year int) (models.CalendarMonth, error)

	// ExportCSV writes the all-employee report for month/year as CSV to w.
	ExportCSV(ctx context.Context, w io.Writer, month, year int) error
}

// LeaveService submits leave requests.
type LeaveService interface {
	// Apply validates and submits req. It returns the backend message and the
	// number of calendar days covered.
	Apply(ctx context.Context, req models.LeaveRequest) (string, int, error)
}

// NotificationService reads announcements.
type NotificationService interface {
	// Load returns the announcements of code (or the signed-in employee when
	// empty); "GLOBAL" in any case selects the global feed.
	Load(ctx context.Context, code string) ([]models.Notification, error)

	// MarkAsRead marks one announcement read for the signed-in employee.
	MarkAsRead(ctx context.Context, id int64) error

	// MarkAllAsRead marks every announcement read for the signed-in employee.
	MarkAllAsRead(ctx context.Context) error
}

// StatusRefreshJob periodically refreshes the cached check-in status while
// the client is open.
type StatusRefreshJob interface {
	// Start launches the background goroutine. A non-positive interval means
	// one minute. Any previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and waits for it.
	Stop()
}
