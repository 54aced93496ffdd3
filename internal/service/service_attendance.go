package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/go-attendance/internal/adapter"
	"github.com/MKhiriev/go-attendance/internal/app"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/session"
	"github.com/MKhiriev/go-attendance/models"
)

type attendanceService struct {
	identity IdentityStore
	marked   FlagCache
	checkIn  FlagCache
	api      adapter.AttendanceAPI
}

// NewAttendanceService constructs an AttendanceService. marked is the
// attendance scope; checkIn is cleared after exit so it is fetched again.
func NewAttendanceService(identity IdentityStore, marked, checkIn FlagCache, api adapter.AttendanceAPI) AttendanceService {
	return &attendanceService{identity: identity, marked: marked, checkIn: checkIn, api: api}
}

// MarkEntry implements AttendanceService.
//
// The backend signals the outcome only through the response message; both
// the success and the already-marked message set today's flag.
func (s *attendanceService) MarkEntry(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	code, err := s.employeeCode(ctx)
	if err != nil {
		return "", err
	}
	if s.HasMarkedAttendance(ctx) {
		return app.MsgEntryAlreadyMarked, ErrEntryAlreadyMarked
	}

	resp, err := s.api.MarkEntry(ctx, code)
	switch resp.Message {
	case app.MsgEntryMarked:
		s.marked.Record(ctx, session.KeyAttendanceMarked, session.MarkedValue)
		log.Info().Str("func", "attendanceService.MarkEntry").Msg("entry marked")
		return resp.Message, nil
	case app.MsgEntryAlreadyMarked:
		s.marked.Record(ctx, session.KeyAttendanceMarked, session.MarkedValue)
		return resp.Message, ErrEntryAlreadyMarked
	}

	if err != nil {
		log.Error().Err(err).Str("func", "attendanceService.MarkEntry").Msg("mark entry failed")
		return "", mapAdapterError(err)
	}
	return resp.Message, fmt.Errorf("%w: %q", ErrUnexpectedMessage, resp.Message)
}

// HasMarkedAttendance implements AttendanceService.
func (s *attendanceService) HasMarkedAttendance(ctx context.Context) bool {
	v, ok := s.marked.Read(ctx, session.KeyAttendanceMarked)
	return ok && v == session.MarkedValue
}

// ResetAttendanceStatus implements AttendanceService.
func (s *attendanceService) ResetAttendanceStatus(ctx context.Context) {
	s.marked.Clear(ctx)
}

// MarkExit implements AttendanceService. Any 2xx answer counts as success.
func (s *attendanceService) MarkExit(ctx context.Context, status models.AttendanceStatus, remarks string) (string, error) {
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	code, err := s.employeeCode(ctx)
	if err != nil {
		return "", err
	}

	resp, err := s.api.MarkExit(ctx, code, status, strings.TrimSpace(remarks))
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("func", "attendanceService.MarkExit").Msg("mark exit failed")
		return "", mapAdapterError(err)
	}
	s.checkIn.Clear(ctx)

	if resp.Message == "" {
		return app.MsgExitMarked, nil
	}
	return resp.Message, nil
}

// TodayAttendance implements AttendanceService.
func (s *attendanceService) TodayAttendance(ctx context.Context) models.AttendanceView {
	view := models.DefaultAttendanceView()

	code, err := s.employeeCode(ctx)
	if err != nil {
		return view
	}

	resp, err := s.api.AttendanceDetails(ctx, code)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "attendanceService.TodayAttendance").Msg("attendance details unavailable")
		return view
	}
	if !resp.Success || resp.Data == nil {
		return view
	}

	d := resp.Data
	if d.CheckInTime != nil && *d.CheckInTime != "" {
		view.CheckInTime = FormatClockTime(*d.CheckInTime)
	}
	if d.CheckOutTime != nil && *d.CheckOutTime != "" {
		view.CheckOutTime = FormatClockTime(*d.CheckOutTime)
	}
	view.Status = models.AttendanceStatus(d.Status).String()
	view.Remarks = d.Remarks
	return view
}

func (s *attendanceService) employeeCode(ctx context.Context) (string, error) {
	if !s.identity.IsAuthenticated(ctx) {
		return "", ErrNotAuthenticated
	}
	return s.identity.EmployeeCode(ctx), nil
}

var clockTimeRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?`)

// FormatClockTime renders a backend time of day ("HH:MM:SS", optionally
// with fractional seconds) as "hh:mm AM". Values that do not look like a
// time are returned unchanged.
func FormatClockTime(v string) string {
	v = strings.TrimSpace(v)
	if i := strings.IndexByte(v, '.'); i >= 0 {
		v = v[:i]
	}
	m := clockTimeRe.FindStringSubmatch(v)
	if m == nil {
		return v
	}

	layout := "15:04"
	value := m[1] + ":" + m[2]
	if len(m[1]) == 1 {
		value = "0" + value
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return v
	}
	return t.Format("03:04 PM")
}
