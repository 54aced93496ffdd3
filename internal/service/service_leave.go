package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-attendance/internal/adapter"
	"github.com/MKhiriev/go-attendance/internal/app"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/validators"
	"github.com/MKhiriev/go-attendance/models"
)

type leaveService struct {
	identity  IdentityStore
	api       adapter.AttendanceAPI
	validator validators.Validator
}

// NewLeaveService constructs a LeaveService.
func NewLeaveService(identity IdentityStore, api adapter.AttendanceAPI, v validators.Validator) LeaveService {
	return &leaveService{identity: identity, api: api, validator: v}
}

// Apply implements LeaveService.
func (s *leaveService) Apply(ctx context.Context, req models.LeaveRequest) (string, int, error) {
	if !s.identity.IsAuthenticated(ctx) {
		return "", 0, ErrNotAuthenticated
	}
	req.Reason = strings.TrimSpace(req.Reason)
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", 0, err
	}
	days := LeaveDays(req.StartDate, req.EndDate)

	resp, err := s.api.ApplyLeave(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("func", "leaveService.Apply").Msg("leave request failed")
		return "", 0, mapAdapterError(err)
	}
	if resp.Message == "" {
		return app.MsgLeaveApplied, days, nil
	}
	return resp.Message, days, nil
}

// LeaveDays counts the calendar days from start to end inclusive. It
// returns 0 when either date is malformed or end precedes start.
func LeaveDays(start, end string) int {
	from, err := time.Parse(models.DateLayout, start)
	if err != nil {
		return 0
	}
	to, err := time.Parse(models.DateLayout, end)
	if err != nil || to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}
