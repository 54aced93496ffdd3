package service

import (
	"context"

	"github.com/MKhiriev/go-attendance/internal/adapter"
	"github.com/MKhiriev/go-attendance/internal/app"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/validators"
	"github.com/MKhiriev/go-attendance/models"
)

type adminService struct {
	identity  IdentityStore
	api       adapter.AttendanceAPI
	validator validators.Validator
}

// NewAdminService constructs an AdminService.
func NewAdminService(identity IdentityStore, api adapter.AttendanceAPI, v validators.Validator) AdminService {
	return &adminService{identity: identity, api: api, validator: v}
}

// SetAttendance implements AdminService.
func (s *adminService) SetAttendance(ctx context.Context, req models.SetAttendanceRequest) (string, error) {
	if !s.identity.IsAuthenticated(ctx) {
		return "", ErrNotAuthenticated
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", err
	}

	resp, err := s.api.SetAttendanceStatus(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).
			Str("func", "adminService.SetAttendance").
			Str("date", req.Date).
			Msg("attendance correction failed")
		return "", mapAdapterError(err)
	}
	if resp.Message == "" {
		return app.MsgAttendanceUpdated, nil
	}
	return resp.Message, nil
}
