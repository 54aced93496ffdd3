package service

import (
	"context"

	"github.com/MKhiriev/go-attendance/internal/adapter"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/session"
)

type checkInService struct {
	identity IdentityStore
	cache    FlagCache
	api      adapter.AttendanceAPI
}

// NewCheckInService constructs a CheckInService over the check-in scope.
func NewCheckInService(identity IdentityStore, cache FlagCache, api adapter.AttendanceAPI) CheckInService {
	return &checkInService{identity: identity, cache: cache, api: api}
}

// RefreshCheckInStatus implements CheckInService.
func (s *checkInService) RefreshCheckInStatus(ctx context.Context) error {
	if !s.identity.IsAuthenticated(ctx) {
		return ErrNotAuthenticated
	}

	resp, err := s.api.CheckInStatus(ctx, s.identity.EmployeeCode(ctx))
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "checkInService.RefreshCheckInStatus").Msg("check-in status unavailable")
		return mapAdapterError(err)
	}

	s.cache.RecordAll(ctx, map[string]string{
		session.KeyCheckInStatus: resp.Status,
		session.KeyDuration:      resp.Duration,
	})
	return nil
}

// CheckInStatus implements CheckInService.
func (s *checkInService) CheckInStatus(ctx context.Context) (string, bool) {
	return s.cache.Read(ctx, session.KeyCheckInStatus)
}

// Duration implements CheckInService.
func (s *checkInService) Duration(ctx context.Context) (string, bool) {
	return s.cache.Read(ctx, session.KeyDuration)
}

// ResetCheckInStatus implements CheckInService.
func (s *checkInService) ResetCheckInStatus(ctx context.Context) {
	s.cache.Clear(ctx)
}
