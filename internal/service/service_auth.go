package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-attendance/internal/adapter"
	"github.com/MKhiriev/go-attendance/internal/crypto"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/validators"
	"github.com/MKhiriev/go-attendance/models"
)

type authService struct {
	identity  IdentityStore
	dayFlags  []FlagCache
	api       adapter.AttendanceAPI
	codec     crypto.Codec
	validator validators.Validator
}

// NewAuthService constructs an AuthService. dayFlags are cleared when a
// different employee signs in on the same machine.
func NewAuthService(identity IdentityStore, api adapter.AttendanceAPI, codec crypto.Codec, v validators.Validator, dayFlags ...FlagCache) AuthService {
	return &authService{identity: identity, dayFlags: dayFlags, api: api, codec: codec, validator: v}
}

// Login implements AuthService. A response without an Authorization value
// is a rejection; its message, when present, is kept in the error.
func (s *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, creds); err != nil {
		return models.User{}, err
	}

	resp, err := s.api.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrBadRequest) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return models.User{}, mapAdapterError(err)
	}
	if resp.Authorization == "" {
		if resp.Message != "" {
			return models.User{}, fmt.Errorf("%w: %s", ErrInvalidCredentials, resp.Message)
		}
		return models.User{}, ErrInvalidCredentials
	}

	code, err := s.codec.Decrypt(resp.EmployeeCode)
	if err != nil {
		log.Error().Err(err).Str("func", "authService.Login").Msg("employee code in login response is not decryptable")
		return models.User{}, fmt.Errorf("%w: %w", ErrLoginResponse, err)
	}

	if prev := s.identity.EmployeeCode(ctx); prev != code {
		for _, f := range s.dayFlags {
			f.Clear(ctx)
		}
	}

	profile := models.User{
		EmployeeCode: code,
		Name:         resp.Name,
		Email:        resp.Email,
		Role:         resp.Role,
	}
	if profile.Email == "" {
		profile.Email = creds.Email
	}

	s.identity.Login(ctx, code, &profile, resp.Authorization)
	s.api.SetToken(resp.Authorization)

	log.Info().Str("func", "authService.Login").Msg("employee signed in")
	return profile, nil
}

// Logout implements AuthService.
func (s *authService) Logout(ctx context.Context) {
	s.identity.Logout(ctx)
	s.api.SetToken("")
	logger.FromContext(ctx).Info().Str("func", "authService.Logout").Msg("employee signed out")
}

// CurrentUser implements AuthService.
func (s *authService) CurrentUser(ctx context.Context) (models.User, bool) {
	if !s.identity.IsAuthenticated(ctx) {
		return models.User{}, false
	}
	if u, ok := s.identity.UserData(ctx); ok && u.EmployeeCode != "" {
		return u, true
	}
	return models.User{EmployeeCode: s.identity.EmployeeCode(ctx)}, true
}

// RestoreSession implements AuthService.
func (s *authService) RestoreSession(ctx context.Context) (models.User, error) {
	user, ok := s.CurrentUser(ctx)
	if !ok {
		return models.User{}, ErrNotAuthenticated
	}
	if s.identity.AuthTokenExpired(ctx) {
		s.Logout(ctx)
		return models.User{}, ErrSessionExpired
	}
	if token, ok := s.identity.AuthToken(ctx); ok {
		s.api.SetToken(token)
	}
	return user, nil
}
