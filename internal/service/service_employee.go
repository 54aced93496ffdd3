package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-attendance/internal/adapter"
	"github.com/MKhiriev/go-attendance/internal/app"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/validators"
	"github.com/MKhiriev/go-attendance/models"
)

type employeeService struct {
	identity  IdentityStore
	api       adapter.AttendanceAPI
	validator validators.Validator
}

// NewEmployeeService constructs an EmployeeService.
func NewEmployeeService(identity IdentityStore, api adapter.AttendanceAPI, v validators.Validator) EmployeeService {
	return &employeeService{identity: identity, api: api, validator: v}
}

// Details implements EmployeeService.
func (s *employeeService) Details(ctx context.Context, code string) (models.EmployeeDetails, error) {
	code, err := resolveEmployeeCode(ctx, s.identity, code)
	if err != nil {
		return models.EmployeeDetails{}, err
	}

	details, err := s.api.EmployeeDetails(ctx, code)
	if err != nil {
		return models.EmployeeDetails{}, mapAdapterError(err)
	}
	return details, nil
}

// Register implements EmployeeService. The phone number is sent as its
// ten digits only.
func (s *employeeService) Register(ctx context.Context, req models.RegisterEmployeeRequest) (string, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.MiddleName = strings.TrimSpace(req.MiddleName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.EmailID = strings.TrimSpace(req.EmailID)

	if err := s.validator.Validate(ctx, req); err != nil {
		return "", err
	}
	req.PhoneNumber = validators.PhoneDigits(req.PhoneNumber)

	resp, err := s.api.RegisterEmployee(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("func", "employeeService.Register").Msg("employee registration failed")
		return "", mapAdapterError(err)
	}
	if resp.Message == "" {
		return app.MsgEmployeeRegistered, nil
	}
	return resp.Message, nil
}

// resolveEmployeeCode returns code, or the signed-in employee's code when
// code is empty.
func resolveEmployeeCode(ctx context.Context, identity IdentityStore, code string) (string, error) {
	if code = strings.TrimSpace(code); code != "" {
		return code, nil
	}
	if !identity.IsAuthenticated(ctx) {
		return "", ErrNotAuthenticated
	}
	return identity.EmployeeCode(ctx), nil
}
