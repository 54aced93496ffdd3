package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/go-attendance/internal/adapter"
	"github.com/MKhiriev/go-attendance/internal/app"
	"github.com/MKhiriev/go-attendance/internal/crypto"
	"github.com/MKhiriev/go-attendance/internal/logger"
)

const (
	minPasswordLength   = 8
	maxPasswordLength   = 16
	minPasswordStrength = 50
)

var (
	lowerRe  = regexp.MustCompile(`[a-z]`)
	upperRe  = regexp.MustCompile(`[A-Z]`)
	digitRe  = regexp.MustCompile(`[0-9]`)
	symbolRe = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// PasswordStrength scores a password from 0 to 100: 25 points each for a
// length of at least eight, a lower-case letter, an upper-case letter, a
// digit and a symbol, capped at 100.
func PasswordStrength(p string) int {
	score := 0
	if utf8.RuneCountInString(p) >= minPasswordLength {
		score += 25
	}
	for _, re := range []*regexp.Regexp{lowerRe, upperRe, digitRe, symbolRe} {
		if re.MatchString(p) {
			score += 25
		}
	}
	return min(score, 100)
}

// StrengthLabel names a PasswordStrength score.
func StrengthLabel(score int) string {
	switch {
	case score < 50:
		return "Weak"
	case score < 75:
		return "Medium"
	default:
		return "Strong"
	}
}

type passwordService struct {
	identity IdentityStore
	api      adapter.AttendanceAPI
	codec    crypto.Codec
}

// NewPasswordService constructs a PasswordService.
func NewPasswordService(identity IdentityStore, api adapter.AttendanceAPI, codec crypto.Codec) PasswordService {
	return &passwordService{identity: identity, api: api, codec: codec}
}

// ChangePassword implements PasswordService. Checks run in a fixed order
// and the first failure is returned.
func (s *passwordService) ChangePassword(ctx context.Context, current, next, confirm string) (string, error) {
	if current == "" || next == "" || confirm == "" {
		return "", ErrPasswordFieldsRequired
	}
	if next != confirm {
		return "", ErrPasswordMismatch
	}
	if n := utf8.RuneCountInString(next); n < minPasswordLength || n > maxPasswordLength {
		return "", ErrPasswordLength
	}
	if PasswordStrength(next) < minPasswordStrength {
		return "", ErrPasswordTooWeak
	}
	if !s.identity.IsAuthenticated(ctx) {
		return "", ErrNotAuthenticated
	}

	code := s.identity.EmployeeCode(ctx)
	resp, err := s.api.UpdatePassword(ctx, code, current, next)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "passwordService.ChangePassword").Msg("password change rejected")
		if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrBadRequest) {
			return "", fmt.Errorf("%w: %w", ErrWrongCurrentPassword, err)
		}
		return "", mapAdapterError(err)
	}

	if resp.EmployeeCode != "" {
		if _, err := s.codec.Decrypt(resp.EmployeeCode); err != nil {
			return "", fmt.Errorf("%w: %w", ErrPasswordResponseInvalid, err)
		}
	}
	if resp.Message == "" {
		return app.MsgPasswordChanged, nil
	}
	return resp.Message, nil
}
