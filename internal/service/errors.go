package service

import "errors"

var (
	ErrNotAuthenticated   = errors.New("not signed in")
	ErrSessionExpired     = errors.New("session expired, please sign in again")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrLoginResponse      = errors.New("login response could not be read")
	ErrForbidden          = errors.New("not allowed")

	ErrEntryAlreadyMarked = errors.New("entry already marked for today")
	ErrUnexpectedMessage  = errors.New("unexpected response from attendance service")
	ErrInvalidStatus      = errors.New("unknown attendance status")

	ErrPasswordFieldsRequired  = errors.New("please fill in all password fields")
	ErrPasswordMismatch        = errors.New("new passwords do not match")
	ErrPasswordLength          = errors.New("password must be between 8 and 16 characters")
	ErrPasswordTooWeak         = errors.New("please choose a stronger password")
	ErrWrongCurrentPassword    = errors.New("current password is incorrect")
	ErrPasswordResponseInvalid = errors.New("password change response could not be verified")

	ErrInvalidPeriod = errors.New("month must be 1-12 and year positive")
	ErrNotFound      = errors.New("no records found")

	ErrServiceUnavailable = errors.New("attendance service unavailable, please try again")
)
