package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrInvalidInput    = errors.New("invalid input")

	ErrEmailRequired    = errors.New("email is required")
	ErrInvalidEmail     = errors.New("please enter a valid email address")
	ErrPasswordRequired = errors.New("password is required")

	ErrFirstNameRequired   = errors.New("first name is required")
	ErrLastNameRequired    = errors.New("last name is required")
	ErrPhoneRequired       = errors.New("phone number is required")
	ErrInvalidPhone        = errors.New("phone number must contain exactly 10 digits")
	ErrJoiningDateRequired = errors.New("joining date is required")

	ErrEmployeeCodeRequired = errors.New("employee code is required")
	ErrInvalidDate          = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTime          = errors.New("time must be in HH:MM format")
	ErrInvalidStatus        = errors.New("unknown attendance status")
	ErrRemarksTooLong       = errors.New("remarks are too long")

	ErrLeaveTypeRequired   = errors.New("leave type is required")
	ErrInvalidLeaveType    = errors.New("leave type must be sick, personal, vacation or emergency")
	ErrLeaveDateRequired   = errors.New("start and end dates are required")
	ErrLeaveEndBeforeStart = errors.New("end date cannot be before start date")
	ErrReasonRequired      = errors.New("reason is required")
	ErrReasonTooLong       = errors.New("reason is too long")
)
