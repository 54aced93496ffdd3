package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/MKhiriev/go-attendance/models"
	"github.com/go-playground/validator/v10"
)

// FormValidator validates the client's forms: credentials, employee
// registration, attendance corrections and leave requests.
type FormValidator struct {
	validate *validator.Validate
}

// customRules are the tags registered on top of the validator built-ins.
var customRules = map[string]validator.Func{
	"phone10":           validatePhone10,
	"attendance_status": validateAttendanceStatus,
}

// NewFormValidator constructs a FormValidator with the custom tags
// "phone10" and "attendance_status" registered. It panics if a rule cannot
// be registered.
func NewFormValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := registerRules(v, customRules); err != nil {
		panic(err)
	}
	return &FormValidator{validate: v}
}

func registerRules(v *validator.Validate, rules map[string]validator.Func) error {
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register validation %q: %w", tag, err)
		}
	}
	return nil
}

// Validate checks obj against its struct tags. When fields are given only
// those struct fields are checked. Leave requests are additionally checked
// for an end date before the start date.
//
// Supported types (value or pointer): models.Credentials,
// models.RegisterEmployeeRequest, models.SetAttendanceRequest,
// models.LeaveRequest.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials, models.RegisterEmployeeRequest, models.SetAttendanceRequest:
		return v.validateStruct(ctx, value, fields)
	case *models.Credentials:
		return v.Validate(ctx, *value, fields...)
	case *models.RegisterEmployeeRequest:
		return v.Validate(ctx, *value, fields...)
	case *models.SetAttendanceRequest:
		return v.Validate(ctx, *value, fields...)
	case models.LeaveRequest:
		return v.validateLeave(ctx, value, fields)
	case *models.LeaveRequest:
		return v.validateLeave(ctx, *value, fields)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *FormValidator) validateStruct(ctx context.Context, obj any, fields []string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	return mapValidationErrors(err)
}

func (v *FormValidator) validateLeave(ctx context.Context, req models.LeaveRequest, fields []string) error {
	if err := v.validateStruct(ctx, req, fields); err != nil {
		return err
	}
	if len(fields) > 0 {
		return nil
	}

	start, _ := time.Parse(models.DateLayout, req.StartDate)
	end, _ := time.Parse(models.DateLayout, req.EndDate)
	if end.Before(start) {
		return ErrLeaveEndBeforeStart
	}
	return nil
}

// fieldErrors maps "Struct.Field" and a failed tag to a sentinel. The empty
// tag is the fallback for the field.
var fieldErrors = map[string]map[string]error{
	"Credentials.Email":    {"required": ErrEmailRequired, "": ErrInvalidEmail},
	"Credentials.Password": {"": ErrPasswordRequired},

	"RegisterEmployeeRequest.FirstName":   {"": ErrFirstNameRequired},
	"RegisterEmployeeRequest.LastName":    {"": ErrLastNameRequired},
	"RegisterEmployeeRequest.EmailID":     {"required": ErrEmailRequired, "": ErrInvalidEmail},
	"RegisterEmployeeRequest.PhoneNumber": {"required": ErrPhoneRequired, "": ErrInvalidPhone},
	"RegisterEmployeeRequest.JoiningDate": {"required": ErrJoiningDateRequired, "": ErrInvalidDate},

	"SetAttendanceRequest.EmployeeCode": {"": ErrEmployeeCodeRequired},
	"SetAttendanceRequest.Date":         {"": ErrInvalidDate},
	"SetAttendanceRequest.CheckInTime":  {"": ErrInvalidTime},
	"SetAttendanceRequest.CheckOutTime": {"": ErrInvalidTime},
	"SetAttendanceRequest.Status":       {"": ErrInvalidStatus},
	"SetAttendanceRequest.Remarks":      {"": ErrRemarksTooLong},

	"LeaveRequest.LeaveType": {"required": ErrLeaveTypeRequired, "": ErrInvalidLeaveType},
	"LeaveRequest.StartDate": {"required": ErrLeaveDateRequired, "": ErrInvalidDate},
	"LeaveRequest.EndDate":   {"required": ErrLeaveDateRequired, "": ErrInvalidDate},
	"LeaveRequest.Reason":    {"required": ErrReasonRequired, "": ErrReasonTooLong},
}

func mapValidationErrors(err error) error {
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	errs := make([]error, 0, len(ve))
	for _, fe := range ve {
		errs = append(errs, fieldError(fe))
	}
	return errors.Join(errs...)
}

func fieldError(fe validator.FieldError) error {
	ns := fe.StructNamespace()
	byTag, ok := fieldErrors[ns]
	if !ok {
		return fmt.Errorf("%w: %s failed %q", ErrInvalidInput, ns, fe.Tag())
	}
	if e, ok := byTag[fe.Tag()]; ok {
		return e
	}
	return byTag[""]
}

// validatePhone10 accepts values with exactly ten digits once every
// non-digit character is dropped.
func validatePhone10(fl validator.FieldLevel) bool {
	return len(PhoneDigits(fl.Field().String())) == 10
}

func validateAttendanceStatus(fl validator.FieldLevel) bool {
	return models.AttendanceStatus(fl.Field().Int()).Valid()
}

// PhoneDigits returns s with every non-digit removed.
func PhoneDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, s)
}
