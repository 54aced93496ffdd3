package models

// EmployeeDetails is the body of POST /EmployeeDetails.
type EmployeeDetails struct {
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"employee_full_name"`
	Message      string `json:"message,omitempty"`
}

// RegisterEmployeeRequest holds the administrator's new-employee form.
// PhoneNumber may contain separators; ten digits must remain once they are
// stripped.
type RegisterEmployeeRequest struct {
	FirstName   string `validate:"required"`
	MiddleName  string
	LastName    string `validate:"required"`
	EmailID     string `validate:"required,email"`
	PhoneNumber string `validate:"required,phone10"`
	JoiningDate string `validate:"required,datetime=2006-01-02"`
}
