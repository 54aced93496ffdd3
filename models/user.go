package models

// User is the profile of the signed-in employee kept in the local session.
// Only EmployeeCode is mandatory; the rest is filled from the login response
// when the backend provides it.
type User struct {
	EmployeeCode string `json:"employeeCode"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Role         string `json:"role,omitempty"`
}

// Credentials are the plaintext login form values. They are encrypted
// before they leave the process.
type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// LoginResponse is the body of POST /login. EmployeeCode is ciphertext.
// A non-empty Authorization marks a successful login.
type LoginResponse struct {
	Authorization string `json:"Authorization"`
	EmployeeCode  string `json:"EmployeeCode"`
	Name          string `json:"Name,omitempty"`
	Email         string `json:"Email,omitempty"`
	Role          string `json:"Role,omitempty"`
	Message       string `json:"message,omitempty"`
}

// PasswordChangeResponse is the body of POST /UpdatePassword. EmployeeCode,
// when present, is ciphertext echoed by the backend.
type PasswordChangeResponse struct {
	Message      string `json:"message"`
	EmployeeCode string `json:"EmployeeCode,omitempty"`
}
