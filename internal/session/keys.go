package session

// Storage keys shared with the web dashboard.
const (
	KeyEmployeeCode = "employeeCode"
	KeyUserData     = "userData"
	KeyAuthToken    = "authToken"

	KeyAttendanceMarked   = "attendanceMarked"
	KeyLastAttendanceDate = "lastAttendanceDate"

	KeyCheckInStatus   = "checkInStatus"
	KeyDuration        = "duration"
	KeyLastCheckInDate = "lastCheckInDate"
)

// NotAvailable is the employee code reported when nobody is signed in.
const NotAvailable = "NA"

// MarkedValue is the plaintext stored under KeyAttendanceMarked.
const MarkedValue = "true"

// logoutPrefixes select leftover keys removed on logout.
var logoutPrefixes = []string{"auth_", "user_"}

// Scope is a group of flags sharing one date key.
type Scope struct {
	Name      string
	DateKey   string
	Keys      []string
	Encrypted bool
}

func (s Scope) has(key string) bool {
	for _, k := range s.Keys {
		if k == key {
			return true
		}
	}
	return false
}

func (s Scope) allKeys() []string {
	keys := make([]string, 0, len(s.Keys)+1)
	keys = append(keys, s.Keys...)
	return append(keys, s.DateKey)
}

var (
	// AttendanceScope holds the "entry already marked today" flag in plaintext.
	AttendanceScope = Scope{
		Name:    "attendance",
		DateKey: KeyLastAttendanceDate,
		Keys:    []string{KeyAttendanceMarked},
	}

	// CheckInScope holds today's check-in status and worked duration as
	// ciphertext.
	CheckInScope = Scope{
		Name:      "checkin",
		DateKey:   KeyLastCheckInDate,
		Keys:      []string{KeyCheckInStatus, KeyDuration},
		Encrypted: true,
	}
)
