package models

import "time"

// GlobalFeed selects announcements addressed to everybody.
const GlobalFeed = "GLOBAL"

// APINotification is an announcement as returned by GET /notifications/{code}.
type APINotification struct {
	ID           int64  `json:"id"`
	Text         string `json:"text"`
	CreatedAt    string `json:"created_at"`
	IsRead       bool   `json:"is_read"`
	EmployeeCode string `json:"employee_code,omitempty"`
}

// NotificationsResponse wraps the announcement list.
type NotificationsResponse struct {
	Success bool              `json:"success"`
	Data    []APINotification `json:"data"`
}

// Notification is an announcement prepared for display.
type Notification struct {
	ID        int64
	Message   string
	Timestamp time.Time
	IsRead    bool
	IsGlobal  bool
}

// MarkReadRequest is the body of PUT /notifications/mark-as-read.
type MarkReadRequest struct {
	AnnouncementID int64  `json:"announcement_id"`
	EmployeeCode   string `json:"employee_code"`
}

// MarkAllReadRequest is the body of PUT /notifications/mark-all-read.
type MarkAllReadRequest struct {
	EmployeeCode string `json:"employee_code"`
}
