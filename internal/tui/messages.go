package tui

import (
	"github.com/MKhiriev/go-attendance/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the RootModel to Page and, when set, delivers Payload
// to it.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login command.
type LoginResult struct {
	User models.User
	Err  error
}

type profileLoadedMsg struct {
	name string
	err  error
}

type detailsLoadedMsg struct {
	view models.AttendanceView
}

type checkInRefreshedMsg struct {
	status   string
	duration string
	err      error
}

type entryDoneMsg struct {
	message string
	err     error
}

type exitDoneMsg struct {
	message string
	err     error
}

type passwordDoneMsg struct {
	message string
	err     error
}

type notificationsLoadedMsg struct {
	items []models.Notification
	err   error
}

type notificationReadMsg struct {
	id  int64
	all bool
	err error
}

type tickMsg struct{}
