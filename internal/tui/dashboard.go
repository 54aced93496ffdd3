package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-attendance/internal/service"
	"github.com/MKhiriev/go-attendance/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type dashboardStage int

const (
	stageHome dashboardStage = iota
	stageExit
	stagePassword
	stageNotifications
)

// dashboardTick re-reads the cached check-in state written by the status
// refresh job.
const dashboardTick = 30 * time.Second

type dashboardModel struct {
	ctx      context.Context
	services *service.ClientServices
	user     models.User

	fullName string
	view     models.AttendanceView
	checkIn  string
	duration string
	marked   bool

	busy   bool
	status string
	errMsg string
	stage  dashboardStage

	exitStatuses []models.AttendanceStatus
	exitIdx      int
	remarks      textinput.Model

	pwInputs []textinput.Model
	pwFocus  int

	notifications []models.Notification
	notifIdx      int

	logout bool
}

func newDashboardModel(ctx context.Context, services *service.ClientServices, user models.User) dashboardModel {
	remarks := textinput.New()
	remarks.Placeholder = "remarks (optional)"
	remarks.CharLimit = 500
	remarks.Width = 40

	return dashboardModel{
		ctx:          ctx,
		services:     services,
		user:         user,
		fullName:     user.Name,
		view:         models.DefaultAttendanceView(),
		marked:       services.AttendanceService.HasMarkedAttendance(ctx),
		exitStatuses: models.AttendanceStatuses(),
		remarks:      remarks,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadProfile(), m.cmdLoadDetails(), m.cmdRefreshCheckIn(), cmdTick())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.err == nil && msg.name != "" {
			m.fullName = msg.name
		}
		return m, nil

	case detailsLoadedMsg:
		m.view = msg.view
		return m, nil

	case checkInRefreshedMsg:
		m.checkIn, m.duration = msg.status, msg.duration
		if msg.err != nil && !errors.Is(msg.err, service.ErrNotAuthenticated) {
			m.status = "Check-in status unavailable: " + humanizeError(msg.err)
		}
		return m, nil

	case tickMsg:
		m.readCache()
		return m, cmdTick()

	case entryDoneMsg:
		m.busy = false
		m.marked = m.services.AttendanceService.HasMarkedAttendance(m.ctx)
		switch {
		case msg.err == nil:
			m.status = msg.message
		case errors.Is(msg.err, service.ErrEntryAlreadyMarked):
			m.status = "Entry already marked for today"
		default:
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, tea.Batch(m.cmdLoadDetails(), m.cmdRefreshCheckIn())

	case exitDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.stage = stageHome
		m.status = msg.message
		m.remarks.Reset()
		m.remarks.Blur()
		return m, tea.Batch(m.cmdLoadDetails(), m.cmdRefreshCheckIn())

	case passwordDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.stage = stageHome
		m.status = msg.message
		m.pwInputs = nil
		return m, nil

	case notificationsLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.notifications = msg.items
		if m.notifIdx >= len(m.notifications) {
			m.notifIdx = 0
		}
		return m, nil

	case notificationReadMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		for i := range m.notifications {
			if msg.all || m.notifications[i].ID == msg.id {
				m.notifications[i].IsRead = true
			}
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.errMsg != "" {
			if key.Matches(msg, keys.enter, keys.esc) {
				m.errMsg = ""
			}
			return m, nil
		}
		switch m.stage {
		case stageExit:
			return m.updateExit(msg)
		case stagePassword:
			return m.updatePassword(msg)
		case stageNotifications:
			return m.updateNotifications(msg)
		default:
			return m.updateHome(msg)
		}
	}

	return m, nil
}

func (m dashboardModel) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.services.AuthService.Logout(m.ctx)
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.entry):
		if m.busy {
			return m, nil
		}
		if m.marked {
			m.status = "Entry already marked for today"
			return m, nil
		}
		m.busy = true
		m.status = "Marking entry..."
		return m, m.cmdMarkEntry()
	case key.Matches(msg, keys.exit):
		if m.busy {
			return m, nil
		}
		m.stage = stageExit
		m.status = ""
		return m, m.remarks.Focus()
	case key.Matches(msg, keys.refresh):
		return m, tea.Batch(m.cmdLoadDetails(), m.cmdRefreshCheckIn())
	case key.Matches(msg, keys.password):
		if m.busy {
			return m, nil
		}
		m.stage = stagePassword
		m.status = ""
		m.pwInputs = newPasswordInputs()
		m.pwFocus = 0
		return m, textinput.Blink
	case key.Matches(msg, keys.notifications):
		if m.busy {
			return m, nil
		}
		m.stage = stageNotifications
		m.status = ""
		m.busy = true
		return m, m.cmdLoadNotifications()
	}
	return m, nil
}

func (m dashboardModel) updateExit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if !m.busy {
			m.stage = stageHome
			m.remarks.Blur()
		}
		return m, nil
	case "up":
		if m.exitIdx > 0 {
			m.exitIdx--
		}
		return m, nil
	case "down":
		if m.exitIdx < len(m.exitStatuses)-1 {
			m.exitIdx++
		}
		return m, nil
	case "enter":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdMarkExit(m.exitStatuses[m.exitIdx], m.remarks.Value())
	}

	if m.busy {
		return m, nil
	}
	var cmd tea.Cmd
	m.remarks, cmd = m.remarks.Update(msg)
	return m, cmd
}

func (m dashboardModel) updatePassword(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if !m.busy {
			m.stage = stageHome
			m.pwInputs = nil
		}
		return m, nil
	case key.Matches(msg, keys.tab, keys.backtab):
		step := 1
		if key.Matches(msg, keys.backtab) {
			step = len(m.pwInputs) - 1
		}
		m.pwInputs[m.pwFocus].Blur()
		m.pwFocus = (m.pwFocus + step) % len(m.pwInputs)
		return m, m.pwInputs[m.pwFocus].Focus()
	case key.Matches(msg, keys.enter):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdChangePassword(m.pwInputs[0].Value(), m.pwInputs[1].Value(), m.pwInputs[2].Value())
	}

	if m.busy {
		return m, nil
	}
	var cmd tea.Cmd
	m.pwInputs[m.pwFocus], cmd = m.pwInputs[m.pwFocus].Update(msg)
	return m, cmd
}

func (m dashboardModel) updateNotifications(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.stage = stageHome
		return m, nil
	case key.Matches(msg, keys.up):
		if m.notifIdx > 0 {
			m.notifIdx--
		}
	case key.Matches(msg, keys.down):
		if m.notifIdx < len(m.notifications)-1 {
			m.notifIdx++
		}
	case key.Matches(msg, keys.markRead):
		if m.busy || len(m.notifications) == 0 {
			return m, nil
		}
		m.busy = true
		return m, m.cmdMarkRead(m.notifications[m.notifIdx].ID)
	case key.Matches(msg, keys.markAllRead):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdMarkAllRead()
	}
	return m, nil
}

func (m *dashboardModel) readCache() {
	m.checkIn, _ = m.services.CheckInService.CheckInStatus(m.ctx)
	m.duration, _ = m.services.CheckInService.Duration(m.ctx)
	m.marked = m.services.AttendanceService.HasMarkedAttendance(m.ctx)
}

func newPasswordInputs() []textinput.Model {
	placeholders := []string{"current password", "new password", "confirm new password"}
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		in := textinput.New()
		in.Placeholder = p
		in.CharLimit = 64
		in.Width = 30
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
		inputs[i] = in
	}
	inputs[0].Focus()
	return inputs
}

// ── commands ────────────────────────────────────────────────────────────────

func cmdTick() tea.Cmd {
	return tea.Tick(dashboardTick, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m dashboardModel) cmdLoadProfile() tea.Cmd {
	ctx, svc := m.ctx, m.services.EmployeeService
	return func() tea.Msg {
		d, err := svc.Details(ctx, "")
		return profileLoadedMsg{name: d.FullName, err: err}
	}
}

func (m dashboardModel) cmdLoadDetails() tea.Cmd {
	ctx, svc := m.ctx, m.services.AttendanceService
	return func() tea.Msg {
		return detailsLoadedMsg{view: svc.TodayAttendance(ctx)}
	}
}

func (m dashboardModel) cmdRefreshCheckIn() tea.Cmd {
	ctx, svc := m.ctx, m.services.CheckInService
	return func() tea.Msg {
		err := svc.RefreshCheckInStatus(ctx)
		status, _ := svc.CheckInStatus(ctx)
		duration, _ := svc.Duration(ctx)
		return checkInRefreshedMsg{status: status, duration: duration, err: err}
	}
}

func (m dashboardModel) cmdMarkEntry() tea.Cmd {
	ctx, svc := m.ctx, m.services.AttendanceService
	return func() tea.Msg {
		message, err := svc.MarkEntry(ctx)
		return entryDoneMsg{message: message, err: err}
	}
}

func (m dashboardModel) cmdMarkExit(status models.AttendanceStatus, remarks string) tea.Cmd {
	ctx, svc := m.ctx, m.services.AttendanceService
	return func() tea.Msg {
		message, err := svc.MarkExit(ctx, status, remarks)
		return exitDoneMsg{message: message, err: err}
	}
}

func (m dashboardModel) cmdChangePassword(current, next, confirm string) tea.Cmd {
	ctx, svc := m.ctx, m.services.PasswordService
	return func() tea.Msg {
		message, err := svc.ChangePassword(ctx, current, next, confirm)
		return passwordDoneMsg{message: message, err: err}
	}
}

func (m dashboardModel) cmdLoadNotifications() tea.Cmd {
	ctx, svc := m.ctx, m.services.NotificationService
	return func() tea.Msg {
		items, err := svc.Load(ctx, "")
		return notificationsLoadedMsg{items: items, err: err}
	}
}

func (m dashboardModel) cmdMarkRead(id int64) tea.Cmd {
	ctx, svc := m.ctx, m.services.NotificationService
	return func() tea.Msg {
		return notificationReadMsg{id: id, err: svc.MarkAsRead(ctx, id)}
	}
}

func (m dashboardModel) cmdMarkAllRead() tea.Cmd {
	ctx, svc := m.ctx, m.services.NotificationService
	return func() tea.Msg {
		return notificationReadMsg{all: true, err: svc.MarkAllAsRead(ctx)}
	}
}

// ── views ───────────────────────────────────────────────────────────────────

func (m dashboardModel) View() string {
	var page string
	switch m.stage {
	case stageExit:
		page = m.viewExit()
	case stagePassword:
		page = m.viewPassword()
	case stageNotifications:
		page = m.viewNotifications()
	default:
		page = m.viewHome()
	}

	if m.errMsg != "" {
		return page + "\n\n" + errorOverlayModel{message: m.errMsg}.View()
	}
	return page
}

func (m dashboardModel) viewHome() string {
	var b strings.Builder
	b.WriteString(row("Employee", valueOrDash(m.fullName)) + "\n")
	b.WriteString(row("Code", m.user.EmployeeCode) + "\n")
	b.WriteString("\n")
	b.WriteString(row("Check-in", m.view.CheckInTime) + "\n")
	b.WriteString(row("Check-out", m.view.CheckOutTime) + "\n")
	b.WriteString(row("Status", m.view.Status) + "\n")
	if m.view.Remarks != "" {
		b.WriteString(row("Remarks", m.view.Remarks) + "\n")
	}
	b.WriteString(row("Live status", valueOrDash(m.checkIn)) + "\n")
	b.WriteString(row("Worked", valueOrDash(m.duration)) + "\n")

	entry := "[Mark Entry]"
	if m.marked {
		entry = "[Entry Marked]"
	}
	b.WriteString("\n" + entry + "  [Mark Exit]\n")

	if m.status != "" {
		b.WriteString("\n" + okStyle.Render(m.status) + "\n")
	}

	return renderPage(titleStyle.Render("ATTENDANCE"), strings.TrimRight(b.String(), "\n"),
		"e: entry │ x: exit │ r: refresh │ n: announcements │ p: password │ o: logout │ q: quit")
}

func (m dashboardModel) viewExit() string {
	var b strings.Builder
	b.WriteString("Status:\n")
	for i, s := range m.exitStatuses {
		cursor := " "
		if i == m.exitIdx {
			cursor = ">"
		}
		fmt.Fprintf(&b, "%s %d %s\n", cursor, int(s), s)
	}
	b.WriteString("\nRemarks: [")
	b.WriteString(m.remarks.View())
	b.WriteString("]\n")
	if m.busy {
		b.WriteString("\n[Submitting...]\n")
	}
	return renderPage(titleStyle.Render("MARK EXIT"), strings.TrimRight(b.String(), "\n"), "↑/↓: status │ enter: submit │ esc: back")
}

func (m dashboardModel) viewPassword() string {
	var b strings.Builder
	labels := []string{"Current", "New", "Confirm"}
	for i, in := range m.pwInputs {
		b.WriteString(row(labels[i], "["+in.View()+"]") + "\n")
	}
	if len(m.pwInputs) > 1 && m.pwInputs[1].Value() != "" {
		score := service.PasswordStrength(m.pwInputs[1].Value())
		fmt.Fprintf(&b, "\nStrength: %s (%d%%)\n", service.StrengthLabel(score), score)
	}
	if m.busy {
		b.WriteString("\n[Updating...]\n")
	}
	return renderPage(titleStyle.Render("CHANGE PASSWORD"), strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: submit │ esc: back")
}

func (m dashboardModel) viewNotifications() string {
	var b strings.Builder
	if m.busy && len(m.notifications) == 0 {
		b.WriteString("Loading...")
	}
	for i, n := range m.notifications {
		cursor := " "
		if i == m.notifIdx {
			cursor = ">"
		}
		read := "•"
		if n.IsRead {
			read = " "
		}
		scope := "you   "
		if n.IsGlobal {
			scope = "global"
		}
		when := "-"
		if !n.Timestamp.IsZero() {
			when = n.Timestamp.Local().Format("02 Jan 15:04")
		}
		fmt.Fprintf(&b, "%s %s %s %-12s %s\n", cursor, read, scope, when, fitText(n.Message, 60))
	}
	if !m.busy && len(m.notifications) == 0 {
		b.WriteString("No announcements")
	}
	return renderPage(titleStyle.Render("ANNOUNCEMENTS"), strings.TrimRight(b.String(), "\n"), "↑/↓: select │ m: mark read │ a: mark all read │ esc: back")
}
