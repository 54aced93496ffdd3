package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-attendance/internal/app"
	"github.com/MKhiriev/go-attendance/internal/crypto"
	"github.com/MKhiriev/go-attendance/internal/mock"
	"github.com/MKhiriev/go-attendance/internal/service"
	"github.com/MKhiriev/go-attendance/internal/session"
	"github.com/MKhiriev/go-attendance/internal/store"
	"github.com/MKhiriev/go-attendance/internal/validators"
	"github.com/MKhiriev/go-attendance/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCode = "ITL-KOL-1001"

func newTestServices(t *testing.T) (*service.ClientServices, *session.Session, *mock.MockAttendanceAPI) {
	t.Helper()
	codec, err := crypto.NewParamCodec("mysecretkey12345", "1234567890abcdef")
	require.NoError(t, err)

	sess := session.New(context.Background(), store.NewMemoryStorage(), codec)
	api := mock.NewMockAttendanceAPI(gomock.NewController(t))
	return service.NewClientServices(sess, api, codec, validators.NewFormValidator()), sess, api
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ── login ───────────────────────────────────────────────────────────────────

func TestLoginModel_RequiresBothFields(t *testing.T) {
	svcs, _, _ := newTestServices(t)
	m := NewLoginModel(context.Background(), svcs.AuthService)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "Email and password are required", m.errMsg)
	assert.False(t, m.submitting)
}

func TestLoginModel_SecondSubmitIgnoredWhileInFlight(t *testing.T) {
	svcs, _, _ := newTestServices(t)
	m := NewLoginModel(context.Background(), svcs.AuthService)
	m.inputs[0].SetValue("asha@example.com")
	m.inputs[1].SetValue("S3cret!pass")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestLoginModel_ErrorClearsSubmitting(t *testing.T) {
	svcs, _, _ := newTestServices(t)
	m := NewLoginModel(context.Background(), svcs.AuthService)
	m.submitting = true

	m.Update(LoginResult{Err: service.ErrInvalidCredentials})
	assert.False(t, m.submitting)
	assert.Equal(t, service.ErrInvalidCredentials.Error(), m.errMsg)
}

func TestRootModel_QuitsOnSuccessfulLogin(t *testing.T) {
	svcs, _, _ := newTestServices(t)
	root := NewRootModel(map[string]tea.Model{pageLogin: NewLoginModel(context.Background(), svcs.AuthService)}, pageLogin, models.AppBuildInfo{})

	updated, cmd := root.Update(LoginResult{User: models.User{EmployeeCode: testCode}})
	require.NotNil(t, cmd)
	assert.Equal(t, testCode, updated.(RootModel).user.EmployeeCode)
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{}, pageLogin, models.NewAppBuildInfo("1.2.0", "2026-01-01", "abc123"))

	updated, _ := root.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	assert.Contains(t, updated.View(), "1.2.0")

	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, updated.View(), "1.2.0")
}

// ── dashboard ───────────────────────────────────────────────────────────────

func TestDashboard_MarkEntryIgnoredWhileBusy(t *testing.T) {
	svcs, sess, _ := newTestServices(t)
	ctx := context.Background()
	sess.Login(ctx, testCode, nil, "")
	m := newDashboardModel(ctx, svcs, models.User{EmployeeCode: testCode})

	updated, cmd := m.Update(keyRunes("e"))
	require.NotNil(t, cmd)
	m = updated.(dashboardModel)
	assert.True(t, m.busy)

	_, cmd = m.Update(keyRunes("e"))
	assert.Nil(t, cmd)
}

func TestDashboard_StageKeysIgnoredWhileEntryInFlight(t *testing.T) {
	svcs, sess, _ := newTestServices(t)
	ctx := context.Background()
	sess.Login(ctx, testCode, nil, "")
	m := newDashboardModel(ctx, svcs, models.User{EmployeeCode: testCode})

	updated, cmd := m.Update(keyRunes("e"))
	require.NotNil(t, cmd)
	m = updated.(dashboardModel)
	require.True(t, m.busy)

	for _, k := range []string{"x", "p", "n"} {
		updated, cmd = m.Update(keyRunes(k))
		assert.Nil(t, cmd, "key %q", k)
		assert.Equal(t, stageHome, updated.(dashboardModel).stage, "key %q", k)
	}

	updated, _ = m.Update(entryDoneMsg{message: app.MsgEntryMarked})
	assert.False(t, updated.(dashboardModel).busy)
}

func TestDashboard_EntryMarkedLocallySkipsRequest(t *testing.T) {
	svcs, sess, _ := newTestServices(t)
	ctx := context.Background()
	sess.Login(ctx, testCode, nil, "")
	sess.Attendance.Record(ctx, session.KeyAttendanceMarked, session.MarkedValue)

	m := newDashboardModel(ctx, svcs, models.User{EmployeeCode: testCode})
	updated, cmd := m.Update(keyRunes("e"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Entry already marked for today", updated.(dashboardModel).status)
	assert.Contains(t, updated.View(), "[Entry Marked]")
}

func TestDashboard_MarkEntryCommandRecordsFlag(t *testing.T) {
	svcs, sess, api := newTestServices(t)
	ctx := context.Background()
	sess.Login(ctx, testCode, nil, "")
	api.EXPECT().MarkEntry(gomock.Any(), testCode).Return(models.MessageResponse{Message: app.MsgEntryMarked}, nil)

	m := newDashboardModel(ctx, svcs, models.User{EmployeeCode: testCode})
	msg := m.cmdMarkEntry()()

	done, ok := msg.(entryDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)

	updated, _ := m.Update(done)
	m = updated.(dashboardModel)
	assert.False(t, m.busy)
	assert.True(t, m.marked)
	assert.Equal(t, app.MsgEntryMarked, m.status)
}

func TestDashboard_ErrorOverlayDismissed(t *testing.T) {
	svcs, _, _ := newTestServices(t)
	m := newDashboardModel(context.Background(), svcs, models.User{EmployeeCode: testCode})

	updated, _ := m.Update(exitDoneMsg{err: errors.New("boom")})
	m = updated.(dashboardModel)
	assert.Contains(t, m.View(), "boom")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, updated.(dashboardModel).errMsg)
}

func TestDashboard_ExitStageSelectsStatus(t *testing.T) {
	svcs, _, _ := newTestServices(t)
	m := newDashboardModel(context.Background(), svcs, models.User{EmployeeCode: testCode})

	updated, _ := m.Update(keyRunes("x"))
	m = updated.(dashboardModel)
	require.Equal(t, stageExit, m.stage)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(dashboardModel)
	assert.Equal(t, models.StatusHalfDay, m.exitStatuses[m.exitIdx])

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stageHome, updated.(dashboardModel).stage)
}

func TestDashboard_NotificationsMarkedRead(t *testing.T) {
	svcs, _, _ := newTestServices(t)
	m := newDashboardModel(context.Background(), svcs, models.User{EmployeeCode: testCode})
	m.stage = stageNotifications

	updated, _ := m.Update(notificationsLoadedMsg{items: []models.Notification{
		{ID: 1, Message: "Office closed", Timestamp: time.Now(), IsGlobal: true},
		{ID: 2, Message: "Leave approved"},
	}})
	updated, _ = updated.Update(notificationReadMsg{id: 2})
	m = updated.(dashboardModel)

	assert.False(t, m.notifications[0].IsRead)
	assert.True(t, m.notifications[1].IsRead)
	assert.Contains(t, m.View(), "Office closed")
}

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, humanizeError(nil))
	assert.Equal(t, "Network is down or the attendance service is unavailable", humanizeError(service.ErrServiceUnavailable))
	assert.Equal(t, "first", humanizeError(errors.Join(errors.New("first"), errors.New("second"))))
}
