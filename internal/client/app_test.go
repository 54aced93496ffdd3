package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-attendance/internal/config"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/service"
	"github.com/MKhiriev/go-attendance/internal/tui"
	"github.com/MKhiriev/go-attendance/internal/workers"
	"github.com/MKhiriev/go-attendance/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	service.AuthService
	restoreUser models.User
	restoreErr  error
}

func (f *fakeAuth) RestoreSession(context.Context) (models.User, error) {
	return f.restoreUser, f.restoreErr
}

type fakeJob struct {
	starts, stops int
}

func (f *fakeJob) Start(context.Context, time.Duration) { f.starts++ }
func (f *fakeJob) Stop()                                { f.stops++ }

type fakeUI struct {
	loginUser   models.User
	loginErr    error
	logouts     []bool
	logins      int
	dashboardOf []string
}

func (f *fakeUI) LoginFlow(context.Context) (models.User, error) {
	f.logins++
	return f.loginUser, f.loginErr
}

func (f *fakeUI) Dashboard(_ context.Context, user models.User) (bool, error) {
	f.dashboardOf = append(f.dashboardOf, user.EmployeeCode)
	logout := f.logouts[0]
	f.logouts = f.logouts[1:]
	return logout, nil
}

func newTestApp(t *testing.T, auth *fakeAuth, ui *fakeUI) (*App, *fakeJob) {
	t.Helper()
	job := &fakeJob{}
	services := &service.ClientServices{AuthService: auth, StatusRefreshJob: job}
	app, err := NewApp(services, ui, workers.NewClientWorkers(services, config.ClientWorkers{}), logger.Nop())
	require.NoError(t, err)
	return app, job
}

func TestApp_Run_RestoredSessionSkipsLogin(t *testing.T) {
	auth := &fakeAuth{restoreUser: models.User{EmployeeCode: "E1"}}
	ui := &fakeUI{logouts: []bool{false}}
	app, job := newTestApp(t, auth, ui)

	require.NoError(t, app.Run())
	assert.Zero(t, ui.logins)
	assert.Equal(t, []string{"E1"}, ui.dashboardOf)
	assert.Equal(t, 1, job.starts)
	assert.Equal(t, 1, job.stops)
}

func TestApp_Run_LogoutReturnsToLogin(t *testing.T) {
	auth := &fakeAuth{restoreErr: service.ErrSessionExpired}
	ui := &fakeUI{loginUser: models.User{EmployeeCode: "E2"}, logouts: []bool{true, false}}
	app, job := newTestApp(t, auth, ui)

	require.NoError(t, app.Run())
	assert.Equal(t, 2, ui.logins)
	assert.Equal(t, []string{"E2", "E2"}, ui.dashboardOf)
	assert.Equal(t, 2, job.stops)
}

func TestApp_Run_QuitAtLogin(t *testing.T) {
	auth := &fakeAuth{restoreErr: service.ErrNotAuthenticated}
	ui := &fakeUI{loginErr: tui.ErrUserQuit}
	app, _ := newTestApp(t, auth, ui)

	require.NoError(t, app.Run())
}

func TestApp_Run_UnexpectedRestoreError(t *testing.T) {
	boom := errors.New("boom")
	auth := &fakeAuth{restoreErr: boom}
	app, _ := newTestApp(t, auth, &fakeUI{})

	require.ErrorIs(t, app.Run(), boom)
}

func TestNewApp_RequiresServicesAndUI(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, nil, logger.Nop())
	require.Error(t, err)
}

func TestNewRuntime(t *testing.T) {
	cfg := &config.ClientConfig{
		App:     config.ClientApp{AESSecretKey: config.DevAESSecretKey, AESIV: config.DevAESIV},
		Adapter: config.ClientAdapter{BaseURL: "http://127.0.0.1:1", RequestTimeout: time.Second},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: "memory"}},
	}

	rt, err := NewRuntime(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = rt.Close() })

	assert.True(t, rt.Session.Available())
	assert.Equal(t, "+wknX9EBOvLZISXJwbjCdw==", rt.Codec.Encrypt("ITL-KOL-1001"))
	assert.NotNil(t, rt.Services.AuthService)
}

func TestNewRuntime_InvalidKey(t *testing.T) {
	cfg := &config.ClientConfig{App: config.ClientApp{AESSecretKey: "short", AESIV: config.DevAESIV}}

	_, err := NewRuntime(context.Background(), cfg, logger.Nop())
	require.Error(t, err)
}
