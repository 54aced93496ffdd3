package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/service"
	"github.com/MKhiriev/go-attendance/internal/tui"
	"github.com/MKhiriev/go-attendance/internal/workers"
	"github.com/MKhiriev/go-attendance/models"
)

// UI is the part of the terminal UI that App drives.
type UI interface {
	LoginFlow(ctx context.Context) (models.User, error)
	Dashboard(ctx context.Context, user models.User) (logout bool, err error)
}

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	log      *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, w *workers.Workers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}
	if w == nil {
		w = &workers.Workers{}
	}
	return &App{services: services, ui: ui, workers: w, log: log}, nil
}

// Run restores the stored session or shows the login screen, then runs the
// dashboard with the background workers until the employee quits. Logging
// out returns to the login screen.
func (a *App) Run() error {
	ctx := a.log.WithContext(context.Background())

	for {
		user, err := a.authenticate(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		a.workers.Run(ctx)
		logout, err := a.ui.Dashboard(ctx, user)
		a.workers.Stop()
		if err != nil {
			return fmt.Errorf("dashboard: %w", err)
		}
		if !logout {
			return nil
		}
		a.log.Info().Msg("logged out, returning to login")
	}
}

func (a *App) authenticate(ctx context.Context) (models.User, error) {
	user, err := a.services.AuthService.RestoreSession(ctx)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, service.ErrNotAuthenticated) && !errors.Is(err, service.ErrSessionExpired) {
		return models.User{}, fmt.Errorf("restore session: %w", err)
	}
	return a.ui.LoginFlow(ctx)
}
