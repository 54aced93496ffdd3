// Package tui is the interactive terminal client: a login screen followed
// by the attendance dashboard. It is built on bubbletea and drives the
// service layer only.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/service"
	"github.com/MKhiriev/go-attendance/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	log       *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	return &TUI{services: services, buildInfo: buildInfo, log: log}, nil
}

// LoginFlow shows the login screen until the employee signs in or quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		pageLogin: NewLoginModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageLogin, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}
	return result.user, nil
}

// Dashboard runs the attendance dashboard for user. It reports whether the
// employee chose to log out.
func (t *TUI) Dashboard(ctx context.Context, user models.User) (logout bool, err error) {
	model := newDashboardModel(ctx, t.services, user)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(dashboardModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
