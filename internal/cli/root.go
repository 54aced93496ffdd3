// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements attendancectl, the scriptable command-line client.
// Every command builds the same runtime as the terminal UI, so a session
// opened with `attendancectl login` is shared with it through the local
// store.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-attendance/internal/client"
	"github.com/MKhiriev/go-attendance/internal/config"
	"github.com/MKhiriev/go-attendance/internal/crypto"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/service"
	"github.com/MKhiriev/go-attendance/internal/utils"
	"github.com/MKhiriev/go-attendance/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// Options carries the dependencies of the command tree.
type Options struct {
	BuildInfo models.AppBuildInfo

	// Logger receives diagnostics. Defaults to a "logs" file next to the
	// executable.
	Logger *logger.Logger

	// Now is the source of the default report month.
	Now func() time.Time

	// CopyToClipboard backs `codec encrypt --copy`.
	CopyToClipboard func(string) error
}

type rootState struct {
	opts      Options
	overrides config.StructuredConfig
	baseURL   config.BaseURL

	runtime *client.Runtime
}

// NewRootCommand builds the attendancectl command tree.
func NewRootCommand(opts Options) *cobra.Command {
	root, _ := newRoot(opts)
	return root
}

func newRoot(opts Options) (*cobra.Command, *rootState) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.CopyToClipboard == nil {
		opts.CopyToClipboard = clipboard.WriteAll
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewClientLogger("attendancectl", "")
	}

	st := &rootState{opts: opts}

	root := &cobra.Command{
		Use:           "attendancectl",
		Short:         "Command-line client of the employee attendance service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return st.close()
		},
	}

	pf := root.PersistentFlags()
	pf.VarP(&st.baseURL, "base-api", "a", "Remote API base URL")
	pf.StringVar(&st.overrides.App.AESSecretKey, "aes-key", "", "AES secret key (16 characters)")
	pf.StringVar(&st.overrides.App.AESIV, "aes-iv", "", "AES IV (16 characters)")
	pf.BoolVar(&st.overrides.App.AllowDevKeys, "allow-dev-keys", false, "Use the development key pair when none is configured")
	pf.StringVarP(&st.overrides.Storage.DB.DSN, "dsn", "d", "", `Local storage DSN ("memory" for an in-memory store)`)
	pf.StringVarP(&st.overrides.JSONFilePath, "config", "c", "", "JSON config file path")
	pf.StringVar(&st.overrides.DotEnvPath, "env-file", "", ".env file path")
	pf.DurationVar(&st.overrides.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")

	root.AddCommand(
		newLoginCommand(st),
		newLogoutCommand(st),
		newWhoAmICommand(st),
		newEntryCommand(st),
		newExitCommand(st),
		newStatusCommand(st),
		newDetailsCommand(st),
		newEmployeeCommand(st),
		newAdminCommand(st),
		newReportCommand(st),
		newLeaveCommand(st),
		newNotificationsCommand(st),
		newPasswordCommand(st),
		newCodecCommand(st),
		newVersionCommand(st),
	)

	return root, st
}

// Execute runs the command tree with args. All API calls of one invocation
// carry the same X-Request-ID.
func Execute(ctx context.Context, opts Options, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root, st := newRoot(opts)
	defer st.close()

	ctx = utils.WithRequestID(ctx, utils.NewUUIDGenerator().Generate())

	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func (st *rootState) structuredOverrides() *config.StructuredConfig {
	o := st.overrides
	o.Adapter.BaseAPI = st.baseURL.String()
	return &o
}

func (st *rootState) context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return st.opts.Logger.WithContext(ctx)
}

// services builds the runtime on first use and re-attaches a stored token.
func (st *rootState) services(cmd *cobra.Command) (*service.ClientServices, error) {
	if st.runtime == nil {
		cfg, err := config.LoadClientConfig(st.structuredOverrides())
		if err != nil {
			return nil, err
		}
		rt, err := client.NewRuntime(st.context(cmd), cfg, st.opts.Logger)
		if err != nil {
			return nil, err
		}
		st.runtime = rt

		_, err = rt.Services.AuthService.RestoreSession(st.context(cmd))
		if errors.Is(err, service.ErrSessionExpired) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Your session has expired, please log in again.")
		}
	}
	return st.runtime.Services, nil
}

// codec builds only the parameter codec, so codec commands need no API URL.
func (st *rootState) codec() (crypto.Codec, error) {
	cfg, err := config.LoadStructuredConfig(st.structuredOverrides())
	if err != nil {
		return nil, err
	}
	return crypto.NewParamCodec(cfg.App.AESSecretKey, cfg.App.AESIV)
}

func (st *rootState) close() error {
	if st.runtime == nil {
		return nil
	}
	err := st.runtime.Close()
	st.runtime = nil
	return err
}
