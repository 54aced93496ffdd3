package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-attendance/internal/adapter"
	"github.com/MKhiriev/go-attendance/internal/config"
	"github.com/MKhiriev/go-attendance/internal/crypto"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/service"
	"github.com/MKhiriev/go-attendance/internal/session"
	"github.com/MKhiriev/go-attendance/internal/store"
	"github.com/MKhiriev/go-attendance/internal/validators"
)

// Runtime owns everything a client process builds from its configuration:
// the codec, the local session, the remote API and the services on top.
type Runtime struct {
	Codec    crypto.Codec
	Session  *session.Session
	API      adapter.AttendanceAPI
	Services *service.ClientServices

	closeStorage func() error
}

// NewRuntime wires the client stack. Only an invalid codec key pair is
// fatal; a local store that cannot be opened leaves the session unpersisted.
func NewRuntime(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*Runtime, error) {
	codec, err := crypto.NewParamCodec(cfg.App.AESSecretKey, cfg.App.AESIV)
	if err != nil {
		return nil, fmt.Errorf("create parameter codec: %w", err)
	}

	localStorage, closeStorage := store.OpenClientStorage(ctx, cfg.Storage, log)
	sess := session.New(log.WithContext(ctx), localStorage, codec)
	api := adapter.NewHTTPAttendanceAPI(cfg.Adapter, codec, log)

	return &Runtime{
		Codec:        codec,
		Session:      sess,
		API:          api,
		Services:     service.NewClientServices(sess, api, codec, validators.NewFormValidator()),
		closeStorage: closeStorage,
	}, nil
}

// Close releases the local store.
func (r *Runtime) Close() error {
	if r.closeStorage == nil {
		return nil
	}
	return r.closeStorage()
}
