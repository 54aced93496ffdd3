package session

import (
	"context"
	"time"

	"github.com/MKhiriev/go-attendance/internal/crypto"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/store"
	"github.com/MKhiriev/go-attendance/models"
)

// Session bundles the identity and both flag scopes over one storage.
type Session struct {
	*Identity
	Attendance *DateScopedCache
	CheckIn    *DateScopedCache

	available bool
}

type options struct {
	now Clock
}

// Option customises New.
type Option func(*options)

// WithClock replaces time.Now as the source of "today".
func WithClock(now Clock) Option {
	return func(o *options) {
		o.now = now
	}
}

// New probes storage once and builds a Session on top of it. A storage that
// fails the probe is replaced by one that silently discards everything.
func New(ctx context.Context, storage store.LocalStorage, codec crypto.Codec, opts ...Option) *Session {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	available := store.Available(ctx, storage)
	if !available {
		logger.FromContext(ctx).Warn().Str("func", "session.New").Msg("local storage unavailable, session is not persisted")
		storage = discardStorage{}
	}

	return &Session{
		Identity:   NewIdentity(storage, codec, o.now),
		Attendance: NewDateScopedCache(AttendanceScope, storage, codec, o.now),
		CheckIn:    NewDateScopedCache(CheckInScope, storage, codec, o.now),
		available:  available,
	}
}

// Available reports whether the session is persisted.
func (s *Session) Available() bool {
	return s.available
}

// Login stores the employee code, the profile when present, and the token
// when non-empty.
func (s *Session) Login(ctx context.Context, code string, profile *models.User, token string) {
	if profile != nil {
		p := *profile
		p.EmployeeCode = code
		s.SetUserData(ctx, p)
	} else {
		s.SetEmployeeCode(ctx, code)
	}
	if token != "" {
		s.SetAuthToken(ctx, token)
	}
}

// Logout forgets the signed-in employee and every flag of both scopes.
func (s *Session) Logout(ctx context.Context) {
	s.Identity.clear(ctx)
	s.Attendance.Clear(ctx)
	s.CheckIn.Clear(ctx)
}
