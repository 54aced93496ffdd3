package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-attendance/internal/crypto"
	"github.com/MKhiriev/go-attendance/internal/mock"
	"github.com/MKhiriev/go-attendance/internal/session"
	"github.com/MKhiriev/go-attendance/internal/store"
	"github.com/MKhiriev/go-attendance/internal/validators"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testEmployeeCode = "ITL-KOL-1001"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type testEnv struct {
	sess  *session.Session
	api   *mock.MockAttendanceAPI
	codec crypto.Codec
	clock *fakeClock
	svcs  *ClientServices
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	codec, err := crypto.NewParamCodec("mysecretkey12345", "1234567890abcdef")
	require.NoError(t, err)

	clock := &fakeClock{now: time.Date(2025, 6, 3, 9, 30, 0, 0, time.Local)}
	sess := session.New(context.Background(), store.NewMemoryStorage(), codec, session.WithClock(clock.Now))
	api := mock.NewMockAttendanceAPI(ctrl)

	return &testEnv{
		sess:  sess,
		api:   api,
		codec: codec,
		clock: clock,
		svcs:  NewClientServices(sess, api, codec, validators.NewFormValidator()),
	}
}

// signIn stores testEmployeeCode as the signed-in employee.
func (e *testEnv) signIn(t *testing.T) {
	t.Helper()
	e.sess.Login(context.Background(), testEmployeeCode, nil, "")
}
