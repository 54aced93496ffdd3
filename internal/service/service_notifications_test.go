package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-attendance/internal/adapter"
	"github.com/MKhiriev/go-attendance/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_Load(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signIn(t)

	env.api.EXPECT().Notifications(ctx, testEmployeeCode).Return([]models.APINotification{
		{ID: 1, Text: "Office closed Friday", CreatedAt: "2025-06-01T08:00:00Z"},
		{ID: 2, Text: "Your leave was approved", CreatedAt: "2025-06-02 10:30:00", IsRead: true, EmployeeCode: testEmployeeCode},
		{ID: 3, Text: "No timestamp", CreatedAt: "yesterday"},
	}, nil)

	items, err := env.svcs.NotificationService.Load(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.True(t, items[0].IsGlobal)
	assert.Equal(t, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), items[0].Timestamp)

	assert.False(t, items[1].IsGlobal)
	assert.True(t, items[1].IsRead)
	assert.Equal(t, "Your leave was approved", items[1].Message)

	assert.True(t, items[2].Timestamp.IsZero())
}

func TestNotificationService_Load_GlobalFeedAnyCase(t *testing.T) {
	for _, code := range []string{"GLOBAL", "global", " Global "} {
		t.Run(code, func(t *testing.T) {
			env := newTestEnv(t)
			ctx := context.Background()
			env.api.EXPECT().Notifications(ctx, models.GlobalFeed).Return(nil, nil)

			items, err := env.svcs.NotificationService.Load(ctx, code)
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}

func TestNotificationService_Load_Error(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.api.EXPECT().Notifications(ctx, "ITL-KOL-2002").Return(nil, adapter.ErrInternalServerError)

	_, err := env.svcs.NotificationService.Load(ctx, "ITL-KOL-2002")
	require.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestNotificationService_MarkAsRead(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signIn(t)

	env.api.EXPECT().MarkNotificationRead(ctx, models.MarkReadRequest{AnnouncementID: 7, EmployeeCode: testEmployeeCode}).Return(nil)
	env.api.EXPECT().MarkAllNotificationsRead(ctx, testEmployeeCode).Return(nil)

	require.NoError(t, env.svcs.NotificationService.MarkAsRead(ctx, 7))
	require.NoError(t, env.svcs.NotificationService.MarkAllAsRead(ctx))
}

func TestNotificationService_MarkAsRead_NotSignedIn(t *testing.T) {
	env := newTestEnv(t)
	require.ErrorIs(t, env.svcs.NotificationService.MarkAsRead(context.Background(), 7), ErrNotAuthenticated)
	require.ErrorIs(t, env.svcs.NotificationService.MarkAllAsRead(context.Background()), ErrNotAuthenticated)
}
