package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-attendance/internal/adapter"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/models"
)

type notificationService struct {
	identity IdentityStore
	api      adapter.AttendanceAPI
}

// NewNotificationService constructs a NotificationService.
func NewNotificationService(identity IdentityStore, api adapter.AttendanceAPI) NotificationService {
	return &notificationService{identity: identity, api: api}
}

// Load implements NotificationService.
func (s *notificationService) Load(ctx context.Context, code string) ([]models.Notification, error) {
	feed := strings.TrimSpace(code)
	if strings.EqualFold(feed, models.GlobalFeed) {
		feed = models.GlobalFeed
	} else {
		var err error
		if feed, err = resolveEmployeeCode(ctx, s.identity, feed); err != nil {
			return nil, err
		}
	}

	items, err := s.api.Notifications(ctx, feed)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	out := make([]models.Notification, 0, len(items))
	for _, it := range items {
		out = append(out, toNotification(ctx, it))
	}
	return out, nil
}

// MarkAsRead implements NotificationService.
func (s *notificationService) MarkAsRead(ctx context.Context, id int64) error {
	if !s.identity.IsAuthenticated(ctx) {
		return ErrNotAuthenticated
	}
	err := s.api.MarkNotificationRead(ctx, models.MarkReadRequest{
		AnnouncementID: id,
		EmployeeCode:   s.identity.EmployeeCode(ctx),
	})
	return mapAdapterError(err)
}

// MarkAllAsRead implements NotificationService.
func (s *notificationService) MarkAllAsRead(ctx context.Context) error {
	if !s.identity.IsAuthenticated(ctx) {
		return ErrNotAuthenticated
	}
	return mapAdapterError(s.api.MarkAllNotificationsRead(ctx, s.identity.EmployeeCode(ctx)))
}

func toNotification(ctx context.Context, n models.APINotification) models.Notification {
	out := models.Notification{
		ID:       n.ID,
		Message:  n.Text,
		IsRead:   n.IsRead,
		IsGlobal: n.EmployeeCode == "",
	}
	if n.CreatedAt != "" {
		ts, err := parseTimestamp(n.CreatedAt)
		if err != nil {
			logger.FromContext(ctx).Debug().Err(err).Int64("id", n.ID).Msg("unparsable announcement timestamp")
		}
		out.Timestamp = ts
	}
	return out
}

var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05"}

func parseTimestamp(v string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var t time.Time
		if t, err = time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
