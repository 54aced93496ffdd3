// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-attendance/internal/service"
)

// humanizeError turns a service error into a one-line message for the
// status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if errors.Is(err, service.ErrServiceUnavailable) ||
		strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the attendance service is unavailable"
	}

	// validators join field errors with newlines
	if i := strings.IndexByte(err.Error(), '\n'); i >= 0 {
		return err.Error()[:i]
	}
	return err.Error()
}
