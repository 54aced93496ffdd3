// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-attendance/internal/apitest"
	"github.com/MKhiriev/go-attendance/internal/config"
	"github.com/MKhiriev/go-attendance/internal/crypto"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/utils"
	"github.com/MKhiriev/go-attendance/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCode       = "ITL-KOL-1001"
	testCodeCipher = "+wknX9EBOvLZISXJwbjCdw=="
	testCodeInURL  = "%2BwknX9EBOvLZISXJwbjCdw%3D%3D"
)

func testCodec(t *testing.T) crypto.Codec {
	t.Helper()
	c, err := crypto.NewParamCodec("mysecretkey12345", "1234567890abcdef")
	require.NoError(t, err)
	return c
}

// newTestAdapter points an httpAttendanceAPI at a fake backend built on r.
func newTestAdapter(t *testing.T, r http.Handler) *httpAttendanceAPI {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	cfg := config.ClientAdapter{BaseURL: srv.URL + "/", RequestTimeout: 2 * time.Second}
	return NewHTTPAttendanceAPI(cfg, testCodec(t), logger.Nop()).(*httpAttendanceAPI)
}

func decryptParam(t *testing.T, r *http.Request, name string) string {
	t.Helper()
	plain, err := testCodec(t).Decrypt(r.URL.Query().Get(name))
	require.NoError(t, err, "query parameter %s must be codec ciphertext", name)
	return plain
}

// assertEmptyBody checks that a parameter-only POST carries an explicit
// zero Content-Length instead of a chunked body.
func assertEmptyBody(t *testing.T, r *http.Request) {
	t.Helper()
	assert.Equal(t, int64(0), r.ContentLength)
	assert.Empty(t, r.TransferEncoding)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "asha@example.com", decryptParam(t, req, "Email"))
		assert.Equal(t, "s3cret!Pass", decryptParam(t, req, "Password"))
		assertEmptyBody(t, req)

		_, _ = apitest.WriteJSON(w, map[string]string{
			"Authorization": "Bearer abc.def.ghi",
			"EmployeeCode":  testCodeCipher,
			"message":       "Login successful",
		}, http.StatusOK)
	})

	a := newTestAdapter(t, r)
	got, err := a.Login(context.Background(), "asha@example.com", "s3cret!Pass")

	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", got.Authorization)
	assert.Equal(t, testCodeCipher, got.EmployeeCode, "response ciphertext is returned as is")
}

func TestLogin_TokenFromHeader(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/login", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Authorization", "Bearer header-token")
		_, _ = apitest.WriteJSON(w, map[string]string{"EmployeeCode": testCodeCipher}, http.StatusOK)
	})

	got, err := newTestAdapter(t, r).Login(context.Background(), "a@b.c", "x")

	require.NoError(t, err)
	assert.Equal(t, "header-token", got.Authorization)
}

func TestLogin_Unauthorized(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/login", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = apitest.WriteJSON(w, map[string]string{"message": "Invalid credentials"}, http.StatusUnauthorized)
	})

	_, err := newTestAdapter(t, r).Login(context.Background(), "a@b.c", "x")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

// ── MarkEntry ───────────────────────────────────────────────────────────────

func TestMarkEntry_EncryptedPercentEncodedCode(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/MarkEntry", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "EmployeeCode="+testCodeInURL, req.URL.RawQuery)
		assert.Equal(t, testCode, decryptParam(t, req, "EmployeeCode"))
		assertEmptyBody(t, req)
		_, _ = apitest.WriteJSON(w, map[string]string{"message": "Entry Marked Successfully!"}, http.StatusOK)
	})

	got, err := newTestAdapter(t, r).MarkEntry(context.Background(), testCode)

	require.NoError(t, err)
	assert.Equal(t, "Entry Marked Successfully!", got.Message)
}

func TestMarkEntry_BodyReturnedOnError(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/MarkEntry", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = apitest.WriteJSON(w, map[string]string{"message": "Entry already Marked..."}, http.StatusBadRequest)
	})

	got, err := newTestAdapter(t, r).MarkEntry(context.Background(), testCode)

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "Entry already Marked...", got.Message)
}

func TestMarkEntry_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := NewHTTPAttendanceAPI(config.ClientAdapter{BaseURL: url, RequestTimeout: time.Second}, testCodec(t), logger.Nop())
	_, err := a.MarkEntry(context.Background(), testCode)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

// ── MarkExit ────────────────────────────────────────────────────────────────

func TestMarkExit_PlainStatusAndRemarks(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/MarkExit", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "EmployeeCode="+testCodeInURL+"&Status=3&Remarks=doctor%20visit%20%26%20rest", req.URL.RawQuery)
		assert.Equal(t, "3", req.URL.Query().Get("Status"))
		assert.Equal(t, "doctor visit & rest", req.URL.Query().Get("Remarks"))
		_, _ = apitest.WriteJSON(w, map[string]string{"message": "Exit Marked Successfully!"}, http.StatusOK)
	})

	got, err := newTestAdapter(t, r).MarkExit(context.Background(), testCode, models.StatusHalfDay, "doctor visit & rest")

	require.NoError(t, err)
	assert.Equal(t, "Exit Marked Successfully!", got.Message)
}

func TestMarkExit_InternalServerError(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/MarkExit", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := newTestAdapter(t, r).MarkExit(context.Background(), testCode, models.StatusPresent, "")

	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Read endpoints ──────────────────────────────────────────────────────────

func TestCheckInStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/CheckInStatus", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, testCode, decryptParam(t, req, "EmployeeCode"))
		assertEmptyBody(t, req)
		_, _ = apitest.WriteJSON(w, map[string]string{"status": "true", "duration": "03:20"}, http.StatusOK)
	})

	got, err := newTestAdapter(t, r).CheckInStatus(context.Background(), testCode)

	require.NoError(t, err)
	assert.Equal(t, models.CheckInStatusResponse{Status: "true", Duration: "03:20"}, got)
}

func TestAttendanceDetails(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/AttendanceDetails", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, testCode, decryptParam(t, req, "Empcode"))
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Empty(t, body)

		_, _ = w.Write([]byte(`{"success":true,"data":{"empcode":"ITL-KOL-1001","date":"2025-06-03","checkintime":"09:05:12.123","checkouttime":null,"status":1,"remarks":""}}`))
	})

	got, err := newTestAdapter(t, r).AttendanceDetails(context.Background(), testCode)

	require.NoError(t, err)
	require.NotNil(t, got.Data)
	assert.True(t, got.Success)
	require.NotNil(t, got.Data.CheckInTime)
	assert.Equal(t, "09:05:12.123", *got.Data.CheckInTime)
	assert.Nil(t, got.Data.CheckOutTime)
}

func TestEmployeeDetails(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/EmployeeDetails", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, testCode, decryptParam(t, req, "EmployeeCode"))
		_, _ = apitest.WriteJSON(w, models.EmployeeDetails{EmployeeCode: testCode, FullName: "Asha Rao"}, http.StatusOK)
	})

	got, err := newTestAdapter(t, r).EmployeeDetails(context.Background(), testCode)

	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", got.FullName)
}

func TestEmployeeDetails_NotFound(t *testing.T) {
	r := chi.NewRouter()

	_, err := newTestAdapter(t, r).EmployeeDetails(context.Background(), testCode)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEmployeeDetails_MalformedBody(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/EmployeeDetails", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	})

	_, err := newTestAdapter(t, r).EmployeeDetails(context.Background(), testCode)

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
	assert.ErrorIs(t, err, ErrTransport)
}

// ── Write endpoints ─────────────────────────────────────────────────────────

func TestUpdatePassword_AllEncrypted(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/UpdatePassword", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, testCode, decryptParam(t, req, "EmployeeCode"))
		assert.Equal(t, "OldPass#1", decryptParam(t, req, "current_password"))
		assert.Equal(t, "NewPass#22", decryptParam(t, req, "new_password"))
		assertEmptyBody(t, req)
		_, _ = apitest.WriteJSON(w, map[string]string{"message": "Password updated", "EmployeeCode": testCodeCipher}, http.StatusOK)
	})

	got, err := newTestAdapter(t, r).UpdatePassword(context.Background(), testCode, "OldPass#1", "NewPass#22")

	require.NoError(t, err)
	assert.Equal(t, "Password updated", got.Message)
	assert.Equal(t, testCodeCipher, got.EmployeeCode)
}

func TestRegisterEmployee_PlainParams(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/RegisterEmployee", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		assert.Equal(t, "Asha", q.Get("FirstName"))
		assert.Equal(t, "", q.Get("MiddleName"))
		assert.Equal(t, "Rao", q.Get("LastName"))
		assert.Equal(t, "asha+work@example.com", q.Get("EmailID"))
		assert.Equal(t, "98300 12345", q.Get("PhoneNumber"))
		assert.Equal(t, "2025-06-01", q.Get("JoiningDate"))
		_, _ = apitest.WriteJSON(w, map[string]string{"message": "Employee registered"}, http.StatusOK)
	})

	got, err := newTestAdapter(t, r).RegisterEmployee(context.Background(), models.RegisterEmployeeRequest{
		FirstName:   "Asha",
		LastName:    "Rao",
		EmailID:     "asha+work@example.com",
		PhoneNumber: "98300 12345",
		JoiningDate: "2025-06-01",
	})

	require.NoError(t, err)
	assert.Equal(t, "Employee registered", got.Message)
}

func TestSetAttendanceStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/SetAttendanceStatus", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		assert.Equal(t, testCode, q.Get("EmployeeCode"), "admin endpoint takes the plain code")
		assert.Equal(t, "2025-06-03", q.Get("Date"))
		assert.Equal(t, "09:00", q.Get("CheckInTime"))
		assert.Equal(t, "18:00", q.Get("CheckOutTime"))
		assert.Equal(t, "5", q.Get("Status"))
		_, _ = apitest.WriteJSON(w, map[string]string{"message": "Attendance updated"}, http.StatusOK)
	})

	got, err := newTestAdapter(t, r).SetAttendanceStatus(context.Background(), models.SetAttendanceRequest{
		EmployeeCode: testCode,
		Date:         "2025-06-03",
		CheckInTime:  "09:00",
		CheckOutTime: "18:00",
		Status:       models.StatusWFH,
	})

	require.NoError(t, err)
	assert.Equal(t, "Attendance updated", got.Message)
}

func TestApplyLeave_JSONBody(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/leave/apply", func(w http.ResponseWriter, req *http.Request) {
		assert.Empty(t, req.URL.RawQuery)
		var got models.LeaveRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
		assert.Equal(t, models.LeaveSick, got.LeaveType)
		assert.Equal(t, "2025-06-10", got.StartDate)
		_, _ = apitest.WriteJSON(w, map[string]string{"message": "Leave applied"}, http.StatusCreated)
	})

	got, err := newTestAdapter(t, r).ApplyLeave(context.Background(), models.LeaveRequest{
		LeaveType: models.LeaveSick, StartDate: "2025-06-10", EndDate: "2025-06-11", Reason: "flu",
	})

	require.NoError(t, err)
	assert.Equal(t, "Leave applied", got.Message)
}

// ── Reports ─────────────────────────────────────────────────────────────────

func TestAllEmployeeReport_BareArrayAndWrapped(t *testing.T) {
	entries := []models.MonthlyReportEntry{{EmployeeName: "Asha Rao", EmployeeCode: testCode, PresentDays: 20, AbsentDays: 2, AttendancePercentage: 90.9}}

	for name, body := range map[string]any{
		"bare":    entries,
		"wrapped": map[string]any{"data": entries},
	} {
		t.Run(name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Post("/AllEmployeeReport", func(w http.ResponseWriter, req *http.Request) {
				assert.Equal(t, "Month=6&Year=2025", req.URL.RawQuery)
				_, _ = apitest.WriteJSON(w, body, http.StatusOK)
			})

			got, err := newTestAdapter(t, r).AllEmployeeReport(context.Background(), 6, 2025)

			require.NoError(t, err)
			assert.Equal(t, entries, got)
		})
	}
}

func TestAllEmployeeReport_Empty(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/AllEmployeeReport", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	got, err := newTestAdapter(t, r).AllEmployeeReport(context.Background(), 6, 2025)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestByEmployeeReport(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/ByEmployeeReport", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "EmployeeCode="+testCodeInURL+"&Month=6&Year=2025", req.URL.RawQuery)
		_, _ = w.Write([]byte(`{"attendance_details":[{"date":"2025-06-02","check_in":"09:00","check_out":"18:00","hours_worked":9,"status":"Present","remarks":"","arrival_status":"On Time"}],"summary":{"total_hours_worked":9,"month":"6","year":"2025","employee_code":"ITL-KOL-1001"},"status":"success"}`))
	})

	got, err := newTestAdapter(t, r).ByEmployeeReport(context.Background(), testCode, 6, 2025)

	require.NoError(t, err)
	require.Len(t, got.AttendanceDetails, 1)
	assert.Equal(t, "On Time", got.AttendanceDetails[0].ArrivalStatus)
	assert.Equal(t, 9.0, got.Summary.TotalHoursWorked)
}

// ── Notifications ───────────────────────────────────────────────────────────

func TestNotifications(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/notifications/{feed}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, models.GlobalFeed, chi.URLParam(req, "feed"))
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":7,"text":"Office closed Friday","created_at":"2025-06-03T09:00:00Z","is_read":false}]}`))
	})

	got, err := newTestAdapter(t, r).Notifications(context.Background(), models.GlobalFeed)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].ID)
	assert.Empty(t, got[0].EmployeeCode)
}

func TestMarkNotificationRead(t *testing.T) {
	r := chi.NewRouter()
	r.Put("/notifications/mark-as-read", func(w http.ResponseWriter, req *http.Request) {
		var body models.MarkReadRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, models.MarkReadRequest{AnnouncementID: 7, EmployeeCode: testCode}, body)
		w.WriteHeader(http.StatusNoContent)
	})
	r.Put("/notifications/mark-all-read", func(w http.ResponseWriter, req *http.Request) {
		var body models.MarkAllReadRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, testCode, body.EmployeeCode)
		w.WriteHeader(http.StatusOK)
	})

	a := newTestAdapter(t, r)
	require.NoError(t, a.MarkNotificationRead(context.Background(), models.MarkReadRequest{AnnouncementID: 7, EmployeeCode: testCode}))
	require.NoError(t, a.MarkAllNotificationsRead(context.Background(), testCode))
}

// ── Headers ─────────────────────────────────────────────────────────────────

func TestRequestHeaders(t *testing.T) {
	var seen []http.Header
	r := chi.NewRouter()
	r.Post("/CheckInStatus", func(w http.ResponseWriter, req *http.Request) {
		seen = append(seen, req.Header.Clone())
		_, _ = apitest.WriteJSON(w, map[string]string{}, http.StatusOK)
	})

	a := newTestAdapter(t, r)

	_, err := a.CheckInStatus(context.Background(), testCode)
	require.NoError(t, err)

	a.SetToken("  tok  ")
	ctx := utils.WithRequestID(context.Background(), "caller-chosen-id")
	_, err = a.CheckInStatus(ctx, testCode)
	require.NoError(t, err)

	require.Len(t, seen, 2)
	id, err := uuid.Parse(seen[0].Get(requestIDHeader))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Empty(t, seen[0].Get("Authorization"))

	assert.Equal(t, "caller-chosen-id", seen[1].Get(requestIDHeader))
	assert.Equal(t, "Bearer tok", seen[1].Get("Authorization"))
}

// ── Error mapping ───────────────────────────────────────────────────────────

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrTransport},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			r := chi.NewRouter()
			r.Post("/CheckInStatus", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := newTestAdapter(t, r).CheckInStatus(context.Background(), testCode)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
			assert.True(t, errors.Is(err, ErrTransport))
		})
	}
}

func TestResponseMessage(t *testing.T) {
	assert.Equal(t, "Invalid credentials", responseMessage([]byte(`{"message":"Invalid credentials"}`)))
	assert.Equal(t, "plain text", responseMessage([]byte("  plain text\n")))
	assert.Equal(t, `{"error":"x"}`, responseMessage([]byte(`{"error":"x"}`)))
}

func TestParameterOnlyPosts_SendContentLengthZero(t *testing.T) {
	paths := []string{
		"/login", "/MarkEntry", "/MarkExit", "/CheckInStatus",
		"/EmployeeDetails", "/UpdatePassword", "/AllEmployeeReport",
	}

	r := chi.NewRouter()
	seen := make(chan string, len(paths))
	for _, p := range paths {
		r.Post(p, func(w http.ResponseWriter, req *http.Request) {
			assertEmptyBody(t, req)
			seen <- req.URL.Path
			_, _ = w.Write([]byte(`{}`))
		})
	}

	a := newTestAdapter(t, r)
	ctx := context.Background()

	_, _ = a.Login(ctx, "asha@example.com", "s3cret!Pass")
	_, _ = a.MarkEntry(ctx, testCode)
	_, _ = a.MarkExit(ctx, testCode, models.StatusPresent, "")
	_, _ = a.CheckInStatus(ctx, testCode)
	_, _ = a.EmployeeDetails(ctx, testCode)
	_, _ = a.UpdatePassword(ctx, testCode, "OldPass#1", "NewPass#22")
	_, _ = a.AllEmployeeReport(ctx, 6, 2025)

	close(seen)
	var got []string
	for p := range seen {
		got = append(got, p)
	}
	assert.Equal(t, paths, got)
}
