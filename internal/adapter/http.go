package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-attendance/internal/config"
	"github.com/MKhiriev/go-attendance/internal/crypto"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/utils"
	"github.com/MKhiriev/go-attendance/models"
	"github.com/go-resty/resty/v2"
)

const requestIDHeader = "X-Request-ID"

type httpAttendanceAPI struct {
	client *utils.HTTPClient
	codec  crypto.Codec
	ids    *utils.UUIDGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAttendanceAPI constructs the REST implementation of [AttendanceAPI]
// for the base URL and timeout in cfg. Outgoing sensitive parameters are
// encrypted with codec.
func NewHTTPAttendanceAPI(cfg config.ClientAdapter, codec crypto.Codec, log *logger.Logger) AttendanceAPI {
	h := &httpAttendanceAPI{
		client: utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), cfg.RequestTimeout),
		codec:  codec,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}

	h.client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		id, ok := utils.GetRequestIDFromContext(r.Context())
		if !ok {
			id = h.ids.Generate()
		}
		r.SetHeader(requestIDHeader, id)
		if token := h.Token(); token != "" {
			r.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})
	h.client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		h.logger.Debug().
			Str("method", resp.Request.Method).
			Str("path", resp.Request.RawRequest.URL.Path).
			Str("request_id", resp.Request.Header.Get(requestIDHeader)).
			Int("status", resp.StatusCode()).
			Dur("took", resp.Time()).
			Msg("attendance api call")
		return nil
	})

	return h
}

// SetToken implements [AttendanceAPI].
func (h *httpAttendanceAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token returns the Authorization value currently attached to requests.
func (h *httpAttendanceAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [AttendanceAPI]: POST /login?Email=&Password=, both
// encrypted. The token is taken from the body, or from the Authorization
// header when the body has none.
func (h *httpAttendanceAPI) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	q := (&rawQuery{}).
		add("Email", h.codec.Encrypt(email)).
		add("Password", h.codec.Encrypt(password))

	resp, err := h.request(ctx, nil).Post(withQuery("/login", q))
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("%w: login request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var out models.LoginResponse
	if err = decodeBody(resp, &out); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode login response: %w", err)
	}
	if out.Authorization == "" {
		out.Authorization = resp.Header().Get("Authorization")
	}
	if out.Authorization != "" {
		token, err := utils.ParseBearerToken(out.Authorization)
		if err != nil {
			return models.LoginResponse{}, fmt.Errorf("%w: login parse token: %w", ErrUnexpectedResponse, err)
		}
		out.Authorization = token
	}
	return out, nil
}

// MarkEntry implements [AttendanceAPI]: POST /MarkEntry?EmployeeCode=.
func (h *httpAttendanceAPI) MarkEntry(ctx context.Context, employeeCode string) (models.MessageResponse, error) {
	q := (&rawQuery{}).add("EmployeeCode", h.codec.Encrypt(employeeCode))

	resp, err := h.request(ctx, nil).Post(withQuery("/MarkEntry", q))
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("%w: mark entry request: %w", ErrTransport, err)
	}

	var out models.MessageResponse
	decodeErr := decodeBody(resp, &out)
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}
	if decodeErr != nil {
		return out, fmt.Errorf("decode mark entry response: %w", decodeErr)
	}
	return out, nil
}

// MarkExit implements [AttendanceAPI]:
// POST /MarkExit?EmployeeCode=&Status=&Remarks=. Only EmployeeCode is
// encrypted.
func (h *httpAttendanceAPI) MarkExit(ctx context.Context, employeeCode string, status models.AttendanceStatus, remarks string) (models.MessageResponse, error) {
	q := (&rawQuery{}).
		add("EmployeeCode", h.codec.Encrypt(employeeCode)).
		add("Status", strconv.Itoa(int(status))).
		add("Remarks", remarks)

	var out models.MessageResponse
	if err := h.post(ctx, withQuery("/MarkExit", q), nil, &out); err != nil {
		return models.MessageResponse{}, fmt.Errorf("mark exit: %w", err)
	}
	return out, nil
}

// CheckInStatus implements [AttendanceAPI]: POST /CheckInStatus?EmployeeCode=.
func (h *httpAttendanceAPI) CheckInStatus(ctx context.Context, employeeCode string) (models.CheckInStatusResponse, error) {
	q := (&rawQuery{}).add("EmployeeCode", h.codec.Encrypt(employeeCode))

	var out models.CheckInStatusResponse
	if err := h.post(ctx, withQuery("/CheckInStatus", q), nil, &out); err != nil {
		return models.CheckInStatusResponse{}, fmt.Errorf("check-in status: %w", err)
	}
	return out, nil
}

// AttendanceDetails implements [AttendanceAPI]:
// POST /AttendanceDetails?Empcode= with an empty JSON object.
func (h *httpAttendanceAPI) AttendanceDetails(ctx context.Context, employeeCode string) (models.AttendanceDetailsResponse, error) {
	q := (&rawQuery{}).add("Empcode", h.codec.Encrypt(employeeCode))

	var out models.AttendanceDetailsResponse
	if err := h.post(ctx, withQuery("/AttendanceDetails", q), emptyObject, &out); err != nil {
		return models.AttendanceDetailsResponse{}, fmt.Errorf("attendance details: %w", err)
	}
	return out, nil
}

// EmployeeDetails implements [AttendanceAPI]: POST /EmployeeDetails?EmployeeCode=.
func (h *httpAttendanceAPI) EmployeeDetails(ctx context.Context, employeeCode string) (models.EmployeeDetails, error) {
	q := (&rawQuery{}).add("EmployeeCode", h.codec.Encrypt(employeeCode))

	var out models.EmployeeDetails
	if err := h.post(ctx, withQuery("/EmployeeDetails", q), nil, &out); err != nil {
		return models.EmployeeDetails{}, fmt.Errorf("employee details: %w", err)
	}
	return out, nil
}

// UpdatePassword implements [AttendanceAPI]:
// POST /UpdatePassword?EmployeeCode=&current_password=&new_password=, all
// encrypted.
func (h *httpAttendanceAPI) UpdatePassword(ctx context.Context, employeeCode, currentPassword, newPassword string) (models.PasswordChangeResponse, error) {
	q := (&rawQuery{}).
		add("EmployeeCode", h.codec.Encrypt(employeeCode)).
		add("current_password", h.codec.Encrypt(currentPassword)).
		add("new_password", h.codec.Encrypt(newPassword))

	var out models.PasswordChangeResponse
	if err := h.post(ctx, withQuery("/UpdatePassword", q), nil, &out); err != nil {
		return models.PasswordChangeResponse{}, fmt.Errorf("update password: %w", err)
	}
	return out, nil
}

// RegisterEmployee implements [AttendanceAPI]: POST /RegisterEmployee with
// the form fields as plain query parameters.
func (h *httpAttendanceAPI) RegisterEmployee(ctx context.Context, req models.RegisterEmployeeRequest) (models.MessageResponse, error) {
	q := (&rawQuery{}).
		add("FirstName", req.FirstName).
		add("MiddleName", req.MiddleName).
		add("LastName", req.LastName).
		add("EmailID", req.EmailID).
		add("PhoneNumber", req.PhoneNumber).
		add("JoiningDate", req.JoiningDate)

	var out models.MessageResponse
	if err := h.post(ctx, withQuery("/RegisterEmployee", q), emptyObject, &out); err != nil {
		return models.MessageResponse{}, fmt.Errorf("register employee: %w", err)
	}
	return out, nil
}

// SetAttendanceStatus implements [AttendanceAPI]: POST /SetAttendanceStatus
// with plain query parameters.
func (h *httpAttendanceAPI) SetAttendanceStatus(ctx context.Context, req models.SetAttendanceRequest) (models.MessageResponse, error) {
	q := (&rawQuery{}).
		add("EmployeeCode", req.EmployeeCode).
		add("Date", req.Date).
		add("CheckInTime", req.CheckInTime).
		add("CheckOutTime", req.CheckOutTime).
		add("Status", strconv.Itoa(int(req.Status))).
		add("Remarks", req.Remarks)

	var out models.MessageResponse
	if err := h.post(ctx, withQuery("/SetAttendanceStatus", q), emptyObject, &out); err != nil {
		return models.MessageResponse{}, fmt.Errorf("set attendance status: %w", err)
	}
	return out, nil
}

// AllEmployeeReport implements [AttendanceAPI]: POST /AllEmployeeReport?Month=&Year=.
// The backend answers either with a bare array or with {"data": [...]}.
func (h *httpAttendanceAPI) AllEmployeeReport(ctx context.Context, month, year int) ([]models.MonthlyReportEntry, error) {
	q := (&rawQuery{}).
		add("Month", strconv.Itoa(month)).
		add("Year", strconv.Itoa(year))

	var raw json.RawMessage
	if err := h.post(ctx, withQuery("/AllEmployeeReport", q), nil, &raw); err != nil {
		return nil, fmt.Errorf("all employee report: %w", err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var entries []models.MonthlyReportEntry
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("%w: decode all employee report: %w", ErrUnexpectedResponse, err)
		}
		return entries, nil
	}

	var wrapped struct {
		Data []models.MonthlyReportEntry `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: decode all employee report: %w", ErrUnexpectedResponse, err)
	}
	return wrapped.Data, nil
}

// ByEmployeeReport implements [AttendanceAPI]:
// POST /ByEmployeeReport?EmployeeCode=&Month=&Year=, the code encrypted.
func (h *httpAttendanceAPI) ByEmployeeReport(ctx context.Context, employeeCode string, month, year int) (models.EmployeeMonthlyReport, error) {
	q := (&rawQuery{}).
		add("EmployeeCode", h.codec.Encrypt(employeeCode)).
		add("Month", strconv.Itoa(month)).
		add("Year", strconv.Itoa(year))

	var out models.EmployeeMonthlyReport
	if err := h.post(ctx, withQuery("/ByEmployeeReport", q), emptyObject, &out); err != nil {
		return models.EmployeeMonthlyReport{}, fmt.Errorf("employee report: %w", err)
	}
	return out, nil
}

// ApplyLeave implements [AttendanceAPI]: POST /leave/apply with a JSON body.
func (h *httpAttendanceAPI) ApplyLeave(ctx context.Context, req models.LeaveRequest) (models.MessageResponse, error) {
	var out models.MessageResponse
	if err := h.post(ctx, "/leave/apply", req, &out); err != nil {
		return models.MessageResponse{}, fmt.Errorf("apply leave: %w", err)
	}
	return out, nil
}

// Notifications implements [AttendanceAPI]: GET /notifications/{feed}.
func (h *httpAttendanceAPI) Notifications(ctx context.Context, feed string) ([]models.APINotification, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("feed", feed).
		Get("/notifications/{feed}")
	if err != nil {
		return nil, fmt.Errorf("%w: notifications request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out models.NotificationsResponse
	if err = decodeBody(resp, &out); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}
	return out.Data, nil
}

// MarkNotificationRead implements [AttendanceAPI]: PUT /notifications/mark-as-read.
func (h *httpAttendanceAPI) MarkNotificationRead(ctx context.Context, req models.MarkReadRequest) error {
	return h.put(ctx, "/notifications/mark-as-read", req)
}

// MarkAllNotificationsRead implements [AttendanceAPI]: PUT /notifications/mark-all-read.
func (h *httpAttendanceAPI) MarkAllNotificationsRead(ctx context.Context, employeeCode string) error {
	return h.put(ctx, "/notifications/mark-all-read", models.MarkAllReadRequest{EmployeeCode: employeeCode})
}

var emptyObject = struct{}{}

// post sends a POST with an optional JSON body and decodes the answer into out.
func (h *httpAttendanceAPI) post(ctx context.Context, url string, body, out any) error {
	resp, err := h.request(ctx, body).Post(url)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	return decodeBody(resp, out)
}

// request prepares a request with a JSON body, or with an explicit empty
// body (Content-Length: 0) when body is nil.
func (h *httpAttendanceAPI) request(ctx context.Context, body any) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if body == nil {
		return req.SetBody([]byte{})
	}
	return req.SetHeader("Content-Type", "application/json").SetBody(body)
}

func (h *httpAttendanceAPI) put(ctx context.Context, url string, body any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put(url)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return mapHTTPError(resp)
}

// decodeBody unmarshals a JSON body into out. An empty body leaves out
// untouched.
func decodeBody(resp *resty.Response, out any) error {
	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	return nil
}
