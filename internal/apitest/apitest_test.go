package apitest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantCode int
		wantBody string
		wantErr  bool
	}{
		{name: "message", data: map[string]string{"message": "Entry Marked Successfully!"}, status: http.StatusOK, wantCode: http.StatusOK, wantBody: `{"message":"Entry Marked Successfully!"}`},
		{name: "error status", data: map[string]string{"message": "not found"}, status: http.StatusNotFound, wantCode: http.StatusNotFound, wantBody: `{"message":"not found"}`},
		{name: "nil", data: nil, status: http.StatusOK, wantCode: http.StatusOK, wantBody: "null"},
		{name: "unmarshalable", data: make(chan int), status: http.StatusOK, wantCode: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			_, err := WriteJSON(w, tt.data, tt.status)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
