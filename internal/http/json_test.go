package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/target/storefront-admin/internal/errors"
)

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("sign in first")})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"authentication_required","message":"sign in first"}`, w.Body.String())
}

func TestWriteAppError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   map[string]string
	}{
		{
			name:   "validation with field",
			err:    apperrors.ValidationField("price", "Price must be greater than zero"),
			status: http.StatusBadRequest,
			body:   map[string]string{"error": "validation", "message": "Price must be greater than zero", "field": "price"},
		},
		{
			name:   "upstream hides cause",
			err:    apperrors.Wrap(errors.New("dial tcp: refused"), apperrors.ErrCodeUpstream, "The store API is unreachable"),
			status: http.StatusBadGateway,
			body:   map[string]string{"error": "upstream", "message": "The store API is unreachable"},
		},
		{
			name:   "plain error is internal",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body:   map[string]string{"error": "internal", "message": "Something went wrong. Please try again."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteAppError(w, tt.err)
			assert.Equal(t, tt.status, w.Code)
			var got map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.body, got)
		})
	}
}
