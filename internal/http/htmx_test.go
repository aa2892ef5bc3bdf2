package httpx

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMX_RequestDetection(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.Header.Set("Hx-Request", "true")
	r.Header.Set("Hx-Boosted", "true")
	assert.True(t, IsHTMX(r))
	assert.True(t, IsBoosted(r))
	assert.True(t, WantsPartial(r))

	r2 := httptest.NewRequest(http.MethodGet, "/x", nil)
	assert.False(t, IsHTMX(r2))
	assert.False(t, IsBoosted(r2))
	assert.False(t, WantsPartial(r2))
}

func TestHTMXResponse_Redirect(t *testing.T) {
	w := httptest.NewRecorder()
	HTMX(w).Redirect("/deliverylayout")

	assert.Equal(t, "/deliverylayout", w.Header().Get("Hx-Redirect"))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHTMXResponse_TriggersAccumulate(t *testing.T) {
	w := httptest.NewRecorder()
	HTMX(w).
		Trigger("showToast", map[string]any{"message": "Saved", "type": "success"}).
		Trigger("products:changed", nil).
		NoSwap()

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(w.Header().Get("Hx-Trigger")), &got))
	assert.Equal(t, true, got["products:changed"])
	toast, ok := got["showToast"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Saved", toast["message"])
	assert.Equal(t, "none", w.Header().Get("Hx-Reswap"))
}

func TestHTMXResponse_UnserialisablePayload(t *testing.T) {
	w := httptest.NewRecorder()
	SetHXTrigger(w, "broken", math.Inf(1))
	assert.JSONEq(t, `{"broken":true}`, w.Header().Get("Hx-Trigger"))
}

func TestHTMX_PushURL(t *testing.T) {
	w := httptest.NewRecorder()
	HTMX(w).PushURL("/products?page=2")
	assert.Equal(t, "/products?page=2", w.Header().Get("Hx-Push-Url"))
}
