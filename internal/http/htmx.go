package httpx

import (
	"encoding/json"
	"net/http"
	"strings"
)

// IsHTMX reports whether the request was initiated by htmx (Hx-Request: true).
func IsHTMX(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Hx-Request"), "true")
}

// IsBoosted reports whether the request was initiated by hx-boost (Hx-Boosted: true).
func IsBoosted(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Hx-Boosted"), "true")
}

// WantsPartial returns true when the handler should return only the main fragment.
// Boosted navigation and history restores still want the content area only.
func WantsPartial(r *http.Request) bool {
	return IsHTMX(r)
}

// HXTarget returns the id of the target element being updated.
func HXTarget(r *http.Request) string { return r.Header.Get("Hx-Target") }

// SetHXRedirect instructs htmx to redirect the browser to the given URL.
func SetHXRedirect(w http.ResponseWriter, url string) { w.Header().Set("Hx-Redirect", url) }

// SetHXPushURL pushes the given URL into the browser history for the new content.
func SetHXPushURL(w http.ResponseWriter, url string) { w.Header().Set("Hx-Push-Url", url) }

// SetHXReswap overrides the swap strategy of the triggering element.
func SetHXReswap(w http.ResponseWriter, swap string) { w.Header().Set("Hx-Reswap", swap) }

// SetHXTrigger triggers a single client-side event with an optional payload.
// A nil payload is sent as true.
func SetHXTrigger(w http.ResponseWriter, event string, payload any) {
	HTMX(w).Trigger(event, payload)
}

// HTMXResponse builds htmx response headers. Triggers accumulate so one
// response can raise a toast and refresh a fragment.
type HTMXResponse struct {
	w      http.ResponseWriter
	events map[string]any
}

// HTMX creates a new HTMXResponse for fluent response building.
func HTMX(w http.ResponseWriter) *HTMXResponse {
	return &HTMXResponse{w: w}
}

// Redirect sets HX-Redirect and answers 204. The handler should return immediately.
func (h *HTMXResponse) Redirect(url string) {
	SetHXRedirect(h.w, url)
	h.w.WriteHeader(http.StatusNoContent)
}

// Trigger adds an event to the Hx-Trigger header. This method is chainable.
func (h *HTMXResponse) Trigger(event string, payload any) *HTMXResponse {
	if h.events == nil {
		h.events = make(map[string]any)
	}
	var value any = true
	if payload != nil {
		value = payload
	}
	h.events[event] = value
	b, err := json.Marshal(h.events)
	if err != nil {
		// Unserialisable payloads degrade to bare events.
		bare := make(map[string]bool, len(h.events))
		for k := range h.events {
			bare[k] = true
		}
		b, _ = json.Marshal(bare)
	}
	h.w.Header().Set("Hx-Trigger", string(b))
	return h
}

// PushURL pushes the given URL into the browser history. This method is chainable.
func (h *HTMXResponse) PushURL(url string) *HTMXResponse {
	SetHXPushURL(h.w, url)
	return h
}

// NoSwap tells htmx to leave the target untouched. This method is chainable.
func (h *HTMXResponse) NoSwap() *HTMXResponse {
	SetHXReswap(h.w, "none")
	return h
}
