package httpx

import (
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/target/storefront-admin/internal/errors"
)

// parseIntQuery returns the integer value of a query param or a default.
// It is tolerant of missing/invalid values.
func parseIntQuery(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// pageParam reads ?page=, never below 1.
func pageParam(r *http.Request) int {
	return max(parseIntQuery(r, "page", 1), 1)
}

// tabParam reads ?tab= and falls back to def when the value is not one of allowed.
func tabParam(r *http.Request, def string, allowed ...string) string {
	tab := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("tab")))
	for _, a := range allowed {
		if tab == a {
			return tab
		}
	}
	return def
}

// formString returns a trimmed form value.
func formString(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

// formInt parses an integer form field. Blank means zero.
func formInt(r *http.Request, key, label string) (int, error) {
	v := formString(r, key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, apperrors.ValidationField(key, label+" must be a whole number")
	}
	return n, nil
}

// formFloat parses a decimal form field. Blank means zero.
func formFloat(r *http.Request, key, label string) (float64, error) {
	v := formString(r, key)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, apperrors.ValidationField(key, label+" must be a number")
	}
	return f, nil
}
