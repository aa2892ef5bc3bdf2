package httpx

import (
	"context"
	"errors"
	"net/http"

	apperrors "github.com/target/storefront-admin/internal/errors"
)

// Refresh events raised after a successful mutation. List containers listen
// for them with hx-trigger="<event> from:body".
const (
	eventProductsChanged = "products:changed"
	eventUsersChanged    = "users:changed"
	eventCategoryChanged = "category:changed"
	eventOrdersChanged   = "orders:changed"
)

// mutation describes the outcome of a console action.
type mutation struct {
	Err error
	// Success is the toast shown when Err is nil.
	Success string
	// Event refreshes the affected fragment on htmx requests.
	Event string
	// Return is where plain form posts land after success.
	Return string
}

// respondMutation answers an action. htmx requests always get a toast and no
// swap; success also fires the refresh event and closes the dialog. Plain
// form posts are redirected on success and shown the error page on failure.
func (h *UIHandlers) respondMutation(w http.ResponseWriter, r *http.Request, m mutation) {
	if m.Err != nil {
		status := errorStatus(m.Err)
		h.logger().WarnContext(r.Context(), "console action failed",
			"path", r.URL.Path, "status", status, "error", m.Err)
		if IsHTMX(r) {
			payload := toastPayload(apperrors.UserMessage(m.Err), toastError)
			if field := apperrors.GetField(m.Err); field != "" {
				payload["field"] = field
			}
			HTMX(w).NoSwap().Trigger(toastEvent, payload)
			w.WriteHeader(status)
			return
		}
		h.renderErrorPage(w, r, status, apperrors.UserMessage(m.Err))
		return
	}

	if IsHTMX(r) {
		hx := HTMX(w).NoSwap().Trigger(toastEvent, toastPayload(m.Success, toastSuccess))
		if m.Event != "" {
			hx.Trigger(m.Event, nil)
		}
		hx.Trigger(dialogCloseEvent, nil)
		w.WriteHeader(http.StatusOK)
		return
	}

	ret := m.Return
	if ret == "" {
		ret = refererPath(r)
	}
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// errorStatus maps an error onto the response status. Context errors win
// over codes so a client disconnect is not reported as an upstream failure.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}
	return apperrors.HTTPStatus(apperrors.GetCode(err))
}

// renderErrorPage renders the standalone error layout.
func (h *UIHandlers) renderErrorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	data := basePageData(r, PageMeta{Title: "Storefront Admin - Error", PageTitle: "Something went wrong"})
	data["Status"] = status
	data["StatusText"] = http.StatusText(status)
	data["ErrorMessage"] = message
	data["Home"] = homeFor(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.T.RenderError(w, r, data); err != nil {
		h.logger().Error("error page render failed", "error", err)
	}
}
