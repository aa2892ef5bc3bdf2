package httpx

import (
	"context"
	"html"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainauth "github.com/target/storefront-admin/internal/domain/auth"
	"github.com/target/storefront-admin/internal/domain/model"
	"github.com/target/storefront-admin/internal/domain/routing"
	apperrors "github.com/target/storefront-admin/internal/errors"
	"github.com/target/storefront-admin/internal/http/ui/viewmodel"
	"github.com/target/storefront-admin/internal/service"
)

// CatalogService is the product and category surface the UI needs.
type CatalogService interface {
	Products(ctx context.Context, page model.ProductPage) ([]model.Product, error)
	Product(ctx context.Context, id string) (model.Product, error)
	CreateProduct(ctx context.Context, in model.ProductInput) error
	UpdateProduct(ctx context.Context, in model.ProductInput) error
	DeleteProduct(ctx context.Context, id string) error
	UploadImage(ctx context.Context, filename string, r io.Reader) (model.UploadedImage, error)
	Brands(ctx context.Context) ([]model.Brand, error)
	AddBrand(ctx context.Context, name string) error
	Categories(ctx context.Context) ([]model.Category, error)
	CategoryInstances(ctx context.Context) ([]model.CategoryInstance, error)
	InstancesOf(ctx context.Context, catID string) ([]model.CategoryInstance, error)
	AddCategory(ctx context.Context, in model.CategoryInput) error
}

// PeopleService covers users, suppliers, doctors and bookings.
type PeopleService interface {
	Users(ctx context.Context) ([]model.User, error)
	RegisterUser(ctx context.Context, in model.UserInput) error
	AddSupplier(ctx context.Context, name string) error
	SupplierHistory(ctx context.Context) ([]model.SupplierHistory, error)
	Doctors(ctx context.Context) ([]model.Doctor, error)
	AddDoctor(ctx context.Context, in model.Doctor) error
	Bookings(ctx context.Context) ([]model.Booking, error)
	AddBooking(ctx context.Context, in model.BookingInput) error
}

// OrdersService lists orders and applies delivery actions.
type OrdersService interface {
	Orders(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	Voucher(ctx context.Context, orderID string) (model.Voucher, error)
	Deliver(ctx context.Context, orderID, action string) error
}

// DashboardService assembles the admin dashboard.
type DashboardService interface {
	Overview(ctx context.Context) (service.Overview, error)
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ CatalogService   = (*service.CatalogService)(nil)
	_ PeopleService    = (*service.PeopleService)(nil)
	_ OrdersService    = (*service.OrderService)(nil)
	_ DashboardService = (*service.DashboardService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T         *TemplateRenderer
	Catalog   CatalogService
	People    PeopleService
	Orders    OrdersService
	Dashboard DashboardService
	IsDev     bool // Development mode flag for enhanced error reporting
	Now       func() time.Time
	Logger    *slog.Logger
}

func (h *UIHandlers) now() time.Time {
	if h != nil && h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Toast event and levels understood by the client script.
const (
	toastEvent   = "showToast"
	toastSuccess = "success"
	toastError   = "error"

	// dialogCloseEvent closes whichever form dialog is open.
	dialogCloseEvent = "dialog:close"
)

func toastPayload(message, level string) map[string]any {
	return map[string]any{"message": message, "type": level}
}

// triggerToast sends a standardized HX-Trigger payload for toast notifications.
func triggerToast(w http.ResponseWriter, message, toastType string) {
	if w == nil || strings.TrimSpace(message) == "" {
		return
	}
	HTMX(w).Trigger(toastEvent, toastPayload(message, strings.TrimSpace(toastType)))
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

//nolint:gochecknoglobals // static navigation per console
var (
	adminNav = []viewmodel.NavItem{
		{Label: "Dashboard", Path: routing.PathDashboard},
		{Label: "Products", Path: routing.PathProducts},
		{Label: "Users", Path: routing.PathUsers},
		{Label: "Category", Path: routing.PathCategory},
		{Label: "Delivery", Path: routing.PathDelivery},
	}
	deliveryNav = []viewmodel.NavItem{
		{Label: "Orders", Path: routing.PathDeliveryLayout},
	}
)

func navFor(p routing.Presentation, path string) []viewmodel.NavItem {
	var src []viewmodel.NavItem
	switch p {
	case routing.AdminConsole:
		src = adminNav
	case routing.DeliveryConsole:
		src = deliveryNav
	default:
		return nil
	}
	path = routing.Normalize(path)
	out := make([]viewmodel.NavItem, len(src))
	for i, item := range src {
		item.Active = item.Path == path
		out[i] = item
	}
	return out
}

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	state := StateFromContext(r.Context())
	p := routing.PresentationFor(state)
	layout := viewmodel.Layout{
		Title:        meta.Title,
		PageTitle:    meta.PageTitle,
		CurrentPage:  meta.CurrentPage,
		CSRFToken:    GetCSRFToken(r),
		Presentation: string(p),
		Nav:          navFor(p, r.URL.Path),
	}
	if state.IsAuthenticated {
		layout.IsAuthenticated = true
		layout.User = userView(*state.Identity)
	}
	return layout
}

func userView(id domainauth.Identity) *viewmodel.User {
	return &viewmodel.User{Name: id.Name, UserID: id.UserID, Role: string(id.Role)}
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	data := map[string]any{
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"IsAuthenticated": layout.IsAuthenticated,
		"Presentation":    layout.Presentation,
		"Nav":             layout.Nav,
		"Path":            r.URL.Path,
		"SelfURL":         r.URL.RequestURI(),
		"CSRFToken":       layout.CSRFToken,
	}
	if layout.User != nil {
		data["User"] = layout.User
	}
	return data
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta  PageMeta
	Fetch func(ctx context.Context, data map[string]any) error
}

// Page builds base data, optionally fetches content data, and renders.
// A failing fetch still renders the page with an error banner.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	data := basePageData(r, spec.Meta)
	if spec.Fetch != nil {
		if err := spec.Fetch(r.Context(), data); err != nil {
			h.logger().WarnContext(r.Context(), "page data unavailable",
				"page", spec.Meta.CurrentPage, "error", err)
			markPageError(data, err)
		}
	}
	h.renderPage(w, r, data)
}

func markPageError(data map[string]any, err error) {
	data["Error"] = true
	data["ErrorMessage"] = apperrors.UserMessage(err)
}

// renderPage renders the full layout, or for htmx the content area plus
// out-of-band title updates.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	layout := layoutFromMap(data)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	SetHXTrigger(w, "nav:activate", map[string]string{"path": routing.Normalize(r.URL.Path)})

	if _, err := io.WriteString(w, `<title>`+html.EscapeString(layout.Title)+`</title>`+
		`<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">`+html.EscapeString(layout.PageTitle)+`</h1>`); err != nil {
		h.logger().Error("failed to write partial header", "error", err)
		return
	}
	if err := h.T.t.ExecuteTemplate(w, ContentTemplateFor(layout.CurrentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
	}
}

// renderFragment renders a single named partial, such as a dialog body.
func (h *UIHandlers) renderFragment(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := h.T.Render(w, name, data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "fragment "+name)
	}
}

func layoutFromMap(data map[string]any) viewmodel.Layout {
	layout := viewmodel.Layout{}
	if v, ok := data["Title"].(string); ok {
		layout.Title = v
	}
	if v, ok := data["PageTitle"].(string); ok {
		layout.PageTitle = v
	}
	if v, ok := data["CurrentPage"].(string); ok {
		layout.CurrentPage = v
	}
	return layout
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		if _, writeErr := io.WriteString(w, `<div class="dev-error"><h2>Template Rendering Error</h2>`+
			`<p><strong>Context:</strong> `+html.EscapeString(context)+`</p>`+
			`<p><strong>Path:</strong> `+html.EscapeString(r.URL.Path)+`</p>`+
			`<pre>`+html.EscapeString(err.Error())+`</pre></div>`); writeErr != nil {
			h.logger().Error("failed to write template error response", "error", writeErr)
		}
		return
	}

	http.Error(w, "internal server error", http.StatusInternalServerError)
}
