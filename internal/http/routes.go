package httpx

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	storefrontadmin "github.com/target/storefront-admin"
	domainauth "github.com/target/storefront-admin/internal/domain/auth"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      AuthServiceInterface // Required
	Catalog   CatalogService       // Required
	People    PeopleService        // Required
	Orders    OrdersService        // Required
	Dashboard DashboardService     // Required

	Cookie CookieOptions
	CSRF   CSRFConfig
	// BearerContext attaches the session token for outbound store API calls.
	BearerContext func(ctx context.Context, token string) context.Context
	// Health lists the dependencies /healthz pings.
	Health map[string]HealthChecker

	// TemplateFS overrides the template source (tests). Defaults to disk in
	// dev mode and the embedded templates otherwise.
	TemplateFS fs.FS

	IsDev  bool // Development mode flag for hot reloading, etc.
	Now    func() time.Time
	Logger *slog.Logger
}

// NewRouter creates and configures a new HTTP router with browser middleware.
func NewRouter(services RouterServices) (http.Handler, error) {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	templateFS, err := templateSource(services)
	if err != nil {
		return nil, err
	}
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS,
		Now:        services.Now,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("template renderer: %w", err)
	}

	ui := &UIHandlers{
		T:         tr,
		Catalog:   services.Catalog,
		People:    services.People,
		Orders:    services.Orders,
		Dashboard: services.Dashboard,
		IsDev:     services.IsDev,
		Now:       services.Now,
		Logger:    logger,
	}
	auth := &AuthHandlers{Svc: services.Auth, Cookie: services.Cookie, UI: ui, Logger: logger}

	mux := http.NewServeMux()
	mux.Handle("GET /healthz", healthHandler(services.Health))
	mux.Handle("HEAD /healthz", healthHandler(services.Health))
	mux.Handle("GET /static/", staticHandler(services.IsDev))

	registerAuthRoutes(mux, auth)
	registerPageRoutes(mux, ui, auth)
	registerAdminRoutes(mux, ui)
	registerDeliveryRoutes(mux, ui)

	var handler http.Handler = mux
	handler = ResolveSession(SessionConfig{
		Resolver:      services.Auth,
		Cookie:        services.Cookie,
		BearerContext: services.BearerContext,
		Logger:        logger,
	})(handler)
	handler = CSRFProtection(services.CSRF)(handler)
	handler = BrowserDetection()(handler)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler, nil
}

func templateSource(services RouterServices) (fs.FS, error) {
	if services.TemplateFS != nil {
		return services.TemplateFS, nil
	}
	if services.IsDev {
		return os.DirFS(TemplatePathFromRoot), nil
	}
	sub, err := fs.Sub(storefrontadmin.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		return nil, fmt.Errorf("embedded templates: %w", err)
	}
	return sub, nil
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/status", h.Status)
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("POST /login/forgot-password", h.ForgotPassword)
	mux.HandleFunc("POST /logout", h.Logout)
}

// registerPageRoutes wires the routed top-level pages behind the guard. The
// GET / catch-all only ever redirects: unknown paths go home and trailing
// slash variants go to their canonical path.
func registerPageRoutes(mux *http.ServeMux, ui *UIHandlers, auth *AuthHandlers) {
	guard := Guard()
	page := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, guard(fn))
	}
	page("GET /{$}", ui.DashboardPage)
	page("GET /login", auth.LoginPage)
	page("GET /products", ui.ProductsPage)
	page("GET /user", ui.UsersPage)
	page("GET /category", ui.CategoryPage)
	page("GET /delivery", ui.DeliveryPage)
	page("GET /deliverylayout", ui.DeliveryLayoutPage)
	page("GET /", func(w http.ResponseWriter, r *http.Request) {
		redirectTo(w, r, homeFor(r))
	})
}

func registerAdminRoutes(mux *http.ServeMux, ui *UIHandlers) {
	admin := RequireRole(domainauth.RoleAdmin)
	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, admin(fn))
	}

	handle("GET /dashboard/activity", ui.ActivityFragment)

	handle("GET /products/new", ui.NewProductForm)
	handle("GET /products/instances", ui.InstanceOptions)
	handle("GET /products/{id}/edit", ui.EditProductForm)
	handle("POST /products", ui.CreateProduct)
	handle("POST /products/upload", ui.UploadImage)
	handle("POST /products/{id}", ui.UpdateProduct)
	handle("POST /products/{id}/delete", ui.DeleteProduct)

	handle("POST /user", ui.RegisterUser)

	handle("POST /category/brands", ui.AddBrand)
	handle("POST /category/categories", ui.AddCategory)
	handle("POST /category/suppliers", ui.AddSupplier)
	handle("POST /category/doctors", ui.AddDoctor)
	handle("POST /category/bookings", ui.AddBooking)

	handle("GET /delivery/vouchers/{id}", ui.VoucherDialog)
}

func registerDeliveryRoutes(mux *http.ServeMux, ui *UIHandlers) {
	courier := RequireRole(domainauth.RoleDelivery)
	mux.Handle("GET /deliverylayout/vouchers/{id}", courier(http.HandlerFunc(ui.VoucherDialog)))
	mux.Handle("POST /deliverylayout/orders/{id}/{action}", courier(http.HandlerFunc(ui.DeliverOrder)))
}

// staticHandler serves /static/* from disk in dev mode and from the embedded
// FS otherwise.
func staticHandler(isDev bool) http.Handler {
	if isDev {
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))), false)
	}
	staticSub, err := fs.Sub(storefrontadmin.StaticFS, "frontend/static")
	if err != nil {
		slog.Error("embedded static assets unavailable, serving from disk", "error", err)
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))), false)
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))), true)
}

// staticWithCacheHeaders lets browsers cache embedded assets for an hour and
// disables caching for disk assets in dev.
func staticWithCacheHeaders(handler http.Handler, cacheable bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cacheable {
			w.Header().Set("Cache-Control", "public, max-age=3600")
		} else {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}
		handler.ServeHTTP(w, r)
	})
}
