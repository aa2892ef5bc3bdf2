package httpx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domainauth "github.com/target/storefront-admin/internal/domain/auth"
	"github.com/target/storefront-admin/internal/domain/model"
	authmocks "github.com/target/storefront-admin/internal/mocks/auth"
	"github.com/target/storefront-admin/internal/ports"
	"github.com/target/storefront-admin/internal/service"
)

type fakeCatalog struct {
	mu         sync.Mutex
	products   []model.Product
	product    model.Product
	brands     []model.Brand
	categories []model.Category
	instances  []model.CategoryInstance
	readErr    error
	writeErr   error

	pages       []model.ProductPage
	created     []model.ProductInput
	updated     []model.ProductInput
	deleted     []string
	addedBrands []string
	addedCats   []model.CategoryInput
	uploads     []string
}

func (f *fakeCatalog) Products(_ context.Context, page model.ProductPage) ([]model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages = append(f.pages, page)
	return f.products, f.readErr
}

func (f *fakeCatalog) Product(_ context.Context, _ string) (model.Product, error) {
	return f.product, f.readErr
}

func (f *fakeCatalog) CreateProduct(_ context.Context, in model.ProductInput) error {
	f.created = append(f.created, in)
	return f.writeErr
}

func (f *fakeCatalog) UpdateProduct(_ context.Context, in model.ProductInput) error {
	f.updated = append(f.updated, in)
	return f.writeErr
}

func (f *fakeCatalog) DeleteProduct(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.writeErr
}

func (f *fakeCatalog) UploadImage(_ context.Context, filename string, r io.Reader) (model.UploadedImage, error) {
	if _, err := io.ReadAll(r); err != nil {
		return model.UploadedImage{}, err
	}
	f.uploads = append(f.uploads, filename)
	return model.UploadedImage{URL: "https://cdn.example.com/" + filename}, f.writeErr
}

func (f *fakeCatalog) Brands(context.Context) ([]model.Brand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.brands, f.readErr
}

func (f *fakeCatalog) AddBrand(_ context.Context, name string) error {
	f.addedBrands = append(f.addedBrands, name)
	return f.writeErr
}

func (f *fakeCatalog) Categories(context.Context) ([]model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.categories, f.readErr
}

func (f *fakeCatalog) CategoryInstances(context.Context) ([]model.CategoryInstance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.instances, f.readErr
}

func (f *fakeCatalog) InstancesOf(_ context.Context, catID string) ([]model.CategoryInstance, error) {
	var out []model.CategoryInstance
	for _, in := range f.instances {
		if in.CatID == catID {
			out = append(out, in)
		}
	}
	return out, f.readErr
}

func (f *fakeCatalog) AddCategory(_ context.Context, in model.CategoryInput) error {
	f.addedCats = append(f.addedCats, in)
	return f.writeErr
}

type fakePeople struct {
	mu        sync.Mutex
	users     []model.User
	suppliers []model.SupplierHistory
	doctors   []model.Doctor
	bookings  []model.Booking
	readErr   error
	writeErr  error

	registered []model.UserInput
	addedSupp  []string
	addedDocs  []model.Doctor
	addedBooks []model.BookingInput
}

func (f *fakePeople) Users(context.Context) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users, f.readErr
}

func (f *fakePeople) RegisterUser(_ context.Context, in model.UserInput) error {
	f.registered = append(f.registered, in)
	return f.writeErr
}

func (f *fakePeople) AddSupplier(_ context.Context, name string) error {
	f.addedSupp = append(f.addedSupp, name)
	return f.writeErr
}

func (f *fakePeople) SupplierHistory(context.Context) ([]model.SupplierHistory, error) {
	return f.suppliers, f.readErr
}

func (f *fakePeople) Doctors(context.Context) ([]model.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.doctors, f.readErr
}

func (f *fakePeople) AddDoctor(_ context.Context, in model.Doctor) error {
	f.addedDocs = append(f.addedDocs, in)
	return f.writeErr
}

func (f *fakePeople) Bookings(context.Context) ([]model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bookings, f.readErr
}

func (f *fakePeople) AddBooking(_ context.Context, in model.BookingInput) error {
	f.addedBooks = append(f.addedBooks, in)
	return f.writeErr
}

type deliverCall struct{ id, action string }

type fakeOrders struct {
	byStatus map[model.OrderStatus][]model.Order
	voucher  model.Voucher
	readErr  error
	writeErr error

	asked     []model.OrderStatus
	delivered []deliverCall
}

func (f *fakeOrders) Orders(_ context.Context, status model.OrderStatus) ([]model.Order, error) {
	f.asked = append(f.asked, status)
	return f.byStatus[status], f.readErr
}

func (f *fakeOrders) Voucher(_ context.Context, id string) (model.Voucher, error) {
	v := f.voucher
	v.OrderID = id
	return v, f.readErr
}

func (f *fakeOrders) Deliver(_ context.Context, id, action string) error {
	f.delivered = append(f.delivered, deliverCall{id: id, action: action})
	return f.writeErr
}

type fakeDashboard struct {
	overview service.Overview
	err      error
}

func (f *fakeDashboard) Overview(context.Context) (service.Overview, error) {
	return f.overview, f.err
}

// consoleEnv is a full router over fake services and a real AuthService
// backed by in-memory token stores.
type consoleEnv struct {
	handler   http.Handler
	stores    *authmocks.MemoryTokenStores
	decoder   *authmocks.StaticDecoder
	backend   *authmocks.MockAuthenticator
	catalog   *fakeCatalog
	people    *fakePeople
	orders    *fakeOrders
	dashboard *fakeDashboard
}

func newConsoleEnv(t *testing.T) *consoleEnv {
	t.Helper()
	SkipIfNoTemplates(t)

	env := &consoleEnv{
		stores:    authmocks.NewMemoryTokenStores(),
		decoder:   authmocks.NewStaticDecoder(),
		backend:   &authmocks.MockAuthenticator{},
		catalog:   &fakeCatalog{},
		people:    &fakePeople{},
		orders:    &fakeOrders{byStatus: map[model.OrderStatus][]model.Order{}},
		dashboard: &fakeDashboard{},
	}
	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Sessions: service.SessionDeps{Stores: env.stores, Decoder: env.decoder},
		Backend:  env.backend,
	})
	h, err := NewRouter(RouterServices{
		Auth:       authSvc,
		Catalog:    env.catalog,
		People:     env.people,
		Orders:     env.orders,
		Dashboard:  env.dashboard,
		TemplateFS: os.DirFS(TemplatePathFromTest),
	})
	require.NoError(t, err)
	env.handler = h
	return env
}

// session seeds a valid token for role and returns the session id.
func (e *consoleEnv) session(role domainauth.Role) string {
	sid := "sid-" + strings.ToLower(string(role))
	tok := "tok-" + sid
	e.decoder.Claims[tok] = domainauth.Claims{
		Identity:  domainauth.Identity{Name: "Test " + string(role), UserID: "u-" + sid, Role: role},
		ExpiresAt: time.Now().Add(time.Hour),
	}
	e.stores.Seed(sid, tok)
	return sid
}

// addLogin makes email/password sign in with a token of role.
func (e *consoleEnv) addLogin(email, password string, role domainauth.Role) {
	tok := "login-" + email
	e.decoder.Claims[tok] = domainauth.Claims{
		Identity:  domainauth.Identity{Name: email, UserID: "u-" + email, Role: role},
		ExpiresAt: time.Now().Add(time.Hour),
	}
	e.backend.AddUser(email, password, ports.LoginResult{Token: tok})
}

type reqOpts struct {
	sid  string
	htmx bool
	// noCSRF leaves the CSRF token out of a POST.
	noCSRF bool
	header map[string]string
}

const testCSRFToken = "test-csrf-token"

func (e *consoleEnv) get(t *testing.T, path string, o reqOpts) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, path, nil)
	r.Header.Set("Accept", "text/html")
	return e.do(r, o)
}

func (e *consoleEnv) post(t *testing.T, path string, form url.Values, o reqOpts) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set("Accept", "text/html")
	if !o.noCSRF {
		r.Header.Set(DefaultCSRFHeaderName, testCSRFToken)
	}
	return e.do(r, o)
}

func (e *consoleEnv) do(r *http.Request, o reqOpts) *httptest.ResponseRecorder {
	r.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
	if o.sid != "" {
		r.AddCookie(&http.Cookie{Name: DefaultSessionCookieName, Value: o.sid})
	}
	if o.htmx {
		r.Header.Set("Hx-Request", "true")
	}
	for k, v := range o.header {
		r.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, r)
	return w
}
