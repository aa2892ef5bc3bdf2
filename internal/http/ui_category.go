package httpx

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/target/storefront-admin/internal/domain/model"
	"github.com/target/storefront-admin/internal/domain/routing"
)

// Category page tabs.
const (
	tabBrand    = "brand"
	tabCategory = "category"
	tabSupplier = "supplier"
	tabDoctor   = "doctor"
	tabBooking  = "booking"
)

// TabLink is one entry of a tab strip. Switching tabs always starts at page 1.
type TabLink struct {
	Key    string
	Label  string
	URL    string
	Active bool
}

func tabLinks(basePath, active string, tabs [][2]string) []TabLink {
	out := make([]TabLink, 0, len(tabs))
	for _, t := range tabs {
		out = append(out, TabLink{
			Key:    t[0],
			Label:  t[1],
			URL:    basePath + "?tab=" + t[0],
			Active: t[0] == active,
		})
	}
	return out
}

//nolint:gochecknoglobals // static tab strip
var categoryTabs = [][2]string{
	{tabBrand, "Brand"},
	{tabCategory, "Category"},
	{tabSupplier, "Supplier"},
	{tabDoctor, "Doctor"},
	{tabBooking, "Booking"},
}

// CategoryPage shows the reference data tabs, 7 rows per page.
// GET /category?tab=&page=.
func (h *UIHandlers) CategoryPage(w http.ResponseWriter, r *http.Request) {
	tab := tabParam(r, tabBrand, tabBrand, tabCategory, tabSupplier, tabDoctor, tabBooking)
	page := pageParam(r)
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Storefront Admin - Category", PageTitle: "Category", CurrentPage: PageCategory},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Tab"] = tab
			data["Tabs"] = tabLinks(routing.PathCategory, tab, categoryTabs)
			data["Rows"] = []any{}
			return h.populateCategoryTab(ctx, r, data, tab, page)
		},
	})
}

func (h *UIHandlers) populateCategoryTab(ctx context.Context, r *http.Request, data map[string]any, tab string, page int) error {
	b := extendTemplateData(r, data)
	switch tab {
	case tabCategory:
		inst, err := h.Catalog.CategoryInstances(ctx)
		if err != nil {
			return err
		}
		rows, p := pageOf(inst, page, categoryPageSize, routing.PathCategory)
		b.With("Rows", rows).WithPagination(p)
	case tabSupplier:
		hist, err := h.People.SupplierHistory(ctx)
		if err != nil {
			return err
		}
		rows, p := pageOf(hist, page, categoryPageSize, routing.PathCategory)
		b.With("Rows", rows).WithPagination(p)
	case tabDoctor:
		docs, err := h.People.Doctors(ctx)
		if err != nil {
			return err
		}
		rows, p := pageOf(docs, page, categoryPageSize, routing.PathCategory)
		b.With("Rows", rows).WithPagination(p)
	case tabBooking:
		return h.populateBookings(ctx, b, page)
	default:
		brands, err := h.Catalog.Brands(ctx)
		if err != nil {
			return err
		}
		rows, p := pageOf(brands, page, categoryPageSize, routing.PathCategory)
		b.With("Rows", rows).WithPagination(p)
	}
	return nil
}

// populateBookings also loads the doctor and user choices of the booking dialog.
func (h *UIHandlers) populateBookings(ctx context.Context, b *TemplateDataBuilder, page int) error {
	var (
		bookings []model.Booking
		doctors  []model.Doctor
		users    []model.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { bookings, err = h.People.Bookings(gctx); return err })
	g.Go(func() (err error) { doctors, err = h.People.Doctors(gctx); return err })
	g.Go(func() (err error) { users, err = h.People.Users(gctx); return err })
	if err := g.Wait(); err != nil {
		return err
	}
	rows, p := pageOf(bookings, page, categoryPageSize, routing.PathCategory)
	b.With("Rows", rows).With("Doctors", doctors).With("UserOptions", users).WithPagination(p)
	return nil
}

func (h *UIHandlers) categoryMutation(w http.ResponseWriter, r *http.Request, tab string, err error, success string) {
	h.respondMutation(w, r, mutation{
		Err:     err,
		Success: success,
		Event:   eventCategoryChanged,
		Return:  routing.PathCategory + "?tab=" + tab,
	})
}

// AddBrand handles the add-brand dialog.
// POST /category/brands.
func (h *UIHandlers) AddBrand(w http.ResponseWriter, r *http.Request) {
	err := h.Catalog.AddBrand(r.Context(), formString(r, "brandName"))
	h.categoryMutation(w, r, tabBrand, err, "Brand added")
}

// instanceNames accepts repeated instanceNames fields as well as one
// comma or newline separated field.
func instanceNames(r *http.Request) []string {
	if err := r.ParseForm(); err != nil {
		return nil
	}
	var out []string
	for _, v := range r.PostForm["instanceNames"] {
		for _, name := range strings.FieldsFunc(v, func(c rune) bool { return c == ',' || c == '\n' }) {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

// AddCategory handles the add-category dialog.
// POST /category/categories.
func (h *UIHandlers) AddCategory(w http.ResponseWriter, r *http.Request) {
	err := h.Catalog.AddCategory(r.Context(), model.CategoryInput{
		CatName:       formString(r, "catName"),
		InstanceNames: instanceNames(r),
	})
	h.categoryMutation(w, r, tabCategory, err, "Category added")
}

// AddSupplier handles the add-supplier dialog.
// POST /category/suppliers.
func (h *UIHandlers) AddSupplier(w http.ResponseWriter, r *http.Request) {
	err := h.People.AddSupplier(r.Context(), formString(r, "name"))
	h.categoryMutation(w, r, tabSupplier, err, "Supplier added")
}

// AddDoctor handles the add-doctor dialog.
// POST /category/doctors.
func (h *UIHandlers) AddDoctor(w http.ResponseWriter, r *http.Request) {
	err := h.People.AddDoctor(r.Context(), model.Doctor{
		Name:          formString(r, "name"),
		Description:   formString(r, "description"),
		StorePosition: formString(r, "storePosition"),
		StoreName:     formString(r, "storeName"),
		PhoneNumber:   formString(r, "phoneNumber"),
		Email:         formString(r, "email"),
	})
	h.categoryMutation(w, r, tabDoctor, err, "Doctor added")
}

// AddBooking handles the add-booking dialog.
// POST /category/bookings.
func (h *UIHandlers) AddBooking(w http.ResponseWriter, r *http.Request) {
	err := h.People.AddBooking(r.Context(), model.BookingInput{
		Title:       formString(r, "title"),
		Description: formString(r, "description"),
		DoctorID:    formString(r, "doctorId"),
		UserID:      formString(r, "userId"),
		BookingDate: formString(r, "bookingDate"),
	})
	h.categoryMutation(w, r, tabBooking, err, "Booking added")
}
