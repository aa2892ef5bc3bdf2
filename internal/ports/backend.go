package ports

import (
	"context"
	"io"

	"github.com/target/storefront-admin/internal/domain/model"
)

// CatalogAPI covers the product and category endpoints of the store API.
type CatalogAPI interface {
	ListProducts(ctx context.Context, page model.ProductPage) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (model.Product, error)
	CreateProduct(ctx context.Context, in model.ProductInput) error
	UpdateProduct(ctx context.Context, in model.ProductInput) error
	DeleteProduct(ctx context.Context, id string) error
	UploadImage(ctx context.Context, filename string, r io.Reader) (model.UploadedImage, error)

	ListBrands(ctx context.Context) ([]model.Brand, error)
	AddBrand(ctx context.Context, name string) error
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListCategoryInstances(ctx context.Context) ([]model.CategoryInstance, error)
	InstancesOf(ctx context.Context, catID string) ([]model.CategoryInstance, error)
	AddCategory(ctx context.Context, in model.CategoryInput) error
}

// PeopleAPI covers users, suppliers, doctors and bookings.
type PeopleAPI interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	RegisterUser(ctx context.Context, in model.UserInput) error
	AddSupplier(ctx context.Context, name string) error
	SupplierHistory(ctx context.Context) ([]model.SupplierHistory, error)

	ListDoctors(ctx context.Context) ([]model.Doctor, error)
	AddDoctor(ctx context.Context, in model.Doctor) error
	ListBookings(ctx context.Context) ([]model.Booking, error)
	AddBooking(ctx context.Context, in model.BookingInput) error
}

// OrderAPI covers order listing, vouchers and delivery actions.
type OrderAPI interface {
	OrdersByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	Voucher(ctx context.Context, orderID string) (model.Voucher, error)
	DeliveryAccess(ctx context.Context, in model.DeliveryAccess) error
}

// DashboardAPI returns the dashboard metrics.
type DashboardAPI interface {
	Dashboard(ctx context.Context) (model.Dashboard, error)
}
