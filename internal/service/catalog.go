package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/target/storefront-admin/internal/domain/model"
	apperrors "github.com/target/storefront-admin/internal/errors"
	"github.com/target/storefront-admin/internal/ports"
)

// ResourceDeps groups the collaborators shared by the resource services.
type ResourceDeps struct {
	Cache  *QueryCache      // Optional: nil disables caching
	Audit  ports.AuditTrail // Optional
	Logger *slog.Logger     // Optional
}

func (d ResourceDeps) logger(component string) *slog.Logger {
	l := d.Logger
	if l == nil {
		l = slog.Default()
	}
	return l.With("component", component)
}

// CatalogServiceOptions groups dependencies for CatalogService.
type CatalogServiceOptions struct {
	API      ports.CatalogAPI // Required
	Language string           // Optional: listing language when a page names none
	Deps     ResourceDeps
}

// CatalogService serves products, brands and categories.
type CatalogService struct {
	api      ports.CatalogAPI
	language string
	cache    *QueryCache
	audit    auditRecorder
	logger   *slog.Logger
}

// NewCatalogService constructs a new CatalogService.
func NewCatalogService(opts CatalogServiceOptions) *CatalogService {
	if opts.API == nil {
		panic("CatalogAPI is required")
	}
	language := strings.TrimSpace(opts.Language)
	if language == "" {
		language = "us"
	}
	logger := opts.Deps.logger("catalog")
	return &CatalogService{
		api:      opts.API,
		language: language,
		cache:    opts.Deps.Cache,
		audit:    newAuditRecorder(opts.Deps.Audit, logger),
		logger:   logger,
	}
}

var productFamilies = []string{FamilyProducts, FamilyProduct, FamilySupplierHistory}

// Products returns one page of products.
func (s *CatalogService) Products(ctx context.Context, page model.ProductPage) ([]model.Product, error) {
	page = page.Defaults(s.language)
	key := fmt.Sprintf("%d:%d:%s", page.PageNumber, page.PageSize, page.Language)
	out, err := cachedQuery(ctx, s.cache, FamilyProducts, key, func(ctx context.Context) ([]model.Product, error) {
		return s.api.ListProducts(ctx, page)
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

// Product returns one product.
func (s *CatalogService) Product(ctx context.Context, id string) (model.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.Product{}, apperrors.ValidationField("productId", "Product id is required")
	}
	out, err := cachedQuery(ctx, s.cache, FamilyProduct, id, func(ctx context.Context) (model.Product, error) {
		return s.api.GetProduct(ctx, id)
	})
	if err != nil {
		return model.Product{}, fmt.Errorf("get product: %w", err)
	}
	return out, nil
}

// CreateProduct validates and creates a product.
func (s *CatalogService) CreateProduct(ctx context.Context, in model.ProductInput) error {
	in.Normalize()
	in.ProductID = ""
	if err := in.Validate(); err != nil {
		return err
	}
	if err := s.api.CreateProduct(ctx, in); err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	s.cache.Invalidate(ctx, productFamilies...)
	s.audit.record(ctx, model.AuditProductCreated, in.ProductName, nil)
	return nil
}

// UpdateProduct validates and updates a product. ProductID is required.
func (s *CatalogService) UpdateProduct(ctx context.Context, in model.ProductInput) error {
	in.Normalize()
	if in.ProductID == "" {
		return apperrors.ValidationField("productId", "Product id is required")
	}
	if err := in.Validate(); err != nil {
		return err
	}
	if err := s.api.UpdateProduct(ctx, in); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	s.cache.Invalidate(ctx, productFamilies...)
	s.audit.record(ctx, model.AuditProductUpdated, in.ProductID, map[string]any{"name": in.ProductName})
	return nil
}

// DeleteProduct deletes a product.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperrors.ValidationField("productId", "Product id is required")
	}
	if err := s.api.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	s.cache.Invalidate(ctx, productFamilies...)
	s.audit.record(ctx, model.AuditProductDeleted, id, nil)
	return nil
}

var imageExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true}

// UploadImage forwards an image file and returns its public URL.
func (s *CatalogService) UploadImage(ctx context.Context, filename string, r io.Reader) (model.UploadedImage, error) {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == "/" {
		return model.UploadedImage{}, apperrors.ValidationField("image", "Choose an image to upload")
	}
	if !imageExtensions[strings.ToLower(filepath.Ext(name))] {
		return model.UploadedImage{}, apperrors.ValidationField("image", "Image must be a PNG, JPEG, GIF or WebP file")
	}
	out, err := s.api.UploadImage(ctx, name, r)
	if err != nil {
		return model.UploadedImage{}, fmt.Errorf("upload image: %w", err)
	}
	if strings.TrimSpace(out.URL) == "" {
		return model.UploadedImage{}, apperrors.Upstream(0, "The store API did not return an image URL")
	}
	s.cache.Invalidate(ctx, productFamilies...)
	s.audit.record(ctx, model.AuditImageUploaded, name, map[string]any{"url": out.URL})
	return out, nil
}

// Brands lists all brands.
func (s *CatalogService) Brands(ctx context.Context) ([]model.Brand, error) {
	out, err := cachedQuery(ctx, s.cache, FamilyBrands, "all", s.api.ListBrands)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return out, nil
}

// AddBrand creates a brand.
func (s *CatalogService) AddBrand(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.ValidationField("brandName", "Brand name is required")
	}
	if err := s.api.AddBrand(ctx, name); err != nil {
		return fmt.Errorf("add brand: %w", err)
	}
	s.cache.Invalidate(ctx, FamilyBrands)
	s.audit.record(ctx, model.AuditBrandAdded, name, nil)
	return nil
}

// Categories lists all categories.
func (s *CatalogService) Categories(ctx context.Context) ([]model.Category, error) {
	out, err := cachedQuery(ctx, s.cache, FamilyCategories, "all", s.api.ListCategories)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

// CategoryInstances lists every category instance with its products.
func (s *CatalogService) CategoryInstances(ctx context.Context) ([]model.CategoryInstance, error) {
	out, err := cachedQuery(ctx, s.cache, FamilyCategoryInstances, "all", s.api.ListCategoryInstances)
	if err != nil {
		return nil, fmt.Errorf("list category instances: %w", err)
	}
	return out, nil
}

// InstancesOf lists the instances of one category.
func (s *CatalogService) InstancesOf(ctx context.Context, catID string) ([]model.CategoryInstance, error) {
	catID = strings.TrimSpace(catID)
	if catID == "" {
		return nil, nil
	}
	out, err := cachedQuery(ctx, s.cache, FamilyCategoryInstances, "cat:"+catID, func(ctx context.Context) ([]model.CategoryInstance, error) {
		return s.api.InstancesOf(ctx, catID)
	})
	if err != nil {
		return nil, fmt.Errorf("list instances of %s: %w", catID, err)
	}
	return out, nil
}

// AddCategory creates a category together with its instances.
func (s *CatalogService) AddCategory(ctx context.Context, in model.CategoryInput) error {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return err
	}
	if err := s.api.AddCategory(ctx, in); err != nil {
		return fmt.Errorf("add category: %w", err)
	}
	s.cache.Invalidate(ctx, FamilyCategories, FamilyCategoryInstances)
	s.audit.record(ctx, model.AuditCategoryAdded, in.CatName, map[string]any{"instances": in.InstanceNames})
	return nil
}
