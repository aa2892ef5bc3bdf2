package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/target/storefront-admin/internal/domain/model"
	"github.com/target/storefront-admin/internal/domain/routing"
	apperrors "github.com/target/storefront-admin/internal/errors"
)

// maxImageUpload bounds the multipart body of an image upload.
const maxImageUpload = 8 << 20

// ProductsPage lists one server-side page of products.
// GET /products.
func (h *UIHandlers) ProductsPage(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Storefront Admin - Products", PageTitle: "Products", CurrentPage: PageProducts},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Products"] = []model.Product{}
			products, err := h.Catalog.Products(ctx, model.ProductPage{PageNumber: page, PageSize: productsPageSize})
			if err != nil {
				return err
			}
			extendTemplateData(r, data).
				With("Products", products).
				WithPagination(serverPage(page, productsPageSize, len(products), routing.PathProducts))
			return nil
		},
	})
}

// productForm is the product dialog's view model.
type productForm struct {
	Mode       string // "create" or "edit"
	Action     string
	Product    model.Product
	BrandID    string
	InstID     string
	Brands     []model.Brand
	Categories []model.Category
	Instances  []model.CategoryInstance
	CSRFToken  string
}

// loadFormOptions fetches brand, category and instance choices concurrently.
func (h *UIHandlers) loadFormOptions(ctx context.Context, f *productForm) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		brands, err := h.Catalog.Brands(gctx)
		f.Brands = brands
		return err
	})
	g.Go(func() error {
		cats, err := h.Catalog.Categories(gctx)
		f.Categories = cats
		return err
	})
	g.Go(func() error {
		inst, err := h.Catalog.CategoryInstances(gctx)
		f.Instances = inst
		return err
	})
	return g.Wait()
}

// NewProductForm renders the empty product dialog.
// GET /products/new.
func (h *UIHandlers) NewProductForm(w http.ResponseWriter, r *http.Request) {
	f := productForm{Mode: "create", Action: routing.PathProducts, CSRFToken: GetCSRFToken(r)}
	if err := h.loadFormOptions(r.Context(), &f); err != nil {
		h.fragmentFailed(w, r, err)
		return
	}
	h.renderFragment(w, r, "product-form", f)
}

// EditProductForm renders the dialog prefilled with an existing product. The
// listing carries brand and instance names only, so ids are matched by name.
// GET /products/{id}/edit.
func (h *UIHandlers) EditProductForm(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	f := productForm{Mode: "edit", Action: routing.PathProducts + "/" + id, CSRFToken: GetCSRFToken(r)}

	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		p, err := h.Catalog.Product(gctx, id)
		f.Product = p
		return err
	})
	g.Go(func() error { return h.loadFormOptions(gctx, &f) })
	if err := g.Wait(); err != nil {
		h.fragmentFailed(w, r, err)
		return
	}

	for _, b := range f.Brands {
		if strings.EqualFold(b.BrandName, f.Product.BrandName) {
			f.BrandID = b.BrandID
			break
		}
	}
	for _, in := range f.Instances {
		if strings.EqualFold(in.CatInstanceName, f.Product.CatInstanceName) {
			f.InstID = in.CatInstanceID
			break
		}
	}
	h.renderFragment(w, r, "product-form", f)
}

// InstanceOptions renders the <option> list for one category, or all
// instances when catId is empty.
// GET /products/instances?catId=.
func (h *UIHandlers) InstanceOptions(w http.ResponseWriter, r *http.Request) {
	catID := strings.TrimSpace(r.URL.Query().Get("catId"))
	var (
		inst []model.CategoryInstance
		err  error
	)
	if catID == "" {
		inst, err = h.Catalog.CategoryInstances(r.Context())
	} else {
		inst, err = h.Catalog.InstancesOf(r.Context(), catID)
	}
	if err != nil {
		h.fragmentFailed(w, r, err)
		return
	}
	h.renderFragment(w, r, "instance-options", map[string]any{"Instances": inst})
}

func productInputFromForm(r *http.Request) (model.ProductInput, error) {
	in := model.ProductInput{
		CatInstanceID:      formString(r, "catInstanceId"),
		BrandID:            formString(r, "brandId"),
		ProductName:        formString(r, "productName"),
		ProductDescription: formString(r, "productDescription"),
		ProductImageURL:    formString(r, "productImageUrl"),
	}
	var err error
	if in.StockQTY, err = formInt(r, "stockQTY", "Stock"); err != nil {
		return in, err
	}
	if in.Cost, err = formFloat(r, "cost", "Cost"); err != nil {
		return in, err
	}
	if in.Price, err = formFloat(r, "price", "Price"); err != nil {
		return in, err
	}
	return in, nil
}

// CreateProduct handles the create dialog.
// POST /products.
func (h *UIHandlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	in, err := productInputFromForm(r)
	if err == nil {
		err = h.Catalog.CreateProduct(r.Context(), in)
	}
	h.respondMutation(w, r, mutation{
		Err:     err,
		Success: "Product created",
		Event:   eventProductsChanged,
		Return:  routing.PathProducts,
	})
}

// UpdateProduct handles the edit dialog.
// POST /products/{id}.
func (h *UIHandlers) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	in, err := productInputFromForm(r)
	if err == nil {
		in.ProductID = r.PathValue("id")
		err = h.Catalog.UpdateProduct(r.Context(), in)
	}
	h.respondMutation(w, r, mutation{
		Err:     err,
		Success: "Product updated",
		Event:   eventProductsChanged,
		Return:  routing.PathProducts,
	})
}

// DeleteProduct removes a product.
// POST /products/{id}/delete.
func (h *UIHandlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	err := h.Catalog.DeleteProduct(r.Context(), r.PathValue("id"))
	h.respondMutation(w, r, mutation{
		Err:     err,
		Success: "Product deleted",
		Event:   eventProductsChanged,
		Return:  routing.PathProducts,
	})
}

// UploadImage forwards the chosen file to the store API and answers with the
// image field fragment carrying the returned URL.
// POST /products/upload.
func (h *UIHandlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageUpload)
	file, header, err := r.FormFile("image")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			err = apperrors.ValidationField("image", "Image is too large")
		} else {
			err = apperrors.ValidationField("image", "Choose an image to upload")
		}
		h.respondMutation(w, r, mutation{Err: err})
		return
	}
	defer file.Close()

	img, err := h.Catalog.UploadImage(r.Context(), header.Filename, file)
	if err != nil {
		h.respondMutation(w, r, mutation{Err: err})
		return
	}
	triggerToast(w, "Image uploaded", toastSuccess)
	h.renderFragment(w, r, "product-image-field", img.URL)
}

// fragmentFailed answers a fragment request that could not load its data.
func (h *UIHandlers) fragmentFailed(w http.ResponseWriter, r *http.Request, err error) {
	h.respondMutation(w, r, mutation{Err: err})
}
