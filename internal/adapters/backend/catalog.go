package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/target/storefront-admin/internal/domain/model"
	"github.com/target/storefront-admin/internal/ports"
)

var _ ports.CatalogAPI = (*Client)(nil)

func (c *Client) ListProducts(ctx context.Context, page model.ProductPage) ([]model.Product, error) {
	q := url.Values{}
	q.Set("pageNumber", strconv.Itoa(page.PageNumber))
	q.Set("pageSize", strconv.Itoa(page.PageSize))
	if page.Language != "" {
		q.Set("language", page.Language)
	}
	var out []model.Product
	if err := c.getJSON(ctx, "Product", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (model.Product, error) {
	var out model.Product
	err := c.getJSON(ctx, "Product/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) CreateProduct(ctx context.Context, in model.ProductInput) error {
	return c.sendJSON(ctx, http.MethodPost, "Product", nil, in, nil)
}

func (c *Client) UpdateProduct(ctx context.Context, in model.ProductInput) error {
	return c.sendJSON(ctx, http.MethodPut, "Product", nil, in, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "Product/"+url.PathEscape(id), nil, nil, nil)
}

// UploadImage posts the file as the multipart field "image" and returns the stored URL.
func (c *Client) UploadImage(ctx context.Context, filename string, r io.Reader) (model.UploadedImage, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filepath.Base(filename))
	if err != nil {
		return model.UploadedImage{}, fmt.Errorf("create image part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return model.UploadedImage{}, fmt.Errorf("copy image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return model.UploadedImage{}, fmt.Errorf("close multipart body: %w", err)
	}

	var out model.UploadedImage
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        "Product/upload",
		body:        &buf,
		contentType: mw.FormDataContentType(),
	}, &out)
	return out, err
}

func (c *Client) ListBrands(ctx context.Context) ([]model.Brand, error) {
	var out []model.Brand
	if err := c.getJSON(ctx, "Category/GetAllBrands", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddBrand(ctx context.Context, name string) error {
	return c.sendJSON(ctx, http.MethodPost, "Category/add-brand", nil, model.Brand{BrandName: name}, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := c.getJSON(ctx, "Category/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListCategoryInstances(ctx context.Context) ([]model.CategoryInstance, error) {
	var out []model.CategoryInstance
	if err := c.getJSON(ctx, "Category/GetAllCategoryInstances", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) InstancesOf(ctx context.Context, catID string) ([]model.CategoryInstance, error) {
	var out []model.CategoryInstance
	if err := c.getJSON(ctx, "Category/instances/"+url.PathEscape(catID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddCategory(ctx context.Context, in model.CategoryInput) error {
	return c.sendJSON(ctx, http.MethodPost, "Category/add-with-instances", nil, in, nil)
}
