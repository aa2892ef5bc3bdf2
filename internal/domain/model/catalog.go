//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"

	apperrors "github.com/target/storefront-admin/internal/errors"
)

// Product is a catalog entry as listed by the store API.
type Product struct {
	ProductID          string  `json:"productId,omitempty"`
	CatInstanceName    string  `json:"catInstanceName,omitempty"`
	BrandName          string  `json:"brandName,omitempty"`
	ProductName        string  `json:"productName,omitempty"`
	ProductDescription string  `json:"productDescription,omitempty"`
	StockQTY           int     `json:"stockQTY"`
	Cost               float64 `json:"cost"`
	Price              float64 `json:"price"`
	CurrencySymbol     string  `json:"currencySymbol,omitempty"`
	ProductImageURL    string  `json:"productImageUrl,omitempty"`
}

// ProductInput is the body of product create (ProductID empty) and update requests.
type ProductInput struct {
	ProductID          string  `json:"productId,omitempty"`
	CatInstanceID      string  `json:"catInstanceId"`
	BrandID            string  `json:"brandId"`
	ProductName        string  `json:"productName"`
	ProductDescription string  `json:"productDescription"`
	StockQTY           int     `json:"stockQTY"`
	Cost               float64 `json:"cost"`
	Price              float64 `json:"price"`
	ProductImageURL    string  `json:"productImageUrl,omitempty"`
}

// Normalize trims free-text fields in place.
func (p *ProductInput) Normalize() {
	p.ProductID = strings.TrimSpace(p.ProductID)
	p.CatInstanceID = strings.TrimSpace(p.CatInstanceID)
	p.BrandID = strings.TrimSpace(p.BrandID)
	p.ProductName = strings.TrimSpace(p.ProductName)
	p.ProductDescription = strings.TrimSpace(p.ProductDescription)
	p.ProductImageURL = strings.TrimSpace(p.ProductImageURL)
}

// Validate checks the fields the product form marks as required.
func (p ProductInput) Validate() error {
	switch {
	case p.ProductName == "":
		return apperrors.ValidationField("productName", "Product name is required")
	case p.CatInstanceID == "":
		return apperrors.ValidationField("catInstanceId", "Category is required")
	case p.BrandID == "":
		return apperrors.ValidationField("brandId", "Brand is required")
	case p.StockQTY < 0:
		return apperrors.ValidationField("stockQTY", "Stock cannot be negative")
	case p.Cost < 0:
		return apperrors.ValidationField("cost", "Cost cannot be negative")
	case p.Price <= 0:
		return apperrors.ValidationField("price", "Price must be greater than zero")
	}
	return nil
}

// ProductPage selects one page of the product listing.
type ProductPage struct {
	PageNumber int
	PageSize   int
	Language   string
}

// Defaults fills unset paging values: page 1, 10 per page.
func (p ProductPage) Defaults(language string) ProductPage {
	if p.PageNumber < 1 {
		p.PageNumber = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 10
	}
	if p.Language == "" {
		p.Language = language
	}
	return p
}

// UploadedImage is the upload endpoint's answer.
type UploadedImage struct {
	URL string `json:"url"`
}

// Brand is a product brand.
type Brand struct {
	BrandID   string `json:"brandId,omitempty"`
	BrandName string `json:"brandName"`
}

// Category is a top-level product category.
type Category struct {
	CatID   string `json:"catId,omitempty"`
	CatName string `json:"catName"`
}

// CategoryInstance is a sub-category products are filed under.
type CategoryInstance struct {
	CatInstanceID   string          `json:"catInstanceId,omitempty"`
	CatID           string          `json:"catId,omitempty"`
	CatInstanceName string          `json:"catInstanceName"`
	Products        []ProductSimple `json:"products,omitempty"`
}

// ProductSimple is the short product reference nested in category instances.
type ProductSimple struct {
	ProductID   string `json:"productID,omitempty"`
	ProductName string `json:"productName,omitempty"`
}

// CategoryInput creates a category together with its instances.
type CategoryInput struct {
	CatName       string   `json:"catName"`
	InstanceNames []string `json:"instanceNames"`
}

// Normalize trims names and drops blank instance entries.
func (c *CategoryInput) Normalize() {
	c.CatName = strings.TrimSpace(c.CatName)
	names := c.InstanceNames[:0]
	for _, n := range c.InstanceNames {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	c.InstanceNames = names
}

// Validate requires a name and at least one instance.
func (c CategoryInput) Validate() error {
	if c.CatName == "" {
		return apperrors.ValidationField("catName", "Category name is required")
	}
	if len(c.InstanceNames) == 0 {
		return apperrors.ValidationField("instanceNames", "At least one instance is required")
	}
	return nil
}
