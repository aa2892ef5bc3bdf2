package httpx

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// PaginationData contains pagination information for list views.
type PaginationData struct {
	Page       int
	PageSize   int
	HasPrev    bool
	HasNext    bool
	StartIndex int
	EndIndex   int
	TotalCount int // 0 when the source does not report a total
	BasePath   string
}

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
	r    *http.Request
}

// NewTemplateData creates a new TemplateDataBuilder initialized with basePageData.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return &TemplateDataBuilder{data: basePageData(r, meta), r: r}
}

// extendTemplateData wraps an existing data map, typically inside a PageSpec fetch.
func extendTemplateData(r *http.Request, data map[string]any) *TemplateDataBuilder {
	return &TemplateDataBuilder{data: data, r: r}
}

// WithPagination adds pagination data and builds PrevURL/NextURL.
func (b *TemplateDataBuilder) WithPagination(p PaginationData) *TemplateDataBuilder {
	b.data["Pagination"] = p
	if p.HasPrev {
		b.data["PrevURL"] = buildPageURL(p.BasePath, b.r.URL.Query(), p.Page-1)
	}
	if p.HasNext {
		b.data["NextURL"] = buildPageURL(p.BasePath, b.r.URL.Query(), p.Page+1)
	}
	return b
}

// WithError sets a general error message.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	b.data["Error"] = true
	b.data["ErrorMessage"] = msg
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}

// pageOf slices one page out of a fully fetched list. Pages past the end
// clamp to the last page.
func pageOf[T any](items []T, page, size int, basePath string) ([]T, PaginationData) {
	if size <= 0 {
		size = 10
	}
	if page < 1 {
		page = 1
	}
	total := len(items)
	last := (total + size - 1) / size
	if last == 0 {
		last = 1
	}
	if page > last {
		page = last
	}
	start := (page - 1) * size
	end := min(start+size, total)

	p := PaginationData{
		Page:       page,
		PageSize:   size,
		HasPrev:    page > 1,
		HasNext:    page < last,
		TotalCount: total,
		BasePath:   basePath,
	}
	if total == 0 {
		return items[:0], p
	}
	p.StartIndex = start + 1
	p.EndIndex = end
	return items[start:end], p
}

// serverPage describes a page fetched from a server-paged source. A full
// page is taken to mean another one may follow.
func serverPage(page, size, got int, basePath string) PaginationData {
	p := PaginationData{
		Page:     page,
		PageSize: size,
		HasPrev:  page > 1,
		HasNext:  got >= size,
		BasePath: basePath,
	}
	if got > 0 {
		p.StartIndex = (page-1)*size + 1
		p.EndIndex = (page-1)*size + got
	}
	return p
}

// buildPageURL returns basePath with page set, preserving other non-empty query params.
func buildPageURL(basePath string, q url.Values, page int) string {
	qq := make(url.Values, len(q))
	for k, v := range q {
		if strings.HasPrefix(k, "hx-") || strings.HasPrefix(k, "hx_") {
			continue
		}
		tmp := make([]string, 0, len(v))
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				tmp = append(tmp, s)
			}
		}
		if len(tmp) > 0 {
			qq[k] = tmp
		}
	}
	qq.Set("page", strconv.Itoa(page))
	return basePath + "?" + qq.Encode()
}
