package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/target/storefront-admin/internal/errors"
)

func TestPageOf(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	tests := []struct {
		name      string
		page      int
		want      []int
		wantPage  int
		wantStart int
		wantEnd   int
		prev      bool
		next      bool
	}{
		{name: "first", page: 1, want: []int{1, 2, 3, 4, 5}, wantPage: 1, wantStart: 1, wantEnd: 5, next: true},
		{name: "middle", page: 2, want: []int{6, 7, 8, 9, 10}, wantPage: 2, wantStart: 6, wantEnd: 10, prev: true, next: true},
		{name: "last partial", page: 3, want: []int{11, 12}, wantPage: 3, wantStart: 11, wantEnd: 12, prev: true},
		{name: "past the end clamps", page: 9, want: []int{11, 12}, wantPage: 3, wantStart: 11, wantEnd: 12, prev: true},
		{name: "below one clamps", page: 0, want: []int{1, 2, 3, 4, 5}, wantPage: 1, wantStart: 1, wantEnd: 5, next: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, p := pageOf(items, tt.page, 5, "/x")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantStart, p.StartIndex)
			assert.Equal(t, tt.wantEnd, p.EndIndex)
			assert.Equal(t, tt.prev, p.HasPrev)
			assert.Equal(t, tt.next, p.HasNext)
			assert.Equal(t, len(items), p.TotalCount)
		})
	}
}

func TestPageOf_Empty(t *testing.T) {
	got, p := pageOf([]string{}, 3, 7, "/category")

	assert.Empty(t, got)
	assert.Equal(t, 1, p.Page)
	assert.Zero(t, p.StartIndex)
	assert.Zero(t, p.EndIndex)
	assert.False(t, p.HasPrev)
	assert.False(t, p.HasNext)
}

func TestServerPage(t *testing.T) {
	full := serverPage(2, 10, 10, "/products")
	assert.True(t, full.HasPrev)
	assert.True(t, full.HasNext, "a full page may have a successor")
	assert.Equal(t, 11, full.StartIndex)
	assert.Equal(t, 20, full.EndIndex)

	short := serverPage(3, 10, 4, "/products")
	assert.False(t, short.HasNext)
	assert.Equal(t, 24, short.EndIndex)

	empty := serverPage(1, 10, 0, "/products")
	assert.False(t, empty.HasNext)
	assert.Zero(t, empty.EndIndex)
}

func TestBuildPageURL(t *testing.T) {
	q := url.Values{
		"tab":        {"booking"},
		"page":       {"1"},
		"q":          {"  "},
		"hx-request": {"true"},
	}

	got := buildPageURL("/category", q, 2)

	assert.Equal(t, "/category?page=2&tab=booking", got)
}

func TestWithPagination_SetsNeighbourURLs(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/user?q=ada&page=2", nil)
	_, p := pageOf(make([]int, 25), 2, 10, "/user")

	data := extendTemplateData(r, map[string]any{}).WithPagination(p).Build()

	assert.Equal(t, "/user?page=1&q=ada", data["PrevURL"])
	assert.Equal(t, "/user?page=3&q=ada", data["NextURL"])
}

func TestTabParam(t *testing.T) {
	allowed := []string{"brand", "booking"}

	r := httptest.NewRequest(http.MethodGet, "/category?tab=Booking", nil)
	assert.Equal(t, "booking", tabParam(r, "brand", allowed...))

	r = httptest.NewRequest(http.MethodGet, "/category?tab=secrets", nil)
	assert.Equal(t, "brand", tabParam(r, "brand", allowed...))
}

func TestPageParam(t *testing.T) {
	for raw, want := range map[string]int{"": 1, "4": 4, "-2": 1, "x": 1} {
		r := httptest.NewRequest(http.MethodGet, "/products?page="+raw, nil)
		assert.Equal(t, want, pageParam(r), "page=%q", raw)
	}
}

func formRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestFormNumbers(t *testing.T) {
	r := formRequest("stock=+12+&price=3.75&blank=&bad=abc")

	n, err := formInt(r, "stock", "Stock")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	f, err := formFloat(r, "price", "Price")
	require.NoError(t, err)
	assert.InDelta(t, 3.75, f, 1e-9)

	n, err = formInt(r, "blank", "Blank")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = formInt(r, "bad", "Age")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "bad", apperrors.GetField(err))
	assert.Equal(t, "Age must be a whole number", apperrors.UserMessage(err))

	_, err = formFloat(r, "bad", "Cost")
	assert.Equal(t, "Cost must be a number", apperrors.UserMessage(err))
}

func TestRefererPath(t *testing.T) {
	tests := []struct {
		referer string
		want    string
	}{
		{referer: "", want: "/"},
		{referer: "http://example.com/delivery?status=rejected", want: "/delivery?status=rejected"},
		{referer: "http://evil.test/products", want: "/"},
		{referer: "//evil.test/x", want: "/"},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodPost, "http://example.com/category/brands", nil)
		if tt.referer != "" {
			r.Header.Set("Referer", tt.referer)
		}
		assert.Equal(t, tt.want, refererPath(r), "referer %q", tt.referer)
	}
}
