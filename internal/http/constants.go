package httpx

// CurrentPage identifiers used in templates and navigation.
const (
	PageDashboard      = "dashboard"
	PageProducts       = "products"
	PageUsers          = "users"
	PageCategory       = "category"
	PageDelivery       = "delivery"
	PageDeliveryLayout = "deliverylayout"
	PageLogin          = "login"
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

// Page sizes per list view.
const (
	productsPageSize = 10
	usersPageSize    = 10
	categoryPageSize = 7
	deliveryPageSize = 5
)

//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageDashboard:      "dashboard-content",
	PageProducts:       "products-content",
	PageUsers:          "users-content",
	PageCategory:       "category-content",
	PageDelivery:       "delivery-content",
	PageDeliveryLayout: "deliverylayout-content",
	PageLogin:          "login-content",
}

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to dashboard-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	return "dashboard-content"
}
