package viewmodel

// User represents the signed-in identity exposed to templates.
type User struct {
	Name   string
	UserID string
	Role   string
}

// NavItem is one entry of the console's side navigation.
type NavItem struct {
	Label  string
	Path   string
	Active bool
}

// Layout captures shared chrome metadata (titles, navigation state, auth flags).
type Layout struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	CSRFToken       string
	IsAuthenticated bool
	// Presentation is the console the page renders in: admin, delivery or unauthenticated.
	Presentation string
	Nav          []NavItem
	User         *User
}

// LayoutProvider exposes layout metadata for renderer utilities.
type LayoutProvider interface {
	LayoutData() *Layout
}
