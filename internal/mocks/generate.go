// Package mocks provides gomock implementations of the console's ports.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	api := mocks.NewMockCatalogAPI(ctrl)
//	api.EXPECT().ListBrands(gomock.Any()).Return(brands, nil)
package mocks

// Backend ports implemented by internal/adapters/backend.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=catalog_api_mock.go github.com/target/storefront-admin/internal/ports CatalogAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=people_api_mock.go github.com/target/storefront-admin/internal/ports PeopleAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=order_api_mock.go github.com/target/storefront-admin/internal/ports OrderAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=dashboard_api_mock.go github.com/target/storefront-admin/internal/ports DashboardAPI

// Query cache implemented by internal/adapters/redis.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=query_cache_mock.go github.com/target/storefront-admin/internal/ports QueryCache

// Audit trail implemented by internal/data.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=audit_trail_mock.go github.com/target/storefront-admin/internal/ports AuditTrail
