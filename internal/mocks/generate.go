// Package mocks provides mock implementations for testing the tradeport UI API.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the backend port interfaces. The mocks are generated using go:generate
// directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	dir := mocks.NewMockUserDirectory(ctrl)
//	dir.EXPECT().ValidateIdentity(gomock.Any(), gomock.Any()).Return(result, nil)
package mocks

// Generate mock for UserDirectory interface from internal/ports.
// This creates MockUserDirectory with methods: ValidateIdentity, Register
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=user_directory_mock.go github.com/tradeport/tradeport-ui-api/internal/ports UserDirectory

// Generate mock for OrderBackend interface from internal/ports.
// This creates MockOrderBackend with methods: CreateCartLine, ListCartLines, DeleteCartLine, CreateOrder
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=order_backend_mock.go github.com/tradeport/tradeport-ui-api/internal/ports OrderBackend

// Generate mock for Catalog interface from internal/ports.
// This creates MockCatalog with methods: List, GetByID
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=catalog_mock.go github.com/tradeport/tradeport-ui-api/internal/ports Catalog
