// Package mocks contains generated mocks for the interfaces consumed by the
// session store and navigation guard tests.
//
// The mocks are generated using go:generate directives via go.uber.org/mock.
// Regenerate after changing the source interfaces.
package mocks

// AuthAPI is the slice of the API client the session store depends on.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=auth_api_mock.go github.com/pdfplatform/pdfplat-go/internal/session AuthAPI
