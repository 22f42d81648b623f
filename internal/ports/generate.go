// Package ports defines the interfaces between the forecast core and its adapters.
// These interfaces are implemented by adapters and mocked for testing.
//
//go:generate mockery
package ports
