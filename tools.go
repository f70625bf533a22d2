//go:build tools

package tools

// This file tracks the CLI tools used by the repository.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: service mocks (go generate ./internal/service/...)
// - github.com/pressly/goose/v3/cmd/goose: ad hoc migration status against PostgreSQL
