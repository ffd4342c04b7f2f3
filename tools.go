//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools used by go:generate and the Makefile-less workflow:
// - github.com/matryer/moq (service and transport mocks)
// - github.com/pressly/goose/v3/cmd/goose (ad-hoc migration authoring; the
//   server and catalogctl apply migrations through the embedded provider)
