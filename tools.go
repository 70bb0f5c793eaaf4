//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// mockgen is invoked through the go:generate line in contract/contract.go;
// importing it here keeps it in go.mod so `go generate ./...` works on a
// fresh checkout.
package chat_core

import (
	_ "go.uber.org/mock/mockgen"
)
