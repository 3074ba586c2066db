//go:build linux && amd64

package msr

import "errors"

// Sentinel errors returned by MSR operations.
var (
	// ErrInvalidCPU is returned when the CPU number is negative.
	ErrInvalidCPU = errors.New("msr: invalid cpu number")

	// ErrClosed is returned when a handle is used after Close.
	ErrClosed = errors.New("msr: handle closed")
)
