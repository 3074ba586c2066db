//go:build linux

package pci

import "errors"

// ErrClosed is returned when a handle is used after Close.
var ErrClosed = errors.New("pci: handle closed")
