//go:build linux && amd64

// Package msr reads and writes model-specific registers through the Linux
// msr driver.
//
// Register access goes through the per-CPU device files under /dev/cpu,
// which exist once the msr kernel module is loaded. Opening a device
// normally requires root. The package exposes one handle per logical CPU;
// the register a handle reads is whatever that CPU holds, so callers
// comparing counters across CPUs must open one handle each.
package msr
