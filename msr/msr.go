//go:build linux && amd64

package msr

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/fearful-symmetry/gomsr"
)

// devCPUDir is where the msr kernel module exposes per-CPU device files.
const devCPUDir = "/dev/cpu"

// device is the subset of gomsr.MSRDev a handle relies on. Tests inject
// fakes through it.
type device interface {
	Read(msr int64) (uint64, error)
	Write(msr int64, value uint64) error
	Close() error
}

// Handle accesses the model-specific registers of one logical CPU.
//
// A Handle is not safe for concurrent use.
type Handle struct {
	dev device
	cpu int
}

// Open returns a handle to the MSR device of the given logical CPU.
//
// The msr kernel module must be loaded and the caller must be privileged
// enough to open /dev/cpu/N/msr for reading and writing.
func Open(cpu int) (*Handle, error) {
	if cpu < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCPU, cpu)
	}

	dev, err := gomsr.MSR(cpu)
	if err != nil {
		return nil, fmt.Errorf("msr: open cpu %d: %w", cpu, err)
	}

	return &Handle{dev: dev, cpu: cpu}, nil
}

// CPU returns the logical CPU number the handle was opened for.
func (h *Handle) CPU() int {
	return h.cpu
}

// Read returns the 64-bit value of the register at address msr.
func (h *Handle) Read(msr int64) (uint64, error) {
	if h.dev == nil {
		return 0, ErrClosed
	}

	value, err := h.dev.Read(msr)
	if err != nil {
		return 0, fmt.Errorf("msr: read %#x on cpu %d: %w", msr, h.cpu, err)
	}

	return value, nil
}

// Write stores value into the register at address msr.
func (h *Handle) Write(msr int64, value uint64) error {
	if h.dev == nil {
		return ErrClosed
	}

	if err := h.dev.Write(msr, value); err != nil {
		return fmt.Errorf("msr: write %#x on cpu %d: %w", msr, h.cpu, err)
	}

	return nil
}

// Close releases the underlying device file. Reads and writes on a closed
// handle return ErrClosed; closing twice is a no-op.
func (h *Handle) Close() error {
	if h.dev == nil {
		return nil
	}

	err := h.dev.Close()
	h.dev = nil
	if err != nil {
		return fmt.Errorf("msr: close cpu %d: %w", h.cpu, err)
	}

	return nil
}

// AvailableCPUs lists the logical CPUs whose MSR device files exist, in
// ascending order. An empty list means the msr module is not loaded.
func AvailableCPUs() ([]int, error) {
	return availableCPUs(devCPUDir)
}

func availableCPUs(dir string) ([]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("msr: scan %s: %w", dir, err)
	}

	var cpus []int
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		cpu, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}

		if _, err := os.Stat(filepath.Join(dir, entry.Name(), "msr")); err != nil {
			continue
		}
		cpus = append(cpus, cpu)
	}
	sort.Ints(cpus)

	return cpus, nil
}
