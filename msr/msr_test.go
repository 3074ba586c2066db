//go:build linux && amd64

package msr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDevice implements device in memory.
type fakeDevice struct {
	regs     map[int64]uint64
	readErr  error
	writeErr error
	closed   bool
}

func (f *fakeDevice) Read(msr int64) (uint64, error) {
	if f.readErr != nil {
		return 0, f.readErr
	}
	return f.regs[msr], nil
}

func (f *fakeDevice) Write(msr int64, value uint64) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.regs[msr] = value
	return nil
}

func (f *fakeDevice) Close() error {
	f.closed = true
	return nil
}

func newFakeHandle(cpu int, regs map[int64]uint64) (*Handle, *fakeDevice) {
	if regs == nil {
		regs = make(map[int64]uint64)
	}
	dev := &fakeDevice{regs: regs}
	return &Handle{dev: dev, cpu: cpu}, dev
}

func TestHandleRead(t *testing.T) {
	h, _ := newFakeHandle(0, map[int64]uint64{
		IA32TimeStampCounter: 0x123456789A,
		PlatformInfo:         0x80838F3012300,
	})

	got, err := h.Read(IA32TimeStampCounter)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x123456789A), got)

	got, err = h.Read(PlatformInfo)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x80838F3012300), got)
}

func TestHandleReadError(t *testing.T) {
	h, dev := newFakeHandle(2, nil)
	dev.readErr = os.ErrPermission

	_, err := h.Read(IA32PMC0)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Contains(t, err.Error(), "cpu 2")
}

func TestHandleWrite(t *testing.T) {
	h, dev := newFakeHandle(0, nil)

	require.NoError(t, h.Write(IA32PerfEvtSel0, 0x4300C0))
	assert.Equal(t, uint64(0x4300C0), dev.regs[IA32PerfEvtSel0])
}

func TestHandleWriteError(t *testing.T) {
	h, dev := newFakeHandle(1, nil)
	dev.writeErr = os.ErrPermission

	err := h.Write(IA32PerfGlobalCtrl, 0x7)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestHandleClose(t *testing.T) {
	h, dev := newFakeHandle(1, nil)

	require.NoError(t, h.Close())
	assert.True(t, dev.closed)

	_, err := h.Read(IA32PMC0)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, h.Write(IA32PMC0, 1), ErrClosed)
	assert.NoError(t, h.Close())
}

func TestHandleCPU(t *testing.T) {
	h, _ := newFakeHandle(5, nil)
	assert.Equal(t, 5, h.CPU())
}

func TestOpenRejectsNegativeCPU(t *testing.T) {
	_, err := Open(-1)
	assert.ErrorIs(t, err, ErrInvalidCPU)
}

func TestAvailableCPUs(t *testing.T) {
	dir := t.TempDir()
	for _, cpu := range []string{"0", "1", "10", "3"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, cpu), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, cpu, "msr"), nil, 0o600))
	}
	// Entries the scan must skip: a cpu directory without an msr file, a
	// non-numeric directory, and a plain file.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "2"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "microcode"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cpuinfo"), nil, 0o644))

	cpus, err := availableCPUs(dir)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 10}, cpus)
}

func TestAvailableCPUsMissingDir(t *testing.T) {
	_, err := availableCPUs(filepath.Join(t.TempDir(), "nonexistent"))
	assert.Error(t, err)
}

// TestOpenReadHardware exercises the real device files when the environment
// allows it.
func TestOpenReadHardware(t *testing.T) {
	cpus, err := AvailableCPUs()
	if err != nil || len(cpus) == 0 {
		t.Skip("no MSR device files; msr module not loaded")
	}

	h, err := Open(cpus[0])
	if err != nil {
		t.Skipf("open msr device: %v (requires root)", err)
	}
	defer h.Close()

	tsc, err := h.Read(IA32TimeStampCounter)
	require.NoError(t, err)
	assert.NotZero(t, tsc)
	t.Logf("cpu %d tsc %d", h.CPU(), tsc)
}
