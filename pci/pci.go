//go:build linux

// Package pci reads and writes PCI configuration space through the proc
// filesystem.
//
// Each handle wraps one function's config file under /proc/bus/pci. The
// kernel names bus directories with two lowercase hex digits (four-digit
// domain prefix on multi-domain systems, omitted for domain 0) and device
// entries as device.function. Writes require root.
package pci

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/sys/unix"
)

// procBusPCI is the root of the kernel's PCI config filesystem.
const procBusPCI = "/proc/bus/pci"

// Handle accesses the configuration space of one PCI function.
type Handle struct {
	fd       int
	domain   uint32
	bus      uint32
	device   uint32
	function uint32
}

// Open returns a handle to the given function on domain 0.
func Open(bus, device, function uint32) (*Handle, error) {
	return open(devicePath(bus, device, function), 0, bus, device, function)
}

// OpenDomain returns a handle to the given function on an explicit PCI
// domain. Domain 0 resolves to the same short path Open uses, since the
// kernel only prefixes bus directories on multi-domain systems.
func OpenDomain(domain, bus, device, function uint32) (*Handle, error) {
	if domain == 0 {
		return Open(bus, device, function)
	}
	return open(domainPath(domain, bus, device, function), domain, bus, device, function)
}

func open(path string, domain, bus, device, function uint32) (*Handle, error) {
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("pci: open %s: %w", path, err)
	}

	return &Handle{
		fd:       fd,
		domain:   domain,
		bus:      bus,
		device:   device,
		function: function,
	}, nil
}

func devicePath(bus, device, function uint32) string {
	return fmt.Sprintf("%s/%02x/%02x.%x", procBusPCI, bus, device, function)
}

func domainPath(domain, bus, device, function uint32) string {
	return fmt.Sprintf("%s/%04x:%02x/%02x.%x", procBusPCI, domain, bus, device, function)
}

// ReadAt reads len(p) bytes of configuration space starting at offset. It
// returns the number of bytes the kernel provided, which may be short at
// the end of the visible config region.
func (h *Handle) ReadAt(p []byte, offset int64) (int, error) {
	if h.fd < 0 {
		return 0, ErrClosed
	}

	n, err := unix.Pread(h.fd, p, offset)
	if err != nil {
		return 0, fmt.Errorf("pci: read %s at %#x: %w", h, offset, err)
	}

	return n, nil
}

// WriteAt writes len(p) bytes of configuration space starting at offset.
func (h *Handle) WriteAt(p []byte, offset int64) (int, error) {
	if h.fd < 0 {
		return 0, ErrClosed
	}

	n, err := unix.Pwrite(h.fd, p, offset)
	if err != nil {
		return 0, fmt.Errorf("pci: write %s at %#x: %w", h, offset, err)
	}

	return n, nil
}

// ReadUint32 returns the 32-bit register at offset. Config space registers
// are little-endian regardless of host byte order.
func (h *Handle) ReadUint32(offset int64) (uint32, error) {
	var buf [4]byte
	if err := h.readFull(buf[:], offset); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadUint64 returns the 64-bit register pair at offset.
func (h *Handle) ReadUint64(offset int64) (uint64, error) {
	var buf [8]byte
	if err := h.readFull(buf[:], offset); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// WriteUint32 stores value into the 32-bit register at offset.
func (h *Handle) WriteUint32(offset int64, value uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], value)
	return h.writeFull(buf[:], offset)
}

// WriteUint64 stores value into the 64-bit register pair at offset.
func (h *Handle) WriteUint64(offset int64, value uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], value)
	return h.writeFull(buf[:], offset)
}

func (h *Handle) readFull(p []byte, offset int64) error {
	n, err := h.ReadAt(p, offset)
	if err != nil {
		return err
	}
	if n != len(p) {
		return fmt.Errorf("pci: short read on %s at %#x: %d of %d bytes", h, offset, n, len(p))
	}
	return nil
}

func (h *Handle) writeFull(p []byte, offset int64) error {
	n, err := h.WriteAt(p, offset)
	if err != nil {
		return err
	}
	if n != len(p) {
		return fmt.Errorf("pci: short write on %s at %#x: %d of %d bytes", h, offset, n, len(p))
	}
	return nil
}

// Close releases the config file. Reads and writes on a closed handle
// return ErrClosed; closing twice is a no-op.
func (h *Handle) Close() error {
	if h.fd < 0 {
		return nil
	}

	err := unix.Close(h.fd)
	h.fd = -1
	if err != nil {
		return fmt.Errorf("pci: close %s: %w", h, err)
	}

	return nil
}

// String formats the address in the usual domain:bus:device.function form.
func (h *Handle) String() string {
	return fmt.Sprintf("%04x:%02x:%02x.%x", h.domain, h.bus, h.device, h.function)
}

// Domain returns the PCI domain (segment group) the handle addresses.
func (h *Handle) Domain() uint32 { return h.domain }

// Bus returns the bus number the handle addresses.
func (h *Handle) Bus() uint32 { return h.bus }

// Device returns the device number the handle addresses.
func (h *Handle) Device() uint32 { return h.device }

// Function returns the function number the handle addresses.
func (h *Handle) Function() uint32 { return h.function }
