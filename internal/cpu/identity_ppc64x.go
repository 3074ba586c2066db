//go:build ppc64 || ppc64le

package cpu

import "fmt"

// Identity describes the executing processor as reported by the processor
// version register.
type Identity struct {
	// PVR is the raw register value.
	PVR uint64

	// Version identifies the processor design, e.g. 0x004E for POWER9.
	Version uint32

	// Revision is the layout and revision level of the design.
	Revision uint32
}

// ReadIdentity reads the PVR and splits it into its version and revision
// halves. The result is constant for a given processor.
func ReadIdentity() Identity {
	pvr := readProcessorVersion()
	version, revision := splitPVR(uint32(pvr))

	return Identity{PVR: pvr, Version: version, Revision: revision}
}

// String formats the identity as eight lowercase hex digits, version first.
func (id Identity) String() string {
	return fmt.Sprintf("%04x%04x", id.Version, id.Revision)
}

// splitPVR separates a 32-bit PVR value into its version (high) and revision
// (low) halves.
func splitPVR(pvr uint32) (version, revision uint32) {
	return (pvr >> 16) & 0xFFFF, pvr & 0xFFFF
}
