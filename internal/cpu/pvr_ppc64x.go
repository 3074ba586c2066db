//go:build ppc64 || ppc64le

package cpu

// ReadProcessorVersion returns the raw contents of the processor version
// register (SPR 287). The mfspr read must be permitted at the current
// privilege level; on Linux the kernel emulates the read for user space.
func ReadProcessorVersion() uint64 {
	return readProcessorVersion()
}

// readProcessorVersion reads the PVR using mfspr.
// Implemented in pvr_ppc64x.s
//
//go:noescape
func readProcessorVersion() uint64
