//go:build ppc64 || ppc64le

package hwcounter

import "github.com/cwbudde/hwcounter/internal/cpu"

// Identity describes the executing processor as decoded from the processor
// version register. The canonical definition is in internal/cpu.
type Identity = cpu.Identity

// ReadProcessorVersion returns the raw contents of the processor version
// register (SPR 287).
//
// The mfspr read must be permitted at the current privilege level; on Linux
// the kernel emulates the read for user space. An environment that forbids
// it faults the process instead.
func ReadProcessorVersion() uint64 {
	return cpu.ReadProcessorVersion()
}

// ReadIdentity splits the processor version register into its version and
// revision halves.
func ReadIdentity() Identity {
	return cpu.ReadIdentity()
}
