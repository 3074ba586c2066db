//go:build amd64

package hwcounter

import "github.com/cwbudde/hwcounter/internal/cpu"

// Identity describes the executing processor as decoded from CPUID.
// The canonical definition is in internal/cpu.
type Identity = cpu.Identity

// ReadCycleCounter returns the current value of the processor's free-running
// time-stamp counter.
//
// The read itself is not serializing; callers that need strict ordering
// around a measured region must add their own barriers.
func ReadCycleCounter() uint64 {
	return cpu.ReadCycleCounter()
}

// ReadPerfCounter returns the current value of the performance-monitoring
// counter selected by counter.
//
// The selector's meaning is defined by whatever privileged software
// configured the counter. Reading a counter that has not been configured
// and opened to user mode faults the process; this package neither detects
// nor guards against that condition.
func ReadPerfCounter(counter uint32) uint64 {
	return cpu.ReadPerfCounter(counter)
}

// CPUID executes the CPUID instruction with EAX set to leaf and ECX zeroed,
// returning the four result registers.
func CPUID(leaf uint32) (eax, ebx, ecx, edx uint32) {
	return cpu.CPUID(leaf)
}

// ReadIdentity decodes the processor's vendor, signature and brand
// information from CPUID.
func ReadIdentity() Identity {
	return cpu.ReadIdentity()
}
