//go:build amd64 || ppc64 || ppc64le

package hwcounter

import "github.com/cwbudde/hwcounter/internal/cpu"

// Features reports the instruction-set capabilities of the executing
// processor. The canonical definition is in internal/cpu.
type Features = cpu.Features

// DetectFeatures probes the executing processor and reports which
// instruction-set extensions it supports. The result is computed on every
// call; callers that query repeatedly should cache it.
func DetectFeatures() Features {
	return cpu.DetectFeatures()
}

// CPUString returns a short human-readable identifier for the executing
// processor, such as "GenuineIntel-6-5E-3" on x86 or "004e1202" on POWER.
func CPUString() string {
	return cpu.CPUString()
}
