//go:build ppc64 || ppc64le

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl fills the POWER fields from golang.org/x/sys/cpu, which
// derives them from the kernel's HWCAP2 auxiliary vector.
func detectFeaturesImpl() Features {
	return Features{
		IsPOWER8:     cpu.PPC64.IsPOWER8,
		IsPOWER9:     cpu.PPC64.IsPOWER9,
		Architecture: runtime.GOARCH,
	}
}
