//go:build linux && amd64

package msr

// Addresses of the architectural performance-monitoring MSRs.
//
// See the Intel 64 and IA-32 Architectures Software Developer's Manual,
// Volume 4, for the register descriptions.
const (
	IA32TimeStampCounter = 0x10 // the counter RDTSC reads
	PlatformInfo         = 0xCE // base frequency and ratio limits

	// Programmable counters read by RDPMC, and their event selectors.
	IA32PMC0        = 0xC1
	IA32PMC1        = 0xC2
	IA32PMC2        = 0xC3
	IA32PMC3        = 0xC4
	IA32PerfEvtSel0 = 0x186
	IA32PerfEvtSel1 = 0x187
	IA32PerfEvtSel2 = 0x188
	IA32PerfEvtSel3 = 0x189

	MSROffcoreRsp0 = 0x1A6 // off-core response extension 0
	MSROffcoreRsp1 = 0x1A7 // off-core response extension 1
	IA32DebugCtl   = 0x1D9

	// Fixed-function counters and the control registers gating both banks.
	InstRetiredAny       = 0x309
	CPUClkUnhaltedThread = 0x30A
	CPUClkUnhaltedRef    = 0x30B
	IA32FixedCtrCtrl     = 0x38D
	IA32PerfGlobalCtrl   = 0x38F

	MSRLoadLatency = 0x3F6 // load-latency facility threshold
	MSRFrontend    = 0x3F7 // front-end event extension
)

// Counter bank sizes of the architectural performance-monitoring unit.
const (
	MaxFixedCounters  = 3
	MaxCustomCounters = 8
	MaxCounters       = MaxFixedCounters + MaxCustomCounters
)
