// Package hwcounter provides direct access to low-level CPU counter and
// identification registers on amd64 and 64-bit POWER processors.
//
// Each primitive executes a fixed instruction sequence against a hardware
// register with no operating-system mediation: the time-stamp counter and
// performance-monitoring counters on amd64, the processor version register
// on ppc64/ppc64le. All reads are stateless, allocation-free and safe to
// call from any number of goroutines; counter values are per-core and only
// comparable across cores when the platform keeps the counters synchronized.
//
// The package deliberately leaves the surrounding machinery to the caller:
// counter configuration and enablement, sampling policy, and interpretation
// of the values read. In particular, performance-monitoring counters must
// already be configured and opened to user mode by privileged software, or
// reading them faults the process. Calling a primitive on an architecture
// that does not provide it is a compile-time error, never a runtime
// fallback.
package hwcounter
