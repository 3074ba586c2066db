//go:build amd64

package cpu

// ReadPerfCounter returns the current value of the performance-monitoring
// counter selected by counter. The selector's meaning is defined by whatever
// software configured the counter; this package does not configure counters
// or check that user-mode counter access is enabled. Reading a counter the
// environment has not enabled faults the process.
func ReadPerfCounter(counter uint32) uint64 {
	return readPerfCounter(counter)
}

// readPerfCounter reads a performance-monitoring counter using RDPMC with
// the selector in ECX. Implemented in pmc_amd64.s
//
//go:noescape
func readPerfCounter(counter uint32) uint64
