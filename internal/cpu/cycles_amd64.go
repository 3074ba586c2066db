//go:build amd64

package cpu

// ReadCycleCounter returns the current value of the processor's free-running
// time-stamp counter. The read is not serializing: the processor may reorder
// it relative to surrounding instructions, so callers that need strict
// ordering around a measured region must add their own barriers.
func ReadCycleCounter() uint64 {
	return readCycleCounter()
}

// readCycleCounter reads the time-stamp counter using RDTSC.
// Implemented in cycles_amd64.s
//
//go:noescape
func readCycleCounter() uint64
