//go:build amd64 || ppc64 || ppc64le

package cpu

// CPUString returns a short identification string for the executing
// processor.
func CPUString() string {
	return ReadIdentity().String()
}

// combineWords joins two 32-bit register halves into one 64-bit value, with
// lo supplying the least-significant bits.
func combineWords(hi, lo uint32) uint64 {
	return (uint64(hi) << 32) | uint64(lo)
}
