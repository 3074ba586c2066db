//go:build amd64

package cpu

// CPUID executes the CPUID instruction with EAX set to leaf and ECX zeroed,
// returning the EAX, EBX, ECX and EDX outputs. For a fixed leaf the result
// is constant on a given processor.
func CPUID(leaf uint32) (eax, ebx, ecx, edx uint32) {
	return cpuid(leaf)
}

// cpuid executes the CPUID instruction for the given leaf.
// Defined in cpuid_amd64.s
func cpuid(leaf uint32) (eax, ebx, ecx, edx uint32)
