//go:build amd64

package cpu

import (
	"bytes"
	"fmt"
	"strings"
)

// Identity describes the executing processor as reported by CPUID.
type Identity struct {
	// Vendor is the 12-byte vendor identification string from leaf 0,
	// e.g. "GenuineIntel" or "AuthenticAMD".
	Vendor string

	// Brand is the processor brand string from leaves 0x80000002-0x80000004,
	// empty when the extended leaves are not supported.
	Brand string

	// Family, Model and Stepping are the display values decoded from the
	// leaf 1 signature, with the extended family and model fields folded in.
	Family   uint32
	Model    uint32
	Stepping uint32

	// MaxLeaf is the highest standard leaf the processor supports.
	MaxLeaf uint32

	// Features holds the leaf 1 feature flags, EDX in the high word and ECX
	// in the low word.
	Features uint64
}

// ReadIdentity queries CPUID and decodes the processor identity.
// The result is constant for a given processor.
func ReadIdentity() Identity {
	var id Identity

	eax, ebx, ecx, edx := cpuid(0)
	id.MaxLeaf = eax
	id.Vendor = string(registerBytes(ebx, edx, ecx))

	if id.MaxLeaf >= 1 {
		eax, _, ecx, edx = cpuid(1)
		id.Family, id.Model, id.Stepping = decodeSignature(eax)
		id.Features = combineWords(edx, ecx)
	}

	id.Brand = readBrandString()

	return id
}

// String formats the identity as VENDOR-FAMILY-MODEL-STEPPING with the
// numeric fields in uppercase hex.
func (id Identity) String() string {
	return fmt.Sprintf("%s-%X-%X-%X", id.Vendor, id.Family, id.Model, id.Stepping)
}

// decodeSignature splits a leaf 1 EAX value into display family, model and
// stepping. The extended family is folded in when the base family is 0xF;
// the extended model extends families 6 and above.
func decodeSignature(eax uint32) (family, model, stepping uint32) {
	stepping = eax & 0xF
	model = (eax >> 4) & 0xF
	family = (eax >> 8) & 0xF

	if family == 0xF {
		family += (eax >> 20) & 0xFF
	}

	if family >= 0x6 {
		model += ((eax >> 16) & 0xF) << 4
	}

	return family, model, stepping
}

// readBrandString assembles the brand string from the extended leaves, or
// returns "" on processors that predate them.
func readBrandString() string {
	maxExt, _, _, _ := cpuid(0x80000000)
	if maxExt < 0x80000004 {
		return ""
	}

	var raw []byte

	for leaf := uint32(0x80000002); leaf <= 0x80000004; leaf++ {
		eax, ebx, ecx, edx := cpuid(leaf)
		raw = append(raw, registerBytes(eax, ebx, ecx, edx)...)
	}

	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}

	return strings.TrimSpace(string(raw))
}

// registerBytes flattens 32-bit register values into their little-endian
// byte representation.
func registerBytes(regs ...uint32) []byte {
	buf := make([]byte, 0, 4*len(regs))

	for _, reg := range regs {
		buf = append(buf, byte(reg), byte(reg>>8), byte(reg>>16), byte(reg>>24))
	}

	return buf
}
