//go:build amd64 || ppc64 || ppc64le

package cpu

// Features describes instruction-set extensions available to the process.
// Only the fields for the executing architecture are populated.
type Features struct {
	HasSSE2   bool
	HasSSE3   bool
	HasSSSE3  bool
	HasSSE41  bool
	HasSSE42  bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool

	IsPOWER8 bool
	IsPOWER9 bool

	Architecture string
}

// DetectFeatures reports the CPU features available to the current process.
func DetectFeatures() Features {
	return detectFeaturesImpl()
}
