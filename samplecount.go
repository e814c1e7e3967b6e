package msaa

import "fmt"

// SampleCount is the number of rasterization samples evaluated per pixel.
// Only the power-of-two values defined below are valid; everything else
// is rejected by Validate and ValidateDevice.
type SampleCount uint32

const (
	// Sample1 disables multisampling. Every conformant device supports it.
	Sample1 SampleCount = 1

	// Sample2 takes 2 samples per pixel.
	Sample2 SampleCount = 2

	// Sample4 takes 4 samples per pixel.
	Sample4 SampleCount = 4

	// Sample8 takes 8 samples per pixel.
	Sample8 SampleCount = 8

	// Sample16 takes 16 samples per pixel.
	Sample16 SampleCount = 16

	// Sample32 takes 32 samples per pixel.
	Sample32 SampleCount = 32

	// Sample64 takes 64 samples per pixel.
	Sample64 SampleCount = 64
)

// IsValid reports whether s is one of the defined sample counts.
func (s SampleCount) IsValid() bool {
	switch s {
	case Sample1, Sample2, Sample4, Sample8, Sample16, Sample32, Sample64:
		return true
	}
	return false
}

// Flag returns the bit s occupies in a SampleCounts support mask.
// For valid counts the flag equals the count itself, since the defined
// counts are distinct powers of two.
func (s SampleCount) Flag() SampleCounts {
	return SampleCounts(s)
}

// String returns a compact form such as "4x".
func (s SampleCount) String() string {
	if s.IsValid() {
		return fmt.Sprintf("%dx", uint32(s))
	}
	return fmt.Sprintf("SampleCount(%d)", uint32(s))
}

// ValidateDevice checks that the device supports this sample count.
// It returns nil on success, or a *ValidationError of kind
// KindUnsupportedSampleCount describing the rejection. The error carries
// no field context; callers validating a larger structure attribute it
// to the field holding the count.
func (s SampleCount) ValidateDevice(dev Device) error {
	if !s.IsValid() {
		return &ValidationError{
			Kind:    KindUnsupportedSampleCount,
			Problem: fmt.Sprintf("%d is not a defined sample count", uint32(s)),
			VUIDs:   []string{vuidSampleCountParameter},
		}
	}
	if !dev.SupportedSampleCounts().Has(s) {
		return &ValidationError{
			Kind:    KindUnsupportedSampleCount,
			Problem: fmt.Sprintf("%s is not supported by the device", s),
			VUIDs:   []string{vuidSampleCountParameter},
		}
	}
	return nil
}

// SampleCounts is a bitset of supported sample counts, one bit per
// defined SampleCount. A device reports its supported set through
// Device.SupportedSampleCounts.
type SampleCounts uint32

// SampleCountsAll has every defined sample count set. Useful for tests
// and for devices that support the full range.
const SampleCountsAll SampleCounts = SampleCounts(Sample1 | Sample2 | Sample4 | Sample8 | Sample16 | Sample32 | Sample64)

// Has reports whether the set contains s.
func (c SampleCounts) Has(s SampleCount) bool {
	return s.IsValid() && c&s.Flag() != 0
}

// Max returns the largest sample count in the set, or 0 if the set is
// empty.
func (c SampleCounts) Max() SampleCount {
	for _, s := range []SampleCount{Sample64, Sample32, Sample16, Sample8, Sample4, Sample2, Sample1} {
		if c.Has(s) {
			return s
		}
	}
	return 0
}

// String lists the counts in the set, e.g. "1x|2x|4x".
func (c SampleCounts) String() string {
	if c == 0 {
		return "none"
	}
	out := ""
	for _, s := range []SampleCount{Sample1, Sample2, Sample4, Sample8, Sample16, Sample32, Sample64} {
		if c.Has(s) {
			if out != "" {
				out += "|"
			}
			out += s.String()
		}
	}
	return out
}
