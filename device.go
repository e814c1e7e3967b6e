package msaa

// Feature identifies an optional device capability by name.
//
// Multisample state only gates on the two features below, but the type
// is open so hosts can reuse the same capability vocabulary for other
// pipeline state.
type Feature string

const (
	// FeatureSampleRateShading gates per-sample fragment shading.
	// MultisampleState.SampleShading may only be set when the device
	// has this feature enabled.
	FeatureSampleRateShading Feature = "sample-rate-shading"

	// FeatureAlphaToOne gates forcing sample alpha to the maximum value
	// after alpha-to-coverage. MultisampleState.AlphaToOneEnable may
	// only be true when the device has this feature enabled.
	FeatureAlphaToOne Feature = "alpha-to-one"
)

// Device reports the capability state of a rendering device.
//
// msaa RECEIVES the capability snapshot from the host, it does NOT
// query a live device. The host application (a wgpu adapter wrapper,
// a Vulkan device owner, a test) implements Device over whatever
// handle it holds. The snapshot is assumed consistent for the duration
// of one Validate call; msaa takes no locks and keeps no reference.
type Device interface {
	// FeatureEnabled reports whether the named optional feature is
	// enabled on the device. Unknown names report false.
	FeatureEnabled(f Feature) bool

	// SupportedSampleCounts returns the set of rasterization sample
	// counts the device supports for pipeline multisample state.
	SupportedSampleCounts() SampleCounts
}

// FeatureSet is a concrete Device backed by plain data. Hosts that
// already know their device's state can hand one to Validate directly;
// tests use it as a mock capability source.
//
// The zero value enables no features and supports only Sample1, which
// is the capability floor every conformant device provides.
type FeatureSet struct {
	// Features maps enabled feature names to true. A missing or false
	// entry means the feature is not enabled.
	Features map[Feature]bool

	// SampleCounts is the supported sample-count set. Zero is treated
	// as Sample1-only rather than "supports nothing".
	SampleCounts SampleCounts
}

// FeatureEnabled implements Device.
func (fs FeatureSet) FeatureEnabled(f Feature) bool {
	return fs.Features[f]
}

// SupportedSampleCounts implements Device.
func (fs FeatureSet) SupportedSampleCounts() SampleCounts {
	if fs.SampleCounts == 0 {
		return Sample1.Flag()
	}
	return fs.SampleCounts
}
