package msaa

// Option configures a MultisampleState during creation with New.
//
// Options exist so construction sites never spell out a full struct
// literal: fields can be added to MultisampleState later without
// breaking existing New calls.
//
// Example:
//
//	// Disabled multisampling (the default)
//	st := msaa.New()
//
//	// 4x MSAA with alpha-to-coverage
//	st := msaa.New(msaa.WithSamples(msaa.Sample4), msaa.WithAlphaToCoverage(true))
type Option func(*MultisampleState)

// WithSamples sets the number of rasterization samples per pixel.
func WithSamples(s SampleCount) Option {
	return func(st *MultisampleState) {
		st.RasterizationSamples = s
	}
}

// WithSampleShading enables sample shading with the given minimum
// fraction of independently shaded samples. The value must be in
// [0.0, 1.0] and the device must have FeatureSampleRateShading enabled;
// both are checked by Validate, not here.
func WithSampleShading(min float32) Option {
	return func(st *MultisampleState) {
		v := min
		st.SampleShading = &v
	}
}

// WithSampleMask sets the 64-bit coverage mask as two 32-bit words,
// low word first.
func WithSampleMask(mask [2]uint32) Option {
	return func(st *MultisampleState) {
		st.SampleMask = mask
	}
}

// WithAlphaToCoverage sets whether fragment alpha contributes to the
// coverage mask.
func WithAlphaToCoverage(enable bool) Option {
	return func(st *MultisampleState) {
		st.AlphaToCoverageEnable = enable
	}
}

// WithAlphaToOne sets whether sample alpha is forced to the maximum
// value after alpha-to-coverage. Requires FeatureAlphaToOne on the
// device; checked by Validate.
func WithAlphaToOne(enable bool) Option {
	return func(st *MultisampleState) {
		st.AlphaToOneEnable = enable
	}
}
