package msaa

import (
	"errors"
	"fmt"
)

// MultisampleState configures how a graphics pipeline performs
// multisample anti-aliasing.
//
// The zero value is NOT a usable state (its sample count is 0); always
// construct through New, which returns the disabled-multisampling
// default, and adjust fields or pass options from there. New-based
// construction also keeps call sites compatible when fields are added.
type MultisampleState struct {
	// RasterizationSamples is the number of samples taken per pixel.
	// The GPU picks this many locations within each pixel and runs the
	// depth and stencil tests once per location.
	RasterizationSamples SampleCount

	// SampleShading, when non-nil, is the minimum fraction (0.0 to 1.0)
	// of samples that are shaded independently rather than receiving
	// the value broadcast from a single shaded sample. At 1.0 every
	// sample runs through the fragment shader.
	//
	// Setting this requires FeatureSampleRateShading on the device.
	SampleShading *float32

	// SampleMask is ANDed with the coverage mask generated for each
	// group of RasterizationSamples samples. Only the low
	// RasterizationSamples bits participate; the rest are inert.
	SampleMask [2]uint32

	// AlphaToCoverageEnable derives additional coverage from the
	// fragment's alpha value in an implementation-defined way.
	AlphaToCoverageEnable bool

	// AlphaToOneEnable forces sample alpha to the maximum representable
	// value after alpha-to-coverage has been applied.
	//
	// Setting this requires FeatureAlphaToOne on the device.
	AlphaToOneEnable bool
}

// New returns a MultisampleState with multisampling disabled: one
// sample per pixel, no sample shading, a fully open sample mask, and
// both alpha toggles off. The default always validates against any
// conformant device.
func New(opts ...Option) MultisampleState {
	s := MultisampleState{
		RasterizationSamples: Sample1,
		SampleMask:           [2]uint32{0xFFFFFFFF, 0xFFFFFFFF},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Validate checks the state against the capability snapshot of a
// device. It returns nil if the state is legal for that device, or a
// *ValidationError attributing the first violation found.
//
// Checks run in a fixed order and stop at the first failure:
// sample count, then sample shading (feature, then range), then
// alpha-to-one. SampleMask and AlphaToCoverageEnable are never
// validated; every bit pattern and both boolean states are legal.
//
// Validate is a pure function of (state, snapshot): it reads no hidden
// state, mutates nothing, and is safe to call concurrently.
func (s MultisampleState) Validate(dev Device) error {
	if err := s.validate(dev); err != nil {
		Logger().Debug("multisample state rejected",
			"context", err.Context, "kind", err.Kind.String(), "problem", err.Problem)
		return err
	}
	return nil
}

func (s MultisampleState) validate(dev Device) *ValidationError {
	if err := s.RasterizationSamples.ValidateDevice(dev); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			rewrapped := *verr
			rewrapped.Context = "rasterization_samples"
			return &rewrapped
		}
		return &ValidationError{
			Kind:    KindUnsupportedSampleCount,
			Context: "rasterization_samples",
			Problem: err.Error(),
			VUIDs:   []string{vuidSampleCountParameter},
		}
	}

	if s.SampleShading != nil {
		if !dev.FeatureEnabled(FeatureSampleRateShading) {
			return &ValidationError{
				Kind:     KindCapabilityRequired,
				Context:  "sample_shading",
				Problem:  "is set, but the required device feature is not enabled",
				Requires: []Feature{FeatureSampleRateShading},
				VUIDs:    []string{vuidSampleShadingEnable},
			}
		}
		// Written so NaN also fails the closed-interval test.
		if v := *s.SampleShading; !(v >= 0 && v <= 1) {
			return &ValidationError{
				Kind:    KindValueOutOfRange,
				Context: "sample_shading",
				Problem: fmt.Sprintf("%g is not between 0.0 and 1.0 inclusive", v),
				VUIDs:   []string{vuidMinSampleShading},
			}
		}
	}

	if s.AlphaToOneEnable && !dev.FeatureEnabled(FeatureAlphaToOne) {
		return &ValidationError{
			Kind:     KindCapabilityRequired,
			Context:  "alpha_to_one_enable",
			Problem:  "is true, but the required device feature is not enabled",
			Requires: []Feature{FeatureAlphaToOne},
			VUIDs:    []string{vuidAlphaToOneEnable},
		}
	}

	return nil
}

// Equal reports whether two states describe the same configuration.
// SampleShading compares by value: two states with distinct pointers
// to the same ratio are equal.
func (s MultisampleState) Equal(o MultisampleState) bool {
	if s.RasterizationSamples != o.RasterizationSamples ||
		s.SampleMask != o.SampleMask ||
		s.AlphaToCoverageEnable != o.AlphaToCoverageEnable ||
		s.AlphaToOneEnable != o.AlphaToOneEnable {
		return false
	}
	if (s.SampleShading == nil) != (o.SampleShading == nil) {
		return false
	}
	return s.SampleShading == nil || *s.SampleShading == *o.SampleShading
}

// String returns a compact debug form of the state.
func (s MultisampleState) String() string {
	shading := "off"
	if s.SampleShading != nil {
		shading = fmt.Sprintf("%g", *s.SampleShading)
	}
	return fmt.Sprintf("MultisampleState(%s, shading=%s, mask=%08x%08x, a2c=%t, a2o=%t)",
		s.RasterizationSamples, shading, s.SampleMask[1], s.SampleMask[0],
		s.AlphaToCoverageEnable, s.AlphaToOneEnable)
}
