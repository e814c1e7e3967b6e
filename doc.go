// Package msaa provides validated multisample anti-aliasing pipeline
// state for the GoGPU ecosystem.
//
// # Overview
//
// msaa holds the multisample portion of a graphics pipeline
// description: how many rasterization samples are taken per pixel,
// what fraction of them are shaded independently, the coverage sample
// mask, and the two alpha-derived coverage toggles. Its centerpiece is
// Validate, which checks a state against the capability snapshot of a
// specific device and reports the first violation with the offending
// field, a description, the features that would fix it, and stable
// diagnostic codes.
//
// Legality is device-relative, not absolute: the same state can be
// valid for one device and invalid for another, depending on which
// optional features were enabled when the device was created.
//
// # Quick Start
//
//	import "github.com/gogpu/msaa"
//
//	// Describe the device's capabilities (or implement msaa.Device
//	// over your own device handle).
//	dev := msaa.FeatureSet{
//	    Features:     map[msaa.Feature]bool{msaa.FeatureSampleRateShading: true},
//	    SampleCounts: msaa.Sample1.Flag() | msaa.Sample4.Flag(),
//	}
//
//	// Build and validate a state.
//	st := msaa.New(msaa.WithSamples(msaa.Sample4), msaa.WithSampleShading(0.5))
//	if err := st.Validate(dev); err != nil {
//	    // err describes the first violated rule.
//	}
//
//	// Lower into a pipeline descriptor.
//	desc.Multisample = st.GPUTypes()
//
// # Validation Order
//
// Validate short-circuits on the first failure, in a fixed order:
// sample count, then sample shading (feature gate before range), then
// alpha-to-one. The order is a deterministic tie-break for diagnostics
// when several fields are invalid at once. SampleMask and
// AlphaToCoverageEnable are never validated; every value of theirs is
// legal.
//
// # Errors
//
// Failures are *ValidationError values tagged with an ErrorKind and
// unwrap to the package sentinels, so both styles work:
//
//	var verr *msaa.ValidationError
//	if errors.As(err, &verr) { ... verr.Context, verr.Requires ... }
//	if errors.Is(err, msaa.ErrCapabilityRequired) { ... }
//
// # Concurrency
//
// States are plain values and Validate is a pure function; any number
// of goroutines may validate against the same capability snapshot
// concurrently.
package msaa
