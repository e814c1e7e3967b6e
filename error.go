package msaa

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for validation failures. ValidationError unwraps to
// one of these, so callers can branch with errors.Is without inspecting
// the struct.
var (
	// ErrUnsupportedSampleCount is returned when the requested
	// rasterization sample count is not in the device's supported set.
	ErrUnsupportedSampleCount = errors.New("msaa: unsupported sample count")

	// ErrCapabilityRequired is returned when a field value requires an
	// optional device feature that is not enabled.
	ErrCapabilityRequired = errors.New("msaa: required device feature not enabled")

	// ErrValueOutOfRange is returned when a numeric field violates its
	// declared domain.
	ErrValueOutOfRange = errors.New("msaa: value out of range")
)

// ErrorKind tags a ValidationError with its failure category.
type ErrorKind int

const (
	// KindUnsupportedSampleCount: the sample count is absent from the
	// device's supported set (or is not a defined count at all).
	KindUnsupportedSampleCount ErrorKind = iota + 1

	// KindCapabilityRequired: the value is structurally fine but needs
	// an optional device feature that is not enabled.
	KindCapabilityRequired

	// KindValueOutOfRange: a numeric value violates its declared bounds.
	KindValueOutOfRange
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindUnsupportedSampleCount:
		return "UnsupportedSampleCount"
	case KindCapabilityRequired:
		return "CapabilityRequired"
	case KindValueOutOfRange:
		return "ValueOutOfRange"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ValidationError describes why a configuration value was rejected.
//
// Context is the path of the offending field ("rasterization_samples",
// "sample_shading", "alpha_to_one_enable"). Problem is a human-readable
// description of what is wrong with it. Requires lists the optional
// device features that would make the value legal; it is empty for
// value errors, which no feature can fix. VUIDs are opaque stable
// diagnostic codes referencing the governing specification rules;
// several may apply to one field.
type ValidationError struct {
	Kind     ErrorKind
	Context  string
	Problem  string
	Requires []Feature
	VUIDs    []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("msaa: ")
	if e.Context != "" {
		b.WriteString(e.Context)
		b.WriteString(": ")
	}
	b.WriteString(e.Problem)
	if len(e.Requires) > 0 {
		b.WriteString(" (requires ")
		for i, f := range e.Requires {
			if i > 0 {
				b.WriteString(" + ")
			}
			b.WriteString(string(f))
		}
		b.WriteString(")")
	}
	if len(e.VUIDs) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(e.VUIDs, ", "))
		b.WriteString("]")
	}
	return b.String()
}

// Unwrap maps the error kind to its sentinel so that
// errors.Is(err, ErrCapabilityRequired) and friends work.
func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case KindUnsupportedSampleCount:
		return ErrUnsupportedSampleCount
	case KindCapabilityRequired:
		return ErrCapabilityRequired
	case KindValueOutOfRange:
		return ErrValueOutOfRange
	}
	return nil
}

// Stable diagnostic codes for multisample state. Carried as opaque
// strings on ValidationError; msaa attaches no meaning to them beyond
// identity.
const (
	vuidSampleCountParameter = "VUID-VkPipelineMultisampleStateCreateInfo-rasterizationSamples-parameter"
	vuidSampleShadingEnable  = "VUID-VkPipelineMultisampleStateCreateInfo-sampleShadingEnable-00784"
	vuidMinSampleShading     = "VUID-VkPipelineMultisampleStateCreateInfo-minSampleShading-00786"
	vuidAlphaToOneEnable     = "VUID-VkPipelineMultisampleStateCreateInfo-alphaToOneEnable-00785"
)
