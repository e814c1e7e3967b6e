package msaa

import (
	"errors"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			"problem only",
			&ValidationError{Kind: KindValueOutOfRange, Problem: "2 is not between 0.0 and 1.0 inclusive"},
			"msaa: 2 is not between 0.0 and 1.0 inclusive",
		},
		{
			"with context",
			&ValidationError{Kind: KindValueOutOfRange, Context: "sample_shading", Problem: "out of range"},
			"msaa: sample_shading: out of range",
		},
		{
			"with remedy and code",
			&ValidationError{
				Kind:     KindCapabilityRequired,
				Context:  "alpha_to_one_enable",
				Problem:  "is true, but the required device feature is not enabled",
				Requires: []Feature{FeatureAlphaToOne},
				VUIDs:    []string{"VUID-123"},
			},
			"msaa: alpha_to_one_enable: is true, but the required device feature is not enabled (requires alpha-to-one) [VUID-123]",
		},
		{
			"multiple codes",
			&ValidationError{
				Kind:    KindUnsupportedSampleCount,
				Context: "rasterization_samples",
				Problem: "8x is not supported by the device",
				VUIDs:   []string{"VUID-1", "VUID-2"},
			},
			"msaa: rasterization_samples: 8x is not supported by the device [VUID-1, VUID-2]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q\n          want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	tests := []struct {
		name string
		kind ErrorKind
		want error
	}{
		{"unsupported sample count", KindUnsupportedSampleCount, ErrUnsupportedSampleCount},
		{"capability required", KindCapabilityRequired, ErrCapabilityRequired},
		{"value out of range", KindValueOutOfRange, ErrValueOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{Kind: tt.kind, Problem: "x"}
			if !errors.Is(err, tt.want) {
				t.Errorf("errors.Is(%v, %v) = false, want true", err, tt.want)
			}
			// Each kind matches only its own sentinel.
			for _, other := range []error{ErrUnsupportedSampleCount, ErrCapabilityRequired, ErrValueOutOfRange} {
				if other != tt.want && errors.Is(err, other) {
					t.Errorf("errors.Is(%v, %v) = true, want false", err, other)
				}
			}
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnsupportedSampleCount, "UnsupportedSampleCount"},
		{KindCapabilityRequired, "CapabilityRequired"},
		{KindValueOutOfRange, "ValueOutOfRange"},
		{ErrorKind(42), "ErrorKind(42)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
