package msaa

import "testing"

// The zero FeatureSet models the capability floor: no optional
// features, single sampling only.
func TestFeatureSet_ZeroValue(t *testing.T) {
	var fs FeatureSet

	if fs.FeatureEnabled(FeatureSampleRateShading) {
		t.Error("zero FeatureSet reports sample-rate-shading enabled")
	}
	if fs.FeatureEnabled(FeatureAlphaToOne) {
		t.Error("zero FeatureSet reports alpha-to-one enabled")
	}

	counts := fs.SupportedSampleCounts()
	if !counts.Has(Sample1) {
		t.Error("zero FeatureSet must support Sample1")
	}
	if counts.Has(Sample2) || counts.Has(Sample64) {
		t.Errorf("zero FeatureSet supports more than Sample1: %v", counts)
	}
}

func TestFeatureSet_FeatureEnabled(t *testing.T) {
	fs := FeatureSet{
		Features: map[Feature]bool{
			FeatureSampleRateShading: true,
			FeatureAlphaToOne:        false,
		},
	}

	tests := []struct {
		name    string
		feature Feature
		want    bool
	}{
		{"enabled", FeatureSampleRateShading, true},
		{"explicitly disabled", FeatureAlphaToOne, false},
		{"unknown name", Feature("geometry-shader"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fs.FeatureEnabled(tt.feature); got != tt.want {
				t.Errorf("FeatureEnabled(%s) = %t, want %t", tt.feature, got, tt.want)
			}
		})
	}
}

func TestFeatureSet_SupportedSampleCounts(t *testing.T) {
	fs := FeatureSet{SampleCounts: Sample1.Flag() | Sample8.Flag()}
	counts := fs.SupportedSampleCounts()
	if !counts.Has(Sample1) || !counts.Has(Sample8) || counts.Has(Sample4) {
		t.Errorf("SupportedSampleCounts() = %v, want 1x|8x", counts)
	}
}

// FeatureSet must satisfy Device; Validate takes it directly.
var _ Device = FeatureSet{}
