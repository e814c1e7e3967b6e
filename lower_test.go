package msaa

import "testing"

func TestGPUTypes(t *testing.T) {
	tests := []struct {
		name      string
		state     MultisampleState
		wantCount uint32
		wantMask  uint32
	}{
		{"default", New(), 1, 0xFFFFFFFF},
		{"4x", New(WithSamples(Sample4)), 4, 0xFFFFFFFF},
		{"custom mask low word", New(WithSampleMask([2]uint32{0x0000000F, 0xAAAAAAAA})), 1, 0x0000000F},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.state.GPUTypes()
			if got.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", got.Count, tt.wantCount)
			}
			if got.Mask != uint64(tt.wantMask) {
				t.Errorf("Mask = %08x, want %08x", got.Mask, tt.wantMask)
			}
		})
	}
}
