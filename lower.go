package msaa

import "github.com/gogpu/gputypes"

// GPUTypes lowers the state into the descriptor shape gogpu render
// pipelines consume.
//
// gputypes carries a single 32-bit mask word, so only SampleMask[0] is
// lowered; with at most 32 samples per pixel on that path the high
// word never participates anyway. Validate the state against the
// target device before lowering — GPUTypes itself performs no checks.
func (s MultisampleState) GPUTypes() gputypes.MultisampleState {
	return gputypes.MultisampleState{
		Count: uint32(s.RasterizationSamples),
		Mask:  uint64(s.SampleMask[0]),
	}
}
