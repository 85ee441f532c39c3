// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// fullScale is the magnitude of a 32-bit fixed-point sample at 1.0.
const fullScale = 1 << 31

// Float32ToSample converts a host float sample to the 32-bit fixed-point
// domain of the filter engines. Values outside [-1, 1] saturate and
// increment clips.
func Float32ToSample(x float32, clips *uint64) int32 {
	d := float64(x) * fullScale

	switch {
	case math.IsNaN(d):
		*clips++
		return 0
	case d > math.MaxInt32+1.0:
		*clips++
		return math.MaxInt32
	case d <= math.MinInt32-0.5:
		*clips++
		return math.MinInt32
	}

	r := int64(math.Round(d))
	if r > math.MaxInt32 {
		// 1.0 exactly lands here; it is full scale, not a clip.
		return math.MaxInt32
	}

	return int32(r)
}

// SampleToFloat32 is the inverse of Float32ToSample. The result is
// rounded to the 24 bits of precision a float32 can hold; samples too
// close to positive full scale to round count as clips.
func SampleToFloat32(s int32, clips *uint64) float32 {
	if s > math.MaxInt32-64 {
		*clips++
		return 1
	}

	return float32(float64((int64(s)+64)&^127) / fullScale)
}

// Float32ToPCM converts x to a signed integer sample of the given bit
// depth, clamping to the representable range.
func Float32ToPCM(x float32, bitDepth int) int {
	maxVal := float64(int64(1)<<(bitDepth-1)) - 1
	minVal := -maxVal - 1

	v := math.Round(float64(x) * (maxVal + 1))
	switch {
	case math.IsNaN(v):
		return 0
	case v > maxVal:
		return int(maxVal)
	case v < minVal:
		return int(minVal)
	}

	return int(v)
}

// PCMToFloat32 converts a signed integer sample of the given bit depth to
// a float in [-1, 1).
func PCMToFloat32(s, bitDepth int) float32 {
	return float32(float64(s) / float64(int64(1)<<(bitDepth-1)))
}
