// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/parameq/preset"
)

var stream48k = SignalInfo{Rate: 48000, Channels: 1, Precision: 16, Length: UnknownLength}

func startedEngine(t *testing.T, rt *Runtime, kind preset.Kind, args ...string) Engine {
	t.Helper()

	eng, err := rt.NewEngine(kind)
	if err != nil {
		t.Fatalf("NewEngine(%s) error = %v", kind, err)
	}
	if err := eng.Configure(args); err != nil {
		t.Fatalf("Configure(%s, %q) error = %v", kind, args, err)
	}
	if err := eng.Start(stream48k); err != nil {
		t.Fatalf("Start(%s) error = %v", kind, err)
	}
	t.Cleanup(func() { _ = eng.Close() })

	return eng
}

func acquiredRuntime(t *testing.T) *Runtime {
	t.Helper()

	rt := NewRuntime()
	rt.Acquire()
	t.Cleanup(func() { _ = rt.Release() })

	return rt
}

func sine(n int, freq, rate, amp float64) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(amp * math.Sin(2*math.Pi*freq*float64(i)/rate))
	}
	return out
}

func peakAbs(s []int32) float64 {
	var m float64
	for _, v := range s {
		m = max(m, math.Abs(float64(v)))
	}
	return m
}

func TestEngines_SilenceStaysSilent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind preset.Kind
		args []string
	}{
		{preset.Peak, []string{"1000", "1q", "6"}},
		{preset.LowPass, []string{"5000", "0.707q"}},
		{preset.LowPassQ, []string{"5000"}},
		{preset.HighPass, []string{"80", "0.5q"}},
		{preset.HighPassQ, []string{"80", "0.5q"}},
		{preset.BandPass, []string{"800", "0.7071q"}},
		{preset.BandReject, []string{"60", "30q"}},
		{preset.AllPass, []string{"500", "2q"}},
		{preset.LowShelf, []string{"6", "105"}},
		{preset.LowShelfSlope, []string{"6", "105", "0.7q"}},
		{preset.HighShelf, []string{"-3", "8000", "2o"}},
		{preset.HighShelfSlope, []string{"-3", "8000", "1s"}},
		{preset.RawBiquad, []string{"1", "-1.9", "0.9", "1", "-1.8", "0.81"}},
		{preset.Gain, []string{"-3"}},
	}

	rt := acquiredRuntime(t)
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			eng := startedEngine(t, rt, tt.kind, tt.args...)

			in := make([]int32, 512)
			out := make([]int32, 512)
			for i := range out {
				out[i] = 7
			}
			consumed, produced := eng.Flow(in, out)
			if consumed != 512 || produced != 512 {
				t.Fatalf("Flow() = (%d, %d), want (512, 512)", consumed, produced)
			}
			for i, v := range out {
				if v != 0 {
					t.Fatalf("out[%d] = %d, want 0", i, v)
				}
			}
		})
	}
}

func TestPeak_ZeroGainIsIdentity(t *testing.T) {
	t.Parallel()

	rt := acquiredRuntime(t)
	eng := startedEngine(t, rt, preset.Peak, "1000", "1.41q", "0")

	in := sine(1024, 440, 48000, 1<<28)
	out := make([]int32, len(in))
	eng.Flow(in, out)
	for i := range in {
		if d := math.Abs(float64(in[i] - out[i])); d > 1 {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], in[i])
		}
	}
}

func TestPeak_BoostsCenterFrequency(t *testing.T) {
	t.Parallel()

	rt := acquiredRuntime(t)
	eng := startedEngine(t, rt, preset.Peak, "1000", "1q", "6.0206")

	in := sine(9600, 1000, 48000, 1<<26)
	out := make([]int32, len(in))
	eng.Flow(in, out)

	got := peakAbs(out[4800:]) / peakAbs(in[4800:])
	if math.Abs(got-2) > 0.05 {
		t.Errorf("gain at center = %.3f, want ≈2", got)
	}
}

func TestBandPass_UnityAtCenterForAnyQ(t *testing.T) {
	t.Parallel()

	rt := acquiredRuntime(t)
	for _, q := range []string{"0.5q", "4q", "10q"} {
		eng := startedEngine(t, rt, preset.BandPass, "1000", q)

		in := sine(9600, 1000, 48000, 1<<26)
		out := make([]int32, len(in))
		eng.Flow(in, out)

		got := peakAbs(out[4800:]) / peakAbs(in[4800:])
		if math.Abs(got-1) > 0.02 {
			t.Errorf("BandPass %s gain at center = %.3f, want ≈1", q, got)
		}
	}
}

func TestLowPass_PassesDCBlocksNyquist(t *testing.T) {
	t.Parallel()

	rt := acquiredRuntime(t)
	lp := startedEngine(t, rt, preset.LowPass, "1000", "0.7071q")

	dc := make([]int32, 4800)
	for i := range dc {
		dc[i] = 1 << 24
	}
	out := make([]int32, len(dc))
	lp.Flow(dc, out)
	if d := math.Abs(float64(out[len(out)-1] - dc[0])); d > 2 {
		t.Errorf("low-pass DC output = %d, want ≈%d", out[len(out)-1], dc[0])
	}

	hp := startedEngine(t, rt, preset.HighPass, "1000", "0.7071q")
	hp.Flow(dc, out)
	if v := math.Abs(float64(out[len(out)-1])); v > 2 {
		t.Errorf("high-pass DC output = %v, want ≈0", v)
	}
}

func TestRawBiquad_Identity(t *testing.T) {
	t.Parallel()

	rt := acquiredRuntime(t)
	eng := startedEngine(t, rt, preset.RawBiquad, "2", "0", "0", "2", "0", "0")

	in := sine(256, 1000, 48000, 1<<30)
	out := make([]int32, len(in))
	eng.Flow(in, out)
	for i := range in {
		if in[i] != out[i] {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], in[i])
		}
	}
}

func TestGain_HalvesAndClips(t *testing.T) {
	t.Parallel()

	rt := acquiredRuntime(t)

	half := startedEngine(t, rt, preset.Gain, "-6.0206")
	in := []int32{1 << 20, -(1 << 20), 0}
	out := make([]int32, 3)
	half.Flow(in, out)
	if d := math.Abs(float64(out[0] - 1<<19)); d > 2 {
		t.Errorf("out[0] = %d, want ≈%d", out[0], 1<<19)
	}
	if half.Clips() != 0 {
		t.Errorf("Clips() = %d, want 0", half.Clips())
	}

	boost := startedEngine(t, rt, preset.Gain, "6")
	full := []int32{math.MaxInt32, math.MinInt32, 1 << 20}
	boost.Flow(full, out)
	if out[0] != math.MaxInt32 || out[1] != math.MinInt32 {
		t.Errorf("saturated output = %v", out[:2])
	}
	if boost.Clips() != 2 {
		t.Errorf("Clips() = %d, want 2", boost.Clips())
	}
}

func TestEngine_StateCarriesAcrossCalls(t *testing.T) {
	t.Parallel()

	rt := acquiredRuntime(t)
	whole := startedEngine(t, rt, preset.Peak, "500", "2q", "-4")
	split := startedEngine(t, rt, preset.Peak, "500", "2q", "-4")

	in := sine(1000, 700, 48000, 1<<27)
	want := make([]int32, len(in))
	whole.Flow(in, want)

	got := make([]int32, len(in))
	split.Flow(in[:333], got[:333])
	split.Flow(in[333:], got[333:])

	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("split output differs at %d: %d != %d", i, got[i], want[i])
		}
	}
}

func TestConfigure_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind preset.Kind
		args []string
		want error
	}{
		{"peak missing gain", preset.Peak, []string{"1000", "1q"}, ErrArgCount},
		{"peak bad freq", preset.Peak, []string{"abc", "1q", "3"}, ErrInvalidOption},
		{"peak slope width", preset.Peak, []string{"1000", "1s", "3"}, ErrInvalidOption},
		{"peak zero width", preset.Peak, []string{"1000", "0q", "3"}, ErrInvalidOption},
		{"peak negative freq", preset.Peak, []string{"-5", "1q", "3"}, ErrInvalidOption},
		{"low pass no args", preset.LowPass, nil, ErrArgCount},
		{"shelf one arg", preset.LowShelf, []string{"3"}, ErrArgCount},
		{"biquad five", preset.RawBiquad, []string{"1", "0", "0", "1", "0"}, ErrArgCount},
		{"biquad zero a0", preset.RawBiquad, []string{"1", "0", "0", "0", "0", "0"}, ErrInvalidOption},
		{"biquad nan", preset.RawBiquad, []string{"NaN", "0", "0", "1", "0", "0"}, ErrInvalidOption},
		{"gain empty", preset.Gain, nil, ErrArgCount},
		{"gain text", preset.Gain, []string{"loud"}, ErrInvalidOption},
	}

	rt := acquiredRuntime(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, err := rt.NewEngine(tt.kind)
			if err != nil {
				t.Fatalf("NewEngine() error = %v", err)
			}
			defer eng.Close()

			if err := eng.Configure(tt.args); !errors.Is(err, tt.want) {
				t.Errorf("Configure(%q) error = %v, want %v", tt.args, err, tt.want)
			}
		})
	}
}

func TestStart_Errors(t *testing.T) {
	t.Parallel()

	rt := acquiredRuntime(t)

	eng, _ := rt.NewEngine(preset.Peak)
	defer eng.Close()
	if err := eng.Start(stream48k); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Start() before Configure error = %v, want ErrNotConfigured", err)
	}

	if err := eng.Configure([]string{"30000", "1q", "3"}); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if err := eng.Start(stream48k); !errors.Is(err, ErrNyquist) {
		t.Errorf("Start() above Nyquist error = %v, want ErrNyquist", err)
	}
	if err := eng.Start(SignalInfo{Rate: 96000}); err != nil {
		t.Errorf("Start() at 96 kHz error = %v", err)
	}
	if err := eng.Start(SignalInfo{Rate: 0}); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Start() at 0 Hz error = %v, want ErrInvalidOption", err)
	}
}

func TestFlow_UnstartedCopies(t *testing.T) {
	t.Parallel()

	rt := acquiredRuntime(t)
	eng, _ := rt.NewEngine(preset.LowPass)
	defer eng.Close()

	in := []int32{1, 2, 3}
	out := make([]int32, 3)
	eng.Flow(in, out)
	if out[0] != 1 || out[2] != 3 {
		t.Errorf("Flow() on unstarted engine = %v, want copy of input", out)
	}
}

func BenchmarkBiquadFlow(b *testing.B) {
	rt := NewRuntime()
	rt.Acquire()
	defer rt.Release()

	eng, _ := rt.NewEngine(preset.Peak)
	_ = eng.Configure([]string{"1000", "1q", "3"})
	_ = eng.Start(stream48k)
	defer eng.Close()

	in := sine(1024, 440, 48000, 1<<28)
	out := make([]int32, len(in))

	b.ReportAllocs()
	for b.Loop() {
		eng.Flow(in, out)
	}
}
