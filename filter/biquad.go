// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"fmt"
	"math"

	"github.com/ik5/parameq/preset"
)

// defaultWidth is used by pass and band kinds given only a frequency.
var defaultWidth = width{value: 1 / math.Sqrt2, unit: unitQ}

// defaultSlope is used by shelving kinds given no width.
var defaultSlope = width{value: 0.5, unit: unitSlope}

// coefficients of one second-order section, normalized so a0 == 1.
type coefficients struct {
	b0, b1, b2 float64
	a1, a2     float64
}

// biquad is a Direct Form II Transposed second-order section.
type biquad struct {
	kind preset.Kind
	rel  func()

	freq, gain float64
	width      width
	raw        [6]float64

	configured bool
	started    bool
	closed     bool

	c      coefficients
	d0, d1 float64
	clips  uint64
}

func newBiquad(kind preset.Kind, release func()) *biquad {
	return &biquad{kind: kind, rel: release}
}

func (b *biquad) Kind() preset.Kind { return b.kind }
func (b *biquad) Clips() uint64     { return b.clips }

func (b *biquad) Configure(args []string) error {
	var err error

	switch b.kind {
	case preset.Peak:
		if len(args) != 3 {
			return fmt.Errorf("%w: %s takes freq width gain, got %d", ErrArgCount, b.kind, len(args))
		}
		if b.freq, err = parseNumber(args[0]); err != nil {
			return err
		}
		if b.width, err = parseWidth(args[1], unitQ, false); err != nil {
			return err
		}
		if b.gain, err = parseNumber(args[2]); err != nil {
			return err
		}

	case preset.LowPass, preset.LowPassQ, preset.HighPass, preset.HighPassQ,
		preset.BandPass, preset.BandReject, preset.AllPass:
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("%w: %s takes freq [width], got %d", ErrArgCount, b.kind, len(args))
		}
		if b.freq, err = parseNumber(args[0]); err != nil {
			return err
		}
		b.width = defaultWidth
		if len(args) == 2 {
			if b.width, err = parseWidth(args[1], unitQ, false); err != nil {
				return err
			}
		}

	case preset.LowShelf, preset.LowShelfSlope, preset.HighShelf, preset.HighShelfSlope:
		if len(args) < 2 || len(args) > 3 {
			return fmt.Errorf("%w: %s takes gain freq [width], got %d", ErrArgCount, b.kind, len(args))
		}
		if b.gain, err = parseNumber(args[0]); err != nil {
			return err
		}
		if b.freq, err = parseNumber(args[1]); err != nil {
			return err
		}
		b.width = defaultSlope
		if len(args) == 3 {
			if b.width, err = parseWidth(args[2], unitSlope, true); err != nil {
				return err
			}
		}

	case preset.RawBiquad:
		if len(args) != 6 {
			return fmt.Errorf("%w: %s takes six coefficients, got %d", ErrArgCount, b.kind, len(args))
		}
		for i, a := range args {
			if b.raw[i], err = parseNumber(a); err != nil {
				return err
			}
		}
		if b.raw[3] == 0 {
			return fmt.Errorf("%w: a0 must not be zero", ErrInvalidOption)
		}

	default:
		return fmt.Errorf("%w: %s", ErrUnknownKind, b.kind)
	}

	if b.kind != preset.RawBiquad && b.freq <= 0 {
		return fmt.Errorf("%w: frequency %g must be positive", ErrInvalidOption, b.freq)
	}
	b.configured = true

	return nil
}

func (b *biquad) Start(info SignalInfo) error {
	if !b.configured {
		return ErrNotConfigured
	}
	if info.Rate <= 0 || math.IsNaN(info.Rate) || math.IsInf(info.Rate, 0) {
		return fmt.Errorf("%w: sample rate %g", ErrInvalidOption, info.Rate)
	}

	c, err := b.design(info.Rate)
	if err != nil {
		return err
	}
	b.c = c
	b.d0, b.d1 = 0, 0
	b.started = true

	return nil
}

func (b *biquad) design(rate float64) (coefficients, error) {
	if b.kind == preset.RawBiquad {
		r := b.raw
		return normalize(r[0], r[1], r[2], r[3], r[4], r[5]), nil
	}

	if b.freq >= rate/2 {
		return coefficients{}, fmt.Errorf("%w: %g Hz at %g Hz sample rate", ErrNyquist, b.freq, rate)
	}

	w0 := 2 * math.Pi * b.freq / rate
	cw := math.Cos(w0)
	a := math.Pow(10, b.gain/40)
	alpha, err := b.width.alpha(b.freq, w0, a)
	if err != nil {
		return coefficients{}, err
	}

	switch b.kind {
	case preset.Peak:
		return normalize(1+alpha*a, -2*cw, 1-alpha*a, 1+alpha/a, -2*cw, 1-alpha/a), nil
	case preset.LowPass, preset.LowPassQ:
		return normalize((1-cw)/2, 1-cw, (1-cw)/2, 1+alpha, -2*cw, 1-alpha), nil
	case preset.HighPass, preset.HighPassQ:
		return normalize((1+cw)/2, -(1 + cw), (1+cw)/2, 1+alpha, -2*cw, 1-alpha), nil
	case preset.BandPass:
		return normalize(alpha, 0, -alpha, 1+alpha, -2*cw, 1-alpha), nil
	case preset.BandReject:
		return normalize(1, -2*cw, 1, 1+alpha, -2*cw, 1-alpha), nil
	case preset.AllPass:
		return normalize(1-alpha, -2*cw, 1+alpha, 1+alpha, -2*cw, 1-alpha), nil
	case preset.LowShelf, preset.LowShelfSlope:
		beta := 2 * math.Sqrt(a) * alpha
		return normalize(
			a*((a+1)-(a-1)*cw+beta),
			2*a*((a-1)-(a+1)*cw),
			a*((a+1)-(a-1)*cw-beta),
			(a+1)+(a-1)*cw+beta,
			-2*((a-1)+(a+1)*cw),
			(a+1)+(a-1)*cw-beta,
		), nil
	case preset.HighShelf, preset.HighShelfSlope:
		beta := 2 * math.Sqrt(a) * alpha
		return normalize(
			a*((a+1)+(a-1)*cw+beta),
			-2*a*((a-1)+(a+1)*cw),
			a*((a+1)+(a-1)*cw-beta),
			(a+1)-(a-1)*cw+beta,
			2*((a-1)-(a+1)*cw),
			(a+1)-(a-1)*cw-beta,
		), nil
	default:
		return coefficients{}, fmt.Errorf("%w: %s", ErrUnknownKind, b.kind)
	}
}

func normalize(b0, b1, b2, a0, a1, a2 float64) coefficients {
	return coefficients{
		b0: b0 / a0,
		b1: b1 / a0,
		b2: b2 / a0,
		a1: a1 / a0,
		a2: a2 / a0,
	}
}

func (b *biquad) Flow(in, out []int32) (int, int) {
	n := min(len(in), len(out))
	if !b.started || b.closed {
		copy(out[:n], in[:n])
		return n, n
	}

	c := b.c
	d0, d1 := b.d0, b.d1
	for i := range n {
		x := float64(in[i])
		y := c.b0*x + d0
		d0 = c.b1*x - c.a1*y + d1
		d1 = c.b2*x - c.a2*y
		out[i] = saturate(y, &b.clips)
	}
	b.d0, b.d1 = d0, d1

	return n, n
}

func (b *biquad) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if b.rel != nil {
		b.rel()
	}

	return nil
}
