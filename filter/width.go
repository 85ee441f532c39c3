// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"fmt"
	"math"
	"strconv"
)

type widthUnit byte

const (
	unitQ      widthUnit = 'q'
	unitOctave widthUnit = 'o'
	unitSlope  widthUnit = 's'
	unitHz     widthUnit = 'h'
	unitKHz    widthUnit = 'k'
)

type width struct {
	value float64
	unit  widthUnit
}

// parseWidth reads a width token such as "1.41q" or "2o". A token without
// suffix uses def. allowSlope gates the 's' unit.
func parseWidth(tok string, def widthUnit, allowSlope bool) (width, error) {
	if tok == "" {
		return width{}, fmt.Errorf("%w: empty width", ErrInvalidOption)
	}

	unit := def
	num := tok
	switch last := tok[len(tok)-1]; last {
	case 'q', 'o', 's', 'h', 'k':
		unit = widthUnit(last)
		num = tok[:len(tok)-1]
	}
	if unit == unitSlope && !allowSlope {
		return width{}, fmt.Errorf("%w: slope width %q on a non-shelving filter", ErrInvalidOption, tok)
	}

	v, err := parseNumber(num)
	if err != nil {
		return width{}, err
	}
	if v <= 0 {
		return width{}, fmt.Errorf("%w: width %q must be positive", ErrInvalidOption, tok)
	}

	return width{value: v, unit: unit}, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidOption, s)
	}

	return v, nil
}

// alpha returns the cookbook alpha for w at angular frequency w0. a is the
// linear shelf amplitude and only matters for slopes.
func (w width) alpha(freq, w0, a float64) (float64, error) {
	sw := math.Sin(w0)

	switch w.unit {
	case unitQ:
		return sw / (2 * w.value), nil
	case unitOctave:
		return sw * math.Sinh(math.Ln2/2*w.value*w0/sw), nil
	case unitHz:
		return sw / (2 * (freq / w.value)), nil
	case unitKHz:
		return sw / (2 * (freq / (w.value * 1000))), nil
	case unitSlope:
		arg := (a+1/a)*(1/w.value-1) + 2
		if arg < 0 {
			return 0, fmt.Errorf("%w: slope %g too steep for this gain", ErrInvalidOption, w.value)
		}
		return sw / 2 * math.Sqrt(arg), nil
	default:
		return 0, fmt.Errorf("%w: unknown width unit %q", ErrInvalidOption, w.unit)
	}
}
