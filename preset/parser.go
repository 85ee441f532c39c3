// SPDX-License-Identifier: EPL-2.0

package preset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Option configures Parse and ParseReader.
type Option func(*parser)

// WithWarnings registers fn to receive non-fatal remarks, such as a line
// carrying both Q and BW Oct.
func WithWarnings(fn func(Warning)) Option {
	return func(p *parser) {
		p.warn = fn
	}
}

type parser struct {
	warn func(Warning)
}

// Parse reads the preset at path and returns its filter stages in file
// order. Any malformed line fails the whole preset.
func Parse(path string, opts ...Option) ([]FilterSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Err: ErrIO, Cause: err}
	}
	defer f.Close()

	return ParseReader(f, opts...)
}

// ParseReader is Parse for an already opened preset.
func ParseReader(r io.Reader, opts ...Option) ([]FilterSpec, error) {
	p := &parser{}
	for _, opt := range opts {
		opt(p)
	}

	var specs []FilterSpec
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		spec, ok, err := p.parseLine(sc.Text(), lineNo)
		if err != nil {
			return nil, err
		}
		if ok {
			specs = append(specs, spec)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Line: lineNo + 1, Err: ErrIO, Cause: err}
	}

	return specs, nil
}

// ParseLine parses a single directive. ok is false for blank and comment
// lines, which carry no filter.
func ParseLine(line string) (spec FilterSpec, ok bool, err error) {
	p := &parser{}
	return p.parseLine(line, 1)
}

func (p *parser) parseLine(raw string, lineNo int) (FilterSpec, bool, error) {
	line := strings.TrimRight(raw, "\r")
	if strings.TrimLeft(line, " \t") == "" || strings.HasPrefix(line, "#") {
		return FilterSpec{}, false, nil
	}

	fail := func(field string, err error) (FilterSpec, bool, error) {
		return FilterSpec{}, false, &ParseError{Line: lineNo, Text: line, Field: field, Err: err}
	}

	switch {
	case strings.HasPrefix(line, "Filter"):
		spec, field, err := p.parseFilter(tokenize(line), lineNo)
		if err != nil {
			return fail(field, err)
		}
		return spec, true, nil

	case strings.HasPrefix(line, "Preamp"):
		v, ok := tokenize(line).value("Preamp:")
		if !ok {
			return fail("Preamp:", ErrMissingField)
		}
		return FilterSpec{Kind: Gain, Args: []string{v}}, true, nil

	default:
		return fail(untilSpace(line+" ", 0), ErrUnknownDirective)
	}
}

// parseFilter returns the FilterSpec of a Filter line, or the name of the
// offending field with a sentinel error.
func (p *parser) parseFilter(f fields, lineNo int) (FilterSpec, string, error) {
	code, ok := f.value("ON")
	if !ok {
		return FilterSpec{}, "ON", ErrMissingField
	}
	kind, ok := KindForCode(code)
	if !ok {
		return FilterSpec{}, code, ErrUnknownFilterKind
	}
	rule := argRules[kind]

	if rule.layout == layoutCoefficients {
		args, field, err := coefficients(f)
		if err != nil {
			return FilterSpec{}, field, err
		}
		return FilterSpec{Kind: kind, Args: args}, "", nil
	}

	freq, ok := f.value("Fc")
	if !ok {
		return FilterSpec{}, "Fc", ErrMissingField
	}

	width, field, err := p.width(f, lineNo)
	if err != nil {
		return FilterSpec{}, field, err
	}
	if width == "" {
		switch {
		case rule.defaultWidth != "":
			width = rule.defaultWidth
		case !rule.optionalWidth:
			return FilterSpec{}, "Q", ErrMissingField
		}
	}

	var args []string
	switch rule.layout {
	case layoutFreqWidthGain:
		gain, ok := f.value("Gain")
		if !ok {
			return FilterSpec{}, "Gain", ErrMissingField
		}
		args = []string{freq, width, gain}

	case layoutFreqWidth:
		args = []string{freq, width}

	case layoutGainFreqWidth:
		gain, ok := f.value("Gain")
		if !ok {
			return FilterSpec{}, "Gain", ErrMissingField
		}
		args = []string{gain, freq}
		if width != "" {
			args = append(args, width)
		}
	}

	return FilterSpec{Kind: kind, Args: args}, "", nil
}

// width returns the Q-or-bandwidth token of a line, "" when the line has
// neither. BW Oct takes precedence over Q.
func (p *parser) width(f fields, lineNo int) (string, string, error) {
	hasBW := f.has("BW", "Oct")
	hasQ := f.has("Q")

	if hasBW && hasQ && p.warn != nil {
		p.warn(Warning{
			Line:    lineNo,
			Message: "both Q and BW Oct are set; using BW Oct",
		})
	}

	switch {
	case hasBW:
		bw, ok := f.value("BW", "Oct")
		if !ok {
			return "", "BW Oct", ErrMissingField
		}
		return bw + "o", "", nil
	case hasQ:
		q, ok := f.value("Q")
		if !ok {
			return "", "Q", ErrMissingField
		}
		return q + "q", "", nil
	default:
		return "", "", nil
	}
}

func coefficients(f fields) ([]string, string, error) {
	order, ok := f.value("Order")
	if !ok {
		return nil, "Order", ErrMissingField
	}
	if order != "2" {
		return nil, order, ErrUnsupportedOrder
	}
	if !f.has("Coefficients") {
		return nil, "Coefficients", ErrMissingField
	}

	coeffs := f.following("Coefficients")
	switch {
	case len(coeffs) < 6:
		return nil, fmt.Sprintf("coefficient %d", len(coeffs)+1), ErrMissingField
	case len(coeffs) > 6:
		return nil, coeffs[6], ErrUnexpectedToken
	}

	args := make([]string, 6)
	copy(args, coeffs)

	return args, "", nil
}
