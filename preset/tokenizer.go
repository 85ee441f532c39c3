// SPDX-License-Identifier: EPL-2.0

package preset

import "strings"

// untilSpace returns line[start:] up to, not including, the next ASCII
// space. It returns "" when no space follows start.
func untilSpace(line string, start int) string {
	if start >= len(line) {
		return ""
	}
	i := strings.IndexByte(line[start:], ' ')
	if i < 0 {
		return ""
	}

	return line[start : start+i]
}

// toEnd returns line[start:], or "" when start is past the end.
func toEnd(line string, start int) string {
	if start >= len(line) {
		return ""
	}

	return line[start:]
}

// fields is a line split on ASCII spaces. Tabs and other whitespace stay
// inside tokens.
type fields []string

func tokenize(line string) fields {
	var toks fields
	pos := 0
	for pos < len(line) {
		if line[pos] == ' ' {
			pos++
			continue
		}
		tok := untilSpace(line, pos)
		if tok == "" {
			tok = toEnd(line, pos)
		}
		toks = append(toks, tok)
		pos += len(tok)
	}

	return toks
}

// find returns the index just past the first run of tokens equal to
// markers, or -1.
func (f fields) find(markers ...string) int {
outer:
	for i := 0; i+len(markers) <= len(f); i++ {
		for j, m := range markers {
			if f[i+j] != m {
				continue outer
			}
		}
		return i + len(markers)
	}

	return -1
}

func (f fields) has(markers ...string) bool {
	return f.find(markers...) >= 0
}

// keywords are markers and unit words; none of them is ever a value.
var keywords = map[string]bool{
	"ON": true, "Fc": true, "Hz": true, "Gain": true, "dB": true,
	"Q": true, "BW": true, "Oct": true, "Order": true, "Coefficients": true,
}

// value returns the token following markers. ok is false when the markers
// are absent or the next token is missing or a keyword, as in "Fc Hz".
func (f fields) value(markers ...string) (string, bool) {
	i := f.find(markers...)
	if i < 0 || i >= len(f) || keywords[f[i]] {
		return "", false
	}

	return f[i], true
}

// following returns every token after markers.
func (f fields) following(markers ...string) []string {
	i := f.find(markers...)
	if i < 0 {
		return nil
	}

	return f[i:]
}
