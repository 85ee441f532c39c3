// SPDX-License-Identifier: EPL-2.0

package preset

import "strings"

// FilterSpec is one requested filter stage. Args are never empty for
// non-Gain kinds; a RawBiquad spec always has six.
type FilterSpec struct {
	Kind Kind
	Args []string
}

func (s FilterSpec) String() string {
	return s.Kind.String() + "(" + strings.Join(s.Args, " ") + ")"
}

// Equal reports whether s and o describe the same stage.
func (s FilterSpec) Equal(o FilterSpec) bool {
	if s.Kind != o.Kind || len(s.Args) != len(o.Args) {
		return false
	}
	for i := range s.Args {
		if s.Args[i] != o.Args[i] {
			return false
		}
	}

	return true
}
