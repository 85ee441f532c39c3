// SPDX-License-Identifier: EPL-2.0

package preset

// Kind is the canonical filter kind of a FilterSpec.
type Kind int

const (
	Invalid Kind = iota
	Peak
	LowPass
	LowPassQ
	HighPass
	HighPassQ
	BandPass
	LowShelf
	LowShelfSlope
	HighShelf
	HighShelfSlope
	BandReject
	AllPass
	RawBiquad
	Gain
)

var kindNames = [...]string{
	Invalid:        "Invalid",
	Peak:           "Peak",
	LowPass:        "LowPass",
	LowPassQ:       "LowPassQ",
	HighPass:       "HighPass",
	HighPassQ:      "HighPassQ",
	BandPass:       "BandPass",
	LowShelf:       "LowShelf",
	LowShelfSlope:  "LowShelfSlope",
	HighShelf:      "HighShelf",
	HighShelfSlope: "HighShelfSlope",
	BandReject:     "BandReject",
	AllPass:        "AllPass",
	RawBiquad:      "RawBiquad",
	Gain:           "Gain",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Invalid"
	}

	return kindNames[k]
}

// IsShelf reports whether k is one of the shelving kinds.
func (k Kind) IsShelf() bool {
	switch k {
	case LowShelf, LowShelfSlope, HighShelf, HighShelfSlope:
		return true
	default:
		return false
	}
}

// codeTable maps Equalizer APO filter codes to kinds.
var codeTable = map[string]Kind{
	"PK":  Peak,
	"LP":  LowPass,
	"LPQ": LowPassQ,
	"HP":  HighPass,
	"HPQ": HighPassQ,
	"BP":  BandPass,
	"LS":  LowShelf,
	"LSC": LowShelfSlope,
	"HS":  HighShelf,
	"HSC": HighShelfSlope,
	"NO":  BandReject,
	"AP":  AllPass,
	"IIR": RawBiquad,
}

// KindForCode returns the kind selected by an Equalizer APO filter code.
func KindForCode(code string) (Kind, bool) {
	k, ok := codeTable[code]
	return k, ok
}

type argLayout int

const (
	layoutFreqWidthGain argLayout = iota + 1
	layoutFreqWidth
	layoutGainFreqWidth
	layoutCoefficients
)

// argRule describes how the arguments of a Filter line are ordered.
// defaultWidth is used when the line has neither Q nor BW; an empty
// defaultWidth with optionalWidth unset makes the width mandatory.
type argRule struct {
	layout        argLayout
	defaultWidth  string
	optionalWidth bool
}

var argRules = map[Kind]argRule{
	Peak:           {layout: layoutFreqWidthGain},
	LowPass:        {layout: layoutFreqWidth},
	LowPassQ:       {layout: layoutFreqWidth},
	HighPass:       {layout: layoutFreqWidth},
	HighPassQ:      {layout: layoutFreqWidth},
	BandPass:       {layout: layoutFreqWidth, defaultWidth: "0.7071q"},
	BandReject:     {layout: layoutFreqWidth, defaultWidth: "30q"},
	AllPass:        {layout: layoutFreqWidth},
	LowShelf:       {layout: layoutGainFreqWidth, optionalWidth: true},
	LowShelfSlope:  {layout: layoutGainFreqWidth, optionalWidth: true},
	HighShelf:      {layout: layoutGainFreqWidth, optionalWidth: true},
	HighShelfSlope: {layout: layoutGainFreqWidth, optionalWidth: true},
	RawBiquad:      {layout: layoutCoefficients},
}
