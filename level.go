// seehuhn.de/go/wcag - color contrast computations for web accessibility
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package wcag

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/wcag/color"
)

// Level is a WCAG 2.0 conformance level for text contrast.
type Level int

// These are the conformance levels defined in WCAG 2.0, success criteria
// 1.4.3 (AA) and 1.4.6 (AAA).  Large text is at least 18 point, or 14 point
// bold.
const (
	AA Level = iota
	AALarge
	AAA
	AAALarge
)

// MinRatio returns the minimum contrast ratio required by the level.
// For values which are not one of the defined levels, +Inf is returned,
// so that no color pair can meet them.
func (l Level) MinRatio() float64 {
	switch l {
	case AA:
		return 4.5
	case AALarge:
		return 3
	case AAA:
		return 7
	case AAALarge:
		return 4.5
	default:
		return math.Inf(1)
	}
}

// Passes reports whether a contrast ratio r is sufficient for the level.
// The threshold is inclusive.
func (l Level) Passes(r float64) bool {
	return r >= l.MinRatio()
}

func (l Level) String() string {
	switch l {
	case AA:
		return "AA"
	case AALarge:
		return "AA-large"
	case AAA:
		return "AAA"
	case AAALarge:
		return "AAA-large"
	default:
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
}

// Levels lists all conformance levels, from the least to the most strict
// requirement.
var Levels = []Level{AALarge, AA, AAALarge, AAA}

var errUnknownLevel = errors.New("unknown conformance level")

// ParseLevel converts the string representation of a level back into a
// Level.  Case is ignored.
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w %q", errUnknownLevel, s)
}

// Meets reports whether the contrast between fg and bg is sufficient for
// the given level.
func Meets(fg, bg color.SRGB, l Level) bool {
	return l.Passes(ContrastRatio(fg, bg))
}

// TextColor returns black or white, whichever gives the higher contrast
// when used for text on the background bg.  If both are equal, black is
// chosen.
func TextColor(bg color.SRGB) color.SRGB {
	lum := RelativeLuminance(bg)
	onBlack := ratio(lum, RelativeLuminance(color.Black))
	onWhite := ratio(lum, RelativeLuminance(color.White))
	if onWhite > onBlack {
		return color.White
	}
	return color.Black
}
