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

package color

import (
	"fmt"
	"strings"
)

// Raw is a color which has not been parsed yet.
//
// The following types implement this interface:
//   - [Hex]
//   - [CSS]
//   - [Name]
//   - [Triple]
type Raw interface {
	isRaw()
}

// Hex is a color given as a hexadecimal string.  See [ParseHex].
type Hex string

// CSS is a color given in CSS functional notation.  See [ParseCSS].
type CSS string

// Name is a color given by name.  See [ParseNamed].
type Name string

// Triple is a color given by three integer channel values.
// See [ParseTriple].
type Triple [3]int

func (Hex) isRaw()    {}
func (CSS) isRaw()    {}
func (Name) isRaw()   {}
func (Triple) isRaw() {}

// Parse converts a raw color to sRGB.
func Parse(raw Raw) (SRGB, error) {
	switch raw := raw.(type) {
	case Hex:
		return ParseHex(string(raw))
	case CSS:
		return ParseCSS(string(raw))
	case Name:
		return ParseNamed(string(raw))
	case Triple:
		return ParseTriple(raw[0], raw[1], raw[2])
	case nil:
		return SRGB{}, &ParseError{Err: fmt.Errorf("%w: no color given", ErrInvalidFormat)}
	default:
		return SRGB{}, &ParseError{Err: fmt.Errorf("%w: unsupported color type %T", ErrInvalidFormat, raw)}
	}
}

// Classify determines which form of color a string is written in.
// Leading and trailing white space is removed first.
//
// Strings starting with "#" are hex colors, strings starting with "rgb" use
// CSS functional notation.  Otherwise, if the string is a known color name,
// it is treated as a name.  Everything else is treated as a hex color
// without prefix, e.g. "ffffff" or "0xffffff".
func Classify(s string) Raw {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return Hex(s)
	case len(s) >= 3 && strings.EqualFold(s[:3], "rgb"):
		return CSS(s)
	}
	if _, ok := lookupName(s); ok {
		return Name(s)
	}
	return Hex(s)
}

// ParseString parses a color given as a string in any of the supported
// forms.  This is the same as Parse(Classify(s)).
func ParseString(s string) (SRGB, error) {
	return Parse(Classify(s))
}
