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
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// ParseNamed returns the color with the given name.
// The name must be one of the 16 basic color keywords listed by [Names].
// Case is ignored.
func ParseNamed(name string) (SRGB, error) {
	hex, ok := lookupName(name)
	if !ok {
		return SRGB{}, &ParseError{Input: name, Err: ErrUnknownName}
	}
	return ParseHex(hex)
}

// Names returns the supported color names in alphabetical order.
func Names() []string {
	return slices.Sorted(maps.Keys(namedColors))
}

func lookupName(name string) (string, bool) {
	// Casers are not safe for concurrent use.
	key := cases.Fold().String(strings.TrimSpace(name))
	hex, ok := namedColors[key]
	return hex, ok
}

// namedColors maps the basic color keywords from HTML 4 and CSS 1
// to their hex values.  The map is never modified.
var namedColors = map[string]string{
	"aqua":    "#00ffff",
	"black":   "#000000",
	"blue":    "#0000ff",
	"fuchsia": "#ff00ff",
	"gray":    "#808080",
	"green":   "#008000",
	"lime":    "#00ff00",
	"maroon":  "#800000",
	"navy":    "#000080",
	"olive":   "#808000",
	"purple":  "#800080",
	"red":     "#ff0000",
	"silver":  "#c0c0c0",
	"teal":    "#008080",
	"white":   "#ffffff",
	"yellow":  "#ffff00",
}
