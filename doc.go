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

// Package wcag computes the relative luminance and contrast ratio of colors,
// as defined in the Web Content Accessibility Guidelines (WCAG) 2.0.
//
// Colors are represented by the [color.SRGB] type from the
// [seehuhn.de/go/wcag/color] package, which also provides parsers for
// hex strings, CSS rgb() notation and color names:
//
//	fg, err := color.ParseString("#336699")
//	if err != nil {
//		log.Fatal(err)
//	}
//	ratio := wcag.ContrastRatio(fg, color.White)
//	if !wcag.AA.Passes(ratio) {
//		// choose a different color
//	}
//
// The functions [Contrast] and [ContrastStrings] combine parsing and
// computation in one step.
//
// All functions in this package are pure and can be called concurrently.
//
// See https://www.w3.org/TR/2008/REC-WCAG20-20081211/#relativeluminancedef
// and https://www.w3.org/TR/2008/REC-WCAG20-20081211/#contrast-ratiodef
// for the definitions.
package wcag
