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

// Package float formats numbers for display.
package float

import (
	"math"
	"regexp"
	"strconv"
)

// Format formats x with at most the given number of digits after the
// decimal point.  Trailing zeros are removed.
func Format(x float64, precision int) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	if out == "-0" {
		out = "0"
	}
	return out
}

// Ratio formats a contrast ratio in the form "4.5:1".
//
// The value is truncated to two decimal places, never rounded up,
// so that a ratio just below a threshold is not shown as meeting it.
func Ratio(r float64) string {
	return Format(math.Floor(r*100)/100, 2) + ":1"
}

var (
	tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
)
