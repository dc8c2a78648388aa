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
	"fmt"
	"math"

	"seehuhn.de/go/wcag/color"
)

// linearRGB holds the linear light intensities of the three channels of a
// color, each in the range [0, 1].
type linearRGB [3]float64

// linearize undoes the sRGB gamma encoding of each channel.
//
// The threshold 0.03928 is the value given in WCAG 2.0.  (The sRGB standard
// uses 0.04045, but for 8-bit values both thresholds give the same result.)
func linearize(c color.SRGB) linearRGB {
	var lin linearRGB
	for i, x := range c {
		lin[i] = gammaInv(float64(x) / 255)
	}
	return lin
}

func gammaInv(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the relative luminance of c.
// The result is in the range from 0 (black) to 1 (white).
func RelativeLuminance(c color.SRGB) float64 {
	lin := linearize(c)
	return 0.2126*lin[0] + 0.7152*lin[1] + 0.0722*lin[2]
}

// ContrastRatio returns the contrast ratio between a and b.
//
// The result is in the range from 1 (no contrast) to 21 (black on white).
// The order of the arguments does not matter.
func ContrastRatio(a, b color.SRGB) float64 {
	return ratio(RelativeLuminance(a), RelativeLuminance(b))
}

func ratio(la, lb float64) float64 {
	return (math.Max(la, lb) + 0.05) / (math.Min(la, lb) + 0.05)
}

// Luminance parses a color and returns its relative luminance.
func Luminance(raw color.Raw) (float64, error) {
	c, err := color.Parse(raw)
	if err != nil {
		return 0, err
	}
	return RelativeLuminance(c), nil
}

// Contrast parses two colors and returns their contrast ratio.
// Parse errors are returned together with the position of the
// offending argument.
func Contrast(a, b color.Raw) (float64, error) {
	ca, err := color.Parse(a)
	if err != nil {
		return 0, fmt.Errorf("first color: %w", err)
	}
	cb, err := color.Parse(b)
	if err != nil {
		return 0, fmt.Errorf("second color: %w", err)
	}
	return ContrastRatio(ca, cb), nil
}

// ContrastStrings is like [Contrast], but accepts colors in any of the
// string forms understood by [color.ParseString].
func ContrastStrings(a, b string) (float64, error) {
	return Contrast(color.Classify(a), color.Classify(b))
}
