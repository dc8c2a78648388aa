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
	"strconv"

	"golang.org/x/exp/constraints"
)

// SRGB is a color in the sRGB color space, using 8 bits per channel.
// The channels are stored in the order red, green, blue.
//
// Since the channels are bytes, every value of this type is a valid color.
type SRGB [3]uint8

// Some frequently used colors.
var (
	Black = SRGB{0, 0, 0}
	White = SRGB{255, 255, 255}
)

// R returns the red channel.
func (c SRGB) R() uint8 { return c[0] }

// G returns the green channel.
func (c SRGB) G() uint8 { return c[1] }

// B returns the blue channel.
func (c SRGB) B() uint8 { return c[2] }

// Hex returns the color in the form "#rrggbb", using lower case digits.
func (c SRGB) Hex() string {
	buf := make([]byte, 1, 7)
	buf[0] = '#'
	for _, x := range c {
		buf = append(buf, hexDigits[x>>4], hexDigits[x&15])
	}
	return string(buf)
}

// String returns the color in CSS functional notation.
func (c SRGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c[0], c[1], c[2])
}

// RGBA implements the [image/color.Color] interface.
// The color is fully opaque.
func (c SRGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c[0]) * 0x101
	g = uint32(c[1]) * 0x101
	b = uint32(c[2]) * 0x101
	return r, g, b, 0xffff
}

// ParseTriple returns the color with the given channel values.
// Each value must be in the range 0 to 255.
func ParseTriple(r, g, b int) (SRGB, error) {
	return FromInts(r, g, b)
}

// FromInts is like [ParseTriple], but accepts any integer type.
// Values are range checked before they are narrowed, so that
// large values are rejected rather than truncated.
func FromInts[T constraints.Integer](r, g, b T) (SRGB, error) {
	var c SRGB
	for i, x := range [3]T{r, g, b} {
		if x < 0 || uint64(x) > 255 {
			return SRGB{}, &ParseError{
				Input: formatTriple(r, g, b),
				Err:   fmt.Errorf("%w: channel %d is %d", ErrChannelOutOfRange, i, x),
			}
		}
		c[i] = uint8(x)
	}
	return c, nil
}

func formatTriple[T constraints.Integer](r, g, b T) string {
	return "(" + formatInt(r) + ", " + formatInt(g) + ", " + formatInt(b) + ")"
}

func formatInt[T constraints.Integer](x T) string {
	if x < 0 {
		return strconv.FormatInt(int64(x), 10)
	}
	return strconv.FormatUint(uint64(x), 10)
}

const hexDigits = "0123456789abcdef"
