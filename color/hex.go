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
	"strings"
)

// ParseHex parses a color given as a hexadecimal string.
//
// The string may start with "#" or "0x", or can consist of hex digits only.
// Both the 6-digit form "rrggbb" and the 3-digit shorthand "rgb" are
// supported.  In the shorthand form, every digit is doubled, so that
// "03f" is the same as "0033ff".  Upper and lower case digits are accepted.
func ParseHex(s string) (SRGB, error) {
	body := s
	switch {
	case strings.HasPrefix(body, "0x"), strings.HasPrefix(body, "0X"):
		body = body[2:]
	case strings.HasPrefix(body, "#"):
		body = body[1:]
	}

	if len(body) == 3 {
		body = string([]byte{
			body[0], body[0],
			body[1], body[1],
			body[2], body[2],
		})
	}

	if len(body) != 6 {
		return SRGB{}, &ParseError{Input: s, Err: ErrInvalidHex}
	}

	var c SRGB
	for i := range c {
		hi, ok1 := hexValue(body[2*i])
		lo, ok2 := hexValue(body[2*i+1])
		if !ok1 || !ok2 {
			return SRGB{}, &ParseError{Input: s, Err: ErrInvalidHex}
		}
		c[i] = hi<<4 | lo
	}
	return c, nil
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
