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
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ParseCSS parses a color given in CSS functional notation.
//
// The accepted form is "rgb(v1, v2, v3)".  The values can be separated by
// commas or by white space.  Each value is either an integer in the range
// 0 to 255, or a percentage "N%".  A percentage is converted to a channel
// value by rounding N*2.55 to the nearest integer, with halves rounded away
// from zero.
//
// A channel value outside the range 0 to 255 gives an error which matches
// both [ErrInvalidFormat] and [ErrChannelOutOfRange].
func ParseCSS(s string) (SRGB, error) {
	fail := func(err error) (SRGB, error) {
		return SRGB{}, &ParseError{Input: s, Err: err}
	}

	body := strings.TrimSpace(s)
	if len(body) < 4 || !strings.EqualFold(body[:4], "rgb(") || !strings.HasSuffix(body, ")") {
		return fail(ErrInvalidFormat)
	}
	body = body[4 : len(body)-1]

	var tokens []string
	if strings.Contains(body, ",") {
		tokens = strings.Split(body, ",")
		for i := range tokens {
			tokens[i] = strings.TrimSpace(tokens[i])
		}
	} else {
		tokens = strings.Fields(body)
	}
	if len(tokens) != 3 {
		return fail(fmt.Errorf("%w: expected 3 values, found %d", ErrInvalidFormat, len(tokens)))
	}

	var c SRGB
	for i, tok := range tokens {
		v, err := cssChannel(tok)
		if err != nil {
			return fail(err)
		}
		if v < 0 || v > 255 {
			return fail(fmt.Errorf("%w: %w: %s", ErrInvalidFormat, ErrChannelOutOfRange, tok))
		}
		c[i] = uint8(v)
	}
	return c, nil
}

// cssChannel converts a single rgb() argument to a channel value.
// The result is an integer, but is not range checked.  Huge values
// come back as infinities.
func cssChannel(tok string) (float64, error) {
	m := cssNumber.FindStringSubmatch(tok)
	if m == nil {
		return 0, fmt.Errorf("%w: invalid value %q", ErrInvalidFormat, tok)
	}
	isPercent := m[2] != ""
	if !isPercent && strings.Contains(m[1], ".") {
		return 0, fmt.Errorf("%w: non-integer value %q", ErrInvalidFormat, tok)
	}

	x, err := strconv.ParseFloat(m[1], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: invalid value %q", ErrInvalidFormat, tok)
	}
	if isPercent {
		x = math.Round(x * 2.55)
	}
	return x, nil
}

var cssNumber = regexp.MustCompile(`^([+-]?(?:\d+(?:\.\d*)?|\.\d+))(%?)$`)
