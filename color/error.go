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
	"strconv"
)

// These errors describe the different ways a color can fail to parse.
// Use [errors.Is] to test a returned error against them.
var (
	ErrInvalidHex        = errors.New("invalid hex color")
	ErrInvalidFormat     = errors.New("malformed rgb() color")
	ErrUnknownName       = errors.New("unknown color name")
	ErrChannelOutOfRange = errors.New("channel value out of range")
)

// ParseError is returned when a color cannot be parsed.
type ParseError struct {
	// Input is the text which failed to parse.
	Input string

	// Err describes the problem.  It wraps one or more of the
	// ErrXXX values defined in this package.
	Err error
}

func (err *ParseError) Error() string {
	msg := "cannot parse color " + strconv.Quote(err.Input)
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *ParseError) Unwrap() error {
	return err.Err
}
