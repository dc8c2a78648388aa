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

// Package color converts between the different ways colors are written
// on the web and the canonical 8-bit sRGB representation.
//
// Every color is normalized to an [SRGB] value, which holds three channels
// in the range 0 to 255.  Colors can be given in one of the following forms:
//   - [Hex]: hexadecimal strings like "#336699", "#369", "0x336699" or "369"
//   - [CSS]: CSS functional notation like "rgb(51, 102, 153)" or "rgb(100%,0%,0%)"
//   - [Name]: one of the 16 basic color keywords, e.g. "navy" (see [Names])
//   - [Triple]: three integers, which are checked to be in range
//
// The function [Parse] accepts any of these forms.  [ParseString] can be used
// for strings where the form is not known in advance.
//
// All parse failures are reported as [*ParseError].  The kind of failure
// can be checked using [errors.Is] with one of [ErrInvalidHex],
// [ErrInvalidFormat], [ErrUnknownName] or [ErrChannelOutOfRange].
package color
