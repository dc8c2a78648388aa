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

import "math/rand/v2"

// Random returns a color where each channel is chosen uniformly
// from 0 to 255.  If rng is nil, the global random number generator
// is used.
func Random(rng *rand.Rand) SRGB {
	var c SRGB
	for i := range c {
		if rng != nil {
			c[i] = uint8(rng.IntN(256))
		} else {
			c[i] = uint8(rand.IntN(256))
		}
	}
	return c
}
