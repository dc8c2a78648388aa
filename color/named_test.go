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
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/colornames"
)

func TestNames(t *testing.T) {
	want := []string{
		"aqua", "black", "blue", "fuchsia", "gray", "green", "lime", "maroon",
		"navy", "olive", "purple", "red", "silver", "teal", "white", "yellow",
	}
	if d := cmp.Diff(want, Names()); d != "" {
		t.Error(d)
	}
}

// TestNamedColornames checks the color table against the SVG color
// keywords, which include the 16 basic colors.
func TestNamedColornames(t *testing.T) {
	for _, name := range Names() {
		got, err := ParseNamed(name)
		if err != nil {
			t.Fatal(err)
		}
		ref, ok := colornames.Map[name]
		if !ok {
			t.Errorf("%s: missing from colornames", name)
			continue
		}
		want := SRGB{ref.R, ref.G, ref.B}
		if got != want {
			t.Errorf("%s: got %s, want %s", name, got.Hex(), want.Hex())
		}
	}
}

func TestParseNamed(t *testing.T) {
	red, err := ParseNamed("red")
	if err != nil {
		t.Fatal(err)
	}
	hexRed, err := ParseHex("#ff0000")
	if err != nil {
		t.Fatal(err)
	}
	if red != hexRed {
		t.Errorf("red = %v, #ff0000 = %v", red, hexRed)
	}

	white, err := ParseNamed("white")
	if err != nil {
		t.Fatal(err)
	}
	if white != (SRGB{255, 255, 255}) {
		t.Errorf("white = %v", white)
	}

	for _, name := range []string{"Navy", "NAVY", "nAvY", " navy\t"} {
		c, err := ParseNamed(name)
		if err != nil {
			t.Errorf("%q: %v", name, err)
		} else if c != (SRGB{0, 0, 128}) {
			t.Errorf("%q: got %v", name, c)
		}
	}
}

func TestParseNamedUnknown(t *testing.T) {
	for _, name := range []string{"", "orange", "grey", "redd", "#ff0000", "ffffff", "rgb(0,0,0)"} {
		c, err := ParseNamed(name)
		if !errors.Is(err, ErrUnknownName) {
			t.Errorf("%q: expected ErrUnknownName, got %v, %v", name, c, err)
		}
	}
}
