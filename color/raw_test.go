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
)

// The following types implement the Raw interface.
var (
	_ Raw = Hex("")
	_ Raw = CSS("")
	_ Raw = Name("")
	_ Raw = Triple{}
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   Raw
		want SRGB
	}{
		{Hex("#336699"), SRGB{51, 102, 153}},
		{Hex("369"), SRGB{51, 102, 153}},
		{CSS("rgb(51,102,153)"), SRGB{51, 102, 153}},
		{CSS("rgb(20%,40%,60%)"), SRGB{51, 102, 153}},
		{Name("teal"), SRGB{0, 128, 128}},
		{Triple{51, 102, 153}, SRGB{51, 102, 153}},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("%#v: unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%#v: got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   Raw
		kind error
	}{
		{Hex("#12"), ErrInvalidHex},
		{Hex("red"), ErrInvalidHex},
		{CSS("rgb(1,2)"), ErrInvalidFormat},
		{CSS("rgb(1,2,300)"), ErrChannelOutOfRange},
		{Name("ffffff"), ErrUnknownName},
		{Triple{256, 0, 0}, ErrChannelOutOfRange},
		{Triple{-1, 0, 0}, ErrChannelOutOfRange},
		{nil, ErrInvalidFormat},
		{wrappedRaw{Hex("#fff")}, ErrInvalidFormat},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if !errors.Is(err, c.kind) {
			t.Errorf("%#v: expected %v, got %v, %v", c.in, c.kind, got, err)
		}
	}
}

// wrappedRaw satisfies Raw by embedding, but is none of the known forms.
type wrappedRaw struct {
	Raw
}

func TestParseUnsupported(t *testing.T) {
	_, err := Parse(wrappedRaw{Name("red")})
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	want := `cannot parse color "": malformed rgb() color: unsupported color type color.wrappedRaw`
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		in   string
		want Raw
	}{
		{"#fff", Hex("#fff")},
		{"#red", Hex("#red")},
		{"rgb(1,2,3)", CSS("rgb(1,2,3)")},
		{"RGB(1,2,3)", CSS("RGB(1,2,3)")},
		{"rgbx", CSS("rgbx")},
		{"red", Name("red")},
		{"Red", Name("Red")},
		{"ffffff", Hex("ffffff")},
		{"0xffffff", Hex("0xffffff")},
		{"add", Hex("add")},
		{"orange", Hex("orange")},
		{"", Hex("")},
		{" rgb(1,2,3)", CSS("rgb(1,2,3)")},
		{"\t#fff\n", Hex("#fff")},
		{" red ", Name("red")},
		{" ffffff", Hex("ffffff")},
		{"   ", Hex("")},
	}
	for _, c := range cases {
		got := Classify(c.in)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%q: %s", c.in, d)
		}
	}
}

func TestParseString(t *testing.T) {
	cases := []struct {
		in   string
		want SRGB
	}{
		{"#ffffff", White},
		{"ffffff", White},
		{"0xffffff", White},
		{"fff", White},
		{"white", White},
		{"WHITE", White},
		{"rgb(255,255,255)", White},
		{"rgb(100%,100%,100%)", White},
		{"#03f", SRGB{0, 51, 255}},
		{"red", SRGB{255, 0, 0}},
		{" rgb(1,2,3)", SRGB{1, 2, 3}},
		{" #ffffff\n", White},
		{"\tnavy ", SRGB{0, 0, 128}},
	}
	for _, c := range cases {
		got, err := ParseString(c.in)
		if err != nil {
			t.Errorf("%q: unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseStringErrors(t *testing.T) {
	cases := []struct {
		in   string
		kind error
	}{
		{"#12", ErrInvalidHex},
		{"#gggggg", ErrInvalidHex},
		{"orange", ErrInvalidHex}, // neither a known name nor hex digits
		{"", ErrInvalidHex},
		{"rgb(1,2)", ErrInvalidFormat},
		{"rgb(256,0,0)", ErrChannelOutOfRange},
	}
	for _, c := range cases {
		got, err := ParseString(c.in)
		if !errors.Is(err, c.kind) {
			t.Errorf("%q: expected %v, got %v, %v", c.in, c.kind, got, err)
		}
	}
}

func FuzzParseString(f *testing.F) {
	f.Add("#336699")
	f.Add("rgb(20%, 40%, 60%)")
	f.Add("rgb(1 2 3)")
	f.Add("navy")
	f.Add("0x03f")
	f.Add("rgb(1,,2)")

	f.Fuzz(func(t *testing.T, s string) {
		c, err := ParseString(s)
		if err != nil {
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("%q: error %v is not a *ParseError", s, err)
			}
			if c != (SRGB{}) {
				t.Fatalf("%q: non-zero color %v on error", s, c)
			}
			return
		}

		c2, err := ParseString(c.Hex())
		if err != nil {
			t.Fatal(err)
		}
		if c2 != c {
			t.Fatalf("%q: round trip gave %v, want %v", s, c2, c)
		}
		c3, err := ParseString(c.String())
		if err != nil {
			t.Fatal(err)
		}
		if c3 != c {
			t.Fatalf("%q: CSS round trip gave %v, want %v", s, c3, c)
		}
	})
}
