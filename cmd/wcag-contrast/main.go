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

// Wcag-contrast prints the relative luminance of colors and the WCAG
// contrast ratio between them.
//
// Usage:
//
//	wcag-contrast [options] color [color]
//
// With one color, the luminance is shown together with the text color
// (black or white) which is most readable on top of it.  With two colors,
// the contrast ratio is shown and checked against all WCAG levels.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/wcag"
	"seehuhn.de/go/wcag/color"
	"seehuhn.de/go/wcag/internal/float"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with the given arguments and returns the
// exit status.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("wcag-contrast", flag.ContinueOnError)
	flags.SetOutput(stderr)
	levelName := flags.String("level", "", "only check the given level (AA, AA-large, AAA, AAA-large)")
	swatch := flags.String("swatch", "auto", "show color swatches (auto, always, never)")
	listNames := flags.Bool("names", false, "list the supported color names and exit")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %s [options] color [color]\n", flags.Name())
		flags.PrintDefaults()
	}
	err := flags.Parse(args)
	if err == flag.ErrHelp {
		return 0
	} else if err != nil {
		return 1
	}

	if *listNames {
		for _, name := range color.Names() {
			c, _ := color.ParseNamed(name)
			fmt.Fprintf(stdout, "%-8s %s\n", name, c.Hex())
		}
		return 0
	}

	if flags.NArg() < 1 || flags.NArg() > 2 {
		flags.Usage()
		return 1
	}

	levels := wcag.Levels
	if *levelName != "" {
		l, err := wcag.ParseLevel(*levelName)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		levels = []wcag.Level{l}
	}

	var useSwatch bool
	switch *swatch {
	case "auto":
		if f, ok := stdout.(*os.File); ok {
			useSwatch = term.IsTerminal(int(f.Fd()))
		}
	case "always":
		useSwatch = true
	case "never":
		useSwatch = false
	default:
		fmt.Fprintf(stderr, "Error: invalid value %q for -swatch\n", *swatch)
		return 1
	}

	colors := make([]color.SRGB, flags.NArg())
	for i, arg := range flags.Args() {
		c, err := color.ParseString(arg)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		colors[i] = c
	}

	p := &printer{w: stdout, swatch: useSwatch}
	if len(colors) == 1 {
		p.single(colors[0])
	} else {
		p.pair(colors[0], colors[1], levels)
	}
	return 0
}

type printer struct {
	w      io.Writer
	swatch bool
}

func (p *printer) single(c color.SRGB) {
	p.describe("color", c)
	text := wcag.TextColor(c)
	fmt.Fprintf(p.w, "best text color: %s (%s)\n",
		text.Hex(), float.Ratio(wcag.ContrastRatio(text, c)))
	if p.swatch {
		fmt.Fprintln(p.w, p.sample(text, c))
	}
}

func (p *printer) pair(fg, bg color.SRGB, levels []wcag.Level) {
	p.describe("foreground", fg)
	p.describe("background", bg)

	ratio := wcag.ContrastRatio(fg, bg)
	fmt.Fprintf(p.w, "contrast ratio: %s\n", float.Ratio(ratio))
	if p.swatch {
		fmt.Fprintln(p.w, p.sample(fg, bg))
	}
	for _, l := range levels {
		verdict := "fail"
		if l.Passes(ratio) {
			verdict = "pass"
		}
		fmt.Fprintf(p.w, "  %-9s %-7s %s\n", l, float.Ratio(l.MinRatio()), verdict)
	}
}

func (p *printer) describe(label string, c color.SRGB) {
	block := ""
	if p.swatch {
		block = " " + p.block(c)
	}
	fmt.Fprintf(p.w, "%-11s %s %-20s luminance %.4f%s\n",
		label+":", c.Hex(), c, wcag.RelativeLuminance(c), block)
}

// block returns a small rectangle of the given color, using 24-bit
// ANSI escape sequences.
func (p *printer) block(c color.SRGB) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm    \x1b[0m", c[0], c[1], c[2])
}

// sample returns example text in color fg on background bg.
func (p *printer) sample(fg, bg color.SRGB) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm The quick brown fox \x1b[0m",
		fg[0], fg[1], fg[2], bg[0], bg[1], bg[2])
}
