// swirlr - one-line spiral portraits from photographs
// Copyright (C) 2026  The swirlr authors
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

// Command swirlr converts a photograph into a one-line spiral portrait.
//
// Usage:
//
//	swirlr [flags] source
//
// The result is written as SVG to standard output, unless -o names an
// output file. PNG and PDF output always need -o. Every flag can also be
// set through an environment variable, for example SWIRLR_GROWTH_RATE for
// -growth-rate. A flag given on the command line takes precedence over its
// environment variable.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/sfomuseum/go-flags/flagset"
	"github.com/willdady/swirlr"
	"github.com/willdady/swirlr/imageload"
	"github.com/willdady/swirlr/pdfout"
	"github.com/willdady/swirlr/raster"
	"github.com/willdady/swirlr/svg"
)

const envPrefix = "SWIRLR"

type options struct {
	source string

	crop       swirlr.Crop
	color      string
	bgColor    string
	growthRate float64
	originX    float64
	originY    float64
	originXSet bool
	originYSet bool
	invert     bool
	size       int
	minGap     float64

	format string
	output string
	style  raster.Style
	scale  float64

	verbose bool
}

func newFlagSet(opts *options) *flag.FlagSet {
	fs := flagset.NewFlagSet("swirlr")
	fs.Var(&opts.crop, "crop", "spiral extent: contain or overflow")
	fs.StringVar(&opts.color, "color", "#000", "contour colour, #rgb or #rrggbb")
	fs.StringVar(&opts.bgColor, "bg-color", "", "background colour, transparent if empty")
	fs.Float64Var(&opts.growthRate, "growth-rate", swirlr.DefaultGrowthRate, "radial growth of the spiral per radian, > 0")
	fs.Float64Var(&opts.originX, "origin-x", 0, "x coordinate of the spiral centre (default: canvas centre)")
	fs.Float64Var(&opts.originY, "origin-y", 0, "y coordinate of the spiral centre (default: canvas centre)")
	fs.BoolVar(&opts.invert, "invert", false, "draw thin lines in dark regions")
	fs.IntVar(&opts.size, "size", swirlr.DefaultOutputSize, "side length of the working canvas in pixels")
	fs.Float64Var(&opts.minGap, "min-gap", swirlr.DefaultMinGap, "minimum distance between contour points")
	fs.StringVar(&opts.format, "format", "svg", "output format: svg, png or pdf")
	fs.StringVar(&opts.output, "o", "", "output file (svg defaults to standard output)")
	fs.Var(&opts.style, "style", "raster style: filled, outline or pairs")
	fs.Float64Var(&opts.scale, "scale", 1, "raster output scale factor")
	fs.BoolVar(&opts.verbose, "v", false, "log debug information")
	return fs
}

func main() {
	opts := &options{}
	fs := newFlagSet(opts)
	flagset.Parse(fs)

	if err := applyEnv(fs); err != nil {
		fmt.Fprintf(os.Stderr, "swirlr: %v\n", err)
		os.Exit(2)
	}
	if err := opts.finish(fs); err != nil {
		fmt.Fprintf(os.Stderr, "swirlr: %v\n", err)
		fs.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	swirlr.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(opts, os.Stdout); err != nil {
		swirlr.Logger().Error("conversion failed", "source", opts.source, "err", err)
		os.Exit(exitCode(err))
	}
}

// finish collects the positional argument and records which flags were
// given explicitly.
func (o *options) finish(fs *flag.FlagSet) error {
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: expected exactly one source image, got %d arguments", swirlr.ErrInvalidConfig, fs.NArg())
	}
	o.source = fs.Arg(0)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "origin-x":
			o.originXSet = true
		case "origin-y":
			o.originYSet = true
		}
	})
	return nil
}

// applyEnv sets flags from SWIRLR_* environment variables. Flags which
// were given on the command line keep their values.
func applyEnv(fs *flag.FlagSet) error {
	given := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		given[f.Name] = f.Value.String()
	})
	if err := flagset.SetFlagsFromEnvVars(fs, envPrefix); err != nil {
		return fmt.Errorf("%w: %v", swirlr.ErrInvalidConfig, err)
	}
	for name, value := range given {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("%w: %v", swirlr.ErrInvalidConfig, err)
		}
	}
	return nil
}

// exitCode maps an error from run to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, swirlr.ErrInvalidConfig):
		return 2
	default:
		return 1
	}
}

// config builds the walk configuration from the command line options.
func (o *options) config() swirlr.Config {
	cfg := swirlr.DefaultConfig()
	cfg.Crop = o.crop
	cfg.GrowthRate = o.growthRate
	cfg.Invert = o.invert
	cfg.OutputSize = float64(o.size)
	cfg.Origin = swirlr.Point{X: cfg.OutputSize / 2, Y: cfg.OutputSize / 2}
	if o.originXSet {
		cfg.Origin.X = o.originX
	}
	if o.originYSet {
		cfg.Origin.Y = o.originY
	}
	return cfg
}

// run performs one conversion. Everything is validated before the source
// image is opened.
func run(o *options, stdout io.Writer) error {
	fg, err := swirlr.ParseColor(o.color)
	if err != nil {
		return err
	}
	var bg *colorful.Color
	if o.bgColor != "" {
		c, err := swirlr.ParseColor(o.bgColor)
		if err != nil {
			return err
		}
		bg = &c
	}

	format := strings.ToLower(o.format)
	switch format {
	case "svg":
	case "png", "pdf":
		if o.output == "" {
			return fmt.Errorf("%w: %s output needs an output file (-o)", swirlr.ErrInvalidConfig, format)
		}
	default:
		return fmt.Errorf("%w: unknown format %q (want svg, png or pdf)", swirlr.ErrInvalidConfig, o.format)
	}
	if !(o.minGap > 0) {
		return fmt.Errorf("%w: min gap must be positive, got %g", swirlr.ErrInvalidConfig, o.minGap)
	}
	if !(o.scale > 0) || o.scale > raster.MaxScale {
		return fmt.Errorf("%w: scale must be in (0, %g], got %g", swirlr.ErrInvalidConfig, float64(raster.MaxScale), o.scale)
	}

	cfg := o.config()
	if err := cfg.Validate(); err != nil {
		return err
	}

	buf, err := imageload.Load(o.source, o.size)
	if err != nil {
		return err
	}
	c, err := swirlr.Generate(buf, cfg)
	if err != nil {
		return err
	}

	switch format {
	case "svg":
		err = writeSVG(o, c, stdout)
	case "png":
		err = writePNG(o, c, fg, bg)
	case "pdf":
		err = pdfout.Write(o.output, c.Path(o.minGap), c.Size, pdfout.Options{Color: fg, Background: bg})
	}
	if err != nil {
		return err
	}

	if o.output != "" {
		swirlr.Logger().Info("wrote output", "file", o.output, "format", format)
	}
	return nil
}

func writeSVG(o *options, c *swirlr.Contour, stdout io.Writer) error {
	doc := svg.New(o.size, o.size)
	if o.bgColor != "" {
		doc.Add(&svg.Rect{Width: o.size, Height: o.size, Fill: o.bgColor})
	}
	doc.Add(svg.NewPath(c.Path(o.minGap), o.color))

	if o.output == "" {
		_, err := doc.WriteTo(stdout)
		return err
	}

	f, err := os.Create(o.output)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writePNG(o *options, c *swirlr.Contour, fg colorful.Color, bg *colorful.Color) error {
	ro := raster.Options{
		Style:  o.style,
		Color:  swirlr.Opaque(fg),
		Scale:  o.scale,
		MinGap: o.minGap,
	}
	if bg != nil {
		ro.Background = swirlr.Opaque(*bg)
	}
	cv, err := raster.Render(c, ro)
	if err != nil {
		return err
	}
	return cv.SavePNG(o.output)
}
