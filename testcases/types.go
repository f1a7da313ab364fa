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

package testcases

import (
	"image"
	"image/color"
	"math"

	"github.com/willdady/swirlr"
	"honnef.co/go/curve"
)

// TestCase defines a single conversion scene: a synthetic source image
// together with the configuration used to trace it.
type TestCase struct {
	Name   string        // lowercase a-z and _ only
	Size   int           // side length of the square canvas in pixels
	Source Source        // the image content
	Config swirlr.Config // OutputSize must equal Size

	// Gap is the range every inner/outer pair distance must fall into.
	Gap [2]float64
}

// Image renders the source of the test case into a new buffer.
func (tc TestCase) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, tc.Size, tc.Size))
	for y := range tc.Size {
		for x := range tc.Size {
			img.SetRGBA(x, y, tc.Source.At(x, y, tc.Size))
		}
	}
	return img
}

// Source describes the content of a synthetic image.
type Source interface {
	// At returns the colour of pixel (x, y) of a size×size image.
	At(x, y, size int) color.RGBA
	isSource()
}

// Uniform is a single colour.
type Uniform struct {
	Color color.RGBA
}

func (s Uniform) At(x, y, size int) color.RGBA { return s.Color }

func (Uniform) isSource() {}

// LinearGradient blends from From at the left edge to To at the right edge.
type LinearGradient struct {
	From, To color.RGBA
}

func (s LinearGradient) At(x, y, size int) color.RGBA {
	t := 0.0
	if size > 1 {
		t = float64(x) / float64(size-1)
	}
	return lerp(s.From, s.To, t)
}

func (LinearGradient) isSource() {}

// RadialGradient blends from Center in the middle of the image to Edge at
// the distance of the image corners.
type RadialGradient struct {
	Center, Edge color.RGBA
}

func (s RadialGradient) At(x, y, size int) color.RGBA {
	c := float64(size) / 2
	d := curve.Pt(float64(x)+0.5, float64(y)+0.5).Distance(curve.Pt(c, c))
	return lerp(s.Center, s.Edge, min(d/(c*math.Sqrt2), 1))
}

func (RadialGradient) isSource() {}

// Checker alternates between two colours in square cells.
type Checker struct {
	Cell   int
	Colors [2]color.RGBA
}

func (s Checker) At(x, y, size int) color.RGBA {
	return s.Colors[(x/s.Cell+y/s.Cell)%2]
}

func (Checker) isSource() {}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(u, v uint8) uint8 {
		return uint8(math.Round(float64(u) + t*(float64(v)-float64(u))))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// config returns the default configuration scaled to a canvas of the
// given size, with the origin in the centre.
func config(size int, crop swirlr.Crop) swirlr.Config {
	cfg := swirlr.DefaultConfig()
	cfg.Crop = crop
	cfg.OutputSize = float64(size)
	cfg.Origin = curve.Pt(float64(size)/2, float64(size)/2)
	return cfg
}

// pt is a helper to create a curve.Point from x, y coordinates.
func pt(x, y float64) curve.Point {
	return curve.Pt(x, y)
}

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	gray  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)
