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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/willdady/swirlr"
	"github.com/willdady/swirlr/testcases"
	"golang.org/x/image/vector"
	"honnef.co/go/curve"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// benchContour traces the black_contain scene, which gives the densest
// contour of the test cases.
func benchContour(b *testing.B) *swirlr.Contour {
	b.Helper()
	tc := testcases.All["uniform"][0]
	c, err := swirlr.Generate(tc.Image(), tc.Config)
	if err != nil {
		b.Fatal(err)
	}
	return c
}

func BenchmarkGenerate(b *testing.B) {
	tc := testcases.All["uniform"][0]
	img := tc.Image()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := swirlr.Generate(img, tc.Config); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRasteriser fills the contour with the scanline rasteriser, at
// several output scales.
func BenchmarkRasteriser(b *testing.B) {
	p := benchContour(b).Path(swirlr.DefaultMinGap)

	for _, scale := range []float64{0.2, 1, 4} {
		size := int(500 * scale)
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.CTM = matrix.Scale(scale, scale)
				r.FillNonZero(p, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVector fills the same contour with x/image/vector.
func BenchmarkVector(b *testing.B) {
	p := benchContour(b).Path(swirlr.DefaultMinGap)

	for _, scale := range []float64{0.2, 1, 4} {
		size := int(500 * scale)
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addToVector(r, p, float32(scale))
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// addToVector copies a polygonal path into a vector.Rasterizer.
func addToVector(r *vector.Rasterizer, p curve.BezPath, scale float32) {
	for el := range p.Elements() {
		x, y := float32(el.P0.X)*scale, float32(el.P0.Y)*scale
		switch el.Kind {
		case curve.MoveToKind:
			r.MoveTo(x, y)
		case curve.LineToKind:
			r.LineTo(x, y)
		case curve.ClosePathKind:
			r.ClosePath()
		}
	}
}
