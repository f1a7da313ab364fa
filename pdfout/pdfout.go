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

// Package pdfout writes contours as single page PDF files.
package pdfout

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"honnef.co/go/curve"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// Options control the appearance of the page.
type Options struct {
	// Color is used to fill the contour.
	Color colorful.Color

	// Background, if non-nil, is painted over the whole page first.
	Background *colorful.Color
}

// Write creates a PDF file with one square page of size×size points and
// fills p on it. Path coordinates use a top-left origin, like the image
// the contour was traced from.
func Write(path string, p curve.BezPath, size float64, opts Options) error {
	if !(size > 0) {
		return fmt.Errorf("pdfout: invalid page size %g", size)
	}

	paper := &pdf.Rectangle{URx: size, URy: size}
	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	if bg := opts.Background; bg != nil {
		page.SetFillColor(deviceRGB(*bg))
		page.Rectangle(0, 0, size, size)
		page.Fill()
	}

	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, size})
	page.SetFillColor(deviceRGB(opts.Color))

	var cur, start curve.Point
	drawn := false
	for el := range p.Elements() {
		switch el.Kind {
		case curve.MoveToKind:
			cur, start = el.P0, el.P0
			page.MoveTo(cur.X, cur.Y)
		case curve.LineToKind:
			cur = el.P0
			page.LineTo(cur.X, cur.Y)
		case curve.QuadToKind:
			// PDF has no quadratic segments.
			c := curve.QuadBez{P0: cur, P1: el.P0, P2: el.P1}.Raise()
			page.CurveTo(c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y)
			cur = el.P1
		case curve.CubicToKind:
			page.CurveTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
			cur = el.P2
		case curve.ClosePathKind:
			page.ClosePath()
			cur = start
		}
		drawn = true
	}
	if drawn {
		page.Fill()
	}

	return page.Close()
}

func deviceRGB(c colorful.Color) color.Color {
	c = c.Clamped()
	return color.DeviceRGB(c.R, c.G, c.B)
}
