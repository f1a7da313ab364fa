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
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"honnef.co/go/curve"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Canvas is an RGBA image with drawing operations for contours.
// All drawing is aliased: a pixel is either painted or left unchanged.
type Canvas struct {
	Img *image.RGBA

	// CTM maps contour coordinates to pixels.
	CTM matrix.Matrix

	r *Rasteriser
}

// NewCanvas allocates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	bounds := image.Rect(0, 0, width, height)
	return &Canvas{
		Img: image.NewRGBA(bounds),
		CTM: matrix.Identity,
		r:   NewRasteriser(clipRect(bounds)),
	}
}

func clipRect(b image.Rectangle) rect.Rect {
	return rect.Rect{
		LLx: float64(b.Min.X), LLy: float64(b.Min.Y),
		URx: float64(b.Max.X), URy: float64(b.Max.Y),
	}
}

// Fill paints the whole canvas with col.
func (c *Canvas) Fill(col color.RGBA) {
	draw.Draw(c.Img, c.Img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillPath paints every pixel which is covered at least halfway by p,
// using the nonzero winding rule.
func (c *Canvas) FillPath(p curve.BezPath, col color.RGBA) {
	c.r.Reset(clipRect(c.Img.Bounds()))
	c.r.CTM = c.CTM
	c.r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		for i, v := range coverage {
			if v >= 0.5 {
				c.Img.SetRGBA(xMin+i, y, col)
			}
		}
	})
}

// pixel returns the pixel containing the image of p under the CTM.
func (c *Canvas) pixel(p curve.Point) image.Point {
	m := c.CTM
	x := m[0]*p.X + m[2]*p.Y + m[4]
	y := m[1]*p.X + m[3]*p.Y + m[5]
	return image.Pt(int(math.Floor(x)), int(math.Floor(y)))
}

// DrawLine paints a one pixel wide line from a to b. Pixels outside the
// canvas are dropped.
func (c *Canvas) DrawLine(a, b curve.Point, col color.RGBA) {
	var l Line
	p := c.pixel(a)
	sx, sy, n := l.Reset(c.pixel(b).Sub(p))
	c.Img.SetRGBA(p.X, p.Y, col)
	for range n {
		dx, dy := l.Step()
		p.X += dx * sx
		p.Y += dy * sy
		c.Img.SetRGBA(p.X, p.Y, col)
	}
}

// DrawPolyline connects consecutive points with lines. If closed is set,
// the last point is connected back to the first.
func (c *Canvas) DrawPolyline(pts []curve.Point, closed bool, col color.RGBA) {
	for i := 1; i < len(pts); i++ {
		c.DrawLine(pts[i-1], pts[i], col)
	}
	if closed && len(pts) > 2 {
		c.DrawLine(pts[len(pts)-1], pts[0], col)
	}
}

// EncodePNG writes the canvas as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.Img)
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err := c.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return w.Flush()
}
