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

package swirlr

import (
	"image"
	"image/color"
	"math"
)

// AverageColor averages the pixels of buf lying on the segment from p1 to
// p2. The segment is walked in unit steps starting at p1; floor(|p2-p1|)
// pixels are visited, each at the rounded position. Positions outside the
// buffer are skipped. Each channel of the result is rounded to the nearest
// integer. If no position falls inside the buffer, ErrEmptySample is
// returned.
func AverageColor(buf *image.RGBA, p1, p2 Point) (color.RGBA, error) {
	n := int(math.Floor(Distance(p1, p2)))
	sin, cos := math.Sincos(Bearing(p1, p2))

	bounds := buf.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var sumR, sumG, sumB, count int
	for i := range n {
		x := int(math.Round(p1.X + float64(i)*cos))
		y := int(math.Round(p1.Y + float64(i)*sin))
		if x < 0 || y < 0 || x >= w || y >= h {
			continue
		}
		off := buf.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
		sumR += int(buf.Pix[off])
		sumG += int(buf.Pix[off+1])
		sumB += int(buf.Pix[off+2])
		count++
	}
	if count == 0 {
		return color.RGBA{}, ErrEmptySample
	}

	avg := func(sum int) uint8 {
		return uint8(math.Round(float64(sum) / float64(count)))
	}
	return color.RGBA{R: avg(sumR), G: avg(sumG), B: avg(sumB), A: 255}, nil
}

// Luma reduces a colour to its Rec. 709 luma in [0, 255], using integer
// weights 2126, 7152 and 722 (per 10000) and truncating the result.
func Luma(c color.RGBA) float64 {
	l := (2126*uint32(c.R) + 7152*uint32(c.G) + 722*uint32(c.B)) / 10000
	return float64(l)
}

// AverageLuminance returns the luma of the average colour along the
// segment from p1 to p2. See [AverageColor] for the sampling rules.
func AverageLuminance(buf *image.RGBA, p1, p2 Point) (float64, error) {
	c, err := AverageColor(buf, p1, p2)
	if err != nil {
		return 0, err
	}
	return Luma(c), nil
}
