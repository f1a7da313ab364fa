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
	"image/color"
	"math"
	"strings"

	"github.com/willdady/swirlr"
	"seehuhn.de/go/geom/matrix"
)

// Style selects how a contour is drawn.
type Style int

const (
	// Filled paints the area enclosed by the contour.
	Filled Style = iota

	// Outline draws the reduced contour as a closed polyline.
	Outline

	// Pairs draws one line from the inner to the outer point of every
	// step of the walk.
	Pairs
)

func (s Style) String() string {
	switch s {
	case Filled:
		return "filled"
	case Outline:
		return "outline"
	case Pairs:
		return "pairs"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Set implements flag.Value.
func (s *Style) Set(v string) error {
	st, err := ParseStyle(v)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// ParseStyle converts a style name into a Style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "filled":
		return Filled, nil
	case "outline":
		return Outline, nil
	case "pairs":
		return Pairs, nil
	}
	return 0, fmt.Errorf("%w: unknown style %q (want filled, outline or pairs)", swirlr.ErrInvalidConfig, s)
}

// MaxScale is the largest accepted value of Options.Scale.
const MaxScale = 64

// Options control how [Render] draws a contour.
type Options struct {
	Style Style

	// Color is used for the contour.
	Color color.RGBA

	// Background fills the canvas before drawing. A fully transparent
	// background leaves the canvas transparent.
	Background color.RGBA

	// Scale multiplies the contour size to get the image size.
	// Zero means 1. Values above MaxScale are rejected.
	Scale float64

	// MinGap is passed to [swirlr.Reduce] for the Filled and Outline
	// styles. Zero means [swirlr.DefaultMinGap].
	MinGap float64
}

// Render draws c onto a new canvas.
func Render(c *swirlr.Contour, opts Options) (*Canvas, error) {
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	if !(scale > 0) || scale > MaxScale {
		return nil, fmt.Errorf("%w: scale must be in (0, %d], got %g", swirlr.ErrInvalidConfig, MaxScale, opts.Scale)
	}
	minGap := opts.MinGap
	if minGap == 0 {
		minGap = swirlr.DefaultMinGap
	}
	if !(minGap > 0) {
		return nil, fmt.Errorf("%w: min gap must be positive, got %g", swirlr.ErrInvalidConfig, opts.MinGap)
	}
	size := int(math.Round(c.Size * scale))
	if size < 1 {
		return nil, fmt.Errorf("%w: image size %d", swirlr.ErrInvalidConfig, size)
	}

	cv := NewCanvas(size, size)
	cv.CTM = matrix.Scale(scale, scale)
	if opts.Background.A != 0 {
		cv.Fill(opts.Background)
	}

	switch opts.Style {
	case Filled:
		cv.FillPath(c.Path(minGap), opts.Color)
	case Outline:
		cv.DrawPolyline(swirlr.Reduce(c.Points(), minGap), true, opts.Color)
	case Pairs:
		for i := range min(len(c.Inner), len(c.Outer)) {
			cv.DrawLine(c.Inner[i], c.Outer[i], opts.Color)
		}
	default:
		return nil, fmt.Errorf("%w: unknown style %d", swirlr.ErrInvalidConfig, int(opts.Style))
	}

	swirlr.Logger().Debug("rendered raster image",
		"style", opts.Style, "size", size, "points", len(c.Inner))
	return cv, nil
}
