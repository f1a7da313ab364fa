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
	"fmt"
	"image"
	"math"
)

// Walker traces the spiral one step at a time. Each step samples the
// source image around the current spiral position and records a pair of
// points, one on the inner and one on the outer edge of the line.
//
// A Walker is not safe for concurrent use.
type Walker struct {
	cfg       Config
	src       *image.RGBA
	maxRadius float64

	theta      float64
	done       bool
	lastLength float64 // thickness of the previous step, 0 before the first
	empty      int     // steps whose probe missed the image entirely

	inner []Point
	outer []Point
}

// NewWalker returns a Walker for src. The configuration and the buffer
// are checked here, so that an invalid setup fails before any sampling.
// src must be a square image whose side equals cfg.OutputSize.
func NewWalker(src *image.RGBA, cfg Config) (*Walker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: no sample buffer", ErrInvalidConfig)
	}
	b := src.Bounds()
	if b.Dx() != b.Dy() || float64(b.Dx()) != cfg.OutputSize {
		return nil, fmt.Errorf("%w: sample buffer is %dx%d, want %gx%g",
			ErrInvalidConfig, b.Dx(), b.Dy(), cfg.OutputSize, cfg.OutputSize)
	}

	maxRadius := cfg.MaxRadius()
	steps := int(maxRadius/(cfg.GrowthRate*angleStep)) + 1
	steps = max(0, min(steps, 1<<20))
	return &Walker{
		cfg:       cfg,
		src:       src,
		maxRadius: maxRadius,
		inner:     make([]Point, 0, steps),
		outer:     make([]Point, 0, steps),
	}, nil
}

// Step advances the walk by one angular increment. It returns false, and
// records nothing, once the spiral radius has reached the limit set by the
// crop policy.
func (w *Walker) Step() bool {
	if w.done {
		return false
	}

	w.theta += angleStep
	r := w.cfg.GrowthRate * w.theta
	if r >= w.maxRadius {
		w.done = true
		return false
	}

	p0 := polar(w.cfg.Origin, r, w.theta)

	// The probe runs along the radius through p0, not across the spiral
	// curve. The line thickness is measured the same way.
	half := SampleLength / 2
	p1 := polar(p0, -half, w.theta)
	p2 := polar(p0, half, w.theta)

	var length float64
	luma, err := AverageLuminance(w.src, p1, p2)
	if err != nil {
		w.empty++
		length = w.lastLength
		if length == 0 {
			length = MinThickness
		}
	} else {
		length = Thickness(luma, w.cfg.Invert)
	}
	w.lastLength = length

	w.inner = append(w.inner, polar(p0, -length/2, w.theta))
	w.outer = append(w.outer, polar(p0, length/2, w.theta))
	return true
}

// Done reports whether the walk has finished.
func (w *Walker) Done() bool {
	return w.done
}

// Theta returns the current spiral angle in radians.
func (w *Walker) Theta() float64 {
	return w.theta
}

// Radius returns the spiral radius at the current angle.
func (w *Walker) Radius() float64 {
	return w.cfg.GrowthRate * w.theta
}

// MaxRadius returns the radius at which the walk stops.
func (w *Walker) MaxRadius() float64 {
	return w.maxRadius
}

// EmptySamples returns the number of steps whose probe segment did not
// touch the image. Those steps reused the previous thickness.
func (w *Walker) EmptySamples() int {
	return w.empty
}

// Contour returns the points recorded so far. The slices are shared with
// the Walker and grow as the walk continues.
func (w *Walker) Contour() *Contour {
	return &Contour{
		Size:  w.cfg.OutputSize,
		Inner: w.inner,
		Outer: w.outer,
	}
}

// Run steps until the walk is done and returns the complete contour.
func (w *Walker) Run() *Contour {
	for w.Step() {
	}
	Logger().Debug("spiral walk finished",
		"crop", w.cfg.Crop,
		"steps", len(w.inner),
		"maxRadius", w.maxRadius,
		"theta", w.theta,
		"emptySamples", w.empty)
	return w.Contour()
}

// Thickness maps a luminance in [0, 255] to a line thickness in
// [MinThickness, SampleLength]. Black gives the full sample length and
// white the minimum. With invert set the mapping is mirrored.
func Thickness(luma float64, invert bool) float64 {
	length := (255 - luma) / 255 * SampleLength
	if invert {
		length = SampleLength - length
	}
	return math.Max(length, MinThickness)
}
