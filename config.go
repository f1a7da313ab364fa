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
	"math"
	"strings"

	"honnef.co/go/curve"
)

// Crop selects how far the spiral may grow relative to the canvas.
type Crop int

const (
	// Overflow lets the spiral grow until it reaches the canvas corner
	// farthest from the origin, so the whole canvas is covered even for an
	// off-centre origin. Parts of the spiral may lie outside the canvas.
	Overflow Crop = iota

	// Contain keeps the spiral inside a circle of radius size/2 - Gutter,
	// independent of the origin.
	Contain
)

func (c Crop) String() string {
	switch c {
	case Overflow:
		return "overflow"
	case Contain:
		return "contain"
	default:
		return fmt.Sprintf("Crop(%d)", int(c))
	}
}

// Set implements flag.Value.
func (c *Crop) Set(s string) error {
	v, err := ParseCrop(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseCrop converts a crop policy name, as printed by [Crop.String], into
// a Crop. Matching is case-insensitive.
func ParseCrop(s string) (Crop, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "overflow":
		return Overflow, nil
	case "contain":
		return Contain, nil
	}
	return 0, fmt.Errorf("%w: unknown crop policy %q (want contain or overflow)", ErrInvalidConfig, s)
}

// Default values and fixed geometry of the spiral.
const (
	// DefaultOutputSize is the side length of the working canvas in pixels.
	DefaultOutputSize = 500

	// DefaultGrowthRate is the radial distance gained per radian.
	DefaultGrowthRate = 1.2

	// DefaultMinGap is the minimum distance between consecutive points of
	// a reduced contour.
	DefaultMinGap = 2.0

	// Gutter is the margin kept free by the Contain policy.
	Gutter = 5.0

	// SampleLength is the length of the probe segment and thus the maximum
	// thickness of the line.
	SampleLength = 7.0

	// MinThickness is the thinnest the line is ever drawn.
	MinThickness = 1.0

	// angleStep is the increment of the spiral angle per step, in radians.
	angleStep = 0.003
)

// Config describes one conversion. The zero value is not usable; start
// from [DefaultConfig].
type Config struct {
	Crop       Crop
	Origin     Point   // centre of the spiral, in canvas coordinates
	GrowthRate float64 // must be > 0
	Invert     bool    // thin lines in dark regions instead of bright ones
	OutputSize float64 // side length of the square canvas
}

// DefaultConfig returns the configuration of the command line tool when
// no options are given: an overflowing spiral around the canvas centre.
func DefaultConfig() Config {
	return Config{
		Crop:       Overflow,
		Origin:     curve.Pt(DefaultOutputSize/2, DefaultOutputSize/2),
		GrowthRate: DefaultGrowthRate,
		OutputSize: DefaultOutputSize,
	}
}

// Validate checks the configuration. A growth rate that is not strictly
// positive would make the walk run forever, so it is rejected here.
func (c Config) Validate() error {
	if math.IsNaN(c.GrowthRate) || math.IsInf(c.GrowthRate, 0) || c.GrowthRate <= 0 {
		return fmt.Errorf("%w: growth rate must be a positive number, got %g", ErrInvalidConfig, c.GrowthRate)
	}
	if math.IsNaN(c.OutputSize) || math.IsInf(c.OutputSize, 0) || c.OutputSize < 1 {
		return fmt.Errorf("%w: output size must be at least 1, got %g", ErrInvalidConfig, c.OutputSize)
	}
	if c.Origin.IsNaN() || c.Origin.IsInf() {
		return fmt.Errorf("%w: origin %v is not finite", ErrInvalidConfig, c.Origin)
	}
	switch c.Crop {
	case Overflow, Contain:
	default:
		return fmt.Errorf("%w: unknown crop policy %v", ErrInvalidConfig, c.Crop)
	}
	return nil
}

// MaxRadius returns the radius at which the walk stops.
func (c Config) MaxRadius() float64 {
	if c.Crop == Contain {
		return c.OutputSize/2 - Gutter
	}
	s := c.OutputSize
	corners := [4]Point{
		curve.Pt(0, 0),
		curve.Pt(s, 0),
		curve.Pt(s, s),
		curve.Pt(0, s),
	}
	r := math.Inf(-1)
	for _, p := range corners {
		r = max(r, Distance(c.Origin, p))
	}
	return r
}
