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

import "github.com/willdady/swirlr"

var originCases = []TestCase{
	{
		// Three quarters of the spiral lie outside the canvas. Steps whose
		// probe misses the image keep the thickness of the step before.
		Name:   "corner_overflow",
		Size:   200,
		Source: Uniform{Color: black},
		Config: withOrigin(config(200, swirlr.Overflow), 0, 0),
		Gap:    [2]float64{swirlr.SampleLength, swirlr.SampleLength},
	},
	{
		// The first probes miss the image entirely and fall back to the
		// minimum thickness until the spiral reaches the canvas.
		Name:   "outside_overflow",
		Size:   100,
		Source: Uniform{Color: black},
		Config: withGrowth(withOrigin(config(100, swirlr.Overflow), -50, -50), 4),
		Gap:    fullRange,
	},
	{
		Name:   "offset_contain",
		Size:   200,
		Source: Uniform{Color: white},
		Config: withOrigin(config(200, swirlr.Contain), 60, 140),
		Gap:    [2]float64{swirlr.MinThickness, swirlr.MinThickness},
	},
}

func withOrigin(cfg swirlr.Config, x, y float64) swirlr.Config {
	cfg.Origin = pt(x, y)
	return cfg
}
