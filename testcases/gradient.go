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
	"image/color"

	"github.com/willdady/swirlr"
)

var fullRange = [2]float64{swirlr.MinThickness, swirlr.SampleLength}

var gradientCases = []TestCase{
	{
		Name:   "linear_overflow",
		Size:   300,
		Source: LinearGradient{From: black, To: white},
		Config: config(300, swirlr.Overflow),
		Gap:    fullRange,
	},
	{
		Name:   "radial_contain",
		Size:   300,
		Source: RadialGradient{Center: white, Edge: black},
		Config: config(300, swirlr.Contain),
		Gap:    fullRange,
	},
	{
		Name:   "checker_fast",
		Size:   200,
		Source: Checker{Cell: 25, Colors: [2]color.RGBA{black, white}},
		Config: withGrowth(config(200, swirlr.Contain), 3),
		Gap:    fullRange,
	},
	{
		Name:   "colour_channels",
		Size:   200,
		Source: LinearGradient{From: color.RGBA{R: 255, A: 255}, To: color.RGBA{B: 255, A: 255}},
		Config: config(200, swirlr.Contain),
		Gap:    fullRange,
	},
}

func withGrowth(cfg swirlr.Config, rate float64) swirlr.Config {
	cfg.GrowthRate = rate
	return cfg
}
