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

// grayGap is the thickness produced by the luma of mid-gray (128).
const grayGap = (255.0 - 128.0) / 255.0 * swirlr.SampleLength

var uniformCases = []TestCase{
	{
		Name:   "black_contain",
		Size:   500,
		Source: Uniform{Color: black},
		Config: config(500, swirlr.Contain),
		Gap:    [2]float64{swirlr.SampleLength, swirlr.SampleLength},
	},
	{
		Name:   "white_contain",
		Size:   500,
		Source: Uniform{Color: white},
		Config: config(500, swirlr.Contain),
		Gap:    [2]float64{swirlr.MinThickness, swirlr.MinThickness},
	},
	{
		Name:   "gray_overflow",
		Size:   200,
		Source: Uniform{Color: gray},
		Config: config(200, swirlr.Overflow),
		Gap:    [2]float64{grayGap, grayGap},
	},
	{
		Name:   "black_inverted",
		Size:   200,
		Source: Uniform{Color: black},
		Config: inverted(config(200, swirlr.Contain)),
		Gap:    [2]float64{swirlr.MinThickness, swirlr.MinThickness},
	},
	{
		Name:   "white_inverted",
		Size:   200,
		Source: Uniform{Color: white},
		Config: inverted(config(200, swirlr.Overflow)),
		Gap:    [2]float64{swirlr.SampleLength, swirlr.SampleLength},
	},
}

func inverted(cfg swirlr.Config) swirlr.Config {
	cfg.Invert = true
	return cfg
}
