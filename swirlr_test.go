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

package swirlr_test

import (
	"maps"
	"math"
	"slices"
	"testing"

	"github.com/willdady/swirlr"
	"github.com/willdady/swirlr/testcases"
)

func TestScenes(t *testing.T) {
	const eps = 1e-9

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				c, err := swirlr.Generate(tc.Image(), tc.Config)
				if err != nil {
					t.Fatal(err)
				}
				if c.Size != float64(tc.Size) {
					t.Errorf("contour size %v, want %d", c.Size, tc.Size)
				}
				if len(c.Inner) == 0 || len(c.Inner) != len(c.Outer) {
					t.Fatalf("got %d inner and %d outer points", len(c.Inner), len(c.Outer))
				}

				maxRadius := tc.Config.MaxRadius()
				for i := range c.Inner {
					gap := swirlr.Distance(c.Inner[i], c.Outer[i])
					if gap < tc.Gap[0]-eps || gap > tc.Gap[1]+eps {
						t.Fatalf("step %d: gap %v outside [%v, %v]", i, gap, tc.Gap[0], tc.Gap[1])
					}

					// the midpoint of each pair lies on the spiral
					mid := c.Inner[i].Midpoint(c.Outer[i])
					if r := swirlr.Distance(tc.Config.Origin, mid); r >= maxRadius {
						t.Fatalf("step %d: radius %v beyond %v", i, r, maxRadius)
					}
				}

				p := c.Path(swirlr.DefaultMinGap)
				if len(p) < 3 {
					t.Fatalf("path has only %d elements", len(p))
				}
				prev := p[0].P0
				for i, el := range p[1 : len(p)-1] {
					if d := swirlr.Distance(prev, el.P0); d <= swirlr.DefaultMinGap {
						t.Fatalf("element %d: %v apart from its predecessor", i+1, d)
					}
					prev = el.P0
				}

				if tc.Config.Crop == swirlr.Contain {
					bbox := p.BoundingBox()
					limit := tc.Config.OutputSize/2 + swirlr.SampleLength
					o := tc.Config.Origin
					if math.Max(math.Abs(bbox.X0-o.X), math.Abs(bbox.X1-o.X)) > limit ||
						math.Max(math.Abs(bbox.Y0-o.Y), math.Abs(bbox.Y1-o.Y)) > limit {
						t.Errorf("bounding box %v exceeds the contained radius", bbox)
					}
				}
			})
		}
	}
}
