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

import "honnef.co/go/curve"

// Point is a location in working-canvas coordinates.
type Point = curve.Point

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return a.Distance(b)
}

// Bearing returns the angle of the direction from a to b, as
// atan2(b.Y-a.Y, b.X-a.X). The bearing of a point to itself is 0.
func Bearing(a, b Point) float64 {
	return b.Sub(a).Angle()
}

// polar returns the point at distance r from origin in direction theta.
func polar(origin Point, r, theta float64) Point {
	return origin.Translate(curve.VecFromAngle(theta).Mul(r))
}
