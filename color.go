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
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const hexDigits = "0123456789abcdefABCDEF"

// ParseColor parses a "#rgb" or "#rrggbb" hex colour, the forms accepted
// for the contour and background colours.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if (len(s) != 4 && len(s) != 7) || s[0] != '#' || strings.Trim(s[1:], hexDigits) != "" {
		return colorful.Color{}, fmt.Errorf("%w: colour %q is not of the form #rgb or #rrggbb", ErrInvalidConfig, s)
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: colour %q: %v", ErrInvalidConfig, s, err)
	}
	return c, nil
}

// Opaque converts c into an opaque 8-bit colour.
func Opaque(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
