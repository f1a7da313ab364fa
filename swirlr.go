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

// Package swirlr turns a photograph into a single continuous contour.
//
// The contour follows an Archimedean spiral around a configurable origin.
// At every step along the spiral a short probe segment of the source image
// is sampled, and the average luminance sets the local thickness of the
// line: dark regions thicken the spiral, bright regions thin it.
//
// A typical pipeline is
//
//	buf, err := imageload.Load("portrait.jpg", swirlr.DefaultOutputSize)
//	...
//	c, err := swirlr.Generate(buf, swirlr.DefaultConfig())
//	...
//	p := c.Path(swirlr.DefaultMinGap)
//
// after which p can be handed to one of the renderers in the svg, raster
// and pdfout packages.
package swirlr

//go:generate go run ./testcases/export -dir testdata/scenes

import "image"

// Generate walks the whole spiral over buf and returns the resulting
// contour. The configuration and the buffer are validated before any
// sampling takes place.
func Generate(buf *image.RGBA, cfg Config) (*Contour, error) {
	w, err := NewWalker(buf, cfg)
	if err != nil {
		return nil, err
	}
	return w.Run(), nil
}
