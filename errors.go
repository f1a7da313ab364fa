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

import "errors"

var (
	// ErrInvalidConfig is wrapped by every configuration error. Such errors
	// are reported before any sampling starts.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrImageDecode is wrapped by errors from loading the source image.
	ErrImageDecode = errors.New("cannot decode image")

	// ErrEmptySample is returned by the sampler when a probe segment does
	// not cover a single pixel of the buffer.
	ErrEmptySample = errors.New("probe segment lies outside the image")
)
