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

// Package imageload prepares source photographs for the spiral walk.
//
// An image is decoded, centre-cropped to a square and resized with
// nearest-neighbour sampling to the working resolution. JPEG, PNG, GIF,
// WebP, BMP and TIFF files are supported.
package imageload

import (
	"fmt"
	"image"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/willdady/swirlr"
)

// Load reads the image file at path and returns it as a size×size buffer.
// All failures wrap [swirlr.ErrImageDecode].
func Load(path string, size int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", swirlr.ErrImageDecode, err)
	}
	defer f.Close()

	buf, err := Decode(f, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return buf, nil
}

// Decode reads an image from r and returns it as a size×size buffer.
func Decode(r io.Reader, size int) (*image.RGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: working size must be positive, got %d", swirlr.ErrInvalidConfig, size)
	}
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", swirlr.ErrImageDecode, err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %s image has no pixels", swirlr.ErrImageDecode, format)
	}

	swirlr.Logger().Debug("decoded source image",
		"format", format,
		"width", b.Dx(),
		"height", b.Dy())
	return Square(img, size), nil
}

// Square centre-crops img to a square and resizes it to size×size using
// nearest-neighbour sampling. The result always has its origin at (0, 0)
// and is fully opaque.
func Square(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.Black, image.Point{}, draw.Src)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, CenterSquare(img.Bounds()), draw.Over, nil)
	return dst
}

// CenterSquare returns the largest square inside b that is centred along
// the longer axis. When the excess is odd the extra pixel is left at the
// far side.
func CenterSquare(b image.Rectangle) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	switch {
	case w > h:
		x0 := b.Min.X + (w-h)/2
		return image.Rect(x0, b.Min.Y, x0+h, b.Max.Y)
	case h > w:
		y0 := b.Min.Y + (h-w)/2
		return image.Rect(b.Min.X, y0, b.Max.X, y0+w)
	default:
		return b
	}
}
