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

// Package svg writes contours as SVG documents.
//
// A [Document] holds a list of nodes. Only two kinds exist: [*Path] for
// the contour itself and [*Rect] for an optional background.
package svg

import (
	"fmt"
	"html"
	"io"
	"strings"

	"honnef.co/go/curve"
)

// Node is an element of a document. It is implemented by *Path and *Rect.
type Node interface {
	isNode()
}

// Document is an SVG document with a viewBox of 0 0 Width Height.
type Document struct {
	Width, Height int
	Children      []Node
}

// New returns an empty document of the given size.
func New(width, height int) *Document {
	return &Document{Width: width, Height: height}
}

// Add appends a node to the document.
func (d *Document) Add(n Node) {
	d.Children = append(d.Children, n)
}

// WriteTo writes the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		d.Width, d.Height, d.Width, d.Height)
	for _, n := range d.Children {
		switch n := n.(type) {
		case *Rect:
			fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="%s" />`,
				n.Width, n.Height, html.EscapeString(n.Fill))
		case *Path:
			fmt.Fprintf(&sb, `<path fill="%s" d="%s" />`,
				html.EscapeString(n.Fill), n.D.String())
		default:
			panic(fmt.Sprintf("svg: unexpected node type %T", n))
		}
	}
	sb.WriteString("</svg>\n")

	written, err := io.WriteString(w, sb.String())
	return int64(written), err
}

// String returns the document as text.
func (d *Document) String() string {
	var sb strings.Builder
	d.WriteTo(&sb)
	return sb.String()
}

// Rect is a filled rectangle anchored at the origin.
type Rect struct {
	Width, Height int
	Fill          string
}

func (*Rect) isNode() {}

// Path is a filled path.
type Path struct {
	Fill string
	D    PathData
}

func (*Path) isNode() {}

// NewPath converts a polygonal path into an SVG path with the given fill
// colour. Curve segments are not expected in contours; they are replaced
// by a line to their end point.
func NewPath(p curve.BezPath, fill string) *Path {
	res := &Path{Fill: fill}
	for el := range p.Elements() {
		switch el.Kind {
		case curve.MoveToKind:
			res.D.MoveTo(el.P0.X, el.P0.Y)
		case curve.LineToKind:
			res.D.LineTo(el.P0.X, el.P0.Y)
		case curve.QuadToKind:
			res.D.LineTo(el.P1.X, el.P1.Y)
		case curve.CubicToKind:
			res.D.LineTo(el.P2.X, el.P2.Y)
		case curve.ClosePathKind:
			res.D.Close()
		}
	}
	return res
}

// PathData accumulates the commands of a path's d attribute. Coordinates
// are written with one decimal.
type PathData struct {
	buf []byte
}

func (d *PathData) push(cmd byte, x, y float64) {
	d.buf = fmt.Appendf(d.buf, "%c%.1f %.1f ", cmd, x, y)
}

// MoveTo starts a new subpath at (x, y).
func (d *PathData) MoveTo(x, y float64) {
	d.push('M', x, y)
}

// LineTo adds a straight line to (x, y).
func (d *PathData) LineTo(x, y float64) {
	d.push('L', x, y)
}

// Close closes the current subpath.
func (d *PathData) Close() {
	d.buf = append(d.buf, 'Z')
}

func (d *PathData) String() string {
	return string(d.buf)
}
