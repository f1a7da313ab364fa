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

package pdfout

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/willdady/swirlr"
	"github.com/willdady/swirlr/testcases"
	"honnef.co/go/curve"
)

func checkPDF(t *testing.T, name string) {
	t.Helper()
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("missing PDF header, file starts with %q", data[:min(len(data), 8)])
	}
	if !bytes.Contains(data, []byte("%%EOF")) {
		t.Error("missing end-of-file marker")
	}
}

func TestWriteScene(t *testing.T) {
	tc := testcases.All["uniform"][0]
	c, err := swirlr.Generate(tc.Image(), tc.Config)
	if err != nil {
		t.Fatal(err)
	}

	bg := colorful.Color{R: 1, G: 1, B: 0.9}
	name := filepath.Join(t.TempDir(), "scene.pdf")
	opts := Options{Color: colorful.Color{R: 0.2}, Background: &bg}
	if err := Write(name, c.Path(swirlr.DefaultMinGap), c.Size, opts); err != nil {
		t.Fatal(err)
	}
	checkPDF(t, name)
}

func TestWriteCurves(t *testing.T) {
	var p curve.BezPath
	p.MoveTo(curve.Pt(1, 1))
	p.QuadTo(curve.Pt(5, 0), curve.Pt(9, 1))
	p.CubicTo(curve.Pt(10, 4), curve.Pt(8, 8), curve.Pt(5, 9))
	p.ClosePath()

	name := filepath.Join(t.TempDir(), "curves.pdf")
	if err := Write(name, p, 10, Options{}); err != nil {
		t.Fatal(err)
	}
	checkPDF(t, name)
}

func TestWriteEmpty(t *testing.T) {
	name := filepath.Join(t.TempDir(), "empty.pdf")
	if err := Write(name, nil, 100, Options{}); err != nil {
		t.Fatal(err)
	}
	checkPDF(t, name)
}

func TestWriteErrors(t *testing.T) {
	dir := t.TempDir()
	if err := Write(filepath.Join(dir, "zero.pdf"), nil, 0, Options{}); err == nil {
		t.Error("zero page size accepted")
	}
	if err := Write(filepath.Join(dir, "missing", "out.pdf"), nil, 10, Options{}); err == nil {
		t.Error("missing directory accepted")
	}
}
