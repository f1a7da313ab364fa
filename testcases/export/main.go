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

// Command export renders every test scene with all output backends.
//
// For each scene it writes the synthetic source image, the SVG, raster
// and PDF renderings of the traced contour, and a JSON index describing
// all scenes. The files are meant for visual inspection.
package main

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/sfomuseum/go-flags/flagset"
	"github.com/willdady/swirlr"
	"github.com/willdady/swirlr/pdfout"
	"github.com/willdady/swirlr/raster"
	"github.com/willdady/swirlr/svg"
	"github.com/willdady/swirlr/testcases"
)

func main() {
	fs := flagset.NewFlagSet("export")
	dir := fs.String("dir", "testdata/scenes", "output directory")
	flagset.Parse(fs)

	if err := os.MkdirAll(*dir, 0755); err != nil {
		log.Fatal(err)
	}

	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			scene, err := export(*dir, name, tc)
			if err != nil {
				log.Fatalf("%s: %v", name, err)
			}
			out.Scenes = append(out.Scenes, scene)
		}
	}

	f, err := os.Create(filepath.Join(*dir, "scenes.json"))
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
}

type jsonScene struct {
	Name       string     `json:"name"`
	Size       int        `json:"size"`
	Crop       string     `json:"crop"`
	Origin     [2]float64 `json:"origin"`
	GrowthRate float64    `json:"growth_rate"`
	Invert     bool       `json:"invert,omitempty"`
	MaxRadius  float64    `json:"max_radius"`
	Steps      int        `json:"steps"`
	Points     int        `json:"points"`
}

func export(dir, name string, tc testcases.TestCase) (jsonScene, error) {
	base := filepath.Join(dir, name)
	img := tc.Image()
	if err := writeFile(base+".source.png", func(f *os.File) error {
		return png.Encode(f, img)
	}); err != nil {
		return jsonScene{}, err
	}

	c, err := swirlr.Generate(img, tc.Config)
	if err != nil {
		return jsonScene{}, err
	}
	p := c.Path(swirlr.DefaultMinGap)

	doc := svg.New(tc.Size, tc.Size)
	doc.Add(&svg.Rect{Width: tc.Size, Height: tc.Size, Fill: "#ffffff"})
	doc.Add(svg.NewPath(p, "#000000"))
	if err := writeFile(base+".svg", func(f *os.File) error {
		_, err := doc.WriteTo(f)
		return err
	}); err != nil {
		return jsonScene{}, err
	}

	for _, style := range []raster.Style{raster.Filled, raster.Outline, raster.Pairs} {
		cv, err := raster.Render(c, raster.Options{
			Style:      style,
			Color:      swirlr.Opaque(colorful.Color{}),
			Background: swirlr.Opaque(colorful.Color{R: 1, G: 1, B: 1}),
		})
		if err != nil {
			return jsonScene{}, err
		}
		if err := cv.SavePNG(fmt.Sprintf("%s.%s.png", base, style)); err != nil {
			return jsonScene{}, err
		}
	}

	white := colorful.Color{R: 1, G: 1, B: 1}
	err = pdfout.Write(base+".pdf", p, c.Size, pdfout.Options{Background: &white})
	if err != nil {
		return jsonScene{}, err
	}

	cfg := tc.Config
	return jsonScene{
		Name:       name,
		Size:       tc.Size,
		Crop:       cfg.Crop.String(),
		Origin:     [2]float64{cfg.Origin.X, cfg.Origin.Y},
		GrowthRate: cfg.GrowthRate,
		Invert:     cfg.Invert,
		MaxRadius:  cfg.MaxRadius(),
		Steps:      len(c.Inner),
		Points:     len(p) - 1,
	}, nil
}

func writeFile(name string, write func(*os.File) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
