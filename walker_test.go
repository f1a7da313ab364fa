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
	"errors"
	"image"
	"math"
	"strings"
	"testing"

	"honnef.co/go/curve"
)

func TestNewWalkerRejectsGrowthRate(t *testing.T) {
	for _, rate := range []float64{0, -1, math.NaN()} {
		cfg := DefaultConfig()
		cfg.GrowthRate = rate
		// no buffer at all: the configuration must fail first
		w, err := NewWalker(nil, cfg)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("growth rate %v: got %v, want ErrInvalidConfig", rate, err)
		}
		if !strings.Contains(err.Error(), "growth rate") {
			t.Errorf("growth rate %v: unexpected error %q", rate, err)
		}
		if w != nil {
			t.Errorf("growth rate %v: got a walker", rate)
		}
	}
}

func TestNewWalkerChecksBuffer(t *testing.T) {
	cfg := DefaultConfig()
	cases := map[string]*image.RGBA{
		"nil":        nil,
		"not_square": image.NewRGBA(image.Rect(0, 0, 500, 400)),
		"wrong_size": uniform(400, black),
	}
	for name, buf := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := NewWalker(buf, cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestWalkerSteps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputSize = 20
	cfg.Crop = Contain
	cfg.Origin = curve.Pt(10, 10)
	w, err := NewWalker(uniform(20, black), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if w.MaxRadius() != 5 {
		t.Fatalf("MaxRadius() = %v, want 5", w.MaxRadius())
	}

	steps := 0
	prev := w.Radius()
	for w.Step() {
		steps++
		r := w.Radius()
		if r < prev {
			t.Fatalf("step %d: radius decreased from %v to %v", steps, prev, r)
		}
		if r >= w.MaxRadius() {
			t.Fatalf("step %d: recorded a point at radius %v", steps, r)
		}
		if w.Done() {
			t.Fatalf("step %d: done after a successful step", steps)
		}
		if got := len(w.Contour().Inner); got != steps {
			t.Fatalf("step %d: %d inner points", steps, got)
		}
		prev = r
	}

	if !w.Done() {
		t.Error("walk not done after Step returned false")
	}
	if w.Radius() < w.MaxRadius() {
		t.Errorf("stopped at radius %v < %v", w.Radius(), w.MaxRadius())
	}
	// 5 / (1.2 * 0.003) = 1388.9
	if steps < 1387 || steps > 1390 {
		t.Errorf("walk took %d steps, want about 1389", steps)
	}

	theta := w.Theta()
	if w.Step() {
		t.Error("Step succeeded after the walk was done")
	}
	if w.Theta() != theta || len(w.Contour().Inner) != steps {
		t.Error("Step changed the state of a finished walk")
	}
}

func TestWalkerFirstStep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Crop = Contain
	w, err := NewWalker(uniform(500, black), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !w.Step() {
		t.Fatal("first step failed")
	}

	theta := 0.003
	r := 1.2 * theta
	p0 := curve.Pt(250+r*math.Cos(theta), 250+r*math.Sin(theta))
	want := &Contour{
		Size:  500,
		Inner: []Point{curve.Pt(p0.X-3.5*math.Cos(theta), p0.Y-3.5*math.Sin(theta))},
		Outer: []Point{curve.Pt(p0.X+3.5*math.Cos(theta), p0.Y+3.5*math.Sin(theta))},
	}
	diff(t, want, w.Contour(), approx)
}

// pairGaps returns the distance between the inner and outer point of
// every step.
func pairGaps(c *Contour) []float64 {
	gaps := make([]float64, len(c.Inner))
	for i := range c.Inner {
		gaps[i] = Distance(c.Inner[i], c.Outer[i])
	}
	return gaps
}

func TestUniformScenes(t *testing.T) {
	cases := []struct {
		name   string
		buf    *image.RGBA
		crop   Crop
		invert bool
		want   float64
	}{
		{"black", uniform(500, black), Contain, false, SampleLength},
		{"white", uniform(500, white), Contain, false, MinThickness},
		{"black_inverted", uniform(500, black), Contain, true, MinThickness},
		{"white_inverted", uniform(500, white), Contain, true, SampleLength},
		// Probes beyond the canvas reuse the thickness of the step before.
		{"black_overflow", uniform(500, black), Overflow, false, SampleLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Crop = tc.crop
			cfg.Invert = tc.invert
			w, err := NewWalker(tc.buf, cfg)
			if err != nil {
				t.Fatal(err)
			}
			c := w.Run()
			if len(c.Inner) == 0 || len(c.Inner) != len(c.Outer) {
				t.Fatalf("got %d inner and %d outer points", len(c.Inner), len(c.Outer))
			}
			for i, g := range pairGaps(c) {
				if math.Abs(g-tc.want) > 1e-9 {
					t.Fatalf("step %d: gap %v, want %v", i, g, tc.want)
				}
			}
			if tc.crop == Contain && w.EmptySamples() != 0 {
				t.Errorf("%d empty samples inside the canvas", w.EmptySamples())
			}
			if tc.crop == Overflow && w.EmptySamples() == 0 {
				t.Error("no empty samples although the spiral leaves the canvas")
			}
		})
	}
}

func TestWalkerOutsideOrigin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputSize = 50
	cfg.Origin = curve.Pt(-100, 25)
	cfg.GrowthRate = 5
	w, err := NewWalker(uniform(50, black), cfg)
	if err != nil {
		t.Fatal(err)
	}
	c := w.Run()

	gaps := pairGaps(c)
	if math.Abs(gaps[0]-MinThickness) > 1e-9 {
		t.Errorf("first gap %v, want the minimum thickness", gaps[0])
	}
	if math.Abs(gaps[len(gaps)-1]-SampleLength) > 1e-9 {
		t.Errorf("last gap %v, want the sample length", gaps[len(gaps)-1])
	}
	if w.EmptySamples() == 0 {
		t.Error("no empty samples recorded")
	}
}

func TestThickness(t *testing.T) {
	prev := math.Inf(1)
	prevInv := math.Inf(-1)
	for l := 0; l <= 255; l++ {
		luma := float64(l)
		got := Thickness(luma, false)
		if got < MinThickness || got > SampleLength {
			t.Fatalf("Thickness(%v) = %v out of range", luma, got)
		}
		if got > prev {
			t.Fatalf("Thickness(%v) = %v > Thickness(%v) = %v", luma, got, luma-1, prev)
		}
		prev = got

		inv := Thickness(luma, true)
		if inv < MinThickness || inv > SampleLength {
			t.Fatalf("inverted Thickness(%v) = %v out of range", luma, inv)
		}
		if inv < prevInv {
			t.Fatalf("inverted Thickness(%v) = %v < %v", luma, inv, prevInv)
		}
		prevInv = inv

		want := max(luma/255*SampleLength, MinThickness)
		if math.Abs(inv-want) > 1e-12 {
			t.Fatalf("inverted Thickness(%v) = %v, want %v", luma, inv, want)
		}
	}

	if got := Thickness(0, false); got != SampleLength {
		t.Errorf("Thickness(0) = %v, want %v", got, SampleLength)
	}
	if got := Thickness(255, false); got != MinThickness {
		t.Errorf("Thickness(255) = %v, want %v", got, MinThickness)
	}
}

func TestGenerate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputSize = 100
	cfg.Origin = curve.Pt(50, 50)
	c, err := Generate(uniform(100, black), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if c.Size != 100 || len(c.Inner) == 0 {
		t.Errorf("got contour of size %v with %d steps", c.Size, len(c.Inner))
	}

	cfg.GrowthRate = 0
	if _, err := Generate(uniform(100, black), cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("got %v, want ErrInvalidConfig", err)
	}
}
