/*
Copyright © 2026 the Terrain authors.
This file is part of Terrain.

Terrain is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Terrain is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Terrain.  If not, see <http://www.gnu.org/licenses/>.
*/

package terrain

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
)

func pathDiffers(a, b []ElevatedPoint) bool {
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		if different(a[i].X, b[i].X) || different(a[i].Y, b[i].Y) ||
			different(a[i].Elevation, b[i].Elevation) {
			return true
		}
	}
	return false
}

// plateauScene is a level scene at elevation 0 with one plateau of height
// 20 whose footprint spans x=10..50.
func plateauScene() *Scene {
	return NewScene(0, &Plateau{
		Polygonal: rectFootprint(10, -10, 50, 10),
		Elevation: 20,
	})
}

func TestTravelWalkingOverPlateau(t *testing.T) {
	s := plateauScene()
	path, err := s.Travel(ElevatedPoint{}, ElevatedPoint{X: 60}, Walking)
	if err != nil {
		t.Fatal(err)
	}
	want := []ElevatedPoint{
		{X: 0},
		{X: 10},
		{X: 10, Elevation: 20},
		{X: 50, Elevation: 20},
		{X: 50},
		{X: 60},
	}
	if pathDiffers(path, want) {
		t.Errorf("want %v, have %v", want, path)
	}
}

func TestTravelWalkingTwoPlateaus(t *testing.T) {
	// The walker rises onto each plateau and falls to the floor in the
	// gap between them.
	s := NewScene(0,
		&Plateau{Polygonal: rectFootprint(10, -10, 30, 10), Elevation: 20},
		&Plateau{Polygonal: rectFootprint(50, -10, 70, 10), Elevation: 15},
	)
	path, err := s.Travel(ElevatedPoint{}, ElevatedPoint{X: 80}, Walking)
	if err != nil {
		t.Fatal(err)
	}
	want := []ElevatedPoint{
		{X: 0},
		{X: 10},
		{X: 10, Elevation: 20},
		{X: 30, Elevation: 20},
		{X: 30},
		{X: 50},
		{X: 50, Elevation: 15},
		{X: 70, Elevation: 15},
		{X: 70},
		{X: 80},
	}
	if pathDiffers(path, want) {
		t.Errorf("want %v, have %v", want, path)
	}
}

func TestCutawayStableClassification(t *testing.T) {
	// Re-projecting the same inputs classifies every probe point
	// identically, whatever the polygon decomposition.
	f := eastFrame(60)
	p := &Plateau{Polygonal: rectFootprint(10, -10, 50, 10), Elevation: 20}
	a := buildCutaway(f, []Region{p}, 0)
	b := buildCutaway(f, []Region{p}, 0)
	for x := 0.0; x <= 60; x += 7.5 {
		for y := -5.0; y <= 25; y += 5 {
			pt := geom.Point{X: x, Y: y}
			la, sa := a.classify(pt)
			lb, sb := b.classify(pt)
			if la != lb || sa != sb {
				t.Errorf("%+v: classifications differ: %v/%v vs %v/%v", pt, la, sa, lb, sb)
			}
		}
	}
}

func TestTravelWalkingNoTerrain(t *testing.T) {
	s := NewScene(0)
	start := ElevatedPoint{}
	end := ElevatedPoint{X: 60}
	path, err := s.Travel(start, end, Walking)
	if err != nil {
		t.Fatal(err)
	}
	if pathDiffers(path, []ElevatedPoint{start, end}) {
		t.Errorf("want direct path, have %v", path)
	}
}

func TestTravelWalkingDropsToGround(t *testing.T) {
	// A walker starting in midair falls to the floor first.
	s := plateauScene()
	path, err := s.Travel(ElevatedPoint{Elevation: 5}, ElevatedPoint{X: 60}, Walking)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) < 2 {
		t.Fatalf("path too short: %v", path)
	}
	if different(path[1].X, 0) || different(path[1].Elevation, 0) {
		t.Errorf("want drop to {0 0}, have %+v", path[1])
	}
}

func TestTravelBurrowingUnderPlateau(t *testing.T) {
	// The detour over the plateau straightens into the direct line, which
	// runs along solid terrain the whole way.
	s := plateauScene()
	path, err := s.Travel(ElevatedPoint{}, ElevatedPoint{X: 60}, Burrowing)
	if err != nil {
		t.Fatal(err)
	}
	want := []ElevatedPoint{{X: 0}, {X: 60}}
	if pathDiffers(path, want) {
		t.Errorf("want %v, have %v", want, path)
	}
}

func TestTravelBurrowingBelowFloor(t *testing.T) {
	// The floor stays solid beneath a region based at floor level, so a
	// burrow below the floor crosses under the plateau in a straight line.
	s := plateauScene()
	start := ElevatedPoint{Elevation: -5}
	end := ElevatedPoint{X: 60, Elevation: -5}
	path, err := s.Travel(start, end, Burrowing)
	if err != nil {
		t.Fatal(err)
	}
	if pathDiffers(path, []ElevatedPoint{start, end}) {
		t.Errorf("want direct buried path, have %v", path)
	}
}

func TestTravelBurrowingBuried(t *testing.T) {
	s := NewScene(0, &Plateau{
		Polygonal: rectFootprint(10, -10, 50, 10),
		Elevation: 20,
		Base:      -30,
	})
	start := ElevatedPoint{Elevation: -5}
	end := ElevatedPoint{X: 60, Elevation: -5}
	path, err := s.Travel(start, end, Burrowing)
	if err != nil {
		t.Fatal(err)
	}
	if pathDiffers(path, []ElevatedPoint{start, end}) {
		t.Errorf("want direct buried path, have %v", path)
	}
}

func TestTravelBurrowingCannotEndBelow(t *testing.T) {
	s := plateauScene()
	path, err := s.TravelOpts(ElevatedPoint{},
		ElevatedPoint{X: 60, Elevation: -40},
		TravelOptions{Discipline: Burrowing, CanEndBelow: false})
	if err != nil {
		t.Fatal(err)
	}
	last := path[len(path)-1]
	if last.Elevation < -testTolerance {
		t.Errorf("path ends below the surface at %+v", last)
	}
}

func TestTravelFlyingClear(t *testing.T) {
	s := plateauScene()
	start := ElevatedPoint{Elevation: 30}
	end := ElevatedPoint{X: 60, Elevation: 30}
	path, err := s.Travel(start, end, Flying)
	if err != nil {
		t.Fatal(err)
	}
	if pathDiffers(path, []ElevatedPoint{start, end}) {
		t.Errorf("want direct path, have %v", path)
	}
}

func TestTravelFlyingOverPlateau(t *testing.T) {
	s := plateauScene()
	path, err := s.Travel(ElevatedPoint{Elevation: 10},
		ElevatedPoint{X: 60, Elevation: 10}, Flying)
	if err != nil {
		t.Fatal(err)
	}
	want := []ElevatedPoint{
		{X: 0, Elevation: 10},
		{X: 10, Elevation: 20},
		{X: 50, Elevation: 20},
		{X: 60, Elevation: 10},
	}
	if pathDiffers(path, want) {
		t.Errorf("want %v, have %v", want, path)
	}
}

func TestTravelFlyingAvoidsTerrain(t *testing.T) {
	s := plateauScene()
	path, err := s.Travel(ElevatedPoint{Elevation: 10},
		ElevatedPoint{X: 60, Elevation: 10}, Flying)
	if err != nil {
		t.Fatal(err)
	}
	// No sub-segment may pass through the plateau body.
	for i := 0; i < len(path)-1; i++ {
		a, b := path[i], path[i+1]
		for _, f := range []float64{0.25, 0.5, 0.75} {
			x := a.X + (b.X-a.X)*f
			e := a.Elevation + (b.Elevation-a.Elevation)*f
			if x > 10+testTolerance && x < 50-testTolerance && e < 20-testTolerance {
				t.Errorf("segment %d passes through terrain at x=%g elev=%g", i, x, e)
			}
		}
	}
}

func TestTravelWalkingRamp(t *testing.T) {
	s := NewScene(0, &Ramp{
		Polygonal: rectFootprint(10, -10, 50, 10),
		Low:       0,
		High:      20,
		Origin:    geom.Point{X: 10},
		Direction: geom.Point{X: 1},
		RunLength: 40,
	})
	path, err := s.Travel(ElevatedPoint{}, ElevatedPoint{X: 60}, Walking)
	if err != nil {
		t.Fatal(err)
	}
	want := []ElevatedPoint{
		{X: 0},
		{X: 10},
		{X: 50, Elevation: 20},
		{X: 50},
		{X: 60},
	}
	if pathDiffers(path, want) {
		t.Errorf("want %v, have %v", want, path)
	}
}

func TestTravelMonotonicX(t *testing.T) {
	s := plateauScene()
	for _, d := range []Discipline{Walking, Flying, Burrowing} {
		path, err := s.Travel(ElevatedPoint{Elevation: 5},
			ElevatedPoint{X: 60, Elevation: 5}, d)
		if err != nil {
			t.Fatal(err)
		}
		for i := 1; i < len(path); i++ {
			if path[i].X < path[i-1].X-testTolerance {
				t.Errorf("%v: x reverses at waypoint %d: %v", d, i, path)
			}
		}
	}
}

func TestTravelDegenerate(t *testing.T) {
	s := plateauScene()
	p := ElevatedPoint{X: 30, Elevation: 25}
	path, err := s.Travel(p, p, Walking)
	if err != nil {
		t.Fatal(err)
	}
	if pathDiffers(path, []ElevatedPoint{p, p}) {
		t.Errorf("want the degenerate pair, have %v", path)
	}

	// Vertical-only moves are returned unchanged too.
	q := ElevatedPoint{X: 30, Elevation: 40}
	path, err = s.Travel(p, q, Flying)
	if err != nil {
		t.Fatal(err)
	}
	if pathDiffers(path, []ElevatedPoint{p, q}) {
		t.Errorf("want the vertical pair, have %v", path)
	}
}

func TestTravelNonFinite(t *testing.T) {
	s := plateauScene()
	bad := ElevatedPoint{X: math.NaN()}
	if _, err := s.Travel(bad, ElevatedPoint{X: 60}, Walking); err == nil {
		t.Error("want an error for a NaN start")
	}
	inf := ElevatedPoint{X: 60, Elevation: math.Inf(1)}
	if _, err := s.Travel(ElevatedPoint{}, inf, Flying); err == nil {
		t.Error("want an error for an infinite end")
	}
}

func TestTravelIterationCap(t *testing.T) {
	s := plateauScene()
	path, err := s.TravelOpts(ElevatedPoint{Elevation: 10},
		ElevatedPoint{X: 60, Elevation: 10},
		TravelOptions{Discipline: Flying, MaxIterations: 1})
	if err != nil {
		t.Fatal(err)
	}
	last := path[len(path)-1]
	if !different(last.X, 60) {
		t.Errorf("capped build should return a partial path, have %v", path)
	}
}

func TestTravelDiagonalSegment(t *testing.T) {
	// The same terrain crossed on a diagonal heading produces waypoints on
	// the segment's line.
	s := NewScene(0, &Plateau{
		Polygonal: rectFootprint(-100, -100, 100, 100),
		Elevation: 20,
	})
	start := ElevatedPoint{X: -200, Y: -200}
	end := ElevatedPoint{X: 200, Y: 200}
	path, err := s.Travel(start, end, Walking)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range path {
		if different(p.X, p.Y) {
			t.Errorf("waypoint %d off the segment line: %+v", i, p)
		}
	}
	first, last := path[0], path[len(path)-1]
	if pathDiffers([]ElevatedPoint{first}, []ElevatedPoint{start}) {
		t.Errorf("want start %+v, have %+v", start, first)
	}
	if different(last.X, end.X) || different(last.Y, end.Y) {
		t.Errorf("want end at %+v, have %+v", end, last)
	}
}
