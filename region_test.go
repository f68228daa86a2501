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
	"testing"

	"github.com/ctessum/geom"
)

func rectFootprint(x0, y0, x1, y1 float64) geom.Polygon {
	return geom.Polygon{{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}}
}

// eastFrame is a travel segment along the x axis from the origin.
func eastFrame(length float64) Frame {
	return NewFrame(ElevatedPoint{}, ElevatedPoint{X: length})
}

func TestFootprintIntervals(t *testing.T) {
	f := eastFrame(60)
	iv := footprintIntervals(f, rectFootprint(10, -10, 50, 10))
	if len(iv) != 1 {
		t.Fatalf("want 1 interval, have %d: %v", len(iv), iv)
	}
	if different(iv[0][0], 10) || different(iv[0][1], 50) {
		t.Errorf("want [10 50], have %v", iv[0])
	}
}

func TestFootprintIntervalsMiss(t *testing.T) {
	f := eastFrame(60)
	if iv := footprintIntervals(f, rectFootprint(10, 5, 50, 10)); len(iv) != 0 {
		t.Errorf("segment outside footprint: want no intervals, have %v", iv)
	}
}

func TestFootprintIntervalsAdjacentMerge(t *testing.T) {
	// Two footprint rings sharing the edge x=30 must yield one interval.
	fp := geom.Polygon{
		rectFootprint(10, -10, 30, 10)[0],
		rectFootprint(30, -10, 50, 10)[0],
	}
	iv := footprintIntervals(eastFrame(60), fp)
	if len(iv) != 1 {
		t.Fatalf("want 1 merged interval, have %d: %v", len(iv), iv)
	}
	if different(iv[0][0], 10) || different(iv[0][1], 50) {
		t.Errorf("want [10 50], have %v", iv[0])
	}
}

func TestPlateauCrossSection(t *testing.T) {
	p := &Plateau{
		Polygonal: rectFootprint(10, -10, 50, 10),
		Elevation: 20,
	}
	cs := p.CrossSection(eastFrame(60))
	if len(cs) != 1 {
		t.Fatalf("want 1 cross-section, have %d", len(cs))
	}
	b := cs[0].Bounds()
	for _, c := range []struct {
		name       string
		have, want float64
	}{
		{"min x", b.Min.X, 10},
		{"max x", b.Max.X, 50},
		{"min y", b.Min.Y, 0},
		{"max y", b.Max.Y, 20},
	} {
		if different(c.have, c.want) {
			t.Errorf("%s: want %g, have %g", c.name, c.want, c.have)
		}
	}
	if e := p.ElevationUponEntry(geom.Point{X: 30}); different(e, 20) {
		t.Errorf("elevation upon entry: want 20, have %g", e)
	}
}

func TestRampCrossSection(t *testing.T) {
	r := &Ramp{
		Polygonal: rectFootprint(10, -10, 50, 10),
		Low:       0,
		High:      20,
		Origin:    geom.Point{X: 10},
		Direction: geom.Point{X: 1},
		RunLength: 40,
	}
	cs := r.CrossSection(eastFrame(60))
	if len(cs) != 1 {
		t.Fatalf("want 1 cross-section, have %d", len(cs))
	}
	b := cs[0].Bounds()
	if different(b.Max.Y, 20) || different(b.Min.Y, 0) {
		t.Errorf("want elevations 0..20, have %g..%g", b.Min.Y, b.Max.Y)
	}

	// The toe sits at base elevation, so the ring collapses to a triangle
	// with no duplicate closing vertex.
	ring := cs[0][0]
	if len(ring) != 3 {
		t.Fatalf("want 3 ring vertices, have %d: %v", len(ring), ring)
	}
	if pointsEq(ring[0], ring[len(ring)-1]) {
		t.Errorf("ring closes on a duplicate vertex: %v", ring)
	}

	for _, c := range []struct {
		x, want float64
	}{
		{10, 0},
		{30, 10},
		{50, 20},
		{5, 0},   // before the run
		{100, 20}, // past the run
	} {
		if e := r.ElevationUponEntry(geom.Point{X: c.x}); different(e, c.want) {
			t.Errorf("entry at x=%g: want %g, have %g", c.x, c.want, e)
		}
	}
}

func TestRampCrossSectionClampKink(t *testing.T) {
	// A footprint wider than the run produces a flat shelf past the top.
	r := &Ramp{
		Polygonal: rectFootprint(10, -10, 50, 10),
		Low:       0,
		High:      20,
		Origin:    geom.Point{X: 10},
		Direction: geom.Point{X: 1},
		RunLength: 20, // tops out at x=30
	}
	cs := r.CrossSection(eastFrame(60))
	if len(cs) != 1 {
		t.Fatalf("want 1 cross-section, have %d", len(cs))
	}
	found := false
	for _, p := range cs[0][0] {
		if !different(p.X, 30) && !different(p.Y, 20) {
			found = true
		}
	}
	if !found {
		t.Errorf("no kink vertex at {30 20} in %v", cs[0][0])
	}
}

func TestStairsElevationUponEntry(t *testing.T) {
	s := &Stairs{
		Ramp: Ramp{
			Polygonal: rectFootprint(0, -10, 40, 10),
			Low:       0,
			High:      20,
			Origin:    geom.Point{},
			Direction: geom.Point{X: 1},
			RunLength: 40,
		},
		Steps: 4,
	}
	// Treads are evenly spaced with the topmost at High.
	for _, c := range []struct {
		x, want float64
	}{
		{0, 5},
		{5, 5},
		{12, 10},
		{25, 15},
		{39, 20},
		{40, 20},
	} {
		if e := s.ElevationUponEntry(geom.Point{X: c.x}); different(e, c.want) {
			t.Errorf("entry at x=%g: want %g, have %g", c.x, c.want, e)
		}
	}
}

func TestStairsCrossSection(t *testing.T) {
	s := &Stairs{
		Ramp: Ramp{
			Polygonal: rectFootprint(0, -10, 40, 10),
			Low:       0,
			High:      20,
			Origin:    geom.Point{},
			Direction: geom.Point{X: 1},
			RunLength: 40,
		},
		Steps: 4,
	}
	cs := s.CrossSection(eastFrame(40))
	if len(cs) != 1 {
		t.Fatalf("want 1 cross-section, have %d", len(cs))
	}
	b := cs[0].Bounds()
	if different(b.Max.Y, 20) {
		t.Errorf("top tread: want 20, have %g", b.Max.Y)
	}
	// 4 treads and 3 risers: 2 base corners plus 2 vertices per tread.
	if n := len(cs[0][0]); n != 10 {
		t.Errorf("want 10 ring vertices, have %d: %v", n, cs[0][0])
	}
}

func TestDedupRing(t *testing.T) {
	ring := geom.Path{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 0},
	}
	out := dedupRing(ring)
	if len(out) != 3 {
		t.Errorf("want 3 points, have %d: %v", len(out), out)
	}
}
