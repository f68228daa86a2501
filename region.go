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
	"sort"

	"github.com/ctessum/geom"
)

// A Region is a terrain volume overlaid on the scene. Its footprint on the
// ground plane is Polygonal so regions can be held in a spatial index; the
// vertical profile over the footprint is up to the implementation.
type Region interface {
	geom.Polygonal

	// CrossSection returns the solid cutaway polygons where the travel
	// segment described by f passes through the region. The returned
	// polygons must have exact vertical sides, and their top boundaries
	// must follow the region's elevation profile.
	CrossSection(f Frame) []geom.Polygon

	// ElevationUponEntry returns the surface elevation a traveler would
	// rest at after entering the region at scene point p.
	ElevationUponEntry(p geom.Point) float64
}

// A Plateau is a region with a constant top elevation.
type Plateau struct {
	geom.Polygonal // footprint on the ground plane

	// Elevation is the top surface elevation.
	Elevation float64
	// Base is the bottom of the solid volume.
	Base float64
}

// ElevationUponEntry implements the Region interface.
func (p *Plateau) ElevationUponEntry(geom.Point) float64 { return p.Elevation }

// CrossSection implements the Region interface. Each interval where the
// travel segment lies inside the footprint yields one rectangle from Base to
// Elevation.
func (p *Plateau) CrossSection(f Frame) []geom.Polygon {
	var out []geom.Polygon
	for _, iv := range footprintIntervals(f, p.Polygonal) {
		out = append(out, geom.Polygon{{
			{X: iv[0], Y: p.Base},
			{X: iv[1], Y: p.Base},
			{X: iv[1], Y: p.Elevation},
			{X: iv[0], Y: p.Elevation},
		}})
	}
	return out
}

// A Ramp is a region whose top elevation varies linearly from Low at Origin
// to High at the point RunLength along Direction from Origin, clamped to
// [Low, High] beyond those ends.
type Ramp struct {
	geom.Polygonal // footprint on the ground plane

	Low, High float64
	// Base is the bottom of the solid volume.
	Base float64
	// Origin is the scene point where the surface elevation is Low.
	Origin geom.Point
	// Direction points uphill. It need not be normalized.
	Direction geom.Point
	// RunLength is the uphill distance from Low to High.
	RunLength float64
}

// gradient returns the coefficients of the linear map from cutaway x to the
// ramp's profile parameter t, so that t(x) = c0 + c1*x.
func (r *Ramp) gradient(f Frame) (c0, c1 float64) {
	d := r.Direction
	if l := math.Hypot(d.X, d.Y); l > 0 {
		d = geom.Point{X: d.X / l, Y: d.Y / l}
	}
	run := r.RunLength
	if run <= 0 {
		run = 1
	}
	c0 = ((f.Start.X-r.Origin.X)*d.X + (f.Start.Y-r.Origin.Y)*d.Y) / run
	c1 = (f.dir.X*d.X + f.dir.Y*d.Y) / run
	return c0, c1
}

func clampUnit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// ElevationUponEntry implements the Region interface.
func (r *Ramp) ElevationUponEntry(p geom.Point) float64 {
	d := r.Direction
	if l := math.Hypot(d.X, d.Y); l > 0 {
		d = geom.Point{X: d.X / l, Y: d.Y / l}
	}
	run := r.RunLength
	if run <= 0 {
		run = 1
	}
	t := clampUnit(((p.X-r.Origin.X)*d.X + (p.Y-r.Origin.Y)*d.Y) / run)
	return r.Low + t*(r.High-r.Low)
}

// CrossSection implements the Region interface. The top edge of each
// cross-section is piecewise linear: linear along the ramp's run and flat
// where the profile parameter is clamped.
func (r *Ramp) CrossSection(f Frame) []geom.Polygon {
	c0, c1 := r.gradient(f)
	elevAt := func(x float64) float64 {
		return r.Low + clampUnit(c0+c1*x)*(r.High-r.Low)
	}
	var out []geom.Polygon
	for _, iv := range footprintIntervals(f, r.Polygonal) {
		var breaks []float64
		if c1 != 0 {
			// The profile kinks where t crosses 0 and 1.
			for _, k := range []float64{0, 1} {
				if x := (k - c0) / c1; x > iv[0]+coordTol && x < iv[1]-coordTol {
					breaks = append(breaks, x)
				}
			}
			sort.Float64s(breaks)
		}
		ring := geom.Path{
			{X: iv[0], Y: r.Base},
			{X: iv[1], Y: r.Base},
			{X: iv[1], Y: elevAt(iv[1])},
		}
		for i := len(breaks) - 1; i >= 0; i-- {
			ring = append(ring, geom.Point{X: breaks[i], Y: elevAt(breaks[i])})
		}
		// The toe point collapses onto the base corner when the low end
		// sits at base elevation.
		ring = append(ring, geom.Point{X: iv[0], Y: elevAt(iv[0])})
		out = append(out, geom.Polygon{dedupRing(ring)})
	}
	return out
}

// Stairs is a ramp whose profile is quantized into Steps treads of equal
// rise. Tread elevations are evenly spaced with the topmost tread at High.
type Stairs struct {
	Ramp
	Steps int
}

func (s *Stairs) steps() int {
	if s.Steps < 1 {
		return 1
	}
	return s.Steps
}

// ElevationUponEntry implements the Region interface.
func (s *Stairs) ElevationUponEntry(p geom.Point) float64 {
	if s.High == s.Low {
		return s.High
	}
	n := s.steps()
	t := (s.Ramp.ElevationUponEntry(p) - s.Low) / (s.High - s.Low)
	i := int(t * float64(n))
	if i >= n {
		i = n - 1
	}
	return s.Low + (s.High-s.Low)*float64(i+1)/float64(n)
}

// CrossSection implements the Region interface. The top edge is
// piecewise-constant with a riser wherever the segment crosses a step
// boundary.
func (s *Stairs) CrossSection(f Frame) []geom.Polygon {
	c0, c1 := s.gradient(f)
	n := s.steps()
	var out []geom.Polygon
	for _, iv := range footprintIntervals(f, s.Polygonal) {
		breaks := []float64{iv[0]}
		if c1 != 0 {
			// One riser for every tread boundary t = k/n crossed.
			for k := 0; k <= n; k++ {
				if x := (float64(k)/float64(n) - c0) / c1; x > iv[0]+coordTol && x < iv[1]-coordTol {
					breaks = append(breaks, x)
				}
			}
		}
		breaks = append(breaks, iv[1])
		sort.Float64s(breaks)

		ring := geom.Path{
			{X: iv[0], Y: s.Base},
			{X: iv[1], Y: s.Base},
		}
		// Build the stepped top edge from right to left.
		for i := len(breaks) - 1; i > 0; i-- {
			x1, x0 := breaks[i], breaks[i-1]
			y := s.ElevationUponEntry(f.GroundPoint((x0 + x1) / 2))
			ring = append(ring,
				geom.Point{X: x1, Y: y},
				geom.Point{X: x0, Y: y})
		}
		out = append(out, geom.Polygon{dedupRing(ring)})
	}
	return out
}

// footprintIntervals returns the sorted intervals of cutaway x over which
// the travel segment lies inside the footprint.
func footprintIntervals(f Frame, footprint geom.Polygonal) [][2]float64 {
	a := geom.Point{X: f.Start.X, Y: f.Start.Y}
	b := geom.Point{X: f.End.X, Y: f.End.Y}
	xs := []float64{0, f.length}
	for _, poly := range footprint.Polygons() {
		for _, ring := range poly {
			for i := range ring {
				p1 := ring[i]
				p2 := ring[(i+1)%len(ring)]
				for _, pt := range segmentIntersections(a, b, p1, p2) {
					xs = append(xs, math.Hypot(pt.X-a.X, pt.Y-a.Y))
				}
			}
		}
	}
	sort.Float64s(xs)

	var out [][2]float64
	for i := 0; i < len(xs)-1; i++ {
		x0, x1 := xs[i], xs[i+1]
		if x1-x0 < coordTol {
			continue
		}
		mid := f.GroundPoint((x0 + x1) / 2)
		if mid.Within(footprint) == geom.Outside {
			continue
		}
		if n := len(out); n > 0 && approxEq(out[n-1][1], x0) {
			out[n-1][1] = x1
		} else {
			out = append(out, [2]float64{x0, x1})
		}
	}
	return out
}

// dedupRing removes consecutive duplicate points, including a duplicated
// closing point.
func dedupRing(ring geom.Path) geom.Path {
	out := ring[:0]
	for _, p := range ring {
		if len(out) == 0 || !pointsEq(out[len(out)-1], p) {
			out = append(out, p)
		}
	}
	for len(out) > 1 && pointsEq(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}
