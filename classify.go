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

// classify determines a cutaway point's relationship to the merged shape.
// Edge containment takes priority over interior containment so boundary
// points report as a surface: a point on a vertical edge is ground at the
// edge's top, solid against a left wall and open air against a right wall;
// a point on any non-vertical edge is ground.
func (sh *cutawayShape) classify(p geom.Point) (ElevationLocation, VerticalSide) {
	if p.X < sh.bounds.Min.X-coordTol || p.X > sh.bounds.Max.X+coordTol {
		return LocOutside, SideNone
	}

	var (
		sawTop, sawVertical, sawFlat bool
		side                         VerticalSide
	)
	for _, r := range sh.rings {
		if p.X < r.bounds.Min.X-coordTol || p.X > r.bounds.Max.X+coordTol {
			continue
		}
		n := len(r.pts)
		for i := 0; i < n; i++ {
			a, b := r.pts[i], r.pts[(i+1)%n]
			if !pointOnSegment(p, a, b) {
				continue
			}
			if approxEq(a.X, b.X) { // vertical edge
				top := math.Max(a.Y, b.Y)
				bottom := math.Min(a.Y, b.Y)
				if approxEq(p.Y, top) {
					sawTop = true
					side = sh.wallSide(a.X, p.Y)
				} else if p.Y > bottom+coordTol {
					sawVertical = true
					side = sh.wallSide(a.X, p.Y)
				}
			} else {
				sawFlat = true
			}
		}
	}
	switch {
	case sawTop:
		return LocGround, side
	case sawVertical:
		if side == SideLeft {
			return LocBelow, side
		}
		return LocAbove, side
	case sawFlat:
		return LocGround, SideNone
	}
	if p.Within(sh.merged) == geom.Inside {
		return LocBelow, SideNone
	}
	return LocAbove, SideNone
}

// wallSide reports which side of the solid a vertical edge at x is on: a
// left wall has solid to its right, so travel in increasing x approaches the
// surface from underground.
func (sh *cutawayShape) wallSide(x, y float64) VerticalSide {
	if (geom.Point{X: x + probeEps, Y: y}).Within(sh.merged) != geom.Outside {
		return SideLeft
	}
	return SideRight
}

// surfaceElevations returns the sorted elevations at which the vertical
// line through x meets the shape's boundary.
func (sh *cutawayShape) surfaceElevations(x float64) []float64 {
	var ys []float64
	for _, r := range sh.rings {
		if x < r.bounds.Min.X-coordTol || x > r.bounds.Max.X+coordTol {
			continue
		}
		n := len(r.pts)
		for i := 0; i < n; i++ {
			a, b := r.pts[i], r.pts[(i+1)%n]
			if approxEq(a.X, b.X) {
				if approxEq(a.X, x) {
					ys = append(ys, math.Max(a.Y, b.Y))
				}
				continue
			}
			lo, hi := a.X, b.X
			if lo > hi {
				lo, hi = hi, lo
			}
			if x < lo-coordTol || x > hi+coordTol {
				continue
			}
			t := (x - a.X) / (b.X - a.X)
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			ys = append(ys, a.Y+t*(b.Y-a.Y))
		}
	}
	sort.Float64s(ys)
	out := ys[:0]
	for _, y := range ys {
		if len(out) == 0 || !approxEq(out[len(out)-1], y) {
			out = append(out, y)
		}
	}
	return out
}

// elevationUponEntry returns the nearest supporting elevation in the
// direction implied by the caller's state: the closest boundary elevation
// strictly above p when rising, and strictly below p when falling.
func (sh *cutawayShape) elevationUponEntry(p geom.Point, rising bool) (float64, bool) {
	if rising {
		return sh.surfaceAbove(p)
	}
	return sh.supportBelow(p)
}

// supportBelow returns the nearest boundary elevation strictly below p.
func (sh *cutawayShape) supportBelow(p geom.Point) (float64, bool) {
	best := math.Inf(-1)
	found := false
	for _, y := range sh.surfaceElevations(p.X) {
		if y < p.Y-coordTol && y > best {
			best = y
			found = true
		}
	}
	return best, found
}

// surfaceAbove returns the nearest boundary elevation strictly above p.
func (sh *cutawayShape) surfaceAbove(p geom.Point) (float64, bool) {
	best := math.Inf(1)
	found := false
	for _, y := range sh.surfaceElevations(p.X) {
		if y > p.Y+coordTol && y < best {
			best = y
			found = true
		}
	}
	return best, found
}

// segmentCuts returns the sorted parameters, always including 0 and 1, at
// which the segment a-b crosses the shape's boundary.
func (sh *cutawayShape) segmentCuts(a, b geom.Point) []float64 {
	ts := []float64{0, 1}
	for _, r := range sh.rings {
		n := len(r.pts)
		for i := 0; i < n; i++ {
			e1, e2 := r.pts[i], r.pts[(i+1)%n]
			for _, pt := range segmentIntersections(a, b, e1, e2) {
				t := segmentParam(a, b, pt)
				if t > 0 && t < 1 {
					ts = append(ts, t)
				}
			}
		}
	}
	sort.Float64s(ts)
	return ts
}

// segmentWithin reports whether the segment a-b stays inside the shape,
// boundary contact included, over its whole length.
func (sh *cutawayShape) segmentWithin(a, b geom.Point) bool {
	ts := sh.segmentCuts(a, b)
	for i := 0; i < len(ts)-1; i++ {
		mid := lerpPoint(a, b, (ts[i]+ts[i+1])/2)
		if mid.Within(sh.merged) == geom.Outside {
			return false
		}
	}
	return true
}

// segmentCrosses reports whether any part of the segment a-b passes through
// the shape's strict interior. Boundary contact alone does not count.
func (sh *cutawayShape) segmentCrosses(a, b geom.Point) bool {
	ts := sh.segmentCuts(a, b)
	for i := 0; i < len(ts)-1; i++ {
		mid := lerpPoint(a, b, (ts[i]+ts[i+1])/2)
		if mid.Within(sh.merged) == geom.Inside {
			return true
		}
	}
	return false
}

// firstPenetration returns the point at which the segment a-b first enters
// the shape's strict interior, if it does.
func (sh *cutawayShape) firstPenetration(a, b geom.Point) (geom.Point, bool) {
	ts := sh.segmentCuts(a, b)
	for i := 0; i < len(ts)-1; i++ {
		mid := lerpPoint(a, b, (ts[i]+ts[i+1])/2)
		if mid.Within(sh.merged) == geom.Inside {
			return lerpPoint(a, b, ts[i]), true
		}
	}
	return geom.Point{}, false
}

// firstExit returns the point at which the segment a-b, starting inside the
// shape, first leaves it for open air. Running along the boundary still
// counts as inside.
func (sh *cutawayShape) firstExit(a, b geom.Point) (geom.Point, bool) {
	ts := sh.segmentCuts(a, b)
	for i := 0; i < len(ts)-1; i++ {
		mid := lerpPoint(a, b, (ts[i]+ts[i+1])/2)
		if mid.Within(sh.merged) == geom.Outside {
			return lerpPoint(a, b, ts[i]), true
		}
	}
	return geom.Point{}, false
}
