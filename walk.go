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

import "github.com/ctessum/geom"

// surfaceWalk walks the shape's boundary from a, which must lie on it,
// toward increasing x. Boundary points are emitted until the walk passes
// targetX, in which case the final point is clipped exactly at that x and
// the walk reports reached, or until the boundary would turn back in x, in
// which case the walk stops short: cutaway polygons can be locally
// non-monotonic (the underside of an overhang), and following edges
// backward would carry the traveler underneath solid terrain. The caller
// then resolves the stop vertically and re-enters.
//
// Vertical edges are traversed in either direction; they are how a walking
// traveler rises and falls at surface boundaries.
func (sh *cutawayShape) surfaceWalk(a geom.Point, targetX float64) ([]geom.Point, bool) {
	for ri := range sh.rings {
		r := &sh.rings[ri]
		if a.X < r.bounds.Min.X-coordTol || a.X > r.bounds.Max.X+coordTol {
			continue
		}
		n := len(r.pts)
		for i := 0; i < n; i++ {
			if !pointOnSegment(a, r.pts[i], r.pts[(i+1)%n]) {
				continue
			}
			d := sh.walkDirection(r, i, a)
			if d == 0 {
				continue
			}
			if pts, reached := walkRing(r, i, d, a, targetX); len(pts) > 0 || reached {
				return pts, reached
			}
		}
	}
	return nil, false
}

// skipAlongFlat advances a grounded point whose surface walk stalled to the
// next boundary vertex ahead of it, clipped at targetX. A stalled walk with
// ground still ahead means the supporting edge is level, and a level edge
// runs at least to the next vertex, so the stride stays on the surface.
func (sh *cutawayShape) skipAlongFlat(cur geom.Point, targetX float64) geom.Point {
	next := targetX
	for _, r := range sh.rings {
		for _, p := range r.pts {
			if p.X > cur.X+coordTol && p.X < next {
				next = p.X
			}
		}
	}
	return geom.Point{X: next, Y: cur.Y}
}

// walkDirection decides which way around the ring moves forward in x along
// a walkable top surface, starting from a on edge i. It returns +1 or -1,
// or 0 if both directions turn back or lead onto an underside. When a lies
// on a shared vertex, this resolves the tie in favor of the edge that
// continues forward.
func (sh *cutawayShape) walkDirection(r *cutRing, i int, a geom.Point) int {
	n := len(r.pts)
	for _, d := range []int{1, -1} {
		idx := i
		if d > 0 {
			idx = i + 1
		}
		prev := a
		for k := 0; k < n; k++ {
			v := r.pts[((idx%n)+n)%n]
			idx += d
			if pointsEq(v, prev) {
				continue
			}
			if approxEq(v.X, prev.X) { // vertical run
				prev = v
				continue
			}
			if v.X < prev.X {
				break
			}
			mid := lerpPoint(prev, v, 0.5)
			if sh.walkableTop(mid) {
				return d
			}
			break
		}
	}
	return 0
}

// walkableTop reports whether a boundary point has solid terrain below it
// and open air above it.
func (sh *cutawayShape) walkableTop(m geom.Point) bool {
	up := geom.Point{X: m.X, Y: m.Y + probeEps}
	down := geom.Point{X: m.X, Y: m.Y - probeEps}
	return up.Within(sh.merged) != geom.Inside && down.Within(sh.merged) != geom.Outside
}

// walkRing emits ring vertices from a in direction d until targetX is
// reached or the boundary turns back in x.
func walkRing(r *cutRing, i, d int, a geom.Point, targetX float64) ([]geom.Point, bool) {
	n := len(r.pts)
	idx := i
	if d > 0 {
		idx = i + 1
	}
	cur := a
	var pts []geom.Point
	for k := 0; k < 2*n+2; k++ {
		v := r.pts[((idx%n)+n)%n]
		idx += d
		if pointsEq(v, cur) {
			continue
		}
		if v.X < cur.X-coordTol {
			return pts, false
		}
		if v.X > targetX+coordTol {
			t := (targetX - cur.X) / (v.X - cur.X)
			pts = append(pts, geom.Point{X: targetX, Y: cur.Y + t*(v.Y-cur.Y)})
			return pts, true
		}
		pts = append(pts, v)
		cur = v
		if cur.X >= targetX-coordTol {
			return pts, true
		}
	}
	return pts, false
}
