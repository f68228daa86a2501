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

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats"
)

// coordTol is the tolerance for coordinate comparisons in cutaway space.
const coordTol = 1e-9

// probeEps is the offset used when classifying which side of a vertical
// edge is solid and whether an edge is a walkable top surface.
const probeEps = 1e-6

func approxEq(a, b float64) bool {
	return floats.EqualWithinAbs(a, b, coordTol)
}

func pointsEq(a, b geom.Point) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y)
}

func lerpPoint(a, b geom.Point, t float64) geom.Point {
	return geom.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// pointOnSegment reports whether p lies on the segment a-b, endpoints
// included. The perpendicular tolerance is coordTol regardless of segment
// length.
func pointOnSegment(p, a, b geom.Point) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	l := math.Hypot(dx, dy)
	if l < coordTol {
		return pointsEq(p, a)
	}
	cross := dx*(p.Y-a.Y) - dy*(p.X-a.X)
	if math.Abs(cross) > coordTol*l {
		return false
	}
	dot := (p.X-a.X)*dx + (p.Y-a.Y)*dy
	return dot > -coordTol*l && dot < l*l+coordTol*l
}

// segmentIntersections returns the points where segments a1-a2 and b1-b2
// meet. Collinear overlaps report the overlapping endpoints.
func segmentIntersections(a1, a2, b1, b2 geom.Point) []geom.Point {
	d1 := geom.Point{X: a2.X - a1.X, Y: a2.Y - a1.Y}
	d2 := geom.Point{X: b2.X - b1.X, Y: b2.Y - b1.Y}
	denom := d1.X*d2.Y - d1.Y*d2.X
	if denom != 0 {
		e := geom.Point{X: b1.X - a1.X, Y: b1.Y - a1.Y}
		s := (e.X*d2.Y - e.Y*d2.X) / denom
		t := (e.X*d1.Y - e.Y*d1.X) / denom
		if s < -coordTol || s > 1+coordTol || t < -coordTol || t > 1+coordTol {
			return nil
		}
		return []geom.Point{lerpPoint(a1, a2, s)}
	}
	// Parallel segments only contribute if they are collinear.
	if !pointOnSegment(b1, a1, a2) && !pointOnSegment(b2, a1, a2) &&
		!pointOnSegment(a1, b1, b2) {
		return nil
	}
	var out []geom.Point
	for _, p := range []geom.Point{b1, b2} {
		if pointOnSegment(p, a1, a2) {
			out = append(out, p)
		}
	}
	for _, p := range []geom.Point{a1, a2} {
		if pointOnSegment(p, b1, b2) {
			out = append(out, p)
		}
	}
	return out
}

// segmentParam returns p's parameter along the segment a-b, using the
// dominant axis for numerical stability.
func segmentParam(a, b, p geom.Point) float64 {
	if math.Abs(b.X-a.X) >= math.Abs(b.Y-a.Y) {
		if b.X == a.X {
			return 0
		}
		return (p.X - a.X) / (b.X - a.X)
	}
	return (p.Y - a.Y) / (b.Y - a.Y)
}

// signedArea returns the signed area of an open ring: positive for
// counterclockwise winding with the y axis pointing up.
func signedArea(pts geom.Path) float64 {
	var s float64
	for i := range pts {
		j := (i + 1) % len(pts)
		s += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return s / 2
}
