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

// cleanPath removes consecutive duplicate waypoints in place.
func cleanPath(pts []geom.Point) []geom.Point {
	if len(pts) < 2 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if !pointsEq(p, out[len(out)-1]) {
			out = append(out, p)
		}
	}
	return out
}

// straightenPath drops interior waypoints wherever the direct segment
// between their neighbors is legal, so detours left behind by boundary
// following collapse to diagonals.
func straightenPath(pts []geom.Point, legal func(p1, p2 geom.Point) bool) []geom.Point {
	for i := 0; i+2 < len(pts); {
		if legal(pts[i], pts[i+2]) {
			pts = append(pts[:i+1], pts[i+2:]...)
			continue
		}
		i++
	}
	return pts
}

// endpointCorrect snaps the final waypoint to end when end already lies on
// the last leg of the path. Builders may overshoot the destination by one
// surface vertex; the overshoot is clipped rather than kept.
func endpointCorrect(pts []geom.Point, end geom.Point) []geom.Point {
	n := len(pts)
	if n >= 2 && pointOnSegment(end, pts[n-2], pts[n-1]) {
		pts[n-1] = end
	}
	return pts
}
