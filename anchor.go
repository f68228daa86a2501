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

// An anchorList records indices into an in-progress waypoint list from
// which a straight diagonal shortcut may later replace the boundary-
// following detour. Shortcut legality is validated before the waypoint
// sequence is mutated, and anchors past a splice point are discarded so no
// stale index survives.
type anchorList []int

func (a *anchorList) add(i int) {
	if n := len(*a); n == 0 || (*a)[n-1] != i {
		*a = append(*a, i)
	}
}

// optimize replaces the detour between the earliest viable anchor and the
// final waypoint with the direct segment between them. legal reports
// whether the straight segment between two points may be traversed under
// the current movement discipline.
func (a *anchorList) optimize(pts []geom.Point, legal func(p1, p2 geom.Point) bool) []geom.Point {
	if len(pts) < 3 {
		return pts
	}
	end := pts[len(pts)-1]
	for _, idx := range *a {
		if idx >= len(pts)-2 {
			break
		}
		if !legal(pts[idx], end) {
			continue
		}
		pts = append(pts[:idx+1], end)
		keep := (*a)[:0]
		for _, j := range *a {
			if j <= idx {
				keep = append(keep, j)
			}
		}
		*a = keep
		return pts
	}
	return pts
}
