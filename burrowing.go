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
	"log"

	"github.com/ctessum/geom"
)

// burrowPath builds the waypoint sequence for a traveler that may move
// through solid terrain. Inside the solid it tunnels straight at the
// destination until the line breaks the surface; in open air it behaves
// like a walker. Detours over high ground are straightened afterward
// wherever the direct segment stays within the solid.
func (sh *cutawayShape) burrowPath(start, end geom.Point, canEndBelow bool, maxIter int) []geom.Point {
	pts := []geom.Point{start}
	var anchors anchorList
	anchors.add(0)
	cur := start
	capped := false
	for iter := 0; cur.X < end.X-coordTol; iter++ {
		if iter >= maxIter {
			log.Printf("terrain: burrowing path from %v to %v exceeded %d iterations; returning partial path", start, end, maxIter)
			capped = true
			break
		}
		loc, _ := sh.classify(cur)
		switch loc {
		case LocGround:
			walked, _ := sh.surfaceWalk(cur, end.X)
			if len(walked) > 0 {
				for _, w := range walked {
					pts = append(pts, w)
					anchors.add(len(pts) - 1)
				}
				cur = pts[len(pts)-1]
				continue
			}
			fwd := geom.Point{X: cur.X + probeEps, Y: cur.Y}
			switch floc, _ := sh.classify(fwd); floc {
			case LocBelow:
				// Solid dead ahead. Tunnel rather than climb.
				cur = sh.tunnel(&pts, &anchors, cur, end)
			case LocGround:
				cur = sh.skipAlongFlat(cur, end.X)
			default:
				cur = sh.fallFrom(fwd)
				pts = append(pts, cur)
				anchors.add(len(pts) - 1)
			}
		case LocBelow:
			cur = sh.tunnel(&pts, &anchors, cur, end)
		default:
			cur = sh.fallFrom(cur)
			pts = append(pts, cur)
			anchors.add(len(pts) - 1)
		}
	}
	if !capped {
		last := pts[len(pts)-1]
		if canEndBelow {
			if !pointsEq(last, end) && sh.segmentWithin(last, end) {
				pts = append(pts, end)
			}
		} else if loc, _ := sh.classify(last); loc == LocBelow {
			if y, ok := sh.surfaceAbove(last); ok {
				pts[len(pts)-1] = geom.Point{X: last.X, Y: y}
			}
		}
	}
	pts = anchors.optimize(pts, sh.segmentWithin)
	pts = straightenPath(pts, sh.segmentWithin)
	pts = cleanPath(pts)
	return endpointCorrect(pts, end)
}

// tunnel advances straight toward end through the solid, stopping where the
// segment first breaks into open air. Emerging higher than it started makes
// the detour behind it a shortcut candidate.
func (sh *cutawayShape) tunnel(pts *[]geom.Point, anchors *anchorList, cur, end geom.Point) geom.Point {
	anchors.add(len(*pts) - 1)
	exit, ok := sh.firstExit(cur, end)
	if !ok {
		*pts = append(*pts, end)
		return end
	}
	if pointsEq(exit, cur) {
		// Already at the exit face. Nudge forward so progress resumes in
		// the open-air branch.
		return geom.Point{X: cur.X + probeEps, Y: cur.Y}
	}
	*pts = append(*pts, exit)
	anchors.add(len(*pts) - 1)
	if exit.Y > cur.Y+coordTol {
		*pts = anchors.optimize(*pts, sh.segmentWithin)
	}
	return (*pts)[len(*pts)-1]
}
