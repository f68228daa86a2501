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

// walkPath builds the waypoint sequence for a surface-bound traveler.
// The walker falls onto whatever supports it, follows the terrain
// boundary toward the destination's horizontal position, and climbs
// vertical faces it runs into. It never tunnels and never leaves the
// surface except while falling.
func (sh *cutawayShape) walkPath(start, end geom.Point, maxIter int) []geom.Point {
	pts := []geom.Point{start}
	cur := start
	for iter := 0; cur.X < end.X-coordTol; iter++ {
		if iter >= maxIter {
			log.Printf("terrain: walking path from %v to %v exceeded %d iterations; returning partial path", start, end, maxIter)
			break
		}
		loc, _ := sh.classify(cur)
		switch loc {
		case LocGround:
			walked, _ := sh.surfaceWalk(cur, end.X)
			if len(walked) > 0 {
				pts = append(pts, walked...)
				cur = pts[len(pts)-1]
				continue
			}
			// The surface walk made no progress. Probe just ahead to
			// tell a rising face from a drop-off.
			fwd := geom.Point{X: cur.X + probeEps, Y: cur.Y}
			switch floc, _ := sh.classify(fwd); floc {
			case LocBelow:
				y, ok := sh.surfaceAbove(cur)
				if !ok {
					cur = fwd
					continue
				}
				cur = geom.Point{X: cur.X, Y: y}
				pts = append(pts, cur)
			case LocGround:
				cur = sh.skipAlongFlat(cur, end.X)
			default:
				cur = sh.fallFrom(fwd)
				pts = append(pts, cur)
			}
		case LocBelow:
			// Buried. Surface through the nearest ceiling and resume.
			y, ok := sh.surfaceAbove(cur)
			if !ok {
				cur = geom.Point{X: cur.X + probeEps, Y: cur.Y}
				continue
			}
			cur = geom.Point{X: cur.X, Y: y}
			pts = append(pts, cur)
		default:
			cur = sh.fallFrom(cur)
			pts = append(pts, cur)
		}
	}
	pts = cleanPath(pts)
	return endpointCorrect(pts, end)
}

// fallFrom drops p onto the nearest supporting surface beneath it, or onto
// the scene floor when nothing lies below.
func (sh *cutawayShape) fallFrom(p geom.Point) geom.Point {
	if y, ok := sh.supportBelow(p); ok {
		return geom.Point{X: p.X, Y: y}
	}
	return geom.Point{X: p.X, Y: sh.floor}
}
