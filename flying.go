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

// flyPath builds the waypoint sequence for an airborne traveler. The flyer
// glides straight at the destination whenever the segment stays in open
// air, and otherwise rides the terrain surface up and over the obstacle.
// Legality checks run against the inverted shape, whose interior is the
// air between and above the terrain.
func (sh *cutawayShape) flyPath(start, end geom.Point, maxIter int) []geom.Point {
	air := sh.invert(start, end)
	legal := air.segmentWithin
	pts := []geom.Point{start}
	var anchors anchorList
	cur := start
	capped := false
	for iter := 0; cur.X < end.X-coordTol; iter++ {
		if iter >= maxIter {
			log.Printf("terrain: flying path from %v to %v exceeded %d iterations; returning partial path", start, end, maxIter)
			capped = true
			break
		}
		if loc, _ := sh.classify(cur); loc == LocBelow {
			// Buried start. Rise out of the solid before flying anywhere.
			y, ok := sh.surfaceAbove(cur)
			if !ok {
				cur = geom.Point{X: cur.X + probeEps, Y: cur.Y}
				continue
			}
			cur = geom.Point{X: cur.X, Y: y}
			pts = append(pts, cur)
			pts = anchors.optimize(pts, legal)
			cur = pts[len(pts)-1]
			continue
		}
		anchors.add(len(pts) - 1)
		if legal(cur, end) {
			pts = append(pts, end)
			cur = end
			continue
		}
		if hit, ok := sh.firstPenetration(cur, end); ok && hit.X > cur.X+coordTol {
			// Glide until the direct line meets terrain.
			pts = append(pts, hit)
			cur = hit
			continue
		}
		walked, _ := sh.surfaceWalk(cur, end.X)
		if len(walked) > 0 {
			from := cur
			for _, w := range walked {
				pts = append(pts, w)
				anchors.add(len(pts) - 1)
			}
			cur = pts[len(pts)-1]
			if cur.Y > from.Y+coordTol {
				pts = anchors.optimize(pts, legal)
				cur = pts[len(pts)-1]
			}
			continue
		}
		fwd := geom.Point{X: cur.X + probeEps, Y: cur.Y}
		if floc, _ := sh.classify(fwd); floc == LocBelow {
			y, ok := sh.surfaceAbove(cur)
			if !ok {
				cur = fwd
				continue
			}
			cur = geom.Point{X: cur.X, Y: y}
			pts = append(pts, cur)
			pts = anchors.optimize(pts, legal)
			cur = pts[len(pts)-1]
			continue
		}
		cur = fwd
	}
	if last := pts[len(pts)-1]; !capped && !pointsEq(last, end) && legal(last, end) {
		pts = append(pts, end)
	}
	pts = anchors.optimize(pts, legal)
	pts = straightenPath(pts, legal)
	pts = cleanPath(pts)
	return endpointCorrect(pts, end)
}
