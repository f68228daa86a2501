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
	"sort"

	"github.com/ctessum/geom"
)

// bottomSentinel bounds floor filler polygons from below, far under any
// plausible elevation.
const bottomSentinel = -1e6

// A cutawayShape is the merged cutaway cross-section of all terrain crossed
// by one travel segment.
type cutawayShape struct {
	merged geom.Polygon // all rings closed, for interior tests
	rings  []cutRing
	bounds *geom.Bounds
	floor  float64
}

// A cutRing is one boundary ring of the merged shape. The point list is
// open: the closing edge from the last point back to the first is implicit.
type cutRing struct {
	pts    geom.Path
	bounds *geom.Bounds
	hole   bool
}

// buildCutaway projects the terrain regions crossed by the travel segment
// into cutaway space, fills gaps at or below the scene floor, and merges
// everything into one shape. It returns nil if no region crosses the
// segment or if merging leaves no solid area; the caller then takes the
// direct path.
func buildCutaway(f Frame, regions []Region, floor float64) *cutawayShape {
	var sections []geom.Polygon
	for _, r := range regions {
		sections = append(sections, r.CrossSection(f)...)
	}
	if len(sections) == 0 {
		return nil
	}
	sections = append(sections, floorFillers(sections, f.Length(), floor)...)

	merged := sections[0]
	for _, p := range sections[1:] {
		merged = merged.Union(p)
	}

	sh := newCutawayShape(merged, floor)
	for _, r := range sh.rings {
		if !r.hole {
			return sh
		}
	}
	return nil
}

// floorFillers synthesizes polygons spanning every horizontal gap between
// cross-sections that extend below the scene floor, so the merged shape is
// solid from the floor down everywhere along the segment. Fillers extend
// from the floor down to a large negative sentinel elevation.
func floorFillers(sections []geom.Polygon, length, floor float64) []geom.Polygon {
	type event struct {
		x     float64
		enter bool
	}
	var events []event
	for _, p := range sections {
		b := p.Bounds()
		if b.Min.Y >= floor-coordTol {
			// Only sections extending below the floor interrupt it.
			// A filler under a floor-based section is harmless: the
			// union absorbs the overlap.
			continue
		}
		events = append(events,
			event{x: b.Min.X, enter: true},
			event{x: b.Max.X, enter: false})
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].x != events[j].x {
			return events[i].x < events[j].x
		}
		return events[i].enter && !events[j].enter
	})

	slab := func(x0, x1 float64) geom.Polygon {
		return geom.Polygon{{
			{X: x0, Y: bottomSentinel},
			{X: x1, Y: bottomSentinel},
			{X: x1, Y: floor},
			{X: x0, Y: floor},
		}}
	}

	var fillers []geom.Polygon
	last := 0.0
	inside := 0
	for _, e := range events {
		x := e.x
		if x < 0 {
			x = 0
		} else if x > length {
			x = length
		}
		if e.enter {
			if inside == 0 && x-last > coordTol {
				fillers = append(fillers, slab(last, x))
			}
			inside++
		} else {
			inside--
			if inside == 0 {
				last = x
			}
		}
	}
	if inside == 0 && length-last > coordTol {
		fillers = append(fillers, slab(last, length))
	}
	return fillers
}

// newCutawayShape strips degenerate edges from the merged polygon and
// indexes its rings. Duplicate consecutive points would break the boundary
// walk and must not survive.
func newCutawayShape(merged geom.Polygon, floor float64) *cutawayShape {
	sh := &cutawayShape{bounds: geom.NewBounds(), floor: floor}
	for _, ring := range merged {
		pts := dedupRing(append(geom.Path{}, ring...))
		if len(pts) < 3 {
			continue
		}
		r := cutRing{pts: pts, bounds: geom.NewBounds(), hole: signedArea(pts) < 0}
		for _, p := range pts {
			r.bounds.Extend(geom.NewBoundsPoint(p))
		}
		sh.rings = append(sh.rings, r)
		sh.bounds.Extend(r.bounds)
		closed := append(append(geom.Path{}, pts...), pts[0])
		sh.merged = append(sh.merged, closed)
	}
	if len(sh.rings) == 0 {
		return &cutawayShape{bounds: geom.NewBounds(), floor: floor}
	}
	return sh
}

// polygons returns the shape's rings, one closed polygon per ring.
func (sh *cutawayShape) polygons() []geom.Polygon {
	out := make([]geom.Polygon, len(sh.merged))
	for i, ring := range sh.merged {
		out[i] = geom.Polygon{append(geom.Path{}, ring...)}
	}
	return out
}

// invert returns the shape's complement within its bounding box, extended to
// cover the given extra points and padded with headroom above, exchanging
// solid terrain and open air. Flying legality tests run against the
// inverted shape.
func (sh *cutawayShape) invert(extra ...geom.Point) *cutawayShape {
	b := sh.bounds.Copy()
	for _, p := range extra {
		b.Extend(geom.NewBoundsPoint(p))
	}
	pad := b.Max.Y - b.Min.Y + 1
	box := geom.Polygon{{
		{X: b.Min.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Max.Y + pad},
		{X: b.Min.X, Y: b.Max.Y + pad},
	}}
	return newCutawayShape(box.XOr(sh.merged), sh.floor)
}
