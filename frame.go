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
)

// A Frame is the bidirectional mapping between world coordinates and the 2D
// cutaway space of one travel segment. Cutaway x is distance along the
// segment from its start, and cutaway y is elevation.
type Frame struct {
	Start, End ElevatedPoint

	dir    geom.Point // unit direction in the scene plane
	length float64
}

// NewFrame creates the cutaway coordinate frame for the travel segment from
// start to end.
func NewFrame(start, end ElevatedPoint) Frame {
	dx := end.X - start.X
	dy := end.Y - start.Y
	l := math.Hypot(dx, dy)
	f := Frame{Start: start, End: end, length: l}
	if l > 0 {
		f.dir = geom.Point{X: dx / l, Y: dy / l}
	}
	return f
}

// Length returns the planar length of the travel segment.
func (f Frame) Length() float64 { return f.length }

// To2D maps a world point into cutaway coordinates. The x coordinate is the
// position of the point's projection along the segment's line
// parameterization, so for points off the line it is the distance of the
// projection, not of the point itself.
func (f Frame) To2D(p ElevatedPoint) geom.Point {
	return geom.Point{
		X: (p.X-f.Start.X)*f.dir.X + (p.Y-f.Start.Y)*f.dir.Y,
		Y: p.Elevation,
	}
}

// From2D maps a cutaway point back to world coordinates. It is the exact
// inverse of To2D for points on the segment's line.
func (f Frame) From2D(p geom.Point) ElevatedPoint {
	return ElevatedPoint{
		X:         f.Start.X + f.dir.X*p.X,
		Y:         f.Start.Y + f.dir.Y*p.X,
		Elevation: p.Y,
	}
}

// GroundPoint returns the scene-plane location at distance x along the
// segment.
func (f Frame) GroundPoint(x float64) geom.Point {
	return geom.Point{X: f.Start.X + f.dir.X*x, Y: f.Start.Y + f.dir.Y*x}
}
