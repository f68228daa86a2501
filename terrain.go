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

/*
Package terrain computes movement paths for agents traveling in a straight
line across a 2D scene that is overlaid with vertical terrain features such
as plateaus, ramps and stairs.

The terrain volumes crossed by a travel segment are projected into a 2D
"cutaway" cross-section whose axes are distance along the segment and
elevation. The cross-sections are merged with polygon boolean operations and
the merged shape's boundary is then walked to produce the sequence of
waypoints the agent actually passes through, honoring one of three movement
disciplines: walking agents stay on supporting surfaces and change elevation
only at surface boundaries, flying agents avoid solid volumes and cut
diagonally over them, and burrowing agents pass through solid volumes but not
through open air.
*/
package terrain

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// Version is this library's version number.
const Version = "0.1.0"

// An ElevatedPoint is a location in the scene plane together with its
// elevation. Coordinates are in scene units.
type ElevatedPoint struct {
	X, Y      float64
	Elevation float64
}

// Discipline determines how a traveler interacts with solid terrain
// volumes.
type Discipline int

const (
	// Walking agents stay on supporting surfaces, rising and falling only
	// at surface boundaries.
	Walking Discipline = iota
	// Flying agents avoid solid volumes and may cut diagonally over
	// terrain.
	Flying
	// Burrowing agents pass through solid volumes but not through open
	// air above them.
	Burrowing
)

func (d Discipline) String() string {
	switch d {
	case Walking:
		return "walking"
	case Flying:
		return "flying"
	case Burrowing:
		return "burrowing"
	default:
		return fmt.Sprintf("discipline(%d)", int(d))
	}
}

// ElevationLocation classifies a cutaway point's relationship to the merged
// terrain cross-section.
type ElevationLocation int

const (
	// LocOutside means the point's horizontal position is beyond the
	// extent of every cutaway polygon.
	LocOutside ElevationLocation = iota
	// LocBelow means the point is inside solid terrain.
	LocBelow
	// LocGround means the point is on a walkable surface.
	LocGround
	// LocAbove means the point is in open air over the terrain.
	LocAbove
)

func (l ElevationLocation) String() string {
	switch l {
	case LocOutside:
		return "outside"
	case LocBelow:
		return "below"
	case LocGround:
		return "ground"
	case LocAbove:
		return "above"
	default:
		return fmt.Sprintf("location(%d)", int(l))
	}
}

// VerticalSide disambiguates points lying exactly on a vertical cutaway
// edge. Left vertical edges support a walker from below; right vertical
// edges are open above.
type VerticalSide int

const (
	SideNone VerticalSide = iota
	SideLeft
	SideRight
)

// TravelOptions configures a single path-build call.
type TravelOptions struct {
	Discipline Discipline

	// CanEndBelow permits a burrowing path to stop inside solid terrain.
	CanEndBelow bool

	// MaxIterations bounds each path-building loop. If a loop reaches the
	// bound, the partial path accumulated so far is returned. Zero means
	// the default of 10,000.
	MaxIterations int
}

const defaultMaxIterations = 10000

// A Scene holds terrain regions overlaid on a ground plane.
type Scene struct {
	// FloorElevation is the default supporting elevation anywhere no
	// region applies.
	FloorElevation float64

	index   *rtree.Rtree
	regions []Region
}

// NewScene creates a scene with the given default floor elevation and
// terrain regions.
func NewScene(floorElevation float64, regions ...Region) *Scene {
	s := &Scene{
		FloorElevation: floorElevation,
		index:          rtree.NewTree(25, 50),
	}
	for _, r := range regions {
		s.AddRegion(r)
	}
	return s
}

// AddRegion overlays r on the scene.
func (s *Scene) AddRegion(r Region) {
	s.regions = append(s.regions, r)
	s.index.Insert(r)
}

// Regions returns the regions overlaid on the scene.
func (s *Scene) Regions() []Region { return s.regions }

// Travel computes the sequence of waypoints an agent with movement
// discipline d passes through when moving in a straight line from start to
// end. The returned path is ordered from start to end inclusive; each
// consecutive pair of waypoints is a straight sub-segment the agent actually
// traverses.
func (s *Scene) Travel(start, end ElevatedPoint, d Discipline) ([]ElevatedPoint, error) {
	return s.TravelOpts(start, end, TravelOptions{
		Discipline:  d,
		CanEndBelow: d == Burrowing,
	})
}

// TravelOpts is Travel with explicit options.
func (s *Scene) TravelOpts(start, end ElevatedPoint, o TravelOptions) ([]ElevatedPoint, error) {
	if err := checkFinite(start); err != nil {
		return nil, err
	}
	if err := checkFinite(end); err != nil {
		return nil, err
	}
	maxIter := o.MaxIterations
	if maxIter <= 0 {
		maxIter = defaultMaxIterations
	}

	f := NewFrame(start, end)
	if f.Length() < coordTol {
		// Vertical-only or zero-length moves need no projection.
		return []ElevatedPoint{start, end}, nil
	}

	sh := buildCutaway(f, s.intersectingRegions(f), s.FloorElevation)
	if sh == nil {
		// No terrain crosses the segment; move directly.
		return []ElevatedPoint{start, end}, nil
	}

	a, b := f.To2D(start), f.To2D(end)
	var pts []geom.Point
	switch o.Discipline {
	case Flying:
		pts = sh.flyPath(a, b, maxIter)
	case Burrowing:
		pts = sh.burrowPath(a, b, o.CanEndBelow, maxIter)
	default:
		pts = sh.walkPath(a, b, maxIter)
	}

	out := make([]ElevatedPoint, len(pts))
	for i, p := range pts {
		out[i] = f.From2D(p)
	}
	return out, nil
}

// Cutaway returns the merged cutaway cross-section polygons for the travel
// segment from start to end, one polygon per boundary ring, in cutaway
// coordinates (x = distance along the segment, y = elevation). It returns
// nil if no terrain crosses the segment.
func (s *Scene) Cutaway(start, end ElevatedPoint) ([]geom.Polygon, error) {
	if err := checkFinite(start); err != nil {
		return nil, err
	}
	if err := checkFinite(end); err != nil {
		return nil, err
	}
	f := NewFrame(start, end)
	if f.Length() < coordTol {
		return nil, nil
	}
	sh := buildCutaway(f, s.intersectingRegions(f), s.FloorElevation)
	if sh == nil {
		return nil, nil
	}
	return sh.polygons(), nil
}

// intersectingRegions returns the regions whose footprint bounding boxes
// intersect the travel segment.
func (s *Scene) intersectingRegions(f Frame) []Region {
	b := geom.NewBoundsPoint(geom.Point{X: f.Start.X, Y: f.Start.Y})
	b.Extend(geom.NewBoundsPoint(geom.Point{X: f.End.X, Y: f.End.Y}))
	var out []Region
	for _, g := range s.index.SearchIntersect(b) {
		out = append(out, g.(Region))
	}
	return out
}

func checkFinite(p ElevatedPoint) error {
	for _, v := range []float64{p.X, p.Y, p.Elevation} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("terrain: point %+v has a non-finite coordinate", p)
		}
	}
	return nil
}
