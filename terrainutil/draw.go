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

package terrainutil

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/spatialwalk/terrain"
)

// drawCutaway renders the cutaway cross-section of the terrain crossed by
// the segment from start to end, overlaid with the travel path, to the SVG
// file at outPath.
func drawCutaway(scene *terrain.Scene, start, end terrain.ElevatedPoint, opts terrain.TravelOptions, outPath string) error {
	polys, err := scene.Cutaway(start, end)
	if err != nil {
		return err
	}
	path, err := scene.TravelOpts(start, end, opts)
	if err != nil {
		return err
	}

	p, err := plot.New()
	if err != nil {
		return fmt.Errorf("terrain: creating plot: %v", err)
	}
	p.Title.Text = fmt.Sprintf("%v cutaway", opts.Discipline)
	p.X.Label.Text = "distance along segment"
	p.Y.Label.Text = "elevation"

	// Clamp the filler polygons' sentinel depths so the drawing stays
	// near the elevations of interest.
	minElev := start.Elevation
	for _, wp := range path {
		if wp.Elevation < minElev {
			minElev = wp.Elevation
		}
	}
	depth := minElev - 10

	for _, poly := range polys {
		xys := make(plotter.XYs, len(poly[0]))
		for i, pt := range poly[0] {
			xys[i].X = pt.X
			xys[i].Y = clampDepth(pt.Y, depth)
		}
		solid, err := plotter.NewPolygon(xys)
		if err != nil {
			return fmt.Errorf("terrain: drawing cutaway polygon: %v", err)
		}
		solid.Color = color.NRGBA{R: 140, G: 110, B: 80, A: 255}
		p.Add(solid)
	}

	f := terrain.NewFrame(start, end)
	line := make(plotter.XYs, len(path))
	for i, wp := range path {
		pt := f.To2D(wp)
		line[i].X = pt.X
		line[i].Y = pt.Y
	}
	route, err := plotter.NewLine(line)
	if err != nil {
		return fmt.Errorf("terrain: drawing travel path: %v", err)
	}
	route.Color = color.NRGBA{R: 200, B: 30, A: 255}
	route.Width = vg.Points(2)
	p.Add(route)

	if err := p.Save(20*vg.Centimeter, 10*vg.Centimeter, outPath); err != nil {
		return fmt.Errorf("terrain: saving drawing: %v", err)
	}
	return nil
}

func clampDepth(y, depth float64) float64 {
	if y < depth {
		return depth
	}
	return y
}
