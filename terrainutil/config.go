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

	"github.com/BurntSushi/toml"
	"github.com/ctessum/geom"

	"github.com/spatialwalk/terrain"
)

// SceneConfig is the TOML description of a scene's terrain.
type SceneConfig struct {
	// FloorElevation is the supporting elevation anywhere no terrain
	// region applies.
	FloorElevation float64

	Plateau []PlateauConfig
	Ramp    []RampConfig
	Stairs  []StairsConfig
}

// PlateauConfig describes one flat-topped terrain region.
type PlateauConfig struct {
	// Footprint is the region's outline on the ground plane, as a list of
	// [x, y] vertices.
	Footprint [][]float64

	Elevation float64
	Base      float64
}

// RampConfig describes one linearly sloped terrain region.
type RampConfig struct {
	Footprint [][]float64

	Low, High float64
	Base      float64
	// Origin is the [x, y] scene point where the surface elevation is Low.
	Origin []float64
	// Direction is the [x, y] uphill direction.
	Direction []float64
	RunLength float64
}

// StairsConfig describes one stepped terrain region.
type StairsConfig struct {
	RampConfig
	Steps int
}

// ReadSceneConfig reads a scene description from the TOML file at path.
func ReadSceneConfig(path string) (*SceneConfig, error) {
	c := new(SceneConfig)
	if _, err := toml.DecodeFile(path, c); err != nil {
		return nil, fmt.Errorf("terrain: problem reading scene file %s: %v", path, err)
	}
	return c, nil
}

// Scene builds the scene the configuration describes.
func (c *SceneConfig) Scene() (*terrain.Scene, error) {
	s := terrain.NewScene(c.FloorElevation)
	for i, p := range c.Plateau {
		fp, err := footprint(p.Footprint)
		if err != nil {
			return nil, fmt.Errorf("terrain: plateau %d: %v", i, err)
		}
		s.AddRegion(&terrain.Plateau{
			Polygonal: fp,
			Elevation: p.Elevation,
			Base:      p.Base,
		})
	}
	for i, r := range c.Ramp {
		ramp, err := r.ramp()
		if err != nil {
			return nil, fmt.Errorf("terrain: ramp %d: %v", i, err)
		}
		s.AddRegion(ramp)
	}
	for i, st := range c.Stairs {
		ramp, err := st.RampConfig.ramp()
		if err != nil {
			return nil, fmt.Errorf("terrain: stairs %d: %v", i, err)
		}
		if st.Steps < 1 {
			return nil, fmt.Errorf("terrain: stairs %d: Steps must be at least 1", i)
		}
		s.AddRegion(&terrain.Stairs{Ramp: *ramp, Steps: st.Steps})
	}
	return s, nil
}

func (r *RampConfig) ramp() (*terrain.Ramp, error) {
	fp, err := footprint(r.Footprint)
	if err != nil {
		return nil, err
	}
	origin, err := scenePoint(r.Origin)
	if err != nil {
		return nil, fmt.Errorf("Origin: %v", err)
	}
	dir, err := scenePoint(r.Direction)
	if err != nil {
		return nil, fmt.Errorf("Direction: %v", err)
	}
	if dir.X == 0 && dir.Y == 0 {
		return nil, fmt.Errorf("Direction must be nonzero")
	}
	if r.RunLength <= 0 {
		return nil, fmt.Errorf("RunLength must be positive")
	}
	return &terrain.Ramp{
		Polygonal: fp,
		Low:       r.Low,
		High:      r.High,
		Base:      r.Base,
		Origin:    origin,
		Direction: dir,
		RunLength: r.RunLength,
	}, nil
}

func footprint(vertices [][]float64) (geom.Polygon, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("footprint needs at least 3 vertices, have %d", len(vertices))
	}
	ring := make(geom.Path, len(vertices))
	for i, v := range vertices {
		p, err := scenePoint(v)
		if err != nil {
			return nil, fmt.Errorf("footprint vertex %d: %v", i, err)
		}
		ring[i] = p
	}
	return geom.Polygon{ring}, nil
}

func scenePoint(v []float64) (geom.Point, error) {
	if len(v) != 2 {
		return geom.Point{}, fmt.Errorf("want [x, y], have %v", v)
	}
	return geom.Point{X: v[0], Y: v[1]}, nil
}
