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

// Package terrainutil holds the configuration and command-line interface
// for the terrain path builder.
package terrainutil

import (
	"fmt"
	"strings"

	"github.com/lnashier/viper"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spatialwalk/terrain"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to the terrain
	// commands.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "scene",
			usage: `
              scene specifies the location of the TOML file describing the
              scene's floor elevation and terrain regions.`,
			shorthand:  "s",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{routeCmd.Flags(), drawCmd.Flags()},
		},
		{
			name: "start",
			usage: `
              start specifies the traveler's starting location and
              elevation as 'x,y,elevation'.`,
			defaultVal: "0,0,0",
			flagsets:   []*pflag.FlagSet{routeCmd.Flags(), drawCmd.Flags()},
		},
		{
			name: "end",
			usage: `
              end specifies the traveler's destination location and
              elevation as 'x,y,elevation'.`,
			defaultVal: "0,0,0",
			flagsets:   []*pflag.FlagSet{routeCmd.Flags(), drawCmd.Flags()},
		},
		{
			name: "discipline",
			usage: `
              discipline specifies how the traveler interacts with
              terrain: walking, flying, or burrowing.`,
			shorthand:  "d",
			defaultVal: "walking",
			flagsets:   []*pflag.FlagSet{routeCmd.Flags(), drawCmd.Flags()},
		},
		{
			name: "canendbelow",
			usage: `
              canendbelow specifies whether a burrowing traveler may stop
              inside solid terrain.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{routeCmd.Flags(), drawCmd.Flags()},
		},
		{
			name: "maxiter",
			usage: `
              maxiter bounds each path-building loop. Zero means the
              default bound.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{routeCmd.Flags(), drawCmd.Flags()},
		},
		{
			name: "output",
			usage: `
              output specifies the destination file for the cutaway
              drawing.`,
			shorthand:  "o",
			defaultVal: "cutaway.svg",
			flagsets:   []*pflag.FlagSet{drawCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("TERRAIN")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(routeCmd)
	Root.AddCommand(drawCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("terrain: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "terrain",
	Short: "A terrain-aware travel path builder.",
	Long: `terrain computes the waypoints an agent passes through when traveling in
a straight line across a scene overlaid with terrain regions, honoring a
walking, flying, or burrowing movement discipline.

Refer to the subcommand documentation for configuration options and default
settings. Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using
command-line arguments, or by setting environment variables in the format
'TERRAIN_var' where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of terrain.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("terrain v%s\n", terrain.Version)
	},
	DisableAutoGenTag: true,
}

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Compute a travel path",
	Long: `route computes the waypoints of a straight-line journey across the scene
described by the --scene file and prints them, one 'x,y,elevation' triple
per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := buildPath()
		if err != nil {
			return err
		}
		for _, p := range path {
			cmd.Printf("%g,%g,%g\n", p.X, p.Y, p.Elevation)
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw a cutaway cross-section",
	Long: `draw renders the merged cutaway cross-section of the terrain crossed by
the travel segment, together with the computed travel path, to an SVG
file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scene, start, end, opts, err := travelArgs()
		if err != nil {
			return err
		}
		return drawCutaway(scene, start, end, opts, Cfg.GetString("output"))
	},
	DisableAutoGenTag: true,
}

// buildPath assembles the scene and travel parameters from the
// configuration and computes the path.
func buildPath() ([]terrain.ElevatedPoint, error) {
	scene, start, end, opts, err := travelArgs()
	if err != nil {
		return nil, err
	}
	return scene.TravelOpts(start, end, opts)
}

func travelArgs() (*terrain.Scene, terrain.ElevatedPoint, terrain.ElevatedPoint, terrain.TravelOptions, error) {
	var zero terrain.ElevatedPoint
	var opts terrain.TravelOptions

	scenePath := Cfg.GetString("scene")
	if scenePath == "" {
		return nil, zero, zero, opts, fmt.Errorf("terrain: no scene file specified; use --scene")
	}
	c, err := ReadSceneConfig(scenePath)
	if err != nil {
		return nil, zero, zero, opts, err
	}
	scene, err := c.Scene()
	if err != nil {
		return nil, zero, zero, opts, err
	}

	start, err := parsePoint(Cfg.GetString("start"))
	if err != nil {
		return nil, zero, zero, opts, fmt.Errorf("terrain: start: %v", err)
	}
	end, err := parsePoint(Cfg.GetString("end"))
	if err != nil {
		return nil, zero, zero, opts, fmt.Errorf("terrain: end: %v", err)
	}

	d, err := parseDiscipline(Cfg.GetString("discipline"))
	if err != nil {
		return nil, zero, zero, opts, err
	}
	opts = terrain.TravelOptions{
		Discipline:    d,
		CanEndBelow:   Cfg.GetBool("canendbelow") && d == terrain.Burrowing,
		MaxIterations: Cfg.GetInt("maxiter"),
	}
	return scene, start, end, opts, nil
}

// parsePoint parses an 'x,y,elevation' triple. The elevation may be
// omitted, in which case it is zero.
func parsePoint(s string) (terrain.ElevatedPoint, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return terrain.ElevatedPoint{}, fmt.Errorf("want 'x,y,elevation', have %q", s)
	}
	var vals [3]float64
	for i, part := range parts {
		v, err := cast.ToFloat64E(strings.TrimSpace(part))
		if err != nil {
			return terrain.ElevatedPoint{}, fmt.Errorf("coordinate %d of %q: %v", i, s, err)
		}
		vals[i] = v
	}
	return terrain.ElevatedPoint{X: vals[0], Y: vals[1], Elevation: vals[2]}, nil
}

func parseDiscipline(s string) (terrain.Discipline, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "walking", "walk":
		return terrain.Walking, nil
	case "flying", "fly":
		return terrain.Flying, nil
	case "burrowing", "burrow":
		return terrain.Burrowing, nil
	}
	return 0, fmt.Errorf("terrain: unknown discipline %q; want walking, flying, or burrowing", s)
}
