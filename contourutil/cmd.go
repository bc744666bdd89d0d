/*
Copyright © 2021 the geocontour authors.
This file is part of geocontour.

geocontour is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

geocontour is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with geocontour.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package contourutil holds the command-line interface of the geocontour
// contour generator.
package contourutil

import (
	"fmt"

	"github.com/ctessum/geom"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/geocontour"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to geocontour.
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
			name: "input",
			usage: `
              input specifies the path to the grid file: a JSON array of rows,
              each row an array of {"lon", "lat", "value"} objects.`,
			shorthand:  "i",
			defaultVal: "grid.json",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "output",
			usage: `
              output specifies the path the results should be written to.
              The format is chosen by extension: .geojson or .shp.`,
			shorthand:  "o",
			defaultVal: "contours.geojson",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "proj",
			usage: `
              proj gives the spatial projection of the input grid coordinates
              in Proj4 format. If empty, coordinates are assumed to already be
              WGS84 longitude/latitude.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "levels",
			usage: `
              levels specifies the threshold levels, in increasing order.
              If empty, levels are spaced evenly over the range of values in
              the grid, as set by nlevels.`,
			shorthand:  "l",
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{isobandsCmd.Flags(), isolinesCmd.Flags()},
		},
		{
			name: "nlevels",
			usage: `
              nlevels specifies how many levels to generate automatically
              when levels is empty: nlevels bands (nlevels+1 band edges) for
              isobands, nlevels interior levels for isolines.`,
			defaultVal: 10,
			flagsets:   []*pflag.FlagSet{isobandsCmd.Flags(), isolinesCmd.Flags()},
		},
		{
			name: "parallel",
			usage: `
              parallel specifies whether bands should be processed
              concurrently. The output does not depend on this setting.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{isobandsCmd.Flags()},
		},
		{
			name: "loglevel",
			usage: `
              loglevel sets the logging verbosity: debug, info, warn, or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("GEOCONTOUR")
	Cfg.AutomaticEnv()

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
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				set.Bool(option.name, option.defaultVal.(bool), option.usage)
			case int:
				set.Int(option.name, option.defaultVal.(int), option.usage)
			case float64:
				set.Float64(option.name, option.defaultVal.(float64), option.usage)
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
	Root.AddCommand(isobandsCmd)
	Root.AddCommand(isolinesCmd)
}

// setConfig finds and reads in the configuration file, if there is one, and
// configures logging.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("geocontour: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("loglevel"))
	if err != nil {
		return fmt.Errorf("geocontour: %v", err)
	}
	logrus.SetLevel(level)
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "geocontour",
	Short: "A contour generator for geographic grids.",
	Long: `geocontour computes isobands (filled contour polygons) and isolines
(contour lines) from rectangular grids of geographic points using a
three-level marching squares algorithm.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format
'GEOCONTOUR_var' where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of geocontour.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("geocontour v%s\n", geocontour.Version)
	},
	DisableAutoGenTag: true,
}

var isobandsCmd = &cobra.Command{
	Use:   "isobands",
	Short: "Compute filled contour polygons.",
	Long: `isobands computes, for each adjacent pair of levels, the polygons
covering the area where the grid values lie within [lower, upper), and
writes them with 'lower_level' and 'upper_level' attributes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		grid, err := LoadGrid(Cfg.GetString("input"), Cfg.GetString("proj"))
		if err != nil {
			return err
		}
		thresholds, err := Levels(Cfg, grid, true)
		if err != nil {
			return err
		}
		var bands []geom.MultiPolygon
		if Cfg.GetBool("parallel") {
			bands, err = grid.IsobandsParallel(thresholds)
		} else {
			bands, err = grid.Isobands(thresholds)
		}
		if err != nil {
			return err
		}
		return writeBands(Cfg.GetString("output"), bands, thresholds)
	},
	DisableAutoGenTag: true,
}

var isolinesCmd = &cobra.Command{
	Use:   "isolines",
	Short: "Compute contour lines.",
	Long: `isolines computes the closed contour rings along which the grid
values equal each level, and writes them with an 'isovalue' attribute.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		grid, err := LoadGrid(Cfg.GetString("input"), Cfg.GetString("proj"))
		if err != nil {
			return err
		}
		levels, err := Levels(Cfg, grid, false)
		if err != nil {
			return err
		}
		lines, err := grid.Isolines(levels)
		if err != nil {
			return err
		}
		return writeLines(Cfg.GetString("output"), lines, levels)
	},
	DisableAutoGenTag: true,
}
