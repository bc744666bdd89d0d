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

package contourutil

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/carto"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/ctessum/geom/proj"
	"github.com/lnashier/viper"
	"github.com/spatialmodel/geocontour"
	"github.com/spf13/cast"
	"gonum.org/v1/gonum/floats"
)

const wgs84 = "+proj=longlat +datum=WGS84 +no_defs"

// LoadGrid reads a grid file: a JSON array of rows, each row an array of
// {"lon", "lat", "value"} objects. If projStr is non-empty, the input
// coordinates are in that projection and are transformed to WGS84
// longitude/latitude before the grid is built.
func LoadGrid(filename, projStr string) (*geocontour.Grid, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("geocontour: opening grid file: %v", err)
	}
	defer f.Close()

	var points [][]geocontour.GridPoint
	if err := json.NewDecoder(f).Decode(&points); err != nil {
		return nil, fmt.Errorf("geocontour: reading grid file %s: %v", filename, err)
	}

	if projStr != "" {
		inSR, err := proj.Parse(projStr)
		if err != nil {
			return nil, fmt.Errorf("geocontour: parsing input projection: %v", err)
		}
		outSR, err := proj.Parse(wgs84)
		if err != nil {
			return nil, err
		}
		ct, err := inSR.NewTransform(outSR)
		if err != nil {
			return nil, fmt.Errorf("geocontour: creating coordinate transform: %v", err)
		}
		for i, row := range points {
			for j, p := range row {
				g, err := geom.Point{X: p.Lon, Y: p.Lat}.Transform(ct)
				if err != nil {
					return nil, fmt.Errorf("geocontour: transforming point (%d,%d): %v", i, j, err)
				}
				pt := g.(geom.Point)
				points[i][j].Lon, points[i][j].Lat = pt.X, pt.Y
			}
		}
	}
	return geocontour.NewGrid(points)
}

// Levels returns the threshold levels from the configuration. When none are
// given, levels are spaced evenly over the grid's value range: for isobands,
// nlevels+1 band edges including the range endpoints (nlevels bands); for
// isolines, nlevels interior levels.
func Levels(cfg *viper.Viper, grid *geocontour.Grid, isobands bool) ([]float64, error) {
	levelStrs := cfg.GetStringSlice("levels")
	if len(levelStrs) > 0 {
		levels := make([]float64, len(levelStrs))
		for i, s := range levelStrs {
			v, err := cast.ToFloat64E(s)
			if err != nil {
				return nil, fmt.Errorf("geocontour: parsing level %q: %v", s, err)
			}
			levels[i] = v
		}
		return levels, nil
	}
	n := cfg.GetInt("nlevels")
	if n < 1 {
		return nil, fmt.Errorf("geocontour: nlevels must be positive, got %d", n)
	}
	min, max := grid.ValueRange()
	if isobands {
		return floats.Span(make([]float64, n+1), min, max), nil
	}
	interior := floats.Span(make([]float64, n+2), min, max)
	return interior[1 : n+1], nil
}

// roundRing applies half-up rounding to 5 decimal places, roughly one meter
// of longitude at the equator. The core emits full-precision coordinates;
// rounding happens only here at the serialization boundary, after rings are
// already closed.
func roundRing(ring []geom.Point) []geom.Point {
	out := make([]geom.Point, len(ring))
	for i, p := range ring {
		out[i] = geom.Point{X: roundCoord(p.X), Y: roundCoord(p.Y)}
	}
	return out
}

func roundCoord(v float64) float64 {
	return math.Floor(v*1e5+0.5) / 1e5
}

// writeBands writes one feature per polygon, attributed with the band's
// lower and upper levels. The output format is chosen by file extension.
func writeBands(filename string, bands []geom.MultiPolygon, thresholds []float64) error {
	if strings.HasSuffix(filename, ".shp") {
		type bandRec struct {
			geom.Polygon
			LowerLevel, UpperLevel float64
		}
		e, err := shp.NewEncoder(filename, bandRec{})
		if err != nil {
			return fmt.Errorf("geocontour: creating shapefile: %v", err)
		}
		defer e.Close()
		for i, band := range bands {
			for _, poly := range band {
				rounded := make(geom.Polygon, len(poly))
				for j, ring := range poly {
					rounded[j] = roundRing(ring)
				}
				if err := e.Encode(bandRec{
					Polygon:    rounded,
					LowerLevel: thresholds[i],
					UpperLevel: thresholds[i+1],
				}); err != nil {
					return fmt.Errorf("geocontour: writing shapefile: %v", err)
				}
			}
		}
		return nil
	}

	o := new(carto.GeoJSON)
	o.Type = "FeatureCollection"
	o.CRS = carto.Crs{Type: "name", Properties: carto.CrsProps{Name: "EPSG:4326"}}
	for i, band := range bands {
		for _, poly := range band {
			rounded := make(geom.Polygon, len(poly))
			for j, ring := range poly {
				rounded[j] = roundRing(ring)
			}
			g, err := geojson.ToGeoJSON(rounded)
			if err != nil {
				return fmt.Errorf("geocontour: encoding GeoJSON: %v", err)
			}
			o.Features = append(o.Features, &carto.GeoJSONfeature{
				Type:     "Feature",
				Geometry: g,
				Properties: map[string]float64{
					"lower_level": thresholds[i],
					"upper_level": thresholds[i+1],
				},
			})
		}
	}
	return writeJSON(filename, o)
}

// writeLines writes one feature per contour ring, attributed with its level.
func writeLines(filename string, lines [][][]geom.Point, levels []float64) error {
	if strings.HasSuffix(filename, ".shp") {
		type lineRec struct {
			geom.LineString
			Isovalue float64
		}
		e, err := shp.NewEncoder(filename, lineRec{})
		if err != nil {
			return fmt.Errorf("geocontour: creating shapefile: %v", err)
		}
		defer e.Close()
		for i, rings := range lines {
			for _, ring := range rings {
				if err := e.Encode(lineRec{
					LineString: geom.LineString(roundRing(ring)),
					Isovalue:   levels[i],
				}); err != nil {
					return fmt.Errorf("geocontour: writing shapefile: %v", err)
				}
			}
		}
		return nil
	}

	o := new(carto.GeoJSON)
	o.Type = "FeatureCollection"
	o.CRS = carto.Crs{Type: "name", Properties: carto.CrsProps{Name: "EPSG:4326"}}
	for i, rings := range lines {
		for _, ring := range rings {
			g, err := geojson.ToGeoJSON(geom.LineString(roundRing(ring)))
			if err != nil {
				return fmt.Errorf("geocontour: encoding GeoJSON: %v", err)
			}
			o.Features = append(o.Features, &carto.GeoJSONfeature{
				Type:       "Feature",
				Geometry:   g,
				Properties: map[string]float64{"isovalue": levels[i]},
			})
		}
	}
	return writeJSON(filename, o)
}

func writeJSON(filename string, v interface{}) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("geocontour: creating output file: %v", err)
	}
	defer f.Close()
	e := json.NewEncoder(f)
	if err := e.Encode(v); err != nil {
		return fmt.Errorf("geocontour: writing output file: %v", err)
	}
	return nil
}
