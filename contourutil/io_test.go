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
	"os"
	"path/filepath"
	"testing"

	"github.com/lnashier/viper"
)

func TestRoundCoord(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-99.123456789, -99.12346},
		{-99.123454, -99.12345},
		{40.000004, 40.0},
		{40.0000075, 40.00001},
		{0, 0},
	}
	for _, test := range tests {
		if got := roundCoord(test.in); got != test.want {
			t.Errorf("roundCoord(%g): got %g, want %g", test.in, got, test.want)
		}
	}
}

func TestLoadGrid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.json")
	data := `[
		[{"lon":-100,"lat":41,"value":10},{"lon":-99,"lat":41,"value":20}],
		[{"lon":-100,"lat":40,"value":15},{"lon":-99,"lat":40,"value":25}]
	]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	g, err := LoadGrid(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if g.Rows() != 2 || g.Cols() != 2 {
		t.Errorf("dimensions: got %dx%d, want 2x2", g.Rows(), g.Cols())
	}
	if p := g.Point(0, 1); p.Value != 20 {
		t.Errorf("point (0,1) value: got %g, want 20", p.Value)
	}

	if _, err := LoadGrid(filepath.Join(dir, "missing.json"), ""); err == nil {
		t.Error("missing file: expected error")
	}
}

func TestLevels(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.json")
	data := `[
		[{"lon":-100,"lat":41,"value":0},{"lon":-99,"lat":41,"value":10}],
		[{"lon":-100,"lat":40,"value":20},{"lon":-99,"lat":40,"value":30}]
	]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	g, err := LoadGrid(path, "")
	if err != nil {
		t.Fatal(err)
	}

	cfg := viper.New()
	cfg.Set("levels", []string{"5", "15", "25"})
	levels, err := Levels(cfg, g, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(levels) != 3 || levels[0] != 5 || levels[2] != 25 {
		t.Errorf("explicit levels: got %v", levels)
	}

	cfg = viper.New()
	cfg.Set("nlevels", 3)
	levels, err = Levels(cfg, g, true)
	if err != nil {
		t.Fatal(err)
	}
	// Band edges span the value range endpoints inclusive.
	if len(levels) != 4 || levels[0] != 0 || levels[3] != 30 {
		t.Errorf("isoband levels: got %v", levels)
	}

	levels, err = Levels(cfg, g, false)
	if err != nil {
		t.Fatal(err)
	}
	// Isoline levels stay strictly inside the value range.
	if len(levels) != 3 || levels[0] <= 0 || levels[2] >= 30 {
		t.Errorf("isoline levels: got %v", levels)
	}

	cfg = viper.New()
	cfg.Set("levels", []string{"not-a-number"})
	if _, err := Levels(cfg, g, true); err == nil {
		t.Error("unparseable level: expected error")
	}
}
