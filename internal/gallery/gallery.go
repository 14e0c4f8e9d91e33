// Package gallery loads the layout file for the viewer: a base seed plus a
// rows×cols grid. Cell i gets the seed "<base>-<i>", which is just a longer
// seed string, so every cell is an independent deterministic robot.
package gallery

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LayoutPath is the gallery layout file, relative to the working directory.
const LayoutPath = "config/gallery.yaml"

// Layout describes the robot grid. Detail and Solid, when set, override the
// viewer prefs for this gallery.
type Layout struct {
	BaseSeed string  `yaml:"base_seed"`
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	Spacing  float32 `yaml:"spacing,omitempty"`
	Detail   int     `yaml:"detail,omitempty"`
	Solid    *bool   `yaml:"solid,omitempty"`
}

// Default returns a 3×3 gallery of "robot-001" variants.
func Default() Layout {
	return Layout{BaseSeed: "robot-001", Rows: 3, Cols: 3, Spacing: 3}
}

// Load reads the layout file. A missing file yields Default(); a malformed
// file is an error so typos are not silently ignored.
func Load() (Layout, error) {
	data, err := os.ReadFile(LayoutPath)
	if err != nil {
		return Default(), nil
	}
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("gallery: parse %s: %w", LayoutPath, err)
	}
	if l.BaseSeed == "" {
		l.BaseSeed = Default().BaseSeed
	}
	if l.Rows < 1 {
		l.Rows = 1
	}
	if l.Cols < 1 {
		l.Cols = 1
	}
	if l.Spacing <= 0 {
		l.Spacing = 3
	}
	return l, nil
}

// Seed returns the seed string for grid cell i.
func (l Layout) Seed(i int) string {
	return fmt.Sprintf("%s-%d", l.BaseSeed, i)
}
