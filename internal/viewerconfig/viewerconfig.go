package viewerconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ConfigPath is the path to the viewer prefs file, relative to the process
// working directory.
const ConfigPath = "config/botview.json"

// Prefs holds viewer-only preferences, persisted across runs. Seeds live in
// the gallery file, not here: the seed string is the robot, prefs are just
// how it is shown.
type Prefs struct {
	ShowFPS     bool `json:"show_fps"`
	GridVisible bool `json:"grid_visible"`
	Detail      int  `json:"detail"`
	Solid       bool `json:"solid"`
}

// Default returns default viewer preferences (grid on, wireframe, detail 1).
func Default() Prefs {
	return Prefs{
		ShowFPS:     false,
		GridVisible: true,
		Detail:      1,
		Solid:       false,
	}
}

// Load reads prefs from config/botview.json. A missing or invalid file
// yields Default() without error and without creating a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(ConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if p.Detail < 1 || p.Detail > 3 {
		p.Detail = 1
	}
	return p, nil
}

// Save writes prefs, creating the config directory if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(ConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath, data, 0644)
}
