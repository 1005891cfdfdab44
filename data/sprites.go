package data

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// SpriteSheet describes a horizontal strip (or grid) of equally sized frames.
// Frame sizes live here because image sizes are not known until the texture
// is decoded.
type SpriteSheet struct {
	Name        string `yaml:"-"`
	Path        string `yaml:"path"`
	FrameWidth  int    `yaml:"frame_width"`
	FrameHeight int    `yaml:"frame_height"`
	Columns     int    `yaml:"columns"`
	Rows        int    `yaml:"rows"`
}

// Frames returns the number of frames in the sheet.
func (s SpriteSheet) Frames() int {
	return s.Columns * s.Rows
}

// FrameOrigin returns the top-left pixel of frame i. Frames run left to
// right, then top to bottom.
func (s SpriteSheet) FrameOrigin(i int) (int, int) {
	i %= s.Frames()
	return (i % s.Columns) * s.FrameWidth, (i / s.Columns) * s.FrameHeight
}

// SpriteSheets indexes sheets by name.
type SpriteSheets map[string]SpriteSheet

// Get returns a sheet by name
func (s SpriteSheets) Get(name string) (SpriteSheet, bool) {
	sheet, ok := s[name]
	return sheet, ok
}

// Names returns the sheet names in sorted order.
func (s SpriteSheets) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadSpriteSheets reads the sprite metadata file.
func LoadSpriteSheets(path string) (SpriteSheets, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite metadata: %w", err)
	}

	var file struct {
		Sheets map[string]SpriteSheet `yaml:"sheets"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse sprite metadata %s: %w", path, err)
	}

	sheets := make(SpriteSheets, len(file.Sheets))
	for name, sheet := range file.Sheets {
		sheet.Name = name
		if sheet.Path == "" {
			return nil, fmt.Errorf("sprite sheet %q has no path", name)
		}
		if sheet.FrameWidth <= 0 || sheet.FrameHeight <= 0 || sheet.Columns <= 0 || sheet.Rows <= 0 {
			return nil, fmt.Errorf("sprite sheet %q needs positive frame size and grid, got %dx%d in %dx%d",
				name, sheet.FrameWidth, sheet.FrameHeight, sheet.Columns, sheet.Rows)
		}
		sheets[name] = sheet
	}
	return sheets, nil
}
