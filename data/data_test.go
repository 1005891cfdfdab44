package data

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const wallFile = `walls:
  - idx: 0
    x: -400
    y: -400
    width: 800
    height: 16
  - idx: 1
    x: -400
    y: 384
    width: 800
    height: 16
    color: "#203040"
`

func TestLoadWalls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walls.yaml")
	if err := os.WriteFile(path, []byte(wallFile), 0o644); err != nil {
		t.Fatal(err)
	}

	layout, err := LoadWalls(path)
	if err != nil {
		t.Fatalf("LoadWalls: %v", err)
	}
	if len(layout.Walls) != 2 {
		t.Fatalf("got %d walls, want 2", len(layout.Walls))
	}

	cx, cy := layout.Walls[0].Center()
	if cx != 0 || cy != -392 {
		t.Errorf("Center = (%v, %v), want (0, -392)", cx, cy)
	}
	if layout.Walls[1].Color != "#203040" {
		t.Errorf("Color = %q", layout.Walls[1].Color)
	}
}

func TestParseWallsRejectsMalformedData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero width", "walls:\n  - {idx: 0, x: 0, y: 0, width: 0, height: 4}\n"},
		{"negative height", "walls:\n  - {idx: 0, x: 0, y: 0, width: 4, height: -4}\n"},
		{"duplicate index", "walls:\n  - {idx: 2, x: 0, y: 0, width: 4, height: 4}\n  - {idx: 2, x: 9, y: 0, width: 4, height: 4}\n"},
		{"typo field", "walls:\n  - {idx: 0, x: 0, y: 0, widht: 4, height: 4}\n"},
		{"bad color", "walls:\n  - {idx: 0, x: 0, y: 0, width: 4, height: 4, color: red}\n"},
		{"not a list", "walls: 12\n"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWalls([]byte(tt.body))
			if !errors.Is(err, ErrInvalidWall) {
				t.Fatalf("err = %v, want ErrInvalidWall", err)
			}
		})
	}
}

func TestLoadWallsMissingFile(t *testing.T) {
	_, err := LoadWalls(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist", err)
	}
}

func TestParseHexColor(t *testing.T) {
	got, err := ParseHexColor("#ff8000")
	if err != nil {
		t.Fatal(err)
	}
	if got != (color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}) {
		t.Fatalf("got %v", got)
	}
	if _, err := ParseHexColor("ff8000"); err == nil {
		t.Fatal("accepted color without #")
	}
}

func TestLoadSpriteSheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites.yaml")
	body := `sheets:
  whisper:
    path: sprites/whisper.png
    frame_width: 16
    frame_height: 23
    columns: 4
    rows: 1
  grid:
    path: sprites/grid.png
    frame_width: 8
    frame_height: 8
    columns: 2
    rows: 2
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	sheets, err := LoadSpriteSheets(path)
	if err != nil {
		t.Fatalf("LoadSpriteSheets: %v", err)
	}
	if names := strings.Join(sheets.Names(), ","); names != "grid,whisper" {
		t.Fatalf("Names = %s", names)
	}

	whisper, ok := sheets.Get("whisper")
	if !ok || whisper.Name != "whisper" || whisper.Frames() != 4 {
		t.Fatalf("whisper = %+v", whisper)
	}
	if x, y := whisper.FrameOrigin(3); x != 48 || y != 0 {
		t.Errorf("FrameOrigin(3) = (%d, %d), want (48, 0)", x, y)
	}

	grid := sheets["grid"]
	if x, y := grid.FrameOrigin(3); x != 8 || y != 8 {
		t.Errorf("grid FrameOrigin(3) = (%d, %d), want (8, 8)", x, y)
	}
	if x, y := grid.FrameOrigin(5); x != 8 || y != 0 {
		t.Errorf("FrameOrigin wraps: got (%d, %d), want (8, 0)", x, y)
	}
}

func TestLoadSpriteSheetsRejectsEmptyGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites.yaml")
	body := "sheets:\n  bad:\n    path: x.png\n    frame_width: 16\n    frame_height: 16\n    columns: 0\n    rows: 1\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSpriteSheets(path); err == nil {
		t.Fatal("accepted a sheet with no columns")
	}
}
