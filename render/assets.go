// Package render draws the world with ebiten.
package render

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"heaven-through-violence/data"
)

// Assets loads images from disk and keeps them by path
type Assets struct {
	images map[string]*ebiten.Image
}

// NewAssets creates an empty asset cache
func NewAssets() *Assets {
	return &Assets{images: make(map[string]*ebiten.Image)}
}

// Image returns the image at path, decoding it on first use
func (a *Assets) Image(path string) (*ebiten.Image, error) {
	if img, ok := a.images[path]; ok {
		return img, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	decoded, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	img := ebiten.NewImageFromImage(decoded)
	a.images[path] = img
	return img, nil
}

// Preload decodes every sheet so a missing texture fails at startup, and
// checks the image is big enough for the sheet's frame grid.
func (a *Assets) Preload(sheets data.SpriteSheets) error {
	for _, name := range sheets.Names() {
		sheet := sheets[name]
		img, err := a.Image(sheet.Path)
		if err != nil {
			return fmt.Errorf("sprite sheet %s: %w", name, err)
		}
		b := img.Bounds()
		if b.Dx() < sheet.Columns*sheet.FrameWidth || b.Dy() < sheet.Rows*sheet.FrameHeight {
			return fmt.Errorf("sprite sheet %s: image is %dx%d, frames need %dx%d",
				name, b.Dx(), b.Dy(), sheet.Columns*sheet.FrameWidth, sheet.Rows*sheet.FrameHeight)
		}
	}
	return nil
}

// Frame returns the sub-image for one frame of a sheet
func (a *Assets) Frame(sheet data.SpriteSheet, index int) (*ebiten.Image, error) {
	img, err := a.Image(sheet.Path)
	if err != nil {
		return nil, err
	}
	sx, sy := sheet.FrameOrigin(index)
	rect := image.Rect(sx, sy, sx+sheet.FrameWidth, sy+sheet.FrameHeight)
	return img.SubImage(rect).(*ebiten.Image), nil
}
