package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"heaven-through-violence/config"
	"heaven-through-violence/data"
	"heaven-through-violence/render"
)

// SpriteViewer implements ebiten.Game. It lays out every frame of one sprite
// sheet next to a looping preview, for checking sprite metadata by eye.
type SpriteViewer struct {
	assets   *render.Assets
	sheets   data.SpriteSheets
	names    []string
	current  int
	zoom     float64
	duration float64
	elapsed  float64
	frame    int
}

// NewSpriteViewer loads every sheet in the sprite metadata file
func NewSpriteViewer(settings config.Settings) (*SpriteViewer, error) {
	sheets, err := data.LoadSpriteSheets(settings.Paths.Sprites)
	if err != nil {
		return nil, err
	}
	assets := render.NewAssets()
	if err := assets.Preload(sheets); err != nil {
		return nil, err
	}

	return &SpriteViewer{
		assets:   assets,
		sheets:   sheets,
		names:    sheets.Names(),
		zoom:     4,
		duration: settings.Player.FrameDuration,
	}, nil
}

// Update handles sheet selection and zoom
func (v *SpriteViewer) Update() error {
	if len(v.names) == 0 {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		v.current = (v.current + 1) % len(v.names)
		v.frame = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		v.current = (v.current + len(v.names) - 1) % len(v.names)
		v.frame = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && v.zoom < 12 {
		v.zoom++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && v.zoom > 1 {
		v.zoom--
	}

	v.elapsed += config.FrameTime
	for v.elapsed >= v.duration {
		v.elapsed -= v.duration
		v.frame++
	}
	return nil
}

// Draw shows the frame grid and the animated preview
func (v *SpriteViewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 30, 255})
	if len(v.names) == 0 {
		ebitenutil.DebugPrintAt(screen, "No sprite sheets defined", 10, 10)
		return
	}

	sheet := v.sheets[v.names[v.current]]
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Sheet: %s (%s)", sheet.Name, sheet.Path), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frame: %dx%d, grid %dx%d, %d frames",
		sheet.FrameWidth, sheet.FrameHeight, sheet.Columns, sheet.Rows, sheet.Frames()), 10, 30)
	ebitenutil.DebugPrintAt(screen, "Left/Right: change sheet | Up/Down: zoom", 10, 50)

	cellW := float64(sheet.FrameWidth)*v.zoom + 8
	cellH := float64(sheet.FrameHeight)*v.zoom + 24
	for i := 0; i < sheet.Frames(); i++ {
		x := 10 + float64(i%sheet.Columns)*cellW
		y := 80 + float64(i/sheet.Columns)*cellH
		vector.DrawFilledRect(screen, float32(x), float32(y),
			float32(sheet.FrameWidth)*float32(v.zoom), float32(sheet.FrameHeight)*float32(v.zoom),
			color.RGBA{60, 60, 60, 255}, false)
		v.drawFrame(screen, sheet, i, x, y)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("#%d", i), int(x), int(y+float64(sheet.FrameHeight)*v.zoom))
	}

	previewY := 100 + float64(sheet.Rows)*cellH
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Preview (%.3fs per frame)", v.duration), 10, int(previewY)-20)
	v.drawFrame(screen, sheet, v.frame%sheet.Frames(), 10, previewY)
}

func (v *SpriteViewer) drawFrame(screen *ebiten.Image, sheet data.SpriteSheet, index int, x, y float64) {
	frame, err := v.assets.Frame(sheet, index)
	if err != nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(v.zoom, v.zoom)
	op.GeoM.Translate(x, y)
	screen.DrawImage(frame, op)
}

// Layout implements ebiten.Game's Layout.
func (v *SpriteViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
