package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"heaven-through-violence/components"
	"heaven-through-violence/config"
	"heaven-through-violence/data"
	"heaven-through-violence/ecs"
	"heaven-through-violence/systems"
)

var backgroundColor = color.RGBA{20, 16, 24, 255}

// visibleMessages is how many message log lines fit under the debug text.
const visibleMessages = 5

// Renderer draws entities through the camera, then the screen-space UI
type Renderer struct {
	assets   *Assets
	sheets   data.SpriteSheets
	messages *systems.MessageLog
}

// NewRenderer creates a renderer. Sprite sheets must already be preloaded
// into assets.
func NewRenderer(assets *Assets, sheets data.SpriteSheets, messages *systems.MessageLog) *Renderer {
	return &Renderer{
		assets:   assets,
		sheets:   sheets,
		messages: messages,
	}
}

// view maps world coordinates to screen pixels
type view struct {
	x, y  float64
	scale float64
}

func (v view) toScreen(x, y float64) (float64, float64) {
	return (x-v.x)/v.scale + config.ScreenWidth/2, (y-v.y)/v.scale + config.ScreenHeight/2
}

// Draw renders one frame
func (r *Renderer) Draw(world *ecs.World, screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	v := cameraView(world)
	r.drawShapes(world, screen, v)
	r.drawSprites(world, screen, v)
	r.drawOverlays(world, screen)
	r.drawMessages(screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()))
}

// cameraView reads the first camera, falling back to an unscaled view
// centered on the origin
func cameraView(world *ecs.World) view {
	for _, entity := range world.GetEntitiesWithTag(components.TagCamera) {
		if t, ok := ecs.Get[*components.TransformComponent](world, entity.ID, components.Transform); ok && t.Scale > 0 {
			return view{x: t.X, y: t.Y, scale: t.Scale}
		}
	}
	return view{scale: 1}
}

func (r *Renderer) drawShapes(world *ecs.World, screen *ebiten.Image, v view) {
	for _, entity := range world.GetEntitiesWithComponent(components.Shape) {
		shape, ok := ecs.Get[*components.ShapeComponent](world, entity.ID, components.Shape)
		if !ok {
			continue
		}
		t, ok := ecs.Get[*components.TransformComponent](world, entity.ID, components.Transform)
		if !ok {
			continue
		}

		// Transforms hold the center; rects are drawn from the min corner.
		x, y := v.toScreen(t.X-shape.Width/2, t.Y-shape.Height/2)
		vector.DrawFilledRect(screen, float32(x), float32(y),
			float32(shape.Width/v.scale), float32(shape.Height/v.scale), shape.Color, false)
	}
}

func (r *Renderer) drawSprites(world *ecs.World, screen *ebiten.Image, v view) {
	for _, entity := range world.GetEntitiesWithComponent(components.Sprite) {
		sprite, ok := ecs.Get[*components.SpriteComponent](world, entity.ID, components.Sprite)
		if !ok {
			continue
		}
		t, ok := ecs.Get[*components.TransformComponent](world, entity.ID, components.Transform)
		if !ok {
			continue
		}
		sheet, ok := r.sheets.Get(sprite.Sheet)
		if !ok {
			continue
		}
		frame, err := r.assets.Frame(sheet, sprite.Index)
		if err != nil {
			continue
		}

		scale := t.Scale
		if scale == 0 {
			scale = 1
		}
		x, y := v.toScreen(t.X, t.Y)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(sheet.FrameWidth)/2, -float64(sheet.FrameHeight)/2)
		op.GeoM.Scale(scale/v.scale, scale/v.scale)
		op.GeoM.Translate(x, y)
		screen.DrawImage(frame, op)
	}
}

func (r *Renderer) drawOverlays(world *ecs.World, screen *ebiten.Image) {
	for _, entity := range world.GetEntitiesWithComponent(components.Overlay) {
		overlay, ok := ecs.Get[*components.OverlayComponent](world, entity.ID, components.Overlay)
		if !ok {
			continue
		}
		if item, ok := ecs.Get[*components.PauseScreenItemComponent](world, entity.ID, components.PauseItem); ok && !item.Visible {
			continue
		}

		text := overlay.Text
		if debug, ok := ecs.Get[*components.DebugTextComponent](world, entity.ID, components.DebugText); ok {
			text = debug.Text
		}

		switch overlay.Kind {
		case components.OverlayPanel:
			vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, overlay.Color, false)
		case components.OverlayText:
			ebitenutil.DebugPrintAt(screen, text, overlay.X, overlay.Y)
		}
	}
}

// drawMessages lists the newest message log lines, oldest on top
func (r *Renderer) drawMessages(screen *ebiten.Image) {
	if r.messages == nil {
		return
	}
	messages := r.messages.RecentMessages(visibleMessages)
	for i, msg := range messages {
		ebitenutil.DebugPrintAt(screen, msg, config.DebugTextX, config.ScreenHeight-16*(i+1))
	}
}
