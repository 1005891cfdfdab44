package components

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"

	"heaven-through-violence/physics"
)

// ErrNegativeMoveSpeed is returned for a player whose move speed is below zero.
var ErrNegativeMoveSpeed = errors.New("move speed must be non-negative")

// TransformComponent stores an entity's world position. Y grows downward.
type TransformComponent struct {
	X, Y  float64
	Scale float64
}

// PlayerComponent indicates that an entity is controlled by the player
type PlayerComponent struct {
	MoveSpeed float64
}

// NewPlayerComponent validates the move speed.
func NewPlayerComponent(moveSpeed float64) (*PlayerComponent, error) {
	if moveSpeed < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeMoveSpeed, moveSpeed)
	}
	return &PlayerComponent{MoveSpeed: moveSpeed}, nil
}

// VelocityComponent is the velocity an entity wants this frame.
type VelocityComponent struct {
	cp.Vector
}

// NewVelocity creates a velocity from its parts.
func NewVelocity(x, y float64) *VelocityComponent {
	return &VelocityComponent{Vector: cp.Vector{X: x, Y: y}}
}

// ZeroVelocity is a velocity at rest.
func ZeroVelocity() *VelocityComponent {
	return NewVelocity(0, 0)
}

// Update replaces the stored velocity.
func (v *VelocityComponent) Update(next cp.Vector) {
	v.Vector = next
}

// RigidBodyComponent links an entity to its body in the physics space.
type RigidBodyComponent struct {
	Body  *cp.Body
	Shape *cp.Shape
	Def   physics.BodyDef
}

// SpriteComponent draws one frame of a sprite sheet.
type SpriteComponent struct {
	Sheet string
	Index int
	// Frames is the number of frames in the sheet.
	Frames int
}

// AnimationComponent is a repeating frame timer.
type AnimationComponent struct {
	FrameDuration float64
	Elapsed       float64
}

// ShapeComponent is a flat-colored rectangle for entities without a sprite.
type ShapeComponent struct {
	Width  float64
	Height float64
	Color  color.RGBA
}

// PlaceholderColor is the material used for walls and blocks.
var PlaceholderColor = color.RGBA{R: 179, G: 179, B: 179, A: 255}

// CameraComponent is the player camera. ScaleFactor is world units per screen
// pixel, so smaller values zoom in.
type CameraComponent struct {
	ScaleFactor float64
}

// PauseScreenItemComponent marks entities shown only while the game is paused.
type PauseScreenItemComponent struct {
	Visible bool
}

// OverlayKind selects how an overlay entity is drawn.
type OverlayKind int

const (
	OverlayPanel OverlayKind = iota
	OverlayText
)

// OverlayComponent is a screen-space UI element.
type OverlayComponent struct {
	Kind  OverlayKind
	Text  string
	X, Y  int
	Color color.RGBA
}

// WallComponent records which wall definition an entity came from.
type WallComponent struct {
	Index uint32
}

// EnemyComponent marks an enemy.
type EnemyComponent struct{}

// DebugTextComponent holds one line of debug output.
type DebugTextComponent struct {
	Text string
}
