// Package input is the game's view of keyboard and gamepad state for one frame.
// Systems read a Source; the device package fills a State from ebiten.
package input

import "errors"

// ErrMissingAxis is returned when a connected gamepad does not expose an axis
// the game needs.
var ErrMissingAxis = errors.New("gamepad axis not available")

// Key is a keyboard key the game listens to.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyEscape
	KeyF5
	KeyF9
)

// GamepadID identifies a connected controller.
type GamepadID int

// GamepadButton uses standard-layout naming.
type GamepadButton int

const (
	ButtonNorth GamepadButton = iota
	ButtonEast
	ButtonLeftTrigger
	ButtonRightTrigger
	ButtonSelect
	ButtonStart
)

// GamepadAxis is an analog axis on a controller.
type GamepadAxis int

const (
	AxisLeftStickX GamepadAxis = iota
	AxisLeftStickY
)

// GamepadEventKind tells whether a controller arrived or left.
type GamepadEventKind int

const (
	GamepadConnected GamepadEventKind = iota
	GamepadDisconnected
)

func (k GamepadEventKind) String() string {
	if k == GamepadConnected {
		return "connected"
	}
	return "disconnected"
}

// GamepadEvent is a connect or disconnect notification.
type GamepadEvent struct {
	ID   GamepadID
	Kind GamepadEventKind
}

// Source answers input questions for the current frame.
type Source interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	IsButtonPressed(id GamepadID, button GamepadButton) bool
	IsButtonJustPressed(id GamepadID, button GamepadButton) bool
	// AxisValue reports false when the gamepad has no such axis.
	AxisValue(id GamepadID, axis GamepadAxis) (float64, bool)
	// GamepadEvents returns this frame's connect/disconnect events in arrival order.
	GamepadEvents() []GamepadEvent
}
