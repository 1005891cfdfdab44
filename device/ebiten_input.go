// Package device polls ebiten for keyboard and gamepad state.
package device

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"heaven-through-violence/input"
)

var keyBindings = map[input.Key]ebiten.Key{
	input.KeyW:      ebiten.KeyW,
	input.KeyA:      ebiten.KeyA,
	input.KeyS:      ebiten.KeyS,
	input.KeyD:      ebiten.KeyD,
	input.KeyEscape: ebiten.KeyEscape,
	input.KeyF5:     ebiten.KeyF5,
	input.KeyF9:     ebiten.KeyF9,
}

var buttonBindings = map[input.GamepadButton]ebiten.StandardGamepadButton{
	input.ButtonNorth:        ebiten.StandardGamepadButtonRightTop,
	input.ButtonEast:         ebiten.StandardGamepadButtonRightRight,
	input.ButtonLeftTrigger:  ebiten.StandardGamepadButtonFrontTopLeft,
	input.ButtonRightTrigger: ebiten.StandardGamepadButtonFrontTopRight,
	input.ButtonSelect:       ebiten.StandardGamepadButtonCenterLeft,
	input.ButtonStart:        ebiten.StandardGamepadButtonCenterRight,
}

var axisBindings = map[input.GamepadAxis]ebiten.StandardGamepadAxis{
	input.AxisLeftStickX: ebiten.StandardGamepadAxisLeftStickHorizontal,
	input.AxisLeftStickY: ebiten.StandardGamepadAxisLeftStickVertical,
}

// Raw axis and button indices used when a controller has no standard
// mapping. The button indices follow the common XInput ordering.
var rawAxisBindings = map[input.GamepadAxis]int{
	input.AxisLeftStickX: 0,
	input.AxisLeftStickY: 1,
}

var rawButtonBindings = map[input.GamepadButton]int{
	input.ButtonNorth:        3,
	input.ButtonEast:         1,
	input.ButtonLeftTrigger:  4,
	input.ButtonRightTrigger: 5,
	input.ButtonSelect:       6,
	input.ButtonStart:        7,
}

// EbitenInput turns ebiten's polling API into per-frame input.State snapshots.
type EbitenInput struct {
	state     *input.State
	connected map[ebiten.GamepadID]bool
	scratch   []ebiten.GamepadID
}

// NewEbitenInput creates an adapter with an empty snapshot.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{
		state:     input.NewState(),
		connected: make(map[ebiten.GamepadID]bool),
	}
}

// State returns the snapshot filled by the last Poll.
func (d *EbitenInput) State() *input.State {
	return d.state
}

// Poll refreshes the snapshot. Call once at the start of every Update.
func (d *EbitenInput) Poll() *input.State {
	d.state.Reset()

	for key, ek := range keyBindings {
		switch {
		case inpututil.IsKeyJustPressed(ek):
			d.state.SetKey(key, input.JustPressed)
		case ebiten.IsKeyPressed(ek):
			d.state.SetKey(key, input.Held)
		}
	}

	for id := range d.connected {
		if inpututil.IsGamepadJustDisconnected(id) {
			delete(d.connected, id)
			d.state.AddGamepadEvent(input.GamepadEvent{ID: input.GamepadID(id), Kind: input.GamepadDisconnected})
		}
	}

	d.scratch = inpututil.AppendJustConnectedGamepadIDs(d.scratch[:0])
	for _, id := range d.scratch {
		d.connected[id] = true
		d.state.AddGamepadEvent(input.GamepadEvent{ID: input.GamepadID(id), Kind: input.GamepadConnected})
	}

	for id := range d.connected {
		d.pollGamepad(id)
	}

	return d.state
}

func (d *EbitenInput) pollGamepad(id ebiten.GamepadID) {
	gid := input.GamepadID(id)

	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		axes := ebiten.GamepadAxisCount(id)
		for axis, raw := range rawAxisBindings {
			if raw < axes {
				d.state.SetAxis(gid, axis, ebiten.GamepadAxisValue(id, ebiten.GamepadAxisType(raw)))
			}
		}
		buttons := ebiten.GamepadButtonCount(id)
		for button, raw := range rawButtonBindings {
			if raw >= buttons {
				continue
			}
			eb := ebiten.GamepadButton(raw)
			switch {
			case inpututil.IsGamepadButtonJustPressed(id, eb):
				d.state.SetButton(gid, button, input.JustPressed)
			case ebiten.IsGamepadButtonPressed(id, eb):
				d.state.SetButton(gid, button, input.Held)
			}
		}
		return
	}

	for button, eb := range buttonBindings {
		switch {
		case inpututil.IsStandardGamepadButtonJustPressed(id, eb):
			d.state.SetButton(gid, button, input.JustPressed)
		case ebiten.IsStandardGamepadButtonPressed(id, eb):
			d.state.SetButton(gid, button, input.Held)
		}
	}
	for axis, ea := range axisBindings {
		d.state.SetAxis(gid, axis, ebiten.StandardGamepadAxisValue(id, ea))
	}
}
