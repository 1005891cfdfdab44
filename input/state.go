package input

// Press is the state of a key or button in the current frame.
type Press uint8

const (
	Released Press = iota
	// Held has been down since an earlier frame.
	Held
	// JustPressed went down this frame.
	JustPressed
)

type buttonKey struct {
	id     GamepadID
	button GamepadButton
}

type axisKey struct {
	id   GamepadID
	axis GamepadAxis
}

// State is a snapshot of input for one frame. The zero value is not usable;
// call NewState.
type State struct {
	keys    map[Key]Press
	buttons map[buttonKey]Press
	axes    map[axisKey]float64
	events  []GamepadEvent
}

// NewState returns an empty snapshot.
func NewState() *State {
	return &State{
		keys:    make(map[Key]Press),
		buttons: make(map[buttonKey]Press),
		axes:    make(map[axisKey]float64),
	}
}

// Reset clears the snapshot for the next frame.
func (s *State) Reset() {
	clear(s.keys)
	clear(s.buttons)
	clear(s.axes)
	s.events = s.events[:0]
}

func (s *State) SetKey(key Key, p Press) {
	if p == Released {
		delete(s.keys, key)
		return
	}
	s.keys[key] = p
}

func (s *State) SetButton(id GamepadID, button GamepadButton, p Press) {
	k := buttonKey{id: id, button: button}
	if p == Released {
		delete(s.buttons, k)
		return
	}
	s.buttons[k] = p
}

func (s *State) SetAxis(id GamepadID, axis GamepadAxis, value float64) {
	s.axes[axisKey{id: id, axis: axis}] = value
}

func (s *State) AddGamepadEvent(ev GamepadEvent) {
	s.events = append(s.events, ev)
}

func (s *State) IsKeyPressed(key Key) bool {
	return s.keys[key] != Released
}

func (s *State) IsKeyJustPressed(key Key) bool {
	return s.keys[key] == JustPressed
}

func (s *State) IsButtonPressed(id GamepadID, button GamepadButton) bool {
	return s.buttons[buttonKey{id: id, button: button}] != Released
}

func (s *State) IsButtonJustPressed(id GamepadID, button GamepadButton) bool {
	return s.buttons[buttonKey{id: id, button: button}] == JustPressed
}

func (s *State) AxisValue(id GamepadID, axis GamepadAxis) (float64, bool) {
	v, ok := s.axes[axisKey{id: id, axis: axis}]
	return v, ok
}

func (s *State) GamepadEvents() []GamepadEvent {
	return s.events
}
