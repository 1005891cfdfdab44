package systems

import (
	"sort"

	"go.uber.org/zap"

	"heaven-through-violence/ecs"
	"heaven-through-violence/input"
)

// GamepadLobby is the set of currently connected gamepads. An id is present
// iff its last connection event was a connect.
type GamepadLobby struct {
	gamepads map[input.GamepadID]struct{}
}

// NewGamepadLobby creates an empty lobby
func NewGamepadLobby() *GamepadLobby {
	return &GamepadLobby{gamepads: make(map[input.GamepadID]struct{})}
}

func (l *GamepadLobby) Connect(id input.GamepadID) {
	l.gamepads[id] = struct{}{}
}

func (l *GamepadLobby) Disconnect(id input.GamepadID) {
	delete(l.gamepads, id)
}

func (l *GamepadLobby) Contains(id input.GamepadID) bool {
	_, ok := l.gamepads[id]
	return ok
}

func (l *GamepadLobby) Len() int {
	return len(l.gamepads)
}

// IDs returns the connected gamepads in ascending order
func (l *GamepadLobby) IDs() []input.GamepadID {
	ids := make([]input.GamepadID, 0, len(l.gamepads))
	for id := range l.gamepads {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// First returns the gamepad that drives the player: the lowest connected id.
func (l *GamepadLobby) First() (input.GamepadID, bool) {
	first, found := input.GamepadID(0), false
	for id := range l.gamepads {
		if !found || id < first {
			first, found = id, true
		}
	}
	return first, found
}

// GamepadSystem keeps the lobby in sync with connect/disconnect events
type GamepadSystem struct {
	input  input.Source
	lobby  *GamepadLobby
	logger *zap.Logger
}

// NewGamepadSystem creates a new gamepad connection system
func NewGamepadSystem(in input.Source, lobby *GamepadLobby, logger *zap.Logger) *GamepadSystem {
	return &GamepadSystem{input: in, lobby: lobby, logger: logger}
}

// Update applies this frame's events in arrival order
func (s *GamepadSystem) Update(world *ecs.World, dt float64) error {
	for _, ev := range s.input.GamepadEvents() {
		switch ev.Kind {
		case input.GamepadConnected:
			s.lobby.Connect(ev.ID)
		case input.GamepadDisconnected:
			s.lobby.Disconnect(ev.ID)
		default:
			continue
		}

		s.logger.Info("gamepad "+ev.Kind.String(), zap.Int("gamepad", int(ev.ID)), zap.Int("connected", s.lobby.Len()))
		world.EmitEvent(GamepadConnectionEvent{GamepadID: ev.ID, Connected: ev.Kind == input.GamepadConnected})
	}
	return nil
}
