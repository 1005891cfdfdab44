package systems

import (
	"heaven-through-violence/ecs"
	"heaven-through-violence/input"
)

// Event type constants
const (
	EventGamepadConnection ecs.EventType = "gamepad_connection"
	EventPauseToggled      ecs.EventType = "pause_toggled"
	EventSpawnRequest      ecs.EventType = "spawn_request"
	EventCameraZoom        ecs.EventType = "camera_zoom"
	EventScene             ecs.EventType = "scene"
)

// GamepadConnectionEvent is emitted when the lobby gains or loses a gamepad
type GamepadConnectionEvent struct {
	GamepadID input.GamepadID
	Connected bool
}

// Type returns the event type
func (e GamepadConnectionEvent) Type() ecs.EventType {
	return EventGamepadConnection
}

// PauseToggledEvent is emitted every time the pause flag flips
type PauseToggledEvent struct {
	Paused bool
}

// Type returns the event type
func (e PauseToggledEvent) Type() ecs.EventType {
	return EventPauseToggled
}

// SpawnKind selects what a SpawnRequestEvent creates
type SpawnKind int

const (
	SpawnBlock SpawnKind = iota
	SpawnEnemy
)

func (k SpawnKind) String() string {
	switch k {
	case SpawnBlock:
		return "block"
	case SpawnEnemy:
		return "enemy"
	}
	return "unknown"
}

// SpawnRequestEvent asks the spawn system to create an entity at a position
type SpawnRequestEvent struct {
	Kind SpawnKind
	X, Y float64
}

// Type returns the event type
func (e SpawnRequestEvent) Type() ecs.EventType {
	return EventSpawnRequest
}

// CameraZoomEvent is emitted when the camera scale changes
type CameraZoomEvent struct {
	CameraID ecs.EntityID
	Scale    float64
}

// Type returns the event type
func (e CameraZoomEvent) Type() ecs.EventType {
	return EventCameraZoom
}

// SceneAction is what a SceneEvent reports on
type SceneAction string

const (
	SceneSaved  SceneAction = "saved"
	SceneLoaded SceneAction = "loaded"
)

// SceneEvent is emitted after a save or load attempt
type SceneEvent struct {
	Action   SceneAction
	SceneID  string
	Path     string
	Entities int
	Err      error // Set when the attempt failed
}

// Type returns the event type
func (e SceneEvent) Type() ecs.EventType {
	return EventScene
}
