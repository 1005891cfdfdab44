package systems

import (
	"go.uber.org/zap"

	"heaven-through-violence/ecs"
	"heaven-through-violence/input"
)

// ActionSystem handles the gamepad's non-movement buttons: spawning blocks
// and enemies at the player and zooming the camera
type ActionSystem struct {
	input    input.Source
	lobby    *GamepadLobby
	camera   *CameraSystem
	zoomStep float64
	logger   *zap.Logger
}

// NewActionSystem creates a new action system
func NewActionSystem(in input.Source, lobby *GamepadLobby, camera *CameraSystem, zoomStep float64, logger *zap.Logger) *ActionSystem {
	return &ActionSystem{
		input:    in,
		lobby:    lobby,
		camera:   camera,
		zoomStep: zoomStep,
		logger:   logger,
	}
}

// Update reads the first gamepad's buttons
func (s *ActionSystem) Update(world *ecs.World, dt float64) error {
	id, ok := s.lobby.First()
	if !ok {
		return nil
	}
	player, ok := firstPlayerTransform(world)
	if !ok {
		return nil
	}

	if s.input.IsButtonJustPressed(id, input.ButtonNorth) {
		world.EmitEvent(SpawnRequestEvent{Kind: SpawnBlock, X: player.X, Y: player.Y})
	}
	if s.input.IsButtonJustPressed(id, input.ButtonEast) {
		world.EmitEvent(SpawnRequestEvent{Kind: SpawnEnemy, X: player.X, Y: player.Y})
	}

	// Held triggers zoom continuously, one step per frame.
	if s.input.IsButtonPressed(id, input.ButtonLeftTrigger) {
		s.camera.Zoom(world, s.zoomStep)
	}
	if s.input.IsButtonPressed(id, input.ButtonRightTrigger) {
		s.camera.Zoom(world, -s.zoomStep)
	}
	return nil
}
