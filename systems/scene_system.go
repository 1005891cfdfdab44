package systems

import (
	"go.uber.org/zap"

	"heaven-through-violence/ecs"
	"heaven-through-violence/input"
	"heaven-through-violence/scene"
)

// SceneSpawner instantiates a loaded scene
type SceneSpawner interface {
	SpawnScene(sc *scene.Scene) ([]*ecs.Entity, error)
}

// SceneSystem saves the world on gamepad Select or F5 and loads the saved
// scene on gamepad Start or F9. Failures are reported, never fatal.
type SceneSystem struct {
	input   input.Source
	lobby   *GamepadLobby
	spawner SceneSpawner
	path    string
	logger  *zap.Logger
}

// NewSceneSystem creates a scene system that reads and writes path
func NewSceneSystem(in input.Source, lobby *GamepadLobby, spawner SceneSpawner, path string, logger *zap.Logger) *SceneSystem {
	return &SceneSystem{
		input:   in,
		lobby:   lobby,
		spawner: spawner,
		path:    path,
		logger:  logger,
	}
}

// Update checks the save and load bindings
func (s *SceneSystem) Update(world *ecs.World, dt float64) error {
	save := s.input.IsKeyJustPressed(input.KeyF5)
	load := s.input.IsKeyJustPressed(input.KeyF9)
	if id, ok := s.lobby.First(); ok {
		save = save || s.input.IsButtonJustPressed(id, input.ButtonSelect)
		load = load || s.input.IsButtonJustPressed(id, input.ButtonStart)
	}

	if save {
		s.Save(world)
	}
	if load {
		s.Load(world)
	}
	return nil
}

// Save captures the world and writes it to the scene path
func (s *SceneSystem) Save(world *ecs.World) {
	sc := scene.Capture(world)
	event := SceneEvent{Action: SceneSaved, SceneID: sc.ID, Path: s.path, Entities: len(sc.Entities)}

	if err := scene.Save(s.path, sc); err != nil {
		s.logger.Error("scene save failed", zap.String("path", s.path), zap.Error(err))
		event.Err = err
	} else {
		s.logger.Info("scene saved", zap.String("scene", sc.ID), zap.String("path", s.path), zap.Int("entities", event.Entities))
	}
	world.EmitEvent(event)
}

// Load reads the scene path and spawns its contents as new entities
func (s *SceneSystem) Load(world *ecs.World) {
	event := SceneEvent{Action: SceneLoaded, Path: s.path}

	sc, err := scene.Load(s.path)
	if err == nil {
		event.SceneID = sc.ID
		var spawned []*ecs.Entity
		spawned, err = s.spawner.SpawnScene(sc)
		event.Entities = len(spawned)
	}

	if err != nil {
		s.logger.Error("scene load failed", zap.String("path", s.path), zap.Error(err))
		event.Err = err
	} else {
		s.logger.Info("scene loaded", zap.String("scene", event.SceneID), zap.String("path", s.path), zap.Int("entities", event.Entities))
	}
	world.EmitEvent(event)
}
