package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"heaven-through-violence/config"
	"heaven-through-violence/data"
	"heaven-through-violence/device"
	"heaven-through-violence/ecs"
	"heaven-through-violence/physics"
	"heaven-through-violence/render"
	"heaven-through-violence/spawners"
	"heaven-through-violence/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	world    *ecs.World
	input    *device.EbitenInput
	renderer *render.Renderer
	logger   *zap.Logger
}

// NewGame loads the level data, builds the systems and spawns the starting
// entities. Any missing or malformed data file is an error.
func NewGame(settings config.Settings, logger *zap.Logger) (*Game, error) {
	sheets, err := data.LoadSpriteSheets(settings.Paths.Sprites)
	if err != nil {
		return nil, err
	}
	walls, err := data.LoadWalls(settings.Paths.Walls)
	if err != nil {
		return nil, err
	}

	assets := render.NewAssets()
	if err := assets.Preload(sheets); err != nil {
		return nil, err
	}

	// Initialize ECS world and physics
	world := ecs.NewWorld()
	phys := physics.NewWorld(settings.Physics.Iterations)
	in := device.NewEbitenInput()
	state := in.State()

	entitySpawner := spawners.NewEntitySpawner(world, phys, sheets, settings, logger.Named("spawner"))

	// Shared resources
	lobby := systems.NewGamepadLobby()
	pause := &systems.PauseState{}
	messageLog := systems.NewMessageLog()

	// Initialize all systems
	gamepadSystem := systems.NewGamepadSystem(state, lobby, logger.Named("gamepad"))
	pauseSystem := systems.NewPauseSystem(state, pause, logger.Named("pause"))
	sceneSystem := systems.NewSceneSystem(state, lobby, entitySpawner, settings.Paths.Scene, logger.Named("scene"))
	cameraSystem := systems.NewCameraSystem(settings.Camera.MinScale)
	actionSystem := systems.NewActionSystem(state, lobby, cameraSystem, settings.Camera.ZoomStep, logger.Named("action"))
	spawnSystem := systems.NewSpawnSystem(entitySpawner, logger.Named("spawn"))
	movementSystem := systems.NewMovementSystem(state, lobby, phys, settings.Input.Deadzone)
	physicsSystem := systems.NewPhysicsSystem(phys)
	animationSystem := systems.NewAnimationSystem()
	debugUISystem := systems.NewDebugUISystem()

	// Register systems in frame order. Gameplay stops while paused; input
	// handling, the camera and the UI keep running.
	world.AddSystem(gamepadSystem)
	world.AddSystem(pauseSystem)
	world.AddSystem(sceneSystem)
	world.AddSystem(ecs.RunIf(actionSystem, pause.Running))
	world.AddSystem(ecs.RunIf(spawnSystem, pause.Running))
	world.AddSystem(ecs.RunIf(movementSystem, pause.Running))
	world.AddSystem(ecs.RunIf(physicsSystem, pause.Running))
	world.AddSystem(ecs.RunIf(animationSystem, pause.Running))
	world.AddSystem(cameraSystem)
	world.AddSystem(debugUISystem)

	// Initialize event listeners
	systems.NewMessageSystem(messageLog).Initialize(world)
	spawnSystem.Initialize(world)

	game := &Game{
		world:    world,
		input:    in,
		renderer: render.NewRenderer(assets, sheets, messageLog),
		logger:   logger,
	}

	if err := game.initialize(entitySpawner, walls, settings); err != nil {
		return nil, err
	}

	messageLog.Add("WASD or left stick to move, Esc to pause.")
	messageLog.Add("F5 saves the scene, F9 loads it.")
	return game, nil
}

// initialize spawns the starting level
func (g *Game) initialize(s *spawners.EntitySpawner, walls *data.WallLayout, settings config.Settings) error {
	if err := s.CreateWalls(walls); err != nil {
		return err
	}
	if _, err := s.CreatePlayer(settings.Player.StartX, settings.Player.StartY); err != nil {
		return err
	}
	if err := s.CreateEnemies(); err != nil {
		return err
	}
	s.CreateCamera()
	s.CreatePauseScreen()
	s.CreateDebugText()

	g.logger.Info("level ready", zap.Int("entities", g.world.EntityCount()))
	return nil
}

// Update updates the game state.
func (g *Game) Update() error {
	g.input.Poll()
	if err := g.world.Update(config.FrameTime); err != nil {
		return fmt.Errorf("frame update: %w", err)
	}
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
