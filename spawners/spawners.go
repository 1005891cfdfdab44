package spawners

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"heaven-through-violence/components"
	"heaven-through-violence/config"
	"heaven-through-violence/data"
	"heaven-through-violence/ecs"
	"heaven-through-violence/physics"
)

// EntitySpawner manages the creation of game entities
type EntitySpawner struct {
	world    *ecs.World
	physics  *physics.World
	sheets   data.SpriteSheets
	settings config.Settings
	logger   *zap.Logger
	rng      *rand.Rand
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, phys *physics.World, sheets data.SpriteSheets, settings config.Settings, logger *zap.Logger) *EntitySpawner {
	return &EntitySpawner{
		world:    world,
		physics:  phys,
		sheets:   sheets,
		settings: settings,
		logger:   logger,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreatePlayer creates the player at the given position
func (s *EntitySpawner) CreatePlayer(x, y float64) (*ecs.Entity, error) {
	player, err := components.NewPlayerComponent(s.settings.Player.MoveSpeed)
	if err != nil {
		return nil, err
	}

	entity, err := s.createCharacter(characterParams{
		sheet:         s.settings.Player.Sheet,
		scale:         s.settings.Player.Scale,
		frameDuration: s.settings.Player.FrameDuration,
		x:             x,
		y:             y,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to spawn player: %w", err)
	}

	s.world.TagEntity(entity.ID, components.TagPlayer)
	s.world.AddComponent(entity.ID, components.Player, player)

	s.logger.Info("spawned player", zap.Uint64("entity", uint64(entity.ID)), zap.Float64("x", x), zap.Float64("y", y))
	return entity, nil
}

// CreateEnemies spawns the configured row of enemies.
func (s *EntitySpawner) CreateEnemies() error {
	cfg := s.settings.Enemies
	for i := 1; i <= cfg.Count; i++ {
		x := float64(i)*cfg.Spacing + cfg.OffsetX
		if _, err := s.CreateEnemy(x, cfg.Y); err != nil {
			return err
		}
	}
	s.logger.Info("spawned enemies", zap.Int("count", cfg.Count))
	return nil
}

// CreateEnemy spawns one enemy with a randomised animation speed.
func (s *EntitySpawner) CreateEnemy(x, y float64) (*ecs.Entity, error) {
	cfg := s.settings.Enemies
	frameDuration := cfg.MinFrameDuration + s.rng.Float64()*(cfg.MaxFrameDuration-cfg.MinFrameDuration)

	entity, err := s.createCharacter(characterParams{
		sheet:         cfg.Sheet,
		scale:         cfg.Scale,
		frameDuration: frameDuration,
		x:             x,
		y:             y,
		damping:       cfg.LinearDamping,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to spawn enemy: %w", err)
	}

	s.world.TagEntity(entity.ID, components.TagEnemy)
	s.world.AddComponent(entity.ID, components.Enemy, &components.EnemyComponent{})

	s.logger.Debug("spawned enemy", zap.Uint64("entity", uint64(entity.ID)), zap.Float64("frame_duration", frameDuration))
	return entity, nil
}

// CreateWalls spawns every wall in a layout.
func (s *EntitySpawner) CreateWalls(layout *data.WallLayout) error {
	for _, wall := range layout.Walls {
		if _, err := s.CreateWall(wall); err != nil {
			return err
		}
	}
	s.logger.Info("spawned outside walls", zap.Int("count", len(layout.Walls)))
	return nil
}

// CreateWall spawns a kinematic wall whose min corner sits at (wall.X, wall.Y).
func (s *EntitySpawner) CreateWall(wall data.Wall) (*ecs.Entity, error) {
	clr := components.PlaceholderColor
	if wall.Color != "" {
		parsed, err := data.ParseHexColor(wall.Color)
		if err != nil {
			return nil, fmt.Errorf("wall %d: %w", wall.Index, err)
		}
		clr = parsed
	}

	cx, cy := wall.Center()
	entity, err := s.createBox(physics.BodyDef{
		Kind:   physics.Kinematic,
		X:      cx,
		Y:      cy,
		Width:  wall.Width,
		Height: wall.Height,
	}, clr)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn wall %d: %w", wall.Index, err)
	}

	s.world.TagEntity(entity.ID, components.TagWall)
	s.world.AddComponent(entity.ID, components.Wall, &components.WallComponent{Index: wall.Index})
	return entity, nil
}

// CreateBlock drops a square kinematic block centered on (x, y).
func (s *EntitySpawner) CreateBlock(x, y float64) (*ecs.Entity, error) {
	side := s.settings.Physics.BlockSize
	entity, err := s.createBox(physics.BodyDef{
		Kind:   physics.Kinematic,
		X:      x,
		Y:      y,
		Width:  side,
		Height: side,
	}, components.PlaceholderColor)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn block: %w", err)
	}

	s.world.TagEntity(entity.ID, components.TagBlock)
	s.logger.Debug("spawned block", zap.Uint64("entity", uint64(entity.ID)), zap.Float64("x", x), zap.Float64("y", y))
	return entity, nil
}

// CreateCamera creates the player camera
func (s *EntitySpawner) CreateCamera() *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, components.TagCamera)

	scale := s.settings.Camera.ScaleFactor
	s.world.AddComponent(entity.ID, components.Camera, &components.CameraComponent{ScaleFactor: scale})
	s.world.AddComponent(entity.ID, components.Transform, &components.TransformComponent{Scale: scale})
	return entity
}

// CreatePauseScreen creates the overlay entities shown while paused. They
// start hidden.
func (s *EntitySpawner) CreatePauseScreen() []*ecs.Entity {
	w, h := config.GetScreenDimensions()
	items := []*components.OverlayComponent{
		{Kind: components.OverlayPanel, Color: color.RGBA{A: 160}},
		{Kind: components.OverlayText, Text: "PAUSED", X: w/2 - 18, Y: h/2 - 8, Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{Kind: components.OverlayText, Text: "Press Esc to resume", X: w/2 - 57, Y: h/2 + 8, Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}

	entities := make([]*ecs.Entity, 0, len(items))
	for _, item := range items {
		entity := s.world.CreateEntity()
		s.world.TagEntity(entity.ID, components.TagPause)
		s.world.AddComponent(entity.ID, components.Overlay, item)
		s.world.AddComponent(entity.ID, components.PauseItem, &components.PauseScreenItemComponent{Visible: false})
		entities = append(entities, entity)
	}
	return entities
}

// CreateDebugText creates the debug line that shows the player's position.
func (s *EntitySpawner) CreateDebugText() *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, components.TagDebugUI)
	s.world.AddComponent(entity.ID, components.DebugText, &components.DebugTextComponent{Text: "Player Pos: -0.1234567890"})
	s.world.AddComponent(entity.ID, components.Overlay, &components.OverlayComponent{
		Kind:  components.OverlayText,
		X:     config.DebugTextX,
		Y:     config.DebugTextY,
		Color: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	})
	return entity
}

type characterParams struct {
	sheet         string
	scale         float64
	frameDuration float64
	x, y          float64
	damping       float64
}

// createCharacter spawns an animated sprite with a rotation-locked dynamic
// body sized to one sprite frame.
func (s *EntitySpawner) createCharacter(p characterParams) (*ecs.Entity, error) {
	sheet, ok := s.sheets.Get(p.sheet)
	if !ok {
		return nil, fmt.Errorf("unknown sprite sheet %q", p.sheet)
	}

	def := physics.BodyDef{
		Kind:          physics.Dynamic,
		X:             p.x,
		Y:             p.y,
		Width:         float64(sheet.FrameWidth) * p.scale,
		Height:        float64(sheet.FrameHeight) * p.scale,
		Mass:          s.settings.Physics.BodyMass,
		LinearDamping: p.damping,
		LockRotation:  true,
	}

	entity, err := s.createBody(def, p.scale)
	if err != nil {
		return nil, err
	}

	s.world.AddComponent(entity.ID, components.Sprite, &components.SpriteComponent{Sheet: sheet.Name, Frames: sheet.Frames()})
	s.world.AddComponent(entity.ID, components.Animation, &components.AnimationComponent{FrameDuration: p.frameDuration})
	return entity, nil
}

func (s *EntitySpawner) createBox(def physics.BodyDef, clr color.RGBA) (*ecs.Entity, error) {
	entity, err := s.createBody(def, 1)
	if err != nil {
		return nil, err
	}
	s.world.AddComponent(entity.ID, components.Shape, &components.ShapeComponent{
		Width:  def.Width,
		Height: def.Height,
		Color:  clr,
	})
	return entity, nil
}

// createBody adds the body to the physics space first so a rejected
// definition never leaves a half-built entity behind.
func (s *EntitySpawner) createBody(def physics.BodyDef, scale float64) (*ecs.Entity, error) {
	body, shape, err := s.physics.AddBox(def)
	if err != nil {
		return nil, err
	}

	entity := s.world.CreateEntity()
	body.UserData = entity.ID

	s.world.AddComponent(entity.ID, components.RigidBody, &components.RigidBodyComponent{Body: body, Shape: shape, Def: def})
	s.world.AddComponent(entity.ID, components.Transform, &components.TransformComponent{X: def.X, Y: def.Y, Scale: scale})
	s.world.AddComponent(entity.ID, components.Velocity, components.ZeroVelocity())

	s.logger.Debug("spawned body",
		zap.Uint64("entity", uint64(entity.ID)),
		zap.String("kind", string(def.Kind)),
		zap.Strings("components", components.Describe(s.world, entity.ID)),
	)
	return entity, nil
}

// Despawn removes an entity and, if it has one, its body from the space.
func (s *EntitySpawner) Despawn(id ecs.EntityID) {
	if rb, ok := ecs.Get[*components.RigidBodyComponent](s.world, id, components.RigidBody); ok && rb.Body != nil {
		s.physics.Remove(rb.Body, rb.Shape)
	}
	s.world.RemoveEntity(id)
}
