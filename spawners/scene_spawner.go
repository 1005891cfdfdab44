package spawners

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"heaven-through-violence/components"
	"heaven-through-violence/data"
	"heaven-through-violence/ecs"
	"heaven-through-violence/scene"
)

// SpawnScene instantiates every entity of a saved scene as a new entity.
// Existing entities are left alone, so loading twice doubles the scene.
// A scene that fails partway leaves nothing behind.
func (s *EntitySpawner) SpawnScene(sc *scene.Scene) ([]*ecs.Entity, error) {
	spawned := make([]*ecs.Entity, 0, len(sc.Entities))
	for i, saved := range sc.Entities {
		entity, err := s.spawnSaved(saved)
		if err != nil {
			for _, e := range spawned {
				s.Despawn(e.ID)
			}
			return nil, fmt.Errorf("scene %s entity %d: %w", sc.ID, i, err)
		}
		spawned = append(spawned, entity)
	}

	s.logger.Info("spawned scene", zap.String("scene", sc.ID), zap.Int("entities", len(spawned)))
	return spawned, nil
}

func (s *EntitySpawner) spawnSaved(saved scene.Entity) (*ecs.Entity, error) {
	scale := saved.Scale
	if scale == 0 {
		scale = 1
	}

	var player *components.PlayerComponent
	if saved.Player != nil {
		p, err := components.NewPlayerComponent(saved.Player.MoveSpeed)
		if err != nil {
			return nil, err
		}
		player = p
	}
	clr := components.PlaceholderColor
	if saved.Shape != nil && saved.Shape.Color != "" {
		parsed, err := data.ParseHexColor(saved.Shape.Color)
		if err != nil {
			return nil, err
		}
		clr = parsed
	}

	entity, err := s.createBody(saved.Body, scale)
	if err != nil {
		return nil, err
	}

	for _, tag := range saved.Tags {
		s.world.TagEntity(entity.ID, tag)
	}

	if rb, ok := ecs.Get[*components.RigidBodyComponent](s.world, entity.ID, components.RigidBody); ok {
		v := cp.Vector{X: saved.Velocity.X, Y: saved.Velocity.Y}
		s.physics.SetLinearVelocity(rb.Body, v)
		if vel, ok := ecs.Get[*components.VelocityComponent](s.world, entity.ID, components.Velocity); ok {
			vel.Update(v)
		}
	}

	if player != nil {
		s.world.AddComponent(entity.ID, components.Player, player)
	}
	if saved.Sprite != nil {
		s.world.AddComponent(entity.ID, components.Sprite, &components.SpriteComponent{
			Sheet:  saved.Sprite.Sheet,
			Index:  saved.Sprite.Index,
			Frames: saved.Sprite.Frames,
		})
	}
	if saved.Animation != nil {
		s.world.AddComponent(entity.ID, components.Animation, &components.AnimationComponent{
			FrameDuration: saved.Animation.FrameDuration,
			Elapsed:       saved.Animation.Elapsed,
		})
	}
	if saved.Shape != nil {
		s.world.AddComponent(entity.ID, components.Shape, &components.ShapeComponent{
			Width:  saved.Shape.Width,
			Height: saved.Shape.Height,
			Color:  clr,
		})
	}
	if saved.Wall != nil {
		s.world.AddComponent(entity.ID, components.Wall, &components.WallComponent{Index: saved.Wall.Index})
	}
	if saved.Enemy {
		s.world.AddComponent(entity.ID, components.Enemy, &components.EnemyComponent{})
	}
	return entity, nil
}
