// Package scene snapshots the physical part of the world to a YAML file and
// reads it back.
package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"heaven-through-violence/components"
	"heaven-through-violence/ecs"
	"heaven-through-violence/physics"
)

// Scene is a saved set of entities.
type Scene struct {
	ID       string    `yaml:"id"`
	SavedAt  time.Time `yaml:"saved_at"`
	Entities []Entity  `yaml:"entities"`
}

// Entity is one saved entity. Only entities that own a rigid body are saved;
// cameras and UI are rebuilt by the game at startup.
type Entity struct {
	Tags      []string        `yaml:"tags,omitempty"`
	Body      physics.BodyDef `yaml:"body"`
	Velocity  Vector          `yaml:"velocity"`
	Scale     float64         `yaml:"scale,omitempty"`
	Player    *Player         `yaml:"player,omitempty"`
	Sprite    *Sprite         `yaml:"sprite,omitempty"`
	Animation *Animation      `yaml:"animation,omitempty"`
	Shape     *Shape          `yaml:"shape,omitempty"`
	Wall      *Wall           `yaml:"wall,omitempty"`
	Enemy     bool            `yaml:"enemy,omitempty"`
}

type Vector struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Player struct {
	MoveSpeed float64 `yaml:"move_speed"`
}

type Sprite struct {
	Sheet  string `yaml:"sheet"`
	Index  int    `yaml:"index"`
	Frames int    `yaml:"frames"`
}

type Animation struct {
	FrameDuration float64 `yaml:"frame_duration"`
	Elapsed       float64 `yaml:"elapsed"`
}

type Shape struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
}

type Wall struct {
	Index uint32 `yaml:"idx"`
}

// Capture snapshots every entity with a rigid body, in entity ID order.
// Body positions and velocities are read from the physics engine, so the
// snapshot reflects where things are now, not where they were spawned.
func Capture(world *ecs.World) *Scene {
	s := &Scene{
		ID:      uuid.NewString(),
		SavedAt: time.Now().UTC(),
	}

	for _, entity := range world.GetEntitiesWithComponent(components.RigidBody) {
		rb, ok := ecs.Get[*components.RigidBodyComponent](world, entity.ID, components.RigidBody)
		if !ok {
			continue
		}

		saved := Entity{Body: rb.Def}
		if rb.Body != nil {
			pos := rb.Body.Position()
			vel := rb.Body.Velocity()
			saved.Body.X, saved.Body.Y = pos.X, pos.Y
			saved.Velocity = Vector{X: vel.X, Y: vel.Y}
		}

		for tag := range entity.Tags {
			saved.Tags = append(saved.Tags, tag)
		}
		sort.Strings(saved.Tags)

		if t, ok := ecs.Get[*components.TransformComponent](world, entity.ID, components.Transform); ok {
			saved.Scale = t.Scale
		}
		if p, ok := ecs.Get[*components.PlayerComponent](world, entity.ID, components.Player); ok {
			saved.Player = &Player{MoveSpeed: p.MoveSpeed}
		}
		if sp, ok := ecs.Get[*components.SpriteComponent](world, entity.ID, components.Sprite); ok {
			saved.Sprite = &Sprite{Sheet: sp.Sheet, Index: sp.Index, Frames: sp.Frames}
		}
		if a, ok := ecs.Get[*components.AnimationComponent](world, entity.ID, components.Animation); ok {
			saved.Animation = &Animation{FrameDuration: a.FrameDuration, Elapsed: a.Elapsed}
		}
		if sh, ok := ecs.Get[*components.ShapeComponent](world, entity.ID, components.Shape); ok {
			saved.Shape = &Shape{
				Width:  sh.Width,
				Height: sh.Height,
				Color:  fmt.Sprintf("#%02x%02x%02x", sh.Color.R, sh.Color.G, sh.Color.B),
			}
		}
		if w, ok := ecs.Get[*components.WallComponent](world, entity.ID, components.Wall); ok {
			saved.Wall = &Wall{Index: w.Index}
		}
		saved.Enemy = world.HasComponent(entity.ID, components.Enemy)

		s.Entities = append(s.Entities, saved)
	}
	return s
}

// Save writes the scene to path, creating parent directories as needed.
func Save(path string, s *Scene) error {
	raw, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create scene directory: %w", err)
		}
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write scene: %w", err)
	}
	return nil
}

// Load reads a scene written by Save.
func Load(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}

	var s Scene
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}
	if s.ID == "" {
		return nil, fmt.Errorf("scene %s has no id", path)
	}
	return &s, nil
}
