package systems

import (
	"heaven-through-violence/components"
	"heaven-through-violence/ecs"
)

// AnimationSystem advances sprite-sheet frames on a timer
type AnimationSystem struct{}

// NewAnimationSystem creates a new animation system
func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// Update moves each animated sprite one frame forward per elapsed frame
// duration, wrapping after the last frame
func (s *AnimationSystem) Update(world *ecs.World, dt float64) error {
	for _, entity := range world.GetEntitiesWithComponent(components.Animation) {
		anim, ok := ecs.Get[*components.AnimationComponent](world, entity.ID, components.Animation)
		if !ok || anim.FrameDuration <= 0 {
			continue
		}
		sprite, ok := ecs.Get[*components.SpriteComponent](world, entity.ID, components.Sprite)
		if !ok || sprite.Frames <= 0 {
			continue
		}

		anim.Elapsed += dt
		for anim.Elapsed >= anim.FrameDuration {
			anim.Elapsed -= anim.FrameDuration
			sprite.Index = (sprite.Index + 1) % sprite.Frames
		}
	}
	return nil
}
