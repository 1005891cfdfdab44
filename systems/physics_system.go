package systems

import (
	"heaven-through-violence/components"
	"heaven-through-violence/ecs"
	"heaven-through-violence/physics"
)

// PhysicsSystem steps the physics space and copies body positions back into
// transforms
type PhysicsSystem struct {
	physics *physics.World
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(phys *physics.World) *PhysicsSystem {
	return &PhysicsSystem{physics: phys}
}

// Update advances the simulation by dt
func (s *PhysicsSystem) Update(world *ecs.World, dt float64) error {
	s.physics.Step(dt)

	for _, entity := range world.GetEntitiesWithComponent(components.RigidBody) {
		rb, ok := ecs.Get[*components.RigidBodyComponent](world, entity.ID, components.RigidBody)
		if !ok || rb.Body == nil {
			continue
		}
		transform, ok := ecs.Get[*components.TransformComponent](world, entity.ID, components.Transform)
		if !ok {
			continue
		}
		pos := rb.Body.Position()
		transform.X, transform.Y = pos.X, pos.Y
	}
	return nil
}
