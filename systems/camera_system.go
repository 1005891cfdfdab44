package systems

import (
	"math"

	"heaven-through-violence/components"
	"heaven-through-violence/ecs"
)

// CameraSystem centers the camera on the player and owns its zoom
type CameraSystem struct {
	minScale float64
}

// NewCameraSystem creates a new camera system. The camera scale never drops
// below minScale.
func NewCameraSystem(minScale float64) *CameraSystem {
	return &CameraSystem{minScale: minScale}
}

// Update copies the first player's position into every camera and applies
// each camera's scale factor
func (s *CameraSystem) Update(world *ecs.World, dt float64) error {
	target, hasTarget := firstPlayerTransform(world)

	for _, entity := range world.GetEntitiesWithTag(components.TagCamera) {
		camera, ok := ecs.Get[*components.CameraComponent](world, entity.ID, components.Camera)
		if !ok {
			continue
		}
		transform, ok := ecs.Get[*components.TransformComponent](world, entity.ID, components.Transform)
		if !ok {
			continue
		}

		transform.Scale = camera.ScaleFactor
		if hasTarget {
			transform.X = target.X
			transform.Y = target.Y
		}
	}
	return nil
}

// Zoom adds delta to every camera's scale factor, clamped to the minimum.
// Positive delta zooms out.
func (s *CameraSystem) Zoom(world *ecs.World, delta float64) {
	for _, entity := range world.GetEntitiesWithTag(components.TagCamera) {
		camera, ok := ecs.Get[*components.CameraComponent](world, entity.ID, components.Camera)
		if !ok {
			continue
		}
		camera.ScaleFactor = math.Max(s.minScale, camera.ScaleFactor+delta)
		world.EmitEvent(CameraZoomEvent{CameraID: entity.ID, Scale: camera.ScaleFactor})
	}
}

// firstPlayerTransform returns the transform of the player with the lowest ID
func firstPlayerTransform(world *ecs.World) (*components.TransformComponent, bool) {
	for _, entity := range world.GetEntitiesWithTag(components.TagPlayer) {
		if t, ok := ecs.Get[*components.TransformComponent](world, entity.ID, components.Transform); ok {
			return t, true
		}
	}
	return nil, false
}
