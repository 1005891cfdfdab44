package components

import (
	"fmt"

	"heaven-through-violence/ecs"
)

// componentNames maps component IDs to the names used in logs
var componentNames = map[ecs.ComponentID]string{
	Transform: "Transform",
	Player:    "Player",
	Velocity:  "Velocity",
	RigidBody: "RigidBody",
	Sprite:    "Sprite",
	Animation: "Animation",
	Shape:     "Shape",
	Camera:    "Camera",
	PauseItem: "PauseItem",
	Overlay:   "Overlay",
	Wall:      "Wall",
	Enemy:     "Enemy",
	DebugText: "DebugText",
}

// ComponentName returns the display name of a component ID.
func ComponentName(id ecs.ComponentID) string {
	if name, ok := componentNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Component(%d)", id)
}

// Describe lists the names of the components an entity carries, in ID order.
func Describe(world *ecs.World, entityID ecs.EntityID) []string {
	names := make([]string, 0, len(componentNames))
	for id := ecs.ComponentID(0); id <= DebugText; id++ {
		if world.HasComponent(entityID, id) {
			names = append(names, componentNames[id])
		}
	}
	return names
}
