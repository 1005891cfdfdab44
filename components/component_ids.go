package components

import (
	"heaven-through-violence/ecs"
)

// Define component IDs for our game
const (
	Transform ecs.ComponentID = iota
	Player
	Velocity
	RigidBody
	Sprite
	Animation
	Shape      // Placeholder material for entities without sprites
	Camera     // Camera component for viewport management
	PauseItem  // Marks overlay entities shown only while paused
	Overlay    // Screen-space UI element
	Wall       // Wall record the entity was spawned from
	Enemy
	DebugText
)

// Entity tags
const (
	TagPlayer  = "player"
	TagEnemy   = "enemy"
	TagWall    = "wall"
	TagBlock   = "block"
	TagCamera  = "camera"
	TagPause   = "pause"
	TagDebugUI = "debug_ui"
)
