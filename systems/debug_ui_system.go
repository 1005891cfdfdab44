package systems

import (
	"fmt"

	"heaven-through-violence/components"
	"heaven-through-violence/ecs"
)

// DebugUISystem keeps the debug text in sync with the player's position
type DebugUISystem struct{}

// NewDebugUISystem creates a new debug UI system
func NewDebugUISystem() *DebugUISystem {
	return &DebugUISystem{}
}

// Update rewrites every debug text line
func (s *DebugUISystem) Update(world *ecs.World, dt float64) error {
	player, ok := firstPlayerTransform(world)
	if !ok {
		return nil
	}
	text := fmt.Sprintf("Player Pos: %.2f, %.2f", player.X, player.Y)

	for _, entity := range world.GetEntitiesWithComponent(components.DebugText) {
		if debug, ok := ecs.Get[*components.DebugTextComponent](world, entity.ID, components.DebugText); ok {
			debug.Text = text
		}
	}
	return nil
}
