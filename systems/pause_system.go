package systems

import (
	"go.uber.org/zap"

	"heaven-through-violence/components"
	"heaven-through-violence/ecs"
	"heaven-through-violence/input"
)

// PauseState is the game's pause flag
type PauseState struct {
	paused bool
}

func (p *PauseState) Paused() bool {
	return p.paused
}

// Running is the inverse of Paused, handy as an ecs.RunIf condition
func (p *PauseState) Running() bool {
	return !p.paused
}

// Toggle flips the flag and returns the new value
func (p *PauseState) Toggle() bool {
	p.paused = !p.paused
	return p.paused
}

// PauseSystem toggles the pause flag on Escape and shows or hides the pause
// screen to match
type PauseSystem struct {
	input  input.Source
	state  *PauseState
	logger *zap.Logger
}

// NewPauseSystem creates a new pause system
func NewPauseSystem(in input.Source, state *PauseState, logger *zap.Logger) *PauseSystem {
	return &PauseSystem{input: in, state: state, logger: logger}
}

// Update handles the Escape key
func (s *PauseSystem) Update(world *ecs.World, dt float64) error {
	if !s.input.IsKeyJustPressed(input.KeyEscape) {
		return nil
	}

	paused := s.state.Toggle()
	for _, entity := range world.GetEntitiesWithComponent(components.PauseItem) {
		if item, ok := ecs.Get[*components.PauseScreenItemComponent](world, entity.ID, components.PauseItem); ok {
			item.Visible = paused
		}
	}

	s.logger.Debug("pause toggled", zap.Bool("paused", paused))
	world.EmitEvent(PauseToggledEvent{Paused: paused})
	return nil
}
