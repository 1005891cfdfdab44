package systems

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"heaven-through-violence/components"
	"heaven-through-violence/ecs"
	"heaven-through-violence/input"
	"heaven-through-violence/physics"
)

// MovementSystem turns player input into rigid body velocity
type MovementSystem struct {
	input    input.Source
	lobby    *GamepadLobby
	physics  *physics.World
	deadzone float64
}

// NewMovementSystem creates a new movement system. Stick vectors shorter
// than deadzone count as no input.
func NewMovementSystem(in input.Source, lobby *GamepadLobby, phys *physics.World, deadzone float64) *MovementSystem {
	return &MovementSystem{
		input:    in,
		lobby:    lobby,
		physics:  phys,
		deadzone: deadzone,
	}
}

// Update writes move direction * move speed into every player's velocity
// and rigid body
func (s *MovementSystem) Update(world *ecs.World, dt float64) error {
	players := world.GetEntitiesWithComponent(components.Player)
	if len(players) == 0 {
		return nil
	}

	dir, err := s.moveDirection()
	if err != nil {
		return err
	}

	for _, entity := range players {
		player, ok := ecs.Get[*components.PlayerComponent](world, entity.ID, components.Player)
		if !ok {
			continue
		}
		v := dir.Mult(player.MoveSpeed)

		if vel, ok := ecs.Get[*components.VelocityComponent](world, entity.ID, components.Velocity); ok {
			vel.Update(v)
		}
		if rb, ok := ecs.Get[*components.RigidBodyComponent](world, entity.ID, components.RigidBody); ok && rb.Body != nil {
			s.physics.SetLinearVelocity(rb.Body, v)
		}
	}
	return nil
}

// moveDirection prefers the first connected gamepad over the keyboard
func (s *MovementSystem) moveDirection() (cp.Vector, error) {
	if id, ok := s.lobby.First(); ok {
		return s.gamepadDirection(id)
	}
	return s.keyboardDirection(), nil
}

func (s *MovementSystem) gamepadDirection(id input.GamepadID) (cp.Vector, error) {
	x, ok := s.input.AxisValue(id, input.AxisLeftStickX)
	if !ok {
		return cp.Vector{}, fmt.Errorf("gamepad %d left stick x: %w", id, input.ErrMissingAxis)
	}
	y, ok := s.input.AxisValue(id, input.AxisLeftStickY)
	if !ok {
		return cp.Vector{}, fmt.Errorf("gamepad %d left stick y: %w", id, input.ErrMissingAxis)
	}

	v := cp.Vector{X: x, Y: y}
	if v.Length() < s.deadzone || (x == 0 && y == 0) {
		return cp.Vector{}, nil
	}
	return v, nil
}

// keyboardDirection reads WASD as a unit vector, or zero. Y grows downward.
func (s *MovementSystem) keyboardDirection() cp.Vector {
	v := cp.Vector{
		X: axis(s.input.IsKeyPressed(input.KeyA), s.input.IsKeyPressed(input.KeyD)),
		Y: axis(s.input.IsKeyPressed(input.KeyW), s.input.IsKeyPressed(input.KeyS)),
	}
	if v.X == 0 && v.Y == 0 {
		return v
	}
	return v.Normalize()
}

func axis(negative, positive bool) float64 {
	var v float64
	if negative {
		v--
	}
	if positive {
		v++
	}
	return v
}
