// Package physics owns the Chipmunk2D space the game's rigid bodies live in.
package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// BodyKind says how the solver treats a body.
type BodyKind string

const (
	// Dynamic bodies are pushed around by velocity and collisions.
	Dynamic BodyKind = "dynamic"
	// Kinematic bodies move only when told to and are never pushed.
	Kinematic BodyKind = "kinematic"
)

// BodyDef describes a box-shaped rigid body. It is plain data so it can be
// stored in scenes and rebuilt later.
type BodyDef struct {
	Kind          BodyKind `yaml:"kind"`
	X             float64  `yaml:"x"`
	Y             float64  `yaml:"y"`
	Width         float64  `yaml:"width"`
	Height        float64  `yaml:"height"`
	Mass          float64  `yaml:"mass,omitempty"`
	LinearDamping float64  `yaml:"linear_damping,omitempty"`
	LockRotation  bool     `yaml:"lock_rotation,omitempty"`
}

// World wraps a zero-gravity cp.Space.
type World struct {
	space *cp.Space
	// targets holds velocities requested since the last step, applied during
	// velocity integration so the contact solver can still correct them.
	targets map[*cp.Body]cp.Vector
}

// NewWorld creates an empty top-down space. iterations <= 0 keeps cp's default.
func NewWorld(iterations int) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	if iterations > 0 {
		space.Iterations = uint(iterations)
	}
	return &World{space: space, targets: make(map[*cp.Body]cp.Vector)}
}

// Space exposes the underlying cp.Space.
func (w *World) Space() *cp.Space {
	return w.space
}

// AddBox creates the body described by def, gives it a box collider and adds
// both to the space.
func (w *World) AddBox(def BodyDef) (*cp.Body, *cp.Shape, error) {
	if def.Width <= 0 || def.Height <= 0 {
		return nil, nil, fmt.Errorf("box collider needs a positive size, got %vx%v", def.Width, def.Height)
	}

	var body *cp.Body
	switch def.Kind {
	case Dynamic:
		if def.Mass <= 0 {
			return nil, nil, fmt.Errorf("dynamic body needs a positive mass, got %v", def.Mass)
		}
		moment := cp.MomentForBox(def.Mass, def.Width, def.Height)
		if def.LockRotation {
			moment = cp.INFINITY
		}
		body = cp.NewBody(def.Mass, moment)
		body.SetVelocityUpdateFunc(w.integrateVelocity(def.LinearDamping))
	case Kinematic:
		body = cp.NewKinematicBody()
	default:
		return nil, nil, fmt.Errorf("unknown body kind %q", def.Kind)
	}

	body.SetPosition(cp.Vector{X: def.X, Y: def.Y})
	w.space.AddBody(body)

	shape := cp.NewBox(body, def.Width, def.Height, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	w.space.AddShape(shape)

	return body, shape, nil
}

// Remove takes a body and its collider out of the space.
func (w *World) Remove(body *cp.Body, shape *cp.Shape) {
	if shape != nil {
		w.space.RemoveShape(shape)
	}
	if body != nil {
		delete(w.targets, body)
		w.space.RemoveBody(body)
	}
}

// SetLinearVelocity requests a velocity for the body and wakes it up.
// Dynamic bodies take it on the next Step, before contacts are solved, so a
// body driven into a wall is stopped by it. Kinematic bodies take it at once.
func (w *World) SetLinearVelocity(body *cp.Body, v cp.Vector) {
	if body.GetType() != cp.BODY_DYNAMIC {
		body.SetVelocityVector(v)
		return
	}
	w.targets[body] = v
	body.Activate()
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

// integrateVelocity applies any requested velocity, then linear damping
// c as a 1/(1+dt*c) scale, then the usual integration.
func (w *World) integrateVelocity(c float64) cp.BodyVelocityFunc {
	return func(body *cp.Body, gravity cp.Vector, damping, dt float64) {
		if v, ok := w.targets[body]; ok {
			body.SetVelocityVector(v)
			delete(w.targets, body)
		}
		if c > 0 {
			damping /= 1 + dt*c
		}
		cp.BodyUpdateVelocity(body, gravity, damping, dt)
	}
}
