package ecs

// System defines an interface for processing entities with specific components
type System interface {
	// Update is called each frame to process entities. A non-nil error
	// stops the frame.
	Update(world *World, dt float64) error
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(world *World, dt float64) error

// Update calls f.
func (f SystemFunc) Update(world *World, dt float64) error {
	return f(world, dt)
}

type conditionalSystem struct {
	system System
	cond   func() bool
}

// RunIf wraps a system so it only runs on frames where cond reports true.
func RunIf(system System, cond func() bool) System {
	return &conditionalSystem{system: system, cond: cond}
}

func (s *conditionalSystem) Update(world *World, dt float64) error {
	if !s.cond() {
		return nil
	}
	return s.system.Update(world, dt)
}
