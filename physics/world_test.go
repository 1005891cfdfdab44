package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestAddBoxRejectsBadDefinitions(t *testing.T) {
	w := NewWorld(0)
	tests := []struct {
		name string
		def  BodyDef
	}{
		{"zero width", BodyDef{Kind: Kinematic, Width: 0, Height: 4}},
		{"massless dynamic", BodyDef{Kind: Dynamic, Width: 4, Height: 4}},
		{"unknown kind", BodyDef{Kind: "floating", Width: 4, Height: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := w.AddBox(tt.def); err == nil {
				t.Fatal("AddBox accepted an invalid definition")
			}
		})
	}
}

func TestDynamicBodyMovesWithVelocity(t *testing.T) {
	w := NewWorld(0)
	body, _, err := w.AddBox(BodyDef{Kind: Dynamic, X: 10, Y: 20, Width: 16, Height: 23, Mass: 1, LockRotation: true})
	if err != nil {
		t.Fatal(err)
	}

	w.SetLinearVelocity(body, cp.Vector{X: 100, Y: 0})
	if v := body.Velocity(); v.X != 0 {
		t.Fatalf("velocity applied before the step: %v", v)
	}

	// The first step integrates position with the old velocity; the request
	// takes effect during its velocity pass.
	for i := 0; i < 61; i++ {
		w.Step(1.0 / 60.0)
	}

	pos := body.Position()
	if math.Abs(pos.X-110) > 1e-6 || math.Abs(pos.Y-20) > 1e-6 {
		t.Fatalf("position after 1s of motion = %v, want (110, 20)", pos)
	}
	if body.Angle() != 0 {
		t.Fatalf("locked body rotated to %v", body.Angle())
	}
}

func TestLinearDampingSlowsBody(t *testing.T) {
	w := NewWorld(0)
	damped, _, err := w.AddBox(BodyDef{Kind: Dynamic, Width: 4, Height: 4, Mass: 1, LinearDamping: 10})
	if err != nil {
		t.Fatal(err)
	}
	free, _, err := w.AddBox(BodyDef{Kind: Dynamic, Y: 1000, Width: 4, Height: 4, Mass: 1})
	if err != nil {
		t.Fatal(err)
	}

	w.SetLinearVelocity(damped, cp.Vector{X: 50})
	w.SetLinearVelocity(free, cp.Vector{X: 50})
	w.Step(1.0 / 60.0)

	want := 50 / (1 + 10.0/60.0)
	if got := damped.Velocity().X; math.Abs(got-want) > 1e-9 {
		t.Fatalf("damped velocity = %v, want %v", got, want)
	}
	if got := free.Velocity().X; got != 50 {
		t.Fatalf("undamped velocity = %v, want 50", got)
	}
}

func TestKinematicWallStaysPut(t *testing.T) {
	w := NewWorld(0)
	wall, _, err := w.AddBox(BodyDef{Kind: Kinematic, X: 30, Y: 0, Width: 10, Height: 100})
	if err != nil {
		t.Fatal(err)
	}
	mover, _, err := w.AddBox(BodyDef{Kind: Dynamic, X: 0, Y: 0, Width: 10, Height: 10, Mass: 1, LockRotation: true})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 120; i++ {
		w.SetLinearVelocity(mover, cp.Vector{X: 100})
		w.Step(1.0 / 60.0)
	}

	if got := wall.Position(); got.X != 30 || got.Y != 0 {
		t.Fatalf("wall moved to %v", got)
	}
	// The mover's right edge must stop near the wall's left edge at x=25.
	if right := mover.Position().X + 5; right > 25.5 {
		t.Fatalf("mover passed through the wall, right edge at %v", right)
	}
}

func TestKinematicVelocityAppliesAtOnce(t *testing.T) {
	w := NewWorld(0)
	body, _, err := w.AddBox(BodyDef{Kind: Kinematic, Width: 4, Height: 4})
	if err != nil {
		t.Fatal(err)
	}
	w.SetLinearVelocity(body, cp.Vector{Y: -30})
	if got := body.Velocity(); got.Y != -30 {
		t.Fatalf("kinematic velocity = %v, want (0, -30)", got)
	}
}

func TestRemoveDetachesBody(t *testing.T) {
	w := NewWorld(0)
	body, shape, err := w.AddBox(BodyDef{Kind: Kinematic, Width: 1, Height: 1})
	if err != nil {
		t.Fatal(err)
	}
	w.Remove(body, shape)

	count := 0
	w.Space().EachBody(func(*cp.Body) { count++ })
	if count != 0 {
		t.Fatalf("space still holds %d bodies", count)
	}
}
