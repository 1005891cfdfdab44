package systems

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"heaven-through-violence/components"
	"heaven-through-violence/data"
	"heaven-through-violence/ecs"
	"heaven-through-violence/input"
	"heaven-through-violence/physics"
)

const testSpeed = 100

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// addPlayer creates a player with a transform and velocity but no body.
func addPlayer(t *testing.T, world *ecs.World, x, y float64) *ecs.Entity {
	t.Helper()
	player, err := components.NewPlayerComponent(testSpeed)
	if err != nil {
		t.Fatal(err)
	}
	entity := world.CreateEntity()
	world.TagEntity(entity.ID, components.TagPlayer)
	world.AddComponent(entity.ID, components.Player, player)
	world.AddComponent(entity.ID, components.Transform, &components.TransformComponent{X: x, Y: y, Scale: 1})
	world.AddComponent(entity.ID, components.Velocity, components.ZeroVelocity())
	return entity
}

func playerVelocity(t *testing.T, world *ecs.World, id ecs.EntityID) cp.Vector {
	t.Helper()
	vel, ok := ecs.Get[*components.VelocityComponent](world, id, components.Velocity)
	if !ok {
		t.Fatal("player has no velocity")
	}
	return vel.Vector
}

func TestMovementKeyboard(t *testing.T) {
	diag := testSpeed / math.Sqrt2
	tests := []struct {
		name  string
		keys  []input.Key
		wantX float64
		wantY float64
	}{
		{"no input", nil, 0, 0},
		{"right", []input.Key{input.KeyD}, testSpeed, 0},
		{"up", []input.Key{input.KeyW}, 0, -testSpeed},
		{"down left", []input.Key{input.KeyS, input.KeyA}, -diag, diag},
		{"up right", []input.Key{input.KeyW, input.KeyD}, diag, -diag},
		{"opposites cancel", []input.Key{input.KeyA, input.KeyD}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := ecs.NewWorld()
			player := addPlayer(t, world, 0, 0)
			state := input.NewState()
			for _, k := range tt.keys {
				state.SetKey(k, input.Held)
			}

			sys := NewMovementSystem(state, NewGamepadLobby(), physics.NewWorld(10), 0.1)
			if err := sys.Update(world, 1.0/60); err != nil {
				t.Fatal(err)
			}

			got := playerVelocity(t, world, player.ID)
			if !near(got.X, tt.wantX) || !near(got.Y, tt.wantY) {
				t.Fatalf("velocity = %v, want (%v, %v)", got, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMovementGamepad(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		wantX float64
		wantY float64
	}{
		{"inside deadzone", 0.05, 0.05, 0, 0},
		{"half right", 0.5, 0, 50, 0},
		{"full down", 0, 1, 0, 100},
		{"centered", 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := ecs.NewWorld()
			player := addPlayer(t, world, 0, 0)
			lobby := NewGamepadLobby()
			lobby.Connect(3)

			state := input.NewState()
			state.SetAxis(3, input.AxisLeftStickX, tt.x)
			state.SetAxis(3, input.AxisLeftStickY, tt.y)
			// The connected gamepad wins over the keyboard.
			state.SetKey(input.KeyA, input.Held)

			if err := NewMovementSystem(state, lobby, physics.NewWorld(10), 0.1).Update(world, 1.0/60); err != nil {
				t.Fatal(err)
			}
			got := playerVelocity(t, world, player.ID)
			if !near(got.X, tt.wantX) || !near(got.Y, tt.wantY) {
				t.Fatalf("velocity = %v, want (%v, %v)", got, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMovementMissingAxis(t *testing.T) {
	world := ecs.NewWorld()
	addPlayer(t, world, 0, 0)
	lobby := NewGamepadLobby()
	lobby.Connect(0)

	state := input.NewState()
	state.SetAxis(0, input.AxisLeftStickX, 1)

	err := NewMovementSystem(state, lobby, physics.NewWorld(10), 0.1).Update(world, 1.0/60)
	if !errors.Is(err, input.ErrMissingAxis) {
		t.Fatalf("err = %v, want ErrMissingAxis", err)
	}
}

func TestMovementDrivesRigidBody(t *testing.T) {
	world := ecs.NewWorld()
	phys := physics.NewWorld(10)
	player := addPlayer(t, world, 0, 0)

	def := physics.BodyDef{Kind: physics.Dynamic, Width: 16, Height: 23, Mass: 1, LockRotation: true}
	body, shape, err := phys.AddBox(def)
	if err != nil {
		t.Fatal(err)
	}
	world.AddComponent(player.ID, components.RigidBody, &components.RigidBodyComponent{Body: body, Shape: shape, Def: def})

	state := input.NewState()
	state.SetKey(input.KeyD, input.Held)
	lobby := NewGamepadLobby()

	world.AddSystem(NewMovementSystem(state, lobby, phys, 0.1))
	world.AddSystem(NewPhysicsSystem(phys))
	// The first frame only requests the velocity; the body starts moving
	// on the next step.
	for i := 0; i < 61; i++ {
		if err := world.Update(1.0 / 60); err != nil {
			t.Fatal(err)
		}
	}

	transform, _ := ecs.Get[*components.TransformComponent](world, player.ID, components.Transform)
	if !near(body.Velocity().X, testSpeed) {
		t.Fatalf("body velocity = %v", body.Velocity())
	}
	if math.Abs(transform.X-testSpeed) > 1e-6 || transform.Y != 0 {
		t.Fatalf("transform after 1s = (%v, %v), want (100, 0)", transform.X, transform.Y)
	}
}

func TestMovementStopsAtArenaWall(t *testing.T) {
	layout, err := data.LoadWalls(filepath.Join("..", "walls.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	var right *data.Wall
	for i := range layout.Walls {
		if layout.Walls[i].Index == 3 {
			right = &layout.Walls[i]
		}
	}
	if right == nil {
		t.Fatal("walls.yaml has no wall 3")
	}

	world := ecs.NewWorld()
	phys := physics.NewWorld(10)
	cx, cy := right.Center()
	addBody(t, world, phys, physics.BodyDef{Kind: physics.Kinematic, X: cx, Y: cy, Width: right.Width, Height: right.Height})

	player := addPlayer(t, world, 300, 0)
	def := physics.BodyDef{Kind: physics.Dynamic, X: 300, Width: 16, Height: 23, Mass: 1, LockRotation: true}
	body, shape, err := phys.AddBox(def)
	if err != nil {
		t.Fatal(err)
	}
	world.AddComponent(player.ID, components.RigidBody, &components.RigidBodyComponent{Body: body, Shape: shape, Def: def})

	state := input.NewState()
	state.SetKey(input.KeyD, input.Held)
	world.AddSystem(NewMovementSystem(state, NewGamepadLobby(), phys, 0.1))
	world.AddSystem(NewPhysicsSystem(phys))
	for i := 0; i < 300; i++ {
		if err := world.Update(1.0 / 60); err != nil {
			t.Fatal(err)
		}
	}

	transform, _ := ecs.Get[*components.TransformComponent](world, player.ID, components.Transform)
	if edge := transform.X + def.Width/2; edge > right.X+0.5 {
		t.Fatalf("player right edge = %v, want at most %v", edge, right.X+0.5)
	}
	if transform.X < 300 {
		t.Fatalf("player x = %v, want it to have moved right", transform.X)
	}
}

func TestGamepadLobby(t *testing.T) {
	lobby := NewGamepadLobby()
	if _, ok := lobby.First(); ok {
		t.Fatal("empty lobby has a first gamepad")
	}

	lobby.Connect(4)
	lobby.Connect(2)
	lobby.Connect(4)
	if lobby.Len() != 2 {
		t.Fatalf("Len = %d, want 2", lobby.Len())
	}
	if first, _ := lobby.First(); first != 2 {
		t.Fatalf("First = %d, want 2", first)
	}

	lobby.Disconnect(2)
	lobby.Disconnect(7)
	if lobby.Contains(2) || !lobby.Contains(4) {
		t.Fatalf("IDs = %v, want [4]", lobby.IDs())
	}
}

func TestGamepadSystemAppliesEventsInOrder(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	world := ecs.NewWorld()
	lobby := NewGamepadLobby()

	var emitted []GamepadConnectionEvent
	world.GetEventManager().Subscribe(EventGamepadConnection, func(e ecs.Event) {
		emitted = append(emitted, e.(GamepadConnectionEvent))
	})

	state := input.NewState()
	state.AddGamepadEvent(input.GamepadEvent{ID: 1, Kind: input.GamepadConnected})
	state.AddGamepadEvent(input.GamepadEvent{ID: 0, Kind: input.GamepadConnected})
	state.AddGamepadEvent(input.GamepadEvent{ID: 1, Kind: input.GamepadDisconnected})

	if err := NewGamepadSystem(state, lobby, zap.New(core)).Update(world, 0); err != nil {
		t.Fatal(err)
	}

	ids := lobby.IDs()
	if len(ids) != 1 || ids[0] != 0 {
		t.Fatalf("lobby = %v, want [0]", ids)
	}
	if len(emitted) != 3 || emitted[2].Connected {
		t.Fatalf("emitted = %+v", emitted)
	}
	if n := logs.FilterMessage("gamepad connected").Len(); n != 2 {
		t.Fatalf("logged %d connects, want 2", n)
	}
	if n := logs.FilterMessage("gamepad disconnected").Len(); n != 1 {
		t.Fatalf("logged %d disconnects, want 1", n)
	}
}

func TestPauseTogglesOverlayAndGatesSystems(t *testing.T) {
	world := ecs.NewWorld()
	items := make([]*components.PauseScreenItemComponent, 3)
	for i := range items {
		items[i] = &components.PauseScreenItemComponent{}
		e := world.CreateEntity()
		world.AddComponent(e.ID, components.PauseItem, items[i])
	}

	state := input.NewState()
	pause := &PauseState{}
	ran := 0
	world.AddSystem(NewPauseSystem(state, pause, zaptest.NewLogger(t)))
	world.AddSystem(ecs.RunIf(ecs.SystemFunc(func(*ecs.World, float64) error {
		ran++
		return nil
	}), pause.Running))

	step := func(escape bool) {
		t.Helper()
		state.Reset()
		if escape {
			state.SetKey(input.KeyEscape, input.JustPressed)
		}
		if err := world.Update(1.0 / 60); err != nil {
			t.Fatal(err)
		}
	}

	step(false)
	if pause.Paused() || ran != 1 {
		t.Fatalf("paused=%v ran=%d before Escape", pause.Paused(), ran)
	}

	step(true)
	if !pause.Paused() || ran != 1 {
		t.Fatalf("paused=%v ran=%d after Escape", pause.Paused(), ran)
	}
	for i, item := range items {
		if !item.Visible {
			t.Fatalf("item %d hidden while paused", i)
		}
	}

	// Holding Escape is not a second press.
	state.Reset()
	state.SetKey(input.KeyEscape, input.Held)
	if err := world.Update(1.0 / 60); err != nil {
		t.Fatal(err)
	}
	if !pause.Paused() {
		t.Fatal("held Escape unpaused")
	}

	step(true)
	if pause.Paused() || ran != 2 {
		t.Fatalf("paused=%v ran=%d after second Escape", pause.Paused(), ran)
	}
	for i, item := range items {
		if item.Visible {
			t.Fatalf("item %d visible after resume", i)
		}
	}
}

func TestAnimationAdvancesAndWraps(t *testing.T) {
	world := ecs.NewWorld()
	e := world.CreateEntity()
	sprite := &components.SpriteComponent{Sheet: "whisper", Frames: 4}
	anim := &components.AnimationComponent{FrameDuration: 0.25}
	world.AddComponent(e.ID, components.Sprite, sprite)
	world.AddComponent(e.ID, components.Animation, anim)

	sys := NewAnimationSystem()
	if err := sys.Update(world, 0.2); err != nil {
		t.Fatal(err)
	}
	if sprite.Index != 0 {
		t.Fatalf("advanced early to %d", sprite.Index)
	}

	if err := sys.Update(world, 0.05); err != nil {
		t.Fatal(err)
	}
	if sprite.Index != 1 {
		t.Fatalf("Index = %d, want 1", sprite.Index)
	}

	// A long frame advances once per elapsed period and wraps.
	if err := sys.Update(world, 0.75); err != nil {
		t.Fatal(err)
	}
	if sprite.Index != 0 {
		t.Fatalf("Index = %d, want 0 after wrap", sprite.Index)
	}
	if anim.Elapsed < 0 || anim.Elapsed >= anim.FrameDuration {
		t.Fatalf("Elapsed = %v out of range", anim.Elapsed)
	}
}

func addCamera(world *ecs.World, scale float64) (*components.CameraComponent, *components.TransformComponent) {
	e := world.CreateEntity()
	world.TagEntity(e.ID, components.TagCamera)
	camera := &components.CameraComponent{ScaleFactor: scale}
	transform := &components.TransformComponent{Scale: scale}
	world.AddComponent(e.ID, components.Camera, camera)
	world.AddComponent(e.ID, components.Transform, transform)
	return camera, transform
}

func TestCameraFollowsPlayer(t *testing.T) {
	world := ecs.NewWorld()
	addPlayer(t, world, 12, -40)
	camera, transform := addCamera(world, 0.15)

	sys := NewCameraSystem(0.01)
	if err := sys.Update(world, 0); err != nil {
		t.Fatal(err)
	}
	if transform.X != 12 || transform.Y != -40 || transform.Scale != 0.15 {
		t.Fatalf("camera transform = %+v", transform)
	}

	camera.ScaleFactor = 0.5
	if err := sys.Update(world, 0); err != nil {
		t.Fatal(err)
	}
	if transform.Scale != 0.5 {
		t.Fatalf("Scale = %v, want 0.5", transform.Scale)
	}
}

func TestCameraZoomClamps(t *testing.T) {
	world := ecs.NewWorld()
	camera, _ := addCamera(world, 0.15)

	var zooms []float64
	world.GetEventManager().Subscribe(EventCameraZoom, func(e ecs.Event) {
		zooms = append(zooms, e.(CameraZoomEvent).Scale)
	})

	sys := NewCameraSystem(0.01)
	sys.Zoom(world, 0.05)
	if !near(camera.ScaleFactor, 0.2) {
		t.Fatalf("ScaleFactor = %v, want 0.2", camera.ScaleFactor)
	}
	sys.Zoom(world, -5)
	if camera.ScaleFactor != 0.01 {
		t.Fatalf("ScaleFactor = %v, want clamp at 0.01", camera.ScaleFactor)
	}
	if len(zooms) != 2 || zooms[1] != 0.01 {
		t.Fatalf("zoom events = %v", zooms)
	}
}

func TestDebugUIShowsPlayerPosition(t *testing.T) {
	world := ecs.NewWorld()
	addPlayer(t, world, 1.5, -2.25)
	e := world.CreateEntity()
	text := &components.DebugTextComponent{}
	world.AddComponent(e.ID, components.DebugText, text)

	if err := NewDebugUISystem().Update(world, 0); err != nil {
		t.Fatal(err)
	}
	if text.Text != "Player Pos: 1.50, -2.25" {
		t.Fatalf("Text = %q", text.Text)
	}
}

func TestMessageSystemRecordsEvents(t *testing.T) {
	world := ecs.NewWorld()
	log := NewMessageLog()
	NewMessageSystem(log).Initialize(world)

	world.EmitEvent(GamepadConnectionEvent{GamepadID: 1, Connected: true})
	world.EmitEvent(PauseToggledEvent{Paused: true})
	world.EmitEvent(SceneEvent{Action: SceneSaved, Err: errors.New("disk full")})

	got := log.RecentMessages(5)
	want := []string{"Scene saved failed: disk full", "Paused", "Gamepad 1 connected"}
	if len(got) != len(want) {
		t.Fatalf("messages = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("message %d = %q, want %q", i, got[i], want[i])
		}
	}
}
