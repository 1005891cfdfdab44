package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds everything that can be tuned without recompiling.
type Settings struct {
	Window  WindowSettings  `yaml:"window"`
	Player  PlayerSettings  `yaml:"player"`
	Enemies EnemySettings   `yaml:"enemies"`
	Camera  CameraSettings  `yaml:"camera"`
	Input   InputSettings   `yaml:"input"`
	Physics PhysicsSettings `yaml:"physics"`
	Paths   PathSettings    `yaml:"paths"`
	Log     LogSettings     `yaml:"log"`
}

type WindowSettings struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
}

type PlayerSettings struct {
	MoveSpeed     float64 `yaml:"move_speed"`
	Sheet         string  `yaml:"sheet"`
	Scale         float64 `yaml:"scale"`
	FrameDuration float64 `yaml:"frame_duration"`
	StartX        float64 `yaml:"start_x"`
	StartY        float64 `yaml:"start_y"`
}

type EnemySettings struct {
	Count            int     `yaml:"count"`
	Sheet            string  `yaml:"sheet"`
	Scale            float64 `yaml:"scale"`
	Spacing          float64 `yaml:"spacing"`
	OffsetX          float64 `yaml:"offset_x"`
	Y                float64 `yaml:"y"`
	LinearDamping    float64 `yaml:"linear_damping"`
	MinFrameDuration float64 `yaml:"min_frame_duration"`
	MaxFrameDuration float64 `yaml:"max_frame_duration"`
}

type CameraSettings struct {
	ScaleFactor float64 `yaml:"scale_factor"`
	ZoomStep    float64 `yaml:"zoom_step"`
	MinScale    float64 `yaml:"min_scale"`
}

type InputSettings struct {
	Deadzone float64 `yaml:"deadzone"`
}

type PhysicsSettings struct {
	Iterations int     `yaml:"iterations"`
	BodyMass   float64 `yaml:"body_mass"`
	BlockSize  float64 `yaml:"block_size"`
}

type PathSettings struct {
	Walls   string `yaml:"walls"`
	Sprites string `yaml:"sprites"`
	Scene   string `yaml:"scene"`
}

type LogSettings struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	Development bool   `yaml:"development"`
}

// Default returns the settings the game ships with.
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Title:  "Heaven Through Violence",
			Width:  1280,
			Height: 960,
		},
		Player: PlayerSettings{
			MoveSpeed:     100,
			Sheet:         "whisper",
			Scale:         1,
			FrameDuration: 0.225,
		},
		Enemies: EnemySettings{
			Count:            3,
			Sheet:            "evil_whisper",
			Scale:            1,
			Spacing:          150,
			OffsetX:          -300,
			Y:                -300,
			LinearDamping:    10,
			MinFrameDuration: 0.175,
			MaxFrameDuration: 0.300,
		},
		Camera: CameraSettings{
			ScaleFactor: 0.15,
			ZoomStep:    0.01,
			MinScale:    0.01,
		},
		Input: InputSettings{
			Deadzone: 0.1,
		},
		Physics: PhysicsSettings{
			Iterations: 10,
			BodyMass:   1,
			BlockSize:  16,
		},
		Paths: PathSettings{
			Walls:   "walls.yaml",
			Sprites: "sprites.yaml",
			Scene:   "scenes/scene.yaml",
		},
		Log: LogSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads settings from path on top of Default. A missing file is not an
// error; the defaults are returned as they are.
func Load(path string) (Settings, error) {
	settings := Default()

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(raw, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return settings, nil
}

// Validate reports the first setting that would break the game.
func (s Settings) Validate() error {
	switch {
	case s.Player.MoveSpeed < 0:
		return fmt.Errorf("player.move_speed must be non-negative, got %v", s.Player.MoveSpeed)
	case s.Input.Deadzone < 0 || s.Input.Deadzone >= 1:
		return fmt.Errorf("input.deadzone must be in [0, 1), got %v", s.Input.Deadzone)
	case s.Camera.ScaleFactor <= 0:
		return fmt.Errorf("camera.scale_factor must be positive, got %v", s.Camera.ScaleFactor)
	case s.Camera.MinScale <= 0:
		return fmt.Errorf("camera.min_scale must be positive, got %v", s.Camera.MinScale)
	case s.Camera.ScaleFactor < s.Camera.MinScale:
		return fmt.Errorf("camera.scale_factor %v is below camera.min_scale %v", s.Camera.ScaleFactor, s.Camera.MinScale)
	case s.Camera.ZoomStep <= 0:
		return fmt.Errorf("camera.zoom_step must be positive, got %v", s.Camera.ZoomStep)
	case s.Player.Scale <= 0:
		return fmt.Errorf("player.scale must be positive, got %v", s.Player.Scale)
	case s.Enemies.Scale <= 0:
		return fmt.Errorf("enemies.scale must be positive, got %v", s.Enemies.Scale)
	case s.Enemies.Count < 0:
		return fmt.Errorf("enemies.count must be non-negative, got %d", s.Enemies.Count)
	case s.Enemies.MinFrameDuration <= 0 || s.Enemies.MaxFrameDuration < s.Enemies.MinFrameDuration:
		return fmt.Errorf("enemy frame durations must satisfy 0 < min <= max, got %v..%v",
			s.Enemies.MinFrameDuration, s.Enemies.MaxFrameDuration)
	case s.Player.FrameDuration <= 0:
		return fmt.Errorf("player.frame_duration must be positive, got %v", s.Player.FrameDuration)
	case s.Physics.BodyMass <= 0:
		return fmt.Errorf("physics.body_mass must be positive, got %v", s.Physics.BodyMass)
	case s.Physics.BlockSize <= 0:
		return fmt.Errorf("physics.block_size must be positive, got %v", s.Physics.BlockSize)
	}
	return nil
}
