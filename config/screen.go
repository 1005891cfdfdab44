package config

// Screen layout configuration
const (
	// Logical screen size in pixels; ebiten scales it to the window.
	ScreenWidth  = 960
	ScreenHeight = 720

	// Fixed simulation step. ebiten calls Update at 60 TPS.
	TicksPerSecond = 60
	FrameTime      = 1.0 / TicksPerSecond

	// Debug text position
	DebugTextX = 8
	DebugTextY = 20
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return ScreenWidth, ScreenHeight
}
