package core

// RuntimeConfig describes the terminal a scene runs in.
type RuntimeConfig struct {
	ScreenW  int   // Columns
	ScreenH  int   // Rows
	TickRate int   // Render frames per second
	Seed     int64 // 0 lets the scene seed itself from the wall clock
}

// DefaultConfig returns an 80x24 terminal at 60 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// WithSize returns a copy sized to the terminal.
// Non-positive dimensions keep the current value.
func (c RuntimeConfig) WithSize(width, height int) RuntimeConfig {
	if width > 0 {
		c.ScreenW = width
	}
	if height > 0 {
		c.ScreenH = height
	}
	return c
}
