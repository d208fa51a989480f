package core

// SceneStats is a snapshot of a running scene, shown in the footer and
// stored with the session history.
type SceneStats struct {
	Mode      string  // Weather mode name
	Ticks     uint64  // Frames simulated since Reset
	Renders   uint64  // Frames where the weather or the clock asked for a redraw
	Frame     uint64  // Current value of the wrapping frame counter
	Wind      string  // Active wind direction
	Threshold uint16  // Spawn density threshold, 0 when nothing spawns
	FPS       float64 // Measured frame rate, filled in by the platform layer
	Paused    bool
}
